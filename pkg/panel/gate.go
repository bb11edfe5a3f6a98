package panel

import "github.com/Jesus1025/registro-interno/internal/core/domain"

// Action is one of the operations a screen can expose for an entity.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionToggle Action = "toggle"
	ActionDelete Action = "delete"
)

// rowActions are the per-row controls, in render order.
var rowActions = []Action{ActionView, ActionEdit, ActionToggle, ActionDelete}

// Gate is the static role-to-actions policy. It is consulted by the
// renderer to pick which controls to draw and again by the dispatcher
// before any network call, so a forged click on a hidden control still
// goes nowhere.
//
// Unknown or absent roles fall back to the read-only policy.
type Gate struct {
	policy map[string][]Action
}

// NewGate returns the standard policy: admin has every action, usuario
// everything except delete, consulta is read-only.
func NewGate() *Gate {
	return &Gate{policy: map[string][]Action{
		domain.RoleAdmin:    {ActionView, ActionCreate, ActionEdit, ActionToggle, ActionDelete},
		domain.RoleUsuario:  {ActionView, ActionCreate, ActionEdit, ActionToggle},
		domain.RoleConsulta: {ActionView},
	}}
}

// Allowed reports whether the role may perform the action.
func (g *Gate) Allowed(role string, action Action) bool {
	for _, a := range g.actions(role) {
		if a == action {
			return true
		}
	}
	return false
}

// RowActions returns the per-row controls the role may use, in render order.
func (g *Gate) RowActions(role string) []Action {
	var out []Action
	for _, a := range rowActions {
		if g.Allowed(role, a) {
			out = append(out, a)
		}
	}
	return out
}

func (g *Gate) actions(role string) []Action {
	if actions, ok := g.policy[role]; ok {
		return actions
	}
	return g.policy[domain.RoleConsulta]
}
