package panel

import (
	"fmt"
	"html"
	"strings"
)

// actionButtons maps each row action to its control label and the CSS
// class the screen's delegated click listener is attached to. Rows carry
// the identity key in a data attribute; no handler code is embedded in
// the markup.
var actionButtons = map[Action]struct {
	class string
	label string
}{
	ActionView:   {"btn-action-view", "Ver"},
	ActionEdit:   {"btn-action-edit", "Editar"},
	ActionToggle: {"btn-action-toggle", "Activar/Desactivar"},
	ActionDelete: {"btn-action-delete", "Eliminar"},
}

// Renderer turns a snapshot into table-body markup. Rendering is a pure
// function of the records and the acting role: calling it again with the
// same inputs produces the same markup, and every call replaces the whole
// body rather than patching rows.
type Renderer[T any] struct {
	schema Schema[T]
	gate   *Gate
}

// NewRenderer creates a renderer drawing the schema's columns with the
// gate's policy.
func NewRenderer[T any](schema Schema[T], gate *Gate) *Renderer[T] {
	return &Renderer[T]{schema: schema, gate: gate}
}

// Render produces the table-body rows for the records as seen by role.
// An empty snapshot yields a single placeholder row spanning all columns,
// never an empty body.
func (r *Renderer[T]) Render(records []T, role string) string {
	// columns + status + actions
	span := len(r.schema.Columns) + 2

	if len(records) == 0 {
		return fmt.Sprintf(
			"<tr><td colspan=\"%d\" class=\"text-center\">No hay registros</td></tr>\n", span)
	}

	actions := r.gate.RowActions(role)

	var b strings.Builder
	for _, rec := range records {
		key := r.schema.NormalizeKey(r.schema.Key(rec))
		fmt.Fprintf(&b, "<tr data-key=\"%s\">", html.EscapeString(key))

		for _, col := range r.schema.Columns {
			b.WriteString("<td>")
			if v := col.Value(rec); v != "" {
				b.WriteString(html.EscapeString(v))
			} else {
				b.WriteString("-")
			}
			b.WriteString("</td>")
		}

		if r.schema.Active(rec) {
			b.WriteString(`<td><span class="badge bg-success">Activo</span></td>`)
		} else {
			b.WriteString(`<td><span class="badge bg-secondary">Inactivo</span></td>`)
		}

		b.WriteString("<td>")
		for _, action := range actions {
			btn := actionButtons[action]
			fmt.Fprintf(&b,
				`<button type="button" class="btn btn-sm %s" data-key="%s">%s</button>`,
				btn.class, html.EscapeString(key), btn.label)
		}
		b.WriteString("</td></tr>\n")
	}
	return b.String()
}
