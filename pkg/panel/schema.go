package panel

import (
	"strings"

	"github.com/Jesus1025/registro-interno/internal/core/domain"
	"github.com/Jesus1025/registro-interno/pkg/rut"
)

// Field describes one input of the entity form.
type Field struct {
	// Name is the payload key the field is submitted under.
	Name string
	// Label is the human-readable name used in validation messages.
	Label string
	// Required fields must be non-empty on every submit.
	Required bool
	// Key marks the identity-key field. It is locked while editing.
	Key bool
	// Password fields require a minimum of 8 characters when filled and
	// are mandatory only when creating.
	Password bool
	// Default is the field's initial value in create mode.
	Default string
}

// Column describes one table column: a header and a display accessor.
// Accessors return the already formatted cell text; empty means "absent"
// and is rendered as a dash.
type Column[T any] struct {
	Title string
	Value func(T) string
}

// Schema parameterizes the generic table components for one entity shape.
type Schema[T any] struct {
	// Name is the singular entity name used in notifications.
	Name string
	// Collection is the API path segment under /api.
	Collection string
	// KeyParam is the query parameter naming the key on DELETE.
	KeyParam string
	// EditKeyField, when non-empty, names the payload field that carries
	// the edit key on updates. Left empty when the key field itself is
	// part of the regular payload and the backend upserts by it.
	EditKeyField string

	Key          func(T) string
	NormalizeKey func(string) string
	FormatKey    func(string) string
	Active       func(T) bool
	WithActive   func(T, bool) T

	Columns []Column[T]
	Fields  []Field

	// FormValues maps a fetched record onto form field values, keyed by
	// Field.Name. Password fields are never populated.
	FormValues func(T) map[string]string
}

func (s Schema[T]) collectionPath() string {
	return "/api/" + s.Collection
}

func (s Schema[T]) recordPath(key string) string {
	return s.collectionPath() + "/" + s.NormalizeKey(key)
}

func (s Schema[T]) keyField() (Field, bool) {
	for _, f := range s.Fields {
		if f.Key {
			return f, true
		}
	}
	return Field{}, false
}

// ProfileSchema describes the administration screen's user table.
func ProfileSchema() Schema[Profile] {
	normalize := func(key string) string {
		return strings.ToLower(strings.TrimSpace(key))
	}
	return Schema[Profile]{
		Name:         "perfil",
		Collection:   "usuarios",
		KeyParam:     "id",
		EditKeyField: "id",
		Key:          func(p Profile) string { return p.Username },
		NormalizeKey: normalize,
		FormatKey:    func(key string) string { return key },
		Active:       func(p Profile) bool { return p.Active.Bool() },
		WithActive: func(p Profile, v bool) Profile {
			p.Active = domain.ActiveFlag(v)
			return p
		},
		Columns: []Column[Profile]{
			{Title: "Usuario", Value: func(p Profile) string { return p.Username }},
			{Title: "Nombre", Value: func(p Profile) string { return p.Name }},
			{Title: "Email", Value: func(p Profile) string { return p.Email }},
			{Title: "Rol", Value: func(p Profile) string { return p.Role }},
			{Title: "Creado", Value: func(p Profile) string { return datePart(p.CreatedAt) }},
		},
		Fields: []Field{
			{Name: "username", Label: "Usuario", Required: true, Key: true},
			{Name: "nombre", Label: "Nombre", Required: true},
			{Name: "email", Label: "Email"},
			{Name: "rol", Label: "Rol"},
			// New profiles start active; the edit form carries the record's
			// current flag so saving an inactive profile keeps it inactive.
			{Name: "activo", Label: "Activo", Default: "1"},
			{Name: "password", Label: "Password", Password: true},
		},
		FormValues: func(p Profile) map[string]string {
			return map[string]string{
				"username": p.Username,
				"nombre":   p.Name,
				"email":    p.Email,
				"rol":      p.Role,
				"activo":   flagValue(p.Active.Bool()),
			}
		},
	}
}

// ClientSchema describes the client-registry screen's table. The RUT is both
// the identity key and a regular payload field; the backend upserts by it,
// so no separate edit-key field exists.
func ClientSchema() Schema[ClientRecord] {
	return Schema[ClientRecord]{
		Name:         "cliente",
		Collection:   "clientes",
		KeyParam:     "rut",
		Key:          func(c ClientRecord) string { return c.RUT },
		NormalizeKey: rut.Normalize,
		FormatKey:    rut.Format,
		Active:       func(c ClientRecord) bool { return c.Active.Bool() },
		WithActive: func(c ClientRecord, v bool) ClientRecord {
			c.Active = domain.ActiveFlag(v)
			return c
		},
		Columns: []Column[ClientRecord]{
			{Title: "RUT", Value: func(c ClientRecord) string { return rut.Format(c.RUT) }},
			{Title: "Razón Social", Value: func(c ClientRecord) string { return c.BusinessName }},
			{Title: "Giro", Value: func(c ClientRecord) string { return c.Activity }},
			{Title: "Teléfono", Value: func(c ClientRecord) string { return c.Phone }},
			{Title: "Email", Value: func(c ClientRecord) string { return c.Email }},
			{Title: "Comuna", Value: func(c ClientRecord) string { return c.Commune }},
		},
		Fields: []Field{
			{Name: "rut", Label: "RUT", Required: true, Key: true},
			{Name: "razon_social", Label: "Razón Social", Required: true},
			{Name: "giro", Label: "Giro"},
			{Name: "telefono", Label: "Teléfono"},
			{Name: "email", Label: "Email"},
			{Name: "direccion", Label: "Dirección"},
			{Name: "comuna", Label: "Comuna"},
			{Name: "cuenta_corriente", Label: "Cuenta Corriente"},
			{Name: "banco", Label: "Banco"},
			{Name: "observaciones", Label: "Observaciones"},
		},
		FormValues: func(c ClientRecord) map[string]string {
			return map[string]string{
				"rut":              rut.Format(c.RUT),
				"razon_social":     c.BusinessName,
				"giro":             c.Activity,
				"telefono":         c.Phone,
				"email":            c.Email,
				"direccion":        c.Address,
				"comuna":           c.Commune,
				"cuenta_corriente": c.BankAccount,
				"banco":            c.Bank,
				"observaciones":    c.Notes,
			}
		},
	}
}

// flagValue renders a boolean the way the activo field travels: "1" or "0".
func flagValue(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// datePart keeps only the date portion of a date-or-datetime string.
func datePart(s string) string {
	if s == "" {
		return ""
	}
	if cut := strings.IndexAny(s, "T "); cut > 0 {
		return s[:cut]
	}
	return s
}
