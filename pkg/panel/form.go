package panel

import (
	"context"
	"fmt"
	"net/http"
)

// minPasswordLen mirrors the backend's password policy so bad input never
// reaches the network.
const minPasswordLen = 8

// Mode is the form's state tag.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Form is the shared create/edit form of one screen. The edit state is
// explicit and owned by the instance: ModeCreate with no key, or ModeEdit
// with the key of the record being edited. No state survives Close.
type Form[T any] struct {
	client *Client
	schema Schema[T]
	store  *Store[T]
	notify *Notifier

	mode    Mode
	editKey string
	values  map[string]string
}

// NewForm creates a form in create mode with empty fields.
func NewForm[T any](client *Client, schema Schema[T], store *Store[T], notify *Notifier) *Form[T] {
	f := &Form[T]{
		client: client,
		schema: schema,
		store:  store,
		notify: notify,
	}
	f.reset()
	return f
}

// Mode returns the current state tag.
func (f *Form[T]) Mode() Mode { return f.mode }

// EditKey returns the key being edited, empty in create mode.
func (f *Form[T]) EditKey() string { return f.editKey }

// KeyLocked reports whether the identity-key field is read-only. The key
// must not change while editing an existing record.
func (f *Form[T]) KeyLocked() bool { return f.mode == ModeEdit }

// Value returns the current value of the named field.
func (f *Form[T]) Value(name string) string { return f.values[name] }

// SetValue records user input for the named field.
func (f *Form[T]) SetValue(name, value string) { f.values[name] = value }

// OpenCreate clears every field and enters create mode.
func (f *Form[T]) OpenCreate() {
	f.reset()
}

// OpenEdit fetches the record by key from the server so the form shows
// canonical current values rather than the local snapshot, populates the
// fields and enters edit mode with the key field locked. On a failed fetch
// the form stays in its previous state and an error notification is raised.
func (f *Form[T]) OpenEdit(ctx context.Context, key string) error {
	normalized := f.schema.NormalizeKey(key)

	record, err := fetchJSON[T](ctx, f.client, f.schema.recordPath(normalized))
	if err != nil {
		f.notify.Error(fmt.Sprintf("No se pudo cargar el %s", f.schema.Name))
		return err
	}

	f.values = map[string]string{}
	for name, value := range f.schema.FormValues(record) {
		f.values[name] = value
	}
	f.mode = ModeEdit
	f.editKey = normalized
	return nil
}

// Submit validates the fields and posts the form to the collection
// endpoint. Validation failures raise a field-specific notification and
// never touch the network. The payload carries the edit key only in edit
// mode; the backend disambiguates create from update by its presence. On
// success the form closes, resets to create mode and the store reloads.
func (f *Form[T]) Submit(ctx context.Context) error {
	if err := f.validate(); err != nil {
		f.notify.Error(err.Error())
		return err
	}

	payload := map[string]any{}
	for _, field := range f.schema.Fields {
		value := f.values[field.Name]
		if field.Password && value == "" {
			// Absent password on edit means "keep the current one".
			continue
		}
		payload[field.Name] = value
	}
	if f.mode == ModeEdit && f.schema.EditKeyField != "" {
		payload[f.schema.EditKeyField] = f.editKey
	}

	if err := f.client.submit(ctx, http.MethodPost, f.schema.collectionPath(), payload); err != nil {
		f.notify.Error(submitMessage(err, f.schema.Name))
		return err
	}

	f.notify.Success(fmt.Sprintf("%s guardado", f.schema.Name))
	f.Close()
	f.store.Load(ctx, "")
	return nil
}

// Close always returns the form to create mode with empty fields, no
// matter how it was dismissed. A cancelled edit must not leak its state
// into the next open.
func (f *Form[T]) Close() {
	f.reset()
}

func (f *Form[T]) reset() {
	f.mode = ModeCreate
	f.editKey = ""
	f.values = map[string]string{}
	for _, field := range f.schema.Fields {
		if field.Default != "" {
			f.values[field.Name] = field.Default
		}
	}
}

func (f *Form[T]) validate() error {
	for _, field := range f.schema.Fields {
		value := f.values[field.Name]

		if field.Required && value == "" {
			return fmt.Errorf("%s es obligatorio", field.Label)
		}
		if field.Password {
			if f.mode == ModeCreate && value == "" {
				return fmt.Errorf("%s es obligatorio", field.Label)
			}
			if value != "" && len(value) < minPasswordLen {
				return fmt.Errorf("%s debe tener al menos %d caracteres", field.Label, minPasswordLen)
			}
		}
	}
	return nil
}

// submitMessage surfaces the server's own error text when it sent one,
// falling back to a generic message.
func submitMessage(err error, name string) string {
	if apiErr, ok := err.(*APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fmt.Sprintf("No se pudo guardar el %s", name)
}
