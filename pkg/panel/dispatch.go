package panel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
)

// ConfirmFunc asks the user a blocking yes/no question and reports the
// answer. Destructive actions run only on a yes.
type ConfirmFunc func(message string) bool

// Dispatcher runs the per-row operations of one screen. Every operation
// checks the gate before touching the network, so the policy holds even
// if a control slipped past the renderer. Failures raise a notification
// and leave the snapshot untouched; none of them are fatal to the screen.
type Dispatcher[T any] struct {
	client  *Client
	schema  Schema[T]
	store   *Store[T]
	gate    *Gate
	notify  *Notifier
	confirm ConfirmFunc
	role    string
	log     zerolog.Logger
}

// NewDispatcher creates a dispatcher acting as the given role.
func NewDispatcher[T any](
	client *Client,
	schema Schema[T],
	store *Store[T],
	gate *Gate,
	notify *Notifier,
	confirm ConfirmFunc,
	role string,
	log zerolog.Logger,
) *Dispatcher[T] {
	return &Dispatcher[T]{
		client:  client,
		schema:  schema,
		store:   store,
		gate:    gate,
		notify:  notify,
		confirm: confirm,
		role:    role,
		log:     log,
	}
}

// View fetches the record's canonical detail for a read-only display.
// On any failure it raises an error notification and reports no record,
// so the caller never opens the detail view.
func (d *Dispatcher[T]) View(ctx context.Context, key string) (T, bool) {
	var zero T
	if !d.gate.Allowed(d.role, ActionView) {
		return zero, false
	}

	record, err := fetchJSON[T](ctx, d.client, d.schema.recordPath(key))
	if err != nil {
		d.log.Error().Err(err).Str("key", key).Msgf("fetching %s detail", d.schema.Name)
		d.notify.Error(fmt.Sprintf("No se pudo cargar el %s", d.schema.Name))
		return zero, false
	}
	return record, true
}

// Delete removes the record after an explicit confirmation. On success the
// store reloads and a success notification appears; on failure only an
// error notification, the snapshot stays as it was.
func (d *Dispatcher[T]) Delete(ctx context.Context, key string) bool {
	if !d.gate.Allowed(d.role, ActionDelete) {
		return false
	}
	if !d.confirm(fmt.Sprintf("¿Eliminar este %s?", d.schema.Name)) {
		return false
	}

	normalized := d.schema.NormalizeKey(key)
	path := d.schema.collectionPath() + "?" + d.schema.KeyParam + "=" + url.QueryEscape(normalized)

	if err := d.client.submit(ctx, http.MethodDelete, path, nil); err != nil {
		d.log.Error().Err(err).Str("key", normalized).Msgf("deleting %s", d.schema.Name)
		d.notify.Error(submitMessage(err, d.schema.Name))
		return false
	}

	d.notify.Success(fmt.Sprintf("%s eliminado", d.schema.Name))
	d.store.Load(ctx, "")
	return true
}

// ToggleActive flips the record's active flag and re-submits the whole
// record from the local snapshot. This is a full-resource replace: a field
// the snapshot does not carry is dropped on the server. The partial-update
// endpoint exists for callers that need to avoid that.
func (d *Dispatcher[T]) ToggleActive(ctx context.Context, key string) bool {
	if !d.gate.Allowed(d.role, ActionToggle) {
		return false
	}

	record, ok := d.store.FindByKey(key)
	if !ok {
		d.notify.Error(fmt.Sprintf("%s no encontrado", d.schema.Name))
		return false
	}

	flipped := d.schema.WithActive(record, !d.schema.Active(record))
	payload, err := recordPayload(flipped)
	if err != nil {
		d.log.Error().Err(err).Str("key", key).Msg("encoding toggle payload")
		d.notify.Error(fmt.Sprintf("No se pudo actualizar el %s", d.schema.Name))
		return false
	}
	if d.schema.EditKeyField != "" {
		payload[d.schema.EditKeyField] = d.schema.NormalizeKey(d.schema.Key(record))
	}

	if err := d.client.submit(ctx, http.MethodPost, d.schema.collectionPath(), payload); err != nil {
		d.log.Error().Err(err).Str("key", key).Msgf("toggling %s", d.schema.Name)
		d.notify.Error(submitMessage(err, d.schema.Name))
		return false
	}

	d.notify.Success(fmt.Sprintf("%s actualizado", d.schema.Name))
	d.store.Load(ctx, "")
	return true
}

// ChangePassword is the self-service password change of the admin screen.
// It is not row-scoped and not gated: every signed-in user may change
// their own password. All three inputs are validated before any network
// call; on success only the form fields are cleared, the table does not
// reload since the acting user is not a listed entity.
func (d *Dispatcher[T]) ChangePassword(ctx context.Context, current, next, confirmation string) bool {
	switch {
	case current == "":
		d.notify.Error("La contraseña actual es obligatoria")
		return false
	case len(next) < minPasswordLen:
		d.notify.Error(fmt.Sprintf("La contraseña nueva debe tener al menos %d caracteres", minPasswordLen))
		return false
	case next != confirmation:
		d.notify.Error("Las contraseñas no coinciden")
		return false
	}

	payload := map[string]string{
		"password_actual": current,
		"password_nueva":  next,
	}
	if err := d.client.submit(ctx, http.MethodPost, "/api/cambiar-password", payload); err != nil {
		d.log.Error().Err(err).Msg("changing password")
		if apiErr, ok := err.(*APIError); ok && apiErr.Message != "" {
			d.notify.Error(apiErr.Message)
		} else {
			d.notify.Error("No se pudo actualizar la contraseña")
		}
		return false
	}

	d.notify.Success("Contraseña actualizada")
	return true
}

// recordPayload flattens a record into the generic payload map the
// collection endpoint accepts.
func recordPayload[T any](record T) (map[string]any, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
