package panel

import (
	"context"
	"net/url"
)

// Store holds the in-memory snapshot of one entity collection. Load always
// replaces the whole snapshot; nothing is ever patched in place, so the
// only staleness possible is one round trip behind the server.
type Store[T any] struct {
	client *Client
	schema Schema[T]
	notify *Notifier

	records []T
}

// NewStore creates an empty store for the schema's collection.
func NewStore[T any](client *Client, schema Schema[T], notify *Notifier) *Store[T] {
	return &Store[T]{client: client, schema: schema, notify: notify}
}

// Load fetches the collection, optionally filtered by estado, and replaces
// the snapshot with the result. On any transport or decode failure the
// snapshot becomes empty and an error notification is raised; Load never
// panics and always returns the new snapshot.
func (s *Store[T]) Load(ctx context.Context, estado string) []T {
	path := s.schema.collectionPath()
	if estado != "" {
		path += "?estado=" + url.QueryEscape(estado)
	}

	records, err := fetchJSON[[]T](ctx, s.client, path)
	if err != nil {
		s.records = nil
		s.notify.Error("No se pudieron cargar los registros")
		return s.Records()
	}
	s.records = records
	return s.Records()
}

// Records returns the current snapshot.
func (s *Store[T]) Records() []T {
	if s.records == nil {
		return []T{}
	}
	return s.records
}

// FindByKey scans the snapshot for the record with the given identity key.
// Both sides are normalized first, so any formatting variant of the same
// key matches. The snapshot is table-sized, a linear scan is fine.
func (s *Store[T]) FindByKey(key string) (T, bool) {
	want := s.schema.NormalizeKey(key)
	for _, rec := range s.records {
		if s.schema.NormalizeKey(s.schema.Key(rec)) == want {
			return rec, true
		}
	}
	var zero T
	return zero, false
}
