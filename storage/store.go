package storage

import (
	"encoding/json"
	"reflect"

	log "github.com/sirupsen/logrus"
)

// Prefix namespaces every key the app writes, mirroring the dashboard's
// storage layout.
const Prefix = "health-app-"

// Backend is raw durable string storage by key. Implementations must treat
// values as opaque.
type Backend interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Store is the sole I/O boundary for the trackers: JSON in, JSON out, and
// no error ever reaches a caller. A failed read leaves the caller's default
// in place; a failed write leaves in-memory state authoritative for the
// rest of the session.
type Store struct {
	backend Backend
}

func New(b Backend) *Store {
	return &Store{backend: b}
}

// Load reads the entry under key into dest. dest must be a non-nil pointer,
// pre-filled with the caller's default; on a missing or malformed entry it
// is left untouched and the failure is only logged.
func (s *Store) Load(key string, dest any) {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		log.Errorf("load %s: dest must be a non-nil pointer", key)
		return
	}

	raw, ok, err := s.backend.Get(Prefix + key)
	if err != nil {
		log.Errorf("load %s: %s", key, err)
		return
	}
	if !ok {
		return
	}

	// decode into a scratch value so a malformed entry cannot half-fill dest
	tmp := reflect.New(rv.Type().Elem())
	if err := json.Unmarshal([]byte(raw), tmp.Interface()); err != nil {
		log.Errorf("load %s: malformed entry: %s", key, err)
		return
	}
	rv.Elem().Set(tmp.Elem())
}

// Save serializes v and writes it under key. Failures are logged, never
// returned.
func (s *Store) Save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Errorf("save %s: marshal: %s", key, err)
		return
	}
	if err := s.backend.Set(Prefix+key, string(data)); err != nil {
		log.Errorf("save %s: %s", key, err)
	}
}

// Delete removes the entry under key, if any.
func (s *Store) Delete(key string) {
	if err := s.backend.Delete(Prefix + key); err != nil {
		log.Errorf("delete %s: %s", key, err)
	}
}
