package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStoreRoundTrip(t *testing.T) {
	store := New(NewMemoryBackend())

	store.Save("rec", record{Name: "steps", Count: 42})

	var got record
	store.Load("rec", &got)
	assert.Equal(t, record{Name: "steps", Count: 42}, got)
}

func TestStoreMissingKeyKeepsDefault(t *testing.T) {
	store := New(NewMemoryBackend())

	got := record{Name: "default", Count: 7}
	store.Load("nope", &got)
	assert.Equal(t, record{Name: "default", Count: 7}, got)
}

func TestStoreMalformedEntryKeepsDefault(t *testing.T) {
	backend := NewMemoryBackend()
	store := New(backend)

	require.NoError(t, backend.Set(Prefix+"rec", "{not json"))

	got := record{Name: "default", Count: 7}
	store.Load("rec", &got)
	assert.Equal(t, record{Name: "default", Count: 7}, got)
}

func TestStoreWrongShapeKeepsDefault(t *testing.T) {
	backend := NewMemoryBackend()
	store := New(backend)

	// parses as JSON but not into the destination type
	require.NoError(t, backend.Set(Prefix+"rec", `{"name": 12, "count": "x"}`))

	got := record{Name: "default", Count: 7}
	store.Load("rec", &got)
	assert.Equal(t, record{Name: "default", Count: 7}, got)
}

func TestStoreKeysAreNamespaced(t *testing.T) {
	backend := NewMemoryBackend()
	store := New(backend)

	store.Save("rec", record{Name: "x"})

	_, ok, err := backend.Get(Prefix + "rec")
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = backend.Get("rec")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreDelete(t *testing.T) {
	backend := NewMemoryBackend()
	store := New(backend)

	store.Save("rec", record{Name: "x"})
	store.Delete("rec")

	_, ok, err := backend.Get(Prefix + "rec")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileBackendRoundTrip(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)
	store := New(backend)

	store.Save("rec", record{Name: "water", Count: 8})

	var got record
	store.Load("rec", &got)
	assert.Equal(t, record{Name: "water", Count: 8}, got)

	_, ok, err := backend.Get(Prefix + "rec")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFileBackendMissingKey(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	_, ok, err := backend.Get("absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileBackendOverwrite(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)

	require.NoError(t, backend.Set("k", "one"))
	require.NoError(t, backend.Set("k", "two"))

	v, ok, err := backend.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "two", v)

	reopened, err := NewFileBackend(dir)
	require.NoError(t, err)
	v, ok, err = reopened.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "two", v)
}
