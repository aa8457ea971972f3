package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	id, err := store.Create(ctx, "models", Document{"name": "Alina", "status": "active"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rec, err := store.Get(ctx, "models", id)
	require.NoError(t, err)
	assert.Equal(t, "Alina", rec.Data["name"])

	err = store.Update(ctx, "models", id, Document{"status": "inactive"})
	require.NoError(t, err)

	rec, err = store.Get(ctx, "models", id)
	require.NoError(t, err)
	assert.Equal(t, "inactive", rec.Data["status"])
	assert.Equal(t, "Alina", rec.Data["name"], "update merges, it does not replace")

	err = store.Delete(ctx, "models", id)
	require.NoError(t, err)

	_, err = store.Get(ctx, "models", id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_MissingID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "models", "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Update(ctx, "models", "missing", Document{"x": 1})
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Delete(ctx, "models", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_FilterAndOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	docs := []Document{
		{"title": "a", "status": "published", "createdAt": "2026-01-03T00:00:00Z"},
		{"title": "b", "status": "draft", "createdAt": "2026-01-01T00:00:00Z"},
		{"title": "c", "status": "published", "createdAt": "2026-01-02T00:00:00Z"},
	}
	for _, d := range docs {
		_, err := store.Create(ctx, "blog", d)
		require.NoError(t, err)
	}

	q := Query{}.Where("status", OpEqual, "published").Sort("createdAt", true)
	records, err := store.List(ctx, "blog", q)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Data["title"])
	assert.Equal(t, "c", records[1].Data["title"])
}

func TestMemoryStore_RangeFilter(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Create(ctx, "bookings", Document{"clientName": "past", "date": "2026-01-01T10:00:00Z"})
	require.NoError(t, err)
	_, err = store.Create(ctx, "bookings", Document{"clientName": "future", "date": "2027-01-01T10:00:00Z"})
	require.NoError(t, err)

	q := Query{}.Where("date", OpGte, "2026-06-01T00:00:00Z").Sort("date", false)
	records, err := store.List(ctx, "bookings", q)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "future", records[0].Data["clientName"])
}

func TestMemoryStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	err := store.Set(ctx, "settings", "agency", Document{"agencyName": "Elite", "phone": "1"})
	require.NoError(t, err)

	// Full overwrite: previously present fields do not survive.
	err = store.Set(ctx, "settings", "agency", Document{"agencyName": "Elite Models"})
	require.NoError(t, err)

	rec, err := store.Get(ctx, "settings", "agency")
	require.NoError(t, err)
	assert.Equal(t, "Elite Models", rec.Data["agencyName"])
	_, hasPhone := rec.Data["phone"]
	assert.False(t, hasPhone)
}

func TestMemoryStore_ListIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	id, err := store.Create(ctx, "models", Document{"name": "original"})
	require.NoError(t, err)

	records, err := store.List(ctx, "models", Query{})
	require.NoError(t, err)
	records[0].Data["name"] = "mutated"

	rec, err := store.Get(ctx, "models", id)
	require.NoError(t, err)
	assert.Equal(t, "original", rec.Data["name"], "returned documents are copies")
}

func TestEncodeDecode(t *testing.T) {
	type sample struct {
		Name   string   `json:"name"`
		Photos []string `json:"photos"`
	}

	doc, err := Encode(sample{Name: "x", Photos: []string{"u1", "u2"}})
	require.NoError(t, err)
	assert.Equal(t, "x", doc["name"])

	var out sample
	require.NoError(t, Decode(doc, &out))
	assert.Equal(t, []string{"u1", "u2"}, out.Photos)
}
