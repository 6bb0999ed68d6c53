package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (r testRecord) RecordID() string { return r.ID }

func TestCollectionMissingFileIsEmpty(t *testing.T) {
	col := NewCollection[testRecord](t.TempDir(), "records.json")

	items, err := col.All()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCollectionAppendAndAll(t *testing.T) {
	col := NewCollection[testRecord](t.TempDir(), "records.json")

	require.NoError(t, col.Append(testRecord{ID: "a", Name: "Sourdough", Price: 45}))
	require.NoError(t, col.Append(testRecord{ID: "b", Name: "Croissant", Price: 22.5}))

	items, err := col.All()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Sourdough", items[0].Name)
	assert.Equal(t, 22.5, items[1].Price)
}

func TestCollectionByID(t *testing.T) {
	col := NewCollection[testRecord](t.TempDir(), "records.json")
	require.NoError(t, col.Append(testRecord{ID: "a", Name: "Sourdough"}))

	got, err := col.ByID("a")
	require.NoError(t, err)
	assert.Equal(t, "Sourdough", got.Name)

	_, err = col.ByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionUpdateKeepsPosition(t *testing.T) {
	col := NewCollection[testRecord](t.TempDir(), "records.json")
	require.NoError(t, col.Append(testRecord{ID: "a", Name: "Sourdough"}))
	require.NoError(t, col.Append(testRecord{ID: "b", Name: "Croissant"}))

	require.NoError(t, col.Update("a", testRecord{ID: "a", Name: "Rye Sourdough", Price: 48}))

	items, err := col.All()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Rye Sourdough", items[0].Name)
	assert.Equal(t, "b", items[1].ID)

	err = col.Update("missing", testRecord{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionDelete(t *testing.T) {
	col := NewCollection[testRecord](t.TempDir(), "records.json")
	require.NoError(t, col.Append(testRecord{ID: "a"}))
	require.NoError(t, col.Append(testRecord{ID: "b"}))

	require.NoError(t, col.Delete("a"))

	items, err := col.All()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	// Unknown ids are ignored.
	require.NoError(t, col.Delete("missing"))
}

func TestCollectionCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "records.json"), []byte("{not json"), 0o644))

	col := NewCollection[testRecord](dir, "records.json")
	_, err := col.All()
	assert.ErrorIs(t, err, ErrStorage)
}

func TestCollectionReplaceAll(t *testing.T) {
	col := NewCollection[testRecord](t.TempDir(), "records.json")
	require.NoError(t, col.Append(testRecord{ID: "a"}))

	require.NoError(t, col.ReplaceAll([]testRecord{{ID: "x"}, {ID: "y"}}))

	items, err := col.All()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "x", items[0].ID)
}

func TestCollectionRoundTripPreservesFields(t *testing.T) {
	col := NewCollection[testRecord](t.TempDir(), "records.json")
	want := testRecord{ID: "a", Name: "Chocolate Cake, 20cm", Price: 380}
	require.NoError(t, col.Append(want))

	// A fresh Collection reads from disk, not memory.
	again := NewCollection[testRecord](filepath.Dir(col.path), "records.json")
	got, err := again.ByID("a")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSeedDataCreatesAdminAndCatalog(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "owner@example.com")
	t.Setenv("ADMIN_PASSWORD", "secret123")

	ConnectDir(t.TempDir())
	SeedData()

	users, err := Users.All()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "owner@example.com", users[0].Email)
	assert.True(t, users[0].IsAdmin)
	assert.NotEqual(t, "secret123", users[0].PasswordHash)
	assert.WithinDuration(t, time.Now(), users[0].CreatedAt, time.Minute)

	products, err := Products.All()
	require.NoError(t, err)
	assert.NotEmpty(t, products)
	for _, p := range products {
		assert.NotEmpty(t, p.Slug)
	}
}
