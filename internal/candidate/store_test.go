package candidate

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() Profile {
	return Profile{
		Name:       "Grace Hopper",
		Email:      "grace@example.com",
		Phone:      "555-0100",
		Experience: 12,
		Position:   "Principal Engineer",
		Location:   "Arlington",
		TechStack:  "COBOL, Python",
	}
}

func TestFileStore_AppendCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.json")
	store := NewFileStore(path)

	profile := testProfile()
	require.NoError(t, store.Append(profile))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var stored []Profile
	require.NoError(t, json.Unmarshal(data, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, profile, stored[0])
}

func TestFileStore_AppendAccumulates(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "candidates.json"))

	first := testProfile()
	second := testProfile()
	second.Name = "Barbara Liskov"

	require.NoError(t, store.Append(first))
	require.NoError(t, store.Append(second))

	all, err := store.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Grace Hopper", all[0].Name)
	assert.Equal(t, "Barbara Liskov", all[1].Name)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	all, err := store.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFileStore_CorruptFileIsNotRepaired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.json")
	require.NoError(t, os.WriteFile(path, []byte("{not an array"), 0o644))

	store := NewFileStore(path)

	_, err := store.All()
	var corrupt *CorruptStoreError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, path, corrupt.Path)

	// Append must refuse too, leaving the file bytes untouched.
	require.Error(t, store.Append(testProfile()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not an array", string(data))
}

func TestFileStore_ConcurrentAppends(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "candidates.json"))

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.Append(testProfile()); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	all, err := store.All()
	require.NoError(t, err)
	assert.Len(t, all, n)
}

func TestCorruptStoreError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &CorruptStoreError{Path: "x.json", Err: inner}
	assert.ErrorIs(t, err, inner)
}
