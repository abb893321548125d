package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// storeFactories builds one fresh store per driver for shared contract tests.
func storeFactories(t *testing.T) map[string]func(t *testing.T) Store {
	t.Helper()

	return map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store {
			return NewMemory()
		},
		"file": func(t *testing.T) Store {
			s, err := NewFile(t.TempDir())
			require.NoError(t, err)
			return s
		},
		"sqlite": func(t *testing.T) Store {
			s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
			require.NoError(t, err)
			t.Cleanup(func() { s.Close() })
			return s
		},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)

			_, err := s.Get(ctx, "tasks")
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Set(ctx, "tasks", `[{"id":"t1"}]`))
			got, err := s.Get(ctx, "tasks")
			require.NoError(t, err)
			require.Equal(t, `[{"id":"t1"}]`, got)

			// Overwrite replaces the previous value.
			require.NoError(t, s.Set(ctx, "tasks", `[]`))
			got, err = s.Get(ctx, "tasks")
			require.NoError(t, err)
			require.Equal(t, `[]`, got)

			require.NoError(t, s.Delete(ctx, "tasks"))
			_, err = s.Get(ctx, "tasks")
			require.ErrorIs(t, err, ErrNotFound)

			// Deleting an absent key is not an error.
			require.NoError(t, s.Delete(ctx, "tasks"))
		})
	}
}

func TestStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()

	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)

			require.NoError(t, s.Set(ctx, "revenue.goal", "10000"))
			require.NoError(t, s.Set(ctx, "revenue.clients", "[]"))

			goal, err := s.Get(ctx, "revenue.goal")
			require.NoError(t, err)
			require.Equal(t, "10000", goal)

			clients, err := s.Get(ctx, "revenue.clients")
			require.NoError(t, err)
			require.Equal(t, "[]", clients)
		})
	}
}

func TestFile_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	s1, err := NewFile(root)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "notes", "remember the milk"))
	require.NoError(t, s1.Close())

	s2, err := NewFile(root)
	require.NoError(t, err)
	got, err := s2.Get(ctx, "notes")
	require.NoError(t, err)
	require.Equal(t, "remember the milk", got)
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "opsdeck.db")

	s1, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "tab", `"board"`))
	require.NoError(t, s1.Close())

	s2, err := NewSQLite(path)
	require.NoError(t, err)
	defer s2.Close()
	got, err := s2.Get(ctx, "tab")
	require.NoError(t, err)
	require.Equal(t, `"board"`, got)
}

func TestOpen_SelectsDriver(t *testing.T) {
	s, err := Open(DriverMemory, "")
	require.NoError(t, err)
	require.IsType(t, &Memory{}, s)

	s, err = Open(DriverFile, t.TempDir())
	require.NoError(t, err)
	require.IsType(t, &File{}, s)

	s, err = Open(DriverSQLite, filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	require.IsType(t, &SQLite{}, s)
	require.NoError(t, s.Close())

	_, err = Open("bogus", "")
	require.Error(t, err)
}
