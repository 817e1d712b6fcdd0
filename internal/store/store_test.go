package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrate_CreatesKVTable(t *testing.T) {
	s := openTestStore(t)
	rows, err := s.DB().Query("SELECT name, pk FROM pragma_table_info('kv') ORDER BY cid")
	require.NoError(t, err)
	defer rows.Close()

	var cols []string
	var primary string
	for rows.Next() {
		var name string
		var pk int
		require.NoError(t, rows.Scan(&name, &pk))
		cols = append(cols, name)
		if pk == 1 {
			primary = name
		}
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"key", "value", "updated_at"}, cols)
	assert.Equal(t, "key", primary)
}

// backends returns one fresh instance of every Backend implementation.
func backends(t *testing.T) map[string]Backend {
	t.Helper()
	f, err := OpenFile(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	return map[string]Backend{
		"sqlite": openTestStore(t),
		"file":   f,
		"memory": NewMemory(),
	}
}

func TestBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := b.Load(ctx, "missing")
			assert.True(t, IsNotFound(err), "load missing: %v", err)

			require.NoError(t, b.Save(ctx, "theme", []byte(`"dark"`)))
			got, err := b.Load(ctx, "theme")
			require.NoError(t, err)
			assert.JSONEq(t, `"dark"`, string(got))

			// Overwrite.
			require.NoError(t, b.Save(ctx, "theme", []byte(`"light"`)))
			got, err = b.Load(ctx, "theme")
			require.NoError(t, err)
			assert.JSONEq(t, `"light"`, string(got))

			// Keys are independent.
			require.NoError(t, b.Save(ctx, "language", []byte(`"ka"`)))
			require.NoError(t, b.Delete(ctx, "theme"))
			_, err = b.Load(ctx, "theme")
			assert.True(t, IsNotFound(err))
			got, err = b.Load(ctx, "language")
			require.NoError(t, err)
			assert.JSONEq(t, `"ka"`, string(got))

			// Deleting a missing key is fine.
			assert.NoError(t, b.Delete(ctx, "never-saved"))
		})
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "k", []byte(`{"a":1}`)))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))
}

func TestFile_Document(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	f, err := OpenFile(path)
	require.NoError(t, err)

	require.NoError(t, f.Save(ctx, "css-animation-mastery-theme", []byte(`"light"`)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"css-animation-mastery-theme":"light"}`, string(data))

	assert.Error(t, f.Save(ctx, "bad", []byte(`not json`)))
}

func TestFile_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	f, err := OpenFile(path)
	require.NoError(t, err)

	_, err = f.Load(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, IsNotFound(err))
}

func TestMemory_CopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	v := []byte(`"x"`)
	require.NoError(t, m.Save(ctx, "k", v))
	v[1] = 'y'
	got, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"x"`, string(got))
	assert.Equal(t, 1, m.Saves())

	m.Seed("s", []byte(`1`))
	assert.Equal(t, 1, m.Saves())
}

func TestOpenBackend(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		kind    Kind
		path    string
		wantErr bool
	}{
		{KindSQLite, filepath.Join(dir, "a.db"), false},
		{"", filepath.Join(dir, "b.db"), false},
		{KindFile, filepath.Join(dir, "c.json"), false},
		{KindMemory, "", false},
		{KindFile, "", true},
		{"redis", "", true},
	}
	for _, tt := range tests {
		b, err := OpenBackend(tt.kind, tt.path)
		if tt.wantErr {
			if err == nil {
				t.Errorf("OpenBackend(%q): expected error", tt.kind)
			}
			continue
		}
		if err != nil {
			t.Errorf("OpenBackend(%q): %v", tt.kind, err)
			continue
		}
		b.Close()
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sub", "x.db")
	t.Setenv("CSSMASTERY_DB", p)
	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
	_, err = os.Stat(filepath.Dir(p))
	assert.NoError(t, err)
}

func TestDefaultDBPath_XDG(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CSSMASTERY_DB", "")
	t.Setenv("XDG_DATA_HOME", home)
	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "css-animation-mastery", "cssmastery.db"), got)
}

func TestUnavailable(t *testing.T) {
	var b Backend = Unavailable{}
	ctx := context.Background()
	_, err := b.Load(ctx, "k")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, b.Save(ctx, "k", []byte("1")), ErrUnavailable)
	assert.ErrorIs(t, b.Delete(ctx, "k"), ErrUnavailable)
}
