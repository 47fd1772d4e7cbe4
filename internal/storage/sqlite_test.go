package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/killer-emoji/internal/core"
)

func openTestStore(t *testing.T, dbPath string) *Store {
	t.Helper()
	store, err := Open(dbPath, Options{})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// scoreStore is the behaviour shared by Store and Memory.
type scoreStore interface {
	Load() []core.HighScore
	Save(core.HighScore) error
	Reset() error
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath, Options{})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoresRankAndTruncate(t *testing.T) {
	sqlite := openTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	stores := map[string]scoreStore{
		"sqlite": sqlite,
		"memory": NewMemory(DefaultLimit),
	}

	saves := []core.HighScore{
		{Name: "A", Score: 50},
		{Name: "B", Score: 80},
		{Name: "C", Score: 30},
		{Name: "D", Score: 90},
		{Name: "E", Score: 70},
		{Name: "F", Score: 60},
	}
	expected := []core.HighScore{
		{Name: "D", Score: 90},
		{Name: "B", Score: 80},
		{Name: "E", Score: 70},
		{Name: "F", Score: 60},
		{Name: "A", Score: 50},
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			if got := store.Load(); len(got) != 0 {
				t.Fatalf("new store holds %+v", got)
			}

			for _, e := range saves {
				if err := store.Save(e); err != nil {
					t.Fatalf("Save(%+v) failed: %v", e, err)
				}
			}

			got := store.Load()
			if !reflect.DeepEqual(got, expected) {
				t.Errorf("Load() = %+v, expected %+v", got, expected)
			}

			if err := store.Reset(); err != nil {
				t.Fatalf("Reset() failed: %v", err)
			}
			if got := store.Load(); len(got) != 0 {
				t.Errorf("Load() after Reset = %+v", got)
			}
		})
	}
}

func TestStoreSaveIdempotent(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	for _, e := range []core.HighScore{{Name: "X", Score: 10}, {Name: "Y", Score: 20}} {
		if err := store.Save(e); err != nil {
			t.Fatal(err)
		}
	}
	first, err := store.Raw()
	if err != nil {
		t.Fatal(err)
	}

	// Ranking an already ranked board again changes nothing
	board := store.Load()
	again := core.RankScores(board, DefaultLimit)
	if !reflect.DeepEqual(board, again) {
		t.Errorf("ranking is not idempotent: %+v vs %+v", board, again)
	}

	second, err := store.Raw()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("stored value changed on read: %q vs %q", first, second)
	}
}

func TestStoreCorruptValue(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	if _, err := store.db.Exec("INSERT INTO kv (key, value) VALUES (?, ?)", DefaultKey, "{not json"); err != nil {
		t.Fatal(err)
	}

	if got := store.Load(); len(got) != 0 {
		t.Errorf("corrupt value should read as empty, got %+v", got)
	}

	if err := store.Save(core.HighScore{Name: "Z", Score: 5}); err != nil {
		t.Fatalf("Save() over corrupt value failed: %v", err)
	}
	got := store.Load()
	if len(got) != 1 || got[0].Name != "Z" {
		t.Errorf("Load() = %+v, expected the fresh entry", got)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath, Options{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []int{3, 9, 6} {
		if err := store.Save(core.HighScore{Name: "P", Score: s}); err != nil {
			t.Fatal(err)
		}
	}
	store.Close()

	reopened := openTestStore(t, dbPath)
	got := reopened.Load()
	if len(got) != 2 || got[0].Score != 9 || got[1].Score != 6 {
		t.Errorf("Load() = %+v, expected [9 6]", got)
	}
}

func TestStoreKeysAreIndependent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	a, err := Open(dbPath, Options{Key: "a"})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	if err := a.Save(core.HighScore{Name: "A", Score: 1}); err != nil {
		t.Fatal(err)
	}

	b, err := Open(dbPath, Options{Key: "b"})
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()
	if got := b.Load(); len(got) != 0 {
		t.Errorf("key b sees %+v", got)
	}
}
