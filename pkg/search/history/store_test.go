package history

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStoreAdd(t *testing.T) {
	tests := []struct {
		name    string
		queries []string
		want    []string
	}{
		{
			name:    "single query",
			queries: []string{"foo"},
			want:    []string{"foo"},
		},
		{
			name:    "newest first",
			queries: []string{"foo", "bar"},
			want:    []string{"bar", "foo"},
		},
		{
			name:    "re-add moves to front without duplicating",
			queries: []string{"c", "b", "a", "b"},
			want:    []string{"b", "a", "c"},
		},
		{
			name:    "blank queries ignored",
			queries: []string{"foo", "", "   "},
			want:    []string{"foo"},
		},
		{
			name:    "queries are trimmed",
			queries: []string{"  foo  "},
			want:    []string{"foo"},
		},
		{
			name:    "dedup is case sensitive",
			queries: []string{"foo", "Foo"},
			want:    []string{"Foo", "foo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(NewMemoryStorage())
			for _, q := range tt.queries {
				store.Add(q)
			}

			got := store.Get()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Get() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStoreBound(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	for i := 0; i < 25; i++ {
		store.Add(fmt.Sprintf("query-%d", i))
	}

	got := store.Get()
	if len(got) != MaxEntries {
		t.Fatalf("got %d entries, want %d", len(got), MaxEntries)
	}
	if got[0] != "query-24" {
		t.Errorf("newest entry is %q, want query-24", got[0])
	}
	if got[MaxEntries-1] != "query-15" {
		t.Errorf("oldest surviving entry is %q, want query-15", got[MaxEntries-1])
	}

	seen := make(map[string]bool)
	for _, e := range got {
		if seen[e] {
			t.Errorf("duplicate entry %q", e)
		}
		seen[e] = true
	}
}

func TestStoreRemove(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.Add("a")
	store.Add("b")
	store.Add("c")

	store.Remove("b")
	if got := store.Get(); !reflect.DeepEqual(got, []string{"c", "a"}) {
		t.Errorf("after remove: %v", got)
	}

	// Removing something absent is a no-op.
	store.Remove("missing")
	if got := store.Get(); !reflect.DeepEqual(got, []string{"c", "a"}) {
		t.Errorf("after no-op remove: %v", got)
	}
}

func TestStoreClear(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.Add("a")
	store.Add("b")

	store.Clear()
	if got := store.Get(); len(got) != 0 {
		t.Errorf("after clear: %v", got)
	}
}

func TestStoreGetEmptyBeforeAnyAdd(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	got := store.Get()
	if got == nil || len(got) != 0 {
		t.Errorf("Get() = %v, want empty non-nil list", got)
	}
}

func TestStoreCorruptedPayload(t *testing.T) {
	storage := NewMemoryStorage()
	if err := storage.Set(StorageKey, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	store := NewStore(storage)
	if got := store.Get(); len(got) != 0 {
		t.Errorf("corrupted payload should read as empty, got %v", got)
	}

	// Adding on top of a corrupted payload starts fresh.
	store.Add("foo")
	if got := store.Get(); !reflect.DeepEqual(got, []string{"foo"}) {
		t.Errorf("after add over corruption: %v", got)
	}
}

// failingStorage errors on every operation, simulating disabled or
// exhausted local storage.
type failingStorage struct{}

func (failingStorage) Get(key string) ([]byte, error)        { return nil, errors.New("storage disabled") }
func (failingStorage) Set(key string, value []byte) error    { return errors.New("storage disabled") }
func (failingStorage) Remove(key string) error               { return errors.New("storage disabled") }

func TestStoreFailsSoft(t *testing.T) {
	store := NewStore(failingStorage{})

	// None of these may panic or surface an error.
	store.Add("foo")
	store.Remove("foo")
	store.Clear()

	if got := store.Get(); len(got) != 0 {
		t.Errorf("Get() on failing storage = %v, want empty", got)
	}
}

func TestFileStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(NewFileStorage(dir))

	store.Add("foo")
	store.Add("bar")

	// A fresh store over the same directory sees the persisted list.
	reopened := NewStore(NewFileStorage(dir))
	if got := reopened.Get(); !reflect.DeepEqual(got, []string{"bar", "foo"}) {
		t.Errorf("reopened Get() = %v", got)
	}

	reopened.Clear()
	if got := reopened.Get(); len(got) != 0 {
		t.Errorf("after clear: %v", got)
	}
}

func TestFileStorageMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	store := NewStore(NewFileStorage(dir))

	if got := store.Get(); len(got) != 0 {
		t.Errorf("Get() on missing dir = %v, want empty", got)
	}

	// Set creates the directory on demand.
	store.Add("foo")
	if got := store.Get(); !reflect.DeepEqual(got, []string{"foo"}) {
		t.Errorf("after add: %v", got)
	}
}
