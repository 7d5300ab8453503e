package contextstore

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestUpdateMerges(t *testing.T) {
	store := New()

	store.Update(map[string]any{"a": 1})
	store.Update(map[string]any{"b": 2})

	want := map[string]any{"a": 1, "b": 2}
	if got := store.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Snapshot() = %v, want %v", got, want)
	}
}

func TestUpdateOverwrites(t *testing.T) {
	store := New()

	store.Update(map[string]any{"a": 1})
	full := store.Update(map[string]any{"a": 2})

	want := map[string]any{"a": 2}
	if !reflect.DeepEqual(full, want) {
		t.Fatalf("Update() = %v, want %v", full, want)
	}
	if got := store.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Snapshot() = %v, want %v", got, want)
	}
}

func TestUpdateReturnsFullContext(t *testing.T) {
	store := New()

	store.Update(map[string]any{"race_stage": "practice"})
	full := store.Update(map[string]any{"recent_result": "P4"})

	if len(full) != 2 {
		t.Fatalf("expected full context with 2 keys, got %v", full)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	store := New()
	store.Update(map[string]any{"a": 1})

	snap := store.Snapshot()
	snap["a"] = 99
	snap["b"] = 2

	want := map[string]any{"a": 1}
	if got := store.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Fatalf("mutating a snapshot leaked into the store: %v", got)
	}
}

func TestConcurrentUpdatesAndReads(t *testing.T) {
	store := New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				store.Update(map[string]any{fmt.Sprintf("key_%d", n): j})
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = store.Snapshot()
			}
		}()
	}
	wg.Wait()

	if got := store.Len(); got != 16 {
		t.Fatalf("Len() = %d, want 16", got)
	}
}
