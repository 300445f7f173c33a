package database

import (
	"path/filepath"
	"testing"
)

// Обе реализации обязаны вести себя одинаково.
func runStoreSuite(t *testing.T, s Store) {
	t.Helper()

	if _, ok := s.Get(1); ok {
		t.Error("Get по несуществующему ключу вернул ok")
	}
	if s.Count() != 0 {
		t.Errorf("Count = %d, want 0", s.Count())
	}

	st := DialogState{State: StateWaitingName, FileName: "bank.txt", TimeMinutes: 20}
	if err := s.Set(1, st); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := s.Get(1)
	if !ok {
		t.Fatal("Get после Set не нашёл состояние")
	}
	if got.State != StateWaitingName || got.FileName != "bank.txt" || got.TimeMinutes != 20 {
		t.Errorf("Get вернул %+v", got)
	}
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}

	if err := s.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := s.Get(1); ok {
		t.Error("Get после Delete вернул ok")
	}
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, NewMemoryStore())
}

func TestJSONStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "states.json")
	runStoreSuite(t, NewJSONStore(path))

	// Состояние переживает пересоздание хранилища над тем же файлом.
	first := NewJSONStore(path)
	if err := first.Set(7, DialogState{State: StateWaitingFile}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	second := NewJSONStore(path)
	if got, ok := second.Get(7); !ok || got.State != StateWaitingFile {
		t.Errorf("после пересоздания: ok=%v, state=%+v", ok, got)
	}
}

func TestNewStoreSelectsByType(t *testing.T) {
	if _, ok := NewStore("memory", "").(*MemoryStore); !ok {
		t.Error("NewStore(memory) вернул не MemoryStore")
	}
	path := filepath.Join(t.TempDir(), "s.json")
	if _, ok := NewStore("json", path).(*JSONStore); !ok {
		t.Error("NewStore(json) вернул не JSONStore")
	}
}
