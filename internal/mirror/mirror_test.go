package mirror

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lfreitas/reserva/internal/api"
)

func TestMirror_LoadMissingFileIsEmpty(t *testing.T) {
	m := New(t.TempDir(), "")
	recs, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("Load = %#v, want empty", recs)
	}
}

func TestMirror_SaveLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	m := New(dir, "")

	want := []api.Record{
		{ID: "1", Title: "Sala A", User: "ana", Date: "2024-06-03", StartTime: "09:00", EndTime: "10:00", Status: "PENDING"},
		{ID: "2", Title: "Sala B", User: "bia", Date: "2024-06-04", StartTime: "11:00", EndTime: "12:00", Status: "CONFIRMED"},
	}
	if err := m.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Load = %#v, want %#v", got, want)
	}
}

func TestMirror_SaveNilWritesEmptyArray(t *testing.T) {
	m := New(t.TempDir(), "")
	if err := m.Save(nil); err != nil {
		t.Fatalf("Save(nil): %v", err)
	}
	raw, err := os.ReadFile(m.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("mirror file = %q, want empty array", raw)
	}
}

func TestMirror_SeedEmbeddedFallback(t *testing.T) {
	m := New(t.TempDir(), "")
	recs, err := m.Seed()
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("Seed returned no records from embedded snapshot")
	}
	if recs[0].StartTime == "" {
		t.Fatalf("seed record missing start_time: %#v", recs[0])
	}
}

func TestMirror_SeedFromBootstrapFile(t *testing.T) {
	dir := t.TempDir()
	bootstrap := filepath.Join(dir, "bootstrap.json")
	payload := `{"reservations":[{"id":"b1","title":"Lab","user":"duda","date":"2024-07-01","start_time":"08:00","end_time":"09:00","status":"PENDING"}]}`
	if err := os.WriteFile(bootstrap, []byte(payload), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m := New(dir, bootstrap)
	recs, err := m.Seed()
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "b1" {
		t.Fatalf("Seed = %#v, want the bootstrap file record", recs)
	}
}

func TestMirror_SeedMissingBootstrapFileFallsBack(t *testing.T) {
	m := New(t.TempDir(), filepath.Join(t.TempDir(), "missing.json"))
	recs, err := m.Seed()
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("Seed should fall back to the embedded snapshot")
	}
}
