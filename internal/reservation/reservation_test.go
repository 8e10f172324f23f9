package reservation

import (
	"strings"
	"testing"
)

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{" 10:00 ", 600, false},
		{"24:00", 0, true},
		{"9:30am", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := MinutesOfDay(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("MinutesOfDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("MinutesOfDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := Reservation{
		Title:     "Reunião de equipe",
		User:      "ana",
		Date:      "2024-03-15",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    StatusPending,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate(valid) = %v, want nil", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Reservation)
		wantMsg string
	}{
		{"empty title", func(r *Reservation) { r.Title = "  " }, "title"},
		{"empty user", func(r *Reservation) { r.User = "" }, "user"},
		{"bad date", func(r *Reservation) { r.Date = "15/03/2024" }, "date"},
		{"bad start", func(r *Reservation) { r.StartTime = "nine" }, "start time"},
		{"bad end", func(r *Reservation) { r.EndTime = "25:00" }, "end time"},
		{"end before start", func(r *Reservation) { r.StartTime = "11:00"; r.EndTime = "10:00" }, "after start"},
		{"end equals start", func(r *Reservation) { r.EndTime = r.StartTime }, "after start"},
		{"bad status", func(r *Reservation) { r.Status = "ARCHIVED" }, "unknown status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			if err == nil {
				t.Fatal("Validate = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("Validate error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus("confirmed"); err != nil || s != StatusConfirmed {
		t.Fatalf("ParseStatus(confirmed) = %v, %v", s, err)
	}
	if _, err := ParseStatus("nope"); err == nil {
		t.Fatal("ParseStatus(nope) = nil error, want error")
	}
}

func TestPatchApply(t *testing.T) {
	base := Reservation{
		ID:        "r1",
		Title:     "Original",
		User:      "ana",
		Date:      "2024-03-15",
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    StatusPending,
	}

	title := "Renamed"
	got := Patch{Title: &title}.Apply(base)
	if got.Title != "Renamed" {
		t.Fatalf("Title = %q, want Renamed", got.Title)
	}
	if got.User != "ana" || got.StartTime != "09:00" || got.Status != StatusPending {
		t.Fatalf("unset fields changed: %#v", got)
	}

	if !(Patch{}).IsZero() {
		t.Fatal("empty Patch IsZero = false")
	}
	sp := StatusPatch(StatusConfirmed)
	if sp.IsZero() || *sp.Status != StatusConfirmed {
		t.Fatalf("StatusPatch = %#v", sp)
	}
}
