package ui

import (
	"errors"
	"testing"

	"github.com/lfreitas/reserva/internal/reservation"
	"github.com/lfreitas/reserva/internal/view"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a longer reservation title", 10, "a longer …"},
		{"ab", 1, "a"},
		{"Auditório da diretoria", 10, "Auditório…"},
		{"Sala de reunião B", 16, "Sala de reunião…"},
		{"Auditório", 9, "Auditório"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestNextStatusFilter_CyclesThroughAllStatuses(t *testing.T) {
	seen := map[string]bool{}
	current := view.StatusAll
	for i := 0; i < 5; i++ {
		seen[current] = true
		current = nextStatusFilter(current)
	}
	if current != view.StatusAll {
		t.Fatalf("cycle did not wrap: ended at %q", current)
	}
	for _, s := range reservation.Statuses {
		if !seen[string(s)] {
			t.Errorf("cycle never visited %s", s)
		}
	}
}

func TestNextStatusFilter_UnknownResetsToAll(t *testing.T) {
	if got := nextStatusFilter("bogus"); got != view.StatusAll {
		t.Fatalf("nextStatusFilter(bogus) = %q, want ALL", got)
	}
}

func TestTransitionNotice(t *testing.T) {
	tests := []struct {
		from, to reservation.Status
		want     string
	}{
		{reservation.StatusPending, reservation.StatusCompleted,
			"cannot move PENDING to COMPLETED; next: CONFIRMED or CANCELED"},
		{reservation.StatusConfirmed, reservation.StatusPending,
			"cannot move CONFIRMED to PENDING; next: COMPLETED or CANCELED"},
		{reservation.StatusCompleted, reservation.StatusPending,
			"COMPLETED is final; cannot move it to PENDING"},
		{reservation.StatusCanceled, reservation.StatusConfirmed,
			"CANCELED is final; cannot move it to CONFIRMED"},
	}
	for _, tt := range tests {
		if got := transitionNotice(tt.from, tt.to); got != tt.want {
			t.Errorf("transitionNotice(%s, %s) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestCommandDoneClearsNoticeOnSuccess(t *testing.T) {
	m := Model{notice: "cannot move COMPLETED to PENDING"}

	got, _ := m.Update(commandDoneMsg{err: errors.New("boom")})
	m = got.(Model)
	if m.notice == "" {
		t.Fatal("failed command should keep the notice")
	}

	got, _ = m.Update(commandDoneMsg{})
	m = got.(Model)
	if m.notice != "" {
		t.Fatalf("notice = %q after clean command, want empty", m.notice)
	}
}
