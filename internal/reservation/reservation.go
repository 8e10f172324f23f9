package reservation

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Status is a reservation lifecycle state.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCanceled  Status = "CANCELED"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled}

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range Statuses {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", raw)
}

// Terminal reports whether s has no outgoing transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// Reservation is a time-boxed booking held by a named user.
type Reservation struct {
	ID        string
	Title     string
	User      string
	Date      string // 2006-01-02
	StartTime string // 15:04, 24h
	EndTime   string // 15:04, 24h
	Status    Status
}

// Validate checks field shape and the start-before-end invariant.
func (r Reservation) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(r.User) == "" {
		return fmt.Errorf("user is required")
	}
	if _, err := time.Parse(dateLayout, r.Date); err != nil {
		return fmt.Errorf("date %q: want %s", r.Date, dateLayout)
	}
	start, err := MinutesOfDay(r.StartTime)
	if err != nil {
		return fmt.Errorf("start time: %w", err)
	}
	end, err := MinutesOfDay(r.EndTime)
	if err != nil {
		return fmt.Errorf("end time: %w", err)
	}
	if start >= end {
		return fmt.Errorf("end time %s must be after start time %s", r.EndTime, r.StartTime)
	}
	if _, err := ParseStatus(string(r.Status)); err != nil {
		return err
	}
	return nil
}

// MinutesOfDay converts an HH:MM wall-clock value to minutes since midnight.
func MinutesOfDay(value string) (int, error) {
	t, err := time.Parse(timeLayout, strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("parse time %q: want %s", value, timeLayout)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Patch carries an optional replacement for each mutable field. A nil
// field is left untouched so partial updates never blank out values.
type Patch struct {
	Title     *string
	User      *string
	Date      *string
	StartTime *string
	EndTime   *string
	Status    *Status
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.User == nil && p.Date == nil &&
		p.StartTime == nil && p.EndTime == nil && p.Status == nil
}

// Apply merges the set fields of p over r and returns the result.
func (p Patch) Apply(r Reservation) Reservation {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.User != nil {
		r.User = *p.User
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.StartTime != nil {
		r.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		r.EndTime = *p.EndTime
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	return r
}

// StatusPatch builds a patch that only changes the status.
func StatusPatch(to Status) Patch {
	return Patch{Status: &to}
}
