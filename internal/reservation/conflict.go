package reservation

// HasConflict reports whether candidate overlaps an active reservation on
// the same date. excludeID names a reservation to ignore, so an edit never
// conflicts with its own stored version.
//
// Intervals are half-open [start, end): back-to-back bookings that touch at
// an endpoint do not conflict. A CANCELED candidate never conflicts, and
// reservations in a terminal state do not hold the slot.
func HasConflict(candidate Reservation, existing []Reservation, excludeID string) bool {
	if candidate.Status == StatusCanceled {
		return false
	}
	candStart, err := MinutesOfDay(candidate.StartTime)
	if err != nil {
		return false
	}
	candEnd, err := MinutesOfDay(candidate.EndTime)
	if err != nil {
		return false
	}

	for _, other := range existing {
		if excludeID != "" && other.ID == excludeID {
			continue
		}
		if other.Status.Terminal() {
			continue
		}
		if other.Date != candidate.Date {
			continue
		}
		otherStart, err := MinutesOfDay(other.StartTime)
		if err != nil {
			continue
		}
		otherEnd, err := MinutesOfDay(other.EndTime)
		if err != nil {
			continue
		}
		if candStart < otherEnd && candEnd > otherStart {
			return true
		}
	}
	return false
}
