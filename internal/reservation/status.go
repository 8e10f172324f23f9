package reservation

// successors is the allowed-transition table. CANCELED and COMPLETED are
// absorbing: a finalized reservation cannot be revived.
var successors = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusCompleted, StatusCanceled},
	StatusCompleted: {},
	StatusCanceled:  {},
}

// CanTransition reports whether from may move to to. The self-transition is
// always allowed so idempotent re-submits are no-ops rather than errors.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range successors[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns from plus its legal successor states, in a
// stable order suitable for selection UIs. Never empty.
func AllowedTransitions(from Status) []Status {
	next := successors[from]
	out := make([]Status, 0, len(next)+1)
	out = append(out, from)
	out = append(out, next...)
	return out
}
