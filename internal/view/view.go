// Package view derives the exact slice of reservations to render from the
// full collection plus filter, sort, and page parameters. Everything here is
// pure; the source collection is never mutated.
package view

import (
	"sort"
	"strings"

	"github.com/lfreitas/reserva/internal/reservation"
)

// StatusAll passes every status through the status filter.
const StatusAll = "ALL"

// Order selects one of the supported sort orders.
type Order int

const (
	OrderDateAsc Order = iota
	OrderDateDesc
	OrderTitleAsc
	OrderTitleDesc
)

// String names the order for display.
func (o Order) String() string {
	switch o {
	case OrderDateAsc:
		return "date ↑"
	case OrderDateDesc:
		return "date ↓"
	case OrderTitleAsc:
		return "title ↑"
	case OrderTitleDesc:
		return "title ↓"
	}
	return "unknown"
}

const defaultPageSize = 10

// Params selects what to render.
type Params struct {
	Status   string // a reservation status, or StatusAll/empty for all
	Date     string // exact date match, empty for all
	Query    string // settled free-text query
	Sort     Order
	Page     int // 1-based; clamped into range
	PageSize int
}

// Page is the renderable result.
type Page struct {
	Items     []reservation.Reservation
	Page      int // clamped current page, 1-based
	PageCount int
	Total     int // record count after filtering
}

// predicate passes records through when its filter value is unset.
type predicate func(reservation.Reservation) bool

func byStatus(status string) predicate {
	status = strings.ToUpper(strings.TrimSpace(status))
	return func(r reservation.Reservation) bool {
		if status == "" || status == StatusAll {
			return true
		}
		return string(r.Status) == status
	}
}

func byDate(date string) predicate {
	date = strings.TrimSpace(date)
	return func(r reservation.Reservation) bool {
		if date == "" {
			return true
		}
		return r.Date == date
	}
}

func byText(query string) predicate {
	query = strings.ToLower(strings.TrimSpace(query))
	return func(r reservation.Reservation) bool {
		if query == "" {
			return true
		}
		content := strings.ToLower(strings.Join([]string{r.Title, r.User, string(r.Status)}, " "))
		return strings.Contains(content, query)
	}
}

func filter(in []reservation.Reservation, predicates []predicate) []reservation.Reservation {
	out := make([]reservation.Reservation, 0, len(in))
next:
	for _, r := range in {
		for _, keep := range predicates {
			if !keep(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// sortKey joins date and start time; both are zero-padded fixed-width, so
// lexicographic order matches chronological order.
func sortKey(r reservation.Reservation) string {
	return r.Date + " " + r.StartTime
}

func sortReservations(in []reservation.Reservation, order Order) {
	switch order {
	case OrderDateAsc:
		sort.SliceStable(in, func(i, j int) bool { return sortKey(in[i]) < sortKey(in[j]) })
	case OrderDateDesc:
		sort.SliceStable(in, func(i, j int) bool { return sortKey(in[i]) > sortKey(in[j]) })
	case OrderTitleAsc:
		sort.SliceStable(in, func(i, j int) bool {
			return strings.ToLower(in[i].Title) < strings.ToLower(in[j].Title)
		})
	case OrderTitleDesc:
		sort.SliceStable(in, func(i, j int) bool {
			return strings.ToLower(in[i].Title) > strings.ToLower(in[j].Title)
		})
	}
}

// Apply filters, sorts, and paginates the collection. The requested page is
// clamped into range, so a shrink never leaves the caller on a page past the
// end.
func Apply(reservations []reservation.Reservation, params Params) Page {
	filtered := filter(reservations, []predicate{
		byStatus(params.Status),
		byDate(params.Date),
		byText(params.Query),
	})
	sortReservations(filtered, params.Sort)

	size := params.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	count := (len(filtered) + size - 1) / size
	if count < 1 {
		count = 1
	}
	page := params.Page
	if page < 1 {
		page = 1
	}
	if page > count {
		page = count
	}

	start := (page - 1) * size
	end := start + size
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page{
		Items:     filtered[start:end],
		Page:      page,
		PageCount: count,
		Total:     len(filtered),
	}
}
