package api

import "github.com/lfreitas/reserva/internal/reservation"

// Record mirrors the reservation resource's wire shape. Time fields are
// snake_case on the wire and camelCase in the domain model.
type Record struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	User      string `json:"user"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

// CreateBody is the POST payload; the server assigns the id.
type CreateBody struct {
	Title     string `json:"title"`
	User      string `json:"user"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

// PatchBody is the PATCH payload. Nil fields are omitted entirely so the
// server never sees an unset field as an empty value.
type PatchBody struct {
	Title     *string `json:"title,omitempty"`
	User      *string `json:"user,omitempty"`
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// FromWire maps a wire record to the domain model.
func FromWire(rec Record) reservation.Reservation {
	return reservation.Reservation{
		ID:        rec.ID,
		Title:     rec.Title,
		User:      rec.User,
		Date:      rec.Date,
		StartTime: rec.StartTime,
		EndTime:   rec.EndTime,
		Status:    reservation.Status(rec.Status),
	}
}

// FromWireAll maps a slice of wire records.
func FromWireAll(recs []Record) []reservation.Reservation {
	out := make([]reservation.Reservation, len(recs))
	for i, rec := range recs {
		out[i] = FromWire(rec)
	}
	return out
}

// ToWire maps a domain reservation to its wire record.
func ToWire(r reservation.Reservation) Record {
	return Record{
		ID:        r.ID,
		Title:     r.Title,
		User:      r.User,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Status:    string(r.Status),
	}
}

// ToCreateBody maps a domain reservation to a create payload, dropping any id.
func ToCreateBody(r reservation.Reservation) CreateBody {
	return CreateBody{
		Title:     r.Title,
		User:      r.User,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Status:    string(r.Status),
	}
}

// ToPatchBody maps a domain patch to a wire patch, keeping unset fields unset.
func ToPatchBody(p reservation.Patch) PatchBody {
	body := PatchBody{
		Title:     p.Title,
		User:      p.User,
		Date:      p.Date,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
	}
	if p.Status != nil {
		s := string(*p.Status)
		body.Status = &s
	}
	return body
}
