package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lfreitas/reserva/internal/reservation"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(srv.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, srv
}

func TestClient_List(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/reservations" {
			t.Errorf("request = %s %s, want GET /reservations", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]Record{
			{ID: "1", Title: "Sala A", StartTime: "09:00", EndTime: "10:00"},
		})
	})

	recs, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "1" || recs[0].StartTime != "09:00" {
		t.Fatalf("List = %#v", recs)
	}
}

func TestClient_GetStatusErrorIsNotConnectivity(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := client.Get(context.Background(), "missing")
	if err == nil {
		t.Fatal("Get = nil error, want StatusError")
	}
	var se *StatusError
	if !errors.As(err, &se) || se.Status != http.StatusNotFound {
		t.Fatalf("Get error = %v, want StatusError 404", err)
	}
	if IsConnectivity(err) {
		t.Fatal("IsConnectivity(StatusError) = true, want false")
	}
}

func TestClient_ConnectivityFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	client, err := NewClient(srv.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = client.List(context.Background())
	if err == nil {
		t.Fatal("List against closed server = nil error")
	}
	if !IsConnectivity(err) {
		t.Fatalf("IsConnectivity(%v) = false, want true", err)
	}
}

func TestClient_PatchOmitsUnsetFields(t *testing.T) {
	var body map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Errorf("request body %q: %v", raw, err)
		}
		_ = json.NewEncoder(w).Encode(Record{ID: "1", Title: "Renamed"})
	})

	title := "Renamed"
	rec, err := client.Patch(context.Background(), "1", ToPatchBody(reservation.Patch{Title: &title}))
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if rec.Title != "Renamed" {
		t.Fatalf("Patch record = %#v", rec)
	}
	if len(body) != 1 {
		t.Fatalf("patch body = %v, want only title", body)
	}
	if body["title"] != "Renamed" {
		t.Fatalf("patch body title = %v", body["title"])
	}
}

func TestClient_CreateSendsSnakeCaseTimes(t *testing.T) {
	var body map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		_ = json.NewEncoder(w).Encode(Record{ID: "77"})
	})

	input := reservation.Reservation{
		Title: "Sala A", User: "ana", Date: "2024-03-15",
		StartTime: "09:00", EndTime: "10:00", Status: reservation.StatusPending,
	}
	rec, err := client.Create(context.Background(), ToCreateBody(input))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID != "77" {
		t.Fatalf("Create record = %#v", rec)
	}
	if body["start_time"] != "09:00" || body["end_time"] != "10:00" {
		t.Fatalf("create body = %v, want snake_case time fields", body)
	}
	if _, ok := body["id"]; ok {
		t.Fatal("create body includes id, want server-assigned")
	}
}

func TestWireRoundTrip(t *testing.T) {
	r := reservation.Reservation{
		ID: "9", Title: "Sala B", User: "bia", Date: "2024-05-01",
		StartTime: "13:00", EndTime: "14:30", Status: reservation.StatusConfirmed,
	}
	got := FromWire(ToWire(r))
	if got != r {
		t.Fatalf("FromWire(ToWire(r)) = %#v, want %#v", got, r)
	}
}

func TestParseBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"127.0.0.1:3001", "http://127.0.0.1:3001"},
		{"", "http://" + defaultAPIBind},
		{"https://api.example.com", "https://api.example.com"},
		{"  10.0.0.5:9000  ", "http://10.0.0.5:9000"},
	}
	for _, tt := range tests {
		u, err := parseBaseURL(tt.in)
		if err != nil {
			t.Errorf("parseBaseURL(%q): %v", tt.in, err)
			continue
		}
		if u.String() != tt.want {
			t.Errorf("parseBaseURL(%q) = %q, want %q", tt.in, u.String(), tt.want)
		}
	}
}
