package testutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// Backend is a fake reservation API. Users and Reservations map a user id to
// the raw JSON body served for it; unknown ids get "null" and "[]".
// FailReservations makes the reservations endpoint answer 500.
type Backend struct {
	*httptest.Server
	Users            map[string]string
	Reservations     map[string]string
	FailReservations bool
}

// NewBackend starts a fake API that is closed when the test ends.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{
		Users:        map[string]string{},
		Reservations: map[string]string{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users/id/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.write(w, b.Users, r.PathValue("id"), "null")
	})
	mux.HandleFunc("GET /api/reservations", func(w http.ResponseWriter, r *http.Request) {
		if b.FailReservations {
			http.Error(w, "reservations unavailable", http.StatusInternalServerError)
			return
		}
		b.write(w, b.Reservations, r.URL.Query().Get("userId"), "[]")
	})

	b.Server = httptest.NewServer(mux)
	t.Cleanup(b.Close)
	return b
}

func (b *Backend) write(w http.ResponseWriter, bodies map[string]string, id, fallback string) {
	body, ok := bodies[id]
	if !ok {
		body = fallback
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}
