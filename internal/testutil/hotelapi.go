package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"conserje/internal/config"
	"conserje/internal/infrastructure/hotelapi"
)

// FakeHotelAPI es un doble HTTP del backend del hotel para los tests de
// repositorio: catálogo, reservas y pagos.
type FakeHotelAPI struct {
	Server *httptest.Server

	mu sync.Mutex

	RoomTypes        []map[string]interface{}
	FailRoomTypes    bool
	FailReservations bool
	FailPayments     bool

	NextReservationID   uint
	ReservationRequests []map[string]interface{}
	PaymentRequests     []map[string]interface{}
}

func NewFakeHotelAPI(t *testing.T) *FakeHotelAPI {
	f := &FakeHotelAPI{
		NextReservationID: 1,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /room-types", f.handleRoomTypes)
	mux.HandleFunc("POST /reservations", f.handleCreateReservation)
	mux.HandleFunc("POST /payments", f.handleCreatePayment)

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)

	return f
}

// Client builds a hotelapi client pointed at the fake server.
func (f *FakeHotelAPI) Client() *hotelapi.Client {
	return hotelapi.NewClient(config.HotelAPIConfig{
		BaseURL: f.Server.URL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	})
}

func (f *FakeHotelAPI) handleRoomTypes(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailRoomTypes {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, f.RoomTypes)
}

func (f *FakeHotelAPI) handleCreateReservation(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}
	f.ReservationRequests = append(f.ReservationRequests, body)

	if f.FailReservations {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	id := f.NextReservationID
	f.NextReservationID++
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"reservation": map[string]interface{}{"id": id},
	})
}

func (f *FakeHotelAPI) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}
	f.PaymentRequests = append(f.PaymentRequests, body)

	if f.FailPayments {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
