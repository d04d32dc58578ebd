package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Blake-Bird/SGA2029/internal/models"
	"github.com/Blake-Bird/SGA2029/internal/seed"
)

func newEventRouter() chi.Router {
	service := NewEventService(seed.New())
	r := chi.NewRouter()
	r.Get("/events", service.ListEvents)
	r.Get("/events/{eventId}", service.GetEvent)
	return r
}

func TestEventService_ListEvents(t *testing.T) {
	r := newEventRouter()

	req := httptest.NewRequest("GET", "/events", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var events []models.EventItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	assert.Len(t, events, 6)
}

func TestEventService_GetEvent(t *testing.T) {
	r := newEventRouter()

	t.Run("detail includes linked activity", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/events/ev-004", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var detail EventDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		assert.Equal(t, "Boba & Budgets Town Hall", detail.Title)
		assert.Equal(t, "/events/ev-004", detail.Href)
		assert.Len(t, detail.Transactions, 2)
		assert.Equal(t, int64(-11900), detail.SpentCents)
	})

	t.Run("revenue does not reduce spend", func(t *testing.T) {
		// ev-005 took in entry fees alongside its expenses; only the
		// negative rows count toward SpentCents.
		req := httptest.NewRequest("GET", "/events/ev-005", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var detail EventDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		assert.Len(t, detail.Transactions, 3)
		assert.Equal(t, int64(-57700), detail.SpentCents)
	})

	t.Run("unknown event is 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/events/ev-999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBillService_GetBill(t *testing.T) {
	service := NewBillService(seed.New())
	r := chi.NewRouter()
	r.Get("/bills", service.ListBills)
	r.Get("/bills/{billId}", service.GetBill)

	t.Run("lists every bill", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bills", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var bills []models.Bill
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bills))
		assert.Len(t, bills, 6)
	})

	t.Run("detail includes reimbursement rows", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bills/b-001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var detail BillDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		assert.Equal(t, "Town Hall Refreshments", detail.Bill.Title)
		assert.Equal(t, "/bills/b-001", detail.Href)
		assert.Len(t, detail.Transactions, 2)
	})

	t.Run("unknown bill is 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bills/b-999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
