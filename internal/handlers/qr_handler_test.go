package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/Blake-Bird/SGA2029/internal/config"
	"github.com/Blake-Bird/SGA2029/internal/seed"
	"github.com/Blake-Bird/SGA2029/internal/services"
)

func newTestQRHandler() *QRHandler {
	cfg := &config.CheckinConfig{
		CodeTTL:          time.Minute,
		ImageSize:        128,
		MaxCodesPerEvent: 3,
	}
	return NewQRHandler(services.NewQRService(nil, seed.New(), cfg))
}

func TestQRHandler_GenerateEventQR(t *testing.T) {
	handler := newTestQRHandler()
	r := chi.NewRouter()
	r.Post("/events/{eventId}/qr", handler.GenerateEventQR)

	t.Run("requires a session", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/events/ev-001/qr", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unavailable without redis", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/events/ev-001/qr", nil)
		req = req.WithContext(context.WithValue(req.Context(), "memberID", "tm-social"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestQRHandler_ProcessCheckin(t *testing.T) {
	handler := newTestQRHandler()

	t.Run("rejects a missing code", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/qr/checkin", bytes.NewReader([]byte(`{}`)))
		w := httptest.NewRecorder()
		handler.ProcessCheckin(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/qr/checkin", bytes.NewReader([]byte(`{"code":`)))
		w := httptest.NewRecorder()
		handler.ProcessCheckin(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/qr/checkin",
			bytes.NewReader([]byte(`{"code":"abc","admin":true}`)))
		w := httptest.NewRecorder()
		handler.ProcessCheckin(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
