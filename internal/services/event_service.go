package services

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Blake-Bird/SGA2029/internal/models"
	"github.com/Blake-Bird/SGA2029/internal/nav"
	"github.com/Blake-Bird/SGA2029/internal/query"
	"github.com/Blake-Bird/SGA2029/internal/seed"
)

// EventService serves the events gallery and event detail pages.
type EventService struct {
	store *seed.Store
}

func NewEventService(store *seed.Store) *EventService {
	return &EventService{store: store}
}

// EventDetail is an event plus its ledger activity and canonical link.
type EventDetail struct {
	models.EventItem
	Href         string               `json:"href"`
	Transactions []models.Transaction `json:"transactions"`
	SpentCents   int64                `json:"spentCents"`
}

// ListEvents returns every event in calendar order
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} models.EventItem
// @Router /events [get]
func (es *EventService) ListEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, es.store.Events())
}

// GetEvent returns one event with its linked transactions
// @Summary Event detail
// @Tags events
// @Produce json
// @Param eventId path string true "Event id"
// @Success 200 {object} EventDetail
// @Failure 404 {object} ErrorResponse
// @Router /events/{eventId} [get]
func (es *EventService) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "eventId")
	ev, ok := es.store.EventByID(id)
	if !ok {
		SendErrorResponse(w, "Event not found", http.StatusNotFound, nil)
		return
	}

	linked := query.ForEvent(es.store.Transactions(), ev.ID)
	var spent int64
	for _, tx := range linked {
		if tx.AmountCents < 0 {
			spent += tx.AmountCents
		}
	}

	writeJSON(w, EventDetail{
		EventItem:    ev,
		Href:         nav.Route{Page: nav.PageEventDetail, ID: ev.ID}.Href(),
		Transactions: linked,
		SpentCents:   spent,
	})
}
