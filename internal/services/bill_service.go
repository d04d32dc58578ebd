package services

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Blake-Bird/SGA2029/internal/models"
	"github.com/Blake-Bird/SGA2029/internal/nav"
	"github.com/Blake-Bird/SGA2029/internal/query"
	"github.com/Blake-Bird/SGA2029/internal/seed"
)

// BillService serves the bills kanban and bill detail pages.
type BillService struct {
	store *seed.Store
}

func NewBillService(store *seed.Store) *BillService {
	return &BillService{store: store}
}

// BillDetail is a bill plus its ledger activity and canonical link.
type BillDetail struct {
	models.Bill
	Href         string               `json:"href"`
	Transactions []models.Transaction `json:"transactions"`
}

// ListBills returns every bill, grouped client-side by status
// @Summary List bills
// @Tags bills
// @Produce json
// @Success 200 {array} models.Bill
// @Router /bills [get]
func (bs *BillService) ListBills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, bs.store.Bills())
}

// GetBill returns one bill with its linked transactions
// @Summary Bill detail
// @Tags bills
// @Produce json
// @Param billId path string true "Bill id"
// @Success 200 {object} BillDetail
// @Failure 404 {object} ErrorResponse
// @Router /bills/{billId} [get]
func (bs *BillService) GetBill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "billId")
	b, ok := bs.store.BillByID(id)
	if !ok {
		SendErrorResponse(w, "Bill not found", http.StatusNotFound, nil)
		return
	}

	writeJSON(w, BillDetail{
		Bill:         b,
		Href:         nav.Route{Page: nav.PageBillDetail, ID: b.ID}.Href(),
		Transactions: query.ForBill(bs.store.Transactions(), b.ID),
	})
}
