package services

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Blake-Bird/SGA2029/internal/export"
	"github.com/Blake-Bird/SGA2029/internal/query"
	"github.com/Blake-Bird/SGA2029/internal/seed"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// LedgerService serves the transaction ledger: filtered and paginated
// listings, the KPI aggregates, CSV export, and the explain sentence.
// Everything is computed on demand from the seed store; there is no
// write path.
type LedgerService struct {
	store *seed.Store
}

func NewLedgerService(store *seed.Store) *LedgerService {
	return &LedgerService{store: store}
}

// parseFilter reads the shared filter parameters used by the list,
// export and explain endpoints. Unknown values degrade to their
// defaults; nothing here errors.
func parseFilter(q url.Values) query.Filter {
	return query.Filter{
		Type:    q.Get("type"),
		From:    q.Get("from"),
		To:      q.Get("to"),
		Search:  q.Get("search"),
		EventID: q.Get("eventId"),
		BillID:  q.Get("billId"),
	}
}

func parseIntParam(q url.Values, key string, fallback int) int {
	if raw := q.Get(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

// ListTransactions returns one page of the filtered, sorted ledger
// @Summary List transactions
// @Description Filter, sort and paginate the transaction ledger
// @Tags ledger
// @Produce json
// @Param type query string false "allocation|expense|revenue|transfer|all"
// @Param from query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param to query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param search query string false "Case-insensitive vendor/memo substring"
// @Param eventId query string false "Linked event id"
// @Param billId query string false "Linked bill id"
// @Param sort query string false "date_desc|date_asc|amount_desc|amount_asc"
// @Param page query int false "1-based page number"
// @Param pageSize query int false "Rows per page"
// @Success 200 {object} query.Page
// @Router /transactions [get]
func (ls *LedgerService) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := parseFilter(q)
	key := query.ParseSortKey(q.Get("sort"))
	page := parseIntParam(q, "page", 1)
	pageSize := parseIntParam(q, "pageSize", defaultPageSize)
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	result := query.Run(ls.store.Transactions(), f, key, page, pageSize)
	writeJSON(w, result)
}

// ExportTransactions downloads the filtered ledger as delimited text
// @Summary Export transactions as CSV
// @Description Export the filtered, sorted ledger as a CSV download
// @Tags ledger
// @Produce text/csv
// @Param delimiter query string false "Field delimiter, default comma"
// @Success 200 {string} string "CSV payload"
// @Router /transactions/export [get]
func (ls *LedgerService) ExportTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := parseFilter(q)
	key := query.ParseSortKey(q.Get("sort"))
	rows := query.Sort(f.Apply(ls.store.Transactions()), key)

	payload := export.WriteCSV(rows, export.TransactionColumns(ls.store), q.Get("delimiter"))

	log.Printf("[LEDGER] Exported %d rows", len(rows))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="sga2029-ledger.csv"`)
	w.Write([]byte(payload))
}

// ExplainTransactions describes the active filter and sort in a sentence
// @Summary Explain the current view
// @Description Render the active filter/sort configuration as a sentence
// @Tags ledger
// @Produce json
// @Success 200 {object} object{summary=string}
// @Router /transactions/explain [get]
func (ls *LedgerService) ExplainTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := parseFilter(q)
	key := query.ParseSortKey(q.Get("sort"))
	writeJSON(w, map[string]string{"summary": export.Explain(f, key, ls.store)})
}

// GetKPIs returns the dashboard aggregates
// @Summary Ledger KPIs
// @Description Lifetime balance plus year-to-date inflow and outflow, in cents
// @Tags ledger
// @Produce json
// @Param year query int false "Target calendar year, defaults to current"
// @Success 200 {object} query.KPIs
// @Router /kpis [get]
func (ls *LedgerService) GetKPIs(w http.ResponseWriter, r *http.Request) {
	year := parseIntParam(r.URL.Query(), "year", 0)
	writeJSON(w, query.ComputeKPIs(ls.store.Transactions(), year))
}
