// Package query implements the filter, sort and pagination pipeline
// over the transaction ledger, plus the KPI aggregates the dashboard
// renders. Every function is pure: inputs are never mutated, there is
// no I/O, and malformed inputs degrade to defined fallbacks instead of
// returning errors.
package query

import (
	"sort"
	"strings"

	"github.com/Blake-Bird/SGA2029/internal/models"
)

// Filter is the set of optional predicates narrowing a ledger query.
// Zero values mean "no restriction"; supplied predicates combine with
// logical AND.
type Filter struct {
	// Type restricts to one transaction type. Empty or "all" means
	// unrestricted.
	Type string `json:"type,omitempty"`
	// From and To are inclusive calendar-date bounds in "YYYY-MM-DD"
	// form, compared lexicographically against the row date.
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
	// Search is a case-insensitive substring matched against the
	// vendor and memo text.
	Search  string `json:"search,omitempty"`
	EventID string `json:"eventId,omitempty"`
	BillID  string `json:"billId,omitempty"`
}

// TypeAll is the Filter.Type value that matches every transaction.
const TypeAll = "all"

// Matches reports whether a single row satisfies every supplied
// predicate.
func (f Filter) Matches(t models.Transaction) bool {
	if f.Type != "" && f.Type != TypeAll && string(t.Type) != f.Type {
		return false
	}
	if f.From != "" && t.Date < f.From {
		return false
	}
	if f.To != "" && t.Date > f.To {
		return false
	}
	if f.Search != "" {
		haystack := strings.ToLower(t.Vendor + " " + t.Memo)
		if !strings.Contains(haystack, strings.ToLower(f.Search)) {
			return false
		}
	}
	if f.EventID != "" && t.EventID != f.EventID {
		return false
	}
	if f.BillID != "" && t.BillID != f.BillID {
		return false
	}
	return true
}

// Apply returns the subsequence of txns satisfying every supplied
// predicate, original relative order preserved.
func (f Filter) Apply(txns []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// SortKey selects the ordering of a transaction sequence.
type SortKey string

const (
	SortDateDesc   SortKey = "date_desc"
	SortDateAsc    SortKey = "date_asc"
	SortAmountDesc SortKey = "amount_desc"
	SortAmountAsc  SortKey = "amount_asc"
)

// ParseSortKey maps a raw string to a sort key, falling back to
// date_desc for anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortDateAsc, SortAmountDesc, SortAmountAsc:
		return SortKey(s)
	}
	return SortDateDesc
}

// Sort returns a new slice ordered by key. Dates compare as strings,
// which matches chronological order for ISO dates; amounts compare as
// signed cents. Ties carry no guaranteed secondary order.
func Sort(txns []models.Transaction, key SortKey) []models.Transaction {
	out := append([]models.Transaction(nil), txns...)
	switch key {
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	case SortAmountDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].AmountCents > out[j].AmountCents })
	case SortAmountAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].AmountCents < out[j].AmountCents })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	}
	return out
}

// Page is one window of a paginated result set.
type Page struct {
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
	Total    int                  `json:"total"`
	Pages    int                  `json:"pages"`
	Rows     []models.Transaction `json:"rows"`
}

// Paginate slices txns into the requested 1-based page. The page size
// is floored at 1 and the page number is clamped into [1, Pages]; an
// out-of-range request is corrected, never an error. An empty input
// still reports one (empty) page.
func Paginate(txns []models.Transaction, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(txns)
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Pages:    pages,
		Rows:     append([]models.Transaction(nil), txns[start:end]...),
	}
}

// Run applies filter, then sort, then pagination, in that fixed order.
// Pagination boundaries are computed only after filtering, so a filter
// change always changes which rows populate a given page number;
// callers reset to page 1 on filter changes.
func Run(txns []models.Transaction, f Filter, key SortKey, page, pageSize int) Page {
	return Paginate(Sort(f.Apply(txns), key), page, pageSize)
}

// ForEvent returns every transaction whose event link exactly matches
// the given id. A dangling or unknown id just yields no rows.
func ForEvent(txns []models.Transaction, eventID string) []models.Transaction {
	out := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out
}

// ForBill returns every transaction whose bill link exactly matches the
// given id.
func ForBill(txns []models.Transaction, billID string) []models.Transaction {
	out := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.BillID == billID {
			out = append(out, t)
		}
	}
	return out
}
