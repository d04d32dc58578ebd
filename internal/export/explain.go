package export

import (
	"strings"

	"github.com/Blake-Bird/SGA2029/internal/query"
	"github.com/Blake-Bird/SGA2029/internal/seed"
)

// Explain renders the active filter and sort configuration as a single
// sentence, e.g.
//
//	Showing expenses, between 2025-11-01 and 2025-11-30, matching
//	"boba", most recent first.
//
// Clauses appear in fixed order: transaction type, date range, event
// link, bill link, free-text search, sort order. Event and bill titles
// resolve through the store with the raw id as fallback.
func Explain(f query.Filter, key query.SortKey, store *seed.Store) string {
	clauses := []string{typeClause(f.Type)}

	if c := dateClause(f.From, f.To); c != "" {
		clauses = append(clauses, c)
	}
	if f.EventID != "" {
		title := f.EventID
		if ev, ok := store.EventByID(f.EventID); ok {
			title = ev.Title
		}
		clauses = append(clauses, `linked to event "`+title+`"`)
	}
	if f.BillID != "" {
		title := f.BillID
		if b, ok := store.BillByID(f.BillID); ok {
			title = b.Title
		}
		clauses = append(clauses, `linked to bill "`+title+`"`)
	}
	if f.Search != "" {
		clauses = append(clauses, `matching "`+f.Search+`"`)
	}
	clauses = append(clauses, sortClause(key))

	sentence := "Showing " + strings.Join(clauses, ", ") + "."
	// An empty clause would leave a space stranded before its comma.
	return strings.ReplaceAll(sentence, " ,", ",")
}

func typeClause(txType string) string {
	switch txType {
	case "allocation":
		return "allocations"
	case "expense":
		return "expenses"
	case "revenue":
		return "revenue"
	case "transfer":
		return "transfers"
	}
	return "all transaction types"
}

func dateClause(from, to string) string {
	switch {
	case from != "" && to != "":
		return "between " + from + " and " + to
	case from != "":
		return "from " + from + " onward"
	case to != "":
		return "through " + to
	}
	return ""
}

func sortClause(key query.SortKey) string {
	switch key {
	case query.SortDateAsc:
		return "oldest first"
	case query.SortAmountDesc:
		return "largest amounts first"
	case query.SortAmountAsc:
		return "smallest amounts first"
	}
	return "most recent first"
}
