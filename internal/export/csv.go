// Package export renders query results for humans: delimited text
// suitable for a spreadsheet download, and a one-sentence description
// of the active filter and sort state.
package export

import (
	"strconv"
	"strings"

	"github.com/Blake-Bird/SGA2029/internal/models"
	"github.com/Blake-Bird/SGA2029/internal/seed"
)

// Column names one output column: a header title and a function from
// row to display value.
type Column struct {
	Title string
	Value func(models.Transaction) string
}

// DefaultDelimiter separates fields unless the caller picks another.
const DefaultDelimiter = ","

// WriteCSV renders rows as delimited text: one header line built from
// titles, then one line per row. A field is wrapped in double quotes,
// with internal quotes doubled, exactly when it contains the delimiter,
// a double quote, or a newline; otherwise it is emitted verbatim.
// Re-parsing the output with a standard CSV reader recovers every field
// value unchanged.
func WriteCSV(rows []models.Transaction, cols []Column, delimiter string) string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteString(delimiter)
		}
		b.WriteString(escapeField(c.Title, delimiter))
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, c := range cols {
			if i > 0 {
				b.WriteString(delimiter)
			}
			b.WriteString(escapeField(c.Value(row), delimiter))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func escapeField(field, delimiter string) string {
	if !strings.Contains(field, delimiter) &&
		!strings.Contains(field, `"`) &&
		!strings.Contains(field, "\n") &&
		!strings.Contains(field, "\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Cents formats an integer-cent amount as a decimal string, e.g.
// -9800 -> "-98.00". Currency math stays in cents; this is display only.
func Cents(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + strconv.FormatInt(amount/100, 10) + "." + pad2(amount%100)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// TransactionColumns is the default ledger column set. Event and bill
// links render their titles when the id resolves and fall back to the
// raw id when it dangles.
func TransactionColumns(store *seed.Store) []Column {
	return []Column{
		{Title: "Date", Value: func(t models.Transaction) string { return t.Date }},
		{Title: "Type", Value: func(t models.Transaction) string { return string(t.Type) }},
		{Title: "Amount", Value: func(t models.Transaction) string { return Cents(t.AmountCents) }},
		{Title: "Vendor", Value: func(t models.Transaction) string { return t.Vendor }},
		{Title: "Memo", Value: func(t models.Transaction) string { return t.Memo }},
		{Title: "Event", Value: func(t models.Transaction) string {
			if t.EventID == "" {
				return ""
			}
			if ev, ok := store.EventByID(t.EventID); ok {
				return ev.Title
			}
			return t.EventID
		}},
		{Title: "Bill", Value: func(t models.Transaction) string {
			if t.BillID == "" {
				return ""
			}
			if b, ok := store.BillByID(t.BillID); ok {
				return b.Title
			}
			return t.BillID
		}},
	}
}
