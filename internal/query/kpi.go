package query

import (
	"strconv"
	"time"

	"github.com/Blake-Bird/SGA2029/internal/models"
)

// KPIs are the three monetary aggregates shown on the ledger dashboard,
// all in integer cents. OutflowYTDCents is negative or zero; callers
// display its absolute value.
type KPIs struct {
	CurrentBalanceCents int64 `json:"currentBalanceCents"`
	InflowYTDCents      int64 `json:"inflowYtdCents"`
	OutflowYTDCents     int64 `json:"outflowYtdCents"`
}

// ComputeKPIs aggregates the ledger. The balance runs over every
// transaction regardless of date; the year-to-date figures cover only
// rows whose date carries the target year as a string prefix. A year
// of 0 means the current calendar year.
func ComputeKPIs(txns []models.Transaction, year int) KPIs {
	if year == 0 {
		year = time.Now().Year()
	}
	prefix := strconv.Itoa(year)

	var k KPIs
	for _, t := range txns {
		k.CurrentBalanceCents += t.AmountCents
		if t.Year() != prefix {
			continue
		}
		if t.AmountCents >= 0 {
			k.InflowYTDCents += t.AmountCents
		} else {
			k.OutflowYTDCents += t.AmountCents
		}
	}
	return k
}
