package query

import (
	"testing"

	"github.com/Blake-Bird/SGA2029/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []models.Transaction {
	return []models.Transaction{
		{ID: "t1", Date: "2025-08-25", Type: models.TxAllocation, AmountCents: 8000},
		{ID: "t2", Date: "2025-11-04", Type: models.TxExpense, AmountCents: -900, Vendor: "Leaf & Pearl", Memo: "Boba for town hall", BillID: "b-001", EventID: "ev-004"},
		{ID: "t3", Date: "2025-11-22", Type: models.TxRevenue, AmountCents: 120, Memo: "Merch table"},
		{ID: "t4", Date: "2025-10-15", Type: models.TxTransfer, AmountCents: -300, Memo: "Reserve transfer"},
		{ID: "t5", Date: "2024-05-11", Type: models.TxExpense, AmountCents: -750, Vendor: "Legacy Vendor", Memo: "Handoff dinner"},
	}
}

func ids(txns []models.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.ID
	}
	return out
}

func TestFilterApply(t *testing.T) {
	txns := fixture()

	t.Run("empty filter is identity", func(t *testing.T) {
		assert.Equal(t, txns, Filter{}.Apply(txns))
	})

	t.Run("type all is identity", func(t *testing.T) {
		assert.Equal(t, txns, Filter{Type: TypeAll}.Apply(txns))
	})

	t.Run("type restriction", func(t *testing.T) {
		got := Filter{Type: "expense"}.Apply(txns)
		assert.Equal(t, []string{"t2", "t5"}, ids(got))
	})

	t.Run("date bounds are inclusive", func(t *testing.T) {
		got := Filter{From: "2025-10-15", To: "2025-11-04"}.Apply(txns)
		assert.Equal(t, []string{"t2", "t4"}, ids(got))
	})

	t.Run("from only", func(t *testing.T) {
		got := Filter{From: "2025-11-01"}.Apply(txns)
		assert.Equal(t, []string{"t2", "t3"}, ids(got))
	})

	t.Run("inverted range matches nothing", func(t *testing.T) {
		assert.Empty(t, Filter{From: "2025-12-01", To: "2025-01-01"}.Apply(txns))
	})

	t.Run("search is case-insensitive over vendor and memo", func(t *testing.T) {
		assert.Equal(t, []string{"t2"}, ids(Filter{Search: "BOBA"}.Apply(txns)))
		assert.Equal(t, []string{"t2"}, ids(Filter{Search: "leaf"}.Apply(txns)))
		assert.Empty(t, Filter{Search: "pizza"}.Apply(txns))
	})

	t.Run("event and bill links are exact", func(t *testing.T) {
		assert.Equal(t, []string{"t2"}, ids(Filter{EventID: "ev-004"}.Apply(txns)))
		assert.Equal(t, []string{"t2"}, ids(Filter{BillID: "b-001"}.Apply(txns)))
		assert.Empty(t, Filter{BillID: "b-999"}.Apply(txns))
	})

	t.Run("predicates combine with AND", func(t *testing.T) {
		got := Filter{Type: "expense", From: "2025-01-01", Search: "boba"}.Apply(txns)
		assert.Equal(t, []string{"t2"}, ids(got))
	})

	t.Run("no false positives or negatives", func(t *testing.T) {
		f := Filter{Type: "expense", From: "2024-01-01", To: "2025-12-31"}
		got := f.Apply(txns)
		for _, row := range got {
			assert.True(t, f.Matches(row))
		}
		want := 0
		for _, row := range txns {
			if f.Matches(row) {
				want++
			}
		}
		assert.Len(t, got, want)
	})

	t.Run("input never mutated", func(t *testing.T) {
		before := fixture()
		Filter{Type: "revenue"}.Apply(txns)
		assert.Equal(t, before, txns)
	})
}

func TestSort(t *testing.T) {
	txns := fixture()

	t.Run("date_desc", func(t *testing.T) {
		got := Sort(txns, SortDateDesc)
		assert.Equal(t, []string{"t3", "t2", "t4", "t1", "t5"}, ids(got))
	})

	t.Run("date_asc", func(t *testing.T) {
		got := Sort(txns, SortDateAsc)
		assert.Equal(t, []string{"t5", "t1", "t4", "t2", "t3"}, ids(got))
	})

	t.Run("amount_asc is non-decreasing", func(t *testing.T) {
		got := Sort(txns, SortAmountAsc)
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].AmountCents, got[i].AmountCents)
		}
	})

	t.Run("amount_desc reverses amount_asc keys", func(t *testing.T) {
		asc := Sort(txns, SortAmountAsc)
		desc := Sort(txns, SortAmountDesc)
		for i := range asc {
			assert.Equal(t, asc[i].AmountCents, desc[len(desc)-1-i].AmountCents)
		}
	})

	t.Run("input untouched", func(t *testing.T) {
		before := fixture()
		Sort(txns, SortAmountDesc)
		assert.Equal(t, before, txns)
	})
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortDateDesc, ParseSortKey("date_desc"))
	assert.Equal(t, SortDateAsc, ParseSortKey("date_asc"))
	assert.Equal(t, SortAmountDesc, ParseSortKey("amount_desc"))
	assert.Equal(t, SortAmountAsc, ParseSortKey("amount_asc"))
	assert.Equal(t, SortDateDesc, ParseSortKey(""))
	assert.Equal(t, SortDateDesc, ParseSortKey("alphabetical"))
}

func TestPaginate(t *testing.T) {
	txns := fixture()

	t.Run("basic slicing", func(t *testing.T) {
		p := Paginate(txns, 1, 2)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 2, p.PageSize)
		assert.Equal(t, 5, p.Total)
		assert.Equal(t, 3, p.Pages)
		assert.Equal(t, []string{"t1", "t2"}, ids(p.Rows))
	})

	t.Run("last page is short", func(t *testing.T) {
		p := Paginate(txns, 3, 2)
		assert.Equal(t, []string{"t5"}, ids(p.Rows))
	})

	t.Run("page clamped high", func(t *testing.T) {
		p := Paginate(txns, 99, 2)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, []string{"t5"}, ids(p.Rows))
	})

	t.Run("page clamped low", func(t *testing.T) {
		p := Paginate(txns, -4, 2)
		assert.Equal(t, 1, p.Page)
	})

	t.Run("pageSize floored at 1", func(t *testing.T) {
		p := Paginate(txns, 1, 0)
		assert.Equal(t, 1, p.PageSize)
		assert.Equal(t, 5, p.Pages)
		assert.Len(t, p.Rows, 1)
	})

	t.Run("empty input still has one page", func(t *testing.T) {
		p := Paginate(nil, 5, 10)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 1, p.Pages)
		assert.Equal(t, 0, p.Total)
		assert.Empty(t, p.Rows)
	})

	t.Run("iterating all pages reconstructs the input", func(t *testing.T) {
		for _, size := range []int{1, 2, 3, 5, 7} {
			first := Paginate(txns, 1, size)
			var rebuilt []models.Transaction
			for page := 1; page <= first.Pages; page++ {
				p := Paginate(txns, page, size)
				assert.GreaterOrEqual(t, p.Page, 1)
				assert.LessOrEqual(t, p.Page, p.Pages)
				rebuilt = append(rebuilt, p.Rows...)
			}
			assert.Equal(t, txns, rebuilt, "pageSize %d", size)
		}
	})
}

func TestRun(t *testing.T) {
	txns := fixture()

	p := Run(txns, Filter{Type: "expense"}, SortDateDesc, 1, 10)
	require.Equal(t, 2, p.Total)
	assert.Equal(t, []string{"t2", "t5"}, ids(p.Rows))

	// Pagination is computed after filtering: one expense per page.
	p = Run(txns, Filter{Type: "expense"}, SortDateAsc, 2, 1)
	assert.Equal(t, 2, p.Pages)
	assert.Equal(t, []string{"t2"}, ids(p.Rows))
}

func TestLinkHelpers(t *testing.T) {
	txns := fixture()
	assert.Equal(t, []string{"t2"}, ids(ForEvent(txns, "ev-004")))
	assert.Empty(t, ForEvent(txns, "ev-missing"))
	assert.Equal(t, []string{"t2"}, ids(ForBill(txns, "b-001")))
	assert.Empty(t, ForBill(txns, "b-missing"))
}
