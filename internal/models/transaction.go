package models

// TxType classifies a ledger transaction. Allocation and revenue are
// inflows (amount >= 0), expense and transfer are outflows (amount < 0).
// The sign convention is a caller contract, not enforced here.
type TxType string

const (
	TxAllocation TxType = "allocation"
	TxExpense    TxType = "expense"
	TxRevenue    TxType = "revenue"
	TxTransfer   TxType = "transfer"
)

// Valid reports whether t is one of the four known transaction types.
func (t TxType) Valid() bool {
	switch t {
	case TxAllocation, TxExpense, TxRevenue, TxTransfer:
		return true
	}
	return false
}

// Transaction is a single ledger row. Dates are calendar days in
// "YYYY-MM-DD" form with no time component; lexicographic order on the
// string equals chronological order. All amounts are integer cents.
// EventID and BillID are soft references: a dangling id is a legitimate
// "unlinked" state, not an error.
type Transaction struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Type        TxType `json:"type"`
	AmountCents int64  `json:"amountCents"`
	Vendor      string `json:"vendor,omitempty"`
	Memo        string `json:"memo,omitempty"`
	EventID     string `json:"eventId,omitempty"`
	BillID      string `json:"billId,omitempty"`
	Attachment  string `json:"attachment,omitempty"`
}

// Year returns the 4-digit year prefix of the transaction date.
func (t Transaction) Year() string {
	if len(t.Date) < 4 {
		return t.Date
	}
	return t.Date[:4]
}
