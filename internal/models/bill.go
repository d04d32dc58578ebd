package models

import "time"

// BillStatus is the review state of a funding bill. There is no enforced
// transition graph; any status may be set on seed data.
type BillStatus string

const (
	BillDraft     BillStatus = "Draft"
	BillSubmitted BillStatus = "Submitted"
	BillApproved  BillStatus = "Approved"
	BillDenied    BillStatus = "Denied"
	BillRevised   BillStatus = "Revised"
)

// Valid reports whether s is one of the five known bill statuses.
func (s BillStatus) Valid() bool {
	switch s {
	case BillDraft, BillSubmitted, BillApproved, BillDenied, BillRevised:
		return true
	}
	return false
}

// Bill is a funding request put before the body. DecidedAt is expected
// non-nil once the status leaves Draft/Submitted, but that expectation
// is not validated.
type Bill struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	AmountCents   int64      `json:"amountCents"`
	Status        BillStatus `json:"status"`
	Committee     Committee  `json:"committee"`
	SubmittedAt   time.Time  `json:"submittedAt"`
	DecidedAt     *time.Time `json:"decidedAt,omitempty"`
	Justification string     `json:"justification,omitempty"`
	Attachments   []string   `json:"attachments,omitempty"`
}
