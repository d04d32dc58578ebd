package models

import "time"

// Proposal is a submission from the proposal wizard. Unlike the seeded
// collections, proposals are created at runtime and held in memory only.
type Proposal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Committee   Committee `json:"committee"`
	AmountCents int64     `json:"amountCents"`
	Summary     string    `json:"summary"`
	Contact     string    `json:"contact"`
	SubmittedAt time.Time `json:"submittedAt"`
}
