// Package seed holds the fixed in-memory collections the site renders
// from. The store is built once at startup and is read-only for the
// lifetime of the process; accessors hand out copies so callers cannot
// disturb insertion order or contents.
package seed

import (
	"github.com/Blake-Bird/SGA2029/internal/models"
)

// Store exposes the seeded collections with insertion order preserved
// and ids unique within each collection.
type Store struct {
	team         []models.TeamMember
	events       []models.EventItem
	bills        []models.Bill
	transactions []models.Transaction
	social       []models.SocialItem
}

// New returns a store over the packaged seed data.
func New() *Store {
	return &Store{
		team:         teamSeed,
		events:       eventSeed,
		bills:        billSeed,
		transactions: transactionSeed,
		social:       socialSeed,
	}
}

// Team returns the elected officers, one per role.
func (s *Store) Team() []models.TeamMember {
	return append([]models.TeamMember(nil), s.team...)
}

// Events returns all events in insertion order.
func (s *Store) Events() []models.EventItem {
	return append([]models.EventItem(nil), s.events...)
}

// Bills returns all bills in insertion order.
func (s *Store) Bills() []models.Bill {
	return append([]models.Bill(nil), s.bills...)
}

// Transactions returns the full ledger in insertion order.
func (s *Store) Transactions() []models.Transaction {
	return append([]models.Transaction(nil), s.transactions...)
}

// Social returns the published social posts.
func (s *Store) Social() []models.SocialItem {
	return append([]models.SocialItem(nil), s.social...)
}

// EventByID looks up an event; ok is false when the id is unknown.
func (s *Store) EventByID(id string) (models.EventItem, bool) {
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return models.EventItem{}, false
}

// BillByID looks up a bill; ok is false when the id is unknown.
func (s *Store) BillByID(id string) (models.Bill, bool) {
	for _, b := range s.bills {
		if b.ID == id {
			return b, true
		}
	}
	return models.Bill{}, false
}

// MemberByID looks up an officer; ok is false when the id is unknown.
func (s *Store) MemberByID(id string) (models.TeamMember, bool) {
	for _, m := range s.team {
		if m.ID == id {
			return m, true
		}
	}
	return models.TeamMember{}, false
}

// MemberByEmail looks up an officer by contact email; used by the
// invite gate to tie a session to a seat.
func (s *Store) MemberByEmail(email string) (models.TeamMember, bool) {
	for _, m := range s.team {
		if m.Email == email {
			return m, true
		}
	}
	return models.TeamMember{}, false
}
