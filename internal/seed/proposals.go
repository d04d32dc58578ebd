package seed

import (
	"sync"

	"github.com/Blake-Bird/SGA2029/internal/models"
)

// ProposalStore collects proposal wizard submissions. Unlike the seeded
// collections it is mutable, so access is mutex-guarded. Entries live
// only for the lifetime of the process.
type ProposalStore struct {
	mu    sync.Mutex
	items []models.Proposal
}

// NewProposalStore returns an empty proposal store.
func NewProposalStore() *ProposalStore {
	return &ProposalStore{}
}

// Append stores a submitted proposal and returns how many are held.
func (s *ProposalStore) Append(p models.Proposal) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, p)
	return len(s.items)
}

// List returns submissions in arrival order.
func (s *ProposalStore) List() []models.Proposal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Proposal(nil), s.items...)
}
