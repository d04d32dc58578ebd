package services

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Blake-Bird/SGA2029/internal/models"
	"github.com/Blake-Bird/SGA2029/internal/seed"
)

// ProposalService accepts submissions from the proposal wizard and
// lists them for signed-in officers. Submissions live in memory only;
// the board exports anything worth keeping before a restart.
type ProposalService struct {
	store     *seed.ProposalStore
	validator *ValidationHelper
}

func NewProposalService(store *seed.ProposalStore) *ProposalService {
	return &ProposalService{
		store:     store,
		validator: NewValidationHelper(),
	}
}

// ProposalRequest is the wizard's final submission payload.
// @Description Proposal submission structure
type ProposalRequest struct {
	Title       string `json:"title" validate:"required,min=4,max=120" example:"Bike rack expansion"`
	Committee   string `json:"committee" validate:"required,oneof=Executive Finance Events Outreach Academics" example:"Outreach"`
	AmountCents int64  `json:"amountCents" validate:"gte=0,lte=100000000" example:"25000"`
	Summary     string `json:"summary" validate:"required,min=20,max=2000"`
	Contact     string `json:"contact" validate:"required,email" example:"student@university.edu"`
}

// SubmitProposal accepts a wizard submission
// @Summary Submit a proposal
// @Description Validate and store a proposal wizard submission
// @Tags proposals
// @Accept json
// @Produce json
// @Param request body ProposalRequest true "Proposal submission"
// @Success 200 {object} models.Proposal
// @Failure 400 {object} ErrorResponse
// @Router /proposals [post]
func (ps *ProposalService) SubmitProposal(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req ProposalRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := ps.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	p := models.Proposal{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Committee:   models.Committee(req.Committee),
		AmountCents: req.AmountCents,
		Summary:     req.Summary,
		Contact:     req.Contact,
		SubmittedAt: time.Now().UTC(),
	}

	count := ps.store.Append(p)
	log.Printf("[PROPOSAL] Accepted %s (%d pending)", p.ID, count)
	writeJSON(w, p)
}

// ListProposals returns all pending submissions
// @Summary List proposals
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Proposal
// @Failure 401 {object} ErrorResponse
// @Router /proposals [get]
func (ps *ProposalService) ListProposals(w http.ResponseWriter, r *http.Request) {
	memberID, ok := r.Context().Value("memberID").(string)
	if !ok || memberID == "" {
		SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	writeJSON(w, ps.store.List())
}
