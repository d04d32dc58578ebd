package services

import (
	"encoding/base64"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Blake-Bird/SGA2029/internal/models"
	"github.com/Blake-Bird/SGA2029/internal/seed"
)

const (
	avatarsDir = "./static/media/avatars"

	placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 200"><rect width="200" height="200" fill="#eef1f6"/><circle cx="100" cy="78" r="34" fill="#aab4c4"/><path d="M40 178c0-33 27-54 60-54s60 21 60 54" fill="#aab4c4"/></svg>`
)

// TeamService serves the officer carousel. Avatar images are inlined as
// data URIs so the single-page client needs no extra round trips; a
// missing file falls back to a placeholder silhouette.
type TeamService struct {
	store *seed.Store
}

func NewTeamService(store *seed.Store) *TeamService {
	return &TeamService{store: store}
}

// OfficerCard is a team member with the avatar resolved to a data URI.
type OfficerCard struct {
	models.TeamMember
	AvatarData string `json:"avatarData"`
}

// ListTeam returns the five officer cards in roster order
// @Summary List officers
// @Tags team
// @Produce json
// @Success 200 {array} OfficerCard
// @Router /team [get]
func (ts *TeamService) ListTeam(w http.ResponseWriter, r *http.Request) {
	members := ts.store.Team()
	cards := make([]OfficerCard, len(members))
	for i, m := range members {
		cards[i] = OfficerCard{TeamMember: m, AvatarData: ts.LoadAvatar(m.Avatar)}
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, cards)
}

// GetMember returns one officer card
// @Summary Officer detail
// @Tags team
// @Produce json
// @Param memberId path string true "Member id"
// @Success 200 {object} OfficerCard
// @Failure 404 {object} ErrorResponse
// @Router /team/{memberId} [get]
func (ts *TeamService) GetMember(w http.ResponseWriter, r *http.Request) {
	m, ok := ts.store.MemberByID(chi.URLParam(r, "memberId"))
	if !ok {
		SendErrorResponse(w, "Member not found", http.StatusNotFound, nil)
		return
	}
	writeJSON(w, OfficerCard{TeamMember: m, AvatarData: ts.LoadAvatar(m.Avatar)})
}

// LoadAvatar inlines the avatar file referenced by the seed, or the
// placeholder when the reference is empty or the file is missing.
func (ts *TeamService) LoadAvatar(ref string) string {
	if ref != "" {
		path := filepath.Join(avatarsDir, filepath.Base(ref))
		if data, err := os.ReadFile(path); err == nil {
			mime := "image/jpeg"
			if strings.HasSuffix(path, ".png") {
				mime = "image/png"
			} else if strings.HasSuffix(path, ".svg") {
				mime = "image/svg+xml"
			}
			return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
		}
	}
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(placeholderSVG))
}
