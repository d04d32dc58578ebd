package services

import (
	"net/http"

	"github.com/Blake-Bird/SGA2029/internal/seed"
)

// SocialService serves the social feed strip on the home page.
type SocialService struct {
	store *seed.Store
}

func NewSocialService(store *seed.Store) *SocialService {
	return &SocialService{store: store}
}

// ListPosts returns the published posts in seed order
// @Summary List social posts
// @Tags social
// @Produce json
// @Success 200 {array} models.SocialItem
// @Router /social [get]
func (ss *SocialService) ListPosts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	writeJSON(w, ss.store.Social())
}
