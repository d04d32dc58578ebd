package services

import (
	"net/http"

	"github.com/Blake-Bird/SGA2029/internal/nav"
)

// NavService exposes the route resolver to the single-page client so
// server-rendered links and client navigation agree on one mapping.
type NavService struct{}

func NewNavService() *NavService {
	return &NavService{}
}

// ResolvedRoute is a route along with its canonical href.
type ResolvedRoute struct {
	Page nav.Page `json:"page"`
	ID   string   `json:"id,omitempty"`
	Href string   `json:"href"`
}

// ResolvePath maps a navigation path to its page intent
// @Summary Resolve a navigation path
// @Description Map a path to one of the nine page intents; unknown paths resolve to home
// @Tags nav
// @Produce json
// @Param path query string true "Navigation path, e.g. /events/ev-001"
// @Success 200 {object} ResolvedRoute
// @Router /resolve [get]
func (ns *NavService) ResolvePath(w http.ResponseWriter, r *http.Request) {
	route := nav.Resolve(r.URL.Query().Get("path"))
	writeJSON(w, ResolvedRoute{Page: route.Page, ID: route.ID, Href: route.Href()})
}
