package models

import "time"

// SocialNetwork identifies where a social post was published.
type SocialNetwork string

const (
	NetworkInstagram SocialNetwork = "instagram"
	NetworkTikTok    SocialNetwork = "tiktok"
	NetworkX         SocialNetwork = "x"
	NetworkFacebook  SocialNetwork = "facebook"
)

// Valid reports whether n is one of the known networks.
func (n SocialNetwork) Valid() bool {
	switch n {
	case NetworkInstagram, NetworkTikTok, NetworkX, NetworkFacebook:
		return true
	}
	return false
}

// SocialItem is a published social media post surfaced on the site.
type SocialItem struct {
	ID       string        `json:"id"`
	Network  SocialNetwork `json:"network"`
	Text     string        `json:"text"`
	Media    string        `json:"media,omitempty"`
	URL      string        `json:"url"`
	PostedAt time.Time     `json:"postedAt"`
}
