// Package nav resolves navigation paths to typed page routes and builds
// canonical hrefs back from them. Resolution is a pure function of the
// input string: unknown paths fall back to the home page rather than
// failing, and detail-route ids are percent-decoded on the way in and
// percent-encoded on the way out so that ids containing slashes or
// spaces survive the round trip.
package nav

import (
	"net/url"
	"strings"
)

// Page is one of the nine page variants the site can render.
type Page string

const (
	PageHome        Page = "home"
	PageEvents      Page = "events"
	PageEventDetail Page = "eventDetail"
	PageLedger      Page = "ledger"
	PageBills       Page = "bills"
	PageBillDetail  Page = "billDetail"
	PageProposals   Page = "proposals"
	PageTeam        Page = "team"
	PageAdmin       Page = "admin"
)

// Route is a resolved navigation intent. ID is set only for the two
// detail pages.
type Route struct {
	Page Page   `json:"page"`
	ID   string `json:"id,omitempty"`
}

// Resolve maps a path to exactly one route. The query string and
// fragment are ignored, leading and trailing slashes are stripped, and
// an unrecognized first segment resolves to home. Segments past a
// detail id are ignored.
func Resolve(path string) Route {
	if i := strings.IndexByte(path, '#'); i >= 0 {
		path = path[:i]
	}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	path = strings.Trim(path, "/")
	if path == "" {
		return Route{Page: PageHome}
	}

	segments := strings.Split(path, "/")
	switch segments[0] {
	case "events":
		if len(segments) > 1 && segments[1] != "" {
			return Route{Page: PageEventDetail, ID: decodeSegment(segments[1])}
		}
		return Route{Page: PageEvents}
	case "ledger":
		return Route{Page: PageLedger}
	case "bills":
		if len(segments) > 1 && segments[1] != "" {
			return Route{Page: PageBillDetail, ID: decodeSegment(segments[1])}
		}
		return Route{Page: PageBills}
	case "proposals":
		return Route{Page: PageProposals}
	case "team":
		return Route{Page: PageTeam}
	case "admin":
		return Route{Page: PageAdmin}
	case "home":
		return Route{Page: PageHome}
	}
	return Route{Page: PageHome}
}

// Href builds the canonical path for a route, the inverse of Resolve.
func (r Route) Href() string {
	switch r.Page {
	case PageEvents:
		return "/events"
	case PageEventDetail:
		return "/events/" + url.PathEscape(r.ID)
	case PageLedger:
		return "/ledger"
	case PageBills:
		return "/bills"
	case PageBillDetail:
		return "/bills/" + url.PathEscape(r.ID)
	case PageProposals:
		return "/proposals"
	case PageTeam:
		return "/team"
	case PageAdmin:
		return "/admin"
	}
	return "/"
}

// decodeSegment percent-decodes a path segment, keeping the raw text
// when decoding fails. A malformed escape is not an error here; the id
// simply won't match anything at lookup time.
func decodeSegment(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
