package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Route
	}{
		{"root", "/", Route{Page: PageHome}},
		{"empty", "", Route{Page: PageHome}},
		{"explicit home", "/home", Route{Page: PageHome}},
		{"events list", "/events", Route{Page: PageEvents}},
		{"events trailing slash", "/events/", Route{Page: PageEvents}},
		{"event detail", "/events/ev-001", Route{Page: PageEventDetail, ID: "ev-001"}},
		{"event detail extra segments ignored", "/events/ev-001/photos/3", Route{Page: PageEventDetail, ID: "ev-001"}},
		{"ledger", "/ledger", Route{Page: PageLedger}},
		{"bills list", "/bills", Route{Page: PageBills}},
		{"bill detail", "/bills/b-001", Route{Page: PageBillDetail, ID: "b-001"}},
		{"proposals", "/proposals", Route{Page: PageProposals}},
		{"team", "/team", Route{Page: PageTeam}},
		{"admin", "/admin", Route{Page: PageAdmin}},
		{"unknown falls back to home", "/karaoke", Route{Page: PageHome}},
		{"deep unknown falls back to home", "/a/b/c", Route{Page: PageHome}},
		{"query ignored", "/events?sort=asc", Route{Page: PageEvents}},
		{"fragment ignored", "/bills#top", Route{Page: PageBills}},
		{"query and fragment on detail", "/bills/b-001?x=1#frag", Route{Page: PageBillDetail, ID: "b-001"}},
		{"no leading slash", "team", Route{Page: PageTeam}},
		{"percent-decoded id", "/events/spring%20formal", Route{Page: PageEventDetail, ID: "spring formal"}},
		{"encoded slash survives", "/events/a%2Fb", Route{Page: PageEventDetail, ID: "a/b"}},
		{"malformed escape used raw", "/events/bad%zz", Route{Page: PageEventDetail, ID: "bad%zz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.path))
		})
	}
}

func TestHref(t *testing.T) {
	assert.Equal(t, "/", Route{Page: PageHome}.Href())
	assert.Equal(t, "/events", Route{Page: PageEvents}.Href())
	assert.Equal(t, "/events/ev-001", Route{Page: PageEventDetail, ID: "ev-001"}.Href())
	assert.Equal(t, "/ledger", Route{Page: PageLedger}.Href())
	assert.Equal(t, "/bills/b-001", Route{Page: PageBillDetail, ID: "b-001"}.Href())
	assert.Equal(t, "/proposals", Route{Page: PageProposals}.Href())
	assert.Equal(t, "/team", Route{Page: PageTeam}.Href())
	assert.Equal(t, "/admin", Route{Page: PageAdmin}.Href())
}

func TestResolveHrefRoundTrip(t *testing.T) {
	routes := []Route{
		{Page: PageHome},
		{Page: PageEvents},
		{Page: PageLedger},
		{Page: PageBills},
		{Page: PageProposals},
		{Page: PageTeam},
		{Page: PageAdmin},
		{Page: PageEventDetail, ID: "ev-001"},
		{Page: PageBillDetail, ID: "b-001"},
		{Page: PageEventDetail, ID: "spring formal 2029"},
		{Page: PageEventDetail, ID: "a/b/c"},
		{Page: PageBillDetail, ID: "50% off?"},
		{Page: PageBillDetail, ID: "weird#id"},
		{Page: PageEventDetail, ID: "café night"},
	}

	for _, r := range routes {
		t.Run(string(r.Page)+"/"+r.ID, func(t *testing.T) {
			assert.Equal(t, r, Resolve(r.Href()))
		})
	}
}
