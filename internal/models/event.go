package models

import "time"

// EventType categorizes an event on the calendar.
type EventType string

const (
	EventSocial       EventType = "Social"
	EventService      EventType = "Service"
	EventPhilanthropy EventType = "Philanthropy"
	EventWorkshop     EventType = "Workshop"
	EventOther        EventType = "Other"
)

// Valid reports whether e is one of the five known event types.
func (e EventType) Valid() bool {
	switch e {
	case EventSocial, EventService, EventPhilanthropy, EventWorkshop, EventOther:
		return true
	}
	return false
}

// Committee identifies which standing committee owns an event or bill.
type Committee string

const (
	CommitteeExecutive Committee = "Executive"
	CommitteeFinance   Committee = "Finance"
	CommitteeEvents    Committee = "Events"
	CommitteeOutreach  Committee = "Outreach"
	CommitteeAcademics Committee = "Academics"
)

// Valid reports whether c is one of the five standing committees.
func (c Committee) Valid() bool {
	switch c {
	case CommitteeExecutive, CommitteeFinance, CommitteeEvents, CommitteeOutreach, CommitteeAcademics:
		return true
	}
	return false
}

// EventItem is a calendar entry. BudgetCents is the estimated budget in
// integer cents; zero means no estimate. Poster and Summary are optional.
type EventItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	StartsAt    time.Time `json:"startsAt"`
	Location    string    `json:"location"`
	Type        EventType `json:"type"`
	Committee   Committee `json:"committee"`
	BudgetCents int64     `json:"budgetCents,omitempty"`
	Poster      string    `json:"poster,omitempty"`
	Summary     string    `json:"summary,omitempty"`
}
