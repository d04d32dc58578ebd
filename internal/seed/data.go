package seed

import (
	"time"

	"github.com/Blake-Bird/SGA2029/internal/models"
)

// Seed data for the Class of 2029 student government site. These are
// the fixed collections every view is rendered from; nothing in the
// process ever writes them back.

var campusTZ = time.FixedZone("CST", -6*60*60)

var teamSeed = []models.TeamMember{
	{
		ID: "tm-pres", Name: "Blake Bird", Role: models.RolePresident,
		Email: "sga2029.president@university.edu",
		OfficeHours: "Tue/Thu 2-4pm, Union 214",
		Bio:         "Political science major from Austin. Ran on transparent budgeting and more late-night dining.",
		Avatar:      "/static/media/avatars/blake.jpg",
		Focus:       "Budget transparency and first-year outreach.",
	},
	{
		ID: "tm-vp", Name: "Priya Raman", Role: models.RoleVicePresident,
		Email: "sga2029.vp@university.edu",
		OfficeHours: "Mon/Wed 1-3pm, Union 214",
		Avatar:      "/static/media/avatars/priya.jpg",
		Focus:       "Committee coordination and club partnerships.",
	},
	{
		ID: "tm-sec", Name: "Marcus Okafor", Role: models.RoleSecretary,
		Email: "sga2029.secretary@university.edu",
		Bio:   "Keeps the minutes, the calendar, and everyone honest about deadlines.",
		Avatar: "/static/media/avatars/marcus.jpg",
	},
	{
		ID: "tm-treas", Name: "Sofia Delgado", Role: models.RoleTreasurer,
		Email: "sga2029.treasurer@university.edu",
		OfficeHours: "Fri 10am-12pm, Union 218",
		Avatar:      "/static/media/avatars/sofia.jpg",
		Focus:       "Every cent accounted for, every semester.",
	},
	{
		ID: "tm-social", Name: "Jordan Lee", Role: models.RoleSocialChair,
		Email: "sga2029.social@university.edu",
		Avatar: "/static/media/avatars/jordan.jpg",
		Focus:  "Events people actually want to show up to.",
	},
}

var eventSeed = []models.EventItem{
	{
		ID: "ev-001", Title: "Fall Kickoff Mixer",
		StartsAt:  time.Date(2025, 9, 5, 19, 0, 0, 0, campusTZ),
		Location:  "Union Ballroom",
		Type:      models.EventSocial,
		Committee: models.CommitteeEvents,
		BudgetCents: 45000,
		Poster:    "/static/media/posters/fall-kickoff.png",
		Summary:   "Meet the class of 2029 board, free pizza while it lasts.",
	},
	{
		ID: "ev-002", Title: "Campus Creek Cleanup",
		StartsAt:  time.Date(2025, 9, 20, 9, 0, 0, 0, campusTZ),
		Location:  "Waller Creek Trailhead",
		Type:      models.EventService,
		Committee: models.CommitteeOutreach,
		BudgetCents: 8000,
		Summary:   "Gloves and bags provided. Service hours signed on site.",
	},
	{
		ID: "ev-003", Title: "Midterm Study Jam",
		StartsAt:  time.Date(2025, 10, 12, 18, 0, 0, 0, campusTZ),
		Location:  "Library Commons, Floor 2",
		Type:      models.EventWorkshop,
		Committee: models.CommitteeAcademics,
		BudgetCents: 15000,
		Poster:    "/static/media/posters/study-jam.png",
	},
	{
		ID: "ev-004", Title: "Boba & Budgets Town Hall",
		StartsAt:  time.Date(2025, 11, 6, 17, 30, 0, 0, campusTZ),
		Location:  "Union 301",
		Type:      models.EventOther,
		Committee: models.CommitteeFinance,
		BudgetCents: 12000,
		Summary:   "Quarterly ledger walkthrough with the treasurer. Boba on us.",
	},
	{
		ID: "ev-005", Title: "Hoops for Hope Charity Tournament",
		StartsAt:  time.Date(2025, 11, 22, 12, 0, 0, 0, campusTZ),
		Location:  "Rec Center Court 3",
		Type:      models.EventPhilanthropy,
		Committee: models.CommitteeEvents,
		BudgetCents: 30000,
		Poster:    "/static/media/posters/hoops-for-hope.png",
		Summary:   "Entry fees donated to the campus food pantry.",
	},
	{
		ID: "ev-006", Title: "Spring Formal",
		StartsAt:  time.Date(2026, 4, 18, 20, 0, 0, 0, campusTZ),
		Location:  "Riverside Terrace",
		Type:      models.EventSocial,
		Committee: models.CommitteeEvents,
		BudgetCents: 250000,
		Poster:    "/static/media/posters/spring-formal.png",
	},
}

var billDecided = func(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 17, 0, 0, 0, campusTZ)
	return &t
}

var billSeed = []models.Bill{
	{
		ID: "b-001", Title: "Town Hall Refreshments",
		AmountCents: 12000,
		Status:      models.BillApproved,
		Committee:   models.CommitteeFinance,
		SubmittedAt: time.Date(2025, 10, 20, 12, 0, 0, 0, campusTZ),
		DecidedAt:   billDecided(2025, 10, 27),
		Justification: "Boba and snacks for the quarterly budget town hall.",
	},
	{
		ID: "b-002", Title: "Study Jam Supplies",
		AmountCents: 15000,
		Status:      models.BillApproved,
		Committee:   models.CommitteeAcademics,
		SubmittedAt: time.Date(2025, 9, 28, 9, 30, 0, 0, campusTZ),
		DecidedAt:   billDecided(2025, 10, 3),
		Attachments: []string{"/static/media/bills/b-002-quote.pdf"},
	},
	{
		ID: "b-003", Title: "Spring Formal Venue Deposit",
		AmountCents: 100000,
		Status:      models.BillSubmitted,
		Committee:   models.CommitteeEvents,
		SubmittedAt: time.Date(2025, 11, 10, 15, 0, 0, 0, campusTZ),
		Justification: "Deposit locks the April date; balance due in March.",
	},
	{
		ID: "b-004", Title: "Banner Reprint",
		AmountCents: 6500,
		Status:      models.BillDenied,
		Committee:   models.CommitteeOutreach,
		SubmittedAt: time.Date(2025, 10, 1, 11, 0, 0, 0, campusTZ),
		DecidedAt:   billDecided(2025, 10, 8),
		Justification: "Existing banner judged serviceable for one more semester.",
	},
	{
		ID: "b-005", Title: "Tournament Equipment Rental",
		AmountCents: 18000,
		Status:      models.BillRevised,
		Committee:   models.CommitteeEvents,
		SubmittedAt: time.Date(2025, 11, 2, 10, 0, 0, 0, campusTZ),
	},
	{
		ID: "b-006", Title: "Office Hours Coffee Fund",
		AmountCents: 4000,
		Status:      models.BillDraft,
		Committee:   models.CommitteeExecutive,
		SubmittedAt: time.Date(2025, 11, 18, 16, 0, 0, 0, campusTZ),
	},
}

var transactionSeed = []models.Transaction{
	{ID: "tx-001", Date: "2025-08-25", Type: models.TxAllocation, AmountCents: 800000, Memo: "Fall semester allocation from student activities fund"},
	{ID: "tx-002", Date: "2025-09-03", Type: models.TxExpense, AmountCents: -38750, Vendor: "Rosa's Pizzeria", Memo: "Fall kickoff catering", EventID: "ev-001"},
	{ID: "tx-003", Date: "2025-09-05", Type: models.TxExpense, AmountCents: -6200, Vendor: "Party Plus", Memo: "Kickoff decorations", EventID: "ev-001", Attachment: "/static/media/receipts/tx-003.pdf"},
	{ID: "tx-004", Date: "2025-09-19", Type: models.TxExpense, AmountCents: -5400, Vendor: "Hardware Depot", Memo: "Gloves and trash bags", EventID: "ev-002"},
	{ID: "tx-005", Date: "2025-09-26", Type: models.TxRevenue, AmountCents: 12500, Vendor: "Campus Bookstore", Memo: "Kickoff co-sponsorship"},
	{ID: "tx-006", Date: "2025-10-05", Type: models.TxExpense, AmountCents: -14200, Vendor: "Office Supply Co", Memo: "Study jam supplies", EventID: "ev-003", BillID: "b-002"},
	{ID: "tx-007", Date: "2025-10-10", Type: models.TxExpense, AmountCents: -4500, Vendor: "Campus Print Shop", Memo: "Study jam posters", EventID: "ev-003"},
	{ID: "tx-008", Date: "2025-10-15", Type: models.TxTransfer, AmountCents: -50000, Memo: "Reserve transfer to spring formal fund"},
	{ID: "tx-009", Date: "2025-10-30", Type: models.TxRevenue, AmountCents: 8000, Memo: "Merch table, October"},
	{ID: "tx-010", Date: "2025-11-04", Type: models.TxExpense, AmountCents: -9800, Vendor: "Leaf & Pearl", Memo: "Boba for town hall", EventID: "ev-004", BillID: "b-001"},
	{ID: "tx-011", Date: "2025-11-06", Type: models.TxExpense, AmountCents: -2100, Vendor: "Leaf & Pearl", Memo: "Extra boba run, town hall overflow", EventID: "ev-004", BillID: "b-001"},
	{ID: "tx-012", Date: "2025-11-20", Type: models.TxExpense, AmountCents: -16500, Vendor: "Rec Sports", Memo: "Court rental and referees", EventID: "ev-005"},
	{ID: "tx-013", Date: "2025-11-22", Type: models.TxRevenue, AmountCents: 41200, Memo: "Tournament entry fees", EventID: "ev-005"},
	{ID: "tx-014", Date: "2025-11-24", Type: models.TxTransfer, AmountCents: -41200, Memo: "Entry fee passthrough to food pantry", EventID: "ev-005"},
	{ID: "tx-015", Date: "2025-12-02", Type: models.TxExpense, AmountCents: -3300, Vendor: "Campus Print Shop", Memo: "Finals week flyers"},
	{ID: "tx-016", Date: "2026-01-15", Type: models.TxAllocation, AmountCents: 800000, Memo: "Spring semester allocation from student activities fund"},
	{ID: "tx-017", Date: "2026-02-10", Type: models.TxExpense, AmountCents: -100000, Vendor: "Riverside Terrace", Memo: "Spring formal venue deposit", EventID: "ev-006", BillID: "b-003"},
	{ID: "tx-018", Date: "2026-02-28", Type: models.TxRevenue, AmountCents: 26000, Memo: "Merch table, February"},
	// Historical row kept for the lifetime balance; its bill was purged
	// from the seed in a prior cleanup, so the reference dangles.
	{ID: "tx-019", Date: "2024-05-11", Type: models.TxExpense, AmountCents: -7500, Vendor: "Legacy Vendor", Memo: "Handoff dinner, class of 2028", BillID: "b-archived-17"},
	{ID: "tx-020", Date: "2026-03-06", Type: models.TxExpense, AmountCents: -2800, Vendor: "Leaf & Pearl", Memo: "Treasurer office hours boba"},
}

var socialSeed = []models.SocialItem{
	{
		ID: "so-001", Network: models.NetworkInstagram,
		Text:     "Fall Kickoff was packed! Thanks for coming out, 2029.",
		Media:    "/static/media/social/kickoff.jpg",
		URL:      "https://instagram.com/p/sga2029-kickoff",
		PostedAt: time.Date(2025, 9, 6, 10, 12, 0, 0, campusTZ),
	},
	{
		ID: "so-002", Network: models.NetworkTikTok,
		Text:     "POV: the treasurer explains where your activity fee goes",
		URL:      "https://tiktok.com/@sga2029/video/town-hall",
		PostedAt: time.Date(2025, 11, 7, 18, 40, 0, 0, campusTZ),
	},
	{
		ID: "so-003", Network: models.NetworkX,
		Text:     "Hoops for Hope raised $412 for the campus food pantry. Every cent passed through.",
		URL:      "https://x.com/sga2029/status/hoops",
		PostedAt: time.Date(2025, 11, 25, 9, 0, 0, 0, campusTZ),
	},
	{
		ID: "so-004", Network: models.NetworkInstagram,
		Text:     "Spring Formal. April 18. Riverside Terrace. You know what to do.",
		Media:    "/static/media/social/formal-teaser.jpg",
		URL:      "https://instagram.com/p/sga2029-formal",
		PostedAt: time.Date(2026, 2, 14, 12, 0, 0, 0, campusTZ),
	},
}
