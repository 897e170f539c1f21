package store

import (
	"time"

	"github.com/shopspring/decimal"

	"tally/internal/core"
)

// NewSeededLedger builds a ledger pre-loaded with the demo book-keeping
// data. Appointment dates are laid out relative to now so the calendar
// always has upcoming entries.
func NewSeededLedger(now time.Time) *Ledger {
	l := NewLedger()

	l.revenues = []core.Revenue{
		{ID: core.NewID(), Date: core.NewDate(2024, 5, 1), Source: "Client A", Category: "Web Development", Amount: decimal.NewFromInt(2500)},
		{ID: core.NewID(), Date: core.NewDate(2024, 5, 3), Source: "Client B", Category: "Consulting", Amount: decimal.NewFromInt(1500)},
		{ID: core.NewID(), Date: core.NewDate(2024, 6, 10), Source: "Client C", Category: "Web Development", Amount: decimal.NewFromInt(3200)},
		{ID: core.NewID(), Date: core.NewDate(2024, 6, 15), Source: "Client A", Category: "Maintenance", Amount: decimal.NewFromInt(500)},
		{ID: core.NewID(), Date: core.NewDate(2024, 7, 22), Source: "Client D", Category: "Design", Amount: decimal.NewFromInt(1800)},
		{ID: core.NewID(), Date: core.NewDate(2024, 7, 25), Source: "Client B", Category: "Consulting", Amount: decimal.NewFromInt(1700)},
	}

	l.expenses = []core.Expense{
		{ID: core.NewID(), Date: core.NewDate(2024, 5, 2), Item: "Software Subscription", Category: "Software", Amount: decimal.NewFromInt(50)},
		{ID: core.NewID(), Date: core.NewDate(2024, 6, 5), Item: "Office Supplies", Category: "Supplies", Amount: decimal.NewFromInt(120)},
		{ID: core.NewID(), Date: core.NewDate(2024, 6, 12), Item: "Freelancer Payment", Category: "Contractors", Amount: decimal.NewFromInt(1000)},
		{ID: core.NewID(), Date: core.NewDate(2024, 7, 20), Item: "Cloud Hosting", Category: "Utilities", Amount: decimal.NewFromInt(75)},
	}

	day := func(offset int) core.Date {
		return core.DayOf(now.AddDate(0, 0, offset))
	}
	l.appointments = SortByDate([]core.Appointment{
		{ID: core.NewID(), Date: day(1), Time: "10:00 AM", Description: "Project Kickoff", Client: "Client A"},
		{ID: core.NewID(), Date: day(2), Time: "02:00 PM", Description: "Design Review", Client: "Client D"},
		{ID: core.NewID(), Date: day(4), Time: "11:30 AM", Description: "Follow-up call", Client: "Client B"},
		{ID: core.NewID(), Date: day(10), Time: "09:00 AM", Description: "Quarterly Review", Client: "Client C"},
	})

	return l
}
