package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tally/internal/core"
)

func mkRevenue(date string, source string, amount int64) core.Revenue {
	d, err := core.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return core.Revenue{
		ID:       core.NewID(),
		Date:     d,
		Source:   source,
		Category: "Consulting",
		Amount:   decimal.NewFromInt(amount),
	}
}

func mkAppointment(date string, client string) core.Appointment {
	d, err := core.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return core.Appointment{
		ID:          core.NewID(),
		Date:        d,
		Time:        "10:00 AM",
		Client:      client,
		Description: "Planning session",
	}
}

func TestAppendDoesNotMutateInput(t *testing.T) {
	original := []core.Revenue{
		mkRevenue("2024-05-01", "Client A", 100),
		mkRevenue("2024-05-02", "Client B", 200),
	}
	snapshot := append([]core.Revenue(nil), original...)

	out := Append(original, mkRevenue("2024-05-03", "Client C", 300))

	if len(original) != 2 {
		t.Fatalf("input length changed: %d", len(original))
	}
	for i := range original {
		if original[i].ID != snapshot[i].ID {
			t.Fatalf("input contents changed at %d", i)
		}
	}
	if len(out) != 3 || out[0].Source != "Client C" {
		t.Fatalf("new record not prepended: %+v", out)
	}
}

func TestForDay(t *testing.T) {
	day := core.NewDate(2024, 7, 5)
	records := []core.Appointment{
		mkAppointment("2024-07-05", "Client A"),
		mkAppointment("2024-07-06", "Client B"),
		mkAppointment("2024-07-05", "Client C"),
	}
	got := ForDay(records, day)
	if len(got) != 2 || got[0].Client != "Client A" || got[1].Client != "Client C" {
		t.Fatalf("unexpected ForDay result: %+v", got)
	}
	if got := ForDay(records, core.NewDate(2024, 7, 7)); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestSortByDateStable(t *testing.T) {
	records := []core.Appointment{
		mkAppointment("2024-07-10", "Late"),
		mkAppointment("2024-07-01", "First"),
		mkAppointment("2024-07-01", "Second"),
	}
	sorted := SortByDate(records)
	if sorted[0].Client != "First" || sorted[1].Client != "Second" || sorted[2].Client != "Late" {
		t.Fatalf("unexpected order: %+v", sorted)
	}
	// Input untouched.
	if records[0].Client != "Late" {
		t.Fatalf("input mutated: %+v", records)
	}
}

func TestLedgerAddRevenuePrependsAndBumpsVersion(t *testing.T) {
	ctx := context.Background()
	l := NewLedger()
	v0 := l.Version()

	if _, err := l.AddRevenue(ctx, mkRevenue("2024-05-01", "Client A", 100)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := l.AddRevenue(ctx, mkRevenue("2024-04-01", "Client B", 200)); err != nil {
		t.Fatalf("add: %v", err)
	}

	revs, err := l.Revenues(ctx)
	if err != nil {
		t.Fatalf("revenues: %v", err)
	}
	// Newest first, no resort by date for revenue.
	if len(revs) != 2 || revs[0].Source != "Client B" || revs[1].Source != "Client A" {
		t.Fatalf("unexpected order: %+v", revs)
	}
	if l.Version() == v0 {
		t.Fatalf("version did not change on write")
	}
}

func TestLedgerAppointmentsResortedByDate(t *testing.T) {
	ctx := context.Background()
	l := NewLedger()

	l.AddAppointment(ctx, mkAppointment("2024-07-10", "Client B"))
	l.AddAppointment(ctx, mkAppointment("2024-07-01", "Client A"))

	appts, err := l.Appointments(ctx)
	if err != nil {
		t.Fatalf("appointments: %v", err)
	}
	if len(appts) != 2 || appts[0].Client != "Client A" || appts[1].Client != "Client B" {
		t.Fatalf("appointments not sorted by date: %+v", appts)
	}
}

func TestLedgerSnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	l := NewLedger()
	l.AddRevenue(ctx, mkRevenue("2024-05-01", "Client A", 100))

	revs, _ := l.Revenues(ctx)
	revs[0].Source = "mutated"

	fresh, _ := l.Revenues(ctx)
	if fresh[0].Source != "Client A" {
		t.Fatalf("snapshot mutation leaked into store")
	}
}

func TestSeededLedger(t *testing.T) {
	now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	l := NewSeededLedger(now)
	ctx := context.Background()

	revs, _ := l.Revenues(ctx)
	if len(revs) != 6 {
		t.Fatalf("got %d revenues, want 6", len(revs))
	}
	exps, _ := l.Expenses(ctx)
	if len(exps) != 4 {
		t.Fatalf("got %d expenses, want 4", len(exps))
	}

	appts, _ := l.Appointments(ctx)
	if len(appts) != 4 {
		t.Fatalf("got %d appointments, want 4", len(appts))
	}
	// All seeded appointments are in the future and date-sorted.
	for i, a := range appts {
		if a.Date.Before(core.DayOf(now).Time) {
			t.Fatalf("appointment %d in the past: %v", i, a.Date)
		}
		if i > 0 && a.Date.Before(appts[i-1].Date.Time) {
			t.Fatalf("appointments unsorted at %d", i)
		}
	}

	// Every seeded record passes validation.
	for _, r := range revs {
		if err := r.Validate(); err != nil {
			t.Fatalf("seed revenue invalid: %v", err)
		}
	}
	for _, e := range exps {
		if err := e.Validate(); err != nil {
			t.Fatalf("seed expense invalid: %v", err)
		}
	}
	for _, a := range appts {
		if err := a.Validate(); err != nil {
			t.Fatalf("seed appointment invalid: %v", err)
		}
	}

	forDay, _ := l.AppointmentsForDay(ctx, core.DayOf(now.AddDate(0, 0, 1)))
	if len(forDay) != 1 || forDay[0].Description != "Project Kickoff" {
		t.Fatalf("unexpected day lookup: %+v", forDay)
	}
}
