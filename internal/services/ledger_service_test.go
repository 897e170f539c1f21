package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"tally/internal/core"
	"tally/internal/store"
)

func TestCreateRevenueAssignsID(t *testing.T) {
	ledger := store.NewLedger()
	svc := NewLedgerService(ledger, nil)

	rec := core.Revenue{
		Date:     core.NewDate(2024, 6, 10),
		Source:   "Client A",
		Category: "Services",
		Amount:   decimal.NewFromInt(1200),
	}

	id, err := svc.CreateRevenue(context.Background(), rec)
	if err != nil {
		t.Fatalf("CreateRevenue() error = %v", err)
	}
	if id == "" {
		t.Fatal("CreateRevenue() returned empty id")
	}

	saved, err := ledger.Revenues(context.Background())
	if err != nil {
		t.Fatalf("Revenues() error = %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected 1 revenue, got %d", len(saved))
	}
	if saved[0].ID != id {
		t.Errorf("saved ID = %q, want %q", saved[0].ID, id)
	}
}

func TestCreateRevenueKeepsProvidedID(t *testing.T) {
	ledger := store.NewLedger()
	svc := NewLedgerService(ledger, nil)

	rec := core.Revenue{
		ID:       "rev-42",
		Date:     core.NewDate(2024, 6, 10),
		Source:   "Client A",
		Category: "Services",
		Amount:   decimal.NewFromInt(500),
	}

	id, err := svc.CreateRevenue(context.Background(), rec)
	if err != nil {
		t.Fatalf("CreateRevenue() error = %v", err)
	}
	if id != "rev-42" {
		t.Errorf("id = %q, want rev-42", id)
	}
}

func TestCreateExpenseRejectsInvalid(t *testing.T) {
	ledger := store.NewLedger()
	svc := NewLedgerService(ledger, nil)

	rec := core.Expense{
		Date:     core.NewDate(2024, 6, 10),
		Item:     "X", // too short
		Category: "Supplies",
		Amount:   decimal.NewFromInt(50),
	}

	if _, err := svc.CreateExpense(context.Background(), rec); !errors.Is(err, core.ErrItemTooShort) {
		t.Fatalf("CreateExpense() error = %v, want ErrItemTooShort", err)
	}

	saved, _ := ledger.Expenses(context.Background())
	if len(saved) != 0 {
		t.Errorf("invalid expense was saved: %d records", len(saved))
	}
}

func TestCreateAppointmentRejectsBadTime(t *testing.T) {
	ledger := store.NewLedger()
	svc := NewLedgerService(ledger, nil)

	rec := core.Appointment{
		Date:        core.NewDate(2024, 6, 10),
		Time:        "13:00 PM",
		Client:      "Client A",
		Description: "Kickoff meeting",
	}

	if _, err := svc.CreateAppointment(context.Background(), rec); !errors.Is(err, core.ErrInvalidTime) {
		t.Fatalf("CreateAppointment() error = %v, want ErrInvalidTime", err)
	}
}

func TestCreateAppointmentSaves(t *testing.T) {
	ledger := store.NewLedger()
	svc := NewLedgerService(ledger, nil)

	rec := core.Appointment{
		Date:        core.NewDate(2024, 7, 1),
		Time:        "10:00 AM",
		Client:      "Client B",
		Description: "Design review",
	}

	id, err := svc.CreateAppointment(context.Background(), rec)
	if err != nil {
		t.Fatalf("CreateAppointment() error = %v", err)
	}

	saved, _ := ledger.Appointments(context.Background())
	if len(saved) != 1 || saved[0].ID != id {
		t.Fatalf("appointment not saved under id %q", id)
	}
}
