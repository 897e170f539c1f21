package store

import (
	"context"
	"sync"

	"tally/internal/core"
)

// Ledger is the in-memory record store for one session. There is a single
// logical writer; the RWMutex only protects concurrent render reads. Every
// write bumps the version so cached summaries keyed by it become stale.
type Ledger struct {
	mu           sync.RWMutex
	version      uint64
	revenues     []core.Revenue
	expenses     []core.Expense
	appointments []core.Appointment
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{version: 1}
}

// Version identifies the current state of the store. It changes on every
// write and is used as a cache discriminator.
func (l *Ledger) Version() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.version
}

// AddRevenue prepends a revenue record. Revenue history keeps insertion
// order, newest first.
func (l *Ledger) AddRevenue(_ context.Context, r core.Revenue) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.revenues = Append(l.revenues, r)
	l.version++
	return r.ID, nil
}

// AddExpense prepends an expense record.
func (l *Ledger) AddExpense(_ context.Context, e core.Expense) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.expenses = Append(l.expenses, e)
	l.version++
	return e.ID, nil
}

// AddAppointment prepends an appointment and re-sorts the collection by
// date, which is a displayed invariant of the calendar views.
func (l *Ledger) AddAppointment(_ context.Context, a core.Appointment) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.appointments = SortByDate(Append(l.appointments, a))
	l.version++
	return a.ID, nil
}

// Revenues returns a snapshot of the revenue collection.
func (l *Ledger) Revenues(_ context.Context) ([]core.Revenue, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]core.Revenue(nil), l.revenues...), nil
}

// Expenses returns a snapshot of the expense collection.
func (l *Ledger) Expenses(_ context.Context) ([]core.Expense, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]core.Expense(nil), l.expenses...), nil
}

// Appointments returns a snapshot of the appointment collection, sorted
// ascending by date.
func (l *Ledger) Appointments(_ context.Context) ([]core.Appointment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]core.Appointment(nil), l.appointments...), nil
}

// AppointmentsForDay returns the appointments on the given calendar day.
func (l *Ledger) AppointmentsForDay(_ context.Context, day core.Date) ([]core.Appointment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return ForDay(l.appointments, day), nil
}
