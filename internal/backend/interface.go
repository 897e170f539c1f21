package backend

import (
	"context"

	"tally/internal/core"
)

// Store is the unified record store interface backing the HTTP layer.
// Both the in-memory ledger and the SQLite repository implement it.
type Store interface {
	// Version increases on every write and keys cached summaries.
	Version() uint64

	AddRevenue(ctx context.Context, r core.Revenue) (string, error)
	AddExpense(ctx context.Context, e core.Expense) (string, error)
	AddAppointment(ctx context.Context, a core.Appointment) (string, error)

	Revenues(ctx context.Context) ([]core.Revenue, error)
	Expenses(ctx context.Context) ([]core.Expense, error)
	Appointments(ctx context.Context) ([]core.Appointment, error)
	AppointmentsForDay(ctx context.Context, day core.Date) ([]core.Appointment, error)
}

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// BackendResult contains the store instance and optional cleanup function
type BackendResult struct {
	Store   Store
	Cleanup CleanupFunc
}

// Factory creates stores based on configuration
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation
type Config struct {
	Type BackendType

	// SQLite specific
	SQLiteDBPath string

	// Memory backend specific
	SeedDemoData bool
}

// BackendType represents the type of backend
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
