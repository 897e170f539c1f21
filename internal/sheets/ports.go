package sheets

import (
	"context"

	"tally/internal/core"
)

// Ports for outbound adapters.
type (
	// RecordExporter appends ledger records as rows to an external sheet.
	RecordExporter interface {
		AppendRevenue(ctx context.Context, r core.Revenue) (rowRef string, err error)
		AppendExpense(ctx context.Context, e core.Expense) (rowRef string, err error)
		AppendAppointment(ctx context.Context, a core.Appointment) (rowRef string, err error)
	}
)
