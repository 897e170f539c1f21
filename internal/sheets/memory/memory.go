// Package memory provides an in-memory RecordExporter used in tests and
// when no spreadsheet is configured.
package memory

import (
	"context"
	"fmt"
	"sync"

	"tally/internal/core"
	ports "tally/internal/sheets"
)

type Exporter struct {
	mu   sync.Mutex
	rows [][]any
}

var _ ports.RecordExporter = (*Exporter)(nil)

func New() *Exporter {
	return &Exporter{}
}

func (e *Exporter) AppendRevenue(ctx context.Context, r core.Revenue) (string, error) {
	return e.append([]any{"revenue", r.ID, r.Date.String(), r.Source, r.Category, r.Amount.String()})
}

func (e *Exporter) AppendExpense(ctx context.Context, x core.Expense) (string, error) {
	return e.append([]any{"expense", x.ID, x.Date.String(), x.Item, x.Category, x.Amount.String()})
}

func (e *Exporter) AppendAppointment(ctx context.Context, a core.Appointment) (string, error) {
	return e.append([]any{"appointment", a.ID, a.Date.String(), a.Client, a.Time, a.Description})
}

func (e *Exporter) append(row []any) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rows = append(e.rows, row)
	return fmt.Sprintf("memory!A%d", len(e.rows)), nil
}

// Rows returns a snapshot of everything appended so far.
func (e *Exporter) Rows() [][]any {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([][]any, len(e.rows))
	copy(out, e.rows)
	return out
}
