package worker

import (
	"context"
	"fmt"
	"log/slog"

	"tally/internal/amqp"
	applog "tally/internal/log"
	"tally/internal/sheets"
	"tally/internal/storage"
)

// ExportWorker pushes ledger records from SQLite to the configured sheet.
type ExportWorker struct {
	storage   *storage.SQLiteRepository
	exporter  sheets.RecordExporter
	batchSize int
}

func NewExportWorker(storage *storage.SQLiteRepository, exporter sheets.RecordExporter, batchSize int) *ExportWorker {
	return &ExportWorker{
		storage:   storage,
		exporter:  exporter,
		batchSize: batchSize,
	}
}

// HandleExportMessage processes a single record export message from AMQP.
func (w *ExportWorker) HandleExportMessage(ctx context.Context, msg *amqp.RecordExportMessage) error {
	slog.InfoContext(ctx, "Processing export message",
		"kind", msg.Kind,
		"id", msg.ID)

	return w.exportRecord(ctx, msg.Kind, msg.ID)
}

// ProcessPending exports any records that never made it through AMQP.
// This is a backup mechanism in case messages are lost.
func (w *ExportWorker) ProcessPending(ctx context.Context) error {
	pending, err := w.storage.PendingExports(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get pending exports: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending exports", "count", len(pending))

	for _, p := range pending {
		if err := w.exportRecord(ctx, p.Kind, p.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to export record",
				"kind", p.Kind, "id", p.ID, "error", err)
			continue
		}
	}

	return nil
}

// StartupCheck exports pending records at worker startup, using a larger
// batch to recover from downtime.
func (w *ExportWorker) StartupCheck(ctx context.Context) error {
	pending, err := w.storage.PendingExports(ctx, w.batchSize*5)
	if err != nil {
		return fmt.Errorf("get pending exports for startup check: %w", err)
	}

	if len(pending) == 0 {
		slog.InfoContext(ctx, "No pending exports found on startup",
			applog.FieldOperation, applog.OpStartup)
		return nil
	}

	slog.InfoContext(ctx, "Found pending exports on startup, processing...",
		applog.FieldOperation, applog.OpStartup,
		"count", len(pending))

	exported := 0
	failed := 0

	for _, p := range pending {
		if err := w.exportRecord(ctx, p.Kind, p.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to export record during startup",
				"kind", p.Kind, "id", p.ID, "error", err)
			failed++
			continue
		}
		exported++
	}

	slog.InfoContext(ctx, "Startup export completed",
		applog.FieldOperation, applog.OpStartup,
		"total", len(pending),
		"exported", exported,
		"errors", failed)

	return nil
}

func (w *ExportWorker) exportRecord(ctx context.Context, kind, id string) error {
	var ref string
	var err error

	switch kind {
	case amqp.KindRevenue:
		rec, getErr := w.storage.GetRevenue(ctx, id)
		if getErr != nil {
			return fmt.Errorf("get revenue from storage: %w", getErr)
		}
		ref, err = w.exporter.AppendRevenue(ctx, rec)
	case amqp.KindExpense:
		rec, getErr := w.storage.GetExpense(ctx, id)
		if getErr != nil {
			return fmt.Errorf("get expense from storage: %w", getErr)
		}
		ref, err = w.exporter.AppendExpense(ctx, rec)
	case amqp.KindAppointment:
		rec, getErr := w.storage.GetAppointment(ctx, id)
		if getErr != nil {
			return fmt.Errorf("get appointment from storage: %w", getErr)
		}
		ref, err = w.exporter.AppendAppointment(ctx, rec)
	default:
		return fmt.Errorf("unknown record kind %q", kind)
	}

	if err != nil {
		return fmt.Errorf("append to sheet: %w", err)
	}

	if err := w.storage.MarkExported(ctx, kind, id); err != nil {
		// The row landed on the sheet; a failed flag only means the
		// record gets re-exported on the next pending scan.
		slog.ErrorContext(ctx, "Failed to mark record as exported",
			"kind", kind, "id", id, "error", err)
	}

	slog.InfoContext(ctx, "Record exported",
		applog.FieldOperation, applog.OpExport,
		applog.FieldRecordKind, kind,
		applog.FieldRecordID, id,
		applog.FieldSheetRef, ref)

	return nil
}
