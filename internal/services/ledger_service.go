package services

import (
	"context"
	"fmt"
	"log/slog"

	"tally/internal/amqp"
	"tally/internal/backend"
	"tally/internal/core"
	applog "tally/internal/log"
)

// LedgerService orchestrates record creation across the store and AMQP.
// Records are saved locally first; the export message is best-effort and
// never fails the write.
type LedgerService struct {
	store      backend.Store
	amqpClient *amqp.Client
}

func NewLedgerService(store backend.Store, amqpClient *amqp.Client) *LedgerService {
	return &LedgerService{
		store:      store,
		amqpClient: amqpClient,
	}
}

// CreateRevenue validates and saves a revenue record, then publishes an
// export message.
func (s *LedgerService) CreateRevenue(ctx context.Context, r core.Revenue) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	if r.ID == "" {
		r.ID = core.NewID()
	}

	id, err := s.store.AddRevenue(ctx, r)
	if err != nil {
		return "", fmt.Errorf("save revenue: %w", err)
	}

	s.publishExport(ctx, amqp.KindRevenue, id)
	return id, nil
}

// CreateExpense validates and saves an expense record, then publishes an
// export message.
func (s *LedgerService) CreateExpense(ctx context.Context, e core.Expense) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	if e.ID == "" {
		e.ID = core.NewID()
	}

	id, err := s.store.AddExpense(ctx, e)
	if err != nil {
		return "", fmt.Errorf("save expense: %w", err)
	}

	s.publishExport(ctx, amqp.KindExpense, id)
	return id, nil
}

// CreateAppointment validates and saves an appointment, then publishes an
// export message.
func (s *LedgerService) CreateAppointment(ctx context.Context, a core.Appointment) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	if a.ID == "" {
		a.ID = core.NewID()
	}

	id, err := s.store.AddAppointment(ctx, a)
	if err != nil {
		return "", fmt.Errorf("save appointment: %w", err)
	}

	s.publishExport(ctx, amqp.KindAppointment, id)
	return id, nil
}

func (s *LedgerService) publishExport(ctx context.Context, kind, id string) {
	if s.amqpClient == nil {
		return
	}
	if err := s.amqpClient.PublishRecordExport(ctx, kind, id); err != nil {
		// The record is saved locally; the worker's pending scan picks
		// up anything that never made it onto the queue.
		slog.ErrorContext(ctx, "Failed to publish export message",
			applog.FieldComponent, applog.ComponentLedger,
			applog.FieldOperation, applog.OpCreate,
			applog.FieldRecordKind, kind,
			applog.FieldRecordID, id,
			applog.FieldError, err)
	}
}

// Close closes the AMQP connection if one was configured.
func (s *LedgerService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close amqp client: %w", err)
		}
	}
	return nil
}
