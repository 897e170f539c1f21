package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"tally/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the persistent record store backend. Amounts are
// stored as decimal strings so no precision is lost round-tripping, and
// dates as ISO "YYYY-MM-DD" strings.
type SQLiteRepository struct {
	db      *sql.DB
	version atomic.Uint64
}

// PendingExport identifies a record not yet pushed to the export sink.
type PendingExport struct {
	Kind string
	ID   string
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	repo := &SQLiteRepository{db: db}
	repo.version.Store(1)
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Version discriminates cached summaries. It is process-local: the counter
// restarts at 1 on open, which only means a cold cache after restart.
func (r *SQLiteRepository) Version() uint64 {
	return r.version.Load()
}

func (r *SQLiteRepository) AddRevenue(ctx context.Context, rec core.Revenue) (string, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO revenues (id, date, source, category, amount) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Date.String(), rec.Source, rec.Category, rec.Amount.String())
	if err != nil {
		return "", fmt.Errorf("insert revenue: %w", err)
	}
	r.version.Add(1)

	slog.InfoContext(ctx, "Revenue saved to SQLite",
		"id", rec.ID,
		"source", rec.Source,
		"amount", rec.Amount.String(),
		"date", rec.Date.String())

	return rec.ID, nil
}

func (r *SQLiteRepository) AddExpense(ctx context.Context, rec core.Expense) (string, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (id, date, item, category, amount) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Date.String(), rec.Item, rec.Category, rec.Amount.String())
	if err != nil {
		return "", fmt.Errorf("insert expense: %w", err)
	}
	r.version.Add(1)

	slog.InfoContext(ctx, "Expense saved to SQLite",
		"id", rec.ID,
		"item", rec.Item,
		"amount", rec.Amount.String(),
		"date", rec.Date.String())

	return rec.ID, nil
}

func (r *SQLiteRepository) AddAppointment(ctx context.Context, rec core.Appointment) (string, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO appointments (id, date, time, client, description) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Date.String(), rec.Time, rec.Client, rec.Description)
	if err != nil {
		return "", fmt.Errorf("insert appointment: %w", err)
	}
	r.version.Add(1)

	slog.InfoContext(ctx, "Appointment saved to SQLite",
		"id", rec.ID,
		"client", rec.Client,
		"date", rec.Date.String())

	return rec.ID, nil
}

// Revenues returns all revenue records, newest insertion first, matching the
// memory backend's prepend ordering.
func (r *SQLiteRepository) Revenues(ctx context.Context) ([]core.Revenue, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, source, category, amount FROM revenues ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("query revenues: %w", err)
	}
	defer rows.Close()

	var out []core.Revenue
	for rows.Next() {
		rec, err := scanRevenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) Expenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, item, category, amount FROM expenses ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		rec, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Appointments returns all appointments sorted ascending by date, the
// displayed calendar order.
func (r *SQLiteRepository) Appointments(ctx context.Context) ([]core.Appointment, error) {
	return r.queryAppointments(ctx,
		`SELECT id, date, time, client, description FROM appointments ORDER BY date ASC, rowid ASC`)
}

func (r *SQLiteRepository) AppointmentsForDay(ctx context.Context, day core.Date) ([]core.Appointment, error) {
	return r.queryAppointments(ctx,
		`SELECT id, date, time, client, description FROM appointments WHERE date = ? ORDER BY rowid ASC`,
		day.String())
}

func (r *SQLiteRepository) queryAppointments(ctx context.Context, query string, args ...any) ([]core.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query appointments: %w", err)
	}
	defer rows.Close()

	var out []core.Appointment
	for rows.Next() {
		var rec core.Appointment
		var date string
		if err := rows.Scan(&rec.ID, &date, &rec.Time, &rec.Client, &rec.Description); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		if rec.Date, err = core.ParseDate(date); err != nil {
			return nil, fmt.Errorf("parse appointment date %q: %w", date, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetRevenue loads one revenue record by ID; used by the export worker.
func (r *SQLiteRepository) GetRevenue(ctx context.Context, id string) (core.Revenue, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, date, source, category, amount FROM revenues WHERE id = ?`, id)
	return scanRevenue(row)
}

func (r *SQLiteRepository) GetExpense(ctx context.Context, id string) (core.Expense, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, date, item, category, amount FROM expenses WHERE id = ?`, id)
	return scanExpense(row)
}

func (r *SQLiteRepository) GetAppointment(ctx context.Context, id string) (core.Appointment, error) {
	var rec core.Appointment
	var date string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, date, time, client, description FROM appointments WHERE id = ?`, id).
		Scan(&rec.ID, &date, &rec.Time, &rec.Client, &rec.Description)
	if err != nil {
		return core.Appointment{}, fmt.Errorf("get appointment: %w", err)
	}
	if rec.Date, err = core.ParseDate(date); err != nil {
		return core.Appointment{}, fmt.Errorf("parse appointment date %q: %w", date, err)
	}
	return rec, nil
}

// PendingExports lists records not yet exported, oldest first, across all
// three tables, capped at limit.
func (r *SQLiteRepository) PendingExports(ctx context.Context, limit int) ([]PendingExport, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT kind, id FROM (
			SELECT 'revenue' AS kind, id, created_at FROM revenues WHERE exported = 0
			UNION ALL
			SELECT 'expense' AS kind, id, created_at FROM expenses WHERE exported = 0
			UNION ALL
			SELECT 'appointment' AS kind, id, created_at FROM appointments WHERE exported = 0
		) ORDER BY created_at ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query pending exports: %w", err)
	}
	defer rows.Close()

	var out []PendingExport
	for rows.Next() {
		var p PendingExport
		if err := rows.Scan(&p.Kind, &p.ID); err != nil {
			return nil, fmt.Errorf("scan pending export: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// MarkExported flags a record as pushed to the export sink.
func (r *SQLiteRepository) MarkExported(ctx context.Context, kind, id string) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `UPDATE `+table+` SET exported = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark exported: %w", err)
	}

	slog.InfoContext(ctx, "Record marked as exported", "kind", kind, "id", id)
	return nil
}

func tableFor(kind string) (string, error) {
	switch kind {
	case "revenue":
		return "revenues", nil
	case "expense":
		return "expenses", nil
	case "appointment":
		return "appointments", nil
	default:
		return "", fmt.Errorf("unknown record kind %q", kind)
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRevenue(row rowScanner) (core.Revenue, error) {
	var rec core.Revenue
	var date, amount string
	if err := row.Scan(&rec.ID, &date, &rec.Source, &rec.Category, &amount); err != nil {
		return core.Revenue{}, fmt.Errorf("scan revenue: %w", err)
	}
	var err error
	if rec.Date, err = core.ParseDate(date); err != nil {
		return core.Revenue{}, fmt.Errorf("parse revenue date %q: %w", date, err)
	}
	if rec.Amount, err = decimal.NewFromString(amount); err != nil {
		return core.Revenue{}, fmt.Errorf("parse revenue amount %q: %w", amount, err)
	}
	return rec, nil
}

func scanExpense(row rowScanner) (core.Expense, error) {
	var rec core.Expense
	var date, amount string
	if err := row.Scan(&rec.ID, &date, &rec.Item, &rec.Category, &amount); err != nil {
		return core.Expense{}, fmt.Errorf("scan expense: %w", err)
	}
	var err error
	if rec.Date, err = core.ParseDate(date); err != nil {
		return core.Expense{}, fmt.Errorf("parse expense date %q: %w", date, err)
	}
	if rec.Amount, err = decimal.NewFromString(amount); err != nil {
		return core.Expense{}, fmt.Errorf("parse expense amount %q: %w", amount, err)
	}
	return rec, nil
}
