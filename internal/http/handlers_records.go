package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"tally/internal/core"
	"tally/internal/format"
	"tally/internal/i18n"
)

const listTimeout = 7 * time.Second

type (
	revenuePayload struct {
		ID              string          `json:"id"`
		Date            string          `json:"date"`
		Source          string          `json:"source"`
		Category        string          `json:"category"`
		Amount          decimal.Decimal `json:"amount"`
		FormattedAmount string          `json:"formattedAmount"`
		FormattedDate   string          `json:"formattedDate"`
	}

	expensePayload struct {
		ID              string          `json:"id"`
		Date            string          `json:"date"`
		Item            string          `json:"item"`
		Category        string          `json:"category"`
		Amount          decimal.Decimal `json:"amount"`
		FormattedAmount string          `json:"formattedAmount"`
		FormattedDate   string          `json:"formattedDate"`
	}

	appointmentPayload struct {
		ID            string `json:"id"`
		Date          string `json:"date"`
		Time          string `json:"time"`
		Client        string `json:"client"`
		Description   string `json:"description"`
		FormattedDate string `json:"formattedDate"`
		Weekday       string `json:"weekday"`
	}

	createRevenueRequest struct {
		Date     string          `json:"date"`
		Source   string          `json:"source"`
		Category string          `json:"category"`
		Amount   decimal.Decimal `json:"amount"`
	}

	createExpenseRequest struct {
		Date     string          `json:"date"`
		Item     string          `json:"item"`
		Category string          `json:"category"`
		Amount   decimal.Decimal `json:"amount"`
	}

	createAppointmentRequest struct {
		Date        string `json:"date"`
		Time        string `json:"time"`
		Client      string `json:"client"`
		Description string `json:"description"`
	}

	createdResponse struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		Message string `json:"message"`
	}
)

func revenueView(r core.Revenue, lang i18n.Language) revenuePayload {
	return revenuePayload{
		ID:              r.ID,
		Date:            r.Date.String(),
		Source:          r.Source,
		Category:        r.Category,
		Amount:          r.Amount,
		FormattedAmount: format.Currency(r.Amount),
		FormattedDate:   format.Date(r.Date, format.DayMonthYear, lang),
	}
}

func expenseView(e core.Expense, lang i18n.Language) expensePayload {
	return expensePayload{
		ID:              e.ID,
		Date:            e.Date.String(),
		Item:            e.Item,
		Category:        e.Category,
		Amount:          e.Amount,
		FormattedAmount: format.Currency(e.Amount),
		FormattedDate:   format.Date(e.Date, format.DayMonthYear, lang),
	}
}

func appointmentView(a core.Appointment, lang i18n.Language) appointmentPayload {
	return appointmentPayload{
		ID:            a.ID,
		Date:          a.Date.String(),
		Time:          a.Time,
		Client:        a.Client,
		Description:   a.Description,
		FormattedDate: format.Date(a.Date, format.ShortMonthDay, lang),
		Weekday:       format.WeekdayName(a.Date.Weekday(), lang),
	}
}

func (s *Server) handleListRevenues(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()

	records, err := s.store.Revenues(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "List revenues failed", "error", err)
		writeError(w, http.StatusInternalServerError, lang, "internal_error", i18n.KeyRevenueHistory)
		return
	}

	out := make([]revenuePayload, 0, len(records))
	for _, rec := range records {
		out = append(out, revenueView(rec, lang))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateRevenue(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	var req createRevenueRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, lang, "bad_request", i18n.KeyInvalidRequestBody)
		return
	}

	date, err := core.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, lang, "validation_failed", i18n.KeyDateRequired)
		return
	}

	rec := core.Revenue{
		Date:     date,
		Source:   req.Source,
		Category: req.Category,
		Amount:   req.Amount,
	}

	id, err := s.svc.CreateRevenue(r.Context(), rec)
	if err != nil {
		if key, ok := validationKey(err); ok {
			writeError(w, http.StatusUnprocessableEntity, lang, "validation_failed", key)
			return
		}
		slog.ErrorContext(r.Context(), "Create revenue failed", "error", err)
		writeError(w, http.StatusInternalServerError, lang, "internal_error", i18n.KeyRevenue)
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{
		ID:    id,
		Title: i18n.T(lang, i18n.KeyRevenueAdded),
		Message: i18n.T(lang, i18n.KeyRevenueAddedDesc, i18n.Params{
			"amount": format.Currency(rec.Amount),
			"source": rec.Source,
		}),
	})
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()

	records, err := s.store.Expenses(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "List expenses failed", "error", err)
		writeError(w, http.StatusInternalServerError, lang, "internal_error", i18n.KeyExpenseHistory)
		return
	}

	out := make([]expensePayload, 0, len(records))
	for _, rec := range records {
		out = append(out, expenseView(rec, lang))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	var req createExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, lang, "bad_request", i18n.KeyInvalidRequestBody)
		return
	}

	date, err := core.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, lang, "validation_failed", i18n.KeyDateRequired)
		return
	}

	rec := core.Expense{
		Date:     date,
		Item:     req.Item,
		Category: req.Category,
		Amount:   req.Amount,
	}

	id, err := s.svc.CreateExpense(r.Context(), rec)
	if err != nil {
		if key, ok := validationKey(err); ok {
			writeError(w, http.StatusUnprocessableEntity, lang, "validation_failed", key)
			return
		}
		slog.ErrorContext(r.Context(), "Create expense failed", "error", err)
		writeError(w, http.StatusInternalServerError, lang, "internal_error", i18n.KeyExpenses)
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{
		ID:    id,
		Title: i18n.T(lang, i18n.KeyExpenseAdded),
		Message: i18n.T(lang, i18n.KeyExpenseAddedDesc, i18n.Params{
			"amount": format.Currency(rec.Amount),
			"item":   rec.Item,
		}),
	})
}

func (s *Server) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()

	records, err := s.store.Appointments(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "List appointments failed", "error", err)
		writeError(w, http.StatusInternalServerError, lang, "internal_error", i18n.KeyCalendar)
		return
	}

	out := make([]appointmentPayload, 0, len(records))
	for _, rec := range records {
		out = append(out, appointmentView(rec, lang))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateAppointment(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	var req createAppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, lang, "bad_request", i18n.KeyInvalidRequestBody)
		return
	}

	date, err := core.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, lang, "validation_failed", i18n.KeyDateRequired)
		return
	}

	rec := core.Appointment{
		Date:        date,
		Time:        req.Time,
		Client:      req.Client,
		Description: req.Description,
	}

	id, err := s.svc.CreateAppointment(r.Context(), rec)
	if err != nil {
		if key, ok := validationKey(err); ok {
			writeError(w, http.StatusUnprocessableEntity, lang, "validation_failed", key)
			return
		}
		slog.ErrorContext(r.Context(), "Create appointment failed", "error", err)
		writeError(w, http.StatusInternalServerError, lang, "internal_error", i18n.KeyCalendar)
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{
		ID:    id,
		Title: i18n.T(lang, i18n.KeyAppointmentScheduled),
		Message: i18n.T(lang, i18n.KeyAppointmentScheduledDesc, i18n.Params{
			"client": rec.Client,
			"date":   format.Date(rec.Date, format.DayMonthYear, lang),
			"time":   rec.Time,
		}),
	})
}

func (s *Server) handleAppointmentsForDay(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	day, err := core.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, lang, "bad_request", i18n.KeySelectDateOnCalendar)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()

	records, err := s.store.AppointmentsForDay(ctx, day)
	if err != nil {
		slog.ErrorContext(ctx, "List appointments for day failed", "error", err, "date", day.String())
		writeError(w, http.StatusInternalServerError, lang, "internal_error", i18n.KeyCalendar)
		return
	}

	out := make([]appointmentPayload, 0, len(records))
	for _, rec := range records {
		out = append(out, appointmentView(rec, lang))
	}

	writeJSON(w, http.StatusOK, struct {
		Date         string               `json:"date"`
		Appointments []appointmentPayload `json:"appointments"`
		Empty        string               `json:"emptyMessage,omitempty"`
	}{
		Date:         day.String(),
		Appointments: out,
		Empty:        emptyMessage(len(out), lang),
	})
}

func emptyMessage(count int, lang i18n.Language) string {
	if count > 0 {
		return ""
	}
	return i18n.T(lang, i18n.KeyNoAppointmentsForDate)
}
