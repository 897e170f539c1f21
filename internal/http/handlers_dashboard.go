package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"tally/internal/format"
	"tally/internal/i18n"
	"tally/internal/report"
)

type (
	summaryCard struct {
		Label    string `json:"label"`
		Value    string `json:"value"`
		Subtitle string `json:"subtitle"`
	}

	dashboardResponse struct {
		TotalRevenue  summaryCard `json:"totalRevenue"`
		TotalExpenses summaryCard `json:"totalExpenses"`
		Profit        summaryCard `json:"profit"`
		Appointments  summaryCard `json:"appointments"`
	}

	overviewPoint struct {
		Month    string          `json:"month"`
		Revenue  decimal.Decimal `json:"revenue"`
		Expenses decimal.Decimal `json:"expenses"`
	}

	overviewResponse struct {
		Title  string          `json:"title"`
		Legend string          `json:"legend"`
		Points []overviewPoint `json:"points"`
	}

	upcomingResponse struct {
		Title        string               `json:"title"`
		Summary      string               `json:"summary"`
		Appointments []appointmentPayload `json:"appointments"`
	}
)

// upcomingWindow is how many appointments the dashboard card shows.
const upcomingWindow = 5

// cached renders a GET payload through the response cache. The key carries
// the store version, so any write makes previous entries unreachable.
func (s *Server) cached(w http.ResponseWriter, r *http.Request, route string, lang i18n.Language, build func(ctx context.Context) (any, error)) {
	key := report.CacheKey(route, s.store.Version(), string(lang))
	if payload, ok := s.respCache.Get(key); ok {
		writeRawJSON(w, http.StatusOK, payload)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()

	v, err := build(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Summary build failed", "route", route, "error", err)
		writeError(w, http.StatusInternalServerError, lang, "internal_error", i18n.KeyDashboard)
		return
	}

	payload, err := json.Marshal(v)
	if err != nil {
		slog.ErrorContext(ctx, "Summary encode failed", "route", route, "error", err)
		writeError(w, http.StatusInternalServerError, lang, "internal_error", i18n.KeyDashboard)
		return
	}
	payload = append(payload, '\n')

	s.respCache.Set(key, payload)
	writeRawJSON(w, http.StatusOK, payload)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	s.cached(w, r, "dashboard", lang, func(ctx context.Context) (any, error) {
		revenues, err := s.store.Revenues(ctx)
		if err != nil {
			return nil, err
		}
		expenses, err := s.store.Expenses(ctx)
		if err != nil {
			return nil, err
		}
		appointments, err := s.store.Appointments(ctx)
		if err != nil {
			return nil, err
		}

		totalRevenue := report.SumAmounts(revenues)
		totalExpenses := report.SumAmounts(expenses)
		profit := totalRevenue.Sub(totalExpenses)
		upcoming := report.Upcoming(appointments, s.now(), -1)

		return dashboardResponse{
			TotalRevenue: summaryCard{
				Label:    i18n.T(lang, i18n.KeyTotalRevenue),
				Value:    format.Currency(totalRevenue),
				Subtitle: i18n.T(lang, i18n.KeyBasedOnIncome),
			},
			TotalExpenses: summaryCard{
				Label:    i18n.T(lang, i18n.KeyTotalExpenses),
				Value:    format.Currency(totalExpenses),
				Subtitle: i18n.T(lang, i18n.KeyBasedOnExpenses),
			},
			Profit: summaryCard{
				Label:    i18n.T(lang, i18n.KeyProfit),
				Value:    format.Currency(profit),
				Subtitle: i18n.T(lang, i18n.KeyRevenueMinusExpenses),
			},
			Appointments: summaryCard{
				Label: i18n.T(lang, i18n.KeyUpcomingAppointments),
				Value: strconv.Itoa(len(upcoming)),
				Subtitle: i18n.T(lang, i18n.KeyYouHaveXAppointments, i18n.Params{
					"count": len(upcoming),
				}),
			},
		}, nil
	})
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	s.cached(w, r, "overview", lang, func(ctx context.Context) (any, error) {
		revenues, err := s.store.Revenues(ctx)
		if err != nil {
			return nil, err
		}
		expenses, err := s.store.Expenses(ctx)
		if err != nil {
			return nil, err
		}

		// The series is language-independent, so it is memoized once and
		// shared by every localized rendering of the same store version.
		seriesKey := report.CacheKey("overview-series", s.store.Version())
		series := s.summaries.Do(seriesKey, func() any {
			return report.MonthlySeries(revenues, expenses)
		}).([]report.MonthPoint)

		points := make([]overviewPoint, 0, len(series))
		for _, p := range series {
			points = append(points, overviewPoint{
				Month:    p.Month,
				Revenue:  p.Revenue,
				Expenses: p.Expenses,
			})
		}

		return overviewResponse{
			Title:  i18n.T(lang, i18n.KeyFinancialOverview),
			Legend: i18n.T(lang, i18n.KeyMonthlyRevenueVsExpenses),
			Points: points,
		}, nil
	})
}

func (s *Server) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	s.cached(w, r, "upcoming", lang, func(ctx context.Context) (any, error) {
		appointments, err := s.store.Appointments(ctx)
		if err != nil {
			return nil, err
		}

		upcoming := report.Upcoming(appointments, s.now(), upcomingWindow)

		out := make([]appointmentPayload, 0, len(upcoming))
		for _, rec := range upcoming {
			out = append(out, appointmentView(rec, lang))
		}

		summary := i18n.T(lang, i18n.KeyNoAppointments)
		if len(out) > 0 {
			summary = i18n.T(lang, i18n.KeyYouHaveXAppointments, i18n.Params{
				"count": len(out),
			})
		}

		return upcomingResponse{
			Title:        i18n.T(lang, i18n.KeyUpcomingAppointments),
			Summary:      summary,
			Appointments: out,
		}, nil
	})
}
