package http

import (
	"context"
	"net/http"
	"sort"

	"github.com/shopspring/decimal"

	"tally/internal/core"
	"tally/internal/format"
	"tally/internal/i18n"
	"tally/internal/report"
)

// topClientsLimit caps the top-clients ranking.
const topClientsLimit = 5

type (
	bucketPayload struct {
		Key            string          `json:"key"`
		Total          decimal.Decimal `json:"total"`
		FormattedTotal string          `json:"formattedTotal"`
	}

	salesGroupResponse struct {
		Title    string          `json:"title"`
		Subtitle string          `json:"subtitle"`
		Buckets  []bucketPayload `json:"buckets"`
	}

	transactionPayload struct {
		Kind            string          `json:"kind"`
		ID              string          `json:"id"`
		Date            string          `json:"date"`
		Label           string          `json:"label"`
		Category        string          `json:"category"`
		Amount          decimal.Decimal `json:"amount"`
		FormattedAmount string          `json:"formattedAmount"`
		FormattedDate   string          `json:"formattedDate"`
	}

	transactionsResponse struct {
		Title        string               `json:"title"`
		Subtitle     string               `json:"subtitle"`
		Transactions []transactionPayload `json:"transactions"`
	}
)

func bucketViews(buckets []report.Bucket) []bucketPayload {
	out := make([]bucketPayload, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, bucketPayload{
			Key:            b.Key,
			Total:          b.Total,
			FormattedTotal: format.Currency(b.Total),
		})
	}
	return out
}

func (s *Server) handleSalesCategories(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	s.cached(w, r, "sales/categories", lang, func(ctx context.Context) (any, error) {
		revenues, err := s.store.Revenues(ctx)
		if err != nil {
			return nil, err
		}

		buckets := report.GroupAndSum(revenues, func(r core.Revenue) string {
			return r.Category
		})

		return salesGroupResponse{
			Title:    i18n.T(lang, i18n.KeyRevenueByCategory),
			Subtitle: i18n.T(lang, i18n.KeyRevenueByCategoryDesc),
			Buckets:  bucketViews(buckets),
		}, nil
	})
}

func (s *Server) handleTopClients(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	s.cached(w, r, "sales/clients", lang, func(ctx context.Context) (any, error) {
		revenues, err := s.store.Revenues(ctx)
		if err != nil {
			return nil, err
		}

		buckets := report.TopN(revenues, func(r core.Revenue) string {
			return r.Source
		}, topClientsLimit)

		return salesGroupResponse{
			Title:    i18n.T(lang, i18n.KeyTopClients),
			Subtitle: i18n.T(lang, i18n.KeyTopClientsDesc),
			Buckets:  bucketViews(buckets),
		}, nil
	})
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	s.cached(w, r, "sales/transactions", lang, func(ctx context.Context) (any, error) {
		revenues, err := s.store.Revenues(ctx)
		if err != nil {
			return nil, err
		}
		expenses, err := s.store.Expenses(ctx)
		if err != nil {
			return nil, err
		}

		items := make([]transactionPayload, 0, len(revenues)+len(expenses))
		for _, rec := range revenues {
			items = append(items, transactionPayload{
				Kind:            "revenue",
				ID:              rec.ID,
				Date:            rec.Date.String(),
				Label:           rec.Source,
				Category:        rec.Category,
				Amount:          rec.Amount,
				FormattedAmount: format.Currency(rec.Amount),
				FormattedDate:   format.Date(rec.Date, format.DayMonthYear, lang),
			})
		}
		for _, rec := range expenses {
			items = append(items, transactionPayload{
				Kind:            "expense",
				ID:              rec.ID,
				Date:            rec.Date.String(),
				Label:           rec.Item,
				Category:        rec.Category,
				Amount:          rec.Amount,
				FormattedAmount: format.Currency(rec.Amount),
				FormattedDate:   format.Date(rec.Date, format.DayMonthYear, lang),
			})
		}

		// Newest first; same-day entries keep list order, revenues ahead
		// of expenses.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Date > items[j].Date
		})

		return transactionsResponse{
			Title:        i18n.T(lang, i18n.KeyTransactionHistory),
			Subtitle:     i18n.T(lang, i18n.KeyTransactionHistoryDesc),
			Transactions: items,
		}, nil
	})
}
