// Package report turns flat record collections into the grouped summaries
// the views display. All functions are pure: they never mutate their inputs
// and take the reference instant as an argument where one is needed.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"tally/internal/core"
)

type (
	// Dated is the view the upcoming filter needs on a record.
	Dated interface {
		RecordDate() core.Date
	}

	// Valued is the view the aggregator needs on a record.
	Valued interface {
		Dated
		RecordAmount() decimal.Decimal
	}

	// Bucket is one aggregation group: a label and the sum of amounts over
	// records sharing it.
	Bucket struct {
		Key   string
		Total decimal.Decimal
	}

	// MonthPoint is one point of the revenue-vs-expenses overview chart.
	MonthPoint struct {
		Month    string
		Revenue  decimal.Decimal
		Expenses decimal.Decimal
	}
)

// GroupAndSum folds records into buckets keyed by keyFn. Bucket order follows
// the first appearance of each key in the input. Sums are exact decimal
// additions; nothing is rounded here.
func GroupAndSum[T Valued](records []T, keyFn func(T) string) []Bucket {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, rec := range records {
		key := keyFn(rec)
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] = totals[key].Add(rec.RecordAmount())
	}

	buckets := make([]Bucket, 0, len(order))
	for _, key := range order {
		buckets = append(buckets, Bucket{Key: key, Total: totals[key]})
	}
	return buckets
}

// TopN groups records by keyFn, sorts buckets by total descending and keeps
// the first n. The sort is stable, so tied keys keep their first-seen order.
func TopN[T Valued](records []T, keyFn func(T) string, n int) []Bucket {
	buckets := GroupAndSum(records, keyFn)
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Total.GreaterThan(buckets[j].Total)
	})
	if n >= 0 && len(buckets) > n {
		buckets = buckets[:n]
	}
	return buckets
}

// SumAmounts adds up every record's amount.
func SumAmounts[T Valued](records []T) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(rec.RecordAmount())
	}
	return total
}

// MonthlyTotals buckets records by calendar month. All twelve months are
// pre-seeded January through December so sparse data still yields 12 points;
// months without activity carry a zero total. Records fold by month name
// regardless of year, so a May record of any year lands in the May bucket.
// Keys are abbreviated English month names, matching the chart axis labels.
func MonthlyTotals[T Valued](records []T) []Bucket {
	buckets := make([]Bucket, 12)
	for m := time.January; m <= time.December; m++ {
		buckets[m-1] = Bucket{Key: m.String()[:3], Total: decimal.Zero}
	}
	for _, rec := range records {
		i := int(rec.RecordDate().Month()) - 1
		buckets[i].Total = buckets[i].Total.Add(rec.RecordAmount())
	}
	return buckets
}

// MonthlySeries merges revenue and expense monthly totals into the 12 chart
// points of the financial overview.
func MonthlySeries(revenues []core.Revenue, expenses []core.Expense) []MonthPoint {
	rev := MonthlyTotals(revenues)
	exp := MonthlyTotals(expenses)

	points := make([]MonthPoint, 12)
	for i := range points {
		points[i] = MonthPoint{
			Month:    rev[i].Key,
			Revenue:  rev[i].Total,
			Expenses: exp[i].Total,
		}
	}
	return points
}

// Upcoming filters records to those on or after now's calendar day, sorts
// them ascending by date (stable, so same-day records keep input order) and
// truncates to the first window entries. A negative window means no limit.
func Upcoming[T Dated](records []T, now time.Time, window int) []T {
	today := core.DayOf(now)

	out := make([]T, 0, len(records))
	for _, rec := range records {
		d := rec.RecordDate()
		if d.SameDay(today) || d.After(today.Time) {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordDate().Before(out[j].RecordDate().Time)
	})
	if window >= 0 && len(out) > window {
		out = out[:window]
	}
	return out
}
