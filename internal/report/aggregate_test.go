package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tally/internal/core"
)

func rev(date string, source, category string, amount int64) core.Revenue {
	d, err := core.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return core.Revenue{
		ID:       core.NewID(),
		Date:     d,
		Source:   source,
		Category: category,
		Amount:   decimal.NewFromInt(amount),
	}
}

func appt(date string, client string) core.Appointment {
	d, err := core.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return core.Appointment{
		ID:          core.NewID(),
		Date:        d,
		Time:        "10:00 AM",
		Client:      client,
		Description: "Planning session",
	}
}

func TestGroupAndSum(t *testing.T) {
	records := []core.Revenue{
		rev("2024-05-01", "Client A", "Web Development", 2500),
		rev("2024-06-10", "Client C", "Web Development", 3200),
	}
	buckets := GroupAndSum(records, func(r core.Revenue) string { return r.Category })
	if len(buckets) != 1 {
		t.Fatalf("got %d buckets, want 1", len(buckets))
	}
	if buckets[0].Key != "Web Development" || !buckets[0].Total.Equal(decimal.NewFromInt(5700)) {
		t.Fatalf("unexpected bucket: %+v", buckets[0])
	}
}

func TestGroupAndSumFirstSeenOrder(t *testing.T) {
	records := []core.Revenue{
		rev("2024-05-01", "Client A", "Web Development", 2500),
		rev("2024-05-03", "Client B", "Consulting", 1500),
		rev("2024-06-15", "Client A", "Maintenance", 500),
		rev("2024-06-10", "Client C", "Web Development", 3200),
	}
	buckets := GroupAndSum(records, func(r core.Revenue) string { return r.Category })
	want := []string{"Web Development", "Consulting", "Maintenance"}
	if len(buckets) != len(want) {
		t.Fatalf("got %d buckets, want %d", len(buckets), len(want))
	}
	for i, key := range want {
		if buckets[i].Key != key {
			t.Fatalf("bucket %d = %q, want %q", i, buckets[i].Key, key)
		}
	}
}

func TestGroupAndSumTotalConservation(t *testing.T) {
	records := []core.Revenue{
		rev("2024-05-01", "Client A", "Web Development", 2500),
		rev("2024-05-03", "Client B", "Consulting", 1500),
		rev("2024-06-10", "Client C", "Web Development", 3200),
		rev("2024-07-22", "Client D", "Design", 1800),
	}
	buckets := GroupAndSum(records, func(r core.Revenue) string { return r.Source })

	bucketSum := decimal.Zero
	for _, b := range buckets {
		bucketSum = bucketSum.Add(b.Total)
	}
	if !bucketSum.Equal(SumAmounts(records)) {
		t.Fatalf("bucket totals %s != record sum %s", bucketSum, SumAmounts(records))
	}
}

func TestGroupAndSumEmpty(t *testing.T) {
	buckets := GroupAndSum(nil, func(r core.Revenue) string { return r.Category })
	if len(buckets) != 0 {
		t.Fatalf("got %d buckets, want 0", len(buckets))
	}
}

func TestTopN(t *testing.T) {
	records := []core.Revenue{
		rev("2024-05-01", "Client A", "Web Development", 2500),
		rev("2024-05-03", "Client B", "Consulting", 1500),
		rev("2024-06-10", "Client C", "Web Development", 3200),
		rev("2024-06-15", "Client A", "Maintenance", 500),
		rev("2024-07-22", "Client D", "Design", 1800),
		rev("2024-07-25", "Client B", "Consulting", 1700),
	}
	top := TopN(records, func(r core.Revenue) string { return r.Source }, 5)

	if len(top) > 5 {
		t.Fatalf("got %d buckets, want at most 5", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].Total.GreaterThan(top[i-1].Total) {
			t.Fatalf("not sorted descending at %d: %+v", i, top)
		}
	}
	// Client C (3200) > B (3200)? B = 1500+1700 = 3200 → tie with C; C first seen later.
	if top[0].Key != "Client B" && top[0].Key != "Client C" {
		t.Fatalf("unexpected leader: %+v", top[0])
	}
}

func TestTopNStableTies(t *testing.T) {
	records := []core.Revenue{
		rev("2024-05-01", "Client A", "Design", 100),
		rev("2024-05-02", "Client B", "Design", 100),
		rev("2024-05-03", "Client C", "Design", 100),
	}
	top := TopN(records, func(r core.Revenue) string { return r.Source }, 3)
	want := []string{"Client A", "Client B", "Client C"}
	for i, key := range want {
		if top[i].Key != key {
			t.Fatalf("tie order broken at %d: got %q, want %q", i, top[i].Key, key)
		}
	}
}

func TestTopNTruncates(t *testing.T) {
	records := []core.Revenue{
		rev("2024-05-01", "Client A", "Design", 400),
		rev("2024-05-02", "Client B", "Design", 300),
		rev("2024-05-03", "Client C", "Design", 200),
		rev("2024-05-04", "Client D", "Design", 100),
	}
	top := TopN(records, func(r core.Revenue) string { return r.Source }, 2)
	if len(top) != 2 || top[0].Key != "Client A" || top[1].Key != "Client B" {
		t.Fatalf("unexpected topN: %+v", top)
	}
}

func TestMonthlyTotalsAlwaysTwelveBuckets(t *testing.T) {
	buckets := MonthlyTotals([]core.Revenue(nil))
	if len(buckets) != 12 {
		t.Fatalf("got %d buckets, want 12", len(buckets))
	}
	if buckets[0].Key != "Jan" || buckets[11].Key != "Dec" {
		t.Fatalf("unexpected month order: %q .. %q", buckets[0].Key, buckets[11].Key)
	}
	for _, b := range buckets {
		if !b.Total.IsZero() {
			t.Fatalf("empty input should yield zero totals, got %+v", b)
		}
	}
}

func TestMonthlyTotalsFoldsRecords(t *testing.T) {
	records := []core.Revenue{
		rev("2024-05-01", "Client A", "Web Development", 2500),
		rev("2024-05-03", "Client B", "Consulting", 1500),
		rev("2024-06-10", "Client C", "Web Development", 3200),
	}
	buckets := MonthlyTotals(records)
	if !buckets[4].Total.Equal(decimal.NewFromInt(4000)) { // May
		t.Fatalf("May total = %s, want 4000", buckets[4].Total)
	}
	if !buckets[5].Total.Equal(decimal.NewFromInt(3200)) { // June
		t.Fatalf("June total = %s, want 3200", buckets[5].Total)
	}
	if !buckets[0].Total.IsZero() {
		t.Fatalf("January should be zero")
	}
}

func TestMonthlyTotalsFoldAcrossYears(t *testing.T) {
	// Bucketing goes by month name only. Records from different calendar
	// years share a bucket, so old demo data still renders bars.
	records := []core.Revenue{
		rev("2024-05-01", "Client A", "Web Development", 2500),
		rev("2023-05-10", "Client B", "Consulting", 500),
		rev("2026-06-01", "Client C", "Design", 300),
	}
	buckets := MonthlyTotals(records)
	if !buckets[4].Total.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("May total = %s, want 3000", buckets[4].Total)
	}
	if !buckets[5].Total.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("June total = %s, want 300", buckets[5].Total)
	}
}

func TestMonthlySeries(t *testing.T) {
	revenues := []core.Revenue{rev("2024-05-01", "Client A", "Web Development", 2500)}
	expenses := []core.Expense{{
		ID:       core.NewID(),
		Date:     core.NewDate(2024, 5, 2),
		Item:     "Software Subscription",
		Category: "Software",
		Amount:   decimal.NewFromInt(50),
	}}
	points := MonthlySeries(revenues, expenses)
	if len(points) != 12 {
		t.Fatalf("got %d points, want 12", len(points))
	}
	may := points[4]
	if may.Month != "May" || !may.Revenue.Equal(decimal.NewFromInt(2500)) || !may.Expenses.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected May point: %+v", may)
	}
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2024, 7, 1, 15, 30, 0, 0, time.UTC)
	records := []core.Appointment{
		appt("2024-06-30", "Client A"), // past
		appt("2024-07-10", "Client B"),
		appt("2024-07-01", "Client C"), // today, inclusive
		appt("2024-07-05", "Client D"),
	}

	got := Upcoming(records, now, -1)
	want := []string{"Client C", "Client D", "Client B"}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i, client := range want {
		if got[i].Client != client {
			t.Fatalf("position %d = %q, want %q", i, got[i].Client, client)
		}
	}
}

func TestUpcomingWindowAndStability(t *testing.T) {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	records := []core.Appointment{
		appt("2024-07-02", "First"),
		appt("2024-07-02", "Second"), // same day, input order kept
		appt("2024-07-03", "Third"),
	}
	got := Upcoming(records, now, 2)
	if len(got) != 2 || got[0].Client != "First" || got[1].Client != "Second" {
		t.Fatalf("unexpected window: %+v", got)
	}
}

func TestUpcomingNoFutureDates(t *testing.T) {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	records := []core.Appointment{
		appt("2024-06-01", "Client A"),
		appt("2024-06-30", "Client B"),
	}
	if got := Upcoming(records, now, 5); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestUpcomingDoesNotMutateInput(t *testing.T) {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	records := []core.Appointment{
		appt("2024-07-10", "Client B"),
		appt("2024-07-05", "Client A"),
	}
	_ = Upcoming(records, now, 5)
	if records[0].Client != "Client B" || records[1].Client != "Client A" {
		t.Fatalf("input mutated: %+v", records)
	}
}
