// Package store holds the in-memory record collections.
//
// The collection helpers are pure: Append and SortByDate return fresh slices
// and never touch their inputs, matching the new-list-replaces-old update
// style of the callers.
package store

import (
	"sort"

	"tally/internal/core"
	"tally/internal/report"
)

// Append returns a new collection with rec prepended. The input slice is
// left unchanged.
func Append[T any](records []T, rec T) []T {
	out := make([]T, 0, len(records)+1)
	out = append(out, rec)
	out = append(out, records...)
	return out
}

// ForDay filters records to those falling on the given calendar day,
// preserving input order.
func ForDay[T report.Dated](records []T, day core.Date) []T {
	out := make([]T, 0)
	for _, rec := range records {
		if rec.RecordDate().SameDay(day) {
			out = append(out, rec)
		}
	}
	return out
}

// SortByDate returns a copy of records sorted ascending by date. The sort is
// stable so same-day records keep their relative order.
func SortByDate[T report.Dated](records []T) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordDate().Before(out[j].RecordDate().Time)
	})
	return out
}
