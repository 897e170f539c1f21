// Package format renders amounts and calendar dates for display.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tally/internal/core"
	"tally/internal/i18n"
)

// Pattern names a date rendering style.
type Pattern string

const (
	// DayMonthYear renders like "10 Jun, 2024" (table rows).
	DayMonthYear Pattern = "dayMonthYear"
	// MonthDay renders like "June 10" (calendar header).
	MonthDay Pattern = "monthDay"
	// ShortMonthDay renders like "Jun 10" (upcoming list).
	ShortMonthDay Pattern = "shortMonthDay"
	// Weekday renders the weekday name, like "Monday".
	Weekday Pattern = "weekday"
	// Long renders like "June 10, 2024" (confirmation messages).
	Long Pattern = "long"
)

// Currency renders an amount as "$1,234.56".
//
// The style is fixed regardless of the display language: the original system
// always shows US-dollar formatting even when the rest of the UI is
// localized, and that behavior is kept.
func Currency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	out := "$" + groupThousands(intPart) + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	return strings.Join(parts, ",")
}

// Date renders a calendar date per the named pattern using the month and
// weekday names of the given language. Unknown patterns and languages fall
// back to DayMonthYear and English; the function is total over valid dates.
func Date(d core.Date, pattern Pattern, lang i18n.Language) string {
	if !lang.IsValid() {
		lang = i18n.English
	}
	year, month, day := d.Year(), d.Month(), d.Day()

	switch pattern {
	case MonthDay:
		return monthDay(lang, MonthName(month, lang), day)
	case ShortMonthDay:
		return monthDay(lang, ShortMonthName(month, lang), day)
	case Weekday:
		return WeekdayName(d.Time.Weekday(), lang)
	case Long:
		switch lang {
		case i18n.Japanese:
			return fmt.Sprintf("%d年%d月%d日", year, month, day)
		case i18n.Vietnamese:
			return fmt.Sprintf("%d %s, %d", day, MonthName(month, lang), year)
		default:
			return fmt.Sprintf("%s %d, %d", MonthName(month, lang), day, year)
		}
	default: // DayMonthYear
		switch lang {
		case i18n.Japanese:
			return fmt.Sprintf("%d年%d月%d日", year, month, day)
		case i18n.Vietnamese:
			return fmt.Sprintf("%d %s, %d", day, ShortMonthName(month, lang), year)
		default:
			return fmt.Sprintf("%d %s, %d", day, ShortMonthName(month, lang), year)
		}
	}
}

func monthDay(lang i18n.Language, monthName string, day int) string {
	switch lang {
	case i18n.Japanese:
		return fmt.Sprintf("%s%d日", monthName, day)
	case i18n.Vietnamese:
		return fmt.Sprintf("%d %s", day, monthName)
	default:
		return fmt.Sprintf("%s %d", monthName, day)
	}
}

// MonthName returns the full localized month name.
func MonthName(m time.Month, lang i18n.Language) string {
	switch lang {
	case i18n.Vietnamese:
		return fmt.Sprintf("tháng %d", int(m))
	case i18n.Japanese:
		return fmt.Sprintf("%d月", int(m))
	default:
		return m.String()
	}
}

// ShortMonthName returns the abbreviated localized month name.
func ShortMonthName(m time.Month, lang i18n.Language) string {
	switch lang {
	case i18n.Vietnamese:
		return fmt.Sprintf("thg %d", int(m))
	case i18n.Japanese:
		return fmt.Sprintf("%d月", int(m))
	default:
		return m.String()[:3]
	}
}

var (
	viWeekdays = [7]string{"Chủ Nhật", "Thứ Hai", "Thứ Ba", "Thứ Tư", "Thứ Năm", "Thứ Sáu", "Thứ Bảy"}
	jaWeekdays = [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"}
)

// WeekdayName returns the localized weekday name.
func WeekdayName(w time.Weekday, lang i18n.Language) string {
	switch lang {
	case i18n.Vietnamese:
		return viWeekdays[w]
	case i18n.Japanese:
		return jaWeekdays[w]
	default:
		return w.String()
	}
}
