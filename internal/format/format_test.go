package format

import (
	"testing"

	"github.com/shopspring/decimal"

	"tally/internal/core"
	"tally/internal/i18n"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"whole", decimal.NewFromInt(2500), "$2,500.00"},
		{"small", decimal.NewFromInt(50), "$50.00"},
		{"cents", decimal.RequireFromString("75.5"), "$75.50"},
		{"million", decimal.NewFromInt(1234567), "$1,234,567.00"},
		{"zero", decimal.Zero, "$0.00"},
		{"negative", decimal.NewFromInt(-1800), "-$1,800.00"},
		{"rounding", decimal.RequireFromString("10.005"), "$10.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.want {
				t.Fatalf("Currency(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestCurrencyIgnoresLanguage(t *testing.T) {
	// The amount style is intentionally the same for every display language.
	if Currency(decimal.NewFromInt(100)) != "$100.00" {
		t.Fatalf("unexpected currency format")
	}
}

func TestDatePatterns(t *testing.T) {
	d := core.NewDate(2024, 6, 10) // a Monday

	tests := []struct {
		name    string
		pattern Pattern
		lang    i18n.Language
		want    string
	}{
		{"en day month year", DayMonthYear, i18n.English, "10 Jun, 2024"},
		{"vi day month year", DayMonthYear, i18n.Vietnamese, "10 thg 6, 2024"},
		{"ja day month year", DayMonthYear, i18n.Japanese, "2024年6月10日"},
		{"en month day", MonthDay, i18n.English, "June 10"},
		{"vi month day", MonthDay, i18n.Vietnamese, "10 tháng 6"},
		{"ja month day", MonthDay, i18n.Japanese, "6月10日"},
		{"en short month day", ShortMonthDay, i18n.English, "Jun 10"},
		{"en weekday", Weekday, i18n.English, "Monday"},
		{"vi weekday", Weekday, i18n.Vietnamese, "Thứ Hai"},
		{"ja weekday", Weekday, i18n.Japanese, "月曜日"},
		{"en long", Long, i18n.English, "June 10, 2024"},
		{"ja long", Long, i18n.Japanese, "2024年6月10日"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(d, tt.pattern, tt.lang); got != tt.want {
				t.Fatalf("Date(%s, %s, %s) = %q, want %q", d, tt.pattern, tt.lang, got, tt.want)
			}
		})
	}
}

func TestDateEdgeDays(t *testing.T) {
	// Leap day, year rollover and month boundaries must all render.
	days := []core.Date{
		core.NewDate(2024, 2, 29),
		core.NewDate(2023, 12, 31),
		core.NewDate(2024, 1, 1),
		core.NewDate(2024, 4, 30),
	}
	for _, d := range days {
		for _, lang := range i18n.Languages() {
			for _, p := range []Pattern{DayMonthYear, MonthDay, ShortMonthDay, Weekday, Long} {
				if got := Date(d, p, lang); got == "" {
					t.Fatalf("empty output for %s %s %s", d, p, lang)
				}
			}
		}
	}
}

func TestDateSundayWeekday(t *testing.T) {
	d := core.NewDate(2024, 6, 9) // a Sunday
	if got := Date(d, Weekday, i18n.Vietnamese); got != "Chủ Nhật" {
		t.Fatalf("got %q, want %q", got, "Chủ Nhật")
	}
}

func TestDateUnknownLanguageFallsBack(t *testing.T) {
	d := core.NewDate(2024, 6, 10)
	if got := Date(d, ShortMonthDay, i18n.Language("de")); got != "Jun 10" {
		t.Fatalf("got %q, want English fallback", got)
	}
}
