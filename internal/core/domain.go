package core

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type (
	// Date is a calendar day. The wrapped time is always midnight UTC.
	Date struct {
		time.Time
	}

	Revenue struct {
		ID       string
		Date     Date
		Source   string
		Category string
		Amount   decimal.Decimal
	}

	Expense struct {
		ID       string
		Date     Date
		Item     string
		Category string
		Amount   decimal.Decimal
	}

	Appointment struct {
		ID          string
		Date        Date
		Time        string // 12-hour clock, "HH:MM AM/PM"
		Client      string
		Description string
	}
)

var (
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrSourceTooShort      = errors.New("source must be at least 2 characters")
	ErrCategoryTooShort    = errors.New("category must be at least 2 characters")
	ErrItemTooShort        = errors.New("item name must be at least 2 characters")
	ErrClientTooShort      = errors.New("client name is required")
	ErrDescriptionTooShort = errors.New("description must be at least 5 characters")
	ErrInvalidTime         = errors.New("invalid time, expected e.g. 02:00 PM")
)

// timePattern accepts 12-hour clock times like "9:00 AM" or "02:30 pm".
var timePattern = regexp.MustCompile(`(?i)^(0?[1-9]|1[0-2]):[0-5][0-9] (AM|PM)$`)

// NewID returns a fresh unique record identifier.
func NewID() string {
	return uuid.NewString()
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DayOf truncates an instant to its calendar day.
func DayOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses an ISO "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// SameDay reports whether both dates fall on the same calendar day.
func (d Date) SameDay(other Date) bool {
	return d.Year() == other.Year() && d.YearDay() == other.YearDay()
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// RecordDate implements the report view interfaces.
func (r Revenue) RecordDate() Date { return r.Date }

// RecordAmount implements the report view interfaces.
func (r Revenue) RecordAmount() decimal.Decimal { return r.Amount }

func (e Expense) RecordDate() Date              { return e.Date }
func (e Expense) RecordAmount() decimal.Decimal { return e.Amount }

func (a Appointment) RecordDate() Date { return a.Date }

func (r Revenue) Validate() error {
	if err := r.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(r.Source)) < 2 {
		return ErrSourceTooShort
	}
	if len(strings.TrimSpace(r.Category)) < 2 {
		return ErrCategoryTooShort
	}
	if !r.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(e.Item)) < 2 {
		return ErrItemTooShort
	}
	if len(strings.TrimSpace(e.Category)) < 2 {
		return ErrCategoryTooShort
	}
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

func (a Appointment) Validate() error {
	if err := a.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(a.Client)) < 2 {
		return ErrClientTooShort
	}
	if len(strings.TrimSpace(a.Description)) < 5 {
		return ErrDescriptionTooShort
	}
	if !timePattern.MatchString(strings.TrimSpace(a.Time)) {
		return ErrInvalidTime
	}
	return nil
}
