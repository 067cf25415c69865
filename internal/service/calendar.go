package service

import (
	"fmt"
	"time"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/apierror"
)

// MonthKey renders the "YYYY-MM" prefix shared by every day of a month.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ValidateYearMonth rejects a month outside 1..12 or an implausible year
// before either reaches time.Date, which would silently normalize them
// (month 13 becomes January of the next year).
func ValidateYearMonth(year, month int) error {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return apierror.Validation("Mes o año invalido")
	}
	return nil
}

// DaysInMonth returns the number of days of (year, month).
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseYMD validates a strict "YYYY-MM-DD" day string and returns its parts.
// The day-of-month is checked against the month's length.
func ParseYMD(s string) (year, month, day int, ok bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return 0, 0, 0, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, 0, 0, false
	}
	return t.Year(), int(t.Month()), t.Day(), true
}

// ParseFechaES accepts "DD/MM/YYYY" (the format the frontend sends) and
// "YYYY-MM-DD" (what an <input type="date"> produces).
func ParseFechaES(s string) (time.Time, bool) {
	for _, layout := range []string{"02/01/2006", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatFechaES renders a date the way the frontend displays it.
func FormatFechaES(t time.Time) string {
	return t.Format("02/01/2006")
}
