// Package datetime provides pure date and time display helpers.
//
// All functions are referentially transparent and independent of the runtime
// locale and timezone: dates are treated as plain day/month/year integers on
// the proleptic Gregorian calendar.
package datetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDate indicates a malformed or non-existent calendar date.
var ErrInvalidDate = errors.New("invalid date")

// ErrInvalidTime indicates a malformed 24-hour "HH:MM" time.
var ErrInvalidTime = errors.New("invalid time")

// weekdayNames is indexed by Zeller's congruence output (0 = Saturday).
var weekdayNames = [7]string{
	"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
}

// FormatTime12h converts a 24-hour "HH:MM" string to a 12-hour display
// string such as "1:05 PM". Minutes are preserved verbatim.
func FormatTime12h(time24 string) (string, error) {
	hh, mm, ok := strings.Cut(time24, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, time24)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, time24)
	}
	min, err := strconv.Atoi(mm)
	if err != nil || min < 0 || min > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, time24)
	}

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%s %s", hour12, mm, suffix), nil
}

// TimeRange converts a pair of 24-hour "HH:MM" strings to a 12-hour display
// range such as "9:00 AM - 12:00 PM".
func TimeRange(start, end string) (string, error) {
	s, err := FormatTime12h(start)
	if err != nil {
		return "", err
	}
	e, err := FormatTime12h(end)
	if err != nil {
		return "", err
	}
	return s + " - " + e, nil
}

// Weekday returns the full weekday name for a "DD/MM/YYYY" date. It uses
// Zeller's congruence, so the result does not depend on timezone state.
func Weekday(date string) (string, error) {
	day, month, year, err := splitDate(date)
	if err != nil {
		return "", err
	}

	// Zeller's congruence treats January and February as months 13 and 14
	// of the previous year.
	q := day
	m := month
	if m < 3 {
		m += 12
		year--
	}
	k := year % 100
	j := year / 100
	h := (q + 13*(m+1)/5 + k + k/4 + j/4 + 5*j) % 7

	return weekdayNames[h], nil
}

// DisplayDate returns a "DD/MM/YYYY (Weekday)" display string.
func DisplayDate(date string) (string, error) {
	day, err := Weekday(date)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (%s)", date, day), nil
}

// FromISO converts an ISO "YYYY-MM-DD" date to the "DD/MM/YYYY" display
// convention.
func FromISO(date string) (string, error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	out := parts[2] + "/" + parts[1] + "/" + parts[0]
	if _, _, _, err := splitDate(out); err != nil {
		return "", err
	}
	return out, nil
}

// splitDate parses and validates a "DD/MM/YYYY" date into its components.
func splitDate(date string) (day, month, year int, err error) {
	parts := strings.Split(date, "/")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	day, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	year, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if month < 1 || month > 12 || day < 1 || day > daysInMonth(month, year) {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return day, month, year, nil
}

// daysInMonth returns the number of days in a Gregorian month.
func daysInMonth(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 31
	}
}
