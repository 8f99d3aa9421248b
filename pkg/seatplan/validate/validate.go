// Package validate checks exam parameters before a request is issued.
package validate

import (
	"errors"
	"regexp"

	"seatplan/pkg/seatplan/datetime"
	"seatplan/pkg/seatplan/models"
)

// Validation failure reasons, reported by Check in a fixed order.
var (
	// ErrMissingFiles indicates one or both roster files are absent.
	ErrMissingFiles = errors.New("please upload both CSV files")
	// ErrNoYearsSelected indicates no academic year was selected.
	ErrNoYearsSelected = errors.New("please select at least one academic year")
	// ErrInvalidDateFormat indicates a typed date that is not DD/MM/YYYY.
	ErrInvalidDateFormat = errors.New("enter date in DD/MM/YYYY format")
	// ErrMissingDate indicates neither a picked nor a typed date.
	ErrMissingDate = errors.New("please select or enter exam date")
	// ErrMissingTimeRange indicates a missing start or end time.
	ErrMissingTimeRange = errors.New("please select exam start and end time")
	// ErrInvalidTimeOrder indicates an end time at or before the start time.
	ErrInvalidTimeOrder = errors.New("end time must be after start time")
)

// manualDateRe matches the literal DD/MM/YYYY pattern for typed dates.
var manualDateRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Check validates raw inputs and produces the normalized parameter bundle.
// Checks run in a fixed order and stop at the first failure. A typed date
// takes precedence over a calendar-picked one.
func Check(in models.Inputs) (models.ValidatedParameters, error) {
	var out models.ValidatedParameters

	if in.StudentsPath == "" || in.ClassroomsPath == "" {
		return out, ErrMissingFiles
	}
	if len(in.Years) == 0 {
		return out, ErrNoYearsSelected
	}

	switch {
	case in.ManualDate != "":
		if !manualDateRe.MatchString(in.ManualDate) {
			return out, ErrInvalidDateFormat
		}
		out.Date = in.ManualDate
	case in.PickedDate != "":
		date, err := datetime.FromISO(in.PickedDate)
		if err != nil {
			return out, ErrInvalidDateFormat
		}
		out.Date = date
	default:
		return out, ErrMissingDate
	}

	if in.StartTime == "" || in.EndTime == "" {
		return out, ErrMissingTimeRange
	}
	// 24-hour "HH:MM" strings order lexicographically.
	if in.EndTime <= in.StartTime {
		return out, ErrInvalidTimeOrder
	}

	out.StudentsPath = in.StudentsPath
	out.ClassroomsPath = in.ClassroomsPath
	out.Years = in.Years
	out.StartTime = in.StartTime
	out.EndTime = in.EndTime
	return out, nil
}
