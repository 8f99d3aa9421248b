package models

// Inputs carries the raw exam parameters as collected from the user, before
// any validation.
type Inputs struct {
	// StudentsPath is the path to the student roster CSV.
	StudentsPath string
	// ClassroomsPath is the path to the classroom roster CSV.
	ClassroomsPath string
	// Years holds the selected academic year tokens (e.g. "1", "2").
	Years []string
	// PickedDate is a calendar-picked ISO date ("YYYY-MM-DD"), if any.
	PickedDate string
	// ManualDate is a typed date ("DD/MM/YYYY"), if any. It takes
	// precedence over PickedDate.
	ManualDate string
	// StartTime is the exam start in 24-hour "HH:MM" form.
	StartTime string
	// EndTime is the exam end in 24-hour "HH:MM" form.
	EndTime string
}

// ValidatedParameters is the normalized, precondition-checked bundle ready
// for request assembly.
type ValidatedParameters struct {
	// StudentsPath is the path to the student roster CSV.
	StudentsPath string
	// ClassroomsPath is the path to the classroom roster CSV.
	ClassroomsPath string
	// Years holds the selected academic year tokens.
	Years []string
	// Date is the resolved exam date in "DD/MM/YYYY" form.
	Date string
	// StartTime is the exam start in 24-hour "HH:MM" form.
	StartTime string
	// EndTime is the exam end in 24-hour "HH:MM" form.
	EndTime string
}

// ExamSchedule holds the resolved display strings for the exam date and
// time. It is built once per successful validation and never mutated.
type ExamSchedule struct {
	// Date is the exam date in "DD/MM/YYYY" form.
	Date string
	// DateWithDay is the exam date with its weekday, e.g. "25/12/2023 (Monday)".
	DateWithDay string
	// TimeRange is the 12-hour display range, e.g. "9:00 AM - 12:00 PM".
	TimeRange string
}
