package datetime

import (
	"errors"
	"testing"
)

func TestFormatTime12h(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"00:00", "12:00 AM"},
		{"01:30", "1:30 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"13:05", "1:05 PM"},
		{"23:59", "11:59 PM"},
	}

	for _, tt := range tests {
		result, err := FormatTime12h(tt.input)
		if err != nil {
			t.Errorf("FormatTime12h(%q) returned error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("FormatTime12h(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestFormatTime12hInvalid(t *testing.T) {
	for _, input := range []string{"", "9:00", "24:00", "12:60", "ab:cd", "12-30"} {
		if _, err := FormatTime12h(input); !errors.Is(err, ErrInvalidTime) {
			t.Errorf("FormatTime12h(%q) error = %v, expected ErrInvalidTime", input, err)
		}
	}
}

func TestTimeRange(t *testing.T) {
	result, err := TimeRange("09:00", "12:00")
	if err != nil {
		t.Fatalf("TimeRange failed: %v", err)
	}
	if result != "9:00 AM - 12:00 PM" {
		t.Errorf("TimeRange = %q, expected %q", result, "9:00 AM - 12:00 PM")
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{"25/12/2023", "Monday"},
		{"01/01/2024", "Monday"},
		{"29/02/2024", "Thursday"},
		{"15/08/1947", "Friday"},
		{"01/03/2025", "Saturday"},
		{"02/03/2025", "Sunday"},
	}

	for _, tt := range tests {
		result, err := Weekday(tt.date)
		if err != nil {
			t.Errorf("Weekday(%q) returned error: %v", tt.date, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("Weekday(%q) = %q, expected %q", tt.date, result, tt.expected)
		}
	}
}

func TestWeekdayInvalid(t *testing.T) {
	for _, date := range []string{"", "2023-12-25", "31/02/2023", "00/01/2023", "01/13/2023", "1/1/2023"} {
		if _, err := Weekday(date); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Weekday(%q) error = %v, expected ErrInvalidDate", date, err)
		}
	}
}

func TestDisplayDate(t *testing.T) {
	result, err := DisplayDate("25/12/2023")
	if err != nil {
		t.Fatalf("DisplayDate failed: %v", err)
	}
	if result != "25/12/2023 (Monday)" {
		t.Errorf("DisplayDate = %q, expected %q", result, "25/12/2023 (Monday)")
	}
}

func TestFromISO(t *testing.T) {
	result, err := FromISO("2024-01-01")
	if err != nil {
		t.Fatalf("FromISO failed: %v", err)
	}
	if result != "01/01/2024" {
		t.Errorf("FromISO = %q, expected %q", result, "01/01/2024")
	}

	for _, input := range []string{"", "01/01/2024", "2024-1-1", "2024-02-30"} {
		if _, err := FromISO(input); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("FromISO(%q) error = %v, expected ErrInvalidDate", input, err)
		}
	}
}
