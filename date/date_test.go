package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewNormalizes(t *testing.T) {
	// Day 0 is the last day of the previous month.
	got := New(2025, time.March, 0)
	want := New(2025, time.February, 28)
	if got != want {
		t.Errorf("New(2025, March, 0) = %v, want %v", got, want)
	}
	// Leap year.
	got = New(2024, time.March, 0)
	want = New(2024, time.February, 29)
	if got != want {
		t.Errorf("New(2024, March, 0) = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", New(2025, time.January, 15), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEndOf(t *testing.T) {
	testCases := []struct {
		name   string
		in     Date
		period Period
		want   Date
	}{
		{"mid month", New(2025, time.September, 10), Monthly, New(2025, time.September, 30)},
		{"leap february", New(2024, time.February, 5), Monthly, New(2024, time.February, 29)},
		{"first month of quarter", New(2025, time.July, 1), Quarterly, New(2025, time.September, 30)},
		{"last month of quarter", New(2025, time.December, 31), Quarterly, New(2025, time.December, 31)},
		{"year", New(2025, time.June, 15), Yearly, New(2025, time.December, 31)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.EndOf(tc.period); got != tc.want {
				t.Errorf("%v.EndOf(%v) = %v, want %v", tc.in, tc.period, got, tc.want)
			}
		})
	}
}

func TestStartOf(t *testing.T) {
	testCases := []struct {
		name   string
		in     Date
		period Period
		want   Date
	}{
		{"month", New(2025, time.September, 10), Monthly, New(2025, time.September, 1)},
		{"quarter", New(2025, time.August, 20), Quarterly, New(2025, time.July, 1)},
		{"year", New(2025, time.August, 20), Yearly, New(2025, time.January, 1)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.StartOf(tc.period); got != tc.want {
				t.Errorf("%v.StartOf(%v) = %v, want %v", tc.in, tc.period, got, tc.want)
			}
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := New(2025, time.March, 14)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2025-03-14"` {
		t.Errorf("Marshal = %s, want %q", b, `"2025-03-14"`)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestCompact(t *testing.T) {
	if got := New(2026, time.January, 2).Compact(); got != "20260102" {
		t.Errorf("Compact() = %q, want %q", got, "20260102")
	}
}
