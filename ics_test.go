package cardwise

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/cardwise/date"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a;b", `a\;b`},
		{"a,b", `a\,b`},
		{"a\nb", `a\nb`},
		{`a\b`, `a\\b`},
		{"sem;com,back\\line\n", `sem\;com\,back\\line\n`},
	}
	for _, tc := range tests {
		if got := escapeText(tc.in); got != tc.want {
			t.Errorf("escapeText(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if got := unescapeText(tc.want); got != tc.in {
			t.Errorf("unescapeText(%q) = %q, want %q", tc.want, got, tc.in)
		}
	}
}

func TestEncodeICS(t *testing.T) {
	events := []Event{
		{
			ID:          "ag-uber-day",
			Title:       "🚨 LAST DAY: Use American Express Gold Card $120 Uber Cash",
			Description: "$120 Uber Cash worth $120. $10/month Uber Cash",
			Day:         date.New(2026, time.March, 31),
			Alarm:       true,
		},
		{
			ID:    "vx-travel-credit-week",
			Title: "🔔 Use Capital One Venture X $300 Annual Travel Credit (expires Dec 31, 2026)",
			Day:   date.New(2026, time.December, 24),
		},
	}

	var sb strings.Builder
	if err := EncodeICS(&sb, events); err != nil {
		t.Fatal(err)
	}
	got := sb.String()

	if !strings.HasPrefix(got, "BEGIN:VCALENDAR\r\n") {
		t.Error("document must open with BEGIN:VCALENDAR")
	}
	if !strings.HasSuffix(got, "\r\nEND:VCALENDAR") {
		t.Error("document must close with END:VCALENDAR")
	}
	for _, want := range []string{
		"PRODID:-//CardWise//EN",
		"X-WR-CALNAME:CardWise Reminders",
		"UID:cardwise-ag-uber-day@cardwise",
		"UID:cardwise-vx-travel-credit-week@cardwise",
		"DTSTART;VALUE=DATE:20260331",
		"DTSTART;VALUE=DATE:20261224",
		"TRIGGER:-PT0M",
		"ACTION:DISPLAY",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if got := strings.Count(got, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("found %d VEVENT blocks, want 2", got)
	}
	// Only the first event asked for an alarm.
	if got := strings.Count(got, "BEGIN:VALARM"); got != 1 {
		t.Errorf("found %d VALARM blocks, want 1", got)
	}
	// CRLF line endings throughout, no bare newlines.
	if strings.Contains(strings.ReplaceAll(got, "\r\n", ""), "\n") {
		t.Error("document contains a bare newline")
	}
}

func TestEncodeICSEscapesText(t *testing.T) {
	events := []Event{{
		ID:          "x",
		Title:       "Use it; now, or never",
		Description: "line one\nline two",
		Day:         date.New(2026, time.January, 31),
	}}
	var sb strings.Builder
	if err := EncodeICS(&sb, events); err != nil {
		t.Fatal(err)
	}
	got := sb.String()
	if !strings.Contains(got, `SUMMARY:Use it\; now\, or never`) {
		t.Errorf("summary not escaped:\n%s", got)
	}
	if !strings.Contains(got, `DESCRIPTION:line one\nline two`) {
		t.Errorf("description not escaped:\n%s", got)
	}
}
