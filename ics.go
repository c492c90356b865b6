package cardwise

import (
	"fmt"
	"io"
	"strings"
)

// DefaultICSFilename is the suggested name for an exported calendar file.
const DefaultICSFilename = "cardwise-reminders.ics"

// EncodeICS writes the events as an iCalendar document. Each event becomes
// one VEVENT block carrying a stable unique identifier, the summary and
// description (escaped), an all-day DTSTART in compact YYYYMMDD form, and a
// same-moment display alarm.
func EncodeICS(w io.Writer, events []Event) error {
	lines := []string{
		"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:-//CardWise//EN",
		"CALSCALE:GREGORIAN", "METHOD:PUBLISH", "X-WR-CALNAME:CardWise Reminders",
	}
	for _, evt := range events {
		uid := fmt.Sprintf("cardwise-%s@cardwise", evt.ID)
		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:"+uid,
			"DTSTART;VALUE=DATE:"+evt.Day.Compact(),
			"SUMMARY:"+escapeText(evt.Title),
			"DESCRIPTION:"+escapeText(evt.Description),
		)
		if evt.Alarm {
			lines = append(lines,
				"BEGIN:VALARM", "TRIGGER:-PT0M", "ACTION:DISPLAY",
				"DESCRIPTION:"+escapeText(evt.Title),
				"END:VALARM",
			)
		}
		lines = append(lines, "END:VEVENT")
	}
	lines = append(lines, "END:VCALENDAR")

	_, err := io.WriteString(w, strings.Join(lines, "\r\n"))
	return err
}

// textEscaper substitutes the characters reserved in calendar text values.
// Single pass, so an already-escaped backslash is not re-processed.
var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\n", `\n`,
)

// textUnescaper is the exact inverse of textEscaper. The two-character pair
// `\\` is listed first so it wins over `\;`, `\,` and `\n` at the same
// position.
var textUnescaper = strings.NewReplacer(
	`\\`, `\`,
	`\;`, ";",
	`\,`, ",",
	`\n`, "\n",
)

func escapeText(s string) string   { return textEscaper.Replace(s) }
func unescapeText(s string) string { return textUnescaper.Replace(s) }
