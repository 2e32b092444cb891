package services

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/navarrastar/landing-backend/pkg/models"
)

// TimestampLayout is the UTC millisecond timestamp stamped on every lead
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const separator = "━━━━━━━━━━━━━━"

// FormatTimestamp renders t the way leads and health checks report time
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatLeadMessage builds the human readable notification for a lead.
// Missing optional fields are spelled out instead of being dropped. When
// escapeHTML is set, user input is escaped for sinks that parse HTML.
func FormatLeadMessage(lead models.Lead, receivedAt time.Time, escapeHTML bool) string {
	esc := func(s string) string {
		if escapeHTML {
			return html.EscapeString(s)
		}
		return s
	}

	contactIcon, contactLabel := "📞", "Phone"
	localeIcon, localeLabel := "🏙️", "City"
	if lead.Schema == models.SchemaEmail {
		contactIcon, contactLabel = "📧", "Email"
		localeIcon, localeLabel = "🏢", "Company"
	}

	lines := []string{
		"🔔 New Lead!",
		separator,
		fmt.Sprintf("👤 Name: %s", esc(lead.Name)),
		fmt.Sprintf("%s %s: %s", contactIcon, contactLabel, esc(lead.Contact)),
		fmt.Sprintf("%s %s: %s", localeIcon, localeLabel, esc(orDefault(lead.Locale, "Not specified"))),
		fmt.Sprintf("📝 Note: %s", esc(orDefault(lead.Note, "None"))),
		separator,
		fmt.Sprintf("🕐 %s", FormatTimestamp(receivedAt)),
	}
	return strings.Join(lines, "\n")
}

// FormatLeadSubject is the one-line summary used by sinks with a subject line
func FormatLeadSubject(lead models.Lead) string {
	return fmt.Sprintf("New lead: %s (%s)", lead.Name, lead.Contact)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
