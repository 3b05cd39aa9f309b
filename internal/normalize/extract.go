package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// remoteKeywords is the fixed set the remote predicate checks; matching is a
// plain case-insensitive substring scan, best-effort only.
var remoteKeywords = []string{"remote", "work from home", "wfh", "distributed", "anywhere"}

func IsRemote(title, location, description string) bool {
	blob := strings.ToLower(title + " " + location + " " + description)
	for _, kw := range remoteKeywords {
		if strings.Contains(blob, kw) {
			return true
		}
	}
	return false
}

// SalaryNotSpecified is the sentinel for postings with no salary signal.
const SalaryNotSpecified = "Salary not specified"

// FormatSalary renders structured min/max amounts. Either side may be absent.
func FormatSalary(min, max *int) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("$%s - $%s", groupDigits(*min), groupDigits(*max))
	case min != nil:
		return fmt.Sprintf("$%s+", groupDigits(*min))
	case max != nil:
		return fmt.Sprintf("Up to $%s", groupDigits(*max))
	default:
		return SalaryNotSpecified
	}
}

func groupDigits(n int) string {
	if n < 0 {
		return "-" + groupDigits(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// salaryPatterns are tried in order against free text; the first match is
// returned verbatim. Ranges before single amounts so "$80,000 - $120,000"
// never collapses to "$80,000".
var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\d{2,3},?\d{3}\s*-\s*\$\d{2,3},?\d{3}`),
	regexp.MustCompile(`(?i)\$\d{2,3}k\s*-\s*\$\d{2,3}k`),
	regexp.MustCompile(`\d{2,3},?\d{3}\s*-\s*\d{2,3},?\d{3}`),
	regexp.MustCompile(`\$\d{2,3},?\d{3}`),
}

// SalaryFromText scans a description for a currency pattern.
func SalaryFromText(description string) string {
	for _, re := range salaryPatterns {
		if m := re.FindString(description); m != "" {
			return m
		}
	}
	return SalaryNotSpecified
}

// dateLayouts covers the representations the sources actually emit: ISO
// strings, RSS pubDate (RFC 1123 with and without numeric zone), and a bare
// calendar date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02",
}

// ParseTime parses a source date string. Any parse failure falls back to
// now: availability over accuracy.
func ParseTime(s string, now time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return now
}
