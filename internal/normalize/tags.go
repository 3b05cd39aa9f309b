package normalize

import (
	"regexp"
	"strings"
)

// Tag vocabulary.
const (
	TagSenior   = "Senior"
	TagJunior   = "Junior"
	TagMid      = "Mid-Level"
	TagFullTime = "Full-Time"
	TagPartTime = "Part-Time"
	TagContract = "Contract"
	TagRemote   = "Remote"
	TagOnSite   = "On-site"
)

// Seniority infers an experience tier from title keywords.
func Seniority(title string) string {
	low := strings.ToLower(title)
	switch {
	case containsAny(low, "senior", "sr.", "lead"):
		return TagSenior
	case containsAny(low, "junior", "jr.", "entry"):
		return TagJunior
	default:
		return TagMid
	}
}

// EmploymentType infers the contract form from a job_type field, falling
// back to free text. Empty result means no signal.
func EmploymentType(jobType, text string) string {
	blob := strings.ToLower(jobType + " " + text)
	switch {
	case containsAny(blob, "full-time", "full time", "permanent"):
		return TagFullTime
	case containsAny(blob, "part-time", "part time"):
		return TagPartTime
	case containsAny(blob, "contract", "contractor", "freelance"):
		return TagContract
	default:
		return ""
	}
}

// Tags derives the record tag list: seniority tier, employment type when one
// is recognizable, then Remote when the predicate holds.
func Tags(title, description, jobType string, remote bool) []string {
	tags := []string{Seniority(title)}
	if et := EmploymentType(jobType, title+" "+description); et != "" {
		tags = append(tags, et)
	}
	if remote {
		tags = append(tags, TagRemote)
	}
	return tags
}

func containsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// CleanHTML strips markup tags and collapses whitespace. Good enough for
// feed descriptions; real HTML goes through a proper parser upstream.
func CleanHTML(s string) string {
	s = htmlTagRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

// MaxDescription bounds the stored description length.
const MaxDescription = 500

// Ellipsis marks a truncated description.
const Ellipsis = "..."

// Truncate bounds a description at MaxDescription characters plus the
// ellipsis marker.
func Truncate(s string) string {
	r := []rune(s)
	if len(r) <= MaxDescription {
		return s
	}
	return string(r[:MaxDescription]) + Ellipsis
}
