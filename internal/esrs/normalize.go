package esrs

import (
	"regexp"
	"strings"
)

var (
	esrsPrefixRe = regexp.MustCompile(`(?i)^ESRS[\s-]+`)
	esrs2Re      = regexp.MustCompile(`(?i)^(ESRS[\s-]*2|2)$`)
)

// NormalizeStandardCode maps the many spellings a standard code arrives
// in onto one canonical form. "ESRS 2", "ESRS-2", "ESRS2" and "2" all
// become "ESRS 2"; for every other code a leading "ESRS " or "ESRS-"
// prefix is stripped, so "ESRS E1" and "esrs-e1" become "E1" (the
// caller decides about case). A code that would normalize to nothing
// falls back to its trimmed input. Idempotent.
func NormalizeStandardCode(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return code
	}

	if esrs2Re.MatchString(trimmed) {
		return "ESRS 2"
	}

	stripped := strings.TrimSpace(esrsPrefixRe.ReplaceAllString(trimmed, ""))
	if stripped == "" {
		return trimmed
	}
	return stripped
}

var (
	esrs2CodeRe    = regexp.MustCompile(`(?i)^ESRS[\s-]*2`)
	topicalCodeRe  = regexp.MustCompile(`(?i)^([A-Z]\d)`)
	otherStandards = "Other"
)

// StandardFromDatapointCode extracts the owning standard from a
// datapoint code such as "E1-1" or "ESRS 2.BP-1". Codes that match
// neither pattern land in the "Other" bucket so grouping never loses
// an entry.
func StandardFromDatapointCode(code string) string {
	trimmed := strings.TrimSpace(code)
	if esrs2CodeRe.MatchString(trimmed) {
		return "ESRS 2"
	}
	if m := topicalCodeRe.FindString(trimmed); m != "" {
		return strings.ToUpper(m)
	}
	return otherStandards
}
