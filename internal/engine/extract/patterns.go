package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Precedence matters here: phone is matched before ZIP so the trailing digits
// of a phone number are never misread as a ZIP code. All matching is done on
// a lowercased copy of the input; email preserves the original casing.
var (
	phonePattern = regexp.MustCompile(`\(?\b(\d{3})\)?[-.\s]?(\d{3})[-.\s]?(\d{4})\b`)
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	zipPattern   = regexp.MustCompile(`\b(\d{5})\b`)

	sqftPattern = regexp.MustCompile(`\b(\d{2,6})\s*(?:sq\.?\s?ft\b|sqft\b|square\s+feet)`)
	agePattern  = regexp.MustCompile(`\b(\d{1,2})[\s-]?years?[\s-]?old\b`)
	tempPattern = regexp.MustCompile(`\b(\d{2,3})\s*degrees\b`)

	namePattern    = regexp.MustCompile(`(?:my name is|name's|this is)\s+([a-z]+(?:\s+[a-z]+)?)`)
	addressPattern = regexp.MustCompile(`\b(\d{1,5}\s+[a-z]+(?:\s+[a-z]+)?\s+(?:st|street|ave|avenue|rd|road|blvd|boulevard|dr|drive|ln|lane|ct|court|way))\b`)
	budgetPattern  = regexp.MustCompile(`(?:budget\s+(?:of|is|around)?\s*|\$)\s*\d[\d,]*(?:\.\d+)?\s*k?(?:\s*(?:-|to)\s*\$?\s*\d[\d,]*(?:\.\d+)?\s*k?)?`)
)

var commercialKeywords = []string{"commercial", "office", "business", "industrial", "warehouse", "retail", "storefront"}

var residentialKeywords = []string{"residential", "home", "house", "apartment", "condo", "townhouse"}

var systemTypeKeywords = []string{"heat pump", "furnace", "air conditioner", "ac unit", "central air", "boiler", "mini split", "thermostat", "water heater", "hvac"}

// problemKeywords indicate failure/service language. The first clause
// containing one becomes the problem description.
var problemKeywords = []string{
	"not working", "stopped working", "won't turn on", "wont turn on", "broken",
	"broke down", "leaking", "leak", "making noise", "no heat", "no cooling",
	"not cooling", "not heating", "smell", "smoke", "frozen", "blowing warm",
	"blowing cold", "repair", "fix", "maintenance", "tune-up", "tune up",
}

var timelinePhrases = []string{
	"within 72 hours", "within a week", "this week", "next week", "this month",
	"next month", "as soon as possible", "asap", "today", "tomorrow",
	"no rush", "just looking", "in a few days", "few weeks", "next year",
}

var windowPhrases = []string{"morning", "afternoon", "evening", "after work", "before noon", "first thing"}

var datePhrases = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday", "tomorrow", "this weekend"}

// extractPhone returns the phone normalized to NNN-NNN-NNNN plus the span of
// the raw match so later numeric patterns can skip it.
func extractPhone(text string) (string, []int) {
	m := phonePattern.FindStringSubmatchIndex(text)
	if m == nil {
		return "", nil
	}
	area := text[m[2]:m[3]]
	mid := text[m[4]:m[5]]
	last := text[m[6]:m[7]]
	return area + "-" + mid + "-" + last, []int{m[0], m[1]}
}

func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

// extractZip scans for a standalone 5-digit token outside the phone span.
func extractZip(text string, phoneSpan []int) string {
	for _, m := range zipPattern.FindAllStringIndex(text, -1) {
		if phoneSpan != nil && m[0] >= phoneSpan[0] && m[1] <= phoneSpan[1] {
			continue
		}
		return text[m[0]:m[1]]
	}
	return ""
}

func extractInt(text string, re *regexp.Regexp) int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0
	}
	return n
}

func extractPropertyType(text string) string {
	if containsAny(text, commercialKeywords) {
		return "commercial"
	}
	if containsAny(text, residentialKeywords) {
		return "residential"
	}
	return ""
}

func extractSystemType(text string) string {
	for _, kw := range systemTypeKeywords {
		if strings.Contains(text, kw) {
			return kw
		}
	}
	return ""
}

// extractProblemDescription returns the first clause containing failure or
// service language, trimmed of filler.
func extractProblemDescription(text string) string {
	clauses := splitClauses(text)
	for _, clause := range clauses {
		if containsAny(clause, problemKeywords) {
			return strings.TrimSpace(clause)
		}
	}
	return ""
}

// nameStopwords reject false captures like "this is urgent".
var nameStopwords = map[string]bool{
	"urgent": true, "ridiculous": true, "about": true, "regarding": true,
	"the": true, "a": true, "an": true, "my": true, "not": true, "just": true,
}

func extractName(original, lower string) string {
	m := namePattern.FindStringSubmatchIndex(lower)
	if m == nil {
		return ""
	}
	captured := strings.TrimSpace(original[m[2]:m[3]])
	first := strings.ToLower(strings.Fields(captured)[0])
	if nameStopwords[first] {
		return ""
	}
	return captured
}

func extractAddress(text string) string {
	return strings.TrimSpace(addressPattern.FindString(text))
}

func extractBudgetRange(text string) string {
	return strings.TrimSpace(budgetPattern.FindString(text))
}

func extractFirstPhrase(text string, phrases []string) string {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return p
		}
	}
	return ""
}

func splitClauses(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '.' || r == ';' || r == '!' || r == '?'
	})
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func firstMatch(text string, keywords []string) string {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return kw
		}
	}
	return ""
}
