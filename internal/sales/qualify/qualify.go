// Package qualify classifies a lead into hot/warm/cold using an ordered rule
// ladder. The order is load-bearing: the emergency check short-circuits every
// keyword rule, and cold keywords are checked before warm ones because cold
// phrasing is more lexically specific and must not be shadowed.
package qualify

import (
	"fmt"
	"strings"
	"time"

	"command-engine/internal/models"
)

// Response-time goals per qualification tier.
const (
	HotResponseGoal  = 15 * time.Minute
	WarmResponseGoal = 60 * time.Minute
	ColdResponseGoal = 240 * time.Minute
)

var hotKeywords = []string{
	"emergency", "urgent", "asap", "as soon as possible", "today",
	"ready to book", "ready to buy", "ready to move forward",
	"within 72 hours", "right away",
}

var coldKeywords = []string{
	"just looking", "just browsing", "no rush", "not urgent", "15 days",
	"comparing quotes", "shopping around", "next year", "someday",
	"thinking about it",
}

var warmKeywords = []string{
	"this week", "soon", "discomfort", "uncomfortable", "3 to 14 days",
	"few days", "pretty soon", "fairly quickly",
}

// Qualify walks the precedence ladder, first match wins:
//
//  1. emergency urgency            -> HOT  0.95
//  2. hot keyword                  -> HOT  0.85
//  3. cold keyword                 -> COLD 0.80
//  4. warm keyword                 -> WARM 0.75
//  5. high urgency                 -> HOT  0.70
//  6. medium urgency               -> WARM 0.65
//  7. timeline mentions "week"     -> WARM 0.65
//  8. default                      -> WARM 0.60
//
// The default confidence floor of 0.60 sits above the pipeline's 0.5
// human-review gate, so the default path never escalates on confidence
// alone. That is a deliberate business choice: an unqualified lead is
// treated as warm, not as unprocessable.
func Qualify(problemDescription, timeline string, urgency models.Urgency, budgetRange string) models.LeadQualification {
	if urgency == models.UrgencyEmergency {
		return models.LeadQualification{
			Level:      models.QualificationHot,
			Confidence: 0.95,
			Reason:     "emergency urgency",
		}
	}

	combined := strings.ToLower(problemDescription + " " + timeline + " " + budgetRange)

	if kw := firstMatch(combined, hotKeywords); kw != "" {
		return models.LeadQualification{
			Level:      models.QualificationHot,
			Confidence: 0.85,
			Reason:     fmt.Sprintf("hot keyword %q", kw),
		}
	}
	if strings.Contains(combined, "decision maker") && budgetRange != "" {
		return models.LeadQualification{
			Level:      models.QualificationHot,
			Confidence: 0.85,
			Reason:     "decision maker with stated budget",
		}
	}

	if kw := firstMatch(combined, coldKeywords); kw != "" {
		return models.LeadQualification{
			Level:      models.QualificationCold,
			Confidence: 0.80,
			Reason:     fmt.Sprintf("cold keyword %q", kw),
		}
	}

	if kw := firstMatch(combined, warmKeywords); kw != "" {
		return models.LeadQualification{
			Level:      models.QualificationWarm,
			Confidence: 0.75,
			Reason:     fmt.Sprintf("warm keyword %q", kw),
		}
	}

	switch urgency {
	case models.UrgencyHigh:
		return models.LeadQualification{
			Level:      models.QualificationHot,
			Confidence: 0.70,
			Reason:     "high urgency",
		}
	case models.UrgencyMedium:
		return models.LeadQualification{
			Level:      models.QualificationWarm,
			Confidence: 0.65,
			Reason:     "medium urgency",
		}
	}

	if strings.Contains(strings.ToLower(timeline), "week") {
		return models.LeadQualification{
			Level:      models.QualificationWarm,
			Confidence: 0.65,
			Reason:     "timeline mentions a week",
		}
	}

	return models.LeadQualification{
		Level:      models.QualificationWarm,
		Confidence: 0.60,
		Reason:     "no qualifying signal, defaulting to warm",
	}
}

// ResponseTimeGoal returns the response SLA for a tier. Unrecognized values
// fall back to the warm goal.
func ResponseTimeGoal(q models.Qualification) time.Duration {
	switch q {
	case models.QualificationHot:
		return HotResponseGoal
	case models.QualificationCold:
		return ColdResponseGoal
	default:
		return WarmResponseGoal
	}
}

func firstMatch(text string, keywords []string) string {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return kw
		}
	}
	return ""
}
