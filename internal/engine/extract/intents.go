package extract

import "command-engine/internal/models"

// intentRule binds a keyword set to an intent. The table is ordered; the
// first rule with a match determines the intent. cancel_appointment sits
// before schedule_appointment so "cancel my appointment" is not captured by
// the scheduling keywords.
type intentRule struct {
	intent   models.Intent
	keywords []string
}

var intentRules = []intentRule{
	{
		intent: models.IntentServiceRequest,
		keywords: []string{
			"not working", "stopped working", "won't turn on", "wont turn on",
			"broken", "broke down", "no heat", "no cooling", "not cooling",
			"not heating", "leaking", "making noise", "blowing warm",
			"repair", "fix my", "needs fixing", "emergency", "technician",
		},
	},
	{
		intent: models.IntentQuoteRequest,
		keywords: []string{
			"quote", "estimate", "how much", "price", "pricing", "cost",
			"new system", "new unit", "replacement", "replace my", "install",
		},
	},
	{
		intent: models.IntentBillingInquiry,
		keywords: []string{
			"bill", "invoice", "charge", "charged", "payment", "refund",
			"balance", "statement",
		},
	},
	{
		intent:   models.IntentCancelAppointment,
		keywords: []string{"cancel"},
	},
	{
		intent: models.IntentScheduleAppt,
		keywords: []string{
			"schedule", "reschedule", "book", "appointment", "come out",
			"availability", "available",
		},
	},
	{
		intent: models.IntentHiringInquiry,
		keywords: []string{
			"hiring", "job opening", "career", "apply for", "position",
			"resume", "looking for work",
		},
	},
	{
		intent: models.IntentPayrollInquiry,
		keywords: []string{
			"payroll", "paycheck", "pay stub", "paystub", "w-2", "w2",
			"direct deposit", "hours worked",
		},
	},
}

// classifyIntent returns the first matching intent, the keyword that matched,
// and how many categories had any match at all (the ambiguity count).
func classifyIntent(text string) (models.Intent, string, int) {
	matched := models.IntentUnknown
	matchedKeyword := ""
	categories := 0

	for _, rule := range intentRules {
		kw := firstMatch(text, rule.keywords)
		if kw == "" {
			continue
		}
		categories++
		if matched == models.IntentUnknown {
			matched = rule.intent
			matchedKeyword = kw
		}
	}

	return matched, matchedKeyword, categories
}
