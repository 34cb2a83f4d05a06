package extract

import "command-engine/internal/models"

// urgencyRule binds a keyword set to an urgency tier. Rules are evaluated in
// slice order and the first match wins, so emergency phrasing can never be
// shadowed by a weaker tier.
type urgencyRule struct {
	level    models.Urgency
	keywords []string
}

var urgencyRules = []urgencyRule{
	{
		level: models.UrgencyEmergency,
		keywords: []string{
			"gas leak", "smell gas", "carbon monoxide", "co alarm", "co detector",
			"no heat", "burning smell", "smoke", "sparks",
			"flooding", "flooded", "water damage", "water everywhere",
		},
	},
	{
		level: models.UrgencyHigh,
		keywords: []string{
			"same day", "same-day", "today", "right away", "asap",
			"as soon as possible", "urgent", "elderly", "newborn", "infant",
			"medical condition",
		},
	},
	{
		level: models.UrgencyMedium,
		keywords: []string{
			"repair", "fix", "not working", "stopped working", "broken",
			"making noise", "leaking", "maintenance", "tune-up", "tune up",
		},
	},
}

// classifyUrgency walks the tier ladder over lowercased text. Anything that
// matches no rule is the residual low tier.
func classifyUrgency(text string) (models.Urgency, string) {
	for _, rule := range urgencyRules {
		if kw := firstMatch(text, rule.keywords); kw != "" {
			return rule.level, kw
		}
	}
	return models.UrgencyLow, ""
}
