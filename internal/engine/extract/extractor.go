// Package extract turns raw utterance text into a typed intent and entity
// set. Everything in here is a pure function over the input text: no I/O, no
// randomness, and no failure mode beyond returning an unknown intent with a
// low confidence.
package extract

import (
	"strconv"
	"strings"

	"command-engine/internal/models"
)

// Confidence model constants. An input with no intent signal must stay
// strictly below the router's 0.5 human-review gate; a clear keyword plus at
// least one extracted entity must reach 0.6.
const (
	confNoIntent         = 0.30
	confNoIntentEntities = 0.40
	confIntentBase       = 0.50
	confEntityBonus      = 0.10
	confRichEntityBonus  = 0.10
	confUnambiguousBonus = 0.05
	confCeiling          = 0.95
)

// Extract parses one utterance. It never returns an error; adversarial input
// degrades to intent "unknown" with minimal entities.
func Extract(text string) models.ExtractionResult {
	lower := strings.ToLower(text)

	entities := extractEntities(text, lower)
	intent, intentKeyword, categories := classifyIntent(lower)
	confidence := scoreConfidence(intent, categories, entities.FieldCount())

	signals := map[string]string{
		"entityCount":      strconv.Itoa(entities.FieldCount()),
		"intentCategories": strconv.Itoa(categories),
	}
	if intentKeyword != "" {
		signals["intentKeyword"] = intentKeyword
	}
	if _, urgencyKeyword := classifyUrgency(lower); urgencyKeyword != "" {
		signals["urgencyKeyword"] = urgencyKeyword
	}

	return models.ExtractionResult{
		Intent:     intent,
		Entities:   entities,
		Confidence: confidence,
		RawSignals: signals,
	}
}

func extractEntities(text, lower string) models.Entity {
	phone, phoneSpan := extractPhone(text)
	urgency, _ := classifyUrgency(lower)

	return models.Entity{
		Name:               extractName(text, lower),
		Phone:              phone,
		Email:              extractEmail(text),
		Address:            extractAddress(lower),
		Zip:                extractZip(text, phoneSpan),
		ProblemDescription: extractProblemDescription(lower),
		SystemType:         extractSystemType(lower),
		Urgency:            urgency,
		PreferredWindow:    extractFirstPhrase(lower, windowPhrases),
		PreferredDate:      extractFirstPhrase(lower, datePhrases),
		PropertyType:       extractPropertyType(lower),
		SquareFootage:      extractInt(lower, sqftPattern),
		SystemAgeYears:     extractInt(lower, agePattern),
		BudgetRange:        extractBudgetRange(lower),
		Timeline:           extractFirstPhrase(lower, timelinePhrases),
		TemperatureF:       extractTemperature(lower),
	}
}

// extractTemperature only fires when the degree figure co-occurs with
// failure language, so "78 degrees outside" small talk is ignored.
func extractTemperature(lower string) int {
	if !containsAny(lower, problemKeywords) {
		return 0
	}
	return extractInt(lower, tempPattern)
}

func scoreConfidence(intent models.Intent, categories, entityCount int) float64 {
	if intent == models.IntentUnknown {
		if entityCount > 0 {
			return confNoIntentEntities
		}
		return confNoIntent
	}

	confidence := confIntentBase
	if entityCount >= 1 {
		confidence += confEntityBonus
	}
	if entityCount >= 3 {
		confidence += confRichEntityBonus
	}
	if categories == 1 {
		confidence += confUnambiguousBonus
	}
	if confidence > confCeiling {
		confidence = confCeiling
	}
	return confidence
}
