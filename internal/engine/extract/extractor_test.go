// internal/engine/extract/extractor_test.go
package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"command-engine/internal/models"
)

func TestExtract_ServiceRequest(t *testing.T) {
	result := Extract("My AC stopped working, smoke smell, call me at 512-555-1234, I'm in 78701")

	assert.Equal(t, models.IntentServiceRequest, result.Intent)
	assert.Equal(t, models.UrgencyEmergency, result.Entities.Urgency)
	assert.Equal(t, "512-555-1234", result.Entities.Phone)
	assert.Equal(t, "78701", result.Entities.Zip)
	assert.Equal(t, "my ac stopped working", result.Entities.ProblemDescription)
	assert.InDelta(t, 0.75, result.Confidence, 0.001)
	assert.Equal(t, "smoke", result.RawSignals["urgencyKeyword"])
}

func TestExtract_QuoteRequest(t *testing.T) {
	result := Extract("I'd like a quote for a new system for my house, 2000 sq ft, and the furnace is 12 years old")

	assert.Equal(t, models.IntentQuoteRequest, result.Intent)
	assert.Equal(t, "residential", result.Entities.PropertyType)
	assert.Equal(t, 2000, result.Entities.SquareFootage)
	assert.Equal(t, 12, result.Entities.SystemAgeYears)
	assert.Equal(t, "furnace", result.Entities.SystemType)
	assert.GreaterOrEqual(t, result.Confidence, 0.6)
}

func TestExtract_IntentClassification(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		intent models.Intent
	}{
		{"service request", "my heat pump is not working", models.IntentServiceRequest},
		{"quote request", "how much for a replacement unit", models.IntentQuoteRequest},
		{"billing inquiry", "I was charged twice on my last invoice", models.IntentBillingInquiry},
		{"cancel wins over schedule", "I need to cancel my appointment", models.IntentCancelAppointment},
		{"schedule appointment", "can you come out on Tuesday", models.IntentScheduleAppt},
		{"hiring inquiry", "is there a job opening at your company", models.IntentHiringInquiry},
		{"payroll inquiry", "my paycheck looks wrong", models.IntentPayrollInquiry},
		{"no signal", "hello there, nice weather", models.IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Extract(tt.text)
			assert.Equal(t, tt.intent, result.Intent)
		})
	}
}

func TestExtract_ConfidenceBands(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		confidence float64
	}{
		{"no intent, no entities", "hello there", 0.30},
		{"no intent, one entity", "my email is bob@example.com", 0.40},
		{"intent only", "how much does it cost", 0.55},
		{"intent plus entity", "I need an estimate for my condo", 0.65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Extract(tt.text)
			assert.InDelta(t, tt.confidence, result.Confidence, 0.001)
		})
	}
}

func TestExtract_NoIntentStaysBelowGate(t *testing.T) {
	// A command with no intent signal must never clear the 0.5 review gate,
	// no matter how many entities are present.
	result := Extract("bob@example.com 512-555-1234 78701 my house 2000 sq ft")
	assert.Equal(t, models.IntentUnknown, result.Intent)
	assert.Less(t, result.Confidence, 0.5)
}

func TestExtract_PhoneFormats(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		phone string
	}{
		{"dashed", "call 512-555-1234", "512-555-1234"},
		{"dotted", "call 512.555.1234", "512-555-1234"},
		{"spaced", "call 512 555 1234", "512-555-1234"},
		{"parenthesized", "call (512) 555-1234", "512-555-1234"},
		{"bare digits", "call 5125551234", "512-555-1234"},
		{"none", "call me sometime", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Extract(tt.text)
			assert.Equal(t, tt.phone, result.Entities.Phone)
		})
	}
}

func TestExtract_ZipSkipsPhoneDigits(t *testing.T) {
	result := Extract("call me at 512-555-1234")
	assert.Equal(t, "512-555-1234", result.Entities.Phone)
	assert.Empty(t, result.Entities.Zip, "phone digits must not be misread as a ZIP")

	result = Extract("call 512-555-1234, I live in 78701")
	assert.Equal(t, "78701", result.Entities.Zip)
}

func TestExtract_EmailPreservesCase(t *testing.T) {
	result := Extract("reach me at Bob.Jones@Example.com about the quote")
	assert.Equal(t, "Bob.Jones@Example.com", result.Entities.Email)
}

func TestExtract_Name(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"full name", "Hi, my name is John Smith and my furnace is broken", "John Smith"},
		{"this is", "Hello, this is Maria Lopez calling about a quote", "Maria Lopez"},
		{"stopword rejected", "This is urgent, the house is freezing", ""},
		{"no trigger", "John Smith here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Extract(tt.text)
			assert.Equal(t, tt.expected, result.Entities.Name)
		})
	}
}

func TestExtract_UrgencyLadder(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		urgency models.Urgency
	}{
		{"gas leak is emergency", "I think there's a gas leak in the basement", models.UrgencyEmergency},
		{"no heat is emergency", "we have no heat and it's freezing", models.UrgencyEmergency},
		{"same day is high", "I need someone same day", models.UrgencyHigh},
		{"elderly is high", "my elderly mother lives here and the ac broke", models.UrgencyHigh},
		{"repair is medium", "the unit needs a repair", models.UrgencyMedium},
		{"residual low", "thinking about an upgrade eventually", models.UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Extract(tt.text)
			assert.Equal(t, tt.urgency, result.Entities.Urgency)
		})
	}
}

func TestExtract_TemperatureNeedsProblemContext(t *testing.T) {
	withProblem := Extract("it's 85 degrees in here and the ac is not working")
	assert.Equal(t, 85, withProblem.Entities.TemperatureF)

	smallTalk := Extract("it was 78 degrees outside yesterday, lovely")
	assert.Zero(t, smallTalk.Entities.TemperatureF)
}

func TestExtract_SystemAgeVariants(t *testing.T) {
	assert.Equal(t, 12, Extract("the furnace is 12 years old").Entities.SystemAgeYears)
	assert.Equal(t, 9, Extract("a 9-year-old heat pump").Entities.SystemAgeYears)
	assert.Zero(t, Extract("installed 12 years ago").Entities.SystemAgeYears)
}

func TestExtract_BudgetRange(t *testing.T) {
	result := Extract("my budget is around $8,000 to $12,000 for a new system")
	assert.NotEmpty(t, result.Entities.BudgetRange)
	assert.Contains(t, result.Entities.BudgetRange, "8,000")
}

func TestExtract_AdversarialInput(t *testing.T) {
	// Extraction never panics and never errors; garbage degrades to unknown.
	inputs := []string{
		"",
		"   ",
		"!!!###$$$",
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"😀🔥💧 \x00\x01",
	}
	for _, input := range inputs {
		result := Extract(input)
		assert.Equal(t, models.IntentUnknown, result.Intent)
		assert.Less(t, result.Confidence, 0.5)
	}
}

func TestExtract_IsDeterministic(t *testing.T) {
	text := "My AC stopped working, call me at 512-555-1234"
	first := Extract(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Extract(text))
	}
}
