package models

import "time"

// Channel identifies where an inbound request originated.
type Channel string

const (
	ChannelVoice  Channel = "voice"
	ChannelChat   Channel = "chat"
	ChannelSystem Channel = "system"
)

// Intent is the classified purpose of an utterance.
type Intent string

const (
	IntentServiceRequest    Intent = "service_request"
	IntentQuoteRequest      Intent = "quote_request"
	IntentBillingInquiry    Intent = "billing_inquiry"
	IntentCancelAppointment Intent = "cancel_appointment"
	IntentScheduleAppt      Intent = "schedule_appointment"
	IntentHiringInquiry     Intent = "hiring_inquiry"
	IntentPayrollInquiry    Intent = "payroll_inquiry"
	IntentUnknown           Intent = "unknown"
)

// Module identifies the business-logic brain a Command is routed to.
type Module string

const (
	ModuleOps     Module = "ops"
	ModuleCore    Module = "core"
	ModuleRevenue Module = "revenue"
	ModulePeople  Module = "people"
	ModuleUnknown Module = "unknown"
)

// ExtractionResult is the typed output of the extraction stage.
type ExtractionResult struct {
	Intent     Intent            `json:"intent"`
	Entities   Entity            `json:"entities"`
	Confidence float64           `json:"confidence"`
	RawSignals map[string]string `json:"rawSignals,omitempty"`
}

// RoutingResult is derived purely from an ExtractionResult.
//
// MissingFields is empty when RequiresHuman was set for a non-validation
// reason (for example a low-confidence classification).
type RoutingResult struct {
	TargetModule       Module   `json:"targetModule"`
	RequiresHuman      bool     `json:"requiresHuman"`
	MissingFields      []string `json:"missingFields,omitempty"`
	RecommendedMissing []string `json:"recommendedMissing,omitempty"`
	RoutingReason      string   `json:"routingReason"`
}

// Command is the canonical envelope for one inbound request. It is built once
// per request and read-only afterwards.
type Command struct {
	RequestID      string                 `json:"requestId"`
	Channel        Channel                `json:"channel"`
	RawText        string                 `json:"rawText"`
	Intent         Intent                 `json:"intent"`
	TargetModule   Module                 `json:"targetModule"`
	Entities       Entity                 `json:"entities"`
	Confidence     float64                `json:"confidence"`
	RequiresHuman  bool                   `json:"requiresHuman"`
	MissingFields  []string               `json:"missingFields,omitempty"`
	IdempotencyKey string                 `json:"idempotencyKey"`
	CreatedAt      time.Time              `json:"createdAt"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}
