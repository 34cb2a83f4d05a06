package models

import "time"

// Delivery channels for follow-up actions.
const (
	FollowUpChannelSMS      = "sms"
	FollowUpChannelEmail    = "email"
	FollowUpChannelCall     = "call"
	FollowUpChannelInternal = "internal"
)

// Action types produced by the follow-up generators.
const (
	ActionThankYou          = "thank_you"
	ActionReminder          = "reminder"
	ActionCallTask          = "call_task"
	ActionEducation         = "education"
	ActionTestimonial       = "testimonial"
	ActionFinancingReminder = "financing_reminder"
	ActionCheckIn           = "check_in"
	ActionSeasonalPromo     = "seasonal_promo"
	ActionRebateAlert       = "rebate_alert"
	ActionCallback          = "callback"
	ActionFollowUpReminder  = "follow_up_reminder"
	ActionInitialContact    = "initial_contact"
)

// FollowUpAction describes future work for a delivery collaborator. The
// engine only generates these; it never sends anything itself.
type FollowUpAction struct {
	ActionType      string                 `json:"actionType"`
	ScheduledAt     time.Time              `json:"scheduledAt"`
	MessageTemplate string                 `json:"messageTemplate"`
	Channel         string                 `json:"channel"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
}
