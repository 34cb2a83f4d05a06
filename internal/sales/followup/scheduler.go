// Package followup generates deterministic follow-up action lists anchored
// to a base timestamp. Nothing here performs I/O; delivering the generated
// actions is the delivery collaborator's job.
package followup

import (
	"time"

	"command-engine/internal/models"
)

// Config carries the static metadata stamped onto customer-facing messages.
type Config struct {
	FinancingPartner string
	SchedulingLink   string
}

type Scheduler struct {
	cfg *Config
}

func NewScheduler(cfg *Config) *Scheduler {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Scheduler{cfg: cfg}
}

// QuoteSentSequence is generated right after a quote goes out:
// an immediate thank-you on every channel with contact info, a two-day
// reminder on the same channels conditioned on no response, and a two-day
// internal call task.
func (s *Scheduler) QuoteSentSequence(anchor time.Time, e models.Entity) []models.FollowUpAction {
	var actions []models.FollowUpAction

	meta := map[string]interface{}{
		"financingPartner": s.cfg.FinancingPartner,
		"schedulingLink":   s.cfg.SchedulingLink,
	}

	if e.Phone != "" {
		actions = append(actions, models.FollowUpAction{
			ActionType:      models.ActionThankYou,
			ScheduledAt:     anchor,
			MessageTemplate: "quote_thank_you_sms",
			Channel:         models.FollowUpChannelSMS,
			Metadata:        meta,
		})
	}
	if e.Email != "" {
		actions = append(actions, models.FollowUpAction{
			ActionType:      models.ActionThankYou,
			ScheduledAt:     anchor,
			MessageTemplate: "quote_thank_you_email",
			Channel:         models.FollowUpChannelEmail,
			Metadata:        meta,
		})
	}

	reminderAt := anchor.Add(48 * time.Hour)
	reminderMeta := map[string]interface{}{
		"condition":        "no_response",
		"financingPartner": s.cfg.FinancingPartner,
		"schedulingLink":   s.cfg.SchedulingLink,
	}
	if e.Phone != "" {
		actions = append(actions, models.FollowUpAction{
			ActionType:      models.ActionReminder,
			ScheduledAt:     reminderAt,
			MessageTemplate: "quote_reminder_sms",
			Channel:         models.FollowUpChannelSMS,
			Metadata:        reminderMeta,
		})
	}
	if e.Email != "" {
		actions = append(actions, models.FollowUpAction{
			ActionType:      models.ActionReminder,
			ScheduledAt:     reminderAt,
			MessageTemplate: "quote_reminder_email",
			Channel:         models.FollowUpChannelEmail,
			Metadata:        reminderMeta,
		})
	}

	actions = append(actions, models.FollowUpAction{
		ActionType:      models.ActionCallTask,
		ScheduledAt:     reminderAt,
		MessageTemplate: "quote_follow_up_call",
		Channel:         models.FollowUpChannelInternal,
		Metadata:        map[string]interface{}{"priority": "medium"},
	})

	return actions
}

// MaybeSequence nurtures a "maybe" response over a week. It requires an
// email address; without one it generates nothing.
func (s *Scheduler) MaybeSequence(anchor time.Time, e models.Entity) []models.FollowUpAction {
	if e.Email == "" {
		return nil
	}
	meta := map[string]interface{}{"financingPartner": s.cfg.FinancingPartner}
	return []models.FollowUpAction{
		{
			ActionType:      models.ActionEducation,
			ScheduledAt:     anchor.Add(24 * time.Hour),
			MessageTemplate: "maybe_education",
			Channel:         models.FollowUpChannelEmail,
		},
		{
			ActionType:      models.ActionTestimonial,
			ScheduledAt:     anchor.Add(3 * 24 * time.Hour),
			MessageTemplate: "maybe_testimonial",
			Channel:         models.FollowUpChannelEmail,
		},
		{
			ActionType:      models.ActionFinancingReminder,
			ScheduledAt:     anchor.Add(7 * 24 * time.Hour),
			MessageTemplate: "maybe_financing",
			Channel:         models.FollowUpChannelEmail,
			Metadata:        meta,
		},
	}
}

// ReactivationSequence tries to win back a lost deal over three months.
// Email-only, like MaybeSequence.
func (s *Scheduler) ReactivationSequence(anchor time.Time, e models.Entity) []models.FollowUpAction {
	if e.Email == "" {
		return nil
	}
	return []models.FollowUpAction{
		{
			ActionType:      models.ActionCheckIn,
			ScheduledAt:     anchor.Add(30 * 24 * time.Hour),
			MessageTemplate: "reactivation_check_in",
			Channel:         models.FollowUpChannelEmail,
		},
		{
			ActionType:      models.ActionSeasonalPromo,
			ScheduledAt:     anchor.Add(60 * 24 * time.Hour),
			MessageTemplate: "reactivation_seasonal_promo",
			Channel:         models.FollowUpChannelEmail,
		},
		{
			ActionType:      models.ActionRebateAlert,
			ScheduledAt:     anchor.Add(90 * 24 * time.Hour),
			MessageTemplate: "reactivation_rebate_alert",
			Channel:         models.FollowUpChannelEmail,
		},
	}
}

// NewLeadSequence schedules first contact. A hot lead gets a 15-minute
// callback task plus a 4-hour reminder; everything else gets a single
// one-hour initial contact on the best available channel.
func (s *Scheduler) NewLeadSequence(anchor time.Time, e models.Entity, q models.Qualification) []models.FollowUpAction {
	if q == models.QualificationHot {
		return []models.FollowUpAction{
			{
				ActionType:      models.ActionCallback,
				ScheduledAt:     anchor.Add(15 * time.Minute),
				MessageTemplate: "hot_lead_callback",
				Channel:         models.FollowUpChannelInternal,
				Metadata:        map[string]interface{}{"priority": "high"},
			},
			{
				ActionType:      models.ActionFollowUpReminder,
				ScheduledAt:     anchor.Add(4 * time.Hour),
				MessageTemplate: "hot_lead_follow_up",
				Channel:         models.FollowUpChannelInternal,
			},
		}
	}

	return []models.FollowUpAction{
		{
			ActionType:      models.ActionInitialContact,
			ScheduledAt:     anchor.Add(1 * time.Hour),
			MessageTemplate: "new_lead_initial_contact",
			Channel:         bestChannel(e),
		},
	}
}

// bestChannel prefers email over SMS over a call.
func bestChannel(e models.Entity) string {
	switch {
	case e.Email != "":
		return models.FollowUpChannelEmail
	case e.Phone != "":
		return models.FollowUpChannelSMS
	default:
		return models.FollowUpChannelCall
	}
}
