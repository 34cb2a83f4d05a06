package delivery

import (
	"context"
	"time"

	"command-engine/internal/common/logger"
	"command-engine/internal/models"
)

// Dispatcher fans follow-up actions out to channel senders. Only actions due
// at or before now are sent; future-dated actions are left for the scheduler
// collaborator that owns the follow-up queue.
type Dispatcher struct {
	senders map[string]Sender
	logger  logger.Logger
}

func NewDispatcher(log logger.Logger) *Dispatcher {
	return &Dispatcher{
		senders: map[string]Sender{},
		logger:  log.WithFields(map[string]interface{}{"component": "delivery"}),
	}
}

// Register binds a sender to a channel name.
func (d *Dispatcher) Register(channel string, sender Sender) {
	d.senders[channel] = sender
}

// DispatchDue sends every due action and returns how many went out. A failed
// send is logged and skipped; one bad channel must not block the rest of the
// sequence.
func (d *Dispatcher) DispatchDue(ctx context.Context, actions []models.FollowUpAction, e models.Entity, now time.Time) int {
	sent := 0
	for _, action := range actions {
		if action.ScheduledAt.After(now) {
			continue
		}
		sender, ok := d.senders[action.Channel]
		if !ok {
			continue
		}

		recipient := recipientFor(action.Channel, e)
		status, err := sender.Send(ctx, action.Channel, recipient, action.MessageTemplate, action.Metadata)
		if err != nil {
			d.logger.Warn("follow-up send failed", map[string]interface{}{
				"channel":  action.Channel,
				"template": action.MessageTemplate,
				"error":    err.Error(),
			})
			continue
		}
		if status == StatusSent {
			sent++
		}
	}
	return sent
}

func recipientFor(channel string, e models.Entity) string {
	switch channel {
	case models.FollowUpChannelEmail:
		return e.Email
	case models.FollowUpChannelSMS, models.FollowUpChannelCall:
		return e.Phone
	default:
		return ""
	}
}
