// Package core handles customer account operations: scheduling, cancelling,
// and billing inquiries.
package core

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"command-engine/internal/brains"
	"command-engine/internal/common/logger"
	"command-engine/internal/models"
)

var errNoContact = errors.New("no contact information")

type Brain struct {
	logger logger.Logger
}

func NewBrain(log logger.Logger) *Brain {
	return &Brain{logger: log.WithFields(map[string]interface{}{"brain": "core"})}
}

func (b *Brain) Module() models.Module { return models.ModuleCore }

func (b *Brain) Validate(cmd *models.Command) error {
	if !cmd.Entities.HasContact() {
		return errNoContact
	}
	return nil
}

func (b *Brain) Execute(ctx context.Context, cmd *models.Command) (*brains.Result, error) {
	switch cmd.Intent {
	case models.IntentScheduleAppt:
		return b.schedule(cmd), nil
	case models.IntentCancelAppointment:
		return b.cancel(cmd), nil
	case models.IntentBillingInquiry:
		return b.billing(cmd), nil
	default:
		return &brains.Result{
			Status:  brains.StatusNeedsHuman,
			Message: "unsupported intent for core module: " + string(cmd.Intent),
		}, nil
	}
}

func (b *Brain) schedule(cmd *models.Command) *brains.Result {
	e := cmd.Entities

	// Without a window or date there is nothing to book yet; a human
	// scheduler has to call back and pin one down.
	if e.PreferredWindow == "" && e.PreferredDate == "" {
		return &brains.Result{
			Status:  brains.StatusNeedsHuman,
			Message: "no preferred time given, scheduler callback required",
		}
	}

	bookingID := uuid.New().String()
	b.logger.Info("appointment hold created", map[string]interface{}{
		"requestId": cmd.RequestID,
		"bookingId": bookingID,
	})
	return &brains.Result{
		Status:  brains.StatusCompleted,
		Message: "appointment hold created",
		Data: map[string]interface{}{
			"bookingId":       bookingID,
			"preferredWindow": e.PreferredWindow,
			"preferredDate":   e.PreferredDate,
		},
	}
}

func (b *Brain) cancel(cmd *models.Command) *brains.Result {
	// Cancellation needs a confirmed appointment lookup against the
	// customer's record, which only the office staff can do today.
	return &brains.Result{
		Status:  brains.StatusNeedsHuman,
		Message: "cancellation request queued for office confirmation",
		Data: map[string]interface{}{
			"phone": cmd.Entities.Phone,
			"email": cmd.Entities.Email,
		},
	}
}

func (b *Brain) billing(cmd *models.Command) *brains.Result {
	// Billing answers require the accounting system; the engine only stages
	// the inquiry with enough identity to find the account.
	return &brains.Result{
		Status:  brains.StatusNeedsHuman,
		Message: "billing inquiry queued for accounting",
		Data: map[string]interface{}{
			"phone": cmd.Entities.Phone,
			"email": cmd.Entities.Email,
			"name":  cmd.Entities.Name,
		},
	}
}
