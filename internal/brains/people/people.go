// Package people handles workforce inquiries: hiring interest and payroll
// questions. Both are staged as internal tasks for the back office.
package people

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
	return &Brain{logger: log.WithFields(map[string]interface{}{"brain": "people"})}
}

func (b *Brain) Module() models.Module { return models.ModulePeople }

func (b *Brain) Validate(cmd *models.Command) error {
	if !cmd.Entities.HasContact() {
		return errNoContact
	}
	return nil
}

func (b *Brain) Execute(ctx context.Context, cmd *models.Command) (*brains.Result, error) {
	taskID := uuid.New().String()

	var queue string
	switch cmd.Intent {
	case models.IntentHiringInquiry:
		queue = "recruiting"
	case models.IntentPayrollInquiry:
		// Payroll questions can reference employee records, so they go to a
		// person every time.
		queue = "payroll"
	default:
		return &brains.Result{
			Status:  brains.StatusNeedsHuman,
			Message: "unsupported intent for people module: " + string(cmd.Intent),
		}, nil
	}

	b.logger.Info("people task staged", map[string]interface{}{
		"requestId": cmd.RequestID,
		"taskId":    taskID,
		"queue":     queue,
	})

	return &brains.Result{
		Status:  brains.StatusCompleted,
		Message: "inquiry staged for " + queue,
		Data: map[string]interface{}{
			"taskId": taskID,
			"queue":  queue,
			"phone":  cmd.Entities.Phone,
			"email":  cmd.Entities.Email,
			"name":   cmd.Entities.Name,
		},
	}, nil
}
