// Package ops handles service requests: it turns an inbound problem report
// into a prioritized work order stub for the dispatch board.
package ops

import (
	"context"
	"errors"
	"time"

	"command-engine/internal/brains"
	"command-engine/internal/common/logger"
	"command-engine/internal/models"
	"command-engine/internal/sales/qualify"
)

// Dispatch priorities by urgency tier.
const (
	PriorityP1 = "P1"
	PriorityP2 = "P2"
	PriorityP3 = "P3"
	PriorityP4 = "P4"
)

var (
	errNoContact = errors.New("no contact information")
	errNoProblem = errors.New("no problem description")
)

type Brain struct {
	logger logger.Logger
}

func NewBrain(log logger.Logger) *Brain {
	return &Brain{logger: log.WithFields(map[string]interface{}{"brain": "ops"})}
}

func (b *Brain) Module() models.Module { return models.ModuleOps }

func (b *Brain) Validate(cmd *models.Command) error {
	if !cmd.Entities.HasContact() {
		return errNoContact
	}
	if cmd.Entities.ProblemDescription == "" {
		return errNoProblem
	}
	return nil
}

func (b *Brain) Execute(ctx context.Context, cmd *models.Command) (*brains.Result, error) {
	e := cmd.Entities
	priority := priorityFor(e.Urgency)
	responseBy := cmd.CreatedAt.Add(responseWindow(e.Urgency))

	b.logger.Info("work order staged", map[string]interface{}{
		"requestId": cmd.RequestID,
		"priority":  priority,
		"urgency":   string(e.Urgency),
	})

	data := map[string]interface{}{
		"priority":           priority,
		"urgency":            string(e.Urgency),
		"problemDescription": e.ProblemDescription,
		"responseBy":         responseBy.Format(time.RFC3339),
	}
	if e.SystemType != "" {
		data["systemType"] = e.SystemType
	}
	if e.Zip != "" {
		data["serviceZip"] = e.Zip
	}
	if e.PreferredWindow != "" {
		data["preferredWindow"] = e.PreferredWindow
	}

	return &brains.Result{
		Status:  brains.StatusCompleted,
		Message: "work order staged with priority " + priority,
		Data:    data,
	}, nil
}

func priorityFor(u models.Urgency) string {
	switch u {
	case models.UrgencyEmergency:
		return PriorityP1
	case models.UrgencyHigh:
		return PriorityP2
	case models.UrgencyMedium:
		return PriorityP3
	default:
		return PriorityP4
	}
}

// responseWindow reuses the sales response goals: an emergency gets the hot
// SLA, a routine repair the warm one, everything else the cold one.
func responseWindow(u models.Urgency) time.Duration {
	switch u {
	case models.UrgencyEmergency, models.UrgencyHigh:
		return qualify.HotResponseGoal
	case models.UrgencyMedium:
		return qualify.WarmResponseGoal
	default:
		return qualify.ColdResponseGoal
	}
}
