// Package brains defines the business-logic modules commands are dispatched
// to. Each brain owns one module's semantics; the registry owns the mapping
// from a command's target module to its brain.
package brains

import (
	"context"
	"fmt"

	"command-engine/internal/common/logger"
	"command-engine/internal/models"
)

// Status is the terminal state of one brain execution.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusNeedsHuman Status = "needs_human"
	StatusFailed     Status = "failed"
)

// Result is what a brain hands back to the dispatcher. Data carries
// module-specific output (work order ids, lead ids, task references).
type Result struct {
	Status  Status                 `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

// Brain executes commands for one module. Validate rejects commands the brain
// cannot act on; Execute must only return an error for infrastructure
// failures, never for business outcomes (those are a Result).
type Brain interface {
	Module() models.Module
	Validate(cmd *models.Command) error
	Execute(ctx context.Context, cmd *models.Command) (*Result, error)
}

// Registry maps modules to brains.
type Registry struct {
	brains map[models.Module]Brain
	logger logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	return &Registry{
		brains: map[models.Module]Brain{},
		logger: log.WithFields(map[string]interface{}{"component": "brains"}),
	}
}

// Register binds a brain to its module. The last registration for a module
// wins.
func (r *Registry) Register(b Brain) {
	r.brains[b.Module()] = b
}

// Dispatch routes one command to its brain. Commands already flagged for
// human review skip brain execution entirely; the point of the flag is that
// no automated action happens. A command whose module has no brain gets the
// same treatment.
func (r *Registry) Dispatch(ctx context.Context, cmd *models.Command) (*Result, error) {
	if cmd.RequiresHuman {
		r.logger.Info("command escalated to human review", map[string]interface{}{
			"requestId":     cmd.RequestID,
			"targetModule":  string(cmd.TargetModule),
			"missingFields": cmd.MissingFields,
		})
		return &Result{
			Status:  StatusNeedsHuman,
			Message: "command flagged for human review: " + humanReviewReason(cmd),
		}, nil
	}

	brain, ok := r.brains[cmd.TargetModule]
	if !ok {
		r.logger.Warn("no brain registered for module", map[string]interface{}{
			"requestId":    cmd.RequestID,
			"targetModule": string(cmd.TargetModule),
		})
		return &Result{
			Status:  StatusNeedsHuman,
			Message: fmt.Sprintf("no handler for module %q", cmd.TargetModule),
		}, nil
	}

	if err := brain.Validate(cmd); err != nil {
		return &Result{
			Status:  StatusNeedsHuman,
			Message: "validation failed: " + err.Error(),
		}, nil
	}

	return brain.Execute(ctx, cmd)
}

func humanReviewReason(cmd *models.Command) string {
	if len(cmd.MissingFields) > 0 {
		return fmt.Sprintf("missing fields %v", cmd.MissingFields)
	}
	return fmt.Sprintf("low confidence %.2f", cmd.Confidence)
}
