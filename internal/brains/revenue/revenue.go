// Package revenue handles quote requests end to end: qualify the lead, pick
// its owners, persist it, push it to the CRM, and schedule first contact.
package revenue

import (
	"context"
	"errors"
	"time"

	"command-engine/internal/brains"
	"command-engine/internal/common/logger"
	"command-engine/internal/common/observability"
	"command-engine/internal/common/odoo"
	"command-engine/internal/models"
	"command-engine/internal/sales/followup"
	"command-engine/internal/sales/leadrouting"
	"command-engine/internal/sales/qualify"
)

var (
	errNoContact  = errors.New("no contact information")
	errNoProperty = errors.New("no property type")
)

// LeadStore persists leads. Satisfied by store.LeadRepository.
type LeadStore interface {
	Insert(ctx context.Context, lead *models.Lead) (string, error)
}

// CRMClient pushes leads to the CRM. Satisfied by odoo.Client.
type CRMClient interface {
	CreateLead(ctx context.Context, lead *odoo.Lead) (string, error)
}

// ActionDispatcher sends the due slice of a follow-up sequence. Satisfied by
// delivery.Dispatcher.
type ActionDispatcher interface {
	DispatchDue(ctx context.Context, actions []models.FollowUpAction, e models.Entity, now time.Time) int
}

type Brain struct {
	router     *leadrouting.Router
	scheduler  *followup.Scheduler
	leads      LeadStore
	crm        CRMClient
	dispatcher ActionDispatcher
	obs        *observability.Observability
	logger     logger.Logger
}

func NewBrain(router *leadrouting.Router, scheduler *followup.Scheduler, leads LeadStore, crm CRMClient, dispatcher ActionDispatcher, obs *observability.Observability, log logger.Logger) *Brain {
	return &Brain{
		router:     router,
		scheduler:  scheduler,
		leads:      leads,
		crm:        crm,
		dispatcher: dispatcher,
		obs:        obs,
		logger:     log.WithFields(map[string]interface{}{"brain": "revenue"}),
	}
}

func (b *Brain) Module() models.Module { return models.ModuleRevenue }

func (b *Brain) Validate(cmd *models.Command) error {
	if !cmd.Entities.HasContact() {
		return errNoContact
	}
	if cmd.Entities.PropertyType == "" {
		return errNoProperty
	}
	return nil
}

// Execute runs the lead pipeline. The pure stages (qualification, routing,
// follow-up generation) cannot fail; the persistence stages can, and a
// failure there degrades the result to needs-human rather than losing the
// lead. By then the qualification and assignees are already in the result
// data, so the human picking it up starts from the engine's work.
func (b *Brain) Execute(ctx context.Context, cmd *models.Command) (*brains.Result, error) {
	e := cmd.Entities

	qual := qualify.Qualify(e.ProblemDescription, e.Timeline, e.Urgency, e.BudgetRange)
	assignees, routingReason := b.router.Route(e.PropertyType, e.BudgetRange, 0, qual.Level)
	primary, _ := b.router.PrimaryAssignee(assignees)

	b.logger.Info("lead qualified", map[string]interface{}{
		"requestId":     cmd.RequestID,
		"qualification": string(qual.Level),
		"confidence":    qual.Confidence,
		"assignees":     assignees,
	})

	data := map[string]interface{}{
		"qualification":    string(qual.Level),
		"qualConfidence":   qual.Confidence,
		"qualReason":       qual.Reason,
		"assignees":        assignees,
		"routingReason":    routingReason,
		"responseTimeGoal": qualify.ResponseTimeGoal(qual.Level).String(),
	}

	lead := &models.Lead{
		RequestID:     cmd.RequestID,
		Name:          e.Name,
		Phone:         e.Phone,
		Email:         e.Email,
		PropertyType:  e.PropertyType,
		Qualification: string(qual.Level),
		Confidence:    qual.Confidence,
		AssignedTo:    primary,
		CreatedAt:     cmd.CreatedAt,
	}

	crmID, err := b.crm.CreateLead(ctx, &odoo.Lead{
		Name:           leadTitle(e),
		ContactName:    e.Name,
		Phone:          e.Phone,
		Email:          e.Email,
		Description:    cmd.RawText,
		PropertyType:   e.PropertyType,
		Qualification:  string(qual.Level),
		AssignedTo:     primary,
		Source:         string(cmd.Channel),
		IdempotencyKey: cmd.IdempotencyKey,
	})
	if err != nil {
		b.logger.WithError(err).Error("CRM lead creation failed", map[string]interface{}{
			"requestId": cmd.RequestID,
		})
		return &brains.Result{
			Status:  brains.StatusNeedsHuman,
			Message: "lead qualified but CRM creation failed, manual entry required",
			Data:    data,
		}, nil
	}
	lead.CRMLeadID = crmID
	data["crmLeadId"] = crmID

	leadID, err := b.leads.Insert(ctx, lead)
	if err != nil {
		b.logger.WithError(err).Error("lead persistence failed", map[string]interface{}{
			"requestId": cmd.RequestID,
			"crmLeadId": crmID,
		})
		return &brains.Result{
			Status:  brains.StatusNeedsHuman,
			Message: "lead created in CRM but local persistence failed",
			Data:    data,
		}, nil
	}
	data["leadId"] = leadID

	actions := b.scheduler.NewLeadSequence(cmd.CreatedAt, e, qual.Level)
	sent := b.dispatcher.DispatchDue(ctx, actions, e, time.Now().UTC())
	if b.obs != nil {
		b.obs.RecordFollowUpsGenerated(ctx, len(actions), "new_lead")
	}
	data["followUpActions"] = actions
	data["followUpsSent"] = sent

	return &brains.Result{
		Status:  brains.StatusCompleted,
		Message: "lead created and first contact scheduled",
		Data:    data,
	}, nil
}

// leadTitle builds the CRM display name from whatever identity is present.
func leadTitle(e models.Entity) string {
	switch {
	case e.Name != "":
		return "Quote request - " + e.Name
	case e.Phone != "":
		return "Quote request - " + e.Phone
	case e.Email != "":
		return "Quote request - " + e.Email
	default:
		return "Quote request"
	}
}
