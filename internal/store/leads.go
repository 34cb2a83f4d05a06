package store

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "command-engine/internal/common/errors"
	"command-engine/internal/models"
)

// LeadRepository persists sales leads produced by the revenue brain.
type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Insert stores a lead and returns the generated row id.
func (r *LeadRepository) Insert(ctx context.Context, lead *models.Lead) (string, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO leads (
			request_id, name, phone, email, property_type,
			qualification, confidence, estimated_value, assigned_to,
			crm_lead_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		lead.RequestID, lead.Name, lead.Phone, lead.Email, lead.PropertyType,
		lead.Qualification, lead.Confidence, lead.EstimatedValue, lead.AssignedTo,
		lead.CRMLeadID, lead.CreatedAt,
	)

	var id string
	if err := row.Scan(&id); err != nil {
		return "", apperrors.NewLeadPersistError(fmt.Sprintf("insert lead: %v", err))
	}
	return id, nil
}

// GetByRequestID fetches the lead created for one request, if any.
func (r *LeadRepository) GetByRequestID(ctx context.Context, requestID string) (*models.Lead, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, request_id, name, phone, email, property_type,
		       qualification, confidence, estimated_value, assigned_to,
		       crm_lead_id, created_at
		FROM leads
		WHERE request_id = $1`, requestID)

	var lead models.Lead
	err := row.Scan(
		&lead.ID, &lead.RequestID, &lead.Name, &lead.Phone, &lead.Email,
		&lead.PropertyType, &lead.Qualification, &lead.Confidence,
		&lead.EstimatedValue, &lead.AssignedTo, &lead.CRMLeadID, &lead.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("lead not found for request %s", requestID)
		}
		return nil, fmt.Errorf("query lead: %w", err)
	}
	return &lead, nil
}
