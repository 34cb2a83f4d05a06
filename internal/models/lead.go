package models

import "time"

// Qualification is a lead's readiness tier.
type Qualification string

const (
	QualificationHot  Qualification = "hot"
	QualificationWarm Qualification = "warm"
	QualificationCold Qualification = "cold"
)

// LeadQualification carries the tier plus how sure the rules were and why.
// It is derived from the Entity and never persisted on its own.
type LeadQualification struct {
	Level      Qualification `json:"level"`
	Confidence float64       `json:"confidence"`
	Reason     string        `json:"reason"`
}

// Lead is the sales pipeline record persisted by the revenue brain.
type Lead struct {
	ID             string    `json:"id,omitempty"`
	RequestID      string    `json:"requestId"`
	Name           string    `json:"name,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	PropertyType   string    `json:"propertyType,omitempty"`
	Qualification  string    `json:"qualification"`
	Confidence     float64   `json:"confidence"`
	EstimatedValue float64   `json:"estimatedValue,omitempty"`
	AssignedTo     string    `json:"assignedTo,omitempty"`
	CRMLeadID      string    `json:"crmLeadId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
