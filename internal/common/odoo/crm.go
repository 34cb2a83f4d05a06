// Package odoo is a thin client for the Odoo CRM REST bridge. The engine
// never talks to it directly; only the revenue brain does, after the lead
// has been qualified and routed.
package odoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "command-engine/internal/common/errors"
)

type Client struct {
	baseURL    string
	database   string
	apiKey     string
	httpClient *http.Client
}

// Lead mirrors the crm.lead fields the engine populates.
type Lead struct {
	ID             string  `json:"id,omitempty"`
	Name           string  `json:"name"`
	ContactName    string  `json:"contact_name,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	Email          string  `json:"email_from,omitempty"`
	Description    string  `json:"description,omitempty"`
	PropertyType   string  `json:"x_property_type,omitempty"`
	Qualification  string  `json:"x_qualification,omitempty"`
	ExpectedValue  float64 `json:"expected_revenue,omitempty"`
	AssignedTo     string  `json:"x_assigned_to,omitempty"`
	Source         string  `json:"x_source_channel,omitempty"`
	IdempotencyKey string  `json:"x_idempotency_key,omitempty"`
}

type createLeadResponse struct {
	Result struct {
		ID      string `json:"id"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"result"`
}

func NewClient(baseURL, database, apiKey string) *Client {
	return &Client{
		baseURL:  baseURL,
		database: database,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateLead creates a crm.lead record and returns its opaque identifier.
func (c *Client) CreateLead(ctx context.Context, lead *Lead) (string, error) {
	url := fmt.Sprintf("%s/api/v2/create/crm.lead", c.baseURL)

	payload := map[string]interface{}{
		"db":     c.database,
		"values": lead,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", apperrors.NewCRMCreateError(fmt.Sprintf("status %d: %s", resp.StatusCode, string(body)))
	}

	var createResp createLeadResponse
	if err := json.Unmarshal(body, &createResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if createResp.Result.ID == "" {
		return "", fmt.Errorf("lead creation failed: %s", createResp.Result.Message)
	}

	return createResp.Result.ID, nil
}

// GetLead fetches a crm.lead by its identifier.
func (c *Client) GetLead(ctx context.Context, leadID string) (*Lead, error) {
	url := fmt.Sprintf("%s/api/v2/read/crm.lead/%s", c.baseURL, leadID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to get lead (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		Result []Lead `json:"result"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Result) == 0 {
		return nil, fmt.Errorf("lead not found")
	}

	return &result.Result[0], nil
}
