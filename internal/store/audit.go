package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"command-engine/internal/models"
)

// AuditIndexer writes processed commands to Elasticsearch so dispatch
// decisions can be searched and replayed later.
type AuditIndexer struct {
	client *elasticsearch.Client
	index  string
}

func NewAuditIndexer(client *elasticsearch.Client, index string) *AuditIndexer {
	if index == "" {
		index = "command-audit"
	}
	return &AuditIndexer{client: client, index: index}
}

type auditDocument struct {
	RequestID      string        `json:"requestId"`
	Channel        string        `json:"channel"`
	Intent         string        `json:"intent"`
	TargetModule   string        `json:"targetModule"`
	Confidence     float64       `json:"confidence"`
	RequiresHuman  bool          `json:"requiresHuman"`
	MissingFields  []string      `json:"missingFields,omitempty"`
	IdempotencyKey string        `json:"idempotencyKey"`
	ResultStatus   string        `json:"resultStatus"`
	Entities       models.Entity `json:"entities"`
	CreatedAt      time.Time     `json:"createdAt"`
	IndexedAt      time.Time     `json:"indexedAt"`
}

// IndexCommand stores one audit document keyed by the idempotency key, so a
// replayed request overwrites its own record instead of duplicating it.
func (a *AuditIndexer) IndexCommand(ctx context.Context, cmd *models.Command, resultStatus string) error {
	doc := auditDocument{
		RequestID:      cmd.RequestID,
		Channel:        string(cmd.Channel),
		Intent:         string(cmd.Intent),
		TargetModule:   string(cmd.TargetModule),
		Confidence:     cmd.Confidence,
		RequiresHuman:  cmd.RequiresHuman,
		MissingFields:  cmd.MissingFields,
		IdempotencyKey: cmd.IdempotencyKey,
		ResultStatus:   resultStatus,
		Entities:       cmd.Entities,
		CreatedAt:      cmd.CreatedAt,
		IndexedAt:      time.Now().UTC(),
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal audit document: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      a.index,
		DocumentID: cmd.IdempotencyKey,
		Body:       bytes.NewReader(body),
	}

	res, err := req.Do(ctx, a.client)
	if err != nil {
		return fmt.Errorf("index audit document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index audit document: %s", res.Status())
	}
	return nil
}
