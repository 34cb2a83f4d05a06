// Package command assembles the immutable Command envelope from extraction
// and routing output.
package command

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"command-engine/internal/engine/idempotency"
	"command-engine/internal/models"
)

// BuildInput carries everything the builder needs. CreatedAt may be zero, in
// which case the current UTC time is used; tests pass a fixed value.
type BuildInput struct {
	Channel    models.Channel
	RawText    string
	Extraction *models.ExtractionResult
	Routing    *models.RoutingResult
	Metadata   map[string]interface{}
	CreatedAt  time.Time
}

// Build constructs the Command envelope. It only errors on programming
// mistakes (nil stages, empty channel); business ambiguity is already data
// on the routing result.
func Build(in BuildInput) (*models.Command, error) {
	if in.Extraction == nil {
		return nil, fmt.Errorf("build command: extraction result is nil")
	}
	if in.Routing == nil {
		return nil, fmt.Errorf("build command: routing result is nil")
	}
	if in.Channel == "" {
		return nil, fmt.Errorf("build command: channel is required")
	}

	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	} else {
		createdAt = createdAt.UTC()
	}

	key := idempotency.GenerateKey(in.Channel, in.Extraction.Entities, in.Extraction.Intent, createdAt)

	return &models.Command{
		RequestID:      uuid.New().String(),
		Channel:        in.Channel,
		RawText:        in.RawText,
		Intent:         in.Extraction.Intent,
		TargetModule:   in.Routing.TargetModule,
		Entities:       in.Extraction.Entities,
		Confidence:     in.Extraction.Confidence,
		RequiresHuman:  in.Routing.RequiresHuman,
		MissingFields:  in.Routing.MissingFields,
		IdempotencyKey: key,
		CreatedAt:      createdAt,
		Metadata:       in.Metadata,
	}, nil
}
