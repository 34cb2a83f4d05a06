package processcommand

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/xeipuuv/gojsonschema"

	"command-engine/internal/brains"
	"command-engine/internal/common/logger"
	"command-engine/internal/common/observability"
	"command-engine/internal/engine/command"
	"command-engine/internal/engine/extract"
	"command-engine/internal/engine/route"
	"command-engine/internal/models"
)

const (
	TaskType = "process-command"
)

var (
	ErrInputValidationFailed = errors.New("INPUT_VALIDATION_FAILED")
	ErrCommandBuildFailed    = errors.New("COMMAND_BUILD_FAILED")
	ErrDispatchFailed        = errors.New("DISPATCH_FAILED")
)

const inputSchema = `{
	"type": "object",
	"required": ["rawText", "channel"],
	"properties": {
		"rawText": {"type": "string", "minLength": 1},
		"channel": {"type": "string", "enum": ["voice", "chat", "system"]},
		"metadata": {"type": "object"}
	}
}`

var inputSchemaLoader = gojsonschema.NewStringLoader(inputSchema)

// Deduper checks whether an idempotency key was already processed. Satisfied
// by store.DedupeStore.
type Deduper interface {
	Seen(ctx context.Context, key string) (bool, error)
}

// Auditor records the processed command for later search. Satisfied by
// store.AuditIndexer.
type Auditor interface {
	IndexCommand(ctx context.Context, cmd *models.Command, resultStatus string) error
}

// Dispatcher executes a command's business module. Satisfied by
// brains.Registry.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd *models.Command) (*brains.Result, error)
}

type Handler struct {
	config     *Config
	dispatcher Dispatcher
	dedupe     Deduper
	audit      Auditor
	obs        *observability.Observability
	logger     logger.Logger
}

// NewHandler wires the intake pipeline. dedupe and audit may be nil; the
// pipeline then runs without replay protection or audit records, which is how
// the pure end-to-end tests exercise it.
func NewHandler(config *Config, dispatcher Dispatcher, dedupe Deduper, audit Auditor, obs *observability.Observability, log logger.Logger) *Handler {
	return &Handler{
		config:     config,
		dispatcher: dispatcher,
		dedupe:     dedupe,
		audit:      audit,
		obs:        obs,
		logger: log.WithFields(map[string]interface{}{
			"taskType": TaskType,
		}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, fmt.Errorf("parse input: %w", err), 0)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		retries := int32(0)
		if errors.Is(err, ErrDispatchFailed) {
			retries = 2
		}
		h.failJob(client, job, err, retries)
		return
	}

	h.completeJob(client, job, output)
}

// execute runs the full pipeline: validate, extract, route, build, dedupe,
// dispatch, audit. Extraction and routing are pure and cannot fail; a request
// the engine cannot act on still produces a command, just one flagged for a
// human.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	start := time.Now()

	if err := h.validateInput(input); err != nil {
		return nil, err
	}

	extraction := extract.Extract(input.RawText)
	routing := route.Route(extraction)

	cmd, err := command.Build(command.BuildInput{
		Channel:    models.Channel(input.Channel),
		RawText:    input.RawText,
		Extraction: &extraction,
		Routing:    &routing,
		Metadata:   input.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommandBuildFailed, err)
	}

	if h.dedupe != nil {
		seen, err := h.dedupe.Seen(ctx, cmd.IdempotencyKey)
		if err != nil {
			// Fail open: a dead Redis must not stop intake, it only costs
			// replay protection until it comes back.
			h.logger.WithError(err).Warn("dedupe check failed, continuing", map[string]interface{}{
				"requestId": cmd.RequestID,
			})
		} else if seen {
			h.logger.Info("duplicate command skipped", map[string]interface{}{
				"requestId":      cmd.RequestID,
				"idempotencyKey": cmd.IdempotencyKey,
			})
			h.recordMetrics(ctx, cmd, "duplicate", start)
			return &Output{Command: cmd, Duplicate: true}, nil
		}
	}

	result, err := h.dispatcher.Dispatch(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}

	if h.audit != nil {
		if err := h.audit.IndexCommand(ctx, cmd, string(result.Status)); err != nil {
			// Audit is best-effort; losing a record must not fail the job.
			h.logger.WithError(err).Warn("audit indexing failed", map[string]interface{}{
				"requestId": cmd.RequestID,
			})
		}
	}

	h.recordMetrics(ctx, cmd, string(result.Status), start)

	h.logger.Info("command processed", map[string]interface{}{
		"requestId":     cmd.RequestID,
		"intent":        string(cmd.Intent),
		"targetModule":  string(cmd.TargetModule),
		"confidence":    cmd.Confidence,
		"requiresHuman": cmd.RequiresHuman,
		"resultStatus":  string(result.Status),
	})

	return &Output{Command: cmd, Result: result}, nil
}

func (h *Handler) validateInput(input *Input) error {
	doc := gojsonschema.NewGoLoader(input)
	result, err := gojsonschema.Validate(inputSchemaLoader, doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInputValidationFailed, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("%w: %v", ErrInputValidationFailed, msgs)
	}
	return nil
}

func (h *Handler) recordMetrics(ctx context.Context, cmd *models.Command, status string, start time.Time) {
	if h.obs == nil {
		return
	}
	h.obs.RecordCommandProcessed(ctx, string(cmd.TargetModule), status)
	h.obs.RecordPipelineDuration(ctx, time.Since(start), status)
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)

	if err != nil {
		h.logger.Error("Failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
		return
	}

	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("Failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, err error, retries int32) {
	errorCode := "UNKNOWN_ERROR"
	switch {
	case errors.Is(err, ErrInputValidationFailed):
		errorCode = "INPUT_VALIDATION_FAILED"
	case errors.Is(err, ErrCommandBuildFailed):
		errorCode = "COMMAND_BUILD_FAILED"
	case errors.Is(err, ErrDispatchFailed):
		errorCode = "DISPATCH_FAILED"
	}

	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":    job.Key,
		"error":     err.Error(),
		"errorCode": errorCode,
	})

	_, _ = client.NewFailJobCommand().
		JobKey(job.Key).
		Retries(retries).
		ErrorMessage(errorCode + ": " + err.Error()).
		Send(context.Background())
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
