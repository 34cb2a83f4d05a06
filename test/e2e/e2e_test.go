// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"command-engine/internal/brains"
	corebrain "command-engine/internal/brains/core"
	opsbrain "command-engine/internal/brains/ops"
	peoplebrain "command-engine/internal/brains/people"
	"command-engine/internal/common/logger"
	"command-engine/internal/models"

	processcommand "command-engine/internal/workers/intake/process-command"
)

// buildHandler assembles the pipeline without any external infrastructure:
// no Zeebe, no Redis, no Postgres. Everything exercised here is the pure
// extract-route-build-dispatch path.
func buildHandler(t *testing.T) *processcommand.Handler {
	log := logger.NewTestLogger(t)

	registry := brains.NewRegistry(log)
	registry.Register(opsbrain.NewBrain(log))
	registry.Register(corebrain.NewBrain(log))
	registry.Register(peoplebrain.NewBrain(log))

	return processcommand.NewHandler(
		&processcommand.Config{Timeout: 5 * time.Second},
		registry, nil, nil, nil, log,
	)
}

func TestPipeline_EmergencyServiceCall(t *testing.T) {
	h := buildHandler(t)

	output, err := h.Execute(context.Background(), &processcommand.Input{
		RawText: "My AC stopped working, smoke smell, call me at 512-555-1234, I'm in 78701",
		Channel: "voice",
	})
	require.NoError(t, err)

	cmd := output.Command
	assert.Equal(t, models.IntentServiceRequest, cmd.Intent)
	assert.Equal(t, models.ModuleOps, cmd.TargetModule)
	assert.Equal(t, models.UrgencyEmergency, cmd.Entities.Urgency)
	assert.GreaterOrEqual(t, cmd.Confidence, 0.6)
	assert.False(t, cmd.RequiresHuman)

	require.Equal(t, brains.StatusCompleted, output.Result.Status)
	assert.Equal(t, "P1", output.Result.Data["priority"])
}

func TestPipeline_SchedulingCall(t *testing.T) {
	h := buildHandler(t)

	output, err := h.Execute(context.Background(), &processcommand.Input{
		RawText: "This is Maria Lopez, can you come out Tuesday morning? My number is 512-555-9876",
		Channel: "voice",
	})
	require.NoError(t, err)

	cmd := output.Command
	assert.Equal(t, models.IntentScheduleAppt, cmd.Intent)
	assert.Equal(t, models.ModuleCore, cmd.TargetModule)
	assert.Equal(t, "Maria Lopez", cmd.Entities.Name)
	assert.Equal(t, "tuesday", cmd.Entities.PreferredDate)
	assert.Equal(t, "morning", cmd.Entities.PreferredWindow)

	assert.Equal(t, brains.StatusCompleted, output.Result.Status)
	assert.NotEmpty(t, output.Result.Data["bookingId"])
}

func TestPipeline_HiringInquiry(t *testing.T) {
	h := buildHandler(t)

	output, err := h.Execute(context.Background(), &processcommand.Input{
		RawText: "Hi, I saw your job opening, my email is applicant@example.com",
		Channel: "chat",
	})
	require.NoError(t, err)

	assert.Equal(t, models.IntentHiringInquiry, output.Command.Intent)
	assert.Equal(t, models.ModulePeople, output.Command.TargetModule)
	assert.Equal(t, brains.StatusCompleted, output.Result.Status)
	assert.Equal(t, "recruiting", output.Result.Data["queue"])
}

func TestPipeline_AmbiguousInputEscalates(t *testing.T) {
	h := buildHandler(t)

	output, err := h.Execute(context.Background(), &processcommand.Input{
		RawText: "yeah hi, it's about the thing from before",
		Channel: "chat",
	})
	require.NoError(t, err)

	assert.True(t, output.Command.RequiresHuman)
	assert.Equal(t, models.ModuleUnknown, output.Command.TargetModule)
	assert.Equal(t, brains.StatusNeedsHuman, output.Result.Status)
}

func TestPipeline_MissingFieldsEscalate(t *testing.T) {
	h := buildHandler(t)

	// A clear service request with no contact info still cannot be
	// auto-processed.
	output, err := h.Execute(context.Background(), &processcommand.Input{
		RawText: "the heat pump is not working at all",
		Channel: "chat",
	})
	require.NoError(t, err)

	assert.Equal(t, models.IntentServiceRequest, output.Command.Intent)
	assert.True(t, output.Command.RequiresHuman)
	assert.Contains(t, output.Command.MissingFields, "contact")
	assert.Equal(t, brains.StatusNeedsHuman, output.Result.Status)
}
