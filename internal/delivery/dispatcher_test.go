// internal/delivery/dispatcher_test.go
package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"command-engine/internal/common/logger"
	"command-engine/internal/models"
)

type recordedSend struct {
	channel   string
	recipient string
	template  string
}

type fakeSender struct {
	sends  []recordedSend
	err    error
	status Status
}

func (f *fakeSender) Send(ctx context.Context, channel, recipient, template string, metadata map[string]interface{}) (Status, error) {
	f.sends = append(f.sends, recordedSend{channel, recipient, template})
	if f.err != nil {
		return StatusFailed, f.err
	}
	if f.status != "" {
		return f.status, nil
	}
	return StatusSent, nil
}

var dispatchNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func TestDispatchDue_OnlySendsDueActions(t *testing.T) {
	sms := &fakeSender{}
	d := NewDispatcher(logger.NewNoOpLogger())
	d.Register(models.FollowUpChannelSMS, sms)

	actions := []models.FollowUpAction{
		{Channel: models.FollowUpChannelSMS, MessageTemplate: "quote_thank_you_sms", ScheduledAt: dispatchNow},
		{Channel: models.FollowUpChannelSMS, MessageTemplate: "quote_reminder_sms", ScheduledAt: dispatchNow.Add(48 * time.Hour)},
	}

	sent := d.DispatchDue(context.Background(), actions, models.Entity{Phone: "512-555-1234"}, dispatchNow)

	assert.Equal(t, 1, sent)
	assert.Len(t, sms.sends, 1)
	assert.Equal(t, "quote_thank_you_sms", sms.sends[0].template)
	assert.Equal(t, "512-555-1234", sms.sends[0].recipient)
}

func TestDispatchDue_RoutesByChannel(t *testing.T) {
	sms := &fakeSender{}
	email := &fakeSender{}
	d := NewDispatcher(logger.NewNoOpLogger())
	d.Register(models.FollowUpChannelSMS, sms)
	d.Register(models.FollowUpChannelEmail, email)

	actions := []models.FollowUpAction{
		{Channel: models.FollowUpChannelSMS, MessageTemplate: "quote_thank_you_sms", ScheduledAt: dispatchNow},
		{Channel: models.FollowUpChannelEmail, MessageTemplate: "quote_thank_you_email", ScheduledAt: dispatchNow},
	}

	entity := models.Entity{Phone: "512-555-1234", Email: "bob@example.com"}
	sent := d.DispatchDue(context.Background(), actions, entity, dispatchNow)

	assert.Equal(t, 2, sent)
	assert.Equal(t, "512-555-1234", sms.sends[0].recipient)
	assert.Equal(t, "bob@example.com", email.sends[0].recipient)
}

func TestDispatchDue_SkipsUnregisteredChannel(t *testing.T) {
	d := NewDispatcher(logger.NewNoOpLogger())

	actions := []models.FollowUpAction{
		{Channel: models.FollowUpChannelInternal, MessageTemplate: "quote_follow_up_call", ScheduledAt: dispatchNow},
	}

	sent := d.DispatchDue(context.Background(), actions, models.Entity{}, dispatchNow)
	assert.Zero(t, sent)
}

func TestDispatchDue_FailureDoesNotBlockRest(t *testing.T) {
	sms := &fakeSender{err: errors.New("carrier down")}
	email := &fakeSender{}
	d := NewDispatcher(logger.NewNoOpLogger())
	d.Register(models.FollowUpChannelSMS, sms)
	d.Register(models.FollowUpChannelEmail, email)

	actions := []models.FollowUpAction{
		{Channel: models.FollowUpChannelSMS, MessageTemplate: "quote_thank_you_sms", ScheduledAt: dispatchNow},
		{Channel: models.FollowUpChannelEmail, MessageTemplate: "quote_thank_you_email", ScheduledAt: dispatchNow},
	}

	entity := models.Entity{Phone: "512-555-1234", Email: "bob@example.com"}
	sent := d.DispatchDue(context.Background(), actions, entity, dispatchNow)

	assert.Equal(t, 1, sent, "email must still go out when sms fails")
	assert.Len(t, email.sends, 1)
}

func TestDispatchDue_SkippedStatusNotCounted(t *testing.T) {
	sms := &fakeSender{status: StatusSkipped}
	d := NewDispatcher(logger.NewNoOpLogger())
	d.Register(models.FollowUpChannelSMS, sms)

	actions := []models.FollowUpAction{
		{Channel: models.FollowUpChannelSMS, MessageTemplate: "quote_thank_you_sms", ScheduledAt: dispatchNow},
	}

	sent := d.DispatchDue(context.Background(), actions, models.Entity{}, dispatchNow)
	assert.Zero(t, sent)
}
