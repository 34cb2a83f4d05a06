// internal/delivery/senders_test.go
package delivery

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"command-engine/internal/models"
)

type mockSES struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (m *mockSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	m.inputs = append(m.inputs, params)
	if m.err != nil {
		return nil, m.err
	}
	return &ses.SendEmailOutput{}, nil
}

type mockSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (m *mockSNS) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	m.inputs = append(m.inputs, params)
	if m.err != nil {
		return nil, m.err
	}
	return &sns.PublishOutput{}, nil
}

func TestEmailSender_Send(t *testing.T) {
	mock := &mockSES{}
	sender := NewEmailSenderWithClient(mock, "noreply@example.com")

	meta := map[string]interface{}{
		"financingPartner": "Acme Lending",
		"schedulingLink":   "https://book.example.com",
	}
	status, err := sender.Send(context.Background(), models.FollowUpChannelEmail, "bob@example.com", "quote_thank_you_email", meta)

	require.NoError(t, err)
	assert.Equal(t, StatusSent, status)
	require.Len(t, mock.inputs, 1)

	input := mock.inputs[0]
	assert.Equal(t, "noreply@example.com", *input.Source)
	assert.Equal(t, []string{"bob@example.com"}, input.Destination.ToAddresses)
	assert.Contains(t, *input.Message.Body.Text.Data, "Acme Lending")
	assert.Contains(t, *input.Message.Body.Text.Data, "https://book.example.com")
}

func TestEmailSender_Skips(t *testing.T) {
	mock := &mockSES{}
	sender := NewEmailSenderWithClient(mock, "noreply@example.com")

	status, err := sender.Send(context.Background(), models.FollowUpChannelSMS, "bob@example.com", "quote_thank_you_email", nil)
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, status)

	status, err = sender.Send(context.Background(), models.FollowUpChannelEmail, "", "quote_thank_you_email", nil)
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, status)

	assert.Empty(t, mock.inputs)
}

func TestEmailSender_Failure(t *testing.T) {
	mock := &mockSES{err: errors.New("ses throttled")}
	sender := NewEmailSenderWithClient(mock, "noreply@example.com")

	status, err := sender.Send(context.Background(), models.FollowUpChannelEmail, "bob@example.com", "quote_thank_you_email", nil)
	assert.Error(t, err)
	assert.Equal(t, StatusFailed, status)
}

func TestSMSSender_Send(t *testing.T) {
	mock := &mockSNS{}
	sender := NewSMSSenderWithClient(mock)

	status, err := sender.Send(context.Background(), models.FollowUpChannelSMS, "512-555-1234", "quote_thank_you_sms", map[string]interface{}{
		"schedulingLink": "https://book.example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusSent, status)
	require.Len(t, mock.inputs, 1)
	assert.Equal(t, "+15125551234", *mock.inputs[0].PhoneNumber)
	assert.Contains(t, *mock.inputs[0].Message, "https://book.example.com")
}

func TestSMSSender_Skips(t *testing.T) {
	mock := &mockSNS{}
	sender := NewSMSSenderWithClient(mock)

	status, err := sender.Send(context.Background(), models.FollowUpChannelEmail, "512-555-1234", "quote_thank_you_sms", nil)
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, status)
	assert.Empty(t, mock.inputs)
}

func TestRenderTemplate(t *testing.T) {
	meta := map[string]interface{}{
		"financingPartner": "Acme Lending",
		"schedulingLink":   "https://book.example.com",
	}

	subject, body := renderTemplate("quote_thank_you_email", meta)
	assert.Equal(t, "Your quote is on the way", subject)
	assert.Contains(t, body, "Acme Lending")
	assert.Contains(t, body, "https://book.example.com")

	// Unknown templates degrade to echoing the name so a typo in a sequence
	// definition shows up in the delivered text.
	subject, body = renderTemplate("no_such_template", nil)
	assert.Equal(t, "no_such_template", subject)
	assert.Equal(t, "no_such_template", body)
}
