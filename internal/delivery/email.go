package delivery

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	apperrors "command-engine/internal/common/errors"
	"command-engine/internal/models"
)

// SESService is the slice of the SES client the sender needs, kept as an
// interface for mocking.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// EmailSender delivers email follow-ups through SES.
type EmailSender struct {
	client SESService
	from   string
}

func NewEmailSender(ctx context.Context, region, from string) (*EmailSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &EmailSender{client: ses.NewFromConfig(awsCfg), from: from}, nil
}

// NewEmailSenderWithClient wires a pre-built client; used by tests.
func NewEmailSenderWithClient(client SESService, from string) *EmailSender {
	return &EmailSender{client: client, from: from}
}

func (s *EmailSender) Send(ctx context.Context, channel, recipient, template string, metadata map[string]interface{}) (Status, error) {
	if channel != models.FollowUpChannelEmail {
		return StatusSkipped, nil
	}
	if recipient == "" {
		return StatusSkipped, nil
	}

	subject, body := renderTemplate(template, metadata)

	_, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	})
	if err != nil {
		return StatusFailed, apperrors.NewNotificationSendError(fmt.Sprintf("ses send email: %v", err))
	}
	return StatusSent, nil
}
