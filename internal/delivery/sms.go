package delivery

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	apperrors "command-engine/internal/common/errors"
	"command-engine/internal/models"
)

// SNSService is the slice of the SNS client the sender needs.
type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SMSSender delivers SMS follow-ups through SNS.
type SMSSender struct {
	client SNSService
}

func NewSMSSender(ctx context.Context, region string) (*SMSSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &SMSSender{client: sns.NewFromConfig(awsCfg)}, nil
}

// NewSMSSenderWithClient wires a pre-built client; used by tests.
func NewSMSSenderWithClient(client SNSService) *SMSSender {
	return &SMSSender{client: client}
}

func (s *SMSSender) Send(ctx context.Context, channel, recipient, template string, metadata map[string]interface{}) (Status, error) {
	if channel != models.FollowUpChannelSMS {
		return StatusSkipped, nil
	}
	if recipient == "" {
		return StatusSkipped, nil
	}

	_, body := renderTemplate(template, metadata)

	_, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String("+1" + stripSeparators(recipient)),
		Message:     aws.String(body),
	})
	if err != nil {
		return StatusFailed, apperrors.NewNotificationSendError(fmt.Sprintf("sns publish: %v", err))
	}
	return StatusSent, nil
}

func stripSeparators(phone string) string {
	out := make([]rune, 0, len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return string(out)
}
