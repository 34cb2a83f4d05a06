// Package delivery sends follow-up messages through external channels. The
// engine only describes what to send; everything here sits on the other side
// of that boundary.
package delivery

import "context"

// Status of one delivery attempt.
type Status string

const (
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Sender is the capability interface handed to module handlers. A channel
// the sender does not support returns StatusSkipped without error.
type Sender interface {
	Send(ctx context.Context, channel, recipient, template string, metadata map[string]interface{}) (Status, error)
}
