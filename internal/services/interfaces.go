package services

import (
	"context"

	"github.com/rafmac11/landscapes-form/internal/models"
)

// EmailMessage is an outbound notification email.
type EmailMessage struct {
	From    string
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

// EmailSender delivers a single email through the configured provider. It
// returns the provider-assigned message ID on success.
type EmailSender interface {
	Send(ctx context.Context, msg *EmailMessage) (string, error)
}

// RecordStore appends one record to the external table. It returns the
// store-assigned record ID on success.
type RecordStore interface {
	Append(ctx context.Context, fields map[string]string) (string, error)
}

// LeadDispatcher fans a form submission out to the email and record-store
// channels and reports both outcomes.
type LeadDispatcher interface {
	Dispatch(ctx context.Context, form *models.FormSubmission) *DispatchResult
}

// ChannelOutcome captures the result of a single downstream channel.
type ChannelOutcome struct {
	OK     bool
	Detail string
	Err    error
}

// DispatchResult aggregates the two channel outcomes of one submission.
type DispatchResult struct {
	Email    ChannelOutcome
	Airtable ChannelOutcome
}

// Succeeded reports whether at least one channel delivered.
func (r *DispatchResult) Succeeded() bool {
	return r.Email.OK || r.Airtable.OK
}
