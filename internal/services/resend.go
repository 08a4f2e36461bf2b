package services

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/rafmac11/landscapes-form/internal/config"
)

// resendSender implements EmailSender against the Resend HTTP API.
type resendSender struct {
	client *resty.Client
}

// NewResendSender creates an email sender backed by Resend.
func NewResendSender(cfg config.EmailConfig) EmailSender {
	client := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &resendSender{client: client}
}

// resendPayload is the wire shape of a Resend send request.
type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// resendResult is the success body of a Resend send request.
type resendResult struct {
	ID string `json:"id"`
}

// Send delivers the message and returns the Resend message ID.
func (s *resendSender) Send(ctx context.Context, msg *EmailMessage) (string, error) {
	payload := &resendPayload{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}

	var result resendResult
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post("/emails")
	if err != nil {
		return "", fmt.Errorf("resend request failed: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("resend error: %d: %s", resp.StatusCode(), resp.String())
	}

	return result.ID, nil
}
