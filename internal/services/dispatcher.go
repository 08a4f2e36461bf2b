package services

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/rafmac11/landscapes-form/internal/config"
	"github.com/rafmac11/landscapes-form/internal/models"
)

// leadDispatcher implements LeadDispatcher. Per submission it builds the
// notification email and the table record from the same normalized data,
// issues both downstream calls concurrently, and waits for both to settle.
type leadDispatcher struct {
	normalizer *Normalizer
	formatter  *Formatter
	email      EmailSender
	records    RecordStore
	from       string
	recipients []string
	validate   *validator.Validate
}

// NewLeadDispatcher creates the dispatch coordinator.
func NewLeadDispatcher(
	normalizer *Normalizer,
	formatter *Formatter,
	email EmailSender,
	records RecordStore,
	cfg config.EmailConfig,
) LeadDispatcher {
	return &leadDispatcher{
		normalizer: normalizer,
		formatter:  formatter,
		email:      email,
		records:    records,
		from:       cfg.From,
		recipients: cfg.Recipients,
		validate:   validator.New(),
	}
}

// Dispatch fans the submission out to both channels. A failure on one
// channel never prevents the other from completing or being reported.
func (d *leadDispatcher) Dispatch(ctx context.Context, form *models.FormSubmission) *DispatchResult {
	sub := d.normalizer.Normalize(form)
	submittedAt := d.formatter.Stamp()

	msg := d.buildMessage(form, sub, submittedAt)
	fields := d.buildFields(sub, submittedAt)

	var result DispatchResult
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		result.Email = d.sendEmail(ctx, msg)
	}()

	go func() {
		defer wg.Done()
		result.Airtable = d.appendRecord(ctx, fields)
	}()

	wg.Wait()

	d.logOutcomes(sub, &result)
	return &result
}

// buildMessage assembles the outbound notification email. The reply-to
// target is set only when the submitter supplied a valid address.
func (d *leadDispatcher) buildMessage(form *models.FormSubmission, sub *NormalizedSubmission, submittedAt string) *EmailMessage {
	msg := &EmailMessage{
		From:    d.from,
		To:      d.recipients,
		Subject: subjectLine(sub),
	}

	if form.HasEmail() && d.validate.Var(sub.Email, "email") == nil {
		msg.ReplyTo = sub.Email
	}

	body, err := d.formatter.Render(sub, submittedAt)
	if err != nil {
		// Template execution over plain string data should never fail;
		// fall back to an unstyled body rather than dropping the lead.
		logrus.WithError(err).Error("Failed to render notification HTML")
		body = "<p>New client form submission from " + html.EscapeString(subjectLine(sub)) + "</p>"
	}
	msg.HTML = body

	return msg
}

// buildFields assembles the Airtable field mapping from the same normalized
// values, using raw display strings rather than HTML.
func (d *leadDispatcher) buildFields(sub *NormalizedSubmission, submittedAt string) map[string]string {
	return map[string]string{
		"Name":                sub.FullName,
		"Email":               sub.Email,
		"Phone":               sub.Phone,
		"ZIP Code":            sub.ZipCode,
		"Address":             sub.Address,
		"Project Type":        sub.ProjectType,
		"Project Description": sub.ProjectDescription,
		"Yard Size":           sub.YardSize,
		"Timeline":            sub.Timeline,
		"Budget":              sub.Budget,
		"Services":            strings.Join(sub.Services, ", "),
		"Financing Interest":  yesNo(sub.FinancingInterest),
		"Referral Source":     sub.ReferralSource,
		"Additional Comments": sub.AdditionalComments,
		"Submitted At":        submittedAt,
	}
}

func (d *leadDispatcher) sendEmail(ctx context.Context, msg *EmailMessage) ChannelOutcome {
	id, err := d.email.Send(ctx, msg)
	if err != nil {
		return ChannelOutcome{Err: err}
	}
	return ChannelOutcome{OK: true, Detail: id}
}

func (d *leadDispatcher) appendRecord(ctx context.Context, fields map[string]string) ChannelOutcome {
	id, err := d.records.Append(ctx, fields)
	if err != nil {
		return ChannelOutcome{Err: err}
	}
	return ChannelOutcome{OK: true, Detail: id}
}

func (d *leadDispatcher) logOutcomes(sub *NormalizedSubmission, result *DispatchResult) {
	log := logrus.WithField("lead", sub.FullName)

	if result.Email.OK {
		log.WithField("email_id", result.Email.Detail).Info("Email sent")
	} else {
		log.WithError(result.Email.Err).Error("Email failed")
	}

	if result.Airtable.OK {
		log.WithField("record_id", result.Airtable.Detail).Info("Airtable record created")
	} else {
		log.WithError(result.Airtable.Err).Error("Airtable failed")
	}
}

// subjectLine builds the notification subject from the lead's name and ZIP.
func subjectLine(sub *NormalizedSubmission) string {
	name := sub.FullName
	if name == "" {
		name = "Unknown"
	}

	zip := sub.ZipCode
	if zip == "" {
		zip = "No ZIP"
	}

	return fmt.Sprintf("New Client Form: %s — %s", name, zip)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
