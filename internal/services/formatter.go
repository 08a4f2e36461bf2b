package services

import (
	"fmt"
	"html/template"
	"strings"
	"time"
	// Embed zone data so America/Chicago resolves on hosts and Lambda
	// images without a tzdata package.
	_ "time/tzdata"
)

// submissionTimeZone is the fixed regional zone all human-readable
// timestamps are rendered in.
const submissionTimeZone = "America/Chicago"

// submissionTimeLayout matches the en-US locale format of the timestamps.
const submissionTimeLayout = "1/2/2006, 3:04:05 PM"

// fieldRow is one label/value pair in the notification tables.
type fieldRow struct {
	Label string
	Value string
}

// notificationData is the template input for one rendered notification.
type notificationData struct {
	ContactRows []fieldRow
	ProjectRows []fieldRow
	Services    []string
	Comments    string
	SubmittedAt string
}

// Formatter renders a normalized submission into a self-contained HTML
// document suitable for use as an email body.
type Formatter struct {
	tmpl *template.Template
	loc  *time.Location
	now  func() time.Time
}

// NewFormatter creates a formatter with the notification template parsed and
// the regional time zone loaded.
func NewFormatter() (*Formatter, error) {
	tmpl, err := template.New("notification").Parse(notificationTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse notification template: %w", err)
	}

	loc, err := time.LoadLocation(submissionTimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %s: %w", submissionTimeZone, err)
	}

	return &Formatter{
		tmpl: tmpl,
		loc:  loc,
		now:  time.Now,
	}, nil
}

// Stamp returns the current wall-clock time formatted for display. One
// reading is taken per request and shared by the email body and the record
// fields.
func (f *Formatter) Stamp() string {
	return f.now().In(f.loc).Format(submissionTimeLayout)
}

// Render produces the notification HTML for a normalized submission.
func (f *Formatter) Render(sub *NormalizedSubmission, submittedAt string) (string, error) {
	data := &notificationData{
		ContactRows: nonEmptyRows([]fieldRow{
			{"Name", sub.FullName},
			{"Email", sub.Email},
			{"Phone", sub.Phone},
			{"Address", sub.MailingAddress},
			{"Referral Source", orDash(sub.ReferralSource)},
		}),
		ProjectRows: nonEmptyRows([]fieldRow{
			{"Project Type", orDash(sub.ProjectType)},
			{"Description", sub.ProjectDescription},
			{"Yard Size", orDash(sub.YardSize)},
			{"Timeline", orDash(sub.Timeline)},
			{"Budget", orDash(sub.BudgetDisplay)},
			{"Financing Interest", financingText(sub.FinancingInterest)},
		}),
		Services:    sub.Services,
		Comments:    sub.AdditionalComments,
		SubmittedAt: submittedAt,
	}

	var buf strings.Builder
	if err := f.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute notification template: %w", err)
	}

	return buf.String(), nil
}

// nonEmptyRows keeps only rows whose value rendered to something.
func nonEmptyRows(rows []fieldRow) []fieldRow {
	var kept []fieldRow
	for _, row := range rows {
		if row.Value != "" {
			kept = append(kept, row)
		}
	}
	return kept
}

// orDash substitutes a dash placeholder for an empty display value.
func orDash(value string) string {
	if value == "" {
		return "—"
	}
	return value
}

func financingText(interested bool) string {
	if interested {
		return "✅ Yes"
	}
	return "No"
}

const notificationTemplate = `
  <div style="font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;max-width:600px;margin:0 auto;background:#ffffff;border-radius:8px;overflow:hidden;box-shadow:0 4px 12px rgba(0,0,0,0.1);">
    <div style="background:linear-gradient(135deg,#1c4e18,#31761f);padding:24px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;font-size:22px;">New Client Form Submission</h1>
      <p style="color:#d4edda;margin:8px 0 0;">Landscapes Unlimited</p>
    </div>

    <div style="padding:24px;">
      <h2 style="color:#1c4e18;font-size:16px;border-bottom:2px solid #31761f;padding-bottom:6px;margin-bottom:12px;">Contact Information</h2>
      <table style="width:100%;border-collapse:collapse;margin-bottom:24px;">
{{- range .ContactRows}}
        <tr>
          <td style="padding:8px 12px;font-weight:600;color:#1c4e18;width:40%;border-bottom:1px solid #e2e8f0;">{{.Label}}</td>
          <td style="padding:8px 12px;border-bottom:1px solid #e2e8f0;">{{.Value}}</td>
        </tr>
{{- end}}
      </table>

      <h2 style="color:#1c4e18;font-size:16px;border-bottom:2px solid #31761f;padding-bottom:6px;margin-bottom:12px;">Project Details</h2>
      <table style="width:100%;border-collapse:collapse;margin-bottom:24px;">
{{- range .ProjectRows}}
        <tr>
          <td style="padding:8px 12px;font-weight:600;color:#1c4e18;width:40%;border-bottom:1px solid #e2e8f0;">{{.Label}}</td>
          <td style="padding:8px 12px;border-bottom:1px solid #e2e8f0;">{{.Value}}</td>
        </tr>
{{- end}}
      </table>

      <h2 style="color:#1c4e18;font-size:16px;border-bottom:2px solid #31761f;padding-bottom:6px;margin-bottom:12px;">Services Requested</h2>
{{- if .Services}}
      <ul style="padding-left:20px;margin-bottom:24px;">
{{- range .Services}}
        <li style="margin-bottom:4px;">{{.}}</li>
{{- end}}
      </ul>
{{- else}}
      <p style="color:#718096;margin-bottom:24px;">None selected</p>
{{- end}}
{{- if .Comments}}

      <h2 style="color:#1c4e18;font-size:16px;border-bottom:2px solid #31761f;padding-bottom:6px;margin-bottom:12px;">Additional Comments</h2>
      <p style="background:#f7fafc;padding:12px;border-radius:6px;border-left:4px solid #31761f;margin-bottom:24px;">{{.Comments}}</p>
{{- end}}
    </div>

    <div style="background:#f7fafc;padding:16px;text-align:center;font-size:12px;color:#718096;">
      Submitted on {{.SubmittedAt}} CT
    </div>
  </div>`
