package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/rafmac11/landscapes-form/internal/config"
	"github.com/rafmac11/landscapes-form/internal/models"
)

// NormalizedSubmission carries the canonical display values derived from a
// raw form submission. Every field is a plain string; absent or unparsable
// input surfaces as "".
type NormalizedSubmission struct {
	FullName           string
	Email              string
	Phone              string
	ZipCode            string
	Address            string // street, city, state
	MailingAddress     string // street, city, state, zip
	ProjectType        string
	ProjectDescription string
	YardSize           string // "12,000 sq ft" when parsable
	Timeline           string
	Budget             string // raw numeric string as supplied
	BudgetDisplay      string // "$5,000" when parsable
	Services           []string
	FinancingInterest  bool
	ReferralSource     string
	AdditionalComments string
}

// Normalizer maps raw form input to canonical display values. All methods
// are total: malformed input degrades to empty output, never an error.
type Normalizer struct {
	labels *config.Labels
}

// NewNormalizer creates a normalizer backed by the given label dictionaries.
func NewNormalizer(labels *config.Labels) *Normalizer {
	return &Normalizer{labels: labels}
}

// Normalize produces the canonical view of a submission.
func (n *Normalizer) Normalize(form *models.FormSubmission) *NormalizedSubmission {
	street := models.Str(form.Address)
	city := models.Str(form.City)
	state := models.Str(form.State)
	zip := models.Str(form.ZipCode)

	return &NormalizedSubmission{
		FullName:           form.FullName(),
		Email:              models.Str(form.Email),
		Phone:              models.Str(form.Phone),
		ZipCode:            zip,
		Address:            joinParts(street, city, state),
		MailingAddress:     joinParts(street, city, state, zip),
		ProjectType:        n.optionalLabel(n.labels.ProjectType, form.ProjectType),
		ProjectDescription: models.Str(form.ProjectDescription),
		YardSize:           suffixNumber(models.Str(form.YardSize), " sq ft"),
		Timeline:           n.optionalLabel(n.labels.Timeline, form.Timeline),
		Budget:             models.Str(form.Budget),
		BudgetDisplay:      prefixNumber("$", models.Str(form.Budget)),
		Services:           n.ServiceLabels(form.Services),
		FinancingInterest:  form.WantsFinancing(),
		ReferralSource:     n.optionalLabel(n.labels.Referral, form.ReferralSource),
		AdditionalComments: models.Str(form.AdditionalComments),
	}
}

// ServiceLabels maps the selected service identifiers to display labels,
// preserving input order and passing unknown identifiers through verbatim.
func (n *Normalizer) ServiceLabels(ids models.StringList) []string {
	if len(ids) == 0 {
		return nil
	}

	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, n.labels.Service(id))
	}
	return labels
}

// optionalLabel maps an optional identifier through a dictionary, returning
// "" for an absent field and the raw identifier for an unmapped one.
func (n *Normalizer) optionalLabel(dict func(string) string, id *string) string {
	if id == nil || *id == "" {
		return ""
	}
	return dict(*id)
}

// joinParts comma-joins the non-empty parts without stray separators.
func joinParts(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

// suffixNumber renders a numeric string with thousands separators and the
// given suffix, or "" when the input is empty or not a number.
func suffixNumber(raw, suffix string) string {
	formatted, ok := formatNumber(raw)
	if !ok {
		return ""
	}
	return formatted + suffix
}

// prefixNumber renders a numeric string with thousands separators and the
// given prefix, or "" when the input is empty or not a number.
func prefixNumber(prefix, raw string) string {
	formatted, ok := formatNumber(raw)
	if !ok {
		return ""
	}
	return prefix + formatted
}

// formatNumber parses a numeric string and renders it with comma thousands
// separators, keeping any fractional digits as supplied.
func formatNumber(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return "", false
	}

	intPart, fracPart, hasFrac := strings.Cut(raw, ".")

	sign := ""
	if strings.HasPrefix(intPart, "-") || strings.HasPrefix(intPart, "+") {
		sign, intPart = intPart[:1], intPart[1:]
	}

	// Exponent and hex float forms cannot be grouped as written; re-render
	// the parsed value in plain decimal and group that instead.
	if !digitsOnly(intPart) || (hasFrac && fracPart != "" && !digitsOnly(fracPart)) {
		intPart, fracPart, hasFrac = strings.Cut(strconv.FormatFloat(value, 'f', -1, 64), ".")
		sign = ""
		if strings.HasPrefix(intPart, "-") {
			sign, intPart = "-", intPart[1:]
		}
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := sign + b.String()
	if hasFrac && fracPart != "" {
		out += "." + fracPart
	}
	return out, true
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

