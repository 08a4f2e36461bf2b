package services

import (
	"testing"

	"github.com/rafmac11/landscapes-form/internal/config"
	"github.com/rafmac11/landscapes-form/internal/models"
)

func str(s string) *string { return &s }

func newTestNormalizer() *Normalizer {
	return NewNormalizer(config.DefaultLabels())
}

// TestNormalizeEmptySubmission verifies that a completely empty submission
// normalizes without error to blank values.
func TestNormalizeEmptySubmission(t *testing.T) {
	sub := newTestNormalizer().Normalize(&models.FormSubmission{})

	if sub.FullName != "" {
		t.Errorf("Expected empty full name, got %q", sub.FullName)
	}
	if sub.Address != "" {
		t.Errorf("Expected empty address, got %q", sub.Address)
	}
	if sub.YardSize != "" {
		t.Errorf("Expected empty yard size, got %q", sub.YardSize)
	}
	if sub.BudgetDisplay != "" {
		t.Errorf("Expected empty budget display, got %q", sub.BudgetDisplay)
	}
	if len(sub.Services) != 0 {
		t.Errorf("Expected no services, got %v", sub.Services)
	}
	if sub.FinancingInterest {
		t.Error("Expected no financing interest")
	}
}

// TestServiceLabels verifies scalar/list equivalence and verbatim
// passthrough of unmapped identifiers.
func TestServiceLabels(t *testing.T) {
	n := newTestNormalizer()

	single := n.ServiceLabels(models.StringList{"mowing"})
	if len(single) != 1 || single[0] != "Lawn Care & Mowing" {
		t.Errorf("Expected [Lawn Care & Mowing], got %v", single)
	}

	mixed := n.ServiceLabels(models.StringList{"xyz", "cleanup"})
	if len(mixed) != 2 || mixed[0] != "xyz" || mixed[1] != "Yard Cleanup" {
		t.Errorf("Expected [xyz Yard Cleanup] in input order, got %v", mixed)
	}

	if n.ServiceLabels(nil) != nil {
		t.Error("Expected nil labels for no services")
	}
}

// TestNormalizeAddress tests comma-joining without stray separators.
func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name        string
		form        *models.FormSubmission
		wantAddr    string
		wantMailing string
	}{
		{
			"all parts",
			&models.FormSubmission{Address: str("12 Oak St"), City: str("Edina"), State: str("MN"), ZipCode: str("55424")},
			"12 Oak St, Edina, MN",
			"12 Oak St, Edina, MN, 55424",
		},
		{
			"missing city",
			&models.FormSubmission{Address: str("12 Oak St"), State: str("MN")},
			"12 Oak St, MN",
			"12 Oak St, MN",
		},
		{
			"zip only",
			&models.FormSubmission{ZipCode: str("55424")},
			"",
			"55424",
		},
		{
			"nothing",
			&models.FormSubmission{},
			"",
			"",
		},
	}

	n := newTestNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := n.Normalize(tt.form)
			if sub.Address != tt.wantAddr {
				t.Errorf("Address: expected %q, got %q", tt.wantAddr, sub.Address)
			}
			if sub.MailingAddress != tt.wantMailing {
				t.Errorf("MailingAddress: expected %q, got %q", tt.wantMailing, sub.MailingAddress)
			}
		})
	}
}

// TestNumberFormatting tests thousands separators for yard size and budget.
func TestNumberFormatting(t *testing.T) {
	n := newTestNormalizer()

	tests := []struct {
		name       string
		yardSize   *string
		budget     *string
		wantYard   string
		wantBudget string
	}{
		{"plain thousands", str("12000"), str("5000"), "12,000 sq ft", "$5,000"},
		{"millions", str("1250000"), str("1000000"), "1,250,000 sq ft", "$1,000,000"},
		{"small", str("800"), str("500"), "800 sq ft", "$500"},
		{"fractional", str("1200.5"), str("2500.75"), "1,200.5 sq ft", "$2,500.75"},
		{"exponent form", str("1e6"), str("2.5e3"), "1,000,000 sq ft", "$2,500"},
		{"bare fraction", str(".5"), str("5000."), "0.5 sq ft", "$5,000"},
		{"empty", str(""), str(""), "", ""},
		{"absent", nil, nil, "", ""},
		{"unparsable", str("a lot"), str("tbd"), "", ""},
		{"non-finite", str("NaN"), str("Inf"), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := n.Normalize(&models.FormSubmission{YardSize: tt.yardSize, Budget: tt.budget})
			if sub.YardSize != tt.wantYard {
				t.Errorf("YardSize: expected %q, got %q", tt.wantYard, sub.YardSize)
			}
			if sub.BudgetDisplay != tt.wantBudget {
				t.Errorf("BudgetDisplay: expected %q, got %q", tt.wantBudget, sub.BudgetDisplay)
			}
		})
	}
}

// TestNormalizeLabels verifies dictionary mapping with raw passthrough and
// blank output for absent identifiers.
func TestNormalizeLabels(t *testing.T) {
	n := newTestNormalizer()

	sub := n.Normalize(&models.FormSubmission{
		ProjectType:    str("new"),
		Timeline:       str("soon"),
		ReferralSource: str("billboard"),
	})

	if sub.ProjectType != "New Landscape" {
		t.Errorf("Expected 'New Landscape', got %q", sub.ProjectType)
	}
	if sub.Timeline != "Soon (1-3 months)" {
		t.Errorf("Expected 'Soon (1-3 months)', got %q", sub.Timeline)
	}
	if sub.ReferralSource != "billboard" {
		t.Errorf("Expected verbatim referral passthrough, got %q", sub.ReferralSource)
	}

	blank := n.Normalize(&models.FormSubmission{})
	if blank.ProjectType != "" || blank.Timeline != "" || blank.ReferralSource != "" {
		t.Error("Expected blank labels for absent identifiers")
	}
}

// TestBudgetRawPreserved verifies the record store receives the budget as
// supplied, not the display form.
func TestBudgetRawPreserved(t *testing.T) {
	sub := newTestNormalizer().Normalize(&models.FormSubmission{Budget: str("5000")})

	if sub.Budget != "5000" {
		t.Errorf("Expected raw budget '5000', got %q", sub.Budget)
	}
	if sub.BudgetDisplay != "$5,000" {
		t.Errorf("Expected display budget '$5,000', got %q", sub.BudgetDisplay)
	}
}
