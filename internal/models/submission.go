package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FormSubmission is the raw, untrusted payload posted by the public lead
// form. Every field is optional; absent and empty values are both tolerated
// and degrade to blank output downstream.
type FormSubmission struct {
	FirstName          *string    `json:"firstName,omitempty"`
	LastName           *string    `json:"lastName,omitempty"`
	Email              *string    `json:"email,omitempty"`
	Phone              *string    `json:"phone,omitempty"`
	Address            *string    `json:"address,omitempty"`
	City               *string    `json:"city,omitempty"`
	State              *string    `json:"state,omitempty"`
	ZipCode            *string    `json:"zipCode,omitempty"`
	ProjectType        *string    `json:"projectType,omitempty"`
	ProjectDescription *string    `json:"projectDescription,omitempty"`
	YardSize           *string    `json:"yardSize,omitempty"`
	Timeline           *string    `json:"timeline,omitempty"`
	Budget             *string    `json:"budget,omitempty"`
	Services           StringList `json:"services,omitempty"`
	FinancingInfo      *string    `json:"financingInfo,omitempty"`
	ReferralSource     *string    `json:"referralSource,omitempty"`
	AdditionalComments *string    `json:"additionalComments,omitempty"`
}

// FullName returns the trimmed combination of first and last name.
func (f *FormSubmission) FullName() string {
	return strings.TrimSpace(Str(f.FirstName) + " " + Str(f.LastName))
}

// HasEmail returns true if the submitter supplied a non-empty email address.
func (f *FormSubmission) HasEmail() bool {
	return strings.TrimSpace(Str(f.Email)) != ""
}

// WantsFinancing reports whether the submitter indicated financing interest.
func (f *FormSubmission) WantsFinancing() bool {
	return Str(f.FinancingInfo) == "yes"
}

// Str dereferences an optional string field, returning "" when absent.
func Str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// StringList accepts either a bare JSON string or an array of strings. Form
// encoders submit a single selected checkbox as a scalar, so both shapes are
// treated as equivalent.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = nil
		return nil
	}

	if data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return fmt.Errorf("invalid services value: %w", err)
		}
		*s = StringList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("invalid services list: %w", err)
	}
	*s = StringList(list)
	return nil
}
