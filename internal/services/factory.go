package services

import (
	"fmt"

	"github.com/rafmac11/landscapes-form/internal/config"
)

// ServiceContainer holds all service instances.
type ServiceContainer struct {
	Normalizer *Normalizer
	Formatter  *Formatter
	Email      EmailSender
	Records    RecordStore
	Dispatcher LeadDispatcher
}

// NewServiceContainer wires up the service graph from immutable
// configuration. Nothing here holds per-request state.
func NewServiceContainer(cfg *config.Config, labels *config.Labels) (*ServiceContainer, error) {
	formatter, err := NewFormatter()
	if err != nil {
		return nil, fmt.Errorf("failed to create formatter: %w", err)
	}

	normalizer := NewNormalizer(labels)
	email := NewResendSender(cfg.Email)
	records := NewAirtableStore(cfg.Airtable)

	return &ServiceContainer{
		Normalizer: normalizer,
		Formatter:  formatter,
		Email:      email,
		Records:    records,
		Dispatcher: NewLeadDispatcher(normalizer, formatter, email, records, cfg.Email),
	}, nil
}
