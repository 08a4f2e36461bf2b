package services

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/rafmac11/landscapes-form/internal/config"
)

// airtableStore implements RecordStore against the Airtable REST API.
type airtableStore struct {
	client  *resty.Client
	baseID  string
	tableID string
}

// NewAirtableStore creates a record store appending to one Airtable table.
func NewAirtableStore(cfg config.AirtableConfig) RecordStore {
	client := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetAuthToken(cfg.Token).
		SetHeader("Content-Type", "application/json")

	return &airtableStore{
		client:  client,
		baseID:  cfg.BaseID,
		tableID: cfg.TableID,
	}
}

// airtableRecord is one record in an Airtable create request or response.
type airtableRecord struct {
	ID     string            `json:"id,omitempty"`
	Fields map[string]string `json:"fields"`
}

// airtableBody is the wire shape of an Airtable create request/response.
type airtableBody struct {
	Records []airtableRecord `json:"records"`
}

// Append creates one record and returns the Airtable record ID.
func (s *airtableStore) Append(ctx context.Context, fields map[string]string) (string, error) {
	body := &airtableBody{
		Records: []airtableRecord{{Fields: fields}},
	}

	var result airtableBody
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/v0/%s/%s", s.baseID, s.tableID))
	if err != nil {
		return "", fmt.Errorf("airtable request failed: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("airtable error: %d: %s", resp.StatusCode(), resp.String())
	}

	if len(result.Records) == 0 {
		return "", nil
	}
	return result.Records[0].ID, nil
}
