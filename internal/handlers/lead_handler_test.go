package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rafmac11/landscapes-form/internal/models"
	"github.com/rafmac11/landscapes-form/internal/services"
)

type fakeDispatcher struct {
	result *services.DispatchResult
	calls  int
	form   *models.FormSubmission
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, form *models.FormSubmission) *services.DispatchResult {
	f.calls++
	f.form = form
	return f.result
}

func newLeadRouter(d services.LeadDispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/send-form", NewLeadHandler(d).SendForm)
	return router
}

func postForm(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/send-form", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSendFormBothChannelsOK(t *testing.T) {
	d := &fakeDispatcher{result: &services.DispatchResult{
		Email:    services.ChannelOutcome{OK: true, Detail: "msg_1"},
		Airtable: services.ChannelOutcome{OK: true, Detail: "rec_1"},
	}}
	router := newLeadRouter(d)

	w := postForm(router, `{"formData":{"firstName":"Jane","lastName":"Smith"}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp SendFormResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if !resp.Success || !resp.Email || !resp.Airtable {
		t.Errorf("Unexpected response: %+v", resp)
	}

	if d.calls != 1 {
		t.Errorf("Expected one dispatch, got %d", d.calls)
	}
	if d.form == nil || models.Str(d.form.FirstName) != "Jane" {
		t.Error("Expected form data forwarded to the dispatcher")
	}
}

// TestSendFormPartialFailure verifies a single working channel still yields
// 200 with the failed channel flagged.
func TestSendFormPartialFailure(t *testing.T) {
	d := &fakeDispatcher{result: &services.DispatchResult{
		Email:    services.ChannelOutcome{Err: errors.New("rejected")},
		Airtable: services.ChannelOutcome{OK: true, Detail: "rec_1"},
	}}
	router := newLeadRouter(d)

	w := postForm(router, `{"formData":{}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp SendFormResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if !resp.Success || resp.Email || !resp.Airtable {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

func TestSendFormBothChannelsFail(t *testing.T) {
	d := &fakeDispatcher{result: &services.DispatchResult{
		Email:    services.ChannelOutcome{Err: errors.New("email rejected")},
		Airtable: services.ChannelOutcome{Err: errors.New("record rejected")},
	}}
	router := newLeadRouter(d)

	w := postForm(router, `{"formData":{}}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid response JSON: %v", err)
	}
	if resp.Error != "Both email and Airtable failed" {
		t.Errorf("Unexpected error message: %q", resp.Error)
	}
}

// TestSendFormMissingData verifies malformed or empty envelopes are rejected
// before anything is dispatched.
func TestSendFormMissingData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"invalid JSON", `{not json`},
		{"missing formData", `{}`},
		{"null formData", `{"formData":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDispatcher{}
			router := newLeadRouter(d)

			w := postForm(router, tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", w.Code)
			}

			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Invalid response JSON: %v", err)
			}
			if resp.Error != "Missing form data" {
				t.Errorf("Unexpected error message: %q", resp.Error)
			}

			if d.calls != 0 {
				t.Errorf("Expected no dispatch, got %d", d.calls)
			}
		})
	}
}

// TestSendFormBareStringServices verifies the legacy single-string services
// shape is accepted at the HTTP boundary.
func TestSendFormBareStringServices(t *testing.T) {
	d := &fakeDispatcher{result: &services.DispatchResult{
		Email:    services.ChannelOutcome{OK: true},
		Airtable: services.ChannelOutcome{OK: true},
	}}
	router := newLeadRouter(d)

	w := postForm(router, `{"formData":{"services":"mowing"}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(d.form.Services) != 1 || d.form.Services[0] != "mowing" {
		t.Errorf("Unexpected services: %v", d.form.Services)
	}
}
