package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafmac11/landscapes-form/internal/models"
	"github.com/rafmac11/landscapes-form/internal/services"
)

// LeadHandler handles lead form submissions.
type LeadHandler struct {
	dispatcher services.LeadDispatcher
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(dispatcher services.LeadDispatcher) *LeadHandler {
	return &LeadHandler{
		dispatcher: dispatcher,
	}
}

// SendFormRequest represents the request body for a form submission.
type SendFormRequest struct {
	FormData *models.FormSubmission `json:"formData"`
}

// SendFormResponse reports each channel's outcome for a submission.
type SendFormResponse struct {
	Success  bool `json:"success"`
	Email    bool `json:"email"`
	Airtable bool `json:"airtable"`
}

// @Summary Submit the client lead form
// @Description Forwards the submission to the notification email list and logs it to Airtable
// @Tags leads
// @Accept json
// @Produce json
// @Param request body SendFormRequest true "Form submission"
// @Success 200 {object} SendFormResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/send-form [post]
func (h *LeadHandler) SendForm(c *gin.Context) {
	var req SendFormRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FormData == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Missing form data",
		})
		return
	}

	result := h.dispatcher.Dispatch(c.Request.Context(), req.FormData)

	if !result.Succeeded() {
		// Surface the channel errors to the error middleware for logging;
		// the response body stays the fixed contract message.
		if result.Email.Err != nil {
			_ = c.Error(result.Email.Err)
		}
		if result.Airtable.Err != nil {
			_ = c.Error(result.Airtable.Err)
		}

		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Both email and Airtable failed",
		})
		return
	}

	c.JSON(http.StatusOK, SendFormResponse{
		Success:  true,
		Email:    result.Email.OK,
		Airtable: result.Airtable.OK,
	})
}
