package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafmac11/landscapes-form/internal/models"
	"github.com/rafmac11/landscapes-form/internal/services"
)

// AdminHandler handles operator-only endpoints.
type AdminHandler struct {
	dispatcher services.LeadDispatcher
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(dispatcher services.LeadDispatcher) *AdminHandler {
	return &AdminHandler{
		dispatcher: dispatcher,
	}
}

// @Summary Dispatch a canned test submission
// @Description Sends a synthetic lead through both channels so provider credentials can be verified after deploy
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SendFormResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/admin/test-dispatch [post]
func (h *AdminHandler) TestDispatch(c *gin.Context) {
	result := h.dispatcher.Dispatch(c.Request.Context(), testSubmission())

	if !result.Succeeded() {
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

// testSubmission is a recognizable synthetic lead used to verify the
// delivery pipeline end to end.
func testSubmission() *models.FormSubmission {
	str := func(s string) *string { return &s }

	return &models.FormSubmission{
		FirstName:          str("Test"),
		LastName:           str("Dispatch"),
		Email:              str("devnull@webleadsnow.com"),
		ZipCode:            str("55111"),
		ProjectType:        str("other"),
		ProjectDescription: str("Synthetic submission from the admin test-dispatch endpoint."),
		Services:           models.StringList{"mowing"},
		AdditionalComments: str("Safe to delete this record."),
	}
}
