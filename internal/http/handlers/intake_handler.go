// Intake HTTP handlers.
//
//   - POST /submissions  (service and compliance forms)
//   - POST /contacts     (general contact form)
//
// Both decode a JSON object, run it through the destination's policy, and
// hand the result to the intake service. An Idempotency-Key header makes
// retries return the first submission id instead of inserting again.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bilacert/bilacert-api/internal/http/middleware"
	"github.com/bilacert/bilacert-api/internal/services"
)

const submitMessage = "Form submitted successfully. We will review and contact you soon."

// SubmissionRequest documents the POST /submissions body. The handler decodes
// into a map so required-field checks see absent and null values.
type SubmissionRequest struct {
	FormType    string         `json:"formType" example:"icasa-type-approvals"`
	ServiceID   string         `json:"serviceId,omitempty" example:"icasa-type-approvals"`
	ServiceName string         `json:"serviceName,omitempty" example:"ICASA Type Approvals"`
	FullName    string         `json:"fullName" example:"Jane Doe"`
	Email       string         `json:"email" example:"jane@example.co.za"`
	Phone       string         `json:"phone,omitempty" example:"+27 82 555 1234"`
	Company     string         `json:"company,omitempty" example:"Acme Radio (Pty) Ltd"`
	Industry    string         `json:"industry,omitempty" example:"Telecommunications"`
	Details     map[string]any `json:"details,omitempty"`
}

// ContactRequest documents the POST /contacts body.
type ContactRequest struct {
	Service  string `json:"service,omitempty" example:"NRCS LOA"`
	FullName string `json:"fullName" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@example.co.za"`
	Phone    string `json:"phone,omitempty" example:"+27 82 555 1234"`
	Message  string `json:"message" example:"Please call me about a type approval."`
}

// CreateSubmission godoc
// @ID          createSubmission
// @Summary     Submit a service form
// @Description Validates and stores a service or compliance form. Retries carrying the same Idempotency-Key return the original id.
// @Tags        Intake
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false  "Client retry token"  example(8d0c6f7e-submit-1)
// @Param       body             body    handlers.SubmissionRequest  true  "Form payload"
//
// @Success     201  {object}  handlers.SubmitResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed body or failed validation"
// @Failure     429  {object}  handlers.ErrorResponse  "Rate limited"
// @Failure     500  {object}  handlers.ErrorResponse  "Storage failure"
// @Router      /submissions [post]
func (h *Handlers) CreateSubmission(c *gin.Context) {
	h.submit(c, services.SubmissionPolicy)
}

// CreateContact godoc
// @ID          createContact
// @Summary     Submit the contact form
// @Description Validates and stores a contact message.
// @Tags        Intake
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false  "Client retry token"  example(8d0c6f7e-contact-1)
// @Param       body             body    handlers.ContactRequest  true  "Contact payload"
//
// @Success     201  {object}  handlers.SubmitResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed body or failed validation"
// @Failure     429  {object}  handlers.ErrorResponse  "Rate limited"
// @Failure     500  {object}  handlers.ErrorResponse  "Storage failure"
// @Router      /contacts [post]
func (h *Handlers) CreateContact(c *gin.Context) {
	h.submit(c, services.ContactPolicy)
}

func (h *Handlers) submit(c *gin.Context, p services.Policy) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil || raw == nil {
		if middleware.IsBodyTooLarge(err) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "request body too large")
			return
		}
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "request body must be a JSON object")
		return
	}

	sub, err := services.Validate(p, raw)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			failWith(c, http.StatusBadRequest, ErrorResponse{
				Code:    ErrCodeValidation,
				Error:   ve.Error(),
				Missing: ve.Missing,
				Invalid: ve.Invalid,
			})
			return
		}
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}

	key, _ := middleware.GetIdempotencyKey(c)
	rec, err := h.intake.Submit(c.Request.Context(), sub, key)
	if err != nil {
		var pe *services.PersistenceError
		if errors.As(err, &pe) {
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to submit form: "+pe.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "an unexpected error occurred, please try again")
		return
	}

	if rec.Replayed {
		c.Header("Idempotent-Replay", "true")
	}
	ok(c, http.StatusCreated, SubmitResponse{
		Success:      true,
		Message:      submitMessage,
		SubmissionID: rec.ID,
	})
}
