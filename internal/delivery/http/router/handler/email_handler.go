package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "resumebuilder/internal/delivery/context"
	"resumebuilder/internal/delivery/http/response"
	"resumebuilder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EmailHandler serves resume email delivery.
type EmailHandler struct {
	uc     usecase.ResumeUsecase
	logger *slog.Logger
}

// NewEmailHandler is the constructor for EmailHandler, injected by Fx.
func NewEmailHandler(uc usecase.ResumeUsecase, logger *slog.Logger) *EmailHandler {
	return &EmailHandler{uc: uc, logger: logger}
}

type sendResumeRequest struct {
	ResumeID  string `json:"resumeId" validate:"required,uuid"`
	Recipient string `json:"recipient" validate:"required,email"`
	Subject   string `json:"subject" validate:"required"`
	Message   string `json:"message"`
}

// SendResume mails an owned resume as a PDF attachment.
func (h *EmailHandler) SendResume(c echo.Context) error {
	var req sendResumeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid send resume input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid resume id")
	}

	if err := h.uc.SendByEmail(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.SendResumeInput{
		ResumeID:  resumeID,
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Message:   req.Message,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"recipient": req.Recipient}, "Resume sent successfully")
}
