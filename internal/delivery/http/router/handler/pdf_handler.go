package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "resumebuilder/internal/delivery/context"
	"resumebuilder/internal/delivery/http/response"
	"resumebuilder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PDFHandler serves resume PDF downloads.
type PDFHandler struct {
	uc     usecase.ResumeUsecase
	logger *slog.Logger
}

// NewPDFHandler is the constructor for PDFHandler, injected by Fx.
func NewPDFHandler(uc usecase.ResumeUsecase, logger *slog.Logger) *PDFHandler {
	return &PDFHandler{uc: uc, logger: logger}
}

// Export renders an owned resume and returns it as an attachment.
func (h *PDFHandler) Export(c echo.Context) error {
	id, ok := resumeIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid resume id")
	}

	out, err := h.uc.ExportPDF(c.Request().Context(), deliverycontext.GetPrincipal(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.Filename))

	return c.Blob(http.StatusOK, out.ContentType, out.Content)
}
