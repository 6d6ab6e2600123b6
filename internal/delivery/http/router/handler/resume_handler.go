package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "resumebuilder/internal/delivery/context"
	"resumebuilder/internal/delivery/http/response"
	"resumebuilder/internal/domain/entity"
	"resumebuilder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ResumeHandler holds dependencies for resume CRUD handlers.
type ResumeHandler struct {
	uc     usecase.ResumeUsecase
	logger *slog.Logger
}

// NewResumeHandler is the constructor for ResumeHandler, injected by Fx.
func NewResumeHandler(uc usecase.ResumeUsecase, logger *slog.Logger) *ResumeHandler {
	return &ResumeHandler{uc: uc, logger: logger}
}

type resumeRequest struct {
	Title          string               `json:"title" validate:"required"`
	FullName       string               `json:"fullName"`
	PersonalInfo   *entity.PersonalInfo `json:"personalInfo"`
	Experience     []entity.Experience  `json:"experience"`
	Education      []entity.Education   `json:"education"`
	Projects       []entity.Project     `json:"projects"`
	SocialLinks    []entity.SocialLink  `json:"socialLinks"`
	Certifications []string             `json:"certifications"`
	Languages      []string             `json:"languages"`
	Skills         []string             `json:"skills"`
	CoverLetter    string               `json:"coverLetter"`
	ThemeColor     string               `json:"themeColor"`
	Status         string               `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED"`
}

func (req *resumeRequest) toInput() *usecase.ResumeInput {
	return &usecase.ResumeInput{
		Title:          req.Title,
		FullName:       req.FullName,
		PersonalInfo:   req.PersonalInfo,
		Experience:     req.Experience,
		Education:      req.Education,
		Projects:       req.Projects,
		SocialLinks:    req.SocialLinks,
		Certifications: req.Certifications,
		Languages:      req.Languages,
		Skills:         req.Skills,
		CoverLetter:    req.CoverLetter,
		ThemeColor:     req.ThemeColor,
		Status:         entity.ResumeStatus(req.Status),
	}
}

// resumeIDParam parses the :id path parameter.
func resumeIDParam(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// Create handles resume creation for the acting principal.
func (h *ResumeHandler) Create(c echo.Context) error {
	var req resumeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resume input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resume, err := h.uc.CreateResume(c.Request().Context(), deliverycontext.GetPrincipal(c), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toResumeResponse(resume), "Resume created successfully")
}

// GetMine lists the resumes owned by the acting principal.
func (h *ResumeHandler) GetMine(c echo.Context) error {
	resumes, err := h.uc.GetMyResumes(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toResumeResponses(resumes), "Resumes retrieved successfully")
}

// GetByID returns a single resume by its ID.
func (h *ResumeHandler) GetByID(c echo.Context) error {
	id, ok := resumeIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid resume id")
	}

	resume, err := h.uc.GetResumeByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toResumeResponse(resume), "Resume retrieved successfully")
}

// Update replaces the editable fields of an owned resume.
func (h *ResumeHandler) Update(c echo.Context) error {
	id, ok := resumeIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid resume id")
	}

	var req resumeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resume input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resume, err := h.uc.UpdateResume(c.Request().Context(), deliverycontext.GetPrincipal(c), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toResumeResponse(resume), "Resume updated successfully")
}

// Delete removes an owned resume.
func (h *ResumeHandler) Delete(c echo.Context) error {
	id, ok := resumeIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid resume id")
	}

	if err := h.uc.DeleteResume(c.Request().Context(), deliverycontext.GetPrincipal(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Resume deleted successfully")
}

// ShareQR returns a PNG QR code for the resume's public share URL.
func (h *ResumeHandler) ShareQR(c echo.Context) error {
	id, ok := resumeIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid resume id")
	}

	png, err := h.uc.ShareQR(c.Request().Context(), deliverycontext.GetPrincipal(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
