package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "resumebuilder/internal/delivery/context"
	"resumebuilder/internal/domain/authz"
	"resumebuilder/internal/domain/entity"
	domainerrors "resumebuilder/internal/domain/errors"
	"resumebuilder/internal/domain/repository"
	"resumebuilder/internal/domain/service"
	"resumebuilder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const pdfContentType = "application/pdf"

// resumeService implements the ResumeUsecase interface.
type resumeService struct {
	txManager   repository.TransactionManager
	resumeRepo  repository.ResumeRepository
	pdfRenderer service.PDFRenderer
	emailSender service.EmailSender
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// ResumeServiceParams holds dependencies for resumeService, injected by Fx.
type ResumeServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ResumeRepo  repository.ResumeRepository
	PDFRenderer service.PDFRenderer
	EmailSender service.EmailSender
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewResumeService is the constructor for resumeService.
func NewResumeService(params ResumeServiceParams) usecase.ResumeUsecase {
	return &resumeService{
		txManager:   params.TxManager,
		resumeRepo:  params.ResumeRepo,
		pdfRenderer: params.PDFRenderer,
		emailSender: params.EmailSender,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *resumeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateResume persists a new resume owned by the acting principal.
func (srv *resumeService) CreateResume(ctx context.Context, principal *entity.Principal, input *usecase.ResumeInput) (*entity.Resume, error) {
	if !principal.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("authentication required")
	}

	resume := &entity.Resume{OwnerEmail: principal.Email}
	applyResumeInput(resume, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ResumeRepo().Create(ctx, resume)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create resume", slog.String("owner", principal.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute resume creation transaction")
	}

	srv.log(ctx).Debug("Resume created", slog.Any("resumeID", resume.ID), slog.String("owner", principal.Email))

	return resume, nil
}

// GetMyResumes lists the resumes owned by the acting principal.
func (srv *resumeService) GetMyResumes(ctx context.Context, principal *entity.Principal) ([]*entity.Resume, error) {
	if !principal.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("authentication required")
	}

	resumes, err := srv.resumeRepo.FindByOwner(ctx, principal.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list resumes")
	}

	return resumes, nil
}

// GetResumeByID loads a single resume. Reads by ID carry no ownership check;
// the route policy is the only gate.
func (srv *resumeService) GetResumeByID(ctx context.Context, id uuid.UUID) (*entity.Resume, error) {
	return srv.loadResume(ctx, id)
}

// UpdateResume replaces the editable fields of a resume owned by the principal.
// The owner is never changed.
func (srv *resumeService) UpdateResume(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.ResumeInput) (*entity.Resume, error) {
	var updated *entity.Resume

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resumeRepo := repoFactory.ResumeRepo()

		resume, err := srv.loadResumeWith(ctx, resumeRepo, id)
		if err != nil {
			return err
		}
		if err := authz.AssertOwnership(resume, principal); err != nil {
			return err
		}

		applyResumeInput(resume, input)
		if err := resumeRepo.Update(ctx, resume); err != nil {
			return errors.Wrap(err, "failed to update resume")
		}

		updated = resume

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update resume", slog.Any("resumeID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Resume updated", slog.Any("resumeID", id))

	return updated, nil
}

// DeleteResume removes a resume owned by the principal.
func (srv *resumeService) DeleteResume(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resumeRepo := repoFactory.ResumeRepo()

		resume, err := srv.loadResumeWith(ctx, resumeRepo, id)
		if err != nil {
			return err
		}
		if err := authz.AssertOwnership(resume, principal); err != nil {
			return err
		}

		return resumeRepo.DeleteByID(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete resume", slog.Any("resumeID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Resume deleted", slog.Any("resumeID", id))

	return nil
}

// ExportPDF renders an owned resume as a downloadable PDF.
func (srv *resumeService) ExportPDF(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*usecase.ExportOutput, error) {
	resume, err := srv.loadResume(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.AssertOwnership(resume, principal); err != nil {
		return nil, err
	}

	content, err := srv.pdfRenderer.RenderResume(resume)
	if err != nil {
		srv.log(ctx).Error("Failed to render resume PDF", slog.Any("resumeID", id), slog.Any("error", err))

		return nil, domainerrors.ErrPDFRenderFailed.WrapMessage("failed to render resume")
	}

	return &usecase.ExportOutput{
		Filename:    pdfFilename(resume),
		ContentType: pdfContentType,
		Content:     content,
	}, nil
}

// SendByEmail renders an owned resume and mails it to the recipient as an attachment.
func (srv *resumeService) SendByEmail(ctx context.Context, principal *entity.Principal, input *usecase.SendResumeInput) error {
	resume, err := srv.loadResume(ctx, input.ResumeID)
	if err != nil {
		return err
	}
	if err := authz.AssertOwnership(resume, principal); err != nil {
		return err
	}

	content, err := srv.pdfRenderer.RenderResume(resume)
	if err != nil {
		srv.log(ctx).Error("Failed to render resume PDF for email", slog.Any("resumeID", input.ResumeID), slog.Any("error", err))

		return domainerrors.ErrPDFRenderFailed.WrapMessage("failed to render resume")
	}

	attachment := service.EmailAttachment{
		Filename:    pdfFilename(resume),
		ContentType: pdfContentType,
		Content:     content,
	}

	if err := srv.emailSender.Send(ctx, input.Recipient, input.Subject, buildResumeEmailBody(resume, input.Message), attachment); err != nil {
		srv.log(ctx).Error("Failed to send resume email", slog.Any("resumeID", input.ResumeID), slog.Any("error", err))

		return domainerrors.ErrEmailSendFailed.WrapMessage("failed to send resume email")
	}

	srv.log(ctx).Info("Resume emailed", slog.Any("resumeID", input.ResumeID), slog.String("recipient", input.Recipient))

	return nil
}

// ShareQR produces a QR code PNG for the resume's public share URL.
// Only the owner may mint the code; the link it encodes is open.
func (srv *resumeService) ShareQR(ctx context.Context, principal *entity.Principal, id uuid.UUID) ([]byte, error) {
	resume, err := srv.loadResume(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.AssertOwnership(resume, principal); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateShareQR(id)
	if err != nil {
		srv.log(ctx).Error("Failed to generate share QR code", slog.Any("resumeID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

func (srv *resumeService) loadResume(ctx context.Context, id uuid.UUID) (*entity.Resume, error) {
	return srv.loadResumeWith(ctx, srv.resumeRepo, id)
}

func (srv *resumeService) loadResumeWith(ctx context.Context, resumeRepo repository.ResumeRepository, id uuid.UUID) (*entity.Resume, error) {
	resume, err := resumeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return nil, domainerrors.ErrResumeNotFound.WrapMessage("resume not found")
		}

		return nil, errors.Wrap(err, "failed to load resume")
	}

	return resume, nil
}

// applyResumeInput copies the caller-editable fields onto the entity.
func applyResumeInput(resume *entity.Resume, input *usecase.ResumeInput) {
	resume.Title = input.Title
	resume.FullName = input.FullName
	resume.PersonalInfo = input.PersonalInfo
	resume.Experience = input.Experience
	resume.Education = input.Education
	resume.Projects = input.Projects
	resume.SocialLinks = input.SocialLinks
	resume.Certifications = input.Certifications
	resume.Languages = input.Languages
	resume.Skills = input.Skills
	resume.CoverLetter = input.CoverLetter
	resume.ThemeColor = input.ThemeColor

	status := input.Status
	if status == "" {
		status = entity.ResumeStatusDraft
	}
	resume.Status = status
}

// pdfFilename derives a safe attachment filename from the resume title.
func pdfFilename(resume *entity.Resume) string {
	title := strings.TrimSpace(resume.Title)
	if title == "" {
		title = "resume"
	}
	title = strings.ReplaceAll(title, " ", "_")

	return fmt.Sprintf("%s.pdf", title)
}

func buildResumeEmailBody(resume *entity.Resume, message string) string {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	if message != "" {
		sb.WriteString("<p>")
		sb.WriteString(message)
		sb.WriteString("</p>")
	}
	sb.WriteString(fmt.Sprintf("<p>Please find the resume %q attached.</p>", resume.Title))
	sb.WriteString("</body></html>")

	return sb.String()
}
