package usecase

import (
	"context"

	"resumebuilder/internal/domain/entity"

	"github.com/google/uuid"
)

// ResumeInput carries the caller-editable fields of a resume. The owner is
// never part of the input: it is derived from the authenticated principal at
// creation and immutable afterwards.
type ResumeInput struct {
	Title          string
	FullName       string
	PersonalInfo   *entity.PersonalInfo
	Experience     []entity.Experience
	Education      []entity.Education
	Projects       []entity.Project
	SocialLinks    []entity.SocialLink
	Certifications []string
	Languages      []string
	Skills         []string
	CoverLetter    string
	ThemeColor     string
	Status         entity.ResumeStatus
}

// SendResumeInput defines the data required to email a resume as a PDF attachment.
type SendResumeInput struct {
	ResumeID  uuid.UUID
	Recipient string
	Subject   string
	Message   string
}

// ExportOutput returns a rendered document ready for download.
type ExportOutput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ResumeUsecase defines the interface for resume business operations.
// Mutating and exporting operations verify that the acting principal owns
// the resume; reads by ID are open.
type ResumeUsecase interface {
	CreateResume(ctx context.Context, principal *entity.Principal, input *ResumeInput) (*entity.Resume, error)
	GetMyResumes(ctx context.Context, principal *entity.Principal) ([]*entity.Resume, error)
	GetResumeByID(ctx context.Context, id uuid.UUID) (*entity.Resume, error)
	UpdateResume(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *ResumeInput) (*entity.Resume, error)
	DeleteResume(ctx context.Context, principal *entity.Principal, id uuid.UUID) error

	// ExportPDF renders the resume as a PDF for download. Owner only.
	ExportPDF(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*ExportOutput, error)

	// SendByEmail renders the resume and mails it to the recipient. Owner only.
	SendByEmail(ctx context.Context, principal *entity.Principal, input *SendResumeInput) error

	// ShareQR produces a PNG QR code pointing at the public share URL of the resume. Owner only.
	ShareQR(ctx context.Context, principal *entity.Principal, id uuid.UUID) ([]byte, error)
}
