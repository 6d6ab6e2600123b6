package repository

import (
	"context"
	"errors"

	"resumebuilder/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrResumeNotFound is a domain-specific error returned when a resume is not found.
var ErrResumeNotFound = errors.New("resume not found")

// ResumeRepository defines the standard operations for resume persistence.
type ResumeRepository interface {
	// FindByID retrieves a single resume by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Resume, error)

	// FindByOwner retrieves all resumes owned by the given account email,
	// most recently updated first.
	FindByOwner(ctx context.Context, ownerEmail string) ([]*entity.Resume, error)

	// Create persists a new resume.
	Create(ctx context.Context, resume *entity.Resume) error

	// Update modifies an existing resume. The owner email is never changed.
	Update(ctx context.Context, resume *entity.Resume) error

	// DeleteByID removes a resume by its unique ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
