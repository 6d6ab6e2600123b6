package postgres

import (
	"context"

	"resumebuilder/internal/domain/entity"
	domainerrors "resumebuilder/internal/domain/errors"
	"resumebuilder/internal/domain/repository"
	"resumebuilder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// resumeRepository implements the domain.ResumeRepository interface using GORM.
type resumeRepository struct {
	db *gorm.DB
}

// NewResumeRepository is the constructor for resumeRepository.
func NewResumeRepository(db *gorm.DB) repository.ResumeRepository {
	return &resumeRepository{db: db}
}

// FindByID retrieves a single resume by its unique ID.
func (repo *resumeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resume, error) {
	var resumeM model.ResumeModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&resumeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResumeNotFound
		}

		return nil, errors.Wrap(err, "failed to find resume by id")
	}

	return toResumeDomain(&resumeM), nil
}

// FindByOwner retrieves every resume belonging to the given owner,
// most recently updated first.
func (repo *resumeRepository) FindByOwner(ctx context.Context, ownerEmail string) ([]*entity.Resume, error) {
	var resumeModels []*model.ResumeModel
	if err := repo.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Order("updated_at DESC").
		Find(&resumeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list resumes by owner")
	}

	resumes := make([]*entity.Resume, 0, len(resumeModels))
	for _, resumeM := range resumeModels {
		resumes = append(resumes, toResumeDomain(resumeM))
	}

	return resumes, nil
}

// Create persists a new resume entity to the database.
func (repo *resumeRepository) Create(ctx context.Context, resume *entity.Resume) error {
	resumeM := fromResumeDomain(resume)

	if err := repo.db.WithContext(ctx).Create(resumeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required resume information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create resume")
	}

	resume.ID = resumeM.ID
	resume.CreatedAt = resumeM.CreatedAt
	resume.UpdatedAt = resumeM.UpdatedAt

	return nil
}

// Update modifies an existing resume. The owner column is never rewritten:
// ownership is fixed at creation.
func (repo *resumeRepository) Update(ctx context.Context, resume *entity.Resume) error {
	resumeM := fromResumeDomain(resume)

	if err := repo.db.WithContext(ctx).
		Omit("owner_email", "created_at").
		Save(resumeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required resume information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to update resume")
	}

	resume.UpdatedAt = resumeM.UpdatedAt

	return nil
}

// DeleteByID removes a resume by its ID.
func (repo *resumeRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ResumeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete resume")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResumeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toResumeDomain converts a GORM ResumeModel to a domain Resume entity.
func toResumeDomain(data *model.ResumeModel) *entity.Resume {
	if data == nil {
		return nil
	}

	return &entity.Resume{
		ID:             data.ID,
		OwnerEmail:     data.OwnerEmail,
		Title:          data.Title,
		FullName:       data.FullName,
		PersonalInfo:   data.PersonalInfo,
		Experience:     data.Experience,
		Education:      data.Education,
		Projects:       data.Projects,
		SocialLinks:    data.SocialLinks,
		Certifications: data.Certifications,
		Languages:      data.Languages,
		Skills:         data.Skills,
		CoverLetter:    data.CoverLetter,
		ThemeColor:     data.ThemeColor,
		ATSScore:       data.ATSScore,
		ATSFeedback:    data.ATSFeedback,
		Status:         entity.ResumeStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromResumeDomain converts a domain Resume entity to a GORM ResumeModel for persistence.
func fromResumeDomain(data *entity.Resume) *model.ResumeModel {
	if data == nil {
		return nil
	}

	return &model.ResumeModel{
		ID:             data.ID,
		OwnerEmail:     data.OwnerEmail,
		Title:          data.Title,
		FullName:       data.FullName,
		PersonalInfo:   data.PersonalInfo,
		Experience:     data.Experience,
		Education:      data.Education,
		Projects:       data.Projects,
		SocialLinks:    data.SocialLinks,
		Certifications: data.Certifications,
		Languages:      data.Languages,
		Skills:         data.Skills,
		CoverLetter:    data.CoverLetter,
		ThemeColor:     data.ThemeColor,
		ATSScore:       data.ATSScore,
		ATSFeedback:    data.ATSFeedback,
		Status:         string(data.Status),
	}
}
