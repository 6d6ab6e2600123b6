package model

import (
	"time"

	"github.com/google/uuid"

	"resumebuilder/internal/domain/entity"
)

// ResumeModel mirrors the 'resumes' table. The structured sections are stored
// as jsonb columns; OwnerEmail is written once at creation and indexed for
// the per-owner listing query.
type ResumeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerEmail string    `gorm:"type:varchar(255);not null;index"`
	Title      string    `gorm:"type:varchar(255)"`
	FullName   string    `gorm:"type:varchar(100)"`

	PersonalInfo   *entity.PersonalInfo `gorm:"type:jsonb;serializer:json"`
	Experience     []entity.Experience  `gorm:"type:jsonb;serializer:json"`
	Education      []entity.Education   `gorm:"type:jsonb;serializer:json"`
	Projects       []entity.Project     `gorm:"type:jsonb;serializer:json"`
	SocialLinks    []entity.SocialLink  `gorm:"type:jsonb;serializer:json"`
	Certifications []string             `gorm:"type:jsonb;serializer:json"`
	Languages      []string             `gorm:"type:jsonb;serializer:json"`
	Skills         []string             `gorm:"type:jsonb;serializer:json"`
	CoverLetter    string               `gorm:"type:text"`
	ThemeColor     string               `gorm:"type:varchar(20)"`

	ATSScore    *float64 `gorm:"column:ats_score"`
	ATSFeedback string   `gorm:"column:ats_feedback;type:text"`
	Status      string   `gorm:"type:varchar(20);not null;default:DRAFT"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResumeModel) TableName() string {
	return "resumes"
}
