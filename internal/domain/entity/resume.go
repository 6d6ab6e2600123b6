package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResumeStatus is the lifecycle state of a resume document.
type ResumeStatus string

const (
	// ResumeStatusDraft marks a resume still being edited.
	ResumeStatusDraft ResumeStatus = "DRAFT"
	// ResumeStatusPublished marks a resume whose owner shared it.
	ResumeStatusPublished ResumeStatus = "PUBLISHED"
)

// Resume is an owned resource. OwnerEmail is set once at creation from the
// authenticated principal and is never changed by updates; every mutating or
// exporting operation compares it against the current principal.
type Resume struct {
	ID         uuid.UUID
	OwnerEmail string // Account email of the owner, exact-match compared.
	Title      string
	FullName   string

	PersonalInfo   *PersonalInfo
	Experience     []Experience
	Education      []Education
	Projects       []Project
	SocialLinks    []SocialLink
	Certifications []string
	Languages      []string
	Skills         []string
	CoverLetter    string
	ThemeColor     string

	ATSScore    *float64
	ATSFeedback string
	Status      ResumeStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Owner returns the owning account email, satisfying authz.Owned.
func (r *Resume) Owner() string {
	return r.OwnerEmail
}

// PersonalInfo is the contact header of a resume.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	JobTitle string `json:"jobTitle"`
	Summary  string `json:"summary"`
}

// Experience is a single work-history entry.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Current     bool   `json:"current"`
}

// Education is a single education-history entry.
type Education struct {
	ID          string `json:"id"`
	School      string `json:"school"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Project is a showcased project entry.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Tech        string `json:"tech"`
}

// SocialLink is a labelled external profile URL.
type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}
