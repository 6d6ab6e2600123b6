// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"resumebuilder/internal/domain/entity"
)

// UserResponse is the public shape of an account. Credential material never
// leaves the service.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Roles     []string  `json:"roles"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse carries the issued token alongside the account.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	User        UserResponse `json:"user"`
}

// ResumeResponse is the wire shape of a resume.
type ResumeResponse struct {
	ID             string               `json:"id"`
	OwnerEmail     string               `json:"ownerEmail"`
	Title          string               `json:"title"`
	FullName       string               `json:"fullName"`
	PersonalInfo   *entity.PersonalInfo `json:"personalInfo,omitempty"`
	Experience     []entity.Experience  `json:"experience,omitempty"`
	Education      []entity.Education   `json:"education,omitempty"`
	Projects       []entity.Project     `json:"projects,omitempty"`
	SocialLinks    []entity.SocialLink  `json:"socialLinks,omitempty"`
	Certifications []string             `json:"certifications,omitempty"`
	Languages      []string             `json:"languages,omitempty"`
	Skills         []string             `json:"skills,omitempty"`
	CoverLetter    string               `json:"coverLetter,omitempty"`
	ThemeColor     string               `json:"themeColor,omitempty"`
	ATSScore       *float64             `json:"atsScore,omitempty"`
	ATSFeedback    string               `json:"atsFeedback,omitempty"`
	Status         string               `json:"status"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Roles:     user.Roles.ToStrings(),
		Provider:  user.Provider,
		CreatedAt: user.CreatedAt,
	}
}

func toUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

func toResumeResponse(resume *entity.Resume) ResumeResponse {
	return ResumeResponse{
		ID:             resume.ID.String(),
		OwnerEmail:     resume.OwnerEmail,
		Title:          resume.Title,
		FullName:       resume.FullName,
		PersonalInfo:   resume.PersonalInfo,
		Experience:     resume.Experience,
		Education:      resume.Education,
		Projects:       resume.Projects,
		SocialLinks:    resume.SocialLinks,
		Certifications: resume.Certifications,
		Languages:      resume.Languages,
		Skills:         resume.Skills,
		CoverLetter:    resume.CoverLetter,
		ThemeColor:     resume.ThemeColor,
		ATSScore:       resume.ATSScore,
		ATSFeedback:    resume.ATSFeedback,
		Status:         string(resume.Status),
		CreatedAt:      resume.CreatedAt,
		UpdatedAt:      resume.UpdatedAt,
	}
}

func toResumeResponses(resumes []*entity.Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(resumes))
	for _, resume := range resumes {
		out = append(out, toResumeResponse(resume))
	}

	return out
}
