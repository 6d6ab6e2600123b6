// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"resumebuilder/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new local account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// OAuthLoginInput carries the identity asserted by an external provider
// after it has completed its own verification.
type OAuthLoginInput struct {
	Email          string
	Name           string
	Provider       string
	ProviderUserID string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a local account with a hashed password and default role.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies local credentials and issues an access token.
	// Unknown email and wrong password produce the same error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ProcessOAuthLogin provisions or updates an account for an externally
	// verified identity and issues an access token.
	ProcessOAuthLogin(ctx context.Context, input *OAuthLoginInput) (*LoginOutput, error)

	// GetCurrentUser loads the full account for an authenticated principal's email.
	GetCurrentUser(ctx context.Context, email string) (*entity.User, error)

	// ListUsers returns every registered account. Admin only at the route level.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
