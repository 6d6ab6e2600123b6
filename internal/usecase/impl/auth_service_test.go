package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"resumebuilder/internal/domain/entity"
	domainerrors "resumebuilder/internal/domain/errors"
	"resumebuilder/internal/domain/repository"
	"resumebuilder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthServiceForTest(userRepo *MockUserRepository, hasher *MockPasswordHasher, tokenService *MockTokenService) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		TxManager:    newFakeTxManager(userRepo, nil),
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       discardLogger(),
	})
}

func TestAuthService_Register_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokenService := new(MockTokenService)
	service := newAuthServiceForTest(userRepo, hasher, tokenService)

	ctx := context.Background()

	hasher.On("Hash", "s3cret-pass").Return("$2a$10$hash", nil)
	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		user := args.Get(1).(*entity.User)
		user.ID = uuid.New()
	}).Return(nil)

	out, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "  Alice@Example.COM ",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "alice@example.com", out.User.Email)
	assert.Equal(t, "$2a$10$hash", out.User.PasswordHash)
	assert.Equal(t, entity.ProviderLocal, out.User.Provider)
	assert.True(t, out.User.Roles.Contains(entity.RoleUser))
	assert.NotEqual(t, uuid.Nil, out.User.ID)

	userRepo.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokenService := new(MockTokenService)
	service := newAuthServiceForTest(userRepo, hasher, tokenService)

	ctx := context.Background()

	hasher.On("Hash", "s3cret-pass").Return("$2a$10$hash", nil)
	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(&entity.User{Email: "alice@example.com"}, nil)

	out, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokenService := new(MockTokenService)
	service := newAuthServiceForTest(userRepo, hasher, tokenService)

	hasher.On("Hash", "s3cret-pass").Return("", errors.New("bcrypt failure"))

	out, err := service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokenService := new(MockTokenService)
	service := newAuthServiceForTest(userRepo, hasher, tokenService)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		Roles:        entity.Roles{entity.RoleUser},
		Provider:     entity.ProviderLocal,
	}

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	hasher.On("Check", "s3cret-pass", "$2a$10$hash").Return(true)
	tokenService.On("Issue", "alice@example.com").Return("signed-token", nil)

	out, err := service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	ctx := context.Background()

	// Unknown email.
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokenService := new(MockTokenService)
	service := newAuthServiceForTest(userRepo, hasher, tokenService)

	userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, unknownErr := service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, unknownErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))

	// Wrong password for an existing account.
	userRepo = new(MockUserRepository)
	hasher = new(MockPasswordHasher)
	service = newAuthServiceForTest(userRepo, hasher, tokenService)

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(&entity.User{
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
	}, nil)
	hasher.On("Check", "wrong-pass", "$2a$10$hash").Return(false)

	_, wrongErr := service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong-pass"})
	require.Error(t, wrongErr)
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))

	tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthService_Login_ExternalAccountWithoutPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokenService := new(MockTokenService)
	service := newAuthServiceForTest(userRepo, hasher, tokenService)

	ctx := context.Background()
	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(&entity.User{
		Email:    "alice@example.com",
		Provider: "google",
	}, nil)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "anything"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestAuthService_ProcessOAuthLogin_NewAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokenService := new(MockTokenService)
	service := newAuthServiceForTest(userRepo, hasher, tokenService)

	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "bob@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		user := args.Get(1).(*entity.User)
		user.ID = uuid.New()
	}).Return(nil)
	tokenService.On("Issue", "bob@example.com").Return("signed-token", nil)

	out, err := service.ProcessOAuthLogin(ctx, &usecase.OAuthLoginInput{
		Email:          "bob@example.com",
		Name:           "Bob",
		Provider:       "google",
		ProviderUserID: "google-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, "google", out.User.Provider)
	assert.Equal(t, "google-123", out.User.ProviderUserID)
	assert.True(t, out.User.Roles.Contains(entity.RoleUser))
}

func TestAuthService_ProcessOAuthLogin_RebindsLocalAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokenService := new(MockTokenService)
	service := newAuthServiceForTest(userRepo, hasher, tokenService)

	ctx := context.Background()
	existing := &entity.User{
		ID:       uuid.New(),
		Email:    "bob@example.com",
		Name:     "Bob",
		Provider: entity.ProviderLocal,
	}

	userRepo.On("FindByEmail", ctx, "bob@example.com").Return(existing, nil)
	userRepo.On("Update", ctx, existing).Return(nil)
	tokenService.On("Issue", "bob@example.com").Return("signed-token", nil)

	out, err := service.ProcessOAuthLogin(ctx, &usecase.OAuthLoginInput{
		Email:          "bob@example.com",
		Name:           "Robert",
		Provider:       "github",
		ProviderUserID: "gh-42",
	})
	require.NoError(t, err)
	assert.Equal(t, "github", out.User.Provider)
	assert.Equal(t, "gh-42", out.User.ProviderUserID)
	// An existing display name is not overwritten by the provider's.
	assert.Equal(t, "Bob", out.User.Name)
}

func TestAuthService_ProcessOAuthLogin_KeepsExternalBinding(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokenService := new(MockTokenService)
	service := newAuthServiceForTest(userRepo, hasher, tokenService)

	ctx := context.Background()
	existing := &entity.User{
		ID:             uuid.New(),
		Email:          "carol@example.com",
		Name:           "Carol",
		Provider:       "google",
		ProviderUserID: "google-123",
	}

	userRepo.On("FindByEmail", ctx, "carol@example.com").Return(existing, nil)
	tokenService.On("Issue", "carol@example.com").Return("signed-token", nil)

	out, err := service.ProcessOAuthLogin(ctx, &usecase.OAuthLoginInput{
		Email:          "carol@example.com",
		Name:           "Carol G",
		Provider:       "github",
		ProviderUserID: "gh-99",
	})
	require.NoError(t, err)
	// An account already linked to an external provider keeps its
	// binding; the later assertion still yields a session token.
	assert.Equal(t, "google", out.User.Provider)
	assert.Equal(t, "google-123", out.User.ProviderUserID)
	assert.Equal(t, "signed-token", out.AccessToken)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAuthService_GetCurrentUser_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokenService := new(MockTokenService)
	service := newAuthServiceForTest(userRepo, hasher, tokenService)

	ctx := context.Background()
	userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	user, err := service.GetCurrentUser(ctx, "ghost@example.com")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_ListUsers(t *testing.T) {
	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokenService := new(MockTokenService)
	service := newAuthServiceForTest(userRepo, hasher, tokenService)

	ctx := context.Background()
	expected := []*entity.User{
		{ID: uuid.New(), Email: "alice@example.com"},
		{ID: uuid.New(), Email: "bob@example.com"},
	}
	userRepo.On("FindAll", ctx).Return(expected, nil)

	users, err := service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, users)
}
