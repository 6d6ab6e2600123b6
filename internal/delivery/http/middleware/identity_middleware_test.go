package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "resumebuilder/internal/delivery/context"
	"resumebuilder/internal/domain/entity"
	"resumebuilder/internal/domain/repository"
	"resumebuilder/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(subject string) (string, error) {
	args := m.Called(subject)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(raw string) (*service.Claims, error) {
	args := m.Called(raw)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func resolveIdentity(t *testing.T, tokenSvc service.TokenService, userRepo repository.UserRepository, authHeader string) *entity.Principal {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/resumes", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewIdentityMiddleware(tokenSvc, userRepo, logger)

	var resolved *entity.Principal
	handler := m.Resolve(func(c echo.Context) error {
		resolved = deliverycontext.GetPrincipal(c)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	return resolved
}

func TestIdentityMiddleware_ValidTokenResolvesPrincipal(t *testing.T) {
	tokenSvc := new(mockTokenService)
	userRepo := new(mockUserRepository)

	tokenSvc.On("Verify", "good-token").Return(&service.Claims{Subject: "alice@example.com"}, nil)
	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(&entity.User{
		Email: "alice@example.com",
		Roles: entity.Roles{entity.RoleUser},
	}, nil)

	principal := resolveIdentity(t, tokenSvc, userRepo, "Bearer good-token")
	require.NotNil(t, principal)
	assert.Equal(t, "alice@example.com", principal.Email)
	assert.True(t, principal.HasRole(entity.RoleUser))
}

func TestIdentityMiddleware_MissingHeaderStaysAnonymous(t *testing.T) {
	tokenSvc := new(mockTokenService)
	userRepo := new(mockUserRepository)

	principal := resolveIdentity(t, tokenSvc, userRepo, "")
	assert.Nil(t, principal)
	tokenSvc.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestIdentityMiddleware_NonBearerSchemeStaysAnonymous(t *testing.T) {
	tokenSvc := new(mockTokenService)
	userRepo := new(mockUserRepository)

	principal := resolveIdentity(t, tokenSvc, userRepo, "Basic dXNlcjpwYXNz")
	assert.Nil(t, principal)
	tokenSvc.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestIdentityMiddleware_InvalidTokenStaysAnonymous(t *testing.T) {
	tokenSvc := new(mockTokenService)
	userRepo := new(mockUserRepository)

	tokenSvc.On("Verify", "bad-token").Return(nil, service.ErrTokenSignatureInvalid)

	// The request proceeds; the access policy decides whether anonymity is acceptable.
	principal := resolveIdentity(t, tokenSvc, userRepo, "Bearer bad-token")
	assert.Nil(t, principal)
	userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestIdentityMiddleware_ExpiredTokenStaysAnonymous(t *testing.T) {
	tokenSvc := new(mockTokenService)
	userRepo := new(mockUserRepository)

	tokenSvc.On("Verify", "stale-token").Return(nil, service.ErrTokenExpired)

	principal := resolveIdentity(t, tokenSvc, userRepo, "Bearer stale-token")
	assert.Nil(t, principal)
}

func TestIdentityMiddleware_UnknownSubjectStaysAnonymous(t *testing.T) {
	tokenSvc := new(mockTokenService)
	userRepo := new(mockUserRepository)

	tokenSvc.On("Verify", "orphan-token").Return(&service.Claims{Subject: "ghost@example.com"}, nil)
	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	principal := resolveIdentity(t, tokenSvc, userRepo, "Bearer orphan-token")
	assert.Nil(t, principal)
}
