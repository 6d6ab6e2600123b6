package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "resumebuilder/internal/delivery/context"
	"resumebuilder/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runPolicy(t *testing.T, path string, principal *entity.Principal) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		deliverycontext.SetPrincipal(c, principal)
	}

	policy := NewAccessPolicy(DefaultRules())
	handler := policy.Enforce(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))

	return rec
}

func userPrincipal() *entity.Principal {
	return &entity.Principal{Email: "alice@example.com", Roles: entity.Roles{entity.RoleUser}}
}

func adminPrincipal() *entity.Principal {
	return &entity.Principal{Email: "root@example.com", Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}
}

func TestAccessPolicy_PublicRoutesAllowAnonymous(t *testing.T) {
	for _, path := range []string{"/api/auth/register", "/api/auth/login", "/health", "/api/docs"} {
		rec := runPolicy(t, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestAccessPolicy_DefaultRequiresAuthentication(t *testing.T) {
	rec := runPolicy(t, "/api/resumes", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAccessPolicy_DefaultAllowsAuthenticated(t *testing.T) {
	rec := runPolicy(t, "/api/resumes", userPrincipal())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccessPolicy_AdminAreaRejectsPlainUser(t *testing.T) {
	rec := runPolicy(t, "/api/admin/users", userPrincipal())
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestAccessPolicy_AdminAreaRejectsAnonymousWith401(t *testing.T) {
	// Anonymous callers get 401 before any role check happens.
	rec := runPolicy(t, "/api/admin/users", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccessPolicy_AdminAreaAllowsAdmin(t *testing.T) {
	rec := runPolicy(t, "/api/admin/users", adminPrincipal())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccessPolicy_FirstMatchWins(t *testing.T) {
	policy := NewAccessPolicy([]Rule{
		{Pattern: "/api/things/special", Requirement: RequirePublic},
		{Pattern: "/api/things/", Requirement: RequireRole, Role: entity.RoleAdmin},
	})

	requirement, _ := policy.resolve("/api/things/special")
	assert.Equal(t, RequirePublic, requirement)

	requirement, role := policy.resolve("/api/things/other")
	assert.Equal(t, RequireRole, requirement)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestAccessPolicy_ExactPatternDoesNotMatchPrefix(t *testing.T) {
	// "/health" is exact: "/healthz" falls through to the default.
	requirement, _ := NewAccessPolicy(DefaultRules()).resolve("/healthz")
	assert.Equal(t, RequireAuthenticated, requirement)
}
