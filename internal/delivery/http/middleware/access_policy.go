package middleware

import (
	"net/http"
	"strings"

	deliverycontext "resumebuilder/internal/delivery/context"
	"resumebuilder/internal/delivery/http/response"
	"resumebuilder/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Requirement classifies what a route demands from the caller.
type Requirement int

const (
	// RequirePublic allows anonymous access.
	RequirePublic Requirement = iota

	// RequireAuthenticated allows any resolved principal.
	RequireAuthenticated

	// RequireRole allows only principals holding the rule's role.
	RequireRole
)

// Rule binds a path pattern to a requirement. A pattern ending in "/" matches
// as a prefix, anything else matches exactly.
type Rule struct {
	Pattern     string
	Requirement Requirement
	Role        entity.Role
}

// AccessPolicy evaluates an ordered rule table against the request path.
// The first matching rule wins; a request matching no rule must be
// authenticated. The policy only consumes the principal the identity
// middleware resolved, it never inspects tokens itself.
type AccessPolicy struct {
	rules []Rule
}

// DefaultRules is the route table for the API surface: registration, login,
// health and docs are open; the admin area needs the admin role; everything
// else needs a logged-in account.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: "/api/auth/register", Requirement: RequirePublic},
		{Pattern: "/api/auth/login", Requirement: RequirePublic},
		{Pattern: "/api/auth/oauth/", Requirement: RequirePublic},
		{Pattern: "/health", Requirement: RequirePublic},
		{Pattern: "/api/docs", Requirement: RequirePublic},
		{Pattern: "/api/admin/", Requirement: RequireRole, Role: entity.RoleAdmin},
	}
}

// NewAccessPolicy builds a policy from an ordered rule table.
func NewAccessPolicy(rules []Rule) *AccessPolicy {
	return &AccessPolicy{rules: rules}
}

// Enforce is the echo middleware applying the policy.
func (p *AccessPolicy) Enforce(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requirement, role := p.resolve(c.Request().URL.Path)
		if requirement == RequirePublic {
			return next(c)
		}

		principal := deliverycontext.GetPrincipal(c)
		if !principal.IsAuthenticated() {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", "")
		}

		if requirement == RequireRole && !principal.HasRole(role) {
			return response.Error(c, http.StatusForbidden, "FORBIDDEN", "insufficient role", "")
		}

		return next(c)
	}
}

// resolve walks the table in order and returns the first match,
// defaulting to authenticated access.
func (p *AccessPolicy) resolve(path string) (Requirement, entity.Role) {
	for _, rule := range p.rules {
		if matchRule(rule.Pattern, path) {
			return rule.Requirement, rule.Role
		}
	}

	return RequireAuthenticated, ""
}

func matchRule(pattern, path string) bool {
	if strings.HasSuffix(pattern, "/") {
		return strings.HasPrefix(path, pattern)
	}

	return path == pattern
}
