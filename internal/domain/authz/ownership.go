// Package authz holds the fine-grained authorization checks applied by
// business operations after the route-level policy has already passed.
package authz

import (
	"resumebuilder/internal/domain/entity"
	domainerrors "resumebuilder/internal/domain/errors"
)

// Owned is a persisted record with a single designated owning identity.
type Owned interface {
	// Owner returns the account email the resource belongs to.
	Owner() string
}

// AssertOwnership fails with a forbidden error unless the resource's owner
// matches the principal's email. The comparison is exact: the owner string is
// stored verbatim from the principal that created the resource, which itself
// derives from the verified token subject, so no case-folding is applied.
func AssertOwnership(resource Owned, principal *entity.Principal) error {
	if !principal.IsAuthenticated() {
		return domainerrors.ErrUnauthorized.WrapMessage("ownership check requires an authenticated principal")
	}

	if resource.Owner() != principal.Email {
		return domainerrors.ErrForbidden.WrapMessage("resource is owned by another account")
	}

	return nil
}
