package entity

// Principal is the resolved per-request identity: the account email plus its
// role set. It is constructed by the identity-resolving middleware after a
// token verifies and the account loads, lives in the request context, and is
// discarded when the request ends.
type Principal struct {
	Email string
	Roles Roles
}

// HasRole reports whether the principal carries the given role.
func (p *Principal) HasRole(role Role) bool {
	if p == nil {
		return false
	}

	return p.Roles.Contains(role)
}

// IsAuthenticated reports whether a principal was resolved for the request.
// A nil principal means the request is anonymous.
func (p *Principal) IsAuthenticated() bool {
	return p != nil && p.Email != ""
}
