package domain

import (
	"context"
	"fmt"
)

// Role is the closed set of roles a principal can hold. Unknown role values
// are rejected when the principal is resolved, not at policy evaluation time.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RolePI     Role = "PI"
	RoleMember Role = "MEMBER"
	RoleViewer Role = "VIEWER"
)

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RolePI, RoleMember, RoleViewer:
		return Role(value), nil
	}
	return "", fmt.Errorf("unknown role %q: %w", value, ErrInvalidArgument)
}

// Principal is the identity resolved for one request. It is re-resolved from
// the bearer token on every request and never cached across requests.
type Principal struct {
	Subject  string
	Username string
	FullName string
	Role     Role
}

// PrincipalStore resolves the current identity for a token subject.
// LoadBySubject returns ErrNotFound when the user no longer exists; any other
// error means the backing store is unavailable and must not be reported as an
// authentication failure.
type PrincipalStore interface {
	LoadBySubject(ctx context.Context, subjectID string) (Principal, error)
}
