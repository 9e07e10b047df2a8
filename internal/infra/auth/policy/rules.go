package policy

import (
	"net/http"

	"researchtracker/internal/domain"
)

var anyRole = []domain.Role{domain.RoleAdmin, domain.RolePI, domain.RoleMember, domain.RoleViewer}

// Default is the access rule table for the tracker API. Role sets mirror the
// declared policy exactly; there is no role hierarchy, so ADMIN holds only the
// routes that list it.
func Default() *Policy {
	p, err := New([]Rule{
		{Pattern: "/api/auth/**"},
		{Pattern: "/error"},
		{Pattern: "/healthz"},

		{Pattern: "/api/admin/**", Roles: []domain.Role{domain.RoleAdmin}},
		{Pattern: "/api/users/**", Roles: []domain.Role{domain.RoleAdmin}},

		{Pattern: "/api/projects/**", Roles: anyRole},
		{Pattern: "/api/projects", Methods: []string{http.MethodPost}, Roles: []domain.Role{domain.RoleAdmin, domain.RolePI}},
		{Pattern: "/api/projects/*", Methods: []string{http.MethodPut}, Roles: []domain.Role{domain.RoleAdmin, domain.RolePI}},
		{Pattern: "/api/projects/*", Methods: []string{http.MethodDelete}, Roles: []domain.Role{domain.RoleAdmin}},
		{Pattern: "/api/projects/*/status", Methods: []string{http.MethodPatch}, Roles: []domain.Role{domain.RoleAdmin, domain.RolePI}},
		{Pattern: "/api/projects/*/milestones", Methods: []string{http.MethodPost}, Roles: []domain.Role{domain.RoleAdmin, domain.RolePI, domain.RoleMember}},
		{Pattern: "/api/projects/*/documents", Methods: []string{http.MethodPost}, Roles: []domain.Role{domain.RoleAdmin, domain.RolePI, domain.RoleMember}},

		{Pattern: "/api/milestones/**", Roles: []domain.Role{domain.RoleAdmin, domain.RolePI, domain.RoleMember}},
		{Pattern: "/api/documents/**", Roles: []domain.Role{domain.RoleAdmin, domain.RolePI, domain.RoleMember}},
		{Pattern: "/api/documents/*", Methods: []string{http.MethodDelete}, Roles: []domain.Role{domain.RoleAdmin, domain.RolePI}},
	})
	if err != nil {
		panic(err)
	}
	return p
}
