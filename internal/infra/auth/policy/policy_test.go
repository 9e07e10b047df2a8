package policy

import (
	"net/http"
	"testing"

	"researchtracker/internal/domain"
)

func principal(role domain.Role) *domain.Principal {
	return &domain.Principal{Subject: "user-1", Username: "alice", Role: role}
}

func TestEvaluateDefaultTable(t *testing.T) {
	p := Default()

	cases := []struct {
		name      string
		method    string
		path      string
		principal *domain.Principal
		want      Decision
	}{
		{"login is public", http.MethodPost, "/api/auth/login", nil, Allow},
		{"register is public", http.MethodPost, "/api/auth/register", nil, Allow},
		{"error page is public", http.MethodGet, "/error", nil, Allow},
		{"preflight bypasses everything", http.MethodOptions, "/api/admin/users", nil, Allow},
		{"preflight with credentials", http.MethodOptions, "/api/projects", principal(domain.RoleViewer), Allow},

		{"admin route as member", http.MethodGet, "/api/admin/anything", principal(domain.RoleMember), Forbidden},
		{"admin route as admin", http.MethodGet, "/api/admin/anything", principal(domain.RoleAdmin), Allow},
		{"admin route unauthenticated", http.MethodGet, "/api/admin/anything", nil, Unauthenticated},

		{"projects list requires auth", http.MethodGet, "/api/projects", nil, Unauthenticated},
		{"projects list as viewer", http.MethodGet, "/api/projects", principal(domain.RoleViewer), Allow},
		{"projects list as pi", http.MethodGet, "/api/projects", principal(domain.RolePI), Allow},
		{"project create as viewer", http.MethodPost, "/api/projects", principal(domain.RoleViewer), Forbidden},
		{"project create as pi", http.MethodPost, "/api/projects", principal(domain.RolePI), Allow},
		{"project update as member", http.MethodPut, "/api/projects/42", principal(domain.RoleMember), Forbidden},
		{"project delete as pi", http.MethodDelete, "/api/projects/42", principal(domain.RolePI), Forbidden},
		{"project delete as admin", http.MethodDelete, "/api/projects/42", principal(domain.RoleAdmin), Allow},
		{"project status as pi", http.MethodPatch, "/api/projects/42/status", principal(domain.RolePI), Allow},
		{"project status as viewer", http.MethodPatch, "/api/projects/42/status", principal(domain.RoleViewer), Forbidden},

		{"milestones as viewer", http.MethodPut, "/api/milestones/7", principal(domain.RoleViewer), Forbidden},
		{"milestones as member", http.MethodPut, "/api/milestones/7", principal(domain.RoleMember), Allow},
		{"milestone create under project as member", http.MethodPost, "/api/projects/42/milestones", principal(domain.RoleMember), Allow},
		{"milestone list under project as viewer", http.MethodGet, "/api/projects/42/milestones", principal(domain.RoleViewer), Allow},

		{"document delete as member", http.MethodDelete, "/api/documents/9", principal(domain.RoleMember), Forbidden},
		{"document delete as pi", http.MethodDelete, "/api/documents/9", principal(domain.RolePI), Allow},

		{"users route as viewer", http.MethodGet, "/api/users/42", principal(domain.RoleViewer), Forbidden},
		{"users route as admin", http.MethodGet, "/api/users/42", principal(domain.RoleAdmin), Allow},

		{"unlisted route requires auth", http.MethodGet, "/api/reports", nil, Unauthenticated},
		{"unlisted route any role", http.MethodGet, "/api/reports", principal(domain.RoleViewer), Allow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Evaluate(tc.method, tc.path, tc.principal)
			if got != tc.want {
				t.Fatalf("Evaluate(%s %s) = %v, want %v", tc.method, tc.path, got, tc.want)
			}
		})
	}
}

func TestEvaluateNoRoleHierarchy(t *testing.T) {
	p, err := New([]Rule{
		{Pattern: "/api/pi-only/**", Roles: []domain.Role{domain.RolePI}},
	})
	if err != nil {
		t.Fatalf("new policy: %v", err)
	}
	if got := p.Evaluate(http.MethodGet, "/api/pi-only/x", principal(domain.RoleAdmin)); got != Forbidden {
		t.Fatalf("ADMIN must not implicitly gain PI-only routes, got %v", got)
	}
	if got := p.Evaluate(http.MethodGet, "/api/pi-only/x", principal(domain.RolePI)); got != Allow {
		t.Fatalf("PI should be allowed, got %v", got)
	}
}

func TestEvaluateSpecificity(t *testing.T) {
	p, err := New([]Rule{
		{Pattern: "/api/things/**", Roles: anyRole},
		{Pattern: "/api/things/*", Methods: []string{http.MethodDelete}, Roles: []domain.Role{domain.RoleAdmin}},
	})
	if err != nil {
		t.Fatalf("new policy: %v", err)
	}
	// Declaration order must not matter; the more specific rule wins.
	if got := p.Evaluate(http.MethodDelete, "/api/things/1", principal(domain.RoleMember)); got != Forbidden {
		t.Fatalf("expected specific DELETE rule to win, got %v", got)
	}
	if got := p.Evaluate(http.MethodGet, "/api/things/1", principal(domain.RoleMember)); got != Allow {
		t.Fatalf("expected broad rule for GET, got %v", got)
	}
}

func TestEvaluatePublicRuleIgnoresCredential(t *testing.T) {
	p := Default()
	// A resolved principal on a public route changes nothing.
	if got := p.Evaluate(http.MethodPost, "/api/auth/login", principal(domain.RoleViewer)); got != Allow {
		t.Fatalf("expected Allow on public route, got %v", got)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	p := Default()
	pr := principal(domain.RoleMember)
	first := p.Evaluate(http.MethodGet, "/api/admin/stats", pr)
	for i := 0; i < 10; i++ {
		if got := p.Evaluate(http.MethodGet, "/api/admin/stats", pr); got != first {
			t.Fatalf("decision changed between evaluations: %v then %v", first, got)
		}
	}
}

func TestNewRejectsBadPatterns(t *testing.T) {
	cases := []string{
		"api/no-leading-slash",
		"/api/**/middle",
		"/api//empty",
	}
	for _, pattern := range cases {
		if _, err := New([]Rule{{Pattern: pattern}}); err == nil {
			t.Fatalf("expected error for pattern %q", pattern)
		}
	}
}
