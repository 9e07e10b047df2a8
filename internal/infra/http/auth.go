package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"researchtracker/internal/domain"
	"researchtracker/internal/infra/auth/policy"

	"github.com/gin-gonic/gin"
)

const principalContextKey = "principal"

// authenticationFilter runs once per request, before policy evaluation. It
// converts the optional bearer token into a resolved principal in the request
// context. No credential and a rejected credential both leave the context
// empty; the access policy decides whether that matters for the route. The
// only failure that aborts here is an unavailable principal store, which must
// surface as a 5xx rather than an authentication failure.
func (s *Server) authenticationFilter() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractBearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.Next()
			return
		}

		subject, err := s.codec.Verify(raw, time.Now())
		if err != nil {
			// Rejected: recorded, not enforced. The policy treats the
			// request as unauthenticated regardless of route.
			c.Next()
			return
		}

		principal, err := s.principals.LoadBySubject(c.Request.Context(), subject)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Token subject deleted after issuance.
				c.Next()
				return
			}
			writeErrorCode(c, http.StatusInternalServerError, "AUTH_BACKEND", "principal store unavailable")
			return
		}

		c.Set(principalContextKey, principal)
		c.Next()
	}
}

// enforcePolicy evaluates the access rule table against the resolved
// principal and short-circuits 401/403 before any handler runs.
func (s *Server) enforcePolicy() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := principalFrom(c)
		switch s.policy.Evaluate(c.Request.Method, c.Request.URL.Path, principal) {
		case policy.Allow:
			c.Next()
		case policy.Unauthenticated:
			writeErrorCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		case policy.Forbidden:
			writeErrorCode(c, http.StatusForbidden, "FORBIDDEN", "forbidden")
		}
	}
}

func principalFrom(c *gin.Context) *domain.Principal {
	raw, ok := c.Get(principalContextKey)
	if !ok {
		return nil
	}
	principal, ok := raw.(domain.Principal)
	if !ok {
		return nil
	}
	return &principal
}

// requirePrincipal is for handlers on authenticated routes; the policy has
// already run, so a missing principal here is a wiring bug.
func requirePrincipal(c *gin.Context) (domain.Principal, bool) {
	principal := principalFrom(c)
	if principal == nil {
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "principal missing")
		return domain.Principal{}, false
	}
	return *principal, true
}

func extractBearerToken(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(value), "bearer ") {
		return ""
	}
	return strings.TrimSpace(value[len("bearer "):])
}
