package policy

import (
	"fmt"
	"net/http"
	"strings"

	"researchtracker/internal/domain"
)

type Decision int

const (
	Allow Decision = iota
	Unauthenticated
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Rule maps a path pattern and optional method set to the roles allowed to
// invoke it. An empty Roles set marks the rule public. Patterns are made of
// literal segments, "*" (exactly one segment) and a trailing "**" (zero or
// more segments).
type Rule struct {
	Pattern string
	Methods []string
	Roles   []domain.Role
}

type compiledRule struct {
	rule     Rule
	segments []string
	methods  map[string]bool
	score    int
}

// Policy is the ordered access rule table. It is immutable after construction
// and safe for concurrent use; evaluation has no side effects.
type Policy struct {
	rules []compiledRule
}

func New(rules []Rule) (*Policy, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		cr, err := compile(r)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, cr)
	}
	return &Policy{rules: compiled}, nil
}

// Evaluate resolves the decision for one request. The most specific matching
// rule wins: longest literal match first, then an explicit method match over a
// method wildcard, then declaration order. When no rule matches the default is
// "authenticated, any role". Preflight OPTIONS requests are always allowed;
// they carry no credentials and must not be blocked.
func (p *Policy) Evaluate(method, path string, principal *domain.Principal) Decision {
	if method == http.MethodOptions {
		return Allow
	}

	best := -1
	for i, cr := range p.rules {
		if !cr.matches(method, path) {
			continue
		}
		if best < 0 || cr.beats(p.rules[best]) {
			best = i
		}
	}

	if best >= 0 && len(p.rules[best].rule.Roles) == 0 {
		return Allow
	}
	if principal == nil {
		return Unauthenticated
	}
	if best < 0 {
		return Allow
	}
	for _, role := range p.rules[best].rule.Roles {
		if role == principal.Role {
			return Allow
		}
	}
	return Forbidden
}

func compile(r Rule) (compiledRule, error) {
	pattern := strings.TrimSpace(r.Pattern)
	if !strings.HasPrefix(pattern, "/") {
		return compiledRule{}, fmt.Errorf("pattern %q must start with /", r.Pattern)
	}
	segments := splitPath(pattern)
	score := 0
	for i, seg := range segments {
		switch seg {
		case "**":
			if i != len(segments)-1 {
				return compiledRule{}, fmt.Errorf("pattern %q: ** is only valid as the last segment", r.Pattern)
			}
		case "*":
			score += 1
		case "":
			return compiledRule{}, fmt.Errorf("pattern %q has an empty segment", r.Pattern)
		default:
			score += 3
		}
	}
	var methods map[string]bool
	if len(r.Methods) > 0 {
		methods = make(map[string]bool, len(r.Methods))
		for _, m := range r.Methods {
			methods[strings.ToUpper(m)] = true
		}
	}
	return compiledRule{rule: r, segments: segments, methods: methods, score: score}, nil
}

func (cr compiledRule) matches(method, path string) bool {
	if cr.methods != nil && !cr.methods[strings.ToUpper(method)] {
		return false
	}
	parts := splitPath(path)
	for i, seg := range cr.segments {
		if seg == "**" {
			return true
		}
		if i >= len(parts) {
			return false
		}
		if seg != "*" && seg != parts[i] {
			return false
		}
	}
	// Trailing ** already returned; otherwise segment counts must line up.
	return len(parts) == len(cr.segments)
}

func (cr compiledRule) beats(other compiledRule) bool {
	if cr.score != other.score {
		return cr.score > other.score
	}
	return cr.methods != nil && other.methods == nil
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
