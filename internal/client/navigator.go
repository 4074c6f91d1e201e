package client

import (
	"context"
	"fmt"
	"strings"
)

// RedirectPolicy decides which 401 responses send the user back to login.
// Every 401 clears the stored credential regardless of policy.
type RedirectPolicy int

const (
	// RedirectAuthRoutes redirects only when the failing endpoint belongs to
	// the authentication surface (its path contains the auth marker).
	RedirectAuthRoutes RedirectPolicy = iota
	// RedirectAlways redirects on every 401.
	RedirectAlways
	// RedirectNever leaves navigation to the caller.
	RedirectNever
)

func (p RedirectPolicy) String() string {
	switch p {
	case RedirectAuthRoutes:
		return "auth-routes"
	case RedirectAlways:
		return "always"
	case RedirectNever:
		return "never"
	}
	return fmt.Sprintf("RedirectPolicy(%d)", int(p))
}

// ParseRedirectPolicy parses the names produced by String.
func ParseRedirectPolicy(s string) (RedirectPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auth-routes":
		return RedirectAuthRoutes, nil
	case "always":
		return RedirectAlways, nil
	case "never":
		return RedirectNever, nil
	}
	return 0, fmt.Errorf("unknown redirect policy %q", s)
}

// shouldRedirect applies the policy to a 401 on endpoint.
func (p RedirectPolicy) shouldRedirect(endpoint, marker string) bool {
	switch p {
	case RedirectAlways:
		return true
	case RedirectAuthRoutes:
		return marker != "" && strings.Contains(endpoint, marker)
	}
	return false
}

// Navigator performs the login redirect side effect.
type Navigator interface {
	RedirectToLogin(ctx context.Context, endpoint string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, endpoint string)

func (f NavigatorFunc) RedirectToLogin(ctx context.Context, endpoint string) {
	f(ctx, endpoint)
}

type noopNavigator struct{}

func (noopNavigator) RedirectToLogin(context.Context, string) {}
