package app

import (
	"context"

	"cmsadmin/internal/domain"
)

// AuthState is the outcome of a gate check on screen entry.
type AuthState int

// Gate outcomes.
const (
	// Unauthenticated means no token is available; the caller should
	// return to the login screen.
	Unauthenticated AuthState = iota
	// Forbidden means the identity resolved but its role is outside the
	// screen's allowed set.
	Forbidden
	// LoadError means a token exists but identity resolution failed. The
	// token is deliberately left in place so the user sees the failure.
	LoadError
	// Authorized means the screen may render for the resolved identity.
	Authorized
)

// Decision carries the gate outcome plus the identity when resolved and
// the underlying error on LoadError.
type Decision struct {
	State    AuthState
	Identity *domain.User
	Err      error
}

// Gate performs the per-screen authorization check: token lookup, identity
// resolution, role membership. It holds no cross-screen cache; every mount
// re-runs the full check.
type Gate struct {
	tokens domain.TokenSource
	auth   domain.AuthAPI
}

// NewGate creates a Gate over the given token source and auth API.
func NewGate(tokens domain.TokenSource, auth domain.AuthAPI) *Gate {
	return &Gate{tokens: tokens, auth: auth}
}

// Authorize resolves the current identity and checks it against the
// allowed role set. An empty set admits any authenticated identity.
func (g *Gate) Authorize(ctx context.Context, allowed ...domain.Role) Decision {
	if _, ok := g.tokens.Token(); !ok {
		return Decision{State: Unauthenticated}
	}

	identity, err := g.auth.CurrentIdentity(ctx)
	if err != nil {
		return Decision{State: LoadError, Err: err}
	}

	if len(allowed) > 0 && !identity.Role.In(allowed...) {
		return Decision{State: Forbidden, Identity: identity}
	}
	return Decision{State: Authorized, Identity: identity}
}
