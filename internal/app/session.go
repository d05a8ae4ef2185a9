// Package app holds the application services: the session store, the
// authorization gate, and the screen controllers.
package app

import (
	"log"

	"cmsadmin/internal/domain"
)

// Storage keys shared by both tiers.
const (
	tokenKey    = "cms_access_token"
	rememberKey = "cms_remember_me"
)

// Store is the two-tier credential cache. The session tier lives for the
// process; the durable tier survives restarts and is opt-in via the
// remember flag. Storage failures are logged and treated as absence, never
// surfaced to callers.
type Store struct {
	session domain.TokenStorage
	durable domain.TokenStorage
}

// NewStore creates a Store over the given session and durable tiers.
func NewStore(session, durable domain.TokenStorage) *Store {
	return &Store{session: session, durable: durable}
}

var _ domain.TokenSource = (*Store)(nil)

// SetToken writes the token to the session tier and, when remember is set,
// to the durable tier as well. Remember false revokes any durable copy
// left by an earlier login.
func (s *Store) SetToken(token string, remember bool) {
	if err := s.session.Set(tokenKey, token); err != nil {
		log.Printf("session store: set session token: %v", err)
	}
	if remember {
		if err := s.durable.Set(tokenKey, token); err != nil {
			log.Printf("session store: set durable token: %v", err)
		}
		if err := s.durable.Set(rememberKey, "true"); err != nil {
			log.Printf("session store: set remember flag: %v", err)
		}
		return
	}
	if err := s.durable.Delete(tokenKey); err != nil {
		log.Printf("session store: delete durable token: %v", err)
	}
	if err := s.durable.Delete(rememberKey); err != nil {
		log.Printf("session store: delete remember flag: %v", err)
	}
}

// Token returns the session-tier token when present. Otherwise it reads
// the durable tier and, on a hit, backfills the session tier before
// returning. The sync is one-way: durable to session, never the reverse.
func (s *Store) Token() (string, bool) {
	token, ok, err := s.session.Get(tokenKey)
	if err != nil {
		log.Printf("session store: read session token: %v", err)
		return "", false
	}
	if ok {
		return token, true
	}

	token, ok, err = s.durable.Get(tokenKey)
	if err != nil {
		log.Printf("session store: read durable token: %v", err)
		return "", false
	}
	if !ok {
		return "", false
	}
	if err := s.session.Set(tokenKey, token); err != nil {
		log.Printf("session store: hydrate session token: %v", err)
	}
	return token, true
}

// IsRemembered reports whether the durable remember flag is set. False on
// any storage failure.
func (s *Store) IsRemembered() bool {
	v, ok, err := s.durable.Get(rememberKey)
	if err != nil {
		log.Printf("session store: read remember flag: %v", err)
		return false
	}
	return ok && v == "true"
}

// ClearToken removes the token from both tiers and clears the remember
// flag. Used on logout.
func (s *Store) ClearToken() {
	if err := s.session.Delete(tokenKey); err != nil {
		log.Printf("session store: clear session token: %v", err)
	}
	if err := s.durable.Delete(tokenKey); err != nil {
		log.Printf("session store: clear durable token: %v", err)
	}
	if err := s.durable.Delete(rememberKey); err != nil {
		log.Printf("session store: clear remember flag: %v", err)
	}
}
