package app

import (
	"strconv"
	"strings"
	"sync"

	"cmsadmin/internal/domain"
)

// Confirmer asks the user to approve an irreversible action before the
// request is sent.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// saveGuard serializes mutations on one screen: while a create, update or
// delete is in flight every further mutation is rejected with ErrBusy.
type saveGuard struct {
	mu     sync.Mutex
	saving bool
}

func (g *saveGuard) begin() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.saving {
		return domain.ErrBusy
	}
	g.saving = true
	return nil
}

func (g *saveGuard) end() {
	g.mu.Lock()
	g.saving = false
	g.mu.Unlock()
}

// Saving reports whether a mutation is currently in flight.
func (g *saveGuard) Saving() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saving
}

// parseOptionalInt converts a numeric text input, treating empty or
// unparseable values as absent.
func parseOptionalInt(s string) *int {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return nil
	}
	return &n
}
