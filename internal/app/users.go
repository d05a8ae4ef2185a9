package app

import (
	"context"
	"strings"
	"sync"

	"cmsadmin/internal/domain"
)

// UsersController drives the admin users screen. Departments are loaded as
// reference data before create or edit is allowed; the user list is
// server-filtered and reconciled locally after mutations.
type UsersController struct {
	api   domain.UserAPI
	depts domain.DepartmentAPI

	confirm Confirmer

	saveGuard

	listMu      sync.Mutex
	gen         uint64
	users       []domain.User
	departments []domain.Department
	refsLoaded  bool
	filter      domain.UserFilter
	editingID   *int64
}

// NewUsersController creates the controller for the users screen.
func NewUsersController(api domain.UserAPI, depts domain.DepartmentAPI, confirm Confirmer) *UsersController {
	return &UsersController{api: api, depts: depts, confirm: confirm}
}

// LoadReferenceData fetches the departments used to populate selection
// inputs. Create and edit stay unavailable until this has succeeded.
func (c *UsersController) LoadReferenceData(ctx context.Context) error {
	departments, err := c.depts.ListDepartments(ctx)
	if err != nil {
		return err
	}
	c.listMu.Lock()
	c.departments = departments
	c.refsLoaded = true
	c.listMu.Unlock()
	return nil
}

// ReferenceDataLoaded reports whether the selection inputs can be offered.
func (c *UsersController) ReferenceDataLoaded() bool {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	return c.refsLoaded
}

// Departments returns a copy of the reference department list.
func (c *UsersController) Departments() []domain.Department {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	out := make([]domain.Department, len(c.departments))
	copy(out, c.departments)
	return out
}

// SetFilter replaces the active filter. The caller follows up with Reload.
func (c *UsersController) SetFilter(f domain.UserFilter) {
	c.listMu.Lock()
	c.filter = f
	c.listMu.Unlock()
}

// Filter returns the active filter.
func (c *UsersController) Filter() domain.UserFilter {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	return c.filter
}

// Reload fetches the user list with the active filter. A reload superseded
// by a newer one discards its result.
func (c *UsersController) Reload(ctx context.Context) error {
	c.listMu.Lock()
	c.gen++
	gen := c.gen
	filter := c.filter
	c.listMu.Unlock()

	users, err := c.api.ListUsers(ctx, filter)

	c.listMu.Lock()
	defer c.listMu.Unlock()
	if gen != c.gen {
		return nil
	}
	if err != nil {
		return err
	}
	c.users = users
	return nil
}

// Users returns a copy of the cached list.
func (c *UsersController) Users() []domain.User {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	out := make([]domain.User, len(c.users))
	copy(out, c.users)
	return out
}

// Create validates and submits a new user, appending the server's
// canonical record on success.
func (c *UsersController) Create(ctx context.Context, p domain.UserCreate) (*domain.User, error) {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.TrimSpace(p.Email)
	if err := checkPayload(p); err != nil {
		return nil, err
	}

	if err := c.begin(); err != nil {
		return nil, err
	}
	defer c.end()

	created, err := c.api.CreateUser(ctx, p)
	if err != nil {
		return nil, err
	}

	c.listMu.Lock()
	c.users = append(c.users, *created)
	c.listMu.Unlock()
	return created, nil
}

// StartEdit puts the given record into edit mode, discarding any edit in
// progress on another record, and returns a copy to seed the form.
func (c *UsersController) StartEdit(id int64) (domain.User, bool) {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	for _, u := range c.users {
		if u.ID == id {
			c.editingID = &id
			return u, true
		}
	}
	return domain.User{}, false
}

// CancelEdit leaves edit mode without saving.
func (c *UsersController) CancelEdit() {
	c.listMu.Lock()
	c.editingID = nil
	c.listMu.Unlock()
}

// Editing returns the id of the record in edit mode, if any.
func (c *UsersController) Editing() (int64, bool) {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	if c.editingID == nil {
		return 0, false
	}
	return *c.editingID, true
}

// Update validates and submits the full edited field set, replacing the
// cached record in place on success. On failure the edit stays open.
func (c *UsersController) Update(ctx context.Context, id int64, p domain.UserUpdate) (*domain.User, error) {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.TrimSpace(p.Email)
	if err := checkPayload(p); err != nil {
		return nil, err
	}

	if err := c.begin(); err != nil {
		return nil, err
	}
	defer c.end()

	updated, err := c.api.UpdateUser(ctx, id, p)
	if err != nil {
		return nil, err
	}

	c.listMu.Lock()
	for i := range c.users {
		if c.users[i].ID == id {
			c.users[i] = *updated
			break
		}
	}
	c.editingID = nil
	c.listMu.Unlock()
	return updated, nil
}

// Delete asks for confirmation and, when granted, deletes the record and
// drops it from the cached list. Returns false without any request when
// the confirmation is declined.
func (c *UsersController) Delete(ctx context.Context, id int64) (bool, error) {
	if !c.confirm.Confirm("Are you sure you want to delete this user?") {
		return false, nil
	}

	if err := c.begin(); err != nil {
		return false, err
	}
	defer c.end()

	if err := c.api.DeleteUser(ctx, id); err != nil {
		return false, err
	}

	c.listMu.Lock()
	for i := range c.users {
		if c.users[i].ID == id {
			c.users = append(c.users[:i], c.users[i+1:]...)
			break
		}
	}
	c.listMu.Unlock()
	return true, nil
}
