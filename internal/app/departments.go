package app

import (
	"context"
	"strings"
	"sync"

	"cmsadmin/internal/domain"
)

// DepartmentsController drives the admin departments screen: a locally
// cached list reconciled in place after each mutation, never re-fetched
// wholesale.
type DepartmentsController struct {
	api     domain.DepartmentAPI
	confirm Confirmer

	saveGuard

	listMu      sync.Mutex
	gen         uint64
	departments []domain.Department
	editingID   *int64
}

// NewDepartmentsController creates the controller for the departments
// screen.
func NewDepartmentsController(api domain.DepartmentAPI, confirm Confirmer) *DepartmentsController {
	return &DepartmentsController{api: api, confirm: confirm}
}

// Reload fetches the department list. A reload that has been superseded by
// a newer one discards its result instead of overwriting fresher state.
func (c *DepartmentsController) Reload(ctx context.Context) error {
	c.listMu.Lock()
	c.gen++
	gen := c.gen
	c.listMu.Unlock()

	departments, err := c.api.ListDepartments(ctx)

	c.listMu.Lock()
	defer c.listMu.Unlock()
	if gen != c.gen {
		return nil
	}
	if err != nil {
		return err
	}
	c.departments = departments
	return nil
}

// Departments returns a copy of the cached list.
func (c *DepartmentsController) Departments() []domain.Department {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	out := make([]domain.Department, len(c.departments))
	copy(out, c.departments)
	return out
}

// Create validates and submits a new department, appending the server's
// canonical record to the cached list on success.
func (c *DepartmentsController) Create(ctx context.Context, name, code string) (*domain.Department, error) {
	payload := domain.DepartmentCreate{
		Name: strings.TrimSpace(name),
		Code: strings.TrimSpace(code),
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}

	if err := c.begin(); err != nil {
		return nil, err
	}
	defer c.end()

	created, err := c.api.CreateDepartment(ctx, payload)
	if err != nil {
		return nil, err
	}

	c.listMu.Lock()
	c.departments = append(c.departments, *created)
	c.listMu.Unlock()
	return created, nil
}

// StartEdit puts the given record into edit mode, discarding any edit in
// progress on another record, and returns a copy to seed the form.
func (c *DepartmentsController) StartEdit(id int64) (domain.Department, bool) {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	for _, d := range c.departments {
		if d.ID == id {
			c.editingID = &id
			return d, true
		}
	}
	return domain.Department{}, false
}

// CancelEdit leaves edit mode without saving.
func (c *DepartmentsController) CancelEdit() {
	c.listMu.Lock()
	c.editingID = nil
	c.listMu.Unlock()
}

// Editing returns the id of the record in edit mode, if any.
func (c *DepartmentsController) Editing() (int64, bool) {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	if c.editingID == nil {
		return 0, false
	}
	return *c.editingID, true
}

// Update validates and submits the full edited field set, replacing the
// cached record in place (id-matched) on success. On failure the edit
// stays open.
func (c *DepartmentsController) Update(ctx context.Context, id int64, name, code string, hodUserID *int64) (*domain.Department, error) {
	payload := domain.DepartmentUpdate{
		Name:      strings.TrimSpace(name),
		Code:      strings.TrimSpace(code),
		HODUserID: hodUserID,
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}

	if err := c.begin(); err != nil {
		return nil, err
	}
	defer c.end()

	updated, err := c.api.UpdateDepartment(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	c.listMu.Lock()
	for i := range c.departments {
		if c.departments[i].ID == id {
			c.departments[i] = *updated
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
func (c *DepartmentsController) Delete(ctx context.Context, id int64) (bool, error) {
	if !c.confirm.Confirm("Are you sure you want to delete this department?") {
		return false, nil
	}

	if err := c.begin(); err != nil {
		return false, err
	}
	defer c.end()

	if err := c.api.DeleteDepartment(ctx, id); err != nil {
		return false, err
	}

	c.listMu.Lock()
	for i := range c.departments {
		if c.departments[i].ID == id {
			c.departments = append(c.departments[:i], c.departments[i+1:]...)
			break
		}
	}
	c.listMu.Unlock()
	return true, nil
}
