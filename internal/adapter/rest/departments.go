package rest

import (
	"context"
	"fmt"
	"net/http"

	"cmsadmin/internal/domain"
)

// ListDepartments fetches all departments.
func (c *Client) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	req, err := c.request(ctx, http.MethodGet, "/departments/", nil, nil, true)
	if err != nil {
		return nil, err
	}
	var out []domain.Department
	if err := c.do(req, "fetch departments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDepartment creates a department and returns the canonical record.
func (c *Client) CreateDepartment(ctx context.Context, p domain.DepartmentCreate) (*domain.Department, error) {
	req, err := c.request(ctx, http.MethodPost, "/departments/", nil, p, true)
	if err != nil {
		return nil, err
	}
	var out domain.Department
	if err := c.do(req, "create department", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDepartment replaces a department's fields and returns the
// canonical record.
func (c *Client) UpdateDepartment(ctx context.Context, id int64, p domain.DepartmentUpdate) (*domain.Department, error) {
	req, err := c.request(ctx, http.MethodPut, fmt.Sprintf("/departments/%d", id), nil, p, true)
	if err != nil {
		return nil, err
	}
	var out domain.Department
	if err := c.do(req, "update department", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDepartment removes a department. A 204 response counts as success.
func (c *Client) DeleteDepartment(ctx context.Context, id int64) error {
	req, err := c.request(ctx, http.MethodDelete, fmt.Sprintf("/departments/%d", id), nil, nil, true)
	if err != nil {
		return err
	}
	return c.do(req, "delete department", nil)
}
