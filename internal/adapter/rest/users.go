package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"cmsadmin/internal/domain"
)

// ListUsers fetches users, narrowed server-side by the filter. Absent
// filter fields produce no query parameter at all.
func (c *Client) ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	q := url.Values{}
	if f.Role != nil {
		q.Set("role", string(*f.Role))
	}
	if f.DepartmentID != nil {
		q.Set("department_id", strconv.FormatInt(*f.DepartmentID, 10))
	}
	if f.IsActive != nil {
		q.Set("is_active", strconv.FormatBool(*f.IsActive))
	}

	req, err := c.request(ctx, http.MethodGet, "/users/", q, nil, true)
	if err != nil {
		return nil, err
	}
	var out []domain.User
	if err := c.do(req, "fetch users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser creates a user and returns the canonical record.
func (c *Client) CreateUser(ctx context.Context, p domain.UserCreate) (*domain.User, error) {
	req, err := c.request(ctx, http.MethodPost, "/users/", nil, p, true)
	if err != nil {
		return nil, err
	}
	var out domain.User
	if err := c.do(req, "create user", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser replaces a user's fields and returns the canonical record.
func (c *Client) UpdateUser(ctx context.Context, id int64, p domain.UserUpdate) (*domain.User, error) {
	req, err := c.request(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), nil, p, true)
	if err != nil {
		return nil, err
	}
	var out domain.User
	if err := c.do(req, "update user", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes a user. A 204 response counts as success.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	req, err := c.request(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, true)
	if err != nil {
		return err
	}
	return c.do(req, "delete user", nil)
}
