package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"cmsadmin/internal/domain"
)

// ListCourses fetches courses, narrowed server-side by the filter. Absent
// filter fields produce no query parameter at all.
func (c *Client) ListCourses(ctx context.Context, f domain.CourseFilter) ([]domain.Course, error) {
	q := url.Values{}
	if f.DepartmentID != nil {
		q.Set("department_id", strconv.FormatInt(*f.DepartmentID, 10))
	}
	if f.TeacherID != nil {
		q.Set("teacher_id", strconv.FormatInt(*f.TeacherID, 10))
	}
	if f.Semester != nil {
		q.Set("semester", *f.Semester)
	}

	req, err := c.request(ctx, http.MethodGet, "/courses/", q, nil, true)
	if err != nil {
		return nil, err
	}
	var out []domain.Course
	if err := c.do(req, "fetch courses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCourse fetches a single course by id.
func (c *Client) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	req, err := c.request(ctx, http.MethodGet, fmt.Sprintf("/courses/%d", id), nil, nil, true)
	if err != nil {
		return nil, err
	}
	var out domain.Course
	if err := c.do(req, "fetch course", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCourse creates a course and returns the canonical record.
func (c *Client) CreateCourse(ctx context.Context, p domain.CourseCreate) (*domain.Course, error) {
	req, err := c.request(ctx, http.MethodPost, "/courses/", nil, p, true)
	if err != nil {
		return nil, err
	}
	var out domain.Course
	if err := c.do(req, "create course", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCourse replaces a course's fields and returns the canonical
// record.
func (c *Client) UpdateCourse(ctx context.Context, id int64, p domain.CourseUpdate) (*domain.Course, error) {
	req, err := c.request(ctx, http.MethodPut, fmt.Sprintf("/courses/%d", id), nil, p, true)
	if err != nil {
		return nil, err
	}
	var out domain.Course
	if err := c.do(req, "update course", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCourse removes a course. A 204 response counts as success.
func (c *Client) DeleteCourse(ctx context.Context, id int64) error {
	req, err := c.request(ctx, http.MethodDelete, fmt.Sprintf("/courses/%d", id), nil, nil, true)
	if err != nil {
		return err
	}
	return c.do(req, "delete course", nil)
}
