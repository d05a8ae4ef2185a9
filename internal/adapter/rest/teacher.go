package rest

import (
	"context"
	"fmt"
	"net/http"

	"cmsadmin/internal/domain"
)

// MyCourses fetches the courses taught by the calling identity.
func (c *Client) MyCourses(ctx context.Context) ([]domain.Course, error) {
	req, err := c.request(ctx, http.MethodGet, "/teacher/courses", nil, nil, true)
	if err != nil {
		return nil, err
	}
	var out []domain.Course
	if err := c.do(req, "fetch teacher courses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnrolledStudents fetches the students enrolled in one of the caller's
// courses.
func (c *Client) EnrolledStudents(ctx context.Context, courseID int64) ([]domain.User, error) {
	req, err := c.request(ctx, http.MethodGet, fmt.Sprintf("/teacher/courses/%d/students", courseID), nil, nil, true)
	if err != nil {
		return nil, err
	}
	var out []domain.User
	if err := c.do(req, "fetch enrolled students", &out); err != nil {
		return nil, err
	}
	return out, nil
}
