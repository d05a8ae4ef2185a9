package app

import (
	"context"
	"sync"

	"cmsadmin/internal/domain"
)

// TeacherController drives the read-only teaching screens: the caller's
// own course list and the per-course roster. No mutations exist here.
type TeacherController struct {
	teacher domain.TeacherAPI
	courses domain.CourseAPI

	listMu    sync.Mutex
	gen       uint64
	myCourses []domain.Course
}

// NewTeacherController creates the controller for the teacher screens.
func NewTeacherController(teacher domain.TeacherAPI, courses domain.CourseAPI) *TeacherController {
	return &TeacherController{teacher: teacher, courses: courses}
}

// Reload fetches the caller's teaching courses. A reload superseded by a
// newer one discards its result.
func (c *TeacherController) Reload(ctx context.Context) error {
	c.listMu.Lock()
	c.gen++
	gen := c.gen
	c.listMu.Unlock()

	courses, err := c.teacher.MyCourses(ctx)

	c.listMu.Lock()
	defer c.listMu.Unlock()
	if gen != c.gen {
		return nil
	}
	if err != nil {
		return err
	}
	c.myCourses = courses
	return nil
}

// Courses returns a copy of the cached teaching course list.
func (c *TeacherController) Courses() []domain.Course {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	out := make([]domain.Course, len(c.myCourses))
	copy(out, c.myCourses)
	return out
}

// Detail fetches a single course together with its enrolled students.
func (c *TeacherController) Detail(ctx context.Context, courseID int64) (*domain.Course, []domain.User, error) {
	course, err := c.courses.GetCourse(ctx, courseID)
	if err != nil {
		return nil, nil, err
	}
	students, err := c.teacher.EnrolledStudents(ctx, courseID)
	if err != nil {
		return nil, nil, err
	}
	return course, students, nil
}
