package app

import (
	"context"
	"strings"
	"sync"

	"cmsadmin/internal/domain"
)

// CourseForm carries the raw course inputs as typed on screen, prior to
// trimming and numeric conversion. An empty or unparseable Credits value
// is treated as absent.
type CourseForm struct {
	Code         string
	Name         string
	Description  string
	Semester     string
	Credits      string
	DepartmentID int64
	TeacherID    int64
}

// CoursesController drives the admin courses screen. Departments and
// eligible instructors (teachers merged with HODs, de-duplicated) are
// loaded as reference data before create or edit is allowed.
type CoursesController struct {
	api   domain.CourseAPI
	users domain.UserAPI
	depts domain.DepartmentAPI

	confirm Confirmer

	saveGuard

	listMu      sync.Mutex
	gen         uint64
	courses     []domain.Course
	departments []domain.Department
	instructors []domain.User
	refsLoaded  bool
	filter      domain.CourseFilter
	editingID   *int64
}

// NewCoursesController creates the controller for the courses screen.
func NewCoursesController(api domain.CourseAPI, users domain.UserAPI, depts domain.DepartmentAPI, confirm Confirmer) *CoursesController {
	return &CoursesController{api: api, users: users, depts: depts, confirm: confirm}
}

// LoadReferenceData fetches departments plus the merged set of teachers
// and HODs eligible as instructors. Create and edit stay unavailable until
// this has succeeded.
func (c *CoursesController) LoadReferenceData(ctx context.Context) error {
	departments, err := c.depts.ListDepartments(ctx)
	if err != nil {
		return err
	}

	teacherRole := domain.RoleTeacher
	teachers, err := c.users.ListUsers(ctx, domain.UserFilter{Role: &teacherRole})
	if err != nil {
		return err
	}
	hodRole := domain.RoleHOD
	hods, err := c.users.ListUsers(ctx, domain.UserFilter{Role: &hodRole})
	if err != nil {
		return err
	}

	seen := make(map[int64]bool, len(teachers)+len(hods))
	merged := make([]domain.User, 0, len(teachers)+len(hods))
	for _, u := range append(teachers, hods...) {
		if seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		merged = append(merged, u)
	}

	c.listMu.Lock()
	c.departments = departments
	c.instructors = merged
	c.refsLoaded = true
	c.listMu.Unlock()
	return nil
}

// ReferenceDataLoaded reports whether the selection inputs can be offered.
func (c *CoursesController) ReferenceDataLoaded() bool {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	return c.refsLoaded
}

// Departments returns a copy of the reference department list.
func (c *CoursesController) Departments() []domain.Department {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	out := make([]domain.Department, len(c.departments))
	copy(out, c.departments)
	return out
}

// Instructors returns a copy of the eligible instructor list.
func (c *CoursesController) Instructors() []domain.User {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	out := make([]domain.User, len(c.instructors))
	copy(out, c.instructors)
	return out
}

// SetFilter replaces the active filter. The caller follows up with Reload.
func (c *CoursesController) SetFilter(f domain.CourseFilter) {
	c.listMu.Lock()
	c.filter = f
	c.listMu.Unlock()
}

// Filter returns the active filter.
func (c *CoursesController) Filter() domain.CourseFilter {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	return c.filter
}

// Reload fetches the course list with the active filter. A reload
// superseded by a newer one discards its result instead of overwriting
// fresher state.
func (c *CoursesController) Reload(ctx context.Context) error {
	c.listMu.Lock()
	c.gen++
	gen := c.gen
	filter := c.filter
	c.listMu.Unlock()

	courses, err := c.api.ListCourses(ctx, filter)

	c.listMu.Lock()
	defer c.listMu.Unlock()
	if gen != c.gen {
		return nil
	}
	if err != nil {
		return err
	}
	c.courses = courses
	return nil
}

// Courses returns a copy of the cached list.
func (c *CoursesController) Courses() []domain.Course {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	out := make([]domain.Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// Create validates and submits a new course, appending the server's
// canonical record on success.
func (c *CoursesController) Create(ctx context.Context, form CourseForm) (*domain.Course, error) {
	payload := domain.CourseCreate{
		Code:         strings.TrimSpace(form.Code),
		Name:         strings.TrimSpace(form.Name),
		Description:  optionalText(form.Description),
		Semester:     optionalText(form.Semester),
		Credits:      parseOptionalInt(form.Credits),
		DepartmentID: form.DepartmentID,
		TeacherID:    form.TeacherID,
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}

	if err := c.begin(); err != nil {
		return nil, err
	}
	defer c.end()

	created, err := c.api.CreateCourse(ctx, payload)
	if err != nil {
		return nil, err
	}

	c.listMu.Lock()
	c.courses = append(c.courses, *created)
	c.listMu.Unlock()
	return created, nil
}

// StartEdit puts the given record into edit mode, discarding any edit in
// progress on another record, and returns a copy to seed the form.
func (c *CoursesController) StartEdit(id int64) (domain.Course, bool) {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	for _, course := range c.courses {
		if course.ID == id {
			c.editingID = &id
			return course, true
		}
	}
	return domain.Course{}, false
}

// CancelEdit leaves edit mode without saving.
func (c *CoursesController) CancelEdit() {
	c.listMu.Lock()
	c.editingID = nil
	c.listMu.Unlock()
}

// Editing returns the id of the record in edit mode, if any.
func (c *CoursesController) Editing() (int64, bool) {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	if c.editingID == nil {
		return 0, false
	}
	return *c.editingID, true
}

// Update validates and submits the full edited field set, replacing the
// cached record in place on success. On failure the edit stays open.
func (c *CoursesController) Update(ctx context.Context, id int64, form CourseForm) (*domain.Course, error) {
	payload := domain.CourseUpdate{
		Code:        strings.TrimSpace(form.Code),
		Name:        strings.TrimSpace(form.Name),
		Description: optionalText(form.Description),
		Semester:    optionalText(form.Semester),
		Credits:     parseOptionalInt(form.Credits),
	}
	if form.DepartmentID != 0 {
		payload.DepartmentID = &form.DepartmentID
	}
	if form.TeacherID != 0 {
		payload.TeacherID = &form.TeacherID
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}

	if err := c.begin(); err != nil {
		return nil, err
	}
	defer c.end()

	updated, err := c.api.UpdateCourse(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	c.listMu.Lock()
	for i := range c.courses {
		if c.courses[i].ID == id {
			c.courses[i] = *updated
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
func (c *CoursesController) Delete(ctx context.Context, id int64) (bool, error) {
	if !c.confirm.Confirm("Are you sure you want to delete this course?") {
		return false, nil
	}

	if err := c.begin(); err != nil {
		return false, err
	}
	defer c.end()

	if err := c.api.DeleteCourse(ctx, id); err != nil {
		return false, err
	}

	c.listMu.Lock()
	for i := range c.courses {
		if c.courses[i].ID == id {
			c.courses = append(c.courses[:i], c.courses[i+1:]...)
			break
		}
	}
	c.listMu.Unlock()
	return true, nil
}
