// Package term is the driving adapter: an interactive terminal console
// that routes between screens the way the browser frontend routes between
// pages. One process run is one session; the in-memory token tier lives
// exactly as long as the console does.
package term

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"cmsadmin/internal/adapter/rest"
	"cmsadmin/internal/app"
)

// Screen routes. Unknown routes land on the dashboard.
const (
	routeLogin         = "/login"
	routeDashboard     = "/dashboard"
	routeDepartments   = "/admin/departments"
	routeUsers         = "/admin/users"
	routeCourses       = "/admin/courses"
	routeTeacher       = "/teacher/courses"
	routeTeacherDetail = "/teacher/courses/:courseId"
	routeQuit          = "quit"
)

// Console wires the controllers to an interactive terminal session.
type Console struct {
	api   *rest.Client
	store *app.Store
	gate  *app.Gate

	departments *app.DepartmentsController
	users       *app.UsersController
	courses     *app.CoursesController
	teacher     *app.TeacherController

	in  *bufio.Reader
	out io.Writer

	// detailCourseID carries the :courseId parameter into the teacher
	// detail screen.
	detailCourseID int64
}

// New creates a Console reading from in and writing to out.
func New(api *rest.Client, store *app.Store, gate *app.Gate, in io.Reader, out io.Writer) *Console {
	c := &Console{
		api:   api,
		store: store,
		gate:  gate,
		in:    bufio.NewReader(in),
		out:   out,
	}
	c.departments = app.NewDepartmentsController(api, c)
	c.users = app.NewUsersController(api, api, c)
	c.courses = app.NewCoursesController(api, api, api, c)
	c.teacher = app.NewTeacherController(api, api)
	return c
}

// Run drives the screen loop until the user quits or input ends.
func (c *Console) Run(ctx context.Context) error {
	if err := c.api.Health(ctx); err != nil {
		fmt.Fprintf(c.out, "warning: API health check failed: %v\n", err)
	}

	route := routeDashboard
	for {
		var (
			next string
			err  error
		)
		switch route {
		case routeLogin:
			next, err = c.loginScreen(ctx)
		case routeDashboard:
			next, err = c.dashboardScreen(ctx)
		case routeDepartments:
			next, err = c.departmentsScreen(ctx)
		case routeUsers:
			next, err = c.usersScreen(ctx)
		case routeCourses:
			next, err = c.coursesScreen(ctx)
		case routeTeacher:
			next, err = c.teacherCoursesScreen(ctx)
		case routeTeacherDetail:
			next, err = c.teacherCourseDetailScreen(ctx)
		case routeQuit:
			return nil
		default:
			next = routeDashboard
		}
		if err != nil {
			return err
		}
		route = next
	}
}
