package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cmsadmin/internal/app"
	"cmsadmin/internal/domain"
)

// coursesScreen is the admin course CRUD screen.
func (c *Console) coursesScreen(ctx context.Context) (string, error) {
	_, next, err := c.enter(ctx, "Access denied. Admin role required.", domain.RoleAdmin)
	if next != "" || err != nil {
		return next, err
	}

	if !c.courses.ReferenceDataLoaded() {
		fmt.Fprintln(c.out, "Loading departments and instructors...")
		if err := c.courses.LoadReferenceData(ctx); err != nil {
			fmt.Fprintf(c.out, "Failed to load reference data: %v\n", err)
		}
	}
	if err := c.courses.Reload(ctx); err != nil {
		fmt.Fprintf(c.out, "Failed to load courses: %v\n", err)
	}

	fmt.Fprintln(c.out, "\n== Courses ==")
	for {
		c.renderCourses(c.courses.Courses())
		fmt.Fprintln(c.out, "commands: add | edit <id> | del <id> | filter dept=<id> teacher=<id> sem=<s> | filter clear | r | b | q")

		line, rerr := c.readLine("courses> ")
		if errors.Is(rerr, io.EOF) {
			return routeQuit, nil
		}
		if rerr != nil {
			return "", rerr
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "add":
			c.courseCreate(ctx)
		case "edit":
			if len(fields) != 2 {
				fmt.Fprintln(c.out, "usage: edit <id>")
				continue
			}
			c.courseEdit(ctx, fields[1])
		case "del":
			if len(fields) != 2 {
				fmt.Fprintln(c.out, "usage: del <id>")
				continue
			}
			c.courseDelete(ctx, fields[1])
		case "filter":
			c.courseFilter(ctx, fields[1:])
		case "r":
			if err := c.courses.Reload(ctx); err != nil {
				fmt.Fprintf(c.out, "Failed to load courses: %v\n", err)
			}
		case "b":
			return routeDashboard, nil
		case "q":
			return routeQuit, nil
		default:
			fmt.Fprintf(c.out, "unknown command %q\n", fields[0])
		}
	}
}

func (c *Console) courseFilter(ctx context.Context, args []string) {
	if len(args) == 1 && args[0] == "clear" {
		c.courses.SetFilter(domain.CourseFilter{})
	} else {
		f := domain.CourseFilter{}
		for _, arg := range args {
			key, value, ok := strings.Cut(arg, "=")
			if !ok {
				fmt.Fprintf(c.out, "bad filter %q, want key=value\n", arg)
				return
			}
			switch key {
			case "dept":
				id, err := parseID(value)
				if err != nil {
					fmt.Fprintln(c.out, err)
					return
				}
				f.DepartmentID = &id
			case "teacher":
				id, err := parseID(value)
				if err != nil {
					fmt.Fprintln(c.out, err)
					return
				}
				f.TeacherID = &id
			case "sem":
				sem := value
				f.Semester = &sem
			default:
				fmt.Fprintf(c.out, "unknown filter key %q\n", key)
				return
			}
		}
		c.courses.SetFilter(f)
	}

	if err := c.courses.Reload(ctx); err != nil {
		fmt.Fprintf(c.out, "Failed to load courses: %v\n", err)
	}
}

// courseRefs prints the selectable departments and instructors so ids can
// be chosen by eye, mirroring the select inputs of the web form.
func (c *Console) courseRefs() {
	fmt.Fprintln(c.out, "Departments:")
	c.renderDepartments(c.courses.Departments())
	fmt.Fprintln(c.out, "Instructors (teachers and HODs):")
	c.renderUsers(c.courses.Instructors())
}

func (c *Console) courseCreate(ctx context.Context) {
	if !c.courses.ReferenceDataLoaded() {
		fmt.Fprintln(c.out, "reference data still loading; try again")
		return
	}
	c.courseRefs()

	form, err := c.readCourseForm(app.CourseForm{})
	if err != nil {
		return
	}

	created, cerr := c.courses.Create(ctx, form)
	if cerr != nil {
		fmt.Fprintf(c.out, "Create failed: %v\n", cerr)
		return
	}
	fmt.Fprintf(c.out, "Created course #%d %s\n", created.ID, created.Code)
}

func (c *Console) courseEdit(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	current, ok := c.courses.StartEdit(id)
	if !ok {
		fmt.Fprintf(c.out, "no course with id %d\n", id)
		return
	}
	c.courseRefs()

	seed := app.CourseForm{
		Code:         current.Code,
		Name:         current.Name,
		Description:  strPtrValue(current.Description),
		Semester:     strPtrValue(current.Semester),
		Credits:      intPtrValue(current.Credits),
		DepartmentID: current.DepartmentID,
		TeacherID:    current.TeacherID,
	}
	form, ferr := c.readCourseForm(seed)
	if ferr != nil {
		c.courses.CancelEdit()
		return
	}

	if _, err := c.courses.Update(ctx, id, form); err != nil {
		fmt.Fprintf(c.out, "Update failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Updated course #%d\n", id)
}

func (c *Console) courseDelete(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	deleted, err := c.courses.Delete(ctx, id)
	if err != nil {
		fmt.Fprintf(c.out, "Delete failed: %v\n", err)
		return
	}
	if deleted {
		fmt.Fprintf(c.out, "Deleted course #%d\n", id)
	}
}

// readCourseForm prompts for every course field, seeding defaults from a
// record under edit.
func (c *Console) readCourseForm(seed app.CourseForm) (app.CourseForm, error) {
	var form app.CourseForm
	var err error

	if form.Code, err = c.readDefault("Code", seed.Code); err != nil {
		return form, err
	}
	if form.Name, err = c.readDefault("Name", seed.Name); err != nil {
		return form, err
	}
	if form.Description, err = c.readDefault("Description", seed.Description); err != nil {
		return form, err
	}
	if form.Semester, err = c.readDefault("Semester", seed.Semester); err != nil {
		return form, err
	}
	if form.Credits, err = c.readDefault("Credits", seed.Credits); err != nil {
		return form, err
	}

	deptRaw, err := c.readDefault("Department id", strconv.FormatInt(seed.DepartmentID, 10))
	if err != nil {
		return form, err
	}
	form.DepartmentID, _ = strconv.ParseInt(deptRaw, 10, 64)

	teacherRaw, err := c.readDefault("Teacher id", strconv.FormatInt(seed.TeacherID, 10))
	if err != nil {
		return form, err
	}
	form.TeacherID, _ = strconv.ParseInt(teacherRaw, 10, 64)

	return form, nil
}

func strPtrValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intPtrValue(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
