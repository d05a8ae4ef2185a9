package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cmsadmin/internal/domain"
)

// teacherCoursesScreen lists the caller's own teaching courses.
func (c *Console) teacherCoursesScreen(ctx context.Context) (string, error) {
	_, next, err := c.enter(ctx, "Access denied. Teacher or HOD role required.",
		domain.RoleTeacher, domain.RoleHOD)
	if next != "" || err != nil {
		return next, err
	}

	if err := c.teacher.Reload(ctx); err != nil {
		fmt.Fprintf(c.out, "Failed to load teacher courses: %v\n", err)
	}

	fmt.Fprintln(c.out, "\n== My Courses ==")
	for {
		c.renderCourses(c.teacher.Courses())
		fmt.Fprintln(c.out, "commands: open <id> | r(eload) | b(ack) | q(uit)")

		line, rerr := c.readLine("teacher> ")
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
		case "open":
			if len(fields) != 2 {
				fmt.Fprintln(c.out, "usage: open <id>")
				continue
			}
			id, perr := parseID(fields[1])
			if perr != nil {
				fmt.Fprintln(c.out, perr)
				continue
			}
			c.detailCourseID = id
			return routeTeacherDetail, nil
		case "r":
			if err := c.teacher.Reload(ctx); err != nil {
				fmt.Fprintf(c.out, "Failed to load teacher courses: %v\n", err)
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

// teacherCourseDetailScreen shows one course and its enrolled students.
func (c *Console) teacherCourseDetailScreen(ctx context.Context) (string, error) {
	_, next, err := c.enter(ctx, "Access denied. Teacher or HOD role required.",
		domain.RoleTeacher, domain.RoleHOD)
	if next != "" || err != nil {
		return next, err
	}

	course, students, derr := c.teacher.Detail(ctx, c.detailCourseID)
	if derr != nil {
		fmt.Fprintf(c.out, "Failed to load course: %v\n", derr)
		return routeTeacher, nil
	}

	fmt.Fprintf(c.out, "\n== %s: %s ==\n", course.Code, course.Name)
	if course.Description != nil {
		fmt.Fprintln(c.out, *course.Description)
	}
	fmt.Fprintf(c.out, "Semester: %s  Credits: %s  Department: #%d\n",
		strPtrLabel(course.Semester), intPtrLabel(course.Credits), course.DepartmentID)

	fmt.Fprintf(c.out, "\nEnrolled students (%d):\n", len(students))
	c.renderUsers(students)

	for {
		line, rerr := c.readLine("course [b=back, q=quit]> ")
		if errors.Is(rerr, io.EOF) {
			return routeQuit, nil
		}
		if rerr != nil {
			return "", rerr
		}
		switch line {
		case "b", "":
			return routeTeacher, nil
		case "q":
			return routeQuit, nil
		default:
			fmt.Fprintf(c.out, "unknown command %q\n", line)
		}
	}
}
