package term

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cmsadmin/internal/app"
	"cmsadmin/internal/domain"
)

// dashboardScreen shows the identity banner and the navigation links the
// role is entitled to. It performs no gating itself; each destination
// screen re-checks on entry.
func (c *Console) dashboardScreen(ctx context.Context) (string, error) {
	d := c.gate.Authorize(ctx)
	switch d.State {
	case app.Unauthenticated:
		return routeLogin, nil
	case app.LoadError:
		return c.identityLoadError(d.Err)
	}
	me := d.Identity

	fmt.Fprintln(c.out, "\n== Dashboard ==")
	fmt.Fprintf(c.out, "Name:  %s\n", me.FullName)
	fmt.Fprintf(c.out, "Email: %s\n", me.Email)
	fmt.Fprintf(c.out, "Role:  %s\n", me.Role)
	if me.DepartmentID != nil {
		fmt.Fprintf(c.out, "Department: #%d\n", *me.DepartmentID)
	}

	fmt.Fprintln(c.out)
	if me.Role == domain.RoleAdmin {
		fmt.Fprintln(c.out, "  d - manage departments")
		fmt.Fprintln(c.out, "  u - manage users")
		fmt.Fprintln(c.out, "  c - manage courses")
	}
	if me.Role.CanTeach() {
		fmt.Fprintln(c.out, "  t - my teaching courses")
	}
	fmt.Fprintln(c.out, "  logout - sign out")
	fmt.Fprintln(c.out, "  q - quit")

	for {
		cmd, err := c.readLine("> ")
		if errors.Is(err, io.EOF) {
			return routeQuit, nil
		}
		if err != nil {
			return "", err
		}
		switch cmd {
		case "d":
			return routeDepartments, nil
		case "u":
			return routeUsers, nil
		case "c":
			return routeCourses, nil
		case "t":
			return routeTeacher, nil
		case "logout":
			c.store.ClearToken()
			return routeLogin, nil
		case "q":
			return routeQuit, nil
		case "":
			return routeDashboard, nil
		default:
			fmt.Fprintf(c.out, "unknown command %q\n", cmd)
		}
	}
}

// identityLoadError reports a failed identity fetch. The stored token is
// left untouched so the user can see what went wrong before re-logging.
func (c *Console) identityLoadError(err error) (string, error) {
	fmt.Fprintf(c.out, "Failed to load user: %v\n", err)
	fmt.Fprintln(c.out, "Please login again.")
	answer, rerr := c.readLine("  l - go to login, q - quit > ")
	if errors.Is(rerr, io.EOF) || answer == "q" {
		return routeQuit, nil
	}
	if rerr != nil {
		return "", rerr
	}
	return routeLogin, nil
}
