package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cmsadmin/internal/domain"
)

// departmentsScreen is the admin department CRUD screen.
func (c *Console) departmentsScreen(ctx context.Context) (string, error) {
	_, next, err := c.enter(ctx, "Access denied. Admin role required.", domain.RoleAdmin)
	if next != "" || err != nil {
		return next, err
	}

	if err := c.departments.Reload(ctx); err != nil {
		fmt.Fprintf(c.out, "Failed to load departments: %v\n", err)
	}

	fmt.Fprintln(c.out, "\n== Departments ==")
	for {
		c.renderDepartments(c.departments.Departments())
		fmt.Fprintln(c.out, "commands: add | edit <id> | del <id> | r(eload) | b(ack) | q(uit)")

		line, rerr := c.readLine("departments> ")
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
			c.departmentCreate(ctx)
		case "edit":
			if len(fields) != 2 {
				fmt.Fprintln(c.out, "usage: edit <id>")
				continue
			}
			c.departmentEdit(ctx, fields[1])
		case "del":
			if len(fields) != 2 {
				fmt.Fprintln(c.out, "usage: del <id>")
				continue
			}
			c.departmentDelete(ctx, fields[1])
		case "r":
			if err := c.departments.Reload(ctx); err != nil {
				fmt.Fprintf(c.out, "Failed to load departments: %v\n", err)
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

func (c *Console) departmentCreate(ctx context.Context) {
	name, err := c.readLine("Name: ")
	if err != nil {
		return
	}
	code, err := c.readLine("Code: ")
	if err != nil {
		return
	}

	created, err := c.departments.Create(ctx, name, code)
	if err != nil {
		fmt.Fprintf(c.out, "Create failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Created department #%d %s\n", created.ID, created.Code)
}

func (c *Console) departmentEdit(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	current, ok := c.departments.StartEdit(id)
	if !ok {
		fmt.Fprintf(c.out, "no department with id %d\n", id)
		return
	}

	name, err := c.readDefault("Name", current.Name)
	if err != nil {
		c.departments.CancelEdit()
		return
	}
	code, err := c.readDefault("Code", current.Code)
	if err != nil {
		c.departments.CancelEdit()
		return
	}

	if _, err := c.departments.Update(ctx, id, name, code, current.HODUserID); err != nil {
		fmt.Fprintf(c.out, "Update failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Updated department #%d\n", id)
}

func (c *Console) departmentDelete(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	deleted, err := c.departments.Delete(ctx, id)
	if err != nil {
		fmt.Fprintf(c.out, "Delete failed: %v\n", err)
		return
	}
	if deleted {
		fmt.Fprintf(c.out, "Deleted department #%d\n", id)
	}
}
