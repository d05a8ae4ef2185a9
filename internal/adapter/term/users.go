package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cmsadmin/internal/domain"
)

// usersScreen is the admin user CRUD screen.
func (c *Console) usersScreen(ctx context.Context) (string, error) {
	_, next, err := c.enter(ctx, "Access denied. Admin role required.", domain.RoleAdmin)
	if next != "" || err != nil {
		return next, err
	}

	if !c.users.ReferenceDataLoaded() {
		fmt.Fprintln(c.out, "Loading departments...")
		if err := c.users.LoadReferenceData(ctx); err != nil {
			fmt.Fprintf(c.out, "Failed to load departments: %v\n", err)
		}
	}
	if err := c.users.Reload(ctx); err != nil {
		fmt.Fprintf(c.out, "Failed to load users: %v\n", err)
	}

	fmt.Fprintln(c.out, "\n== Users ==")
	for {
		c.renderUsers(c.users.Users())
		fmt.Fprintln(c.out, "commands: add | edit <id> | del <id> | filter role=<r> dept=<id> active=<bool> | filter clear | r | b | q")

		line, rerr := c.readLine("users> ")
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
			c.userCreate(ctx)
		case "edit":
			if len(fields) != 2 {
				fmt.Fprintln(c.out, "usage: edit <id>")
				continue
			}
			c.userEdit(ctx, fields[1])
		case "del":
			if len(fields) != 2 {
				fmt.Fprintln(c.out, "usage: del <id>")
				continue
			}
			c.userDelete(ctx, fields[1])
		case "filter":
			c.userFilter(ctx, fields[1:])
		case "r":
			if err := c.users.Reload(ctx); err != nil {
				fmt.Fprintf(c.out, "Failed to load users: %v\n", err)
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

// userFilter rewrites the active filter from key=value arguments and
// reloads. Every change triggers a fresh fetch; stale responses are
// discarded by the controller's generation check.
func (c *Console) userFilter(ctx context.Context, args []string) {
	if len(args) == 1 && args[0] == "clear" {
		c.users.SetFilter(domain.UserFilter{})
	} else {
		f := domain.UserFilter{}
		for _, arg := range args {
			key, value, ok := strings.Cut(arg, "=")
			if !ok {
				fmt.Fprintf(c.out, "bad filter %q, want key=value\n", arg)
				return
			}
			switch key {
			case "role":
				role, err := domain.ParseRole(value)
				if err != nil {
					fmt.Fprintln(c.out, err)
					return
				}
				f.Role = &role
			case "dept":
				id, err := parseID(value)
				if err != nil {
					fmt.Fprintln(c.out, err)
					return
				}
				f.DepartmentID = &id
			case "active":
				active, err := strconv.ParseBool(value)
				if err != nil {
					fmt.Fprintf(c.out, "bad active value %q\n", value)
					return
				}
				f.IsActive = &active
			default:
				fmt.Fprintf(c.out, "unknown filter key %q\n", key)
				return
			}
		}
		c.users.SetFilter(f)
	}

	if err := c.users.Reload(ctx); err != nil {
		fmt.Fprintf(c.out, "Failed to load users: %v\n", err)
	}
}

func (c *Console) userCreate(ctx context.Context) {
	if !c.users.ReferenceDataLoaded() {
		fmt.Fprintln(c.out, "departments still loading; try again")
		return
	}

	fullName, err := c.readLine("Full name: ")
	if err != nil {
		return
	}
	email, err := c.readLine("Email: ")
	if err != nil {
		return
	}
	password, err := c.readPassword("Password: ")
	if err != nil {
		return
	}
	role, err := c.readRole("Role", string(domain.RoleStudent))
	if err != nil {
		return
	}
	deptID, err := c.readOptionalDept("Department id (empty for none)")
	if err != nil {
		return
	}

	created, cerr := c.users.Create(ctx, domain.UserCreate{
		FullName:     fullName,
		Email:        email,
		Password:     password,
		Role:         role,
		DepartmentID: deptID,
	})
	if cerr != nil {
		fmt.Fprintf(c.out, "Create failed: %v\n", cerr)
		return
	}
	fmt.Fprintf(c.out, "Created user #%d %s\n", created.ID, created.Email)
}

func (c *Console) userEdit(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	current, ok := c.users.StartEdit(id)
	if !ok {
		fmt.Fprintf(c.out, "no user with id %d\n", id)
		return
	}

	fullName, err := c.readDefault("Full name", current.FullName)
	if err != nil {
		c.users.CancelEdit()
		return
	}
	email, err := c.readDefault("Email", current.Email)
	if err != nil {
		c.users.CancelEdit()
		return
	}
	role, err := c.readRole("Role", string(current.Role))
	if err != nil {
		c.users.CancelEdit()
		return
	}
	deptID, err := c.readDeptEdit(current.DepartmentID)
	if err != nil {
		c.users.CancelEdit()
		return
	}
	active, err := c.readDefault("Active (true/false)", strconv.FormatBool(current.IsActive))
	if err != nil {
		c.users.CancelEdit()
		return
	}
	isActive, perr := strconv.ParseBool(active)
	if perr != nil {
		isActive = current.IsActive
	}

	if _, err := c.users.Update(ctx, id, domain.UserUpdate{
		FullName:     fullName,
		Email:        email,
		Role:         role,
		DepartmentID: deptID,
		IsActive:     isActive,
	}); err != nil {
		fmt.Fprintf(c.out, "Update failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Updated user #%d\n", id)
}

func (c *Console) userDelete(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	deleted, err := c.users.Delete(ctx, id)
	if err != nil {
		fmt.Fprintf(c.out, "Delete failed: %v\n", err)
		return
	}
	if deleted {
		fmt.Fprintf(c.out, "Deleted user #%d\n", id)
	}
}

func (c *Console) readRole(prompt, def string) (domain.Role, error) {
	for {
		raw, err := c.readDefault(prompt+" (admin/hod/teacher/ta/student)", def)
		if err != nil {
			return "", err
		}
		role, perr := domain.ParseRole(raw)
		if perr != nil {
			fmt.Fprintln(c.out, perr)
			continue
		}
		return role, nil
	}
}

func (c *Console) readOptionalDept(prompt string) (*int64, error) {
	raw, err := c.readLine(prompt + ": ")
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	id, perr := parseID(raw)
	if perr != nil {
		fmt.Fprintln(c.out, perr)
		return nil, nil
	}
	return &id, nil
}

// readDeptEdit prompts for the department during an edit. An empty answer
// keeps the current assignment; "none" clears it.
func (c *Console) readDeptEdit(current *int64) (*int64, error) {
	def := "none"
	if current != nil {
		def = strconv.FormatInt(*current, 10)
	}
	for {
		raw, err := c.readDefault("Department id ('none' to clear)", def)
		if err != nil {
			return nil, err
		}
		if raw == "none" {
			return nil, nil
		}
		id, perr := parseID(raw)
		if perr != nil {
			fmt.Fprintln(c.out, perr)
			continue
		}
		return &id, nil
	}
}
