package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cmsadmin/internal/app"
)

// loginScreen authenticates the user. A remembered token that still
// resolves an identity skips the credential prompt entirely.
func (c *Console) loginScreen(ctx context.Context) (string, error) {
	if d := c.gate.Authorize(ctx); d.State == app.Authorized {
		fmt.Fprintf(c.out, "Welcome back, %s.\n", d.Identity.FullName)
		return routeDashboard, nil
	}

	fmt.Fprintln(c.out, "\n== Login ==")
	for {
		email, err := c.readLine("Email (or 'q' to quit): ")
		if errors.Is(err, io.EOF) {
			return routeQuit, nil
		}
		if err != nil {
			return "", err
		}
		if email == "q" {
			return routeQuit, nil
		}

		password, err := c.readPassword("Password: ")
		if err != nil {
			return "", err
		}

		remember, err := c.readDefault("Remember me (y/n)", "y")
		if err != nil {
			return "", err
		}

		token, err := c.api.Login(ctx, email, password)
		if err != nil {
			fmt.Fprintf(c.out, "Login failed: %v\n", err)
			continue
		}

		c.store.SetToken(token, strings.HasPrefix(strings.ToLower(remember), "y"))
		return routeDashboard, nil
	}
}
