package term

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"cmsadmin/internal/app"
	"cmsadmin/internal/domain"
)

// enter runs the authorization gate for a screen and translates every
// non-authorized outcome into the next route. identity is non-nil only
// when the screen may render.
func (c *Console) enter(ctx context.Context, denyMsg string, allowed ...domain.Role) (*domain.User, string, error) {
	d := c.gate.Authorize(ctx, allowed...)
	switch d.State {
	case app.Unauthenticated:
		return nil, routeLogin, nil
	case app.LoadError:
		next, err := c.identityLoadError(d.Err)
		return nil, next, err
	case app.Forbidden:
		fmt.Fprintln(c.out, denyMsg)
		return nil, routeDashboard, nil
	}
	return d.Identity, "", nil
}

func (c *Console) renderDepartments(departments []domain.Department) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tHOD")
	for _, d := range departments {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", d.ID, d.Code, d.Name, int64PtrLabel(d.HODUserID))
	}
	_ = w.Flush()
}

func (c *Console) renderUsers(users []domain.User) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tDEPT\tACTIVE")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%t\n",
			u.ID, u.FullName, u.Email, u.Role, int64PtrLabel(u.DepartmentID), u.IsActive)
	}
	_ = w.Flush()
}

func (c *Console) renderCourses(courses []domain.Course) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tSEMESTER\tCREDITS\tDEPT\tTEACHER")
	for _, course := range courses {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%d\n",
			course.ID, course.Code, course.Name,
			strPtrLabel(course.Semester), intPtrLabel(course.Credits),
			course.DepartmentID, course.TeacherID)
	}
	_ = w.Flush()
}

func int64PtrLabel(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}

func intPtrLabel(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func strPtrLabel(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// parseID reads a positive record id from a command argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
