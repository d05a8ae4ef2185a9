package app

import (
	"context"
	"reflect"
	"testing"

	"cmsadmin/internal/domain"
)

func TestUsers_ReloadUsesActiveFilter(t *testing.T) {
	ctx := context.Background()
	var seen domain.UserFilter
	api := &mockUserAPI{
		listFn: func(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
			seen = f
			return []domain.User{{ID: 1, FullName: "A", Email: "a@x.edu", Role: domain.RoleTeacher}}, nil
		},
	}
	c := NewUsersController(api, &mockDepartmentAPI{}, ConfirmerFunc(alwaysConfirm))

	role := domain.RoleTeacher
	active := true
	c.SetFilter(domain.UserFilter{Role: &role, IsActive: &active})
	if err := c.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	if seen.Role == nil || *seen.Role != domain.RoleTeacher {
		t.Errorf("role filter not passed through: %+v", seen)
	}
	if seen.IsActive == nil || !*seen.IsActive {
		t.Errorf("active filter not passed through: %+v", seen)
	}
	if seen.DepartmentID != nil {
		t.Error("department filter invented out of nowhere")
	}
	if len(c.Users()) != 1 {
		t.Errorf("list = %+v", c.Users())
	}
}

func TestUsers_CreateTrimsAndAppends(t *testing.T) {
	ctx := context.Background()
	var sent domain.UserCreate
	api := &mockUserAPI{
		createFn: func(ctx context.Context, p domain.UserCreate) (*domain.User, error) {
			sent = p
			return &domain.User{ID: 8, FullName: p.FullName, Email: p.Email, Role: p.Role, IsActive: true}, nil
		},
	}
	c := NewUsersController(api, &mockDepartmentAPI{}, ConfirmerFunc(alwaysConfirm))

	created, err := c.Create(ctx, domain.UserCreate{
		FullName: "  Dana Li  ",
		Email:    " dana@example.edu ",
		Password: "correct-horse",
		Role:     domain.RoleTA,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sent.FullName != "Dana Li" || sent.Email != "dana@example.edu" {
		t.Errorf("sent = %+v; fields not trimmed", sent)
	}

	got := c.Users()
	if len(got) != 1 || got[0] != *created {
		t.Fatalf("list = %+v; want exactly the server record", got)
	}
}

func TestUsers_CreateRejectsBadEmail(t *testing.T) {
	ctx := context.Background()
	calls := 0
	api := &mockUserAPI{
		createFn: func(ctx context.Context, p domain.UserCreate) (*domain.User, error) {
			calls++
			return &domain.User{ID: 1}, nil
		},
	}
	c := NewUsersController(api, &mockDepartmentAPI{}, ConfirmerFunc(alwaysConfirm))

	_, err := c.Create(ctx, domain.UserCreate{
		FullName: "Dana Li",
		Email:    "not-an-email",
		Password: "correct-horse",
		Role:     domain.RoleTA,
	})
	if !IsValidationError(err) {
		t.Fatalf("err = %v; want validation error", err)
	}
	if calls != 0 {
		t.Errorf("create issued %d requests; want 0", calls)
	}
}

func TestUsers_UpdateReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	seed := []domain.User{
		{ID: 1, FullName: "A", Email: "a@x.edu", Role: domain.RoleStudent, IsActive: true},
		{ID: 2, FullName: "B", Email: "b@x.edu", Role: domain.RoleStudent, IsActive: true},
	}
	c := NewUsersController(&mockUserAPI{}, &mockDepartmentAPI{}, ConfirmerFunc(alwaysConfirm))
	c.users = append([]domain.User(nil), seed...)

	c.StartEdit(2)
	updated, err := c.Update(ctx, 2, domain.UserUpdate{
		FullName: "B Prime",
		Email:    "b@x.edu",
		Role:     domain.RoleTA,
		IsActive: false,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got := c.Users()
	if got[0] != seed[0] {
		t.Error("untouched element changed")
	}
	if got[1] != *updated {
		t.Errorf("got[1] = %+v; want %+v", got[1], *updated)
	}
}

func TestUsers_DeleteDeclinedLeavesListUnchanged(t *testing.T) {
	ctx := context.Background()
	seed := []domain.User{{ID: 1, FullName: "A", Email: "a@x.edu", Role: domain.RoleStudent}}
	calls := 0
	api := &mockUserAPI{
		deleteFn: func(ctx context.Context, id int64) error {
			calls++
			return nil
		},
	}
	c := NewUsersController(api, &mockDepartmentAPI{}, ConfirmerFunc(neverConfirm))
	c.users = append([]domain.User(nil), seed...)

	deleted, err := c.Delete(ctx, 1)
	if err != nil || deleted {
		t.Fatalf("Delete = %v, %v; want declined", deleted, err)
	}
	if calls != 0 {
		t.Errorf("delete issued %d requests; want 0", calls)
	}
	if !reflect.DeepEqual(c.Users(), seed) {
		t.Error("list changed on declined delete")
	}
}
