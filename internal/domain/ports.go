package domain

import (
	"context"
	"errors"
)

// ErrNotAuthenticated indicates that no token is available for an
// authenticated call. No network request is attempted in that case.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrBusy indicates that a mutation is already in flight on the screen.
var ErrBusy = errors.New("another change is still being saved")

// TokenStorage is one tier of credential storage. Implementations report
// absence via ok rather than an error.
type TokenStorage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// TokenSource yields the current bearer token, if any.
type TokenSource interface {
	Token() (string, bool)
}

// AuthAPI covers login and identity resolution.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	CurrentIdentity(ctx context.Context) (*User, error)
}

// DepartmentAPI is the port for department CRUD against the remote service.
type DepartmentAPI interface {
	ListDepartments(ctx context.Context) ([]Department, error)
	CreateDepartment(ctx context.Context, p DepartmentCreate) (*Department, error)
	UpdateDepartment(ctx context.Context, id int64, p DepartmentUpdate) (*Department, error)
	DeleteDepartment(ctx context.Context, id int64) error
}

// UserAPI is the port for user CRUD against the remote service.
type UserAPI interface {
	ListUsers(ctx context.Context, f UserFilter) ([]User, error)
	CreateUser(ctx context.Context, p UserCreate) (*User, error)
	UpdateUser(ctx context.Context, id int64, p UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// CourseAPI is the port for course CRUD against the remote service.
type CourseAPI interface {
	ListCourses(ctx context.Context, f CourseFilter) ([]Course, error)
	GetCourse(ctx context.Context, id int64) (*Course, error)
	CreateCourse(ctx context.Context, p CourseCreate) (*Course, error)
	UpdateCourse(ctx context.Context, id int64, p CourseUpdate) (*Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// TeacherAPI is the read-only port for the caller's own teaching view.
type TeacherAPI interface {
	MyCourses(ctx context.Context) ([]Course, error)
	EnrolledStudents(ctx context.Context, courseID int64) ([]User, error)
}
