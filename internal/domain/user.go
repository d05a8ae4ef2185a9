// Package domain contains the core entities and the ports the adapters
// implement.
package domain

import "fmt"

// Role classifies a user. The set is closed; the server rejects anything
// else.
type Role string

// All roles known to the system.
const (
	RoleAdmin   Role = "admin"
	RoleHOD     Role = "hod"
	RoleTeacher Role = "teacher"
	RoleTA      Role = "ta"
	RoleStudent Role = "student"
)

// AllRoles lists every valid role, in display order.
var AllRoles = []Role{RoleAdmin, RoleHOD, RoleTeacher, RoleTA, RoleStudent}

// ParseRole validates a raw role string against the closed set.
func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles {
		if s == string(r) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// CanTeach reports whether the role may be assigned as a course instructor.
func (r Role) CanTeach() bool {
	return r == RoleTeacher || r == RoleHOD
}

// In reports whether the role is a member of the given set.
func (r Role) In(set ...Role) bool {
	for _, s := range set {
		if r == s {
			return true
		}
	}
	return false
}

// User is a directory record. The same shape doubles as the current
// caller's identity from /users/me.
type User struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	DepartmentID *int64 `json:"department_id,omitempty"`
	IsActive     bool   `json:"is_active"`
}

// UserFilter narrows a user listing. Nil fields are omitted from the
// request entirely.
type UserFilter struct {
	Role         *Role
	DepartmentID *int64
	IsActive     *bool
}

// UserCreate is the payload for creating a user.
type UserCreate struct {
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Role         Role   `json:"role" validate:"required,oneof=admin hod teacher ta student"`
	DepartmentID *int64 `json:"department_id"`
}

// UserUpdate is the payload for updating a user. The full field set is
// always sent.
type UserUpdate struct {
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Role         Role   `json:"role" validate:"required,oneof=admin hod teacher ta student"`
	DepartmentID *int64 `json:"department_id"`
	IsActive     bool   `json:"is_active"`
}
