package domain

// Department groups users and courses. Code is the short human-facing
// label used throughout the UI.
type Department struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	HODUserID *int64 `json:"hod_user_id,omitempty"`
}

// DepartmentCreate is the payload for creating a department.
type DepartmentCreate struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

// DepartmentUpdate is the payload for updating a department. HODUserID is
// sent explicitly, null when unset.
type DepartmentUpdate struct {
	Name      string `json:"name" validate:"required"`
	Code      string `json:"code" validate:"required"`
	HODUserID *int64 `json:"hod_user_id"`
}
