package domain

// Course belongs to exactly one department and has exactly one assigned
// instructor, who must hold a teaching role.
type Course struct {
	ID           int64   `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	Semester     *string `json:"semester,omitempty"`
	Credits      *int    `json:"credits,omitempty"`
	DepartmentID int64   `json:"department_id"`
	TeacherID    int64   `json:"teacher_id"`
}

// CourseFilter narrows a course listing. Nil fields are omitted from the
// request entirely.
type CourseFilter struct {
	DepartmentID *int64
	TeacherID    *int64
	Semester     *string
}

// CourseCreate is the payload for creating a course. Department and
// teacher references are mandatory.
type CourseCreate struct {
	Code         string  `json:"code" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Description  *string `json:"description"`
	Semester     *string `json:"semester"`
	Credits      *int    `json:"credits" validate:"omitempty,gte=0"`
	DepartmentID int64   `json:"department_id" validate:"required"`
	TeacherID    int64   `json:"teacher_id" validate:"required"`
}

// CourseUpdate is the payload for updating a course. The full field set is
// always sent.
type CourseUpdate struct {
	Code         string  `json:"code" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Description  *string `json:"description"`
	Semester     *string `json:"semester"`
	Credits      *int    `json:"credits" validate:"omitempty,gte=0"`
	DepartmentID *int64  `json:"department_id"`
	TeacherID    *int64  `json:"teacher_id"`
}
