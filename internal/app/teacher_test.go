package app

import (
	"context"
	"errors"
	"testing"

	"cmsadmin/internal/domain"
)

type mockTeacherAPI struct {
	myCoursesFn func(ctx context.Context) ([]domain.Course, error)
	studentsFn  func(ctx context.Context, courseID int64) ([]domain.User, error)
}

func (m *mockTeacherAPI) MyCourses(ctx context.Context) ([]domain.Course, error) {
	if m.myCoursesFn != nil {
		return m.myCoursesFn(ctx)
	}
	return nil, nil
}

func (m *mockTeacherAPI) EnrolledStudents(ctx context.Context, courseID int64) ([]domain.User, error) {
	if m.studentsFn != nil {
		return m.studentsFn(ctx, courseID)
	}
	return nil, nil
}

func TestTeacher_ReloadCachesCourses(t *testing.T) {
	ctx := context.Background()
	api := &mockTeacherAPI{
		myCoursesFn: func(ctx context.Context) ([]domain.Course, error) {
			return []domain.Course{{ID: 1, Code: "CS101", Name: "Intro", DepartmentID: 1, TeacherID: 9}}, nil
		},
	}
	c := NewTeacherController(api, &mockCourseAPI{})

	if err := c.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	got := c.Courses()
	if len(got) != 1 || got[0].Code != "CS101" {
		t.Fatalf("courses = %+v", got)
	}
}

func TestTeacher_DetailPairsCourseWithRoster(t *testing.T) {
	ctx := context.Background()
	teacherAPI := &mockTeacherAPI{
		studentsFn: func(ctx context.Context, courseID int64) ([]domain.User, error) {
			if courseID != 5 {
				t.Errorf("roster fetched for course %d; want 5", courseID)
			}
			return []domain.User{{ID: 11, FullName: "S One", Role: domain.RoleStudent}}, nil
		},
	}
	courseAPI := &mockCourseAPI{
		getFn: func(ctx context.Context, id int64) (*domain.Course, error) {
			return &domain.Course{ID: id, Code: "CS500", Name: "Compilers", DepartmentID: 1, TeacherID: 9}, nil
		},
	}
	c := NewTeacherController(teacherAPI, courseAPI)

	course, students, err := c.Detail(ctx, 5)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if course.ID != 5 || len(students) != 1 {
		t.Fatalf("course = %+v, students = %+v", course, students)
	}
}

func TestTeacher_DetailPropagatesCourseError(t *testing.T) {
	ctx := context.Background()
	courseAPI := &mockCourseAPI{
		getFn: func(ctx context.Context, id int64) (*domain.Course, error) {
			return nil, errors.New("course not found")
		},
	}
	c := NewTeacherController(&mockTeacherAPI{}, courseAPI)

	if _, _, err := c.Detail(ctx, 5); err == nil {
		t.Fatal("Detail succeeded; want error")
	}
}
