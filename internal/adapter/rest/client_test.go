package rest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"cmsadmin/internal/adapter/rest"
	"cmsadmin/internal/domain"
)

type staticTokens struct {
	token string
	ok    bool
}

func (s staticTokens) Token() (string, bool) { return s.token, s.ok }

func newClient(t *testing.T, handler http.Handler, tokens domain.TokenSource) (*rest.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return rest.New(rest.Config{BaseURL: srv.URL}, tokens), srv
}

func TestClient_LoginSendsNoBearer(t *testing.T) {
	var gotAuth string
	var gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","token_type":"bearer"}`))
	})
	client, _ := newClient(t, handler, staticTokens{})

	token, err := client.Login(context.Background(), "a@x.edu", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "tok-123" {
		t.Errorf("token = %q", token)
	}
	if gotPath != "/auth/login" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "" {
		t.Errorf("login sent Authorization %q; want none", gotAuth)
	}
}

func TestClient_LoginFailureUsesDetail(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	})
	client, _ := newClient(t, handler, staticTokens{})

	_, err := client.Login(context.Background(), "a@x.edu", "wrong")
	if err == nil {
		t.Fatal("Login succeeded; want error")
	}
	if err.Error() != "Incorrect email or password" {
		t.Errorf("err = %q; want server detail", err.Error())
	}

	var apiErr *rest.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Errorf("err = %#v; want *APIError with status 401", err)
	}
}

func TestClient_GenericMessageWhenDetailMissing(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client, _ := newClient(t, handler, staticTokens{token: "t", ok: true})

	_, err := client.CreateDepartment(context.Background(), domain.DepartmentCreate{Name: "CS", Code: "CS"})
	if err == nil {
		t.Fatal("CreateDepartment succeeded; want error")
	}
	want := "create department failed with status 500"
	if err.Error() != want {
		t.Errorf("err = %q; want %q", err.Error(), want)
	}
}

func TestClient_AuthenticatedCallAttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"full_name":"A","email":"a@x.edu","role":"admin","is_active":true}`))
	})
	client, _ := newClient(t, handler, staticTokens{token: "secret", ok: true})

	me, err := client.CurrentIdentity(context.Background())
	if err != nil {
		t.Fatalf("CurrentIdentity: %v", err)
	}
	if me.Role != domain.RoleAdmin {
		t.Errorf("role = %q", me.Role)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReqID == "" {
		t.Error("X-Request-ID missing")
	}
}

func TestClient_NoTokenFailsWithoutRequest(t *testing.T) {
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	client, _ := newClient(t, handler, staticTokens{})

	_, err := client.ListDepartments(context.Background())
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("err = %v; want ErrNotAuthenticated", err)
	}
	if calls != 0 {
		t.Errorf("server saw %d requests; want 0", calls)
	}
}

func TestClient_CourseFilterOmitsAbsentFields(t *testing.T) {
	var gotQuery url.Values
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
	client, _ := newClient(t, handler, staticTokens{token: "t", ok: true})

	sem := "SEM1"
	_, err := client.ListCourses(context.Background(), domain.CourseFilter{Semester: &sem})
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}

	if len(gotQuery) != 1 {
		t.Fatalf("query = %v; want exactly one parameter", gotQuery)
	}
	if gotQuery.Get("semester") != "SEM1" {
		t.Errorf("semester = %q", gotQuery.Get("semester"))
	}
	if _, ok := gotQuery["department_id"]; ok {
		t.Error("department_id sent despite absent filter")
	}
	if _, ok := gotQuery["teacher_id"]; ok {
		t.Error("teacher_id sent despite absent filter")
	}
}

func TestClient_UserFilterSerialization(t *testing.T) {
	var gotQuery url.Values
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
	client, _ := newClient(t, handler, staticTokens{token: "t", ok: true})

	role := domain.RoleTeacher
	dept := int64(3)
	active := false
	_, err := client.ListUsers(context.Background(), domain.UserFilter{
		Role:         &role,
		DepartmentID: &dept,
		IsActive:     &active,
	})
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}

	if gotQuery.Get("role") != "teacher" || gotQuery.Get("department_id") != "3" || gotQuery.Get("is_active") != "false" {
		t.Errorf("query = %v", gotQuery)
	}
}

func TestClient_DeleteTreats204AsSuccess(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/courses/7" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	client, _ := newClient(t, handler, staticTokens{token: "t", ok: true})

	if err := client.DeleteCourse(context.Background(), 7); err != nil {
		t.Fatalf("DeleteCourse: %v", err)
	}
}

func TestClient_MutationSendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		gotBody = buf
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":3,"name":"Computer Science","code":"CS"}`))
	})
	client, _ := newClient(t, handler, staticTokens{token: "t", ok: true})

	created, err := client.CreateDepartment(context.Background(), domain.DepartmentCreate{Name: "Computer Science", Code: "CS"})
	if err != nil {
		t.Fatalf("CreateDepartment: %v", err)
	}
	if created.ID != 3 {
		t.Errorf("created = %+v", created)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if len(gotBody) == 0 {
		t.Error("empty request body")
	}
}

func TestClient_TeacherEndpoints(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/teacher/courses":
			_, _ = w.Write([]byte(`[{"id":1,"code":"CS101","name":"Intro","department_id":1,"teacher_id":9}]`))
		case "/teacher/courses/1/students":
			_, _ = w.Write([]byte(`[{"id":11,"full_name":"S One","email":"s1@x.edu","role":"student","is_active":true}]`))
		default:
			http.NotFound(w, r)
		}
	})
	client, _ := newClient(t, handler, staticTokens{token: "t", ok: true})

	courses, err := client.MyCourses(context.Background())
	if err != nil || len(courses) != 1 {
		t.Fatalf("MyCourses = %+v, %v", courses, err)
	}
	students, err := client.EnrolledStudents(context.Background(), 1)
	if err != nil || len(students) != 1 {
		t.Fatalf("EnrolledStudents = %+v, %v", students, err)
	}
	if students[0].Role != domain.RoleStudent {
		t.Errorf("student role = %q", students[0].Role)
	}
}
