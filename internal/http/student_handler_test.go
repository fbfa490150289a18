package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/auth"
	"github.com/secretaria-online/secretaria-api/internal/http/middleware"
	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/repository"
	"github.com/secretaria-online/secretaria-api/internal/service"
)

// stubStore backs handler tests with an in-memory student repository; the
// remaining aggregates are not exercised here.
type stubStore struct {
	students *stubStudents
}

func newStubStore() *stubStore {
	return &stubStore{students: &stubStudents{items: make(map[uuid.UUID]model.Student)}}
}

func (s *stubStore) Users() repository.UserRepository                 { return nil }
func (s *stubStore) Students() repository.StudentRepository           { return s.students }
func (s *stubStore) Teachers() repository.TeacherRepository           { return nil }
func (s *stubStore) Courses() repository.CourseRepository             { return nil }
func (s *stubStore) Disciplines() repository.DisciplineRepository     { return nil }
func (s *stubStore) Classes() repository.ClassRepository              { return nil }
func (s *stubStore) Enrollments() repository.EnrollmentRepository     { return nil }
func (s *stubStore) Evaluations() repository.EvaluationRepository     { return nil }
func (s *stubStore) Grades() repository.GradeRepository               { return nil }
func (s *stubStore) Documents() repository.DocumentRepository         { return nil }
func (s *stubStore) Contracts() repository.ContractRepository         { return nil }
func (s *stubStore) Templates() repository.ContractTemplateRepository { return nil }

func (s *stubStore) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

type stubStudents struct {
	items map[uuid.UUID]model.Student
}

func (r *stubStudents) Create(ctx context.Context, student *model.Student) error {
	r.items[student.ID] = *student
	return nil
}

func (r *stubStudents) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	student, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &student, nil
}

func (r *stubStudents) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Student, error) {
	for _, student := range r.items {
		if student.UserID != nil && *student.UserID == userID {
			s := student
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubStudents) GetByCPF(ctx context.Context, cpf string) (*model.Student, error) {
	for _, student := range r.items {
		if student.CPF == cpf {
			s := student
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubStudents) List(ctx context.Context, offset, limit int) ([]model.Student, int64, error) {
	students := make([]model.Student, 0, len(r.items))
	for _, student := range r.items {
		students = append(students, student)
	}
	return students, int64(len(students)), nil
}

func (r *stubStudents) ListActiveByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Student, error) {
	return nil, nil
}

func (r *stubStudents) Update(ctx context.Context, student *model.Student) error {
	r.items[student.ID] = *student
	return nil
}

func (r *stubStudents) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func studentTestRouter(store *stubStore) (*gin.Engine, *auth.Issuer) {
	gin.SetMode(gin.TestMode)

	secret := "test-secret"
	issuer := auth.NewIssuer(secret, time.Hour)
	parser := auth.NewParser(secret)

	h := NewHandler(Services{Students: service.NewStudentService(store)}, nil, "", "", zerolog.Nop())

	router := gin.New()
	authed := router.Group("", middleware.Auth(parser))
	authed.GET("/students/:id", h.getStudent)
	return router, issuer
}

func getStudentAs(t *testing.T, router *gin.Engine, issuer *auth.Issuer, user model.User, studentID uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	token, err := issuer.Issue(&user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/students/"+studentID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetStudentScopedToOwnRecord(t *testing.T) {
	store := newStubStore()
	router, issuer := studentTestRouter(store)

	ownerUserID := uuid.New()
	otherUserID := uuid.New()
	studentID := uuid.New()
	store.students.items[studentID] = model.Student{
		ID:     studentID,
		UserID: &ownerUserID,
		Name:   "Maria Souza",
		CPF:    "123.456.789-01",
	}

	rec := getStudentAs(t, router, issuer,
		model.User{ID: ownerUserID, Role: model.RoleStudent}, studentID)
	if rec.Code != http.StatusOK {
		t.Fatalf("owner read: status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = getStudentAs(t, router, issuer,
		model.User{ID: otherUserID, Role: model.RoleStudent}, studentID)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign read: status = %d, want 403, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != CodeForbidden {
		t.Fatalf("error code = %q, want %q", body.Error.Code, CodeForbidden)
	}
}

func TestGetStudentStaffUnrestricted(t *testing.T) {
	store := newStubStore()
	router, issuer := studentTestRouter(store)

	studentID := uuid.New()
	store.students.items[studentID] = model.Student{ID: studentID, Name: "Maria Souza"}

	for _, role := range []model.Role{model.RoleAdmin, model.RoleTeacher} {
		rec := getStudentAs(t, router, issuer,
			model.User{ID: uuid.New(), Role: role}, studentID)
		if rec.Code != http.StatusOK {
			t.Errorf("%s read: status = %d, body %s", role, rec.Code, rec.Body.String())
		}
	}
}
