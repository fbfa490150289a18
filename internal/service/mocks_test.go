package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/repository"
)

// mockStore keeps everything in maps so services can be exercised without a
// database. Values are stored by value; reads hand out copies, so a rolled
// back transaction cannot leak partial writes.
type mockStore struct {
	users       map[uuid.UUID]model.User
	students    map[uuid.UUID]model.Student
	teachers    map[uuid.UUID]model.Teacher
	courses     map[uuid.UUID]model.Course
	disciplines map[uuid.UUID]model.Discipline
	classes     map[uuid.UUID]model.Class
	enrollments map[uuid.UUID]model.Enrollment
	evaluations map[uuid.UUID]model.Evaluation
	grades      map[uuid.UUID]model.Grade
	documents   map[uuid.UUID]model.Document
	contracts   map[uuid.UUID]model.Contract
	templates   map[uuid.UUID]model.ContractTemplate

	reenrollErr         error
	enrollmentUpdateErr error
	contractCreateErr   error
	contractUpdateErr   error
}

func newMockStore() *mockStore {
	return &mockStore{
		users:       make(map[uuid.UUID]model.User),
		students:    make(map[uuid.UUID]model.Student),
		teachers:    make(map[uuid.UUID]model.Teacher),
		courses:     make(map[uuid.UUID]model.Course),
		disciplines: make(map[uuid.UUID]model.Discipline),
		classes:     make(map[uuid.UUID]model.Class),
		enrollments: make(map[uuid.UUID]model.Enrollment),
		evaluations: make(map[uuid.UUID]model.Evaluation),
		grades:      make(map[uuid.UUID]model.Grade),
		documents:   make(map[uuid.UUID]model.Document),
		contracts:   make(map[uuid.UUID]model.Contract),
		templates:   make(map[uuid.UUID]model.ContractTemplate),
	}
}

func copyMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (m *mockStore) snapshot() *mockStore {
	clone := *m
	clone.users = copyMap(m.users)
	clone.students = copyMap(m.students)
	clone.teachers = copyMap(m.teachers)
	clone.courses = copyMap(m.courses)
	clone.disciplines = copyMap(m.disciplines)
	clone.classes = copyMap(m.classes)
	clone.enrollments = copyMap(m.enrollments)
	clone.evaluations = copyMap(m.evaluations)
	clone.grades = copyMap(m.grades)
	clone.documents = copyMap(m.documents)
	clone.contracts = copyMap(m.contracts)
	clone.templates = copyMap(m.templates)
	return &clone
}

func (m *mockStore) restore(snap *mockStore) {
	m.users = snap.users
	m.students = snap.students
	m.teachers = snap.teachers
	m.courses = snap.courses
	m.disciplines = snap.disciplines
	m.classes = snap.classes
	m.enrollments = snap.enrollments
	m.evaluations = snap.evaluations
	m.grades = snap.grades
	m.documents = snap.documents
	m.contracts = snap.contracts
	m.templates = snap.templates
}

// WithinTx mirrors the transactional contract: an error restores the state
// captured at entry.
func (m *mockStore) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	snap := m.snapshot()
	if err := fn(m); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

func (m *mockStore) Users() repository.UserRepository                 { return mockUsers{m} }
func (m *mockStore) Students() repository.StudentRepository           { return mockStudents{m} }
func (m *mockStore) Teachers() repository.TeacherRepository           { return mockTeachers{m} }
func (m *mockStore) Courses() repository.CourseRepository             { return mockCourses{m} }
func (m *mockStore) Disciplines() repository.DisciplineRepository     { return mockDisciplines{m} }
func (m *mockStore) Classes() repository.ClassRepository              { return mockClasses{m} }
func (m *mockStore) Enrollments() repository.EnrollmentRepository     { return mockEnrollments{m} }
func (m *mockStore) Evaluations() repository.EvaluationRepository     { return mockEvaluations{m} }
func (m *mockStore) Grades() repository.GradeRepository               { return mockGrades{m} }
func (m *mockStore) Documents() repository.DocumentRepository         { return mockDocuments{m} }
func (m *mockStore) Contracts() repository.ContractRepository         { return mockContracts{m} }
func (m *mockStore) Templates() repository.ContractTemplateRepository { return mockTemplates{m} }

type mockUsers struct{ s *mockStore }

func (r mockUsers) Create(_ context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r mockUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r mockUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range r.s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r mockUsers) Update(_ context.Context, user *model.User) error {
	if _, ok := r.s.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.users[user.ID] = *user
	return nil
}

type mockStudents struct{ s *mockStore }

func (r mockStudents) Create(_ context.Context, student *model.Student) error {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	r.s.students[student.ID] = *student
	return nil
}

func (r mockStudents) GetByID(_ context.Context, id uuid.UUID) (*model.Student, error) {
	student, ok := r.s.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &student, nil
}

func (r mockStudents) GetByUserID(_ context.Context, userID uuid.UUID) (*model.Student, error) {
	for _, student := range r.s.students {
		if student.UserID != nil && *student.UserID == userID {
			st := student
			return &st, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r mockStudents) GetByCPF(_ context.Context, cpf string) (*model.Student, error) {
	for _, student := range r.s.students {
		if student.CPF == cpf {
			st := student
			return &st, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r mockStudents) List(_ context.Context, offset, limit int) ([]model.Student, int64, error) {
	students := make([]model.Student, 0, len(r.s.students))
	for _, student := range r.s.students {
		students = append(students, student)
	}
	return students, int64(len(students)), nil
}

func (r mockStudents) ListActiveByCourse(_ context.Context, courseID uuid.UUID) ([]model.Student, error) {
	var students []model.Student
	for _, enrollment := range r.s.enrollments {
		if enrollment.CourseID == courseID && enrollment.Status == model.EnrollmentStatusActive {
			if student, ok := r.s.students[enrollment.StudentID]; ok {
				students = append(students, student)
			}
		}
	}
	return students, nil
}

func (r mockStudents) Update(_ context.Context, student *model.Student) error {
	if _, ok := r.s.students[student.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.students[student.ID] = *student
	return nil
}

func (r mockStudents) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.students, id)
	return nil
}

type mockTeachers struct{ s *mockStore }

func (r mockTeachers) Create(_ context.Context, teacher *model.Teacher) error {
	if teacher.ID == uuid.Nil {
		teacher.ID = uuid.New()
	}
	r.s.teachers[teacher.ID] = *teacher
	return nil
}

func (r mockTeachers) GetByID(_ context.Context, id uuid.UUID) (*model.Teacher, error) {
	teacher, ok := r.s.teachers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &teacher, nil
}

func (r mockTeachers) GetByUserID(_ context.Context, userID uuid.UUID) (*model.Teacher, error) {
	for _, teacher := range r.s.teachers {
		if teacher.UserID != nil && *teacher.UserID == userID {
			t := teacher
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r mockTeachers) List(_ context.Context, offset, limit int) ([]model.Teacher, int64, error) {
	teachers := make([]model.Teacher, 0, len(r.s.teachers))
	for _, teacher := range r.s.teachers {
		teachers = append(teachers, teacher)
	}
	return teachers, int64(len(teachers)), nil
}

func (r mockTeachers) Update(_ context.Context, teacher *model.Teacher) error {
	if _, ok := r.s.teachers[teacher.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.teachers[teacher.ID] = *teacher
	return nil
}

func (r mockTeachers) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.teachers, id)
	return nil
}

type mockCourses struct{ s *mockStore }

func (r mockCourses) Create(_ context.Context, course *model.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	r.s.courses[course.ID] = *course
	return nil
}

func (r mockCourses) GetByID(_ context.Context, id uuid.UUID) (*model.Course, error) {
	course, ok := r.s.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &course, nil
}

func (r mockCourses) List(_ context.Context, offset, limit int) ([]model.Course, int64, error) {
	courses, err := r.ListAll(context.Background())
	return courses, int64(len(courses)), err
}

func (r mockCourses) ListAll(_ context.Context) ([]model.Course, error) {
	courses := make([]model.Course, 0, len(r.s.courses))
	for _, course := range r.s.courses {
		courses = append(courses, course)
	}
	return courses, nil
}

func (r mockCourses) Update(_ context.Context, course *model.Course) error {
	if _, ok := r.s.courses[course.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.courses[course.ID] = *course
	return nil
}

func (r mockCourses) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.courses, id)
	return nil
}

type mockDisciplines struct{ s *mockStore }

func (r mockDisciplines) Create(_ context.Context, discipline *model.Discipline) error {
	if discipline.ID == uuid.Nil {
		discipline.ID = uuid.New()
	}
	r.s.disciplines[discipline.ID] = *discipline
	return nil
}

func (r mockDisciplines) GetByID(_ context.Context, id uuid.UUID) (*model.Discipline, error) {
	discipline, ok := r.s.disciplines[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &discipline, nil
}

func (r mockDisciplines) List(_ context.Context, offset, limit int) ([]model.Discipline, int64, error) {
	disciplines := make([]model.Discipline, 0, len(r.s.disciplines))
	for _, discipline := range r.s.disciplines {
		disciplines = append(disciplines, discipline)
	}
	return disciplines, int64(len(disciplines)), nil
}

func (r mockDisciplines) Update(_ context.Context, discipline *model.Discipline) error {
	if _, ok := r.s.disciplines[discipline.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.disciplines[discipline.ID] = *discipline
	return nil
}

func (r mockDisciplines) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.disciplines, id)
	return nil
}

type mockClasses struct{ s *mockStore }

func (r mockClasses) Create(_ context.Context, class *model.Class) error {
	if class.ID == uuid.Nil {
		class.ID = uuid.New()
	}
	r.s.classes[class.ID] = *class
	return nil
}

// GetByID attaches Course, Discipline and Teacher like the gorm preloads do.
func (r mockClasses) GetByID(_ context.Context, id uuid.UUID) (*model.Class, error) {
	class, ok := r.s.classes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if course, ok := r.s.courses[class.CourseID]; ok {
		co := course
		class.Course = &co
	}
	if discipline, ok := r.s.disciplines[class.DisciplineID]; ok {
		d := discipline
		class.Discipline = &d
	}
	if teacher, ok := r.s.teachers[class.TeacherID]; ok {
		te := teacher
		class.Teacher = &te
	}
	return &class, nil
}

func (r mockClasses) List(_ context.Context, semester, year, offset, limit int) ([]model.Class, int64, error) {
	var classes []model.Class
	for _, class := range r.s.classes {
		if semester != 0 && class.Semester != semester {
			continue
		}
		if year != 0 && class.Year != year {
			continue
		}
		classes = append(classes, class)
	}
	return classes, int64(len(classes)), nil
}

func (r mockClasses) ListByTeacher(_ context.Context, teacherID uuid.UUID) ([]model.Class, error) {
	var classes []model.Class
	for _, class := range r.s.classes {
		if class.TeacherID == teacherID {
			classes = append(classes, class)
		}
	}
	return classes, nil
}

func (r mockClasses) Update(_ context.Context, class *model.Class) error {
	if _, ok := r.s.classes[class.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *class
	stored.Course = nil
	stored.Discipline = nil
	stored.Teacher = nil
	r.s.classes[class.ID] = stored
	return nil
}

func (r mockClasses) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.classes, id)
	return nil
}

type mockEnrollments struct{ s *mockStore }

func (r mockEnrollments) Create(_ context.Context, enrollment *model.Enrollment) error {
	if enrollment.ID == uuid.Nil {
		enrollment.ID = uuid.New()
	}
	r.s.enrollments[enrollment.ID] = *enrollment
	return nil
}

// GetByID attaches Student and Course like the gorm preloads do.
func (r mockEnrollments) GetByID(_ context.Context, id uuid.UUID) (*model.Enrollment, error) {
	enrollment, ok := r.s.enrollments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if student, ok := r.s.students[enrollment.StudentID]; ok {
		st := student
		enrollment.Student = &st
	}
	if course, ok := r.s.courses[enrollment.CourseID]; ok {
		co := course
		enrollment.Course = &co
	}
	return &enrollment, nil
}

func (r mockEnrollments) List(_ context.Context, status model.EnrollmentStatus, offset, limit int) ([]model.Enrollment, int64, error) {
	var enrollments []model.Enrollment
	for _, enrollment := range r.s.enrollments {
		if status != "" && enrollment.Status != status {
			continue
		}
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, int64(len(enrollments)), nil
}

func (r mockEnrollments) ListByStudent(_ context.Context, studentID uuid.UUID) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	for _, enrollment := range r.s.enrollments {
		if enrollment.StudentID == studentID {
			enrollments = append(enrollments, enrollment)
		}
	}
	return enrollments, nil
}

func (r mockEnrollments) ListPendingByTerm(_ context.Context, semester, year int) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	for _, enrollment := range r.s.enrollments {
		if enrollment.Status == model.EnrollmentStatusPending &&
			enrollment.Semester == semester && enrollment.Year == year {
			if student, ok := r.s.students[enrollment.StudentID]; ok {
				st := student
				enrollment.Student = &st
			}
			enrollments = append(enrollments, enrollment)
		}
	}
	return enrollments, nil
}

func (r mockEnrollments) HasOpenEnrollment(_ context.Context, studentID, courseID uuid.UUID) (bool, error) {
	for _, enrollment := range r.s.enrollments {
		if enrollment.StudentID == studentID && enrollment.CourseID == courseID &&
			(enrollment.Status == model.EnrollmentStatusPending || enrollment.Status == model.EnrollmentStatusActive) {
			return true, nil
		}
	}
	return false, nil
}

func (r mockEnrollments) Update(_ context.Context, enrollment *model.Enrollment) error {
	if r.s.enrollmentUpdateErr != nil {
		return r.s.enrollmentUpdateErr
	}
	if _, ok := r.s.enrollments[enrollment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *enrollment
	stored.Student = nil
	stored.Course = nil
	r.s.enrollments[enrollment.ID] = stored
	return nil
}

func (r mockEnrollments) ReenrollActive(_ context.Context, semester, year int) (int64, error) {
	var affected int64
	for id, enrollment := range r.s.enrollments {
		if enrollment.Status != model.EnrollmentStatusActive {
			continue
		}
		enrollment.Status = model.EnrollmentStatusPending
		enrollment.Semester = semester
		enrollment.Year = year
		r.s.enrollments[id] = enrollment
		affected++
	}
	if r.s.reenrollErr != nil {
		return 0, r.s.reenrollErr
	}
	return affected, nil
}

type mockEvaluations struct{ s *mockStore }

func (r mockEvaluations) Create(_ context.Context, evaluation *model.Evaluation) error {
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}
	r.s.evaluations[evaluation.ID] = *evaluation
	return nil
}

func (r mockEvaluations) GetByID(_ context.Context, id uuid.UUID) (*model.Evaluation, error) {
	evaluation, ok := r.s.evaluations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &evaluation, nil
}

func (r mockEvaluations) ListByClass(_ context.Context, classID uuid.UUID) ([]model.Evaluation, error) {
	var evaluations []model.Evaluation
	for _, evaluation := range r.s.evaluations {
		if evaluation.ClassID == classID {
			evaluations = append(evaluations, evaluation)
		}
	}
	return evaluations, nil
}

func (r mockEvaluations) Update(_ context.Context, evaluation *model.Evaluation) error {
	if _, ok := r.s.evaluations[evaluation.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.evaluations[evaluation.ID] = *evaluation
	return nil
}

func (r mockEvaluations) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.evaluations, id)
	return nil
}

type mockGrades struct{ s *mockStore }

func (r mockGrades) Create(_ context.Context, grade *model.Grade) error {
	if grade.ID == uuid.Nil {
		grade.ID = uuid.New()
	}
	r.s.grades[grade.ID] = *grade
	return nil
}

func (r mockGrades) GetByID(_ context.Context, id uuid.UUID) (*model.Grade, error) {
	grade, ok := r.s.grades[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &grade, nil
}

func (r mockGrades) GetByEvaluationAndStudent(_ context.Context, evaluationID, studentID uuid.UUID) (*model.Grade, error) {
	for _, grade := range r.s.grades {
		if grade.EvaluationID == evaluationID && grade.StudentID == studentID {
			g := grade
			return &g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r mockGrades) ListByEvaluation(_ context.Context, evaluationID uuid.UUID) ([]model.Grade, error) {
	var grades []model.Grade
	for _, grade := range r.s.grades {
		if grade.EvaluationID == evaluationID {
			grades = append(grades, grade)
		}
	}
	return grades, nil
}

func (r mockGrades) ListByClass(_ context.Context, classID uuid.UUID) ([]model.Grade, error) {
	var grades []model.Grade
	for _, grade := range r.s.grades {
		evaluation, ok := r.s.evaluations[grade.EvaluationID]
		if ok && evaluation.ClassID == classID {
			grades = append(grades, grade)
		}
	}
	return grades, nil
}

func (r mockGrades) Update(_ context.Context, grade *model.Grade) error {
	if _, ok := r.s.grades[grade.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.grades[grade.ID] = *grade
	return nil
}

func (r mockGrades) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.grades, id)
	return nil
}

type mockDocuments struct{ s *mockStore }

func (r mockDocuments) Create(_ context.Context, document *model.Document) error {
	if document.ID == uuid.Nil {
		document.ID = uuid.New()
	}
	r.s.documents[document.ID] = *document
	return nil
}

func (r mockDocuments) GetByID(_ context.Context, id uuid.UUID) (*model.Document, error) {
	document, ok := r.s.documents[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &document, nil
}

func (r mockDocuments) ListByStudent(_ context.Context, studentID uuid.UUID) ([]model.Document, error) {
	var documents []model.Document
	for _, document := range r.s.documents {
		if document.StudentID == studentID {
			documents = append(documents, document)
		}
	}
	return documents, nil
}

func (r mockDocuments) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.documents, id)
	return nil
}

type mockContracts struct{ s *mockStore }

func (r mockContracts) Create(_ context.Context, contract *model.Contract) error {
	if r.s.contractCreateErr != nil {
		return r.s.contractCreateErr
	}
	if contract.ID == uuid.Nil {
		contract.ID = uuid.New()
	}
	r.s.contracts[contract.ID] = *contract
	return nil
}

func (r mockContracts) GetByID(_ context.Context, id uuid.UUID) (*model.Contract, error) {
	contract, ok := r.s.contracts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

func (r mockContracts) GetByEnrollment(_ context.Context, enrollmentID uuid.UUID) (*model.Contract, error) {
	for _, contract := range r.s.contracts {
		if contract.EnrollmentID != nil && *contract.EnrollmentID == enrollmentID {
			c := contract
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r mockContracts) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Contract, error) {
	var contracts []model.Contract
	for _, contract := range r.s.contracts {
		if contract.UserID == userID {
			contracts = append(contracts, contract)
		}
	}
	return contracts, nil
}

func (r mockContracts) ListGenerated(_ context.Context) ([]model.Contract, error) {
	var contracts []model.Contract
	for _, contract := range r.s.contracts {
		if contract.FilePath != nil {
			contracts = append(contracts, contract)
		}
	}
	return contracts, nil
}

func (r mockContracts) Update(_ context.Context, contract *model.Contract) error {
	if r.s.contractUpdateErr != nil {
		return r.s.contractUpdateErr
	}
	if _, ok := r.s.contracts[contract.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.contracts[contract.ID] = *contract
	return nil
}

type mockTemplates struct{ s *mockStore }

func (r mockTemplates) Create(_ context.Context, template *model.ContractTemplate) error {
	if template.ID == uuid.Nil {
		template.ID = uuid.New()
	}
	r.s.templates[template.ID] = *template
	return nil
}

func (r mockTemplates) GetByID(_ context.Context, id uuid.UUID) (*model.ContractTemplate, error) {
	template, ok := r.s.templates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &template, nil
}

func (r mockTemplates) GetActive(_ context.Context) (*model.ContractTemplate, error) {
	for _, template := range r.s.templates {
		if template.Active {
			t := template
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r mockTemplates) List(_ context.Context) ([]model.ContractTemplate, error) {
	templates := make([]model.ContractTemplate, 0, len(r.s.templates))
	for _, template := range r.s.templates {
		templates = append(templates, template)
	}
	return templates, nil
}

func (r mockTemplates) Update(_ context.Context, template *model.ContractTemplate) error {
	if _, ok := r.s.templates[template.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.s.templates[template.ID] = *template
	return nil
}

func (r mockTemplates) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.s.templates, id)
	return nil
}

// fakePDF records the last rendered body and can be told to fail.
type fakePDF struct {
	err      error
	lastBody string
}

func (f *fakePDF) Render(title, body string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastBody = body
	return []byte("%PDF " + title), nil
}

// fakeFiles records saves and removals instead of touching disk.
type fakeFiles struct {
	saveErr error
	saved   []string
	removed []string
}

func (f *fakeFiles) Save(dir, name string, data []byte) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	path := fmt.Sprintf("%s/%s", dir, name)
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeFiles) Remove(relPath string) error {
	f.removed = append(f.removed, relPath)
	return nil
}

// fakeMailer records messages.
type fakeMailer struct {
	err  error
	sent []string
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}
