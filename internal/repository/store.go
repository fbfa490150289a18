package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store aggregates the per-entity repositories. WithinTx runs fn against a
// store bound to a single database transaction; any error rolls the whole
// transaction back.
type Store interface {
	Users() UserRepository
	Students() StudentRepository
	Teachers() TeacherRepository
	Courses() CourseRepository
	Disciplines() DisciplineRepository
	Classes() ClassRepository
	Enrollments() EnrollmentRepository
	Evaluations() EvaluationRepository
	Grades() GradeRepository
	Documents() DocumentRepository
	Contracts() ContractRepository
	Templates() ContractTemplateRepository

	WithinTx(ctx context.Context, fn func(Store) error) error
}

type store struct {
	db          *gorm.DB
	users       UserRepository
	students    StudentRepository
	teachers    TeacherRepository
	courses     CourseRepository
	disciplines DisciplineRepository
	classes     ClassRepository
	enrollments EnrollmentRepository
	evaluations EvaluationRepository
	grades      GradeRepository
	documents   DocumentRepository
	contracts   ContractRepository
	templates   ContractTemplateRepository
}

func NewStore(db *gorm.DB) Store {
	return &store{
		db:          db,
		users:       NewUserRepository(db),
		students:    NewStudentRepository(db),
		teachers:    NewTeacherRepository(db),
		courses:     NewCourseRepository(db),
		disciplines: NewDisciplineRepository(db),
		classes:     NewClassRepository(db),
		enrollments: NewEnrollmentRepository(db),
		evaluations: NewEvaluationRepository(db),
		grades:      NewGradeRepository(db),
		documents:   NewDocumentRepository(db),
		contracts:   NewContractRepository(db),
		templates:   NewContractTemplateRepository(db),
	}
}

func (s *store) Users() UserRepository                 { return s.users }
func (s *store) Students() StudentRepository           { return s.students }
func (s *store) Teachers() TeacherRepository           { return s.teachers }
func (s *store) Courses() CourseRepository             { return s.courses }
func (s *store) Disciplines() DisciplineRepository     { return s.disciplines }
func (s *store) Classes() ClassRepository              { return s.classes }
func (s *store) Enrollments() EnrollmentRepository     { return s.enrollments }
func (s *store) Evaluations() EvaluationRepository     { return s.evaluations }
func (s *store) Grades() GradeRepository               { return s.grades }
func (s *store) Documents() DocumentRepository         { return s.documents }
func (s *store) Contracts() ContractRepository         { return s.contracts }
func (s *store) Templates() ContractTemplateRepository { return s.templates }

func (s *store) WithinTx(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
