package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN
			CREATE TYPE user_role AS ENUM ('admin', 'teacher', 'student');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'enrollment_status') THEN
			CREATE TYPE enrollment_status AS ENUM ('pending', 'active', 'cancelled', 'reenrolled');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'evaluation_kind') THEN
			CREATE TYPE evaluation_kind AS ENUM ('exam', 'assignment');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role user_role NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (email) WHERE deleted_at IS NULL;`,
	`CREATE TABLE IF NOT EXISTS students (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID REFERENCES users(id),
		name VARCHAR(255) NOT NULL,
		cpf VARCHAR(14) NOT NULL,
		rg VARCHAR(20),
		phone VARCHAR(20),
		email VARCHAR(255),
		birth_date DATE,
		address TEXT,
		city VARCHAR(100),
		state VARCHAR(2),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_students_cpf ON students (cpf) WHERE deleted_at IS NULL;`,
	`CREATE TABLE IF NOT EXISTS teachers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID REFERENCES users(id),
		name VARCHAR(255) NOT NULL,
		cpf VARCHAR(14) NOT NULL,
		phone VARCHAR(20),
		email VARCHAR(255),
		degree VARCHAR(100),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_teachers_cpf ON teachers (cpf) WHERE deleted_at IS NULL;`,
	`CREATE TABLE IF NOT EXISTS courses (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		description TEXT,
		duration_semesters INT NOT NULL DEFAULT 0,
		modality VARCHAR(50),
		monthly_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);`,
	`CREATE TABLE IF NOT EXISTS disciplines (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		code VARCHAR(20) NOT NULL,
		workload_hours INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_disciplines_code ON disciplines (code) WHERE deleted_at IS NULL;`,
	`CREATE TABLE IF NOT EXISTS classes (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		course_id UUID NOT NULL REFERENCES courses(id),
		discipline_id UUID NOT NULL REFERENCES disciplines(id),
		teacher_id UUID NOT NULL REFERENCES teachers(id),
		semester INT NOT NULL,
		year INT NOT NULL,
		shift VARCHAR(20),
		room VARCHAR(50),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_classes_course_id ON classes (course_id);`,
	`CREATE INDEX IF NOT EXISTS idx_classes_teacher_id ON classes (teacher_id);`,
	`CREATE TABLE IF NOT EXISTS enrollments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		student_id UUID NOT NULL REFERENCES students(id),
		course_id UUID NOT NULL REFERENCES courses(id),
		status enrollment_status NOT NULL DEFAULT 'pending',
		semester INT NOT NULL,
		year INT NOT NULL,
		enrolled_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_student_id ON enrollments (student_id);`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_status ON enrollments (status);`,
	`CREATE TABLE IF NOT EXISTS evaluations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		class_id UUID NOT NULL REFERENCES classes(id),
		name VARCHAR(255) NOT NULL,
		kind evaluation_kind NOT NULL,
		weight NUMERIC(5,2) NOT NULL DEFAULT 1,
		applied_at DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_evaluations_class_id ON evaluations (class_id);`,
	`CREATE TABLE IF NOT EXISTS grades (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		evaluation_id UUID NOT NULL REFERENCES evaluations(id),
		student_id UUID NOT NULL REFERENCES students(id),
		score NUMERIC(4,2),
		concept VARCHAR(20),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_grades_evaluation_student ON grades (evaluation_id, student_id) WHERE deleted_at IS NULL;`,
	`CREATE TABLE IF NOT EXISTS documents (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		student_id UUID NOT NULL REFERENCES students(id),
		type VARCHAR(50) NOT NULL,
		file_name VARCHAR(255) NOT NULL,
		file_path TEXT NOT NULL,
		file_size BIGINT NOT NULL DEFAULT 0,
		mime_type VARCHAR(100),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_documents_student_id ON documents (student_id);`,
	`CREATE TABLE IF NOT EXISTS contract_templates (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		body TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		template_id UUID NOT NULL REFERENCES contract_templates(id),
		user_id UUID NOT NULL REFERENCES users(id),
		enrollment_id UUID REFERENCES enrollments(id),
		file_path TEXT,
		file_name VARCHAR(255),
		generated_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_enrollment_id ON contracts (enrollment_id) WHERE enrollment_id IS NOT NULL;`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_user_id ON contracts (user_id);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
