package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/repository"
)

// PDFRenderer turns substituted contract text into PDF bytes.
type PDFRenderer interface {
	Render(title, body string) ([]byte, error)
}

// FileStore persists generated files under the configured upload base and
// returns paths relative to it.
type FileStore interface {
	Save(dir, name string, data []byte) (string, error)
	Remove(relPath string) error
}

const missingCourseName = "Curso não especificado"

type ContractService struct {
	store        repository.Store
	pdf          PDFRenderer
	files        FileStore
	contractsDir string
	log          zerolog.Logger
}

func NewContractService(store repository.Store, pdf PDFRenderer, files FileStore, contractsDir string, log zerolog.Logger) *ContractService {
	return &ContractService{
		store:        store,
		pdf:          pdf,
		files:        files,
		contractsDir: contractsDir,
		log:          log,
	}
}

// AcceptEnrollment flips a pending enrollment to active and generates the
// contract PDF, all inside one transaction. Only the student owning the
// enrollment may accept it. A generation failure rolls the status flip back.
func (s *ContractService) AcceptEnrollment(ctx context.Context, enrollmentID uuid.UUID, principal model.Principal) (*model.Contract, error) {
	var contract *model.Contract
	var savedPath string

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		enrollment, err := tx.Enrollments().GetByID(ctx, enrollmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if enrollment.Status != model.EnrollmentStatusPending {
			return fmt.Errorf("%w: enrollment is not pending", ErrInvalidInput)
		}
		if enrollment.Student == nil || enrollment.Student.UserID == nil ||
			*enrollment.Student.UserID != principal.UserID {
			return ErrPermissionDenied
		}

		user, err := tx.Users().GetByID(ctx, principal.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		template, err := tx.Templates().GetActive(ctx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: no active contract template", ErrNotFound)
			}
			return err
		}

		enrollment.Status = model.EnrollmentStatusActive
		if err := tx.Enrollments().Update(ctx, enrollment); err != nil {
			return err
		}

		values := buildContractValues(enrollment.Student, enrollment.Course, enrollment)
		body := RenderTemplate(template.Body, values)

		data, err := s.pdf.Render(template.Name, body)
		if err != nil {
			return fmt.Errorf("render contract pdf: %w", err)
		}

		fileName := contractFileName(enrollment.ID)
		relPath, err := s.files.Save(s.contractsDir, fileName, data)
		if err != nil {
			return fmt.Errorf("store contract pdf: %w", err)
		}
		savedPath = relPath

		now := time.Now()
		existing, err := tx.Contracts().GetByEnrollment(ctx, enrollment.ID)
		switch {
		case err == nil:
			existing.TemplateID = template.ID
			existing.FilePath = &relPath
			existing.FileName = &fileName
			existing.GeneratedAt = &now
			if err := tx.Contracts().Update(ctx, existing); err != nil {
				return err
			}
			contract = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			created := &model.Contract{
				TemplateID:   template.ID,
				UserID:       user.ID,
				EnrollmentID: &enrollment.ID,
				FilePath:     &relPath,
				FileName:     &fileName,
				GeneratedAt:  &now,
			}
			if err := tx.Contracts().Create(ctx, created); err != nil {
				return err
			}
			contract = created
		default:
			return err
		}
		return nil
	})
	if err != nil {
		if savedPath != "" {
			// Transaction rolled back; the file must not outlive it.
			_ = s.files.Remove(savedPath)
		}
		return nil, err
	}
	return contract, nil
}

func (s *ContractService) Get(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	contract, err := s.store.Contracts().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return contract, nil
}

func (s *ContractService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Contract, error) {
	return s.store.Contracts().ListByUser(ctx, userID)
}

// Regenerate rebuilds one contract's PDF from current data. Unlike accept it
// does not touch the enrollment status.
func (s *ContractService) Regenerate(ctx context.Context, contractID uuid.UUID) (*model.Contract, error) {
	var contract *model.Contract
	var savedPath string

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		existing, err := tx.Contracts().GetByID(ctx, contractID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if existing.EnrollmentID == nil {
			return fmt.Errorf("%w: contract has no enrollment", ErrInvalidInput)
		}

		enrollment, err := tx.Enrollments().GetByID(ctx, *existing.EnrollmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: enrollment", ErrNotFound)
			}
			return err
		}

		template, err := tx.Templates().GetByID(ctx, existing.TemplateID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: contract template", ErrNotFound)
			}
			return err
		}

		values := buildContractValues(enrollment.Student, enrollment.Course, enrollment)
		body := RenderTemplate(template.Body, values)

		data, err := s.pdf.Render(template.Name, body)
		if err != nil {
			return fmt.Errorf("render contract pdf: %w", err)
		}

		fileName := contractFileName(enrollment.ID)
		relPath, err := s.files.Save(s.contractsDir, fileName, data)
		if err != nil {
			return fmt.Errorf("store contract pdf: %w", err)
		}
		savedPath = relPath

		now := time.Now()
		existing.FilePath = &relPath
		existing.FileName = &fileName
		existing.GeneratedAt = &now
		if err := tx.Contracts().Update(ctx, existing); err != nil {
			return err
		}
		contract = existing
		return nil
	})
	if err != nil {
		if savedPath != "" {
			_ = s.files.Remove(savedPath)
		}
		return nil, err
	}
	return contract, nil
}

type BatchFailure struct {
	ContractID uuid.UUID `json:"contract_id"`
	Error      string    `json:"error"`
}

type BatchResult struct {
	Processed int            `json:"processed"`
	Failed    []BatchFailure `json:"failed"`
}

// RegenerateAll rebuilds every generated contract. Failures are collected
// per item so one bad record does not abort the rest.
func (s *ContractService) RegenerateAll(ctx context.Context) (*BatchResult, error) {
	contracts, err := s.store.Contracts().ListGenerated(ctx)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{}
	for _, contract := range contracts {
		if _, err := s.Regenerate(ctx, contract.ID); err != nil {
			s.log.Warn().
				Err(err).
				Str("contract_id", contract.ID.String()).
				Msg("contract regeneration failed")
			result.Failed = append(result.Failed, BatchFailure{
				ContractID: contract.ID,
				Error:      err.Error(),
			})
			continue
		}
		result.Processed++
	}
	return result, nil
}

// buildContractValues assembles the substitution map. Every optional field
// gets an explicit value so rendering never leaves a token unresolved.
func buildContractValues(student *model.Student, course *model.Course, enrollment *model.Enrollment) map[string]string {
	values := map[string]string{
		TokenToday:    time.Now().Format("02/01/2006"),
		TokenSemester: strconv.Itoa(enrollment.Semester),
		TokenYear:     strconv.Itoa(enrollment.Year),
	}

	if student != nil {
		values[TokenStudentName] = student.Name
		values[TokenStudentCPF] = FormatCPF(student.CPF)
		values[TokenStudentRG] = student.RG
		values[TokenStudentPhone] = FormatPhone(student.Phone)
		values[TokenStudentAddress] = student.Address
	}

	if course != nil && course.Name != "" {
		values[TokenCourseName] = course.Name
		values[TokenCourseFee] = fmt.Sprintf("R$ %.2f", course.MonthlyFee)
	} else {
		values[TokenCourseName] = missingCourseName
	}

	if !enrollment.EnrolledAt.IsZero() {
		values[TokenEnrollmentDate] = enrollment.EnrolledAt.Format("02/01/2006")
	}
	return values
}

func contractFileName(enrollmentID uuid.UUID) string {
	return fmt.Sprintf("contrato-%s-%d.pdf", enrollmentID, time.Now().UnixNano())
}
