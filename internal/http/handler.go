package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/secretaria-online/secretaria-api/internal/http/middleware"
	"github.com/secretaria-online/secretaria-api/internal/service"
	"github.com/secretaria-online/secretaria-api/internal/storage"
)

// Services groups everything the handler dispatches to.
type Services struct {
	Auth        *service.AuthService
	Students    *service.StudentService
	Teachers    *service.TeacherService
	Courses     *service.CourseService
	Disciplines *service.DisciplineService
	Classes     *service.ClassService
	Enrollments *service.EnrollmentService
	Evaluations *service.EvaluationService
	Grades      *service.GradeService
	Documents   *service.DocumentService
	Contracts   *service.ContractService
	Templates   *service.TemplateService
	Reports     *service.ReportService
}

type Handler struct {
	svc          Services
	files        *storage.LocalStore
	documentsDir string
	environment  string
	log          zerolog.Logger
}

func NewHandler(svc Services, files *storage.LocalStore, documentsDir, environment string, log zerolog.Logger) *Handler {
	return &Handler{
		svc:          svc,
		files:        files,
		documentsDir: documentsDir,
		environment:  environment,
		log:          log,
	}
}

// handleError maps service errors to envelope responses. Unexpected errors
// are logged with request context and answered with a generic message
// outside development.
func (h *Handler) handleError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		respondErrorDetails(c, http.StatusBadRequest, CodeValidation, "validation failed", validationErr.Fields)
		return
	}

	switch {
	case errors.Is(err, service.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, CodeUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, CodeForbidden, "operation not allowed")
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		respondError(c, http.StatusConflict, CodeConflict, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, CodeValidation, err.Error())
	default:
		identity := "anonymous"
		if principal, ok := middleware.MustPrincipal(c); ok {
			identity = principal.UserID.String()
		}
		h.log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("user", identity).
			Msg("request failed")

		message := "internal server error"
		if h.environment == "development" {
			message = err.Error()
		}
		respondError(c, http.StatusInternalServerError, CodeInternal, message)
	}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// parsePage reads page/page_size query params and returns offset, limit and
// the echoed page values.
func parsePage(c *gin.Context) (offset, limit, page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return (page - 1) * pageSize, pageSize, page, pageSize
}
