package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/secretaria-online/secretaria-api/internal/http/middleware"
	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/service"
)

type enrollmentRequest struct {
	StudentID uuid.UUID `json:"student_id"`
	CourseID  uuid.UUID `json:"course_id"`
	Semester  int       `json:"semester"`
	Year      int       `json:"year"`
}

func (h *Handler) createEnrollment(c *gin.Context) {
	var req enrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	enrollment, err := h.svc.Enrollments.Create(c.Request.Context(), service.EnrollmentInput{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Semester:  req.Semester,
		Year:      req.Year,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, enrollment)
}

func (h *Handler) getEnrollment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	enrollment, err := h.svc.Enrollments.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, enrollment)
}

func (h *Handler) listEnrollments(c *gin.Context) {
	offset, limit, page, pageSize := parsePage(c)
	status := model.EnrollmentStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid status filter")
		return
	}
	enrollments, total, err := h.svc.Enrollments.List(c.Request.Context(), status, offset, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondPage(c, enrollments, total, page, pageSize)
}

func (h *Handler) listStudentEnrollments(c *gin.Context) {
	studentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !h.canAccessStudent(c, studentID) {
		return
	}
	enrollments, err := h.svc.Enrollments.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, enrollments)
}

func (h *Handler) cancelEnrollment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	enrollment, err := h.svc.Enrollments.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, enrollment)
}

type reenrollRequest struct {
	Semester int `json:"semester"`
	Year     int `json:"year"`
}

// reenroll moves every active enrollment into the new term as pending.
func (h *Handler) reenroll(c *gin.Context) {
	var req reenrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	affected, err := h.svc.Enrollments.Reenroll(c.Request.Context(), req.Semester, req.Year)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, gin.H{"reenrolled": affected})
}

// acceptEnrollment confirms a pending enrollment for the logged-in student
// and returns the generated contract.
func (h *Handler) acceptEnrollment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, CodeTokenMissing, "authentication required")
		return
	}
	contract, err := h.svc.Contracts.AcceptEnrollment(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, contract)
}
