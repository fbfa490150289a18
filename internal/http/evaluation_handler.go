package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/secretaria-online/secretaria-api/internal/http/middleware"
	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/service"
)

type evaluationRequest struct {
	ClassID   uuid.UUID `json:"class_id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Weight    float64   `json:"weight"`
	AppliedAt string    `json:"applied_at"`
}

func (r evaluationRequest) toInput() service.EvaluationInput {
	return service.EvaluationInput{
		ClassID:   r.ClassID,
		Name:      r.Name,
		Kind:      model.EvaluationKind(r.Kind),
		Weight:    r.Weight,
		AppliedAt: r.AppliedAt,
	}
}

func (h *Handler) createEvaluation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, CodeTokenMissing, "authentication required")
		return
	}
	var req evaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	evaluation, err := h.svc.Evaluations.Create(c.Request.Context(), principal, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, evaluation)
}

func (h *Handler) getEvaluation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	evaluation, err := h.svc.Evaluations.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, evaluation)
}

func (h *Handler) listClassEvaluations(c *gin.Context) {
	classID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	evaluations, err := h.svc.Evaluations.ListByClass(c.Request.Context(), classID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, evaluations)
}

func (h *Handler) updateEvaluation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, CodeTokenMissing, "authentication required")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req evaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	evaluation, err := h.svc.Evaluations.Update(c.Request.Context(), principal, id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, evaluation)
}

func (h *Handler) deleteEvaluation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, CodeTokenMissing, "authentication required")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Evaluations.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

type gradeRequest struct {
	EvaluationID uuid.UUID `json:"evaluation_id"`
	StudentID    uuid.UUID `json:"student_id"`
	Score        *float64  `json:"score"`
	Concept      *string   `json:"concept"`
}

func (r gradeRequest) toInput() service.GradeInput {
	return service.GradeInput{
		EvaluationID: r.EvaluationID,
		StudentID:    r.StudentID,
		Score:        r.Score,
		Concept:      r.Concept,
	}
}

func (h *Handler) createGrade(c *gin.Context) {
	var req gradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	grade, err := h.svc.Grades.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, grade)
}

func (h *Handler) listEvaluationGrades(c *gin.Context) {
	evaluationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	grades, err := h.svc.Grades.ListByEvaluation(c.Request.Context(), evaluationID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, grades)
}

func (h *Handler) updateGrade(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req gradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	grade, err := h.svc.Grades.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, grade)
}

func (h *Handler) deleteGrade(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Grades.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
