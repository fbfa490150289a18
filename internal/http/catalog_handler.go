package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/secretaria-online/secretaria-api/internal/service"
)

type courseRequest struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	DurationSemesters int     `json:"duration_semesters"`
	Modality          string  `json:"modality"`
	MonthlyFee        float64 `json:"monthly_fee"`
}

func (r courseRequest) toInput() service.CourseInput {
	return service.CourseInput{
		Name:              r.Name,
		Description:       r.Description,
		DurationSemesters: r.DurationSemesters,
		Modality:          r.Modality,
		MonthlyFee:        r.MonthlyFee,
	}
}

func (h *Handler) createCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	course, err := h.svc.Courses.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, course)
}

func (h *Handler) getCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	course, err := h.svc.Courses.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, course)
}

func (h *Handler) listCourses(c *gin.Context) {
	offset, limit, page, pageSize := parsePage(c)
	courses, total, err := h.svc.Courses.List(c.Request.Context(), offset, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondPage(c, courses, total, page, pageSize)
}

func (h *Handler) updateCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	course, err := h.svc.Courses.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, course)
}

func (h *Handler) deleteCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Courses.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

type disciplineRequest struct {
	Name          string `json:"name"`
	Code          string `json:"code"`
	WorkloadHours int    `json:"workload_hours"`
}

func (r disciplineRequest) toInput() service.DisciplineInput {
	return service.DisciplineInput{
		Name:          r.Name,
		Code:          r.Code,
		WorkloadHours: r.WorkloadHours,
	}
}

func (h *Handler) createDiscipline(c *gin.Context) {
	var req disciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	discipline, err := h.svc.Disciplines.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, discipline)
}

func (h *Handler) getDiscipline(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	discipline, err := h.svc.Disciplines.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, discipline)
}

func (h *Handler) listDisciplines(c *gin.Context) {
	offset, limit, page, pageSize := parsePage(c)
	disciplines, total, err := h.svc.Disciplines.List(c.Request.Context(), offset, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondPage(c, disciplines, total, page, pageSize)
}

func (h *Handler) updateDiscipline(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req disciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	discipline, err := h.svc.Disciplines.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, discipline)
}

func (h *Handler) deleteDiscipline(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Disciplines.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
