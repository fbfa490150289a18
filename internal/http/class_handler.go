package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/secretaria-online/secretaria-api/internal/http/middleware"
	"github.com/secretaria-online/secretaria-api/internal/service"
)

type classRequest struct {
	CourseID     uuid.UUID `json:"course_id"`
	DisciplineID uuid.UUID `json:"discipline_id"`
	TeacherID    uuid.UUID `json:"teacher_id"`
	Semester     int       `json:"semester"`
	Year         int       `json:"year"`
	Shift        string    `json:"shift"`
	Room         string    `json:"room"`
}

func (r classRequest) toInput() service.ClassInput {
	return service.ClassInput{
		CourseID:     r.CourseID,
		DisciplineID: r.DisciplineID,
		TeacherID:    r.TeacherID,
		Semester:     r.Semester,
		Year:         r.Year,
		Shift:        r.Shift,
		Room:         r.Room,
	}
}

func (h *Handler) createClass(c *gin.Context) {
	var req classRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	class, err := h.svc.Classes.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, class)
}

func (h *Handler) getClass(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	class, err := h.svc.Classes.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, class)
}

func (h *Handler) listClasses(c *gin.Context) {
	offset, limit, page, pageSize := parsePage(c)
	semester, _ := strconv.Atoi(c.Query("semester"))
	year, _ := strconv.Atoi(c.Query("year"))

	classes, total, err := h.svc.Classes.List(c.Request.Context(), semester, year, offset, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondPage(c, classes, total, page, pageSize)
}

func (h *Handler) updateClass(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req classRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	class, err := h.svc.Classes.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, class)
}

func (h *Handler) deleteClass(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Classes.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

// exportClassGrades streams the grade spreadsheet for a class.
func (h *Handler) exportClassGrades(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, CodeTokenMissing, "authentication required")
		return
	}

	result, err := h.svc.Reports.ExportClassGrades(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}
