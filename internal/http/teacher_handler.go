package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/secretaria-online/secretaria-api/internal/service"
)

type teacherRequest struct {
	Name   string `json:"name"`
	CPF    string `json:"cpf"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Degree string `json:"degree"`
}

func (r teacherRequest) toInput() service.TeacherInput {
	return service.TeacherInput{
		Name:   r.Name,
		CPF:    r.CPF,
		Phone:  r.Phone,
		Email:  r.Email,
		Degree: r.Degree,
	}
}

func (h *Handler) createTeacher(c *gin.Context) {
	var req teacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	teacher, err := h.svc.Teachers.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, teacher)
}

func (h *Handler) getTeacher(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	teacher, err := h.svc.Teachers.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, teacher)
}

func (h *Handler) listTeachers(c *gin.Context) {
	offset, limit, page, pageSize := parsePage(c)
	teachers, total, err := h.svc.Teachers.List(c.Request.Context(), offset, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondPage(c, teachers, total, page, pageSize)
}

func (h *Handler) updateTeacher(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req teacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	teacher, err := h.svc.Teachers.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, teacher)
}

func (h *Handler) deleteTeacher(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Teachers.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
