package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/secretaria-online/secretaria-api/internal/http/middleware"
	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/service"
)

func (h *Handler) getContract(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	contract, err := h.svc.Contracts.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !h.canAccessContract(c, contract) {
		return
	}
	respondOK(c, contract)
}

func (h *Handler) listMyContracts(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, CodeTokenMissing, "authentication required")
		return
	}
	contracts, err := h.svc.Contracts.ListByUser(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, contracts)
}

func (h *Handler) downloadContract(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	contract, err := h.svc.Contracts.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !h.canAccessContract(c, contract) {
		return
	}
	if contract.FilePath == nil || contract.FileName == nil {
		respondError(c, http.StatusNotFound, CodeNotFound, "contract has not been generated yet")
		return
	}

	absPath, err := h.files.Path(*contract.FilePath)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.FileAttachment(absPath, *contract.FileName)
}

func (h *Handler) regenerateContract(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	contract, err := h.svc.Contracts.Regenerate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, contract)
}

func (h *Handler) regenerateAllContracts(c *gin.Context) {
	result, err := h.svc.Contracts.RegenerateAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, result)
}

// canAccessContract restricts students to their own contracts.
func (h *Handler) canAccessContract(c *gin.Context, contract *model.Contract) bool {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, CodeTokenMissing, "authentication required")
		return false
	}
	if principal.Role != model.RoleStudent || contract.UserID == principal.UserID {
		return true
	}
	respondError(c, http.StatusForbidden, CodeForbidden, "operation not allowed")
	return false
}

type templateRequest struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

func (h *Handler) createTemplate(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	template, err := h.svc.Templates.Create(c.Request.Context(), service.TemplateInput{
		Name: req.Name,
		Body: req.Body,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, template)
}

func (h *Handler) getTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	template, err := h.svc.Templates.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, template)
}

func (h *Handler) listTemplates(c *gin.Context) {
	templates, err := h.svc.Templates.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, templates)
}

func (h *Handler) updateTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	template, err := h.svc.Templates.Update(c.Request.Context(), id, service.TemplateInput{
		Name: req.Name,
		Body: req.Body,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, template)
}

func (h *Handler) activateTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	template, err := h.svc.Templates.Activate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, template)
}

func (h *Handler) deleteTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Templates.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
