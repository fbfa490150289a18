package http

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/secretaria-online/secretaria-api/internal/http/middleware"
	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/service"
)

type studentRequest struct {
	Name      string `json:"name"`
	CPF       string `json:"cpf"`
	RG        string `json:"rg"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
}

func (r studentRequest) toInput() service.StudentInput {
	return service.StudentInput{
		Name:      r.Name,
		CPF:       r.CPF,
		RG:        r.RG,
		Phone:     r.Phone,
		Email:     r.Email,
		BirthDate: r.BirthDate,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
	}
}

func (h *Handler) createStudent(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	student, err := h.svc.Students.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, student)
}

func (h *Handler) getStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !h.canAccessStudent(c, id) {
		return
	}
	student, err := h.svc.Students.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, student)
}

func (h *Handler) listStudents(c *gin.Context) {
	offset, limit, page, pageSize := parsePage(c)
	students, total, err := h.svc.Students.List(c.Request.Context(), offset, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondPage(c, students, total, page, pageSize)
}

func (h *Handler) updateStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}
	student, err := h.svc.Students.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, student)
}

func (h *Handler) deleteStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Students.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

// uploadDocument stores the received file under the documents dir and records
// it. If the record fails the stored file is removed.
func (h *Handler) uploadDocument(c *gin.Context) {
	studentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	header, ok := middleware.MustUpload(c)
	if !ok {
		respondError(c, http.StatusBadRequest, CodeUploadInvalid, "no file received")
		return
	}

	docType := strings.TrimSpace(c.PostForm("type"))
	if docType == "" {
		respondErrorDetails(c, http.StatusBadRequest, CodeValidation, "validation failed",
			[]service.FieldError{{Field: "type", Message: "is required"}})
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeUploadInvalid, "could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeUploadInvalid, "could not read uploaded file")
		return
	}

	storedName := documentFileName(studentID, header.Filename)
	relPath, err := h.files.Save(h.documentsDir, storedName, data)
	if err != nil {
		h.handleError(c, err)
		return
	}

	document, err := h.svc.Documents.Create(c.Request.Context(), service.DocumentInput{
		StudentID: studentID,
		Type:      docType,
		FileName:  filepath.Base(header.Filename),
		FilePath:  relPath,
		FileSize:  int64(len(data)),
		MimeType:  header.Header.Get("Content-Type"),
	})
	if err != nil {
		_ = h.files.Remove(relPath)
		h.handleError(c, err)
		return
	}
	respondCreated(c, document)
}

func (h *Handler) listDocuments(c *gin.Context) {
	studentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !h.canAccessStudent(c, studentID) {
		return
	}
	documents, err := h.svc.Documents.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, documents)
}

func (h *Handler) downloadDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	document, err := h.svc.Documents.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !h.canAccessStudent(c, document.StudentID) {
		return
	}

	absPath, err := h.files.Path(document.FilePath)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.FileAttachment(absPath, document.FileName)
}

func (h *Handler) deleteDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Documents.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

// canAccessStudent allows staff through and restricts students to their own
// record. Writes the error response itself when access is denied.
func (h *Handler) canAccessStudent(c *gin.Context, studentID uuid.UUID) bool {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, CodeTokenMissing, "authentication required")
		return false
	}
	if principal.Role != model.RoleStudent {
		return true
	}

	student, err := h.svc.Students.Get(c.Request.Context(), studentID)
	if err != nil {
		h.handleError(c, err)
		return false
	}
	if student.UserID == nil || *student.UserID != principal.UserID {
		respondError(c, http.StatusForbidden, CodeForbidden, "operation not allowed")
		return false
	}
	return true
}

func documentFileName(studentID uuid.UUID, original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%s-%d%s", studentID, time.Now().UnixNano(), ext)
}
