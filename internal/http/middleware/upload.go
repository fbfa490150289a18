package middleware

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const uploadKey = "upload_file"

// Upload wraps the multipart parse for a single expected file field. It
// enforces the size ceiling before anything reaches disk, maps parser
// errors to envelope codes and checks the descriptor fields the handlers
// rely on.
func Upload(field string, maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Leave headroom for the non-file form fields.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize+1<<20)

		header, err := c.FormFile(field)
		if err != nil {
			switch {
			case isTooLarge(err):
				abort(c, http.StatusRequestEntityTooLarge, "UPLOAD_TOO_LARGE", "uploaded file exceeds the size limit")
			case errors.Is(err, http.ErrMissingFile):
				abort(c, http.StatusBadRequest, "UPLOAD_INVALID", "file field \""+field+"\" is required")
			default:
				abort(c, http.StatusBadRequest, "UPLOAD_INVALID", "could not parse multipart request")
			}
			return
		}

		if header.Filename == "" || header.Size <= 0 {
			abort(c, http.StatusBadRequest, "UPLOAD_INVALID", "uploaded file descriptor is incomplete")
			return
		}
		if header.Size > maxSize {
			abort(c, http.StatusRequestEntityTooLarge, "UPLOAD_TOO_LARGE", "uploaded file exceeds the size limit")
			return
		}

		c.Set(uploadKey, header)
		c.Next()
	}
}

func MustUpload(c *gin.Context) (*multipart.FileHeader, bool) {
	value, exists := c.Get(uploadKey)
	if !exists {
		return nil, false
	}
	header, ok := value.(*multipart.FileHeader)
	return header, ok
}

func isTooLarge(err error) bool {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large") ||
		errors.Is(err, multipart.ErrMessageTooLarge)
}
