package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/secretaria-online/secretaria-api/internal/auth"
	"github.com/secretaria-online/secretaria-api/internal/model"
)

const principalKey = "principal"

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message},
	})
}

// Auth verifies the bearer token and stores the principal on the context.
// Missing, malformed, expired and invalid tokens answer with distinct codes.
func Auth(parser *auth.Parser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, http.StatusUnauthorized, "TOKEN_MISSING", "authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, http.StatusUnauthorized, "TOKEN_MALFORMED", "authorization header must be a bearer token")
			return
		}

		principal, err := parser.Parse(parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrTokenMalformed):
				abort(c, http.StatusUnauthorized, "TOKEN_MALFORMED", "token is malformed")
			case errors.Is(err, auth.ErrTokenExpired):
				abort(c, http.StatusUnauthorized, "TOKEN_EXPIRED", "token has expired")
			default:
				abort(c, http.StatusUnauthorized, "TOKEN_INVALID", "token is invalid")
			}
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireRoles denies the request unless the principal's role is in the
// allow-list.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "TOKEN_MISSING", "authentication required")
			return
		}
		for _, role := range roles {
			if principal.Role == role {
				c.Next()
				return
			}
		}
		abort(c, http.StatusForbidden, "FORBIDDEN", "insufficient role")
	}
}

func MustPrincipal(c *gin.Context) (model.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return model.Principal{}, false
	}
	principal, ok := value.(model.Principal)
	return principal, ok
}
