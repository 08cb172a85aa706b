package handlers

import (
	"log"
	"net/http"

	"altquery/internal/domain"
	"altquery/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Store failures are
// logged and surface as a generic 500 instead of leaking driver errors.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error())
	case domain.IsUnauthorized(err):
		RespondError(c, http.StatusUnauthorized, "Unauthorized access")
	case domain.IsForbidden(err):
		RespondError(c, http.StatusForbidden, "Forbidden access")
	default:
		log.Printf("[STORE] request_id=%s path=%s err=%v", middleware.GetRequestID(c), c.Request.URL.Path, err)
		RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload")
		return false
	}
	return true
}

// requireOwner is the single ownership predicate: the authenticated identity
// must equal the resource owner taken from the request path. On mismatch it
// responds 403 and the caller must not touch the store.
func requireOwner(c *gin.Context, owner string) bool {
	if middleware.CurrentEmail(c) != owner {
		RespondError(c, http.StatusForbidden, "Forbidden access")
		return false
	}
	return true
}
