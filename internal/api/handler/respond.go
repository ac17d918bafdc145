package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"librehub/internal/api/apperr"
)

// respondError maps a service error to its HTTP status via the apperr
// classification: NotFound -> 404, InvalidOperation -> 400,
// PermissionDenied -> 403, anything else -> 500.
func respondError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperr.KindInvalidOperation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperr.KindPermissionDenied:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// currentUserID pulls the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return "", false
	}
	return userID.(string), true
}

func currentRole(c *gin.Context) string {
	if role, exists := c.Get("role"); exists {
		if r, ok := role.(string); ok {
			return r
		}
	}
	return ""
}
