package httpserver

import (
	"errors"
	"net/http"

	"lumina-storefront/internal/domain"
	adminsvc "lumina-storefront/internal/service/admin"
	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses. Everything
// here is recoverable at the client; 500s are the only surprises.
func respondError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, adminsvc.ErrInvalidCredentials), errors.Is(err, adminsvc.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// sessionID extracts the shopping session identifier. The storefront client
// generates it once and sends it on every cart and checkout call.
func sessionID(c *gin.Context) (string, bool) {
	sid := c.GetHeader("X-Session-ID")
	if sid == "" {
		cookie, err := c.Cookie("lumina_session")
		if err == nil {
			sid = cookie
		}
	}
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session id"})
		return "", false
	}
	return sid, true
}
