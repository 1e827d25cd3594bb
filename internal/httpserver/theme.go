package httpserver

import (
	"net/http"

	"lumina-storefront/internal/domain"
	"github.com/gin-gonic/gin"
)

func getThemeHandler(svc ThemeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := svc.Get(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

func patchThemeHandler(svc ThemeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch domain.ThemePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		t, err := svc.Patch(c.Request.Context(), patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}
