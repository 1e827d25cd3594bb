package httpserver

import (
	"net/http"

	"lumina-storefront/internal/domain"
	"github.com/gin-gonic/gin"
)

func listRatesHandler(svc RatesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rates, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if rates == nil {
			rates = []domain.WilayaRate{}
		}
		c.JSON(http.StatusOK, rates)
	}
}

func replaceRatesHandler(svc RatesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var entries []domain.WilayaRate
		if err := c.ShouldBindJSON(&entries); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if err := svc.Replace(c.Request.Context(), entries); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"saved": len(entries)})
	}
}
