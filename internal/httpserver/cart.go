package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type addLineRequest struct {
	ProductID string `json:"productId" binding:"required"`
	VariantID string `json:"variantId"`
}

func getCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, svc.Get(sid))
	}
}

func addCartLineHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		var req addLineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		cart, err := svc.AddLine(c.Request.Context(), sid, req.ProductID, req.VariantID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func removeCartLineHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil || index < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
			return
		}
		c.JSON(http.StatusOK, svc.RemoveLine(sid, index))
	}
}

func clearCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		svc.Clear(sid)
		c.Status(http.StatusNoContent)
	}
}
