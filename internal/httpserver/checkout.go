package httpserver

import (
	"net/http"

	"lumina-storefront/internal/domain"
	ordersvc "lumina-storefront/internal/service/order"
	"github.com/gin-gonic/gin"
)

type quoteRequest struct {
	Wilaya       string `json:"wilaya" binding:"required"`
	DeliveryMode string `json:"deliveryMode" binding:"required"`
}

func quoteHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		var req quoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "wilaya and deliveryMode required"})
			return
		}
		mode := domain.DeliveryMode(req.DeliveryMode)
		if !mode.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "deliveryMode must be home or pickup"})
			return
		}
		quote, err := svc.PriceQuote(c.Request.Context(), sid, req.Wilaya, mode)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, quote)
	}
}

func checkoutHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		var in ordersvc.CheckoutInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		order, err := svc.Checkout(c.Request.Context(), sid, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}
