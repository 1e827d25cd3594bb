package httpserver

import (
	"net/http"

	"lumina-storefront/internal/domain"
	"github.com/gin-gonic/gin"
)

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func listOrdersHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

func getOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func updateOrderStatusHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
			return
		}
		if err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(req.Status)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status})
	}
}

func listSalesHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sales, err := svc.ListSales(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if sales == nil {
			sales = []domain.SaleRecord{}
		}
		c.JSON(http.StatusOK, sales)
	}
}
