package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardController struct {
	Orders repository.OrderRepository
	Logger *zap.Logger
}

// Stats aggregates order counts and revenue. An unreachable store yields a
// zeroed stats object, never an error: the dashboard must always render.
func (dc *DashboardController) Stats(c *gin.Context) {
	orders, err := dc.Orders.List(c.Request.Context(), repository.OrderFilter{})
	if err != nil {
		dc.Logger.Warn("error getting payment stats", zap.Error(err))
		c.JSON(http.StatusOK, models.PaymentStats{})
		return
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	var stats models.PaymentStats
	stats.TotalOrders = len(orders)
	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusPaid:
			stats.PaidOrders++
			stats.TotalRevenue += order.Total
		case models.OrderStatusPending:
			stats.PendingOrders++
		case models.OrderStatusFailed:
			stats.FailedOrders++
		}
		if !order.CreatedAt.Before(today) {
			stats.TodayOrders++
			if order.Status == models.OrderStatusPaid {
				stats.TodayRevenue += order.Total
			}
		}
	}

	c.JSON(http.StatusOK, stats)
}

// ListOrders returns orders for the dashboard, optionally filtered by
// status.
func (dc *DashboardController) ListOrders(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 50
	}

	filter := repository.OrderFilter{
		Status: c.Query("status"),
		Limit:  limit,
	}
	orders, err := dc.Orders.List(c.Request.Context(), filter)
	if err != nil {
		dc.Logger.Warn("error getting dashboard orders", zap.Error(err))
		c.JSON(http.StatusOK, []models.Order{})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (dc *DashboardController) GetOrder(c *gin.Context) {
	order, err := dc.Orders.FindByAnyID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		dc.Logger.Error("error getting dashboard order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus is the administrative override: any state to any of the
// five legal states. The target status is validated before the store is
// touched.
func (dc *DashboardController) UpdateOrderStatus(c *gin.Context) {
	status := c.Query("status")
	if !models.ValidOrderStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid status. Must be one of: pending, paid, failed, cancelled, refunded",
		})
		return
	}

	matched, err := dc.Orders.UpdateStatusByAnyID(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		dc.Logger.Error("error updating order status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "status": status})
}
