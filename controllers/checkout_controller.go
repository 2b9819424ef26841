package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"portfolio-backend/models"
	"portfolio-backend/repository"
	"portfolio-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

type CheckoutController struct {
	Payments *services.PaymentService
	Stripe   *services.StripeGateway
	Razorpay *services.RazorpayGateway
	Orders   repository.OrderRepository
	Logger   *zap.Logger
}

// CreateCheckoutSession creates a gateway session for any supported payment
// method and records a pending order.
func (cc *CheckoutController) CreateCheckoutSession(c *gin.Context) {
	var req models.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = models.PaymentMethodStripe
	}

	session, err := cc.Payments.CreateCheckoutSession(c.Request.Context(), &req)
	if err != nil {
		var configErr *services.ConfigError
		switch {
		case errors.Is(err, services.ErrUnsupportedMethod):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &configErr):
			cc.Logger.Error("payment configuration error", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			cc.Logger.Error("error creating checkout session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

// VerifyRazorpay checks the payment signature the client got back from the
// widget and marks the order paid.
func (cc *CheckoutController) VerifyRazorpay(c *gin.Context) {
	var req models.RazorpayVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := cc.Razorpay.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature); err != nil {
		var signatureErr *services.SignatureError
		if errors.As(err, &signatureErr) {
			cc.Logger.Warn("Razorpay signature verification failed",
				zap.String("orderId", req.RazorpayOrderID))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment signature"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matched, err := cc.Orders.MarkPaid(c.Request.Context(), req.RazorpayOrderID, models.PaymentMethodRazorpay, req.RazorpayPaymentID)
	if err != nil {
		cc.Logger.Warn("could not update order after verification",
			zap.String("orderId", req.RazorpayOrderID), zap.Error(err))
	} else if matched == 0 {
		cc.Logger.Warn("no order matched verified Razorpay payment",
			zap.String("orderId", req.RazorpayOrderID))
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Payment verified"})
}

// StripeWebhook handles provider-initiated deliveries. Signature
// verification precedes everything; an unverifiable payload is rejected
// before any state is touched.
func (cc *CheckoutController) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	event, err := cc.Stripe.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		cc.Logger.Warn("Stripe webhook rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook"})
		return
	}

	if event.Type == "checkout.session.completed" {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			cc.Logger.Error("failed to unmarshal checkout session", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
			return
		}

		paymentIntentID := ""
		if sess.PaymentIntent != nil {
			paymentIntentID = sess.PaymentIntent.ID
		}

		// Zero matches is fine: deliveries are retried and may refer to a
		// session whose ledger write failed.
		matched, err := cc.Orders.MarkPaid(c.Request.Context(), sess.ID, models.PaymentMethodStripe, paymentIntentID)
		if err != nil {
			cc.Logger.Error("error updating order status",
				zap.String("sessionId", sess.ID), zap.Error(err))
		} else if matched > 0 {
			cc.Logger.Info("order marked as paid", zap.String("sessionId", sess.ID))
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// ListOrders returns recent orders. A store failure degrades to an empty
// list for this public read.
func (cc *CheckoutController) ListOrders(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 50
	}

	orders, err := cc.Orders.List(c.Request.Context(), repository.OrderFilter{Limit: limit})
	if err != nil {
		cc.Logger.Warn("error getting orders", zap.Error(err))
		c.JSON(http.StatusOK, []models.Order{})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder fetches one order by internal id, falling back to the gateway
// session id.
func (cc *CheckoutController) GetOrder(c *gin.Context) {
	order, err := cc.Orders.FindByAnyID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		cc.Logger.Error("error getting order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}
