package routes

import (
	"net/http"

	"portfolio-backend/config"
	"portfolio-backend/controllers"
	"portfolio-backend/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Controllers bundles every handler group the router wires up.
type Controllers struct {
	Auth      *controllers.AuthController
	Portfolio *controllers.PortfolioController
	Contact   *controllers.ContactController
	Cart      *controllers.CartController
	Checkout  *controllers.CheckoutController
	Dashboard *controllers.DashboardController
}

// Register mounts all routes on the engine. Public content and checkout
// live under /api; the dashboard group requires an admin token.
func Register(r *gin.Engine, cfg *config.Config, ctrl *Controllers) {
	index := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Portfolio API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"bootstrap": "/api/bootstrap",
				"content":   "/api/{personal-info,stats,services,projects,products,testimonials,skills,nav-links}",
				"contact":   "/api/contact",
				"cart":      "/api/cart",
				"checkout":  "/api/checkout/create-session",
				"orders":    "/api/orders",
				"dashboard": "/api/dashboard",
			},
		})
	}
	r.GET("/", index)

	api := r.Group("/api")
	api.GET("/", index)

	// Site content
	api.GET("/bootstrap", ctrl.Portfolio.Bootstrap)
	api.GET("/personal-info", ctrl.Portfolio.GetPersonalInfo)
	api.PUT("/personal-info", ctrl.Portfolio.UpdatePersonalInfo)
	api.GET("/stats", ctrl.Portfolio.GetStats)
	api.POST("/stats", ctrl.Portfolio.CreateStat)
	api.GET("/services", ctrl.Portfolio.GetServices)
	api.POST("/services", ctrl.Portfolio.CreateService)
	api.DELETE("/services/:id", ctrl.Portfolio.DeleteService)
	api.GET("/projects", ctrl.Portfolio.GetProjects)
	api.GET("/projects/:id", ctrl.Portfolio.GetProject)
	api.POST("/projects", ctrl.Portfolio.CreateProject)
	api.DELETE("/projects/:id", ctrl.Portfolio.DeleteProject)
	api.GET("/products", ctrl.Portfolio.GetProducts)
	api.POST("/products", ctrl.Portfolio.CreateProduct)
	api.DELETE("/products/:id", ctrl.Portfolio.DeleteProduct)
	api.GET("/testimonials", ctrl.Portfolio.GetTestimonials)
	api.POST("/testimonials", ctrl.Portfolio.CreateTestimonial)
	api.DELETE("/testimonials/:id", ctrl.Portfolio.DeleteTestimonial)
	api.GET("/skills", ctrl.Portfolio.GetSkills)
	api.POST("/skills", ctrl.Portfolio.CreateSkill)
	api.GET("/nav-links", ctrl.Portfolio.GetNavLinks)
	api.POST("/nav-links", ctrl.Portfolio.CreateNavLink)
	api.DELETE("/nav-links/:id", ctrl.Portfolio.DeleteNavLink)

	// Contact form, rate limited per client IP
	api.POST("/contact", middleware.RateLimit(rate.Limit(1), 5), ctrl.Contact.CreateMessage)
	api.GET("/contact", ctrl.Contact.ListMessages)

	// Health pings
	api.POST("/status", ctrl.Portfolio.CreateStatusCheck)
	api.GET("/status", ctrl.Portfolio.GetStatusChecks)

	// Cart
	api.GET("/cart", ctrl.Cart.GetCart)
	api.POST("/cart/items", ctrl.Cart.AddItem)
	api.PUT("/cart/items/:item_id", ctrl.Cart.UpdateItem)
	api.DELETE("/cart/items/:item_id", ctrl.Cart.RemoveItem)
	api.DELETE("/cart", ctrl.Cart.ClearCart)

	// Checkout and reconciliation
	api.POST("/checkout/create-session", ctrl.Checkout.CreateCheckoutSession)
	api.POST("/checkout/verify-razorpay", ctrl.Checkout.VerifyRazorpay)
	api.POST("/checkout/webhook", ctrl.Checkout.StripeWebhook)
	api.GET("/orders", ctrl.Checkout.ListOrders)
	api.GET("/orders/:id", ctrl.Checkout.GetOrder)

	// Admin
	api.POST("/auth/login", middleware.RateLimit(rate.Limit(1), 10), ctrl.Auth.Login)

	dashboard := api.Group("/dashboard")
	dashboard.Use(middleware.RequireAdmin(cfg.JWTSecret))
	dashboard.GET("/stats", ctrl.Dashboard.Stats)
	dashboard.GET("/orders", ctrl.Dashboard.ListOrders)
	dashboard.GET("/orders/:id", ctrl.Dashboard.GetOrder)
	dashboard.PUT("/orders/:id/status", ctrl.Dashboard.UpdateOrderStatus)
}
