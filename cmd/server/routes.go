package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"muza-life.backend/internal/interfaces/http/handlers"
	"muza-life.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler          *handlers.AuthHandler
	productHandler       *handlers.ProductHandler
	reviewHandler        *handlers.ReviewHandler
	pollHandler          *handlers.PollHandler
	libraryHandler       *handlers.LibraryHandler
	personalOrderHandler *handlers.PersonalOrderHandler
	analyticsHandler     *handlers.AnalyticsHandler
	paymentHandler       *handlers.PaymentHandler
	authMiddleware       gin.HandlerFunc
	optionalAuth         gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine, frontendURL string) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (frontendURL == "" || origin == frontendURL) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID, Idempotency-Key")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/google", d.authHandler.GoogleLogin)
			auth.POST("/facebook", d.authHandler.FacebookLogin)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Catalog routes (public read, admin write)
		products := api.Group("/products")
		{
			products.GET("", d.optionalAuth, d.productHandler.List)
			products.GET("/:id", d.optionalAuth, d.productHandler.Get)
			products.GET("/:id/reviews", d.reviewHandler.ListByProduct)
			products.POST("", d.authMiddleware, middleware.RequireAdmin(), d.productHandler.Create)
			products.PATCH("/:id", d.authMiddleware, middleware.RequireAdmin(), d.productHandler.Patch)
			products.DELETE("/:id", d.authMiddleware, middleware.RequireAdmin(), d.productHandler.Delete)
		}

		api.GET("/faqs", d.productHandler.ListFAQs)
		api.GET("/faqs/:id", d.productHandler.GetFAQ)

		// Review routes (public read, protected write)
		reviews := api.Group("/reviews")
		{
			reviews.GET("/:id", d.reviewHandler.Get)
			reviews.POST("", d.authMiddleware, d.reviewHandler.Submit)
			reviews.DELETE("/:id", d.authMiddleware, d.reviewHandler.Delete)
		}

		// Poll routes (public read, protected vote, admin manage)
		polls := api.Group("/polls")
		{
			polls.GET("", d.optionalAuth, d.pollHandler.ListActive)
			polls.GET("/:id", d.optionalAuth, d.pollHandler.Get)
			polls.GET("/:id/results", d.pollHandler.Results)
			polls.POST("/:id/vote", d.authMiddleware, d.pollHandler.Vote)
			polls.POST("", d.authMiddleware, middleware.RequireAdmin(), d.pollHandler.Create)
			polls.PATCH("/:id/active", d.authMiddleware, middleware.RequireAdmin(), d.pollHandler.SetActive)
		}

		// Library routes (protected)
		library := api.Group("/library")
		library.Use(d.authMiddleware)
		{
			library.GET("/saved", d.libraryHandler.ListSaved)
			library.POST("/saved", d.libraryHandler.SaveProduct)
			library.DELETE("/saved/:id", d.libraryHandler.UnsaveProduct)
			library.GET("/bought", d.libraryHandler.ListBought)
			library.POST("/grant/:userId", middleware.RequireAdmin(), d.libraryHandler.GrantProduct)
			library.DELETE("/grant/:userId/:id", middleware.RequireAdmin(), d.libraryHandler.RevokeProduct)
		}

		// Personal order routes (protected)
		orders := api.Group("/personal-orders")
		orders.Use(d.authMiddleware)
		{
			orders.POST("", d.personalOrderHandler.Create)
			orders.GET("", d.personalOrderHandler.ListMine)
			orders.GET("/all", middleware.RequireAdmin(), d.personalOrderHandler.ListAll)
			orders.GET("/:id", d.personalOrderHandler.Get)
			orders.PATCH("/:id/status", d.personalOrderHandler.UpdateStatus)
		}

		// Analytics (public write, admin read)
		analytics := api.Group("/analytics")
		{
			analytics.POST("/views", d.optionalAuth, d.analyticsHandler.RecordView)
			analytics.GET("/products/:id", d.authMiddleware, middleware.RequireAdmin(), d.analyticsHandler.ProductStats)
		}

		// Payment flow: initiate and verify are guest endpoints keyed by
		// email; the webhook is called by the gateway
		payment := api.Group("/payments")
		{
			payment.POST("/initiate", middleware.IdempotencyMiddleware(), d.paymentHandler.Initiate)
			payment.POST("/verify", middleware.IdempotencyMiddleware(), d.paymentHandler.Verify)
			payment.POST("/webhook", d.paymentHandler.Webhook)
		}
	}
}
