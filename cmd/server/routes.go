package main

import (
	"github.com/gin-gonic/gin"

	"campus-market.backend/internal/config"
	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/internal/interfaces/http/handlers"
	"campus-market.backend/internal/interfaces/http/middleware"
	"campus-market.backend/internal/interfaces/http/response"
)

type routeDeps struct {
	authHandler          *handlers.AuthHandler
	productHandler       *handlers.ProductHandler
	userHandler          *handlers.UserHandler
	conversationHandler  *handlers.ConversationHandler
	paymentMethodHandler *handlers.PaymentMethodHandler
	transactionHandler   *handlers.TransactionHandler
	reportHandler        *handlers.ReportHandler
	adminHandler         *handlers.AdminHandler
	uploadHandler        *handlers.UploadHandler
	sessionMiddleware    gin.HandlerFunc
}

func newRouter(cfg *config.Config, d routeDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r, cfg.Server.CORSAllowedOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, d)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, domainerrors.NotFound("Route not found"))
	})
	return r
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	r.GET("/uploads/:name", d.uploadHandler.ServeImage)

	api := r.Group("/api")
	api.Use(d.sessionMiddleware)
	requireAuth := middleware.RequireAuth()
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authHandler.Me)
		}

		products := api.Group("/products")
		{
			products.GET("", d.productHandler.ListProducts)
			products.GET("/:id", d.productHandler.GetProduct)
			products.POST("", requireAuth, d.productHandler.CreateProduct)
			products.PATCH("/:id", requireAuth, d.productHandler.UpdateProduct)
			products.DELETE("/:id", requireAuth, d.productHandler.DeleteProduct)
		}

		users := api.Group("/users")
		{
			users.GET("/:id", d.userHandler.GetUser)
			users.GET("/:id/products", d.productHandler.ListUserProducts)
		}

		conversations := api.Group("/conversations")
		conversations.Use(requireAuth)
		{
			conversations.GET("", d.conversationHandler.ListConversations)
			conversations.POST("", d.conversationHandler.StartConversation)
			conversations.GET("/:id/messages", d.conversationHandler.ListMessages)
			conversations.POST("/:id/read", d.conversationHandler.MarkRead)
		}
		api.POST("/messages", requireAuth, d.conversationHandler.SendMessage)

		paymentMethods := api.Group("/payment-methods")
		paymentMethods.Use(requireAuth)
		{
			paymentMethods.GET("", d.paymentMethodHandler.ListPaymentMethods)
			paymentMethods.POST("", d.paymentMethodHandler.CreatePaymentMethod)
			paymentMethods.DELETE("/:id", d.paymentMethodHandler.DeletePaymentMethod)
			paymentMethods.PUT("/:id/default", d.paymentMethodHandler.SetDefaultPaymentMethod)
		}

		transactions := api.Group("/transactions")
		transactions.Use(requireAuth)
		{
			transactions.GET("", d.transactionHandler.ListTransactions)
			transactions.POST("", middleware.IdempotencyMiddleware(), d.transactionHandler.Purchase)
		}

		api.POST("/reports", requireAuth, d.reportHandler.CreateReport)
		api.POST("/upload", requireAuth, d.uploadHandler.UploadImage)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/stats", d.adminHandler.GetStats)
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.PATCH("/users/:id", d.adminHandler.UpdateUser)
			admin.DELETE("/users/:id", d.adminHandler.DeleteUser)
			admin.GET("/products", d.productHandler.AdminListProducts)
			admin.PATCH("/products/:id", d.productHandler.ModerateProduct)
			admin.GET("/reports", d.reportHandler.ListReports)
			admin.PATCH("/reports/:id", d.reportHandler.UpdateReportStatus)
		}
	}
}
