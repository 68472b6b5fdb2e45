package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muzahidswe/fs17-Backend-project/internal/handler"
	"github.com/muzahidswe/fs17-Backend-project/internal/logger"
	"github.com/muzahidswe/fs17-Backend-project/internal/middleware"
	"github.com/muzahidswe/fs17-Backend-project/internal/service"
	"github.com/muzahidswe/fs17-Backend-project/internal/token"
)

// Handlers bundles the controllers bound by Setup.
type Handlers struct {
	Users      *handler.UserHandler
	Categories *handler.CategoryHandler
	Products   *handler.ProductHandler
	Orders     *handler.OrderHandler
}

// Setup builds the engine and binds every route with its middleware chain.
func Setup(handlers Handlers, tokens *token.Manager, users service.UserService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger.Get()))
	router.Use(middleware.ErrorHandler())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello World!"})
	})

	authed := middleware.Authenticate(tokens, users)
	admin := middleware.AdminOnly()
	active := middleware.ActiveOnly()

	v1 := router.Group("/api/v1")

	categories := v1.Group("/categories")
	{
		categories.GET("", handlers.Categories.List)
		categories.GET("/:id", handlers.Categories.Get)
		categories.POST("", authed, active, admin, handlers.Categories.Create)
		categories.PUT("/:id", authed, active, admin, handlers.Categories.Update)
		categories.DELETE("/:id", authed, active, admin, handlers.Categories.Delete)
	}

	products := v1.Group("/products")
	{
		products.GET("", handlers.Products.List)
		products.GET("/:id", handlers.Products.Get)
		products.POST("", authed, active, admin, handlers.Products.Create)
		products.PUT("/:id", authed, active, admin, handlers.Products.Update)
		products.DELETE("/:id", authed, active, admin, handlers.Products.Delete)
	}

	usersGroup := v1.Group("/users")
	{
		usersGroup.POST("/registration", handlers.Users.Register)
		usersGroup.POST("/login", handlers.Users.Login)
		usersGroup.POST("/forgot-password", handlers.Users.ForgotPassword)
		usersGroup.POST("/reset-password", handlers.Users.ResetPassword)

		usersGroup.GET("/auth/google", handlers.Users.GoogleLogin)
		usersGroup.GET("/auth/google/callback", handlers.Users.GoogleCallback)

		usersGroup.GET("", authed, active, admin, handlers.Users.List)
		usersGroup.GET("/:id", authed, active, handlers.Users.Get)
		usersGroup.PUT("/:id", authed, active, handlers.Users.Update)
		usersGroup.PUT("/:id/update-password", authed, handlers.Users.UpdatePassword)
		usersGroup.PUT("/:id/role", authed, active, admin, handlers.Users.AssignRole)
		usersGroup.DELETE("/:id", authed, active, admin, handlers.Users.Delete)
		usersGroup.POST("/change-status", authed, admin, handlers.Users.ChangeStatus)
	}

	orders := v1.Group("/orders")
	orders.Use(authed)
	{
		orders.GET("", admin, handlers.Orders.List)
		orders.POST("/:userId", active, handlers.Orders.Create)
		orders.GET("/admin/:orderId", active, admin, handlers.Orders.Get)
		orders.GET("/:userId/get-orders", active, handlers.Orders.ListByUser)
		orders.PUT("/:userId/:orderId", active, handlers.Orders.Update)
		orders.DELETE("/:orderId", active, admin, handlers.Orders.Delete)
	}

	return router
}
