package routes

import (
	"homecook-api/handlers"
	"homecook-api/middleware"
	"homecook-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Order lifecycle reference (great for docs/Postman)
	api.GET("/state-machine", handlers.GetOrderLifecycle)

	// ── Auth ───────────────────────────────────────────────────────
	auth := api.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.GET("/me", middleware.Protect(), handlers.GetMe)
		auth.GET("/logout", middleware.Protect(), handlers.Logout)
	}

	// ── Chefs ──────────────────────────────────────────────────────
	chefs := api.Group("/chefs")
	{
		chefs.GET("", handlers.ListChefs)
		chefs.GET("/nearby", handlers.NearbyChefs)
		chefs.GET("/:id", handlers.GetChef)
		chefs.GET("/:id/menus", handlers.GetChefMenus)
		chefs.PUT("/:id", middleware.Protect(), handlers.UpdateChef)
	}

	// ── Menus ──────────────────────────────────────────────────────
	menus := api.Group("/menus")
	{
		menus.GET("", handlers.ListMenus)
		menus.GET("/:id", handlers.GetMenu)

		chefOnly := menus.Group("", middleware.Protect(), middleware.Authorize(models.RoleChef))
		{
			chefOnly.POST("", handlers.CreateMenu)
			chefOnly.PUT("/:id", handlers.UpdateMenu)
			chefOnly.DELETE("/:id", handlers.DeleteMenu)
		}
	}

	// ── Orders ─────────────────────────────────────────────────────
	orders := api.Group("/orders", middleware.Protect())
	{
		orders.POST("", handlers.CreateOrder)
		orders.GET("", handlers.ListOrders)
		orders.GET("/:id", handlers.GetOrder)
		orders.PUT("/:id/status",
			middleware.Authorize(models.RoleChef, models.RoleAdmin), handlers.UpdateOrderStatus)
		orders.PUT("/:id/review",
			middleware.Authorize(models.RoleUser), handlers.ReviewOrder)
	}
}
