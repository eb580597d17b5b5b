package routes

import (
	"food-marketplace-api/handlers"
	"food-marketplace-api/middleware"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api/v1")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog (no auth needed)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/food-items", handlers.ListFoodItems)
		public.GET("/food-items/:id", handlers.GetFoodItem)
		public.GET("/locations", handlers.ListLocations)
		public.GET("/categories", handlers.ListCategories)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api/v1")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		// Owner-aware general order view, and order detail visible to
		// the purchaser, the owning restaurant, or an admin
		auth.GET("/orders", handlers.ListOrders)
		auth.GET("/orders/:id", handlers.GetOrderDetail)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/v1/customer")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/orders", handlers.PlaceOrder)
		customer.GET("/orders", handlers.GetMyOrders)
		customer.DELETE("/orders/:id", handlers.DeleteOrder)
	}

	// ── Restaurant owner routes ────────────────────────────────────
	restaurant := r.Group("/api/v1/restaurant")
	restaurant.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurantOwner))
	{
		// Restaurant management
		restaurant.POST("/", handlers.CreateRestaurant)
		restaurant.GET("/", handlers.GetMyRestaurant)
		restaurant.PUT("/", handlers.UpdateRestaurant)

		// Menu management
		restaurant.POST("/menu", handlers.AddFoodItem)
		restaurant.PUT("/menu/:itemId", handlers.UpdateFoodItem)
		restaurant.DELETE("/menu/:itemId", handlers.DeleteFoodItem)

		// Order management
		restaurant.GET("/orders", handlers.GetRestaurantOrders)
		restaurant.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PUT("/orders/:id/status", handlers.AdminForceOrderStatus)
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.GET("/restaurants", handlers.AdminGetAllRestaurants)
	}
}
