package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/controllers"
	"github.com/yeremiapane/food-order-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	mealCtrl := controllers.NewMealController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	orderCtrl := controllers.NewOrderController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Daftar restoran, menu, katalog meal dan pencarian dish terbuka untuk umum
	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	r.GET("/restaurants/search", restaurantCtrl.SearchRestaurants)
	r.GET("/restaurants/search/dish", restaurantCtrl.SearchRestaurantsByDish)
	r.GET("/restaurants/:id", restaurantCtrl.GetRestaurant)
	r.GET("/restaurants/:id/menu", restaurantCtrl.GetRestaurantMenu)

	r.GET("/meals", mealCtrl.GetAllMeals)
	r.GET("/meals/search", mealCtrl.SearchMeals)
	r.GET("/meals/:id", mealCtrl.GetMealByID)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.DELETE("/logout", userCtrl.Logout)

		auth.GET("/users/:id", userCtrl.GetUser)
		auth.PUT("/users/:id", userCtrl.UpdateUser)
		auth.PUT("/users/:id/password", userCtrl.UpdatePassword)
		auth.DELETE("/users/:id", userCtrl.DeleteUser)

		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders/user", orderCtrl.GetUserOrders)
		auth.GET("/orders/history", orderCtrl.GetUserOrderHistory)
		auth.GET("/orders/:id", orderCtrl.GetOrderByID)
		auth.PUT("/orders/:id/status", orderCtrl.UpdateOrderStatus)
		auth.DELETE("/orders/:id", orderCtrl.DeleteOrder)
	}

	// Khusus restaurateur
	restaurateur := r.Group("/")
	restaurateur.Use(middlewares.AuthMiddleware(), middlewares.RestaurateurOnly())
	{
		restaurateur.POST("/meals", mealCtrl.CreateMeal)
		restaurateur.PUT("/meals/:id", mealCtrl.UpdateMeal)
		restaurateur.DELETE("/meals/:id", mealCtrl.DeleteMeal)

		restaurateur.POST("/restaurants", restaurantCtrl.CreateRestaurant)
		restaurateur.PUT("/restaurants/:id", restaurantCtrl.UpdateRestaurant)
		restaurateur.DELETE("/restaurants/:id", restaurantCtrl.DeleteRestaurant)
		restaurateur.POST("/restaurants/:id/menu", restaurantCtrl.UpsertMenuItem)
		restaurateur.DELETE("/restaurants/:id/menu/:meal_id", restaurantCtrl.DeleteMenuItem)
		restaurateur.GET("/restaurants/:id/statistics", restaurantCtrl.GetStatistics)
	}

	return r
}
