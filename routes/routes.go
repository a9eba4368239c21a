package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NascimentoLucas/GroceryAPI/config"
	"github.com/NascimentoLucas/GroceryAPI/controllers"
	"github.com/NascimentoLucas/GroceryAPI/middlewares"
	"github.com/NascimentoLucas/GroceryAPI/services"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	foodsCtl := controllers.NewFoodsController(db)
	ingredientsCtl := controllers.NewIngredientsController(db)
	foodIngredientsCtl := controllers.NewFoodIngredientsController(db)
	groceryCtl := controllers.NewGroceryController(
		services.NewExtractionService(cfg.Extraction),
		services.NewCatalogService(db),
	)

	api := r.Group("/api")

	foods := api.Group("/foods")
	{
		foods.GET("", foodsCtl.List)
		foods.GET("/:id", foodsCtl.Get)
		foods.POST("", foodsCtl.Create)
		foods.PUT("/:id", foodsCtl.Update)
		foods.DELETE("/:id", foodsCtl.Delete)
	}

	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("", ingredientsCtl.List)
		ingredients.GET("/:id", ingredientsCtl.Get)
		ingredients.POST("", ingredientsCtl.Create)
		ingredients.PUT("/:id", ingredientsCtl.Update)
		ingredients.DELETE("/:id", ingredientsCtl.Delete)
	}

	foodIngredients := api.Group("/foodingredients")
	{
		foodIngredients.GET("", foodIngredientsCtl.List)
		foodIngredients.GET("/:id", foodIngredientsCtl.Get)
		foodIngredients.POST("", foodIngredientsCtl.Create)
		foodIngredients.PUT("/:id", foodIngredientsCtl.Update)
		foodIngredients.DELETE("/:id", foodIngredientsCtl.Delete)
	}

	grocery := api.Group("/grocery")
	{
		grocery.POST("/extract", groceryCtl.Extract)
	}

	return r
}
