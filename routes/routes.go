package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mconrado/fast-ecommerce-back/controllers"
	"github.com/mconrado/fast-ecommerce-back/middleware"
)

type Controllers struct {
	Auth    *controllers.AuthController
	Product *controllers.ProductController
	Cart    *controllers.CartController
	Order   *controllers.OrderController
}

func SetupRoutes(router *gin.Engine, ctrls Controllers, jwtSecret string) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", ctrls.Auth.Register)
	router.POST("/auth/login", ctrls.Auth.Login)

	router.GET("/categories", ctrls.Product.GetAllCategories)
	router.GET("/products", ctrls.Product.GetAllProducts)
	router.GET("/products/:id", ctrls.Product.GetProductByID)

	cart := router.Group("/cart")
	{
		cart.POST("", ctrls.Cart.GetOrCreateCart)
		cart.POST("/product", ctrls.Cart.AddProduct)
		cart.POST("/:uuid/estimate", ctrls.Cart.CalculateCart)
		cart.PATCH("/:uuid/product/:product_id", ctrls.Cart.SetQuantity)
		cart.DELETE("/:uuid/product/:product_id", ctrls.Cart.RemoveProduct)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(jwtSecret))
	{
		auth.POST("/checkout", ctrls.Order.Checkout)
		auth.GET("/orders", ctrls.Order.ListOrders)
		auth.GET("/orders/:id", ctrls.Order.GetOrderByID)
	}
}
