package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vitrine_back_end/internal/handlers"
)

type Handlers struct {
	Products *handlers.ProductHandler
	Cart     *handlers.CartHandler
	Checkout *handlers.CheckoutHandler
	Orders   *handlers.OrderHandler
	Upload   *handlers.UploadHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, uploadDir string) {
	r.Use(cors.Default())

	// Images locales servies en statique
	r.Static("/uploads", uploadDir)

	api := r.Group("/api")
	{
		api.GET("/products", h.Products.List)
		api.GET("/products/:id", h.Products.Get)
		api.POST("/products", h.Products.Create)
		api.PUT("/products/:id", h.Products.Update)
		api.DELETE("/products/:id", h.Products.Delete)
		api.GET("/search", h.Products.Search)

		api.POST("/upload-image", h.Upload.UploadImage)

		api.POST("/cart", h.Cart.Add)
		api.GET("/cart", h.Cart.Get)
		api.PUT("/cart/:id", h.Cart.UpdateQuantity)
		api.DELETE("/cart/:id", h.Cart.Remove)

		api.POST("/checkout", h.Checkout.Checkout)

		api.GET("/orders", h.Orders.List)
		api.GET("/orders/:id", h.Orders.Get)
	}
}
