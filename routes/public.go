package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/tanjim-alam/homeline-admin-api/controllers/admin"
	leadControllers "github.com/tanjim-alam/homeline-admin-api/controllers/lead"
	orderControllers "github.com/tanjim-alam/homeline-admin-api/controllers/order"
	productcontroller "github.com/tanjim-alam/homeline-admin-api/controllers/product"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the endpoints the storefront consumes directly.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	// Storefront order intake
	r.POST("/orders", orderControllers.PlaceOrderHandler(db))

	// Lead capture
	r.POST("/leads", leadControllers.CaptureLeadHandler(db))

	// Catalog browsing
	r.GET("/categories", productcontroller.GetAllCategories(db))
	r.GET("/categories/:id", productcontroller.GetCategoryByID(db))
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/packages", productcontroller.GetPackages(db))
	r.GET("/packages/:id", productcontroller.GetPackageByID(db))

	// Hero section slides
	r.GET("/hero-banners", adminController.GetHeroBanners(db))
}
