package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/tanjim-alam/homeline-admin-api/controllers/admin"
	leadControllers "github.com/tanjim-alam/homeline-admin-api/controllers/lead"
	orderControllers "github.com/tanjim-alam/homeline-admin-api/controllers/order"
	partnerControllers "github.com/tanjim-alam/homeline-admin-api/controllers/partner"
	productcontroller "github.com/tanjim-alam/homeline-admin-api/controllers/product"
	"github.com/tanjim-alam/homeline-admin-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the API key
// plus a bearer token.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey, middleware.ValidateToken)
	{
		// ─────────── Order Lifecycle ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/stats", orderControllers.GetOrderStatsHandler(db))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.GET("/available-partners", orderControllers.GetAvailablePartnersHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
			orderAdmin.POST("/:orderID/assign", orderControllers.AssignPartnerHandler(db))
			orderAdmin.PUT("/:orderID/delivery-status", orderControllers.UpdateDeliveryStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}

		// ─────────── Delivery Partner Management ───────────
		partnerAdmin := adminGroup.Group("/partners")
		{
			partnerAdmin.POST("", partnerControllers.CreatePartner(db))
			partnerAdmin.GET("", partnerControllers.GetPartners(db))
			partnerAdmin.GET("/:id", partnerControllers.GetPartnerByID(db))
			partnerAdmin.PUT("/:id", partnerControllers.UpdatePartner(db))
			partnerAdmin.PUT("/:id/status", partnerControllers.UpdatePartnerStatus(db))
			partnerAdmin.DELETE("/:id", partnerControllers.DeletePartner(db))
		}

		// ─────────── Catalog Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}
		packageAdmin := adminGroup.Group("/packages")
		{
			packageAdmin.POST("", productcontroller.CreatePackage(db))
			packageAdmin.GET("", productcontroller.GetPackages(db))
			packageAdmin.PUT("/:id", productcontroller.UpdatePackage(db))
			packageAdmin.DELETE("/:id", productcontroller.DeletePackage(db))
		}

		// ─────────── Leads (read-only) ───────────
		leadAdmin := adminGroup.Group("/leads")
		{
			leadAdmin.GET("", leadControllers.GetAllLeads(db))
			leadAdmin.GET("/export-excel", leadControllers.ExportLeadsToExcel(db))
			leadAdmin.GET("/:id", leadControllers.GetLeadByID(db))
		}

		// ─────────── Hero Section ───────────
		heroAdmin := adminGroup.Group("/hero-banners")
		{
			heroAdmin.POST("/upload", adminController.UploadHeroBanner(db))
			heroAdmin.GET("", adminController.GetHeroBanners(db))
			heroAdmin.PUT("/reorder", adminController.ReorderHeroBanners(db))
			heroAdmin.DELETE("/:id", adminController.DeleteHeroBanner(db))
		}

		// ─────────── Admin Approval Workflow ───────────
		adminMgmt := adminGroup.Group("/admin-management")
		{
			adminMgmt.GET("/admins", adminController.GetAllAdmins(db))
			adminMgmt.GET("/pending", adminController.ListPendingAdmins(db))
			adminMgmt.POST("/approve", adminController.ApproveAdmin(db))
			adminMgmt.POST("/reject", adminController.RejectAdmin(db))
		}
	}
}
