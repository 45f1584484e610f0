package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up the public storefront
// endpoints, auth, and the API-key-protected admin surface.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public storefront routes (no middleware)
	SetupPublicRoutes(r, db)

	// Auth routes (API-key protected)
	SetupAuthRoutes(r, db)

	// Admin routes (API-key + JWT protected)
	SetupAdminRoutes(r, db)
}
