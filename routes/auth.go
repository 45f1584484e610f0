package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tanjim-alam/homeline-admin-api/auth"
	"github.com/tanjim-alam/homeline-admin-api/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers login and access-request endpoints. Both sit
// behind the deploy API key; login additionally requires an approved admin.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.ValidateAPIKey)
	{
		authGroup.POST("/login", auth.LoginHandler(db))
		authGroup.POST("/request-access", auth.RequestAccessHandler(db))
	}
}
