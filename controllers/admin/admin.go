package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanjim-alam/homeline-admin-api/models"
	"gorm.io/gorm"
)

// GetAllAdmins returns every registered admin.
func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin
		if err := db.Find(&admins).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
			return
		}
		c.JSON(http.StatusOK, admins)
	}
}
