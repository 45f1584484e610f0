package adminController

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tanjim-alam/homeline-admin-api/models"
	"gorm.io/gorm"
)

func heroUploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return filepath.Join(dir, "hero")
	}
	return "/var/www/homeline/uploads/hero"
}

// UploadHeroBanner saves the slide image locally and stores its public URL
// plus the caption fields.
func UploadHeroBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}

		dir := heroUploadDir()
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		ext := filepath.Ext(file.Filename)
		base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
		base = strings.ReplaceAll(base, " ", "_")
		filename := fmt.Sprintf("%d_%s%s", time.Now().Unix(), base, ext)

		if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		sortOrder := 0
		if v := c.PostForm("sort_order"); v != "" {
			if sortOrder, err = strconv.Atoi(v); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_order"})
				return
			}
		}

		banner := models.HeroBanner{
			ImageURL:  fmt.Sprintf("%s/uploads/hero/%s", os.Getenv("PUBLIC_BASE_URL"), filename),
			Title:     c.PostForm("title"),
			Subtitle:  c.PostForm("subtitle"),
			LinkURL:   c.PostForm("link_url"),
			SortOrder: sortOrder,
		}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB save failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Hero banner uploaded", "data": banner})
	}
}

// GetHeroBanners lists slides in display order. Served publicly for the
// storefront and under /admin for the dashboard.
func GetHeroBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.HeroBanner
		if err := db.Order("sort_order ASC, id ASC").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get hero banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// ReorderHeroBanners takes the full list of banner ids in display order.
func ReorderHeroBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDs []uint `json:"ids" binding:"required,min=1"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			for i, id := range req.IDs {
				if err := tx.Model(&models.HeroBanner{}).Where("id = ?", id).
					Update("sort_order", i).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder hero banners"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Hero banners reordered"})
	}
}

// DeleteHeroBanner removes both the DB record and the local file.
func DeleteHeroBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.HeroBanner
		if err := db.First(&banner, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Hero banner not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if banner.ImageURL != "" {
			localPath := filepath.Join(heroUploadDir(), filepath.Base(banner.ImageURL))
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
				return
			}
		}

		if err := db.Delete(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete from database"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Hero banner deleted"})
	}
}
