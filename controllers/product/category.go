package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tanjim-alam/homeline-admin-api/models"
	"gorm.io/gorm"
)

// catalogKey resolves a path parameter addressing a catalog row by numeric id
// or by slug. Postgres rejects non-numeric text bound to the bigint id column,
// so the two forms must hit different predicates. An all-digit key is treated
// as an id.
func catalogKey(key string) (string, interface{}) {
	if id, err := strconv.ParseUint(key, 10, 64); err == nil {
		return "id = ?", id
	}
	return "slug = ?", key
}

func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		slug := c.PostForm("slug")
		if slug == "" {
			slug = models.Slugify(name)
		}
		if err := models.ValidateSlug(slug); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err = saveImage(c, file, "categories")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}

		category := models.Category{
			Name:        name,
			Slug:        slug,
			Description: c.PostForm("description"),
			Image:       imageURL,
			SEO:         seoFromForm(c),
		}

		if err := db.Create(&category).Error; err != nil {
			if isUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "A category with this name or slug already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// GetAllCategories returns all categories.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetCategoryByID fetches a category by numeric id or slug.
func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cond, arg := catalogKey(c.Param("id"))
		var category models.Category
		if err := db.Where(cond, arg).First(&category).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			category.Name = v
		}
		if v := c.PostForm("slug"); v != "" {
			if err := models.ValidateSlug(v); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			category.Slug = v
		}
		if v := c.PostForm("description"); v != "" {
			category.Description = v
		}
		applySEOForm(c, &category.SEO)

		if file, err := c.FormFile("image"); err == nil {
			removeImage(category.Image)
			imageURL, err := saveImage(c, file, "categories")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			category.Image = imageURL
		}

		if err := db.Save(&category).Error; err != nil {
			if isUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "A category with this name or slug already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		removeImage(category.Image)
		if err := db.Delete(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

// seoFromForm reads the three SEO form fields.
func seoFromForm(c *gin.Context) models.SEO {
	return models.SEO{
		Title:       c.PostForm("seo_title"),
		Description: c.PostForm("seo_description"),
		Keywords:    c.PostForm("seo_keywords"),
	}
}

// applySEOForm overwrites SEO fields that are present in the form.
func applySEOForm(c *gin.Context, seo *models.SEO) {
	if v := c.PostForm("seo_title"); v != "" {
		seo.Title = v
	}
	if v := c.PostForm("seo_description"); v != "" {
		seo.Description = v
	}
	if v := c.PostForm("seo_keywords"); v != "" {
		seo.Keywords = v
	}
}

// isUniqueViolation sniffs duplicate-key failures across drivers.
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
