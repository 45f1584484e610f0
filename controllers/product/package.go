package productcontroller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tanjim-alam/homeline-admin-api/models"
	"gorm.io/gorm"
)

// parseRooms decodes the JSON-stringified rooms form field.
func parseRooms(raw string) ([]models.PackageRoom, error) {
	if raw == "" {
		return nil, nil
	}
	var rooms []models.PackageRoom
	if err := json.Unmarshal([]byte(raw), &rooms); err != nil {
		return nil, errors.New("invalid rooms JSON")
	}
	return rooms, nil
}

// CreatePackage creates a 1BHK/2BHK interior package.
func CreatePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		basePriceStr := c.PostForm("base_price")
		if name == "" || basePriceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and base_price are required"})
			return
		}

		basePrice, err := strconv.ParseFloat(basePriceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base_price"})
			return
		}
		var mrp float64
		if v := c.PostForm("mrp"); v != "" {
			if mrp, err = strconv.ParseFloat(v, 64); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mrp"})
				return
			}
		}
		if err := validatePricing(basePrice, mrp); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		pkgType := models.PackageType(strings.ToLower(c.PostForm("type")))
		if pkgType != models.PackageType1BHK && pkgType != models.PackageType2BHK {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be 1bhk or 2bhk"})
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

		rooms, err := parseRooms(c.PostForm("rooms"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		inclusions, err := parseStringList(c.PostForm("inclusions"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "inclusions: " + err.Error()})
			return
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err = saveImage(c, file, "packages")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}

		pkg := models.Package{
			Name:        name,
			Slug:        slug,
			Type:        pkgType,
			Description: c.PostForm("description"),
			BasePrice:   basePrice,
			MRP:         mrp,
			Image:       imageURL,
			Rooms:       rooms,
			Inclusions:  inclusions,
			SEO:         seoFromForm(c),
		}

		if err := db.Create(&pkg).Error; err != nil {
			if isUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "A package with this slug already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package"})
			return
		}
		c.JSON(http.StatusCreated, pkg)
	}
}

// GetPackages lists packages, optionally filtered by ?type=.
func GetPackages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Session(&gorm.Session{})
		if t := c.Query("type"); t != "" {
			query = query.Where("type = ?", strings.ToLower(t))
		}
		var packages []models.Package
		if err := query.Find(&packages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch packages"})
			return
		}
		c.JSON(http.StatusOK, packages)
	}
}

// GetPackageByID fetches a package by numeric id or slug.
func GetPackageByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cond, arg := catalogKey(c.Param("id"))
		var pkg models.Package
		if err := db.Where(cond, arg).First(&pkg).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		c.JSON(http.StatusOK, pkg)
	}
}

// UpdatePackage updates a package in place.
func UpdatePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pkg models.Package
		if err := db.First(&pkg, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			pkg.Name = v
		}
		if v := c.PostForm("slug"); v != "" {
			if err := models.ValidateSlug(v); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			pkg.Slug = v
		}
		if v := c.PostForm("description"); v != "" {
			pkg.Description = v
		}
		if v := c.PostForm("base_price"); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base_price"})
				return
			}
			pkg.BasePrice = f
		}
		if v := c.PostForm("mrp"); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mrp"})
				return
			}
			pkg.MRP = f
		}
		if err := validatePricing(pkg.BasePrice, pkg.MRP); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if raw := c.PostForm("rooms"); raw != "" {
			rooms, err := parseRooms(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			pkg.Rooms = rooms
		}
		if raw := c.PostForm("inclusions"); raw != "" {
			inclusions, err := parseStringList(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "inclusions: " + err.Error()})
				return
			}
			pkg.Inclusions = inclusions
		}
		applySEOForm(c, &pkg.SEO)

		if file, err := c.FormFile("image"); err == nil {
			removeImage(pkg.Image)
			imageURL, err := saveImage(c, file, "packages")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			pkg.Image = imageURL
		}

		if err := db.Save(&pkg).Error; err != nil {
			if isUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "A package with this slug already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update package"})
			return
		}
		c.JSON(http.StatusOK, pkg)
	}
}

// DeletePackage soft-deletes a package.
func DeletePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pkg models.Package
		if err := db.First(&pkg, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		if err := db.Delete(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete package"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Package deleted successfully"})
	}
}
