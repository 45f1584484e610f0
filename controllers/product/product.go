package productcontroller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tanjim-alam/homeline-admin-api/models"
	"gorm.io/gorm"
)

// parseStringList decodes a JSON-stringified []string form field
// (layouts, materials, appliances, features).
func parseStringList(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, errors.New("expected a JSON array of strings")
	}
	return list, nil
}

// parseVariants decodes the JSON-stringified variant matrix.
func parseVariants(raw string) ([]models.ProductVariant, error) {
	if raw == "" {
		return nil, nil
	}
	var variants []models.ProductVariant
	if err := json.Unmarshal([]byte(raw), &variants); err != nil {
		return nil, errors.New("invalid variants JSON")
	}
	return variants, nil
}

// validatePricing enforces base_price >= 0 and mrp >= base_price when set.
func validatePricing(basePrice, mrp float64) error {
	if basePrice < 0 {
		return errors.New("base_price must not be negative")
	}
	if mrp != 0 && mrp < basePrice {
		return errors.New("mrp must not be below base_price")
	}
	return nil
}

// CreateProduct creates a kitchen or wardrobe product from a multipart form:
// plain fields, JSON-stringified catalogs, and an image file.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
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
		var mrp, discount float64
		if v := c.PostForm("mrp"); v != "" {
			if mrp, err = strconv.ParseFloat(v, 64); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mrp"})
				return
			}
		}
		if v := c.PostForm("discount"); v != "" {
			if discount, err = strconv.ParseFloat(v, 64); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount"})
				return
			}
		}
		if err := validatePricing(basePrice, mrp); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

		productType := models.ProductType(c.PostForm("type"))
		if productType != models.ProductTypeKitchen && productType != models.ProductTypeWardrobe {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be kitchen or wardrobe"})
			return
		}

		var categoryID uint
		if v := c.PostForm("category_id"); v != "" {
			id64, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			categoryID = uint(id64)
			var category models.Category
			if err := db.First(&category, categoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
				return
			}
		}

		layouts, err := parseStringList(c.PostForm("layouts"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "layouts: " + err.Error()})
			return
		}
		materials, err := parseStringList(c.PostForm("materials"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "materials: " + err.Error()})
			return
		}
		appliances, err := parseStringList(c.PostForm("appliances"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "appliances: " + err.Error()})
			return
		}
		features, err := parseStringList(c.PostForm("features"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "features: " + err.Error()})
			return
		}
		variants, err := parseVariants(c.PostForm("variants"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err = saveImage(c, file, "products")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}

		product := models.Product{
			Name:        name,
			Slug:        slug,
			Type:        productType,
			CategoryID:  categoryID,
			Description: c.PostForm("description"),
			BasePrice:   basePrice,
			MRP:         mrp,
			Discount:    discount,
			Image:       imageURL,
			Layouts:     layouts,
			Materials:   materials,
			Appliances:  appliances,
			Features:    features,
			Variants:    variants,
			SEO:         seoFromForm(c),
		}

		if err := db.Create(&product).Error; err != nil {
			if isUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "A product with this slug already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// GetProducts lists products, optionally filtered by ?type= or ?category_id=.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Category")
		if t := c.Query("type"); t != "" {
			query = query.Where("type = ?", t)
		}
		if cid := c.Query("category_id"); cid != "" {
			query = query.Where("category_id = ?", cid)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID fetches a product by numeric id or slug.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cond, arg := catalogKey(c.Param("id"))
		var product models.Product
		if err := db.Preload("Category").Where(cond, arg).First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// UpdateProduct updates an existing product; absent form fields keep their
// stored values.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("slug"); v != "" {
			if err := models.ValidateSlug(v); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			product.Slug = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("base_price"); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base_price"})
				return
			}
			product.BasePrice = f
		}
		if v := c.PostForm("mrp"); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mrp"})
				return
			}
			product.MRP = f
		}
		if v := c.PostForm("discount"); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount"})
				return
			}
			product.Discount = f
		}
		if err := validatePricing(product.BasePrice, product.MRP); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if v := c.PostForm("category_id"); v != "" {
			id64, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			product.CategoryID = uint(id64)
		}

		for field, target := range map[string]*[]string{
			"layouts":    &product.Layouts,
			"materials":  &product.Materials,
			"appliances": &product.Appliances,
			"features":   &product.Features,
		} {
			if raw := c.PostForm(field); raw != "" {
				list, err := parseStringList(raw)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": field + ": " + err.Error()})
					return
				}
				*target = list
			}
		}
		if raw := c.PostForm("variants"); raw != "" {
			variants, err := parseVariants(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			product.Variants = variants
		}
		applySEOForm(c, &product.SEO)

		if file, err := c.FormFile("image"); err == nil {
			removeImage(product.Image)
			imageURL, err := saveImage(c, file, "products")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			product.Image = imageURL
		}

		if err := db.Save(&product).Error; err != nil {
			if isUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "A product with this slug already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProduct soft-deletes a product after a presence check.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
