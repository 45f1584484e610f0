package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tanjim-alam/homeline-admin-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// Import sheet column order. A header row is expected and skipped.
const (
	colID = iota
	colName
	colSlug
	colType
	colCategoryID
	colDescription
	colBasePrice
	colMRP
	colImage
	importColumnCount
)

// productFromCells builds a product from one sheet row. The first return value
// is the existing product id when the row updates a product, zero for inserts.
func productFromCells(cells []string) (uint, models.Product, error) {
	get := func(index int) string {
		if index < len(cells) {
			return strings.TrimSpace(cells[index])
		}
		return ""
	}

	name := get(colName)
	if name == "" {
		return 0, models.Product{}, errors.New("name is required")
	}

	productType := models.ProductType(strings.ToLower(get(colType)))
	if productType != models.ProductTypeKitchen && productType != models.ProductTypeWardrobe {
		return 0, models.Product{}, errors.New("type must be kitchen or wardrobe")
	}

	slug := get(colSlug)
	if slug == "" {
		slug = models.Slugify(name)
	}
	if err := models.ValidateSlug(slug); err != nil {
		return 0, models.Product{}, err
	}

	basePrice, err := strconv.ParseFloat(get(colBasePrice), 64)
	if err != nil {
		return 0, models.Product{}, errors.New("base_price must be a number")
	}
	var mrp float64
	if v := get(colMRP); v != "" {
		if mrp, err = strconv.ParseFloat(v, 64); err != nil {
			return 0, models.Product{}, errors.New("mrp must be a number")
		}
	}
	if err := validatePricing(basePrice, mrp); err != nil {
		return 0, models.Product{}, err
	}

	var categoryID uint
	if v := get(colCategoryID); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, models.Product{}, errors.New("category_id must be a number")
		}
		categoryID = uint(id)
	}

	var existingID uint
	if v := get(colID); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, models.Product{}, errors.New("id must be a number")
		}
		existingID = uint(id)
	}

	return existingID, models.Product{
		Name:        name,
		Slug:        slug,
		Type:        productType,
		CategoryID:  categoryID,
		Description: get(colDescription),
		BasePrice:   basePrice,
		MRP:         mrp,
		Image:       get(colImage),
	}, nil
}

// ImportProductsFromExcel bulk-creates or updates products from an uploaded
// sheet. Rows carrying an id update that product; rows without one insert.
// Bad rows are skipped, not fatal, so a partial sheet still lands.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			cells := make([]string, 0, len(row.Cells))
			for _, cell := range row.Cells {
				cells = append(cells, cell.String())
			}

			existingID, product, err := productFromCells(cells)
			if err != nil {
				skippedCount++
				continue
			}

			if existingID != 0 {
				var existing models.Product
				if err := db.First(&existing, existingID).Error; err != nil {
					skippedCount++
					continue
				}
				existing.Name = product.Name
				existing.Slug = product.Slug
				existing.Type = product.Type
				existing.CategoryID = product.CategoryID
				existing.Description = product.Description
				existing.BasePrice = product.BasePrice
				existing.MRP = product.MRP
				if product.Image != "" {
					existing.Image = product.Image
				}
				if err := db.Save(&existing).Error; err != nil {
					skippedCount++
					continue
				}
				updatedCount++
				continue
			}

			if err := db.Create(&product).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
