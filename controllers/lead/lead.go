package leadControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tanjim-alam/homeline-admin-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

type CaptureLeadRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	Source      string `json:"source"`
	ProductSlug string `json:"product_slug"`
}

// CaptureLeadHandler is the public storefront endpoint. When the inquiry
// references a product, its attributes are copied into the lead so catalog
// edits do not rewrite inquiry history.
func CaptureLeadHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CaptureLeadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Email == "" && req.Phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email or phone is required"})
			return
		}

		lead := models.Lead{
			ID:        uuid.NewString(),
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Message:   req.Message,
			Source:    req.Source,
			CreatedAt: time.Now(),
		}

		if req.ProductSlug != "" {
			var product models.Product
			err := db.Where("slug = ?", req.ProductSlug).First(&product).Error
			if err == nil {
				lead.Product = &models.ProductSnapshot{
					Name:      product.Name,
					Slug:      product.Slug,
					BasePrice: product.BasePrice,
					Image:     product.Image,
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
				return
			}
			// an unknown slug still captures the lead, just without a snapshot
		}

		if err := db.Create(&lead).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to capture lead"})
			return
		}
		c.JSON(http.StatusCreated, lead)
	}
}

// GetAllLeads lists leads, newest first. Leads are read-only in the admin API.
func GetAllLeads(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var leads []models.Lead
		if err := db.Order("created_at DESC").Find(&leads).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
			return
		}
		c.JSON(http.StatusOK, leads)
	}
}

// GetLeadByID returns a single lead.
func GetLeadByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var lead models.Lead
		if err := db.Where("id = ?", c.Param("id")).First(&lead).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusOK, lead)
	}
}

// ExportLeadsToExcel downloads the lead book as a spreadsheet.
func ExportLeadsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var leads []models.Lead
		if err := db.Order("created_at DESC").Find(&leads).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Leads")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Email", "Phone", "Message", "Source", "Product", "ProductPrice", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, l := range leads {
			row := sheet.AddRow()
			row.AddCell().SetValue(l.ID)
			row.AddCell().SetValue(l.Name)
			row.AddCell().SetValue(l.Email)
			row.AddCell().SetValue(l.Phone)
			row.AddCell().SetValue(l.Message)
			row.AddCell().SetValue(l.Source)
			if l.Product != nil {
				row.AddCell().SetValue(l.Product.Name)
				row.AddCell().SetValue(l.Product.BasePrice)
			} else {
				row.AddCell().SetValue("")
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(l.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=leads.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
