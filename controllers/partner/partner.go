package partnerControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tanjim-alam/homeline-admin-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errPartnerHasParcels aborts a delete while the partner still has
// undelivered assignments.
var errPartnerHasParcels = errors.New("partner has undelivered orders assigned")

// parseAreas decodes the JSON-stringified service_areas form field.
func parseAreas(raw string) ([]models.ServiceArea, error) {
	if raw == "" {
		return nil, nil
	}
	var areas []models.ServiceArea
	if err := json.Unmarshal([]byte(raw), &areas); err != nil {
		return nil, errors.New("invalid service_areas JSON")
	}
	return areas, nil
}

// parseServices decodes the JSON-stringified services form field.
func parseServices(raw string) ([]models.PartnerService, error) {
	if raw == "" {
		return nil, nil
	}
	var services []models.PartnerService
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return nil, errors.New("invalid services JSON")
	}
	return services, nil
}

// CreatePartner registers a delivery partner. The form carries plain fields
// plus JSON-stringified service_areas and services, the same convention the
// catalog forms use. New partners start in pending_approval.
func CreatePartner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		email := c.PostForm("email")
		if name == "" || email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
			return
		}

		areas, err := parseAreas(c.PostForm("service_areas"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		services, err := parseServices(c.PostForm("services"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		capacity := 0
		if v := c.PostForm("capacity"); v != "" {
			if capacity, err = strconv.Atoi(v); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid capacity"})
				return
			}
		}
		var commission float64
		if v := c.PostForm("commission_rate"); v != "" {
			if commission, err = strconv.ParseFloat(v, 64); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid commission_rate"})
				return
			}
		}

		partner := models.DeliveryPartner{
			Name:        name,
			CompanyName: c.PostForm("company_name"),
			Email:       email,
			Phone:       c.PostForm("phone"),
			Address: models.Address{
				Street:  c.PostForm("street"),
				City:    c.PostForm("city"),
				State:   c.PostForm("state"),
				Pincode: c.PostForm("pincode"),
				Country: c.PostForm("country"),
			},
			ServiceAreas:   areas,
			Services:       services,
			VehicleType:    c.PostForm("vehicle_type"),
			Capacity:       capacity,
			CommissionRate: commission,
			Status:         models.PartnerStatusPendingApproval,
			IsAvailable:    true,
		}

		if err := db.Create(&partner).Error; err != nil {
			if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
				c.JSON(http.StatusConflict, gin.H{"error": "A partner with this email already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create delivery partner"})
			return
		}
		c.JSON(http.StatusCreated, partner)
	}
}

// GetPartners lists all partners with their coverage and services.
func GetPartners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("ServiceAreas").Preload("Services")
		if status := c.Query("status"); status != "" {
			if !models.PartnerStatus(status).Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid partner status"})
				return
			}
			query = query.Where("status = ?", status)
		}

		var partners []models.DeliveryPartner
		if err := query.Find(&partners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery partners"})
			return
		}
		c.JSON(http.StatusOK, partners)
	}
}

// GetPartnerByID returns a single partner.
func GetPartnerByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var partner models.DeliveryPartner
		if err := db.Preload("ServiceAreas").Preload("Services").
			First(&partner, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery partner not found"})
			return
		}
		c.JSON(http.StatusOK, partner)
	}
}

// UpdatePartner updates plain fields in place; service_areas and services,
// when present, replace the existing child rows wholesale.
func UpdatePartner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var partner models.DeliveryPartner
		if err := db.Preload("ServiceAreas").Preload("Services").
			First(&partner, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery partner not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			partner.Name = v
		}
		if v := c.PostForm("company_name"); v != "" {
			partner.CompanyName = v
		}
		if v := c.PostForm("phone"); v != "" {
			partner.Phone = v
		}
		if v := c.PostForm("vehicle_type"); v != "" {
			partner.VehicleType = v
		}
		if v := c.PostForm("capacity"); v != "" {
			if capacity, err := strconv.Atoi(v); err == nil {
				partner.Capacity = capacity
			}
		}
		if v := c.PostForm("commission_rate"); v != "" {
			if commission, err := strconv.ParseFloat(v, 64); err == nil {
				partner.CommissionRate = commission
			}
		}
		if v := c.PostForm("is_available"); v != "" {
			partner.IsAvailable = v == "true"
		}
		if v := c.PostForm("is_verified"); v != "" {
			partner.IsVerified = v == "true"
		}

		areas, err := parseAreas(c.PostForm("service_areas"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		services, err := parseServices(c.PostForm("services"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if areas != nil {
				if err := tx.Where("partner_id = ?", partner.ID).Delete(&models.ServiceArea{}).Error; err != nil {
					return err
				}
				for i := range areas {
					areas[i].ID = 0
					areas[i].PartnerID = partner.ID
				}
				if len(areas) > 0 {
					if err := tx.Create(&areas).Error; err != nil {
						return err
					}
				}
				partner.ServiceAreas = areas
			}
			if services != nil {
				if err := tx.Where("partner_id = ?", partner.ID).Delete(&models.PartnerService{}).Error; err != nil {
					return err
				}
				for i := range services {
					services[i].ID = 0
					services[i].PartnerID = partner.ID
				}
				if len(services) > 0 {
					if err := tx.Create(&services).Error; err != nil {
						return err
					}
				}
				partner.Services = services
			}
			return tx.Omit("ServiceAreas", "Services").Save(&partner).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery partner"})
			return
		}
		c.JSON(http.StatusOK, partner)
	}
}

// UpdatePartnerStatus moves a partner between pending_approval / active /
// inactive / suspended.
func UpdatePartnerStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status := models.PartnerStatus(strings.ToLower(req.Status))
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid partner status"})
			return
		}

		result := db.Model(&models.DeliveryPartner{}).Where("id = ?", c.Param("id")).
			Update("status", status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery partner not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Partner status updated successfully"})
	}
}

// DeletePartner removes a partner unless it still has parcels in flight.
func DeletePartner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		// The in-flight check runs inside the same transaction as the delete,
		// so an assignment created concurrently cannot slip past it.
		err := db.Transaction(func(tx *gorm.DB) error {
			var partner models.DeliveryPartner
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&partner, id).Error; err != nil {
				return err
			}

			var inFlight int64
			if err := tx.Model(&models.DeliveryAssignment{}).
				Where("partner_id = ? AND delivery_status NOT IN ?", partner.ID,
					[]models.DeliveryStatus{models.DeliveryStatusDelivered, models.DeliveryStatusFailed}).
				Count(&inFlight).Error; err != nil {
				return err
			}
			if inFlight > 0 {
				return errPartnerHasParcels
			}

			if err := tx.Where("partner_id = ?", partner.ID).Delete(&models.ServiceArea{}).Error; err != nil {
				return err
			}
			if err := tx.Where("partner_id = ?", partner.ID).Delete(&models.PartnerService{}).Error; err != nil {
				return err
			}
			return tx.Delete(&partner).Error
		})
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "Delivery partner deleted successfully"})
		case errors.Is(err, errPartnerHasParcels):
			c.JSON(http.StatusConflict, gin.H{"error": "Partner has undelivered orders assigned"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Delivery partner not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete delivery partner"})
		}
	}
}
