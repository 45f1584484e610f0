package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tanjim-alam/homeline-admin-api/models"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type AssignPartnerRequest struct {
	PartnerID         uint    `json:"partner_id" binding:"required"`
	DeliveryFee       float64 `json:"delivery_fee"`
	EstimatedDelivery string  `json:"estimated_delivery"` // optional, YYYY-MM-DD
	Notes             string  `json:"notes"`
}

type UpdateDeliveryStatusRequest struct {
	DeliveryStatus string `json:"delivery_status" binding:"required"`
	TrackingNumber string `json:"tracking_number"`
}

// GetAvailablePartnersHandler returns the delivery partners whose active
// service areas cover the given destination. The admin UI renders the result
// as the assignment dropdown.
func GetAvailablePartnersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		city := c.Query("city")
		state := c.Query("state")
		pincode := c.Query("pincode")
		if city == "" && pincode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "city or pincode is required"})
			return
		}

		var partners []models.DeliveryPartner
		if err := db.
			Preload("ServiceAreas").
			Preload("Services").
			Where("status = ? AND is_available = ?", models.PartnerStatusActive, true).
			Find(&partners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery partners"})
			return
		}

		matched := make([]models.DeliveryPartner, 0, len(partners))
		for i := range partners {
			if partners[i].Serviceable(city, state, pincode) {
				matched = append(matched, partners[i])
			}
		}
		c.JSON(http.StatusOK, matched)
	}
}

// AssignPartnerHandler binds a delivery partner to an order and seeds the
// fulfilment sub-status. Re-assignment is allowed only while the parcel has
// not been picked up; terminal orders cannot be assigned at all. The order
// row is locked for the whole check-and-write, so two operators racing on the
// same order serialize instead of both winning.
func AssignPartnerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req AssignPartnerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.EstimatedDelivery != "" {
			if _, err := time.Parse("2006-01-02", req.EstimatedDelivery); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "estimated_delivery must be YYYY-MM-DD"})
				return
			}
		}

		var assignment *models.DeliveryAssignment
		err := db.Transaction(func(tx *gorm.DB) error {
			order, err := lockOrder(tx, orderID)
			if err != nil {
				return err
			}
			if order.Status.IsTerminal() {
				return errOrderTerminal
			}

			var partner models.DeliveryPartner
			if err := tx.Preload("ServiceAreas").First(&partner, req.PartnerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errPartnerNotFound
				}
				return err
			}
			if !partner.Serviceable(order.Shipping.City, order.Shipping.State, order.Shipping.Pincode) {
				return errPartnerNotServiceable
			}

			if order.Delivery != nil {
				if !order.Delivery.Reassignable() {
					return errAlreadyPickedUp
				}
				order.Delivery.PartnerID = partner.ID
				order.Delivery.PartnerName = partner.Name
				order.Delivery.DeliveryStatus = models.DeliveryStatusAssigned
				order.Delivery.DeliveryFee = req.DeliveryFee
				order.Delivery.EstimatedDelivery = req.EstimatedDelivery
				order.Delivery.Notes = req.Notes
				if err := tx.Save(order.Delivery).Error; err != nil {
					return err
				}
				assignment = order.Delivery
				return nil
			}

			a := models.DeliveryAssignment{
				OrderID:           order.ID,
				PartnerID:         partner.ID,
				PartnerName:       partner.Name,
				DeliveryStatus:    models.DeliveryStatusAssigned,
				DeliveryFee:       req.DeliveryFee,
				EstimatedDelivery: req.EstimatedDelivery,
				Notes:             req.Notes,
			}
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
			assignment = &a
			return nil
		})
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			case errors.Is(err, errPartnerNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "delivery partner not found"})
			case errors.Is(err, errPartnerNotServiceable):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "partner does not service the order destination"})
			case errors.Is(err, errAlreadyPickedUp):
				c.JSON(http.StatusConflict, gin.H{"error": "parcel already picked up, cannot reassign"})
			case errors.Is(err, errOrderTerminal):
				c.JSON(http.StatusConflict, gin.H{"error": "order is in a terminal status"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assign delivery partner"})
			}
			return
		}

		refreshAndBroadcast(db, assignment.OrderID)
		c.JSON(http.StatusCreated, gin.H{"message": "Delivery partner assigned", "assignment": assignment})
	}
}

// UpdateDeliveryStatusHandler advances the fulfilment sub-status through its
// own graph; the sync rule inside ApplyDeliveryStatus moves the primary order
// status along when the parcel is picked up or delivered.
func UpdateDeliveryStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateDeliveryStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		next := models.DeliveryStatus(strings.ToLower(req.DeliveryStatus))
		if !next.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid delivery status"})
			return
		}

		var updated *models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			order, err := lockOrder(tx, orderID)
			if err != nil {
				return err
			}
			if err := order.ApplyDeliveryStatus(next); err != nil {
				return err
			}
			if req.TrackingNumber != "" {
				order.Delivery.TrackingNumber = req.TrackingNumber
			}
			if err := tx.Save(order.Delivery).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
				Update("status", order.Status).Error; err != nil {
				return err
			}
			updated = order
			return nil
		})
		if err != nil {
			var invalidDelivery *models.InvalidDeliveryTransitionError
			var invalid *models.InvalidTransitionError
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			case errors.As(err, &invalidDelivery):
				c.JSON(http.StatusBadRequest, gin.H{"error": invalidDelivery.Error()})
			case errors.As(err, &invalid):
				c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		broadcastOrderUpdate(*updated)
		c.JSON(http.StatusOK, gin.H{"message": "Delivery status updated successfully", "order": updated})
	}
}

// Sentinel errors for assignment failure classification.
var (
	errPartnerNotFound       = errors.New("delivery partner not found")
	errPartnerNotServiceable = errors.New("partner not serviceable for destination")
	errAlreadyPickedUp       = errors.New("parcel already picked up")
	errOrderTerminal         = errors.New("order is in a terminal status")
)

// refreshAndBroadcast re-reads the order with its children and pushes it to
// websocket subscribers.
func refreshAndBroadcast(db *gorm.DB, orderID uint) {
	var order models.Order
	if err := db.Preload("Items").Preload("Delivery").First(&order, orderID).Error; err != nil {
		return
	}
	broadcastOrderUpdate(order)
}
