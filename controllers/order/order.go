package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tanjim-alam/homeline-admin-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	CustomerName  string           `json:"customer_name" binding:"required"`
	CustomerEmail string           `json:"customer_email"`
	CustomerPhone string           `json:"customer_phone"`
	Shipping      models.Address   `json:"shipping_address" binding:"required"`
	Items         []PlaceOrderItem `json:"items" binding:"required,min=1"`
	ShippingCost  float64          `json:"shipping_cost"`
	Tax           float64          `json:"tax"`
	PaymentMethod string           `json:"payment_method" binding:"required"`
}

type PlaceOrderItem struct {
	Name      string            `json:"name" binding:"required"`
	Quantity  int               `json:"quantity" binding:"required,min=1"`
	UnitPrice float64           `json:"unit_price" binding:"required"`
	Options   map[string]string `json:"options"`
	Image     string            `json:"image"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
	Notes         string `json:"notes"`
}

// -------- Helpers --------

// mapOrderStatus maps a request string to an OrderStatus.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	s := models.OrderStatus(strings.ToLower(status))
	if !s.Valid() {
		return "", errors.New("invalid order status")
	}
	return s, nil
}

// mapPaymentStatus maps a request string to a PaymentStatus.
func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	s := models.PaymentStatus(strings.ToLower(status))
	if !s.Valid() {
		return "", errors.New("invalid payment status")
	}
	return s, nil
}

// generateOrderRef returns a unique order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// OrderStats are the dashboard counters shown above the order list.
type OrderStats struct {
	TotalOrders    int     `json:"total_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
	PendingCount   int     `json:"pending_count"`
	DeliveredCount int     `json:"delivered_count"`
}

// computeOrderStats aggregates over the full order list. Revenue always sums
// the unfiltered list, matching what the dashboard displays regardless of the
// active status filter.
func computeOrderStats(orders []models.Order) OrderStats {
	stats := OrderStats{TotalOrders: len(orders)}
	for i := range orders {
		stats.TotalRevenue += orders[i].TotalAmount
		switch orders[i].Status {
		case models.OrderStatusPending:
			stats.PendingCount++
		case models.OrderStatusDelivered:
			stats.DeliveredCount++
		}
	}
	return stats
}

// orderKey resolves a path parameter that addresses an order either by its
// numeric id or by its order_ref. Postgres rejects non-numeric text bound to
// the bigint id column, so the two forms must hit different predicates.
func orderKey(key string) (string, interface{}) {
	if id, err := strconv.ParseUint(key, 10, 64); err == nil {
		return "id = ?", id
	}
	return "order_ref = ?", key
}

// lockOrder loads an order row under FOR UPDATE inside tx, so concurrent
// operator writes serialize and re-check the transition table.
func lockOrder(tx *gorm.DB, orderID string) (*models.Order, error) {
	cond, arg := orderKey(orderID)
	var order models.Order
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(cond, arg).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	var delivery models.DeliveryAssignment
	err = tx.Where("order_id = ?", order.ID).First(&delivery).Error
	if err == nil {
		order.Delivery = &delivery
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// PlaceOrderHandler is the storefront intake endpoint; the admin UI never
// creates orders.
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		method := models.PaymentMethod(strings.ToLower(req.PaymentMethod))
		if !method.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method"})
			return
		}

		var subtotal float64
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			subtotal += item.UnitPrice * float64(item.Quantity)
			items = append(items, models.OrderItem{
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Options:   item.Options,
				Image:     item.Image,
			})
		}

		order := models.Order{
			OrderRef:      generateOrderRef(),
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Shipping:      req.Shipping,
			Items:         items,
			Subtotal:      subtotal,
			ShippingCost:  req.ShippingCost,
			Tax:           req.Tax,
			TotalAmount:   subtotal + req.ShippingCost + req.Tax,
			Status:        models.OrderStatusPending,
			PaymentMethod: method,
			PaymentStatus: models.PaymentStatusPending,
			CreatedAt:     time.Now(),
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		broadcastOrderUpdate(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GetAllOrdersHandler lists orders, newest first. An optional ?status= query
// filters server-side.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.
			Preload("Items").
			Preload("Delivery").
			Order("created_at DESC")

		if status := c.Query("status"); status != "" {
			mapped, err := mapOrderStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", mapped)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderStatsHandler returns the dashboard aggregates, always over the
// unfiltered list.
func GetOrderStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, computeOrderStats(orders))
	}
}

// GetOrderByIDHandler fetches a single order by numeric id or order_ref,
// together with the legal next statuses for the operator dropdown.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		cond, arg := orderKey(id)
		var order models.Order
		if err := db.
			Preload("Items").
			Preload("Delivery").
			Where(cond, arg).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order":         order,
			"next_statuses": models.NextStatuses(order.Status),
		})
	}
}

// UpdateOrderStatusHandler applies one transition from the status graph.
// Illegal edges are rejected with 400 and the stored status is untouched.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updated *models.Order
		err = db.Transaction(func(tx *gorm.DB) error {
			order, err := lockOrder(tx, orderID)
			if err != nil {
				return err
			}
			if err := order.TransitionTo(newStatus); err != nil {
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
			var invalid *models.InvalidTransitionError
			switch {
			case errors.As(err, &invalid):
				c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			}
			return
		}

		broadcastOrderUpdate(*updated)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "order": updated})
	}
}

// UpdatePaymentStatusHandler sets the payment status and optional notes.
// Payment state is independent of the fulfilment lifecycle.
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updated *models.Order
		err = db.Transaction(func(tx *gorm.DB) error {
			order, err := lockOrder(tx, orderID)
			if err != nil {
				return err
			}
			order.PaymentStatus = newStatus
			order.PaymentNotes = req.Notes
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
				Updates(map[string]interface{}{
					"payment_status": newStatus,
					"payment_notes":  req.Notes,
				}).Error; err != nil {
				return err
			}
			updated = order
			return nil
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
			return
		}

		broadcastOrderUpdate(*updated)
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully", "order": updated})
	}
}

// DeleteOrderHandler removes an order together with its items and delivery
// assignment.
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		err := db.Transaction(func(tx *gorm.DB) error {
			cond, arg := orderKey(orderID)
			var order models.Order
			if err := tx.Where(cond, arg).First(&order).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.DeliveryAssignment{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
