package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanjim-alam/homeline-admin-api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMapOrderStatus(t *testing.T) {
	s, err := mapOrderStatus("Confirmed")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, s)

	_, err = mapOrderStatus("ready_to_ship")
	assert.Error(t, err)
}

func TestMapPaymentStatus(t *testing.T) {
	s, err := mapPaymentStatus("PAID")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, s)

	_, err = mapPaymentStatus("chargeback")
	assert.Error(t, err)
}

func TestGenerateOrderRef(t *testing.T) {
	a := generateOrderRef()
	b := generateOrderRef()
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "-")
}

func TestOrderKey(t *testing.T) {
	cond, arg := orderKey("42")
	assert.Equal(t, "id = ?", cond)
	assert.Equal(t, uint64(42), arg)

	// Generated refs are never purely numeric, so they must be bound against
	// order_ref rather than the bigint id column.
	ref := generateOrderRef()
	cond, arg = orderKey(ref)
	assert.Equal(t, "order_ref = ?", cond)
	assert.Equal(t, ref, arg)
}

func TestComputeOrderStats(t *testing.T) {
	orders := []models.Order{
		{Status: models.OrderStatusPending, TotalAmount: 1200},
		{Status: models.OrderStatusPending, TotalAmount: 800},
		{Status: models.OrderStatusShipped, TotalAmount: 450},
		{Status: models.OrderStatusDelivered, TotalAmount: 2550},
		{Status: models.OrderStatusCancelled, TotalAmount: 300},
	}

	stats := computeOrderStats(orders)
	assert.Equal(t, 5, stats.TotalOrders)
	assert.Equal(t, 5300.0, stats.TotalRevenue, "revenue sums the unfiltered list")
	assert.Equal(t, 2, stats.PendingCount)
	assert.Equal(t, 1, stats.DeliveredCount)
}

func TestComputeOrderStatsEmpty(t *testing.T) {
	stats := computeOrderStats(nil)
	assert.Equal(t, OrderStats{}, stats)
}

// postJSON runs a handler against a JSON body without any DB behind it; the
// request must be rejected before storage is touched.
func postJSON(t *testing.T, handler gin.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.Handle(method, path, handler)

	req := httptest.NewRequest(method, strings.ReplaceAll(path, ":orderID", "1"), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAssignRejectsMissingPartnerID(t *testing.T) {
	w := postJSON(t, AssignPartnerHandler(nil), http.MethodPost, "/orders/:orderID/assign",
		`{"delivery_fee": 500, "notes": ""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PartnerID", "the validation failure names the missing field")
}

func TestAssignRejectsBadEstimatedDelivery(t *testing.T) {
	w := postJSON(t, AssignPartnerHandler(nil), http.MethodPost, "/orders/:orderID/assign",
		`{"partner_id": 7, "estimated_delivery": "01-06-2024"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "estimated_delivery")
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	w := postJSON(t, UpdateOrderStatusHandler(nil), http.MethodPut, "/orders/:orderID/status",
		`{"status": "teleported"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePaymentStatusRejectsUnknownStatus(t *testing.T) {
	w := postJSON(t, UpdatePaymentStatusHandler(nil), http.MethodPut, "/orders/:orderID/payment-status",
		`{"payment_status": "chargeback", "notes": ""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateDeliveryStatusRejectsUnknownStatus(t *testing.T) {
	w := postJSON(t, UpdateDeliveryStatusHandler(nil), http.MethodPut, "/orders/:orderID/delivery-status",
		`{"delivery_status": "lost"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailablePartnersRequiresDestination(t *testing.T) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.GET("/orders/available-partners", GetAvailablePartnersHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/orders/available-partners", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
