package adminController

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// postJSON runs a handler against a JSON body without any DB behind it; the
// request must be rejected before storage is touched.
func postJSON(t *testing.T, handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.POST(path, handler)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestApproveAdminRejectsMissingEmail(t *testing.T) {
	w := postJSON(t, ApproveAdmin(nil), "/admin-management/approve", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email")
}

func TestApproveAdminRejectsMalformedEmail(t *testing.T) {
	w := postJSON(t, ApproveAdmin(nil), "/admin-management/approve", `{"email": "not-an-address"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRejectAdminRejectsMissingEmail(t *testing.T) {
	w := postJSON(t, RejectAdmin(nil), "/admin-management/reject", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
