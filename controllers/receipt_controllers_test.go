package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-burjo-pos/controllers"
	"go-burjo-pos/services"
)

func setupReceiptRouter(svc *services.RestaurantService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	receiptCtrl := controllers.NewReceiptController(svc)
	r.GET("/orders/:order_id/receipt", receiptCtrl.GetReceipt)
	return r
}

func TestGetReceiptEndpoint(t *testing.T) {
	_, svc := setupEnv(t)
	r := setupReceiptRouter(svc)

	order, err := svc.CreateOrder(5)
	require.NoError(t, err)
	_, err = svc.AddItem(order.ID, 102, 2, "tanpa es")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/orders/1/receipt", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Burjo Tubagus")
	assert.Contains(t, body, "Pesanan: #1    Meja: 5")
	assert.Contains(t, body, "Jus Jeruk x2  Rp 24.000")
	assert.Contains(t, body, "(Catatan: tanpa es)")
	assert.Contains(t, body, "TOTAL: Rp 24.000")
}

func TestGetReceiptEndpointUnknownOrder(t *testing.T) {
	_, svc := setupEnv(t)
	r := setupReceiptRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/orders/7/receipt", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
