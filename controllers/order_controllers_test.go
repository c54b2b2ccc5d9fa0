package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"go-burjo-pos/config"
	"go-burjo-pos/controllers"
	"go-burjo-pos/services"
	"go-burjo-pos/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

var testProfile = config.RestaurantProfile{
	Name:      "Burjo Tubagus",
	Rating:    4.9,
	OpenTime:  "10:00",
	CloseTime: "22:00",
}

// setupEnv -> SQLite in-memory + seed + service, tanpa middleware auth
// (unit test per controller; alur dengan token diuji di integration test).
func setupEnv(t *testing.T) (*gorm.DB, *services.RestaurantService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.AutoMigrate(db))
	require.NoError(t, config.SeedSampleData(db))

	return db, services.NewRestaurantService(db, testProfile)
}

func setupOrderRouter(db *gorm.DB, svc *services.RestaurantService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	orderCtrl := controllers.NewOrderController(db, svc)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.POST("/orders/:order_id/items", orderCtrl.AddItem)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestCreateOrderEndpoint(t *testing.T) {
	db, svc := setupEnv(t)
	r := setupOrderRouter(db, svc)

	w := doJSON(t, r, http.MethodPost, "/orders", map[string]int{"table_number": 2})
	assert.Equal(t, http.StatusCreated, w.Code)

	response := decodeResponse(t, w)
	assert.Equal(t, "Order created", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, float64(2), data["table_number"])
	assert.Equal(t, "active", data["status"])
}

func TestCreateOrderEndpointTableOccupied(t *testing.T) {
	db, svc := setupEnv(t)
	r := setupOrderRouter(db, svc)

	w := doJSON(t, r, http.MethodPost, "/orders", map[string]int{"table_number": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/orders", map[string]int{"table_number": 2})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateOrderEndpointInvalidTable(t *testing.T) {
	db, svc := setupEnv(t)
	r := setupOrderRouter(db, svc)

	w := doJSON(t, r, http.MethodPost, "/orders", map[string]int{"table_number": 42})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddItemEndpoint(t *testing.T) {
	db, svc := setupEnv(t)
	r := setupOrderRouter(db, svc)

	w := doJSON(t, r, http.MethodPost, "/orders", map[string]int{"table_number": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/orders/1/items", map[string]interface{}{
		"menu_id":  1,
		"quantity": 2,
		"notes":    "tanpa sambal",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(30000), data["total_amount"])
	items := data["order_items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Ayam Balap", item["menu_name"])
	assert.Equal(t, "tanpa sambal", item["notes"])
}

func TestAddItemEndpointInsufficientStock(t *testing.T) {
	db, svc := setupEnv(t)
	r := setupOrderRouter(db, svc)

	w := doJSON(t, r, http.MethodPost, "/orders", map[string]int{"table_number": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	// Mie Dok Dok hanya punya stok 8
	w = doJSON(t, r, http.MethodPost, "/orders/1/items", map[string]interface{}{
		"menu_id":  3,
		"quantity": 9,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodGet, "/orders/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total_amount"])
}

func TestGetOrderNotFound(t *testing.T) {
	db, svc := setupEnv(t)
	r := setupOrderRouter(db, svc)

	w := doJSON(t, r, http.MethodGet, "/orders/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
