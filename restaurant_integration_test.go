package main

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
	"go-burjo-pos/router"
	"go-burjo-pos/services"
	"go-burjo-pos/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	utils.InitJWT()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndFlow menguji alur utama satu sesi kasir:
// 1. Login -> token
// 2. Buat pesanan meja 2, tambah dua item
// 3. Undo item terakhir
// 4. Proses antrian dapur -> pesanan selesai, meja kosong
// 5. Ambil nota dan laporan penjualan
func TestEndToEndFlow(t *testing.T) {
	cfg := &config.Config{
		Restaurant: config.RestaurantProfile{
			Name:      "Burjo Tubagus",
			Rating:    4.9,
			OpenTime:  "10:00",
			CloseTime: "22:00",
		},
		AdminName:  "Test Admin",
		AdminEmail: "admin@burjo.local",
		AdminPass:  "rahasia123",
	}

	db := setupIntegrationDB(t, cfg)
	svc := services.NewRestaurantService(db, cfg.Restaurant)
	r := router.SetupRouter(db, svc)

	token := loginTest(t, r)

	// buat pesanan untuk meja 2
	w := request(t, r, http.MethodPost, "/orders", token, map[string]int{"table_number": 2})
	require.Equal(t, http.StatusCreated, w.Code)
	orderData := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), orderData["id"])

	// tambah dua item
	w = request(t, r, http.MethodPost, "/orders/1/items", token, map[string]interface{}{
		"menu_id": 1, "quantity": 2, "notes": "pedas",
	})
	require.Equal(t, http.StatusOK, w.Code)
	w = request(t, r, http.MethodPost, "/orders/1/items", token, map[string]interface{}{
		"menu_id": 101, "quantity": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// undo menghapus item terakhir (Es Teh Manis x1)
	w = request(t, r, http.MethodPost, "/actions/undo", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	undoData := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, true, undoData["reversed"])
	assert.Equal(t, float64(5000), undoData["restored_subtotal"])

	// antrian berisi satu pesanan; proses -> selesai
	w = request(t, r, http.MethodGet, "/kitchen/queue", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	queue := decode(t, w)["data"].([]interface{})
	require.Len(t, queue, 1)

	w = request(t, r, http.MethodPost, "/kitchen/process", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	processed := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "completed", processed["status"])

	// meja 2 kembali kosong
	w = request(t, r, http.MethodGet, "/tables", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tables := decode(t, w)["data"].([]interface{})
	table2 := tables[1].(map[string]interface{})
	assert.Equal(t, float64(2), table2["table_number"])
	assert.Equal(t, "empty", table2["status"])

	// nota memuat item tersisa dan total
	w = request(t, r, http.MethodGet, "/orders/1/receipt", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	receipt := w.Body.String()
	assert.Contains(t, receipt, "Burjo Tubagus")
	assert.Contains(t, receipt, "Ayam Balap x2  Rp 30.000")
	assert.Contains(t, receipt, "TOTAL: Rp 30.000")
	assert.Contains(t, receipt, "Selesai:")

	// laporan penjualan menghitung pesanan selesai
	w = request(t, r, http.MethodGet, "/reports/sales", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	report := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(30000), report["total_revenue"])
	assert.Equal(t, float64(1), report["completed_count"])
	assert.Equal(t, float64(30000), report["average"])
}

func TestAuthRequiredForMutations(t *testing.T) {
	cfg := &config.Config{
		Restaurant: config.RestaurantProfile{Name: "Burjo Tubagus"},
		AdminEmail: "admin@burjo.local",
		AdminPass:  "rahasia123",
	}
	db := setupIntegrationDB(t, cfg)
	svc := services.NewRestaurantService(db, cfg.Restaurant)
	r := router.SetupRouter(db, svc)

	w := request(t, r, http.MethodPost, "/orders", "", map[string]int{"table_number": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// endpoint publik tetap bisa diakses
	w = request(t, r, http.MethodGet, "/menus", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = request(t, r, http.MethodGet, "/profile", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func setupIntegrationDB(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.AutoMigrate(db))
	require.NoError(t, config.SeedAdmin(db, cfg))
	require.NoError(t, config.SeedSampleData(db))
	return db
}

func loginTest(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := request(t, r, http.MethodPost, "/login", "", map[string]string{
		"email":    "admin@burjo.local",
		"password": "rahasia123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]interface{})
	token, ok := data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func request(t *testing.T, r *gin.Engine, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}
