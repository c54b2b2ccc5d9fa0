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

func setupKitchenRouter(svc *services.RestaurantService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	kitchenCtrl := controllers.NewKitchenController(svc)
	r.GET("/kitchen/queue", kitchenCtrl.GetQueue)
	r.POST("/kitchen/process", kitchenCtrl.ProcessNext)
	return r
}

func TestKitchenQueueAndProcess(t *testing.T) {
	_, svc := setupEnv(t)
	r := setupKitchenRouter(svc)

	for _, table := range []int{1, 2} {
		_, err := svc.CreateOrder(table)
		require.NoError(t, err)
	}

	w := doJSON(t, r, http.MethodGet, "/kitchen/queue", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w)["data"].([]interface{})
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["table_number"])

	w = doJSON(t, r, http.MethodPost, "/kitchen/process", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	processed := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), processed["table_number"])
	assert.Equal(t, "completed", processed["status"])
	assert.NotNil(t, processed["completed_at"])
}

func TestKitchenProcessEmptyQueue(t *testing.T) {
	_, svc := setupEnv(t)
	r := setupKitchenRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/kitchen/process", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, false, response["status"])
}
