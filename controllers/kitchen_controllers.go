package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-burjo-pos/kds"
	"go-burjo-pos/services"
	"go-burjo-pos/utils"
)

type KitchenController struct {
	Service *services.RestaurantService
}

func NewKitchenController(svc *services.RestaurantService) *KitchenController {
	return &KitchenController{Service: svc}
}

// GetQueue -> isi antrian dapur, urutan kedatangan
func (kc *KitchenController) GetQueue(c *gin.Context) {
	orders, err := kc.Service.QueuedOrders()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Kitchen queue", orders)
}

// ProcessNext -> ambil pesanan paling depan, tandai selesai, kosongkan meja
func (kc *KitchenController) ProcessNext(c *gin.Context) {
	order, err := kc.Service.ProcessNextOrder()
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	if queued, qerr := kc.Service.QueuedOrders(); qerr == nil {
		kds.BroadcastQueueUpdate(queued)
	}
	kds.BroadcastOrderUpdate(*order)
	kds.BroadcastStaffNotification(fmt.Sprintf("Pesanan #%d selesai diproses", order.ID))

	utils.InfoLogger.Printf("Order #%d processed, table %d freed", order.ID, order.TableNumber)
	utils.RespondJSON(c, http.StatusOK, "Order processed", order)
}
