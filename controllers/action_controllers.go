package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-burjo-pos/kds"
	"go-burjo-pos/models"
	"go-burjo-pos/services"
	"go-burjo-pos/utils"
)

type ActionController struct {
	DB      *gorm.DB
	Service *services.RestaurantService
}

func NewActionController(db *gorm.DB, svc *services.RestaurantService) *ActionController {
	return &ActionController{DB: db, Service: svc}
}

// Undo -> balikkan aksi paling baru dari riwayat
func (ac *ActionController) Undo(c *gin.Context) {
	result, err := ac.Service.UndoLastAction()
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	if result.Reversed {
		// undo bisa menyentuh stok, meja, antrian, dan ledger sekaligus
		var menus []models.Menu
		if err := ac.DB.Order("id asc").Find(&menus).Error; err == nil {
			kds.BroadcastStockUpdate(menus)
		}
		var tables []models.Table
		if err := ac.DB.Order("table_number asc").Find(&tables).Error; err == nil {
			kds.BroadcastTableUpdate(tables)
		}
		if queued, qerr := ac.Service.QueuedOrders(); qerr == nil {
			kds.BroadcastQueueUpdate(queued)
		}
		utils.InfoLogger.Printf("Undo applied: %s", result.Action)
		utils.RespondJSON(c, http.StatusOK, "Undo applied", result)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Undo not applied", result)
}

// History -> riwayat aksi, terbaru lebih dulu
func (ac *ActionController) History(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Action history", ac.Service.ActionHistory())
}
