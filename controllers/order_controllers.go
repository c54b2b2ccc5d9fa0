package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-burjo-pos/kds"
	"go-burjo-pos/models"
	"go-burjo-pos/services"
	"go-burjo-pos/utils"
)

type OrderController struct {
	DB      *gorm.DB
	Service *services.RestaurantService
}

func NewOrderController(db *gorm.DB, svc *services.RestaurantService) *OrderController {
	return &OrderController{DB: db, Service: svc}
}

// CreateOrder -> buat pesanan aktif baru untuk satu meja
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		TableNumber int `json:"table_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.CreateOrder(req.TableNumber)
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	oc.broadcastTables()
	kds.BroadcastOrderUpdate(*order)

	utils.InfoLogger.Printf("Order #%d created for table %d", order.ID, order.TableNumber)
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// AddItem -> tambah satu baris item ke pesanan
func (oc *OrderController) AddItem(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		MenuID   uint   `json:"menu_id" binding:"required"`
		Quantity int    `json:"quantity" binding:"required"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.AddItem(uint(orderID), req.MenuID, req.Quantity, req.Notes)
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	oc.broadcastStock()
	kds.BroadcastOrderUpdate(*order)

	utils.RespondJSON(c, http.StatusOK, "Item added to order", order)
}

// GetAllOrders -> seluruh ledger pesanan beserta itemnya
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := oc.DB.Preload("OrderItems")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("id asc").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail 1 pesanan
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := oc.DB.Preload("OrderItems").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrOrderNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

func (oc *OrderController) broadcastTables() {
	var tables []models.Table
	if err := oc.DB.Order("table_number asc").Find(&tables).Error; err == nil {
		kds.BroadcastTableUpdate(tables)
	}
}

func (oc *OrderController) broadcastStock() {
	var menus []models.Menu
	if err := oc.DB.Order("id asc").Find(&menus).Error; err == nil {
		kds.BroadcastStockUpdate(menus)
	}
}
