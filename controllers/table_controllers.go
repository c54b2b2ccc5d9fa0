package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-burjo-pos/models"
	"go-burjo-pos/services"
	"go-burjo-pos/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// GetAllTables -> papan status seluruh meja
func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Order("table_number asc").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableDetail -> info satu meja plus ringkasan pesanan yang menempatinya
func (tc *TableController) GetTableDetail(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("table_number"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.Where("table_number = ?", number).First(&table).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrInvalidTable)
		return
	}

	detail := gin.H{"table": table}
	if table.OrderID != nil {
		var order models.Order
		if err := tc.DB.Preload("OrderItems").First(&order, *table.OrderID).Error; err == nil {
			detail["order"] = order
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", detail)
}
