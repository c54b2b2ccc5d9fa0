package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-burjo-pos/models"
	"go-burjo-pos/services"
	"go-burjo-pos/utils"
)

type ReportController struct {
	DB      *gorm.DB
	Service *services.RestaurantService
}

func NewReportController(db *gorm.DB, svc *services.RestaurantService) *ReportController {
	return &ReportController{DB: db, Service: svc}
}

// GetSalesReport -> total, jumlah, dan rata-rata dari pesanan selesai
func (rc *ReportController) GetSalesReport(c *gin.Context) {
	report, err := rc.Service.GetSalesReport()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Sales report", report)
}

// GetProfile -> identitas restoran plus statistik beranda
func (rc *ReportController) GetProfile(c *gin.Context) {
	var tableCount, menuCount int64
	rc.DB.Model(&models.Table{}).Count(&tableCount)
	rc.DB.Model(&models.Menu{}).Count(&menuCount)

	utils.RespondJSON(c, http.StatusOK, "Restaurant profile", gin.H{
		"restaurant":  rc.Service.Profile(),
		"table_count": tableCount,
		"menu_count":  menuCount,
	})
}
