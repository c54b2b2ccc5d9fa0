package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-burjo-pos/models"
	"go-burjo-pos/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenus -> daftar menu, bisa difilter kategori (?category=food|drink)
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var menus []models.Menu
	query := mc.DB.Order("id asc")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type menuView struct {
		models.Menu
		Display string `json:"display"`
	}
	views := make([]menuView, 0, len(menus))
	for i := range menus {
		views = append(views, menuView{
			Menu:    menus[i],
			Display: menus[i].DisplayInfo(),
		})
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", views)
}
