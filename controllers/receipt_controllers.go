package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-burjo-pos/services"
	"go-burjo-pos/utils"
)

type ReceiptController struct {
	Service *services.RestaurantService
}

func NewReceiptController(svc *services.RestaurantService) *ReceiptController {
	return &ReceiptController{Service: svc}
}

// GetReceipt -> teks nota untuk satu pesanan. Menyimpan ke file adalah
// urusan pemanggil; endpoint ini hanya mengembalikan teksnya.
func (rc *ReceiptController) GetReceipt(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	text, err := rc.Service.ReceiptText(uint(orderID))
	if err != nil {
		utils.RespondError(c, statusForServiceError(err), err)
		return
	}

	c.String(http.StatusOK, text)
}
