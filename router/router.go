package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-burjo-pos/controllers"
	"go-burjo-pos/middlewares"
	"go-burjo-pos/services"
)

func SetupRouter(db *gorm.DB, svc *services.RestaurantService) *gin.Engine {
	r := gin.Default()

	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db)
	tableCtrl := controllers.NewTableController(db)
	orderCtrl := controllers.NewOrderController(db, svc)
	kitchenCtrl := controllers.NewKitchenController(svc)
	actionCtrl := controllers.NewActionController(db, svc)
	receiptCtrl := controllers.NewReceiptController(svc)
	reportCtrl := controllers.NewReportController(db, svc)

	// publik
	r.POST("/login", userCtrl.Login)
	r.GET("/profile", reportCtrl.GetProfile)
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/:table_number", tableCtrl.GetTableDetail)

	// perlu login staff
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders", orderCtrl.GetAllOrders)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		auth.POST("/orders/:order_id/items", orderCtrl.AddItem)
		auth.GET("/orders/:order_id/receipt", receiptCtrl.GetReceipt)

		auth.GET("/kitchen/queue", kitchenCtrl.GetQueue)
		auth.POST("/kitchen/process", kitchenCtrl.ProcessNext)

		auth.POST("/actions/undo", actionCtrl.Undo)
		auth.GET("/actions", actionCtrl.History)

		auth.GET("/reports/sales", reportCtrl.GetSalesReport)

		auth.GET("/ws/kds", controllers.KDSHandler)
	}

	return r
}
