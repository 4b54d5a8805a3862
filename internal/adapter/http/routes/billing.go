package routes

import (
	"service_inventory/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addBillingRoutes(rg *gin.RouterGroup, bomHandler *handlers.BOMHandler, paymentHandler *handlers.BillingPaymentHandler) {
	bom := rg.Group(PathOrders + "/:order_id/bom")
	{
		bom.POST("", adminOnly, bomHandler.GenerateBOM)
		bom.GET("", bomHandler.GetBOM)
		bom.PUT("", adminOnly, bomHandler.EditBOM)
		bom.DELETE("", adminOnly, bomHandler.DeleteBOM)
		bom.PATCH("/status", customerOnly, bomHandler.UpdateBOMStatus)
		bom.GET("/export", adminOnly, bomHandler.ExportBOM)
	}

	orderPayments := rg.Group(PathOrders + "/:order_id/payments")
	{
		orderPayments.GET("", paymentHandler.ListPayments)
		orderPayments.GET("/:payment_id", paymentHandler.GetPayment)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:order_id", customerOnly, paymentHandler.CreatePayment)
		payments.GET("/:order_id", paymentHandler.GetLatestPayment)
	}
}
