package routes

import (
	"service_inventory/internal/adapter/http/handlers"
	"service_inventory/internal/adapter/http/middleware"
	"service_inventory/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	adminOnly      = middleware.RequireRole(entities.RoleAdmin)
	customerOnly   = middleware.RequireRole(entities.RoleCustomer)
	technicianOnly = middleware.RequireRole(entities.RoleTechnician)
	fieldStaff     = middleware.RequireRole(entities.RoleTechnician, entities.RoleAdmin)
)

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", customerOnly, h.CreateOrder)
		orders.GET("", adminOnly, h.ListOrders)
		orders.GET("/:order_id", h.GetOrder)
		orders.DELETE("/:order_id", adminOnly, h.ArchiveOrder)
		orders.PUT("/:order_id/rating", customerOnly, h.RateOrder)
		orders.POST("/:order_id/complete", fieldStaff, h.CompleteOrder)
		orders.POST("/:order_id/cancel", adminOnly, h.CancelOrder)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.GET("/:customer_id/orders", h.ListCustomerOrders)
		customers.GET("/:customer_id/archived-orders", h.ListArchivedOrders)
	}
}

func addWorkflowRoutes(rg *gin.RouterGroup, h *handlers.WorkflowHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.PUT("/:order_id/processes", fieldStaff, h.UpsertProcess)
		orders.PUT("/:order_id/assign-technicians", adminOnly, h.AssignTechnicians)
		orders.POST("/:order_id/schedule-visit", fieldStaff, h.ScheduleVisit)
		orders.POST("/:order_id/arrival-otp", fieldStaff, h.GenerateArrivalOTP)
		orders.GET("/:order_id/arrival-otp", customerOnly, h.GetArrivalOTP)
		orders.POST("/:order_id/arrival-otp/verify", technicianOnly, h.VerifyArrivalOTP)
		orders.POST("/:order_id/initial-observation", technicianOnly, h.RecordInitialObservation)
		orders.POST("/:order_id/technician-report", adminOnly, h.MarkTechnicianReportReceived)
	}
}

func addTemplateRoutes(rg *gin.RouterGroup, h *handlers.TemplateHandler) {
	templates := rg.Group(PathTemplates)
	{
		templates.GET("", h.ListTemplates)
		templates.GET("/:id", h.GetTemplate)
		templates.POST("", adminOnly, h.CreateTemplate)
		templates.PUT("/:id", adminOnly, h.UpdateTemplate)
		templates.DELETE("/:id", adminOnly, h.DeleteTemplate)
	}
}
