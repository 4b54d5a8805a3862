package routes

import (
	_ "service_inventory/docs"
	"service_inventory/internal/adapter/http/handlers"
	"service_inventory/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathOrders    = "/orders"
	PathCustomers = "/customers"
	PathTemplates = "/process-templates"
	PathPayments  = "/payments"
)

// Handlers groups every HTTP handler served under /v1.
type Handlers struct {
	Order    *handlers.OrderHandler
	Workflow *handlers.WorkflowHandler
	BOM      *handlers.BOMHandler
	Template *handlers.TemplateHandler
	Payment  *handlers.BillingPaymentHandler
}

// NewRouter builds the gin engine. Everything below /v1 except ping requires
// a bearer token signed with jwtSecret.
func NewRouter(h Handlers, jwtSecret string, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", middleware.JWTAuth(jwtSecret))
	addTemplateRoutes(authed, h.Template)
	addOrderRoutes(authed, h.Order)
	addWorkflowRoutes(authed, h.Workflow)
	addBillingRoutes(authed, h.BOM, h.Payment)
	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
