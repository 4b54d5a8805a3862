package app

import (
	"context"
	"fmt"

	"service_inventory/internal/adapter/export"
	"service_inventory/internal/adapter/http/handlers"
	"service_inventory/internal/adapter/http/routes"
	"service_inventory/internal/adapter/persistence/memory"
	"service_inventory/internal/adapter/persistence/repository"
	"service_inventory/internal/adapter/seed"
	"service_inventory/internal/config"
	"service_inventory/internal/infrastructure/cache"
	"service_inventory/internal/infrastructure/database"
	"service_inventory/internal/infrastructure/lock"
	"service_inventory/internal/infrastructure/payments"
	"service_inventory/internal/infrastructure/storage"
	"service_inventory/internal/infrastructure/technician"
	"service_inventory/internal/usecase"
	"service_inventory/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Container holds the wired application. Close releases every client it
// opened.
type Container struct {
	Config    *config.Config
	Log       *zap.Logger
	Templates *usecase.ProcessTemplateUseCase
	Router    *gin.Engine

	closers []func()
}

type stores struct {
	orders    interfaces.IOrderRepository
	archive   interfaces.IArchivedOrderRepository
	sequence  interfaces.IOrderIDSequence
	templates interfaces.IProcessTemplateRepository
	payments  interfaces.IBillingPaymentRepository
}

// New wires every adapter selected by cfg. With the memory storage driver the
// default templates are seeded so orders get a full process tree.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, Log: log}

	st, err := c.buildStores(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.Templates = usecase.NewProcessTemplateUseCase(st.templates, log)
	if cfg.Storage.InMemory() {
		defaults, err := seed.DefaultTemplates()
		if err != nil {
			c.Close()
			return nil, err
		}
		if _, err := c.Templates.SeedTemplates(ctx, defaults); err != nil {
			c.Close()
			return nil, err
		}
	}

	locker, err := c.buildLocker(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}
	catalog, err := c.buildCatalog()
	if err != nil {
		c.Close()
		return nil, err
	}
	objects, err := c.buildObjectStorage(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}
	directory := c.buildDirectory()

	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.Mock, log)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("payment gateway: %w", err)
	}

	orderUC := usecase.NewOrderUseCase(usecase.OrderDependencies{
		Orders:    st.orders,
		Archive:   st.archive,
		Sequence:  st.sequence,
		Catalog:   catalog,
		Templates: st.templates,
		Storage:   objects,
		Directory: directory,
		Locker:    locker,
		Logger:    log,
	})
	workflowUC := usecase.NewWorkflowUseCase(st.orders, st.templates, locker, log)
	assignmentUC := usecase.NewAssignmentUseCase(st.orders, st.templates, locker, directory, log)
	bomUC := usecase.NewBOMUseCase(st.orders, st.templates, locker, export.NewWorkbookRenderer(), log)
	paymentUC := usecase.NewBillingPaymentUseCase(st.payments, st.orders, gateway, usecase.PaymentSettings{
		MockMode:    gateway.MockMode(),
		AccessToken: cfg.MercadoPago.AccessToken,
	}, log)

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	c.Router = routes.NewRouter(routes.Handlers{
		Order:    handlers.NewOrderHandler(orderUC),
		Workflow: handlers.NewWorkflowHandler(workflowUC, assignmentUC),
		BOM:      handlers.NewBOMHandler(bomUC),
		Template: handlers.NewTemplateHandler(c.Templates),
		Payment:  handlers.NewBillingPaymentHandler(paymentUC, gateway.MockMode(), log),
	}, cfg.JWT.Secret, log)
	return c, nil
}

// NewTemplateCatalog wires only the template store, for the seed command.
func NewTemplateCatalog(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, Log: log}
	st, err := c.buildStores(ctx)
	if err != nil {
		return nil, err
	}
	c.Templates = usecase.NewProcessTemplateUseCase(st.templates, log)
	return c, nil
}

func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

func (c *Container) buildStores(ctx context.Context) (stores, error) {
	if c.Config.Storage.InMemory() {
		c.Log.Warn("using in-memory storage, data is lost on restart")
		return stores{
			orders:    memory.NewOrderRepository(),
			archive:   memory.NewArchivedOrderRepository(),
			sequence:  memory.NewOrderSequence(),
			templates: memory.NewProcessTemplateRepository(),
			payments:  memory.NewBillingPaymentRepository(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, c.Config.AWS)
	if err != nil {
		return stores{}, fmt.Errorf("dynamodb: %w", err)
	}
	tables := c.Config.AWS.Tables
	return stores{
		orders:    repository.NewOrderDynamoRepository(ddb, tables.Orders),
		archive:   repository.NewArchivedOrderDynamoRepository(ddb, tables.ArchivedOrders),
		sequence:  repository.NewOrderSequenceDynamo(ddb, tables.Counters),
		templates: repository.NewProcessTemplateDynamoRepository(ddb, tables.Templates),
		payments:  repository.NewBillingPaymentDynamoRepository(ddb, tables.Payments),
	}, nil
}

func (c *Container) buildLocker(ctx context.Context) (interfaces.IOrderLocker, error) {
	if !c.Config.Redis.Enabled {
		return lock.NewLocalLocker(), nil
	}
	rdb, err := cache.NewRedisClient(ctx, c.Config.Redis)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, func() { _ = rdb.Close() })
	c.Log.Info("order locks backed by redis", zap.String("addr", c.Config.Redis.Addr()))
	return lock.NewRedisLocker(rdb, c.Config.Redis.LockTTL, c.Config.Redis.LockWait, c.Log), nil
}

func (c *Container) buildCatalog() (interfaces.IServiceCatalogRepository, error) {
	if !c.Config.Postgres.Enabled {
		c.Log.Warn("service catalog database disabled, general and fixed services are unavailable")
		return memory.NewServiceCatalog(), nil
	}
	db, err := database.ConnectPostgres(c.Config.Postgres)
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		c.closers = append(c.closers, func() { _ = sqlDB.Close() })
	}
	return repository.NewServiceCatalogGormRepository(db), nil
}

func (c *Container) buildObjectStorage(ctx context.Context) (interfaces.IObjectStorage, error) {
	if !c.Config.MinIO.Enabled {
		return memory.NewObjectStorage(), nil
	}
	s, err := storage.NewMinIOStorage(ctx, c.Config.MinIO)
	if err != nil {
		return nil, fmt.Errorf("minio: %w", err)
	}
	return s, nil
}

func (c *Container) buildDirectory() interfaces.ITechnicianDirectory {
	if c.Config.Technician.BaseURL == "" {
		c.Log.Warn("technician service not configured, using an empty in-memory directory")
		return memory.NewTechnicianDirectory()
	}
	return technician.NewHTTPDirectory(c.Config.Technician.BaseURL, c.Config.Technician.Timeout)
}
