package usecase

import (
	"context"
	"testing"
	"time"

	"service_inventory/internal/adapter/export"
	"service_inventory/internal/adapter/persistence/memory"
	"service_inventory/internal/adapter/seed"
	"service_inventory/internal/domain/entities"
	"service_inventory/internal/infrastructure/lock"

	"go.uber.org/zap"
)

const (
	testCustomerID = "cust-1"
	technicianA    = "tech-a"
	technicianB    = "tech-b"
)

var (
	testCustomer   = entities.Principal{UserID: testCustomerID, Role: entities.RoleCustomer}
	testTechnician = entities.Principal{UserID: technicianA, Role: entities.RoleTechnician}
	testAdmin      = entities.Principal{UserID: "admin-1", Role: entities.RoleAdmin}
)

// testEnv wires every use case on in-memory adapters.
type testEnv struct {
	orders    *memory.OrderRepository
	archive   *memory.ArchivedOrderRepository
	templates *memory.ProcessTemplateRepository
	storage   *memory.ObjectStorage
	directory *memory.TechnicianDirectory
	payments  *memory.BillingPaymentRepository

	order      *OrderUseCase
	workflow   *WorkflowUseCase
	bom        *BOMUseCase
	assignment *AssignmentUseCase
	catalog    *ProcessTemplateUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := zap.NewNop()

	env := &testEnv{
		orders:    memory.NewOrderRepository(),
		archive:   memory.NewArchivedOrderRepository(),
		templates: memory.NewProcessTemplateRepository(),
		storage:   memory.NewObjectStorage(),
		directory: memory.NewTechnicianDirectory(
			entities.Technician{ID: technicianA, FirstName: "Arun", LastName: "Kumar", TechnicianType: "Electrician", AvailabilityStatus: entities.AvailabilityAvailable},
			entities.Technician{ID: technicianB, FirstName: "Bala", TechnicianType: "Plumber", AvailabilityStatus: entities.AvailabilityBusy},
		),
		payments: memory.NewBillingPaymentRepository(),
	}
	price := 450.0
	services := memory.NewServiceCatalog(entities.CatalogService{
		ServiceID:    "svc-1",
		ServiceType:  entities.ServiceTypeGeneral,
		OrderType:    entities.OrderTypeRepairMaintenance,
		Scope:        entities.ServiceScopeHome,
		Category:     "Electrical",
		ServiceName:  "Fan Repair",
		SellingPrice: &price,
		Status:       "Available",
	})
	locker := lock.NewLocalLocker()

	env.catalog = NewProcessTemplateUseCase(env.templates, log)
	defaults, err := seed.DefaultTemplates()
	if err != nil {
		t.Fatalf("load default templates: %v", err)
	}
	if _, err := env.catalog.SeedTemplates(context.Background(), defaults); err != nil {
		t.Fatalf("seed templates: %v", err)
	}

	env.order = NewOrderUseCase(OrderDependencies{
		Orders:    env.orders,
		Archive:   env.archive,
		Sequence:  memory.NewOrderSequence(),
		Catalog:   services,
		Templates: env.templates,
		Storage:   env.storage,
		Directory: env.directory,
		Locker:    locker,
		Logger:    log,
	})
	env.workflow = NewWorkflowUseCase(env.orders, env.templates, locker, log)
	env.workflow.otp = func() (string, error) { return "1234", nil }
	env.bom = NewBOMUseCase(env.orders, env.templates, locker, export.NewWorkbookRenderer(), log)
	env.assignment = NewAssignmentUseCase(env.orders, env.templates, locker, env.directory, log)
	return env
}

func (e *testEnv) createCustomOrder(t *testing.T) entities.Order {
	t.Helper()
	budget := 2000.0
	o, err := e.order.CreateOrder(context.Background(), testCustomer, CreateOrderInput{
		ServiceType:         "custom",
		OrderType:           string(entities.OrderTypeNewInstallation),
		Scope:               "Home",
		Category:            "Electrical",
		ServiceName:         "Wiring",
		ServiceRequiredDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		IssueLocation:       "Chennai",
		ExpectedBudget:      &budget,
		MaterialRequired:    true,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return o
}

// arriveAndObserve assigns technician A and drives the order up to a
// recorded initial observation.
func (e *testEnv) arriveAndObserve(t *testing.T, orderID string) {
	t.Helper()
	ctx := context.Background()
	if _, err := e.assignment.AssignTechnicians(ctx, orderID, []string{technicianA}); err != nil {
		t.Fatalf("assign technician: %v", err)
	}
	if _, err := e.workflow.GenerateArrivalOTP(ctx, testTechnician, orderID); err != nil {
		t.Fatalf("generate otp: %v", err)
	}
	if _, err := e.workflow.VerifyArrivalOTP(ctx, testTechnician, orderID, "1234"); err != nil {
		t.Fatalf("verify otp: %v", err)
	}
	if _, err := e.workflow.RecordInitialObservation(ctx, testTechnician, orderID, "burnt MCB"); err != nil {
		t.Fatalf("record observation: %v", err)
	}
}

func processByKey(t *testing.T, o entities.Order, key string) entities.Process {
	t.Helper()
	p := o.FindProcess(key)
	if p == nil {
		t.Fatalf("process %s not found", key)
	}
	return *p
}
