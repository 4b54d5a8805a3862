package memory

import (
	"context"
	"testing"
	"time"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_VersionedUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	o := entities.Order{OrderID: "ORD-2025-01", CustomerID: "c-1", Version: 1, CreatedAt: time.Now().UTC()}
	_, err := repo.Create(ctx, o)
	require.NoError(t, err)

	_, err = repo.Create(ctx, o)
	assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)

	o.Version = 2
	o.OrderStatus = entities.OrderStatusCompleted
	_, err = repo.Update(ctx, o, 1)
	require.NoError(t, err)

	stale := o
	stale.Version = 2
	_, err = repo.Update(ctx, stale, 1)
	assert.ErrorIs(t, err, interfaces.ErrVersionConflict)

	got, err := repo.GetByID(ctx, "ORD-2025-01")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	assert.Equal(t, entities.OrderStatusCompleted, got.OrderStatus)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.OrderID)
}

func TestOrderRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	_, err := repo.Create(ctx, entities.Order{
		OrderID: "ORD-2025-02",
		Processes: []entities.Process{{
			Key:          entities.ProcessSiteVisit,
			Status:       entities.ProcessStatusPending,
			SubProcesses: []entities.SubProcess{{Key: entities.SubScheduleVisit}},
		}},
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "ORD-2025-02")
	require.NoError(t, err)
	got.Processes[0].SubProcesses[0].IsCompleted = true

	again, err := repo.GetByID(ctx, "ORD-2025-02")
	require.NoError(t, err)
	assert.False(t, again.Processes[0].SubProcesses[0].IsCompleted)
}

func TestOrderRepository_ListByCustomer(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range []string{"c-1", "c-2", "c-1"} {
		_, err := repo.Create(ctx, entities.Order{
			OrderID:    entities.FormatOrderID(2025, int64(i+1)),
			CustomerID: c,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	orders, err := repo.ListByCustomer(ctx, "c-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-2025-03", orders[0].OrderID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOrderSequence_PerYear(t *testing.T) {
	seq := NewOrderSequence()
	ctx := context.Background()
	a, _ := seq.Next(ctx, 2025)
	b, _ := seq.Next(ctx, 2025)
	c, _ := seq.Next(ctx, 2026)
	assert.Equal(t, []int64{1, 2, 1}, []int64{a, b, c})
}

func TestServiceCatalog_FindService(t *testing.T) {
	price := 450.0
	cat := NewServiceCatalog(entities.CatalogService{
		ServiceID:    "svc-1",
		ServiceType:  entities.ServiceTypeGeneral,
		OrderType:    entities.OrderTypeRepairMaintenance,
		Scope:        entities.ServiceScopeHome,
		ServiceName:  "Fan Repair",
		ServicePrice: &price,
		Status:       "Available",
	})

	s, err := cat.FindService(context.Background(), entities.CatalogLookup{
		ServiceType: "GENERAL",
		OrderType:   "repair/maintenance",
		Scope:       "home",
		ServiceName: "fan repair",
	})
	require.NoError(t, err)
	assert.Equal(t, "svc-1", s.ServiceID)

	none, err := cat.FindService(context.Background(), entities.CatalogLookup{ServiceName: "Other"})
	require.NoError(t, err)
	assert.Empty(t, none.ServiceID)
}
