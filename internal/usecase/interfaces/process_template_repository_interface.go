package interfaces

import (
	"context"

	"service_inventory/internal/domain/entities"
)

// IProcessTemplateRepository persists process templates. Getters return a
// zero template when nothing matches.
type IProcessTemplateRepository interface {
	Create(ctx context.Context, t entities.ProcessTemplate) (entities.ProcessTemplate, error)
	GetByID(ctx context.Context, id string) (entities.ProcessTemplate, error)
	List(ctx context.Context) ([]entities.ProcessTemplate, error)
	Update(ctx context.Context, t entities.ProcessTemplate) (entities.ProcessTemplate, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, ts []entities.ProcessTemplate) error
}
