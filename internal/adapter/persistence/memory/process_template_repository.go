package memory

import (
	"context"
	"sync"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"
)

type ProcessTemplateRepository struct {
	mu        sync.RWMutex
	templates map[string]entities.ProcessTemplate
}

var _ interfaces.IProcessTemplateRepository = (*ProcessTemplateRepository)(nil)

func NewProcessTemplateRepository() *ProcessTemplateRepository {
	return &ProcessTemplateRepository{templates: make(map[string]entities.ProcessTemplate)}
}

func (r *ProcessTemplateRepository) Create(_ context.Context, t entities.ProcessTemplate) (entities.ProcessTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[t.ID]; ok {
		return entities.ProcessTemplate{}, interfaces.ErrAlreadyExists
	}
	return t, r.put(t)
}

func (r *ProcessTemplateRepository) GetByID(_ context.Context, id string) (entities.ProcessTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[id]
	if !ok {
		return entities.ProcessTemplate{}, nil
	}
	return cloneTemplate(t)
}

func (r *ProcessTemplateRepository) List(_ context.Context) ([]entities.ProcessTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.ProcessTemplate, 0, len(r.templates))
	for _, t := range r.templates {
		c, err := cloneTemplate(t)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	entities.SortTemplates(out)
	return out, nil
}

func (r *ProcessTemplateRepository) Update(_ context.Context, t entities.ProcessTemplate) (entities.ProcessTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[t.ID]; !ok {
		return entities.ProcessTemplate{}, nil
	}
	return t, r.put(t)
}

func (r *ProcessTemplateRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.templates, id)
	return nil
}

func (r *ProcessTemplateRepository) ReplaceAll(_ context.Context, ts []entities.ProcessTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates = make(map[string]entities.ProcessTemplate, len(ts))
	for _, t := range ts {
		if err := r.put(t); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProcessTemplateRepository) put(t entities.ProcessTemplate) error {
	c, err := cloneTemplate(t)
	if err != nil {
		return err
	}
	r.templates[t.ID] = c
	return nil
}

func cloneTemplate(t entities.ProcessTemplate) (entities.ProcessTemplate, error) {
	var out entities.ProcessTemplate
	err := deepCopy(t, &out)
	return out, err
}
