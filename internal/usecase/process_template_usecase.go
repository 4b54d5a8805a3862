package usecase

import (
	"context"
	"strings"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TemplateInput is the admin-editable part of a process template. An empty
// key is derived from the English name.
type TemplateInput struct {
	Key                 string
	Order               int
	ProcessName         entities.Labels
	Description         entities.Labels
	DefaultSubProcesses []entities.SubProcessDefinition
}

type IProcessTemplateUseCase interface {
	ListTemplates(ctx context.Context, lang string) ([]entities.LocalizedTemplate, error)
	GetTemplate(ctx context.Context, id string) (entities.ProcessTemplate, error)
	CreateTemplate(ctx context.Context, in TemplateInput) (entities.ProcessTemplate, error)
	UpdateTemplate(ctx context.Context, id string, in TemplateInput) (entities.ProcessTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error
	FindByName(ctx context.Context, name string) (entities.ProcessTemplate, error)
	SeedTemplates(ctx context.Context, ts []entities.ProcessTemplate) ([]entities.ProcessTemplate, error)
}

type ProcessTemplateUseCase struct {
	repo interfaces.IProcessTemplateRepository
	log  *zap.Logger
}

var _ IProcessTemplateUseCase = (*ProcessTemplateUseCase)(nil)

func NewProcessTemplateUseCase(repo interfaces.IProcessTemplateRepository, log *zap.Logger) *ProcessTemplateUseCase {
	return &ProcessTemplateUseCase{repo: repo, log: log.Named("templates")}
}

func (u *ProcessTemplateUseCase) ListTemplates(ctx context.Context, lang string) ([]entities.LocalizedTemplate, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang != entities.LangTA {
		lang = entities.LangEN
	}
	ts, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	entities.SortTemplates(ts)
	out := make([]entities.LocalizedTemplate, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Localize(lang))
	}
	return out, nil
}

func (u *ProcessTemplateUseCase) GetTemplate(ctx context.Context, id string) (entities.ProcessTemplate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProcessTemplate{}, ErrTemplateNotFound
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProcessTemplate{}, err
	}
	if t.ID == "" {
		return entities.ProcessTemplate{}, ErrTemplateNotFound
	}
	return t, nil
}

func (u *ProcessTemplateUseCase) CreateTemplate(ctx context.Context, in TemplateInput) (entities.ProcessTemplate, error) {
	in, err := normalizeTemplateInput(in)
	if err != nil {
		return entities.ProcessTemplate{}, err
	}
	if err := u.ensureKeyFree(ctx, in.Key, ""); err != nil {
		return entities.ProcessTemplate{}, err
	}

	now := utcNow()
	t := entities.ProcessTemplate{
		ID:                  uuid.NewString(),
		Key:                 in.Key,
		Order:               in.Order,
		ProcessName:         in.ProcessName,
		Description:         in.Description,
		DefaultSubProcesses: in.DefaultSubProcesses,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return entities.ProcessTemplate{}, err
	}
	u.log.Info("template created", zap.String("id", created.ID), zap.String("key", created.Key))
	return created, nil
}

func (u *ProcessTemplateUseCase) UpdateTemplate(ctx context.Context, id string, in TemplateInput) (entities.ProcessTemplate, error) {
	existing, err := u.GetTemplate(ctx, id)
	if err != nil {
		return entities.ProcessTemplate{}, err
	}
	in, err = normalizeTemplateInput(in)
	if err != nil {
		return entities.ProcessTemplate{}, err
	}
	if in.Key != existing.Key {
		if err := u.ensureKeyFree(ctx, in.Key, existing.ID); err != nil {
			return entities.ProcessTemplate{}, err
		}
	}

	existing.Key = in.Key
	existing.Order = in.Order
	existing.ProcessName = in.ProcessName
	existing.Description = in.Description
	existing.DefaultSubProcesses = in.DefaultSubProcesses
	existing.UpdatedAt = utcNow()

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.ProcessTemplate{}, err
	}
	if updated.ID == "" {
		return entities.ProcessTemplate{}, ErrTemplateNotFound
	}
	u.log.Info("template updated", zap.String("id", updated.ID), zap.String("key", updated.Key))
	return updated, nil
}

func (u *ProcessTemplateUseCase) DeleteTemplate(ctx context.Context, id string) error {
	existing, err := u.GetTemplate(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, existing.ID); err != nil {
		return err
	}
	u.log.Info("template deleted", zap.String("id", existing.ID), zap.String("key", existing.Key))
	return nil
}

// FindByName matches the template key or either language label.
func (u *ProcessTemplateUseCase) FindByName(ctx context.Context, name string) (entities.ProcessTemplate, error) {
	t, found, err := stepResolver{templates: u.repo}.findTemplate(ctx, strings.TrimSpace(name))
	if err != nil {
		return entities.ProcessTemplate{}, err
	}
	if !found {
		return entities.ProcessTemplate{}, ErrTemplateNotFound
	}
	return t, nil
}

// SeedTemplates replaces the whole catalog with ts.
func (u *ProcessTemplateUseCase) SeedTemplates(ctx context.Context, ts []entities.ProcessTemplate) ([]entities.ProcessTemplate, error) {
	now := utcNow()
	seeded := make([]entities.ProcessTemplate, 0, len(ts))
	for _, t := range ts {
		in, err := normalizeTemplateInput(TemplateInput{
			Key:                 t.Key,
			Order:               t.Order,
			ProcessName:         t.ProcessName,
			Description:         t.Description,
			DefaultSubProcesses: t.DefaultSubProcesses,
		})
		if err != nil {
			return nil, err
		}
		seeded = append(seeded, entities.ProcessTemplate{
			ID:                  uuid.NewString(),
			Key:                 in.Key,
			Order:               in.Order,
			ProcessName:         in.ProcessName,
			Description:         in.Description,
			DefaultSubProcesses: in.DefaultSubProcesses,
			CreatedAt:           now,
			UpdatedAt:           now,
		})
	}
	entities.SortTemplates(seeded)

	if err := u.repo.ReplaceAll(ctx, seeded); err != nil {
		return nil, err
	}
	u.log.Info("templates seeded", zap.Int("count", len(seeded)))
	return seeded, nil
}

func (u *ProcessTemplateUseCase) ensureKeyFree(ctx context.Context, key, selfID string) error {
	ts, err := u.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, t := range ts {
		if t.Key == key && t.ID != selfID {
			return ErrTemplateKeyExists
		}
	}
	return nil
}

func normalizeTemplateInput(in TemplateInput) (TemplateInput, error) {
	in.ProcessName = trimLabels(in.ProcessName)
	in.Description = trimLabels(in.Description)
	if in.ProcessName[entities.LangEN] == "" {
		return TemplateInput{}, ErrInvalidTemplate
	}
	in.Key = strings.TrimSpace(in.Key)
	if in.Key == "" {
		in.Key = entities.KeyFromName(in.ProcessName[entities.LangEN])
	}

	subs := make([]entities.SubProcessDefinition, 0, len(in.DefaultSubProcesses))
	for _, d := range in.DefaultSubProcesses {
		d.Name = trimLabels(d.Name)
		d.Description = trimLabels(d.Description)
		if d.Name[entities.LangEN] == "" {
			return TemplateInput{}, ErrInvalidTemplate
		}
		d.Key = strings.TrimSpace(d.Key)
		if d.Key == "" {
			d.Key = entities.KeyFromName(d.Name[entities.LangEN])
		}
		subs = append(subs, d)
	}
	in.DefaultSubProcesses = subs
	return in, nil
}

func trimLabels(l entities.Labels) entities.Labels {
	if len(l) == 0 {
		return nil
	}
	out := make(entities.Labels, len(l))
	for k, v := range l {
		if v = strings.TrimSpace(v); v != "" {
			out[strings.ToLower(strings.TrimSpace(k))] = v
		}
	}
	return out
}
