package usecase

import (
	"context"
	"strings"
	"time"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"
)

// stepResolver finds or creates process and sub-process nodes on an order.
// Missing nodes inherit key, labels and rank from the matching template when
// one exists; otherwise they are built from the given name.
type stepResolver struct {
	templates interfaces.IProcessTemplateRepository
}

func (r stepResolver) findTemplate(ctx context.Context, name string) (entities.ProcessTemplate, bool, error) {
	if r.templates == nil {
		return entities.ProcessTemplate{}, false, nil
	}
	ts, err := r.templates.List(ctx)
	if err != nil {
		return entities.ProcessTemplate{}, false, err
	}
	for _, t := range ts {
		if t.MatchesName(name) {
			return t, true, nil
		}
	}
	return entities.ProcessTemplate{}, false, nil
}

// ensure returns the process and, when sub is not empty, the sub-process.
// The returned pointers are only valid until the next node is added to o.
func (r stepResolver) ensure(ctx context.Context, o *entities.Order, process, sub string, now time.Time) (*entities.Process, *entities.SubProcess, error) {
	process = strings.TrimSpace(process)
	sub = strings.TrimSpace(sub)

	p := o.FindProcess(process)
	needTemplate := p == nil || (sub != "" && p.FindSubProcess(sub) == nil)

	var (
		tpl   entities.ProcessTemplate
		found bool
	)
	if needTemplate {
		lookup := process
		if p != nil && p.Key != "" {
			lookup = p.Key
		}
		var err error
		if tpl, found, err = r.findTemplate(ctx, lookup); err != nil {
			return nil, nil, err
		}
	}

	if p == nil {
		def := entities.ProcessDefinition{
			Key:  entities.KeyFromName(process),
			Name: entities.Labels{entities.LangEN: process},
		}
		if found {
			def = entities.ProcessDefinition{
				Key:         tpl.Key,
				Name:        tpl.ProcessName,
				Description: tpl.Description,
				Rank:        tpl.Order,
			}
		}
		p, _ = o.EnsureProcess(def, now)
	}
	if sub == "" {
		return p, nil, nil
	}

	def := entities.SubProcessDefinition{
		Key:  entities.KeyFromName(sub),
		Name: entities.Labels{entities.LangEN: sub},
	}
	if found {
		if d, ok := tpl.SubProcessDefinition(sub); ok {
			def = d
		}
	}
	sp, _ := p.EnsureSubProcess(def)
	return p, sp, nil
}
