package request

import (
	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase"
)

type TemplateRequest struct {
	Key                 string                          `json:"key"`
	Order               int                             `json:"order"`
	ProcessName         entities.Labels                 `json:"process_name" binding:"required"`
	Description         entities.Labels                 `json:"description"`
	DefaultSubProcesses []entities.SubProcessDefinition `json:"default_sub_processes"`
}

func (r TemplateRequest) ToInput() usecase.TemplateInput {
	return usecase.TemplateInput{
		Key:                 r.Key,
		Order:               r.Order,
		ProcessName:         r.ProcessName,
		Description:         r.Description,
		DefaultSubProcesses: r.DefaultSubProcesses,
	}
}
