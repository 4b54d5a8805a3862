// Package seed holds the default process template catalog.
package seed

import (
	_ "embed"
	"fmt"

	"service_inventory/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed default_templates.yaml
var defaultTemplatesYAML []byte

// DefaultTemplates decodes the embedded SOP catalog. The returned templates
// have no id or timestamps; the caller assigns them when storing.
func DefaultTemplates() ([]entities.ProcessTemplate, error) {
	return ParseTemplates(defaultTemplatesYAML)
}

// ParseTemplates decodes a YAML list of process templates.
func ParseTemplates(data []byte) ([]entities.ProcessTemplate, error) {
	var ts []entities.ProcessTemplate
	if err := yaml.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("decode process templates: %w", err)
	}
	for i, t := range ts {
		if t.Key == "" || t.ProcessName[entities.LangEN] == "" {
			return nil, fmt.Errorf("process template %d: key and english name are required", i)
		}
	}
	entities.SortTemplates(ts)
	return ts, nil
}
