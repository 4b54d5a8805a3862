package entities

import (
	"sort"
	"time"
)

// Stable process keys of the default electrical & maintenance SOP.
const (
	ProcessTechnicianAllocation = "technician_allocation"
	ProcessSiteVisit            = "site_visit"
	ProcessIssueAnalysis        = "issue_analysis"
	ProcessAdminReviewBOM       = "admin_review_bom"
	ProcessQuotationApproval    = "quotation_approval"
	ProcessOrderExecution       = "order_execution"
	ProcessCompletionReview     = "completion_review"
)

// Stable sub-process keys.
const (
	SubAssignTechnician = "assign_technician"

	SubScheduleVisit       = "schedule_visit"
	SubArrivalConfirmation = "arrival_confirmation"
	SubSiteInspection      = "site_inspection"

	SubInitialObservation    = "initial_observation"
	SubProblemIdentification = "problem_identification"
	SubPhotoDocumentation    = "photo_documentation"
	SubPrepareSiteReport     = "prepare_site_report"

	SubReceiveTechnicianReport = "receive_technician_report"
	SubMaterialEstimation      = "material_estimation"
	SubBOMPreparation          = "bom_preparation"

	SubQuotationGeneration  = "quotation_generation"
	SubClientCommunication  = "client_communication"
	SubApprovalConfirmation = "approval_confirmation"

	SubMaterialProcurement = "material_procurement"
	SubJobExecution        = "job_execution"
	SubWorkVerification    = "work_verification"

	SubMarkAsCompleted = "mark_as_completed"
	SubClientFeedback  = "client_feedback"
	SubCloseTheOrder   = "close_the_order"
)

type SubProcessDefinition struct {
	Key         string `json:"key" yaml:"key"`
	Name        Labels `json:"name" yaml:"name"`
	Description Labels `json:"description,omitempty" yaml:"description,omitempty"`
}

// ProcessTemplate is an admin-maintained definition of one workflow phase.
type ProcessTemplate struct {
	ID                  string                 `json:"id" yaml:"-"`
	Key                 string                 `json:"key" yaml:"key"`
	Order               int                    `json:"order" yaml:"order"`
	ProcessName         Labels                 `json:"process_name" yaml:"process_name"`
	Description         Labels                 `json:"description,omitempty" yaml:"description,omitempty"`
	DefaultSubProcesses []SubProcessDefinition `json:"default_sub_processes" yaml:"default_sub_processes"`
	CreatedAt           time.Time              `json:"created_at" yaml:"-"`
	UpdatedAt           time.Time              `json:"updated_at" yaml:"-"`
}

// MatchesName reports whether name is the template key or one of its labels.
func (t ProcessTemplate) MatchesName(name string) bool {
	return t.Key == name || t.ProcessName.Matches(name)
}

// SubProcessDefinition returns the default child identified by key or label.
func (t ProcessTemplate) SubProcessDefinition(name string) (SubProcessDefinition, bool) {
	for _, d := range t.DefaultSubProcesses {
		if d.Key == name || d.Name.Matches(name) {
			return d, true
		}
	}
	return SubProcessDefinition{}, false
}

// NewProcessFromTemplate builds a pending process with incomplete children.
func NewProcessFromTemplate(t ProcessTemplate) Process {
	p := Process{
		Key:          t.Key,
		Name:         t.ProcessName.clone(),
		Description:  t.Description.clone(),
		Rank:         t.Order,
		Status:       ProcessStatusPending,
		SubProcesses: make([]SubProcess, 0, len(t.DefaultSubProcesses)),
	}
	for _, d := range t.DefaultSubProcesses {
		p.SubProcesses = append(p.SubProcesses, SubProcess{
			Key:         d.Key,
			Name:        d.Name.clone(),
			Description: d.Description.clone(),
		})
	}
	return p
}

// SortTemplates orders templates by rank, then key.
func SortTemplates(ts []ProcessTemplate) {
	sort.SliceStable(ts, func(i, j int) bool {
		if ts[i].Order != ts[j].Order {
			return ts[i].Order < ts[j].Order
		}
		return ts[i].Key < ts[j].Key
	})
}

// LocalizedSubProcess is a sub-process definition projected to one language.
type LocalizedSubProcess struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// LocalizedTemplate is a template projected to one language.
type LocalizedTemplate struct {
	ID                  string                `json:"id"`
	Key                 string                `json:"key"`
	Order               int                   `json:"order"`
	ProcessName         string                `json:"process_name"`
	Description         string                `json:"description,omitempty"`
	DefaultSubProcesses []LocalizedSubProcess `json:"default_sub_processes"`
}

// Localize projects every label to lang, falling back to English.
func (t ProcessTemplate) Localize(lang string) LocalizedTemplate {
	out := LocalizedTemplate{
		ID:                  t.ID,
		Key:                 t.Key,
		Order:               t.Order,
		ProcessName:         t.ProcessName.In(lang),
		Description:         t.Description.In(lang),
		DefaultSubProcesses: make([]LocalizedSubProcess, 0, len(t.DefaultSubProcesses)),
	}
	for _, d := range t.DefaultSubProcesses {
		out.DefaultSubProcesses = append(out.DefaultSubProcesses, LocalizedSubProcess{
			Key:         d.Key,
			Name:        d.Name.In(lang),
			Description: d.Description.In(lang),
		})
	}
	return out
}
