package entities

import (
	"strings"
	"time"
)

// ProcessStatus is the lifecycle state of a process node.
//
//	Pending -> In Progress -> Completed
//	Pending -> Arrived -> In Progress -> Completed   (site visit only)
type ProcessStatus string

const (
	ProcessStatusPending    ProcessStatus = "Pending"
	ProcessStatusInProgress ProcessStatus = "In Progress"
	ProcessStatusCompleted  ProcessStatus = "Completed"
	ProcessStatusArrived    ProcessStatus = "Arrived"
)

func (s ProcessStatus) Valid() bool {
	switch s {
	case ProcessStatusPending, ProcessStatusInProgress, ProcessStatusCompleted, ProcessStatusArrived:
		return true
	}
	return false
}

const (
	LangEN = "en"
	LangTA = "ta"
)

// Labels maps a language code to a display string.
type Labels map[string]string

// In returns the label for lang, falling back to English.
func (l Labels) In(lang string) string {
	if v := strings.TrimSpace(l[lang]); v != "" {
		return v
	}
	return l[LangEN]
}

// Matches reports whether name equals any of the labels.
func (l Labels) Matches(name string) bool {
	for _, v := range l {
		if v != "" && v == name {
			return true
		}
	}
	return false
}

func (l Labels) clone() Labels {
	if l == nil {
		return nil
	}
	out := make(Labels, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// MaterialProcurementStatus values.
const (
	MaterialProcurementNotYet    = "not yet"
	MaterialProcurementCompleted = "completed"
)

// JobExecutionStatus values.
const (
	JobExecutionNotStarted = "not yet started"
	JobExecutionProcessing = "processing"
	JobExecutionCompleted  = "completed"
)

type AssignedTechnician struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	Type       string    `json:"type,omitempty"`
	AssignedAt time.Time `json:"assigned_at"`
}

// SubProcess is a unit of work inside a process. Only the fields relevant to
// its role are populated.
type SubProcess struct {
	Key         string `json:"key"`
	Name        Labels `json:"name"`
	Description Labels `json:"description,omitempty"`

	ScheduledDate string `json:"scheduled_date,omitempty"`
	ScheduledTime string `json:"scheduled_time,omitempty"`

	OTP        string `json:"otp,omitempty"`
	IsVerified bool   `json:"is_verified"`

	PhotoOfTheIssue       string   `json:"photo_of_the_issue,omitempty"`
	TechnicianReport      string   `json:"technician_report,omitempty"`
	MaterialEstimation    *float64 `json:"material_estimation,omitempty"`
	BillOfTheSummary      *float64 `json:"bill_of_the_summary,omitempty"`
	Quotation             string   `json:"quotation,omitempty"`
	QuotationConfirmation *bool    `json:"quotation_confirmation,omitempty"`

	AssignedTechnicians []AssignedTechnician `json:"assigned_technicians,omitempty"`

	MaterialProcurement string `json:"material_procurement,omitempty"`
	JobExecution        string `json:"job_execution,omitempty"`
	WorkVerified        *bool  `json:"work_verified,omitempty"`
	ClientFeedback      string `json:"client_feedback,omitempty"`
	OrderCompleted      *bool  `json:"order_completed,omitempty"`

	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (s *SubProcess) matches(name string) bool {
	return s.Key == name || s.Name.Matches(name)
}

// HasTechnician reports whether id is already assigned.
func (s *SubProcess) HasTechnician(id string) bool {
	for _, t := range s.AssignedTechnicians {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Complete marks the sub-process done, stamping the first completion time.
func (s *SubProcess) Complete(now time.Time) {
	if !s.IsCompleted || s.CompletedAt == nil {
		t := now
		s.CompletedAt = &t
	}
	s.IsCompleted = true
}

// Reopen clears completion.
func (s *SubProcess) Reopen() {
	s.IsCompleted = false
	s.CompletedAt = nil
}

// Process is a named phase of an order's workflow.
type Process struct {
	Key          string        `json:"key"`
	Name         Labels        `json:"name"`
	Description  Labels        `json:"description,omitempty"`
	Rank         int           `json:"order,omitempty"`
	Status       ProcessStatus `json:"status"`
	StartedAt    *time.Time    `json:"started_at,omitempty"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`
	SubProcesses []SubProcess  `json:"sub_processes"`
}

func (p *Process) matches(name string) bool {
	return p.Key == name || p.Name.Matches(name)
}

// FindSubProcess returns the sub-process identified by key or any label.
func (p *Process) FindSubProcess(name string) *SubProcess {
	for i := range p.SubProcesses {
		if p.SubProcesses[i].matches(name) {
			return &p.SubProcesses[i]
		}
	}
	return nil
}

// EnsureSubProcess finds the sub-process or appends a new one built from def.
func (p *Process) EnsureSubProcess(def SubProcessDefinition) (*SubProcess, bool) {
	if sp := p.FindSubProcess(def.Key); sp != nil {
		return sp, false
	}
	for _, label := range def.Name {
		if sp := p.FindSubProcess(label); sp != nil {
			return sp, false
		}
	}
	p.SubProcesses = append(p.SubProcesses, SubProcess{
		Key:         def.Key,
		Name:        def.Name.clone(),
		Description: def.Description.clone(),
	})
	return &p.SubProcesses[len(p.SubProcesses)-1], true
}

// AllSubProcessesCompleted is false for a process without children.
func (p *Process) AllSubProcessesCompleted() bool {
	if len(p.SubProcesses) == 0 {
		return false
	}
	for _, sp := range p.SubProcesses {
		if !sp.IsCompleted {
			return false
		}
	}
	return true
}

// RollUp recomputes the process status from its children. A process is
// Completed iff it has children and all of them are completed.
func (p *Process) RollUp(now time.Time) {
	if p.AllSubProcessesCompleted() {
		if p.Status != ProcessStatusCompleted || p.CompletedAt == nil {
			t := now
			p.CompletedAt = &t
		}
		p.Status = ProcessStatusCompleted
		return
	}
	if p.Status == ProcessStatusCompleted {
		p.Status = ProcessStatusInProgress
		p.CompletedAt = nil
	}
}

// Advance moves a pending process into progress after work was recorded on
// it, then rolls it up. Arrived is kept until the process completes.
func (p *Process) Advance(now time.Time) {
	if p.StartedAt == nil {
		t := now
		p.StartedAt = &t
	}
	if p.Status == ProcessStatusPending || p.Status == "" {
		p.Status = ProcessStatusInProgress
	}
	p.RollUp(now)
}

// SubProcessPatch is a partial update of a sub-process. Nil fields are left
// untouched.
type SubProcessPatch struct {
	ScheduledDate         *string    `json:"scheduled_date,omitempty"`
	ScheduledTime         *string    `json:"scheduled_time,omitempty"`
	PhotoOfTheIssue       *string    `json:"photo_of_the_issue,omitempty"`
	TechnicianReport      *string    `json:"technician_report,omitempty"`
	MaterialEstimation    *float64   `json:"material_estimation,omitempty"`
	BillOfTheSummary      *float64   `json:"bill_of_the_summary,omitempty"`
	Quotation             *string    `json:"quotation,omitempty"`
	QuotationConfirmation *bool      `json:"quotation_confirmation,omitempty"`
	MaterialProcurement   *string    `json:"material_procurement,omitempty"`
	JobExecution          *string    `json:"job_execution,omitempty"`
	WorkVerified          *bool      `json:"work_verified,omitempty"`
	ClientFeedback        *string    `json:"client_feedback,omitempty"`
	OrderCompleted        *bool      `json:"order_completed,omitempty"`
	IsCompleted           *bool      `json:"is_completed,omitempty"`
	Description           *string    `json:"description,omitempty"`
	CompletedAt           *time.Time `json:"completed_at,omitempty"`
}

// Validate checks the enumerated fields.
func (p SubProcessPatch) Validate() error {
	if p.MaterialProcurement != nil {
		switch *p.MaterialProcurement {
		case MaterialProcurementNotYet, MaterialProcurementCompleted:
		default:
			return ErrInvalidMaterialProcurement
		}
	}
	if p.JobExecution != nil {
		switch *p.JobExecution {
		case JobExecutionNotStarted, JobExecutionProcessing, JobExecutionCompleted:
		default:
			return ErrInvalidJobExecution
		}
	}
	return nil
}

// Apply merges the patch into s.
func (p SubProcessPatch) Apply(s *SubProcess, now time.Time) {
	if p.ScheduledDate != nil {
		s.ScheduledDate = *p.ScheduledDate
	}
	if p.ScheduledTime != nil {
		s.ScheduledTime = *p.ScheduledTime
	}
	if p.PhotoOfTheIssue != nil {
		s.PhotoOfTheIssue = *p.PhotoOfTheIssue
	}
	if p.TechnicianReport != nil {
		s.TechnicianReport = *p.TechnicianReport
	}
	if p.MaterialEstimation != nil {
		v := *p.MaterialEstimation
		s.MaterialEstimation = &v
	}
	if p.BillOfTheSummary != nil {
		v := *p.BillOfTheSummary
		s.BillOfTheSummary = &v
	}
	if p.Quotation != nil {
		s.Quotation = *p.Quotation
	}
	if p.QuotationConfirmation != nil {
		v := *p.QuotationConfirmation
		s.QuotationConfirmation = &v
	}
	if p.MaterialProcurement != nil {
		s.MaterialProcurement = *p.MaterialProcurement
	}
	if p.JobExecution != nil {
		s.JobExecution = *p.JobExecution
	}
	if p.WorkVerified != nil {
		v := *p.WorkVerified
		s.WorkVerified = &v
	}
	if p.ClientFeedback != nil {
		s.ClientFeedback = *p.ClientFeedback
	}
	if p.OrderCompleted != nil {
		v := *p.OrderCompleted
		s.OrderCompleted = &v
	}
	if p.Description != nil {
		if s.Description == nil {
			s.Description = Labels{}
		}
		s.Description[LangEN] = *p.Description
	}
	if p.IsCompleted != nil {
		if *p.IsCompleted {
			s.Complete(now)
			if p.CompletedAt != nil {
				t := p.CompletedAt.UTC()
				s.CompletedAt = &t
			}
		} else {
			s.Reopen()
		}
	}
}

// IsEmpty reports whether the patch carries no field.
func (p SubProcessPatch) IsEmpty() bool {
	return p == SubProcessPatch{}
}
