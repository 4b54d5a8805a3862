package entities

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type ServiceType string

const (
	ServiceTypeGeneral ServiceType = "general"
	ServiceTypeFixed   ServiceType = "fixed"
	ServiceTypeCustom  ServiceType = "custom"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTypeGeneral, ServiceTypeFixed, ServiceTypeCustom:
		return true
	}
	return false
}

// CatalogBacked reports whether the price comes from the service catalog.
func (t ServiceType) CatalogBacked() bool {
	return t == ServiceTypeGeneral || t == ServiceTypeFixed
}

type OrderType string

const (
	OrderTypeRepairMaintenance OrderType = "Repair/Maintenance"
	OrderTypeEBComplaints      OrderType = "EB Complaints"
	OrderTypeNewInstallation   OrderType = "New Installation"
	OrderTypeContract          OrderType = "Contract"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeRepairMaintenance, OrderTypeEBComplaints, OrderTypeNewInstallation, OrderTypeContract:
		return true
	}
	return false
}

type ServiceScope string

const (
	ServiceScopeHome     ServiceScope = "Home"
	ServiceScopeIndustry ServiceScope = "Industry"
)

func (s ServiceScope) Valid() bool {
	return s == ServiceScopeHome || s == ServiceScopeIndustry
}

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Order is the root aggregate of the workflow.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - GSI (customer_id-index): customer_id
//
// Version is incremented on every write and checked on update.
type Order struct {
	OrderID     string       `json:"order_id"`
	ServiceID   string       `json:"service_id,omitempty"`
	ServiceType ServiceType  `json:"service_type"`
	OrderType   OrderType    `json:"order_type,omitempty"`
	Scope       ServiceScope `json:"service_scope"`
	Category    string       `json:"category"`
	ServiceName string       `json:"service_name"`

	ServiceRequiredDate   time.Time `json:"service_required_date"`
	IssueDescription      string    `json:"issue_description,omitempty"`
	PictureOfTheIssue     string    `json:"picture_of_the_issue,omitempty"`
	VoiceRecordOfTheIssue string    `json:"voice_record_of_the_issue,omitempty"`
	IssueLocation         string    `json:"issue_location"`

	ServicePrice     *float64 `json:"service_price,omitempty"`
	Discount         *float64 `json:"discount,omitempty"`
	Tax              *float64 `json:"tax,omitempty"`
	ExpectedBudget   *float64 `json:"expected_budget,omitempty"`
	MaterialRequired bool     `json:"material_required"`

	OrderStatus OrderStatus `json:"order_status"`
	CustomerID  string      `json:"customer_id"`
	Review      *int        `json:"review"`

	Processes      []Process `json:"processes"`
	BillOfMaterial *BOM      `json:"bill_of_material"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProcessDefinition seeds a process created on demand.
type ProcessDefinition struct {
	Key         string
	Name        Labels
	Description Labels
	Rank        int
}

// FindProcess returns the process identified by key or any label.
func (o *Order) FindProcess(name string) *Process {
	for i := range o.Processes {
		if o.Processes[i].matches(name) {
			return &o.Processes[i]
		}
	}
	return nil
}

// EnsureProcess finds the process or appends a pending one built from def.
func (o *Order) EnsureProcess(def ProcessDefinition, now time.Time) (*Process, bool) {
	if p := o.FindProcess(def.Key); p != nil {
		return p, false
	}
	for _, label := range def.Name {
		if p := o.FindProcess(label); p != nil {
			return p, false
		}
	}
	started := now
	o.Processes = append(o.Processes, Process{
		Key:          def.Key,
		Name:         def.Name.clone(),
		Description:  def.Description.clone(),
		Rank:         def.Rank,
		Status:       ProcessStatusPending,
		StartedAt:    &started,
		SubProcesses: []SubProcess{},
	})
	return &o.Processes[len(o.Processes)-1], true
}

// FindSubProcess resolves process and sub-process by key or label.
func (o *Order) FindSubProcess(process, sub string) (*Process, *SubProcess) {
	p := o.FindProcess(process)
	if p == nil {
		return nil, nil
	}
	return p, p.FindSubProcess(sub)
}

// SubProcessCompleted reports whether the sub-process exists and is completed.
func (o *Order) SubProcessCompleted(process, sub string) bool {
	_, sp := o.FindSubProcess(process, sub)
	return sp != nil && sp.IsCompleted
}

// AssignedTechnicianIDs lists every technician on the allocation step.
func (o *Order) AssignedTechnicianIDs() []string {
	_, sp := o.FindSubProcess(ProcessTechnicianAllocation, SubAssignTechnician)
	if sp == nil {
		return nil
	}
	ids := make([]string, 0, len(sp.AssignedTechnicians))
	for _, t := range sp.AssignedTechnicians {
		ids = append(ids, t.ID)
	}
	return ids
}

// FormatOrderID builds the human readable identifier, e.g. ORD-2025-07.
func FormatOrderID(year int, seq int64) string {
	return fmt.Sprintf("ORD-%d-%02d", year, seq)
}

var nonKeyChars = regexp.MustCompile(`[^a-z0-9]+`)

// KeyFromName derives a stable key for a process or sub-process created from
// free text.
func KeyFromName(name string) string {
	k := nonKeyChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
	k = strings.Trim(k, "_")
	if k == "" {
		return name
	}
	return k
}

// ArchivedOrder is an order soft-deleted into the archive store.
type ArchivedOrder struct {
	Order
	DeletedAt time.Time `json:"deleted_at"`
}
