package repository

import (
	"service_inventory/internal/domain/entities"
)

type assignedTechnicianItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name,omitempty"`
	Type       string `dynamodbav:"type,omitempty"`
	AssignedAt string `dynamodbav:"assigned_at"`
}

type subProcessItem struct {
	Key                   string                   `dynamodbav:"key"`
	Name                  map[string]string        `dynamodbav:"name"`
	Description           map[string]string        `dynamodbav:"description,omitempty"`
	ScheduledDate         string                   `dynamodbav:"scheduled_date,omitempty"`
	ScheduledTime         string                   `dynamodbav:"scheduled_time,omitempty"`
	OTP                   string                   `dynamodbav:"otp,omitempty"`
	IsVerified            bool                     `dynamodbav:"is_verified"`
	PhotoOfTheIssue       string                   `dynamodbav:"photo_of_the_issue,omitempty"`
	TechnicianReport      string                   `dynamodbav:"technician_report,omitempty"`
	MaterialEstimation    *float64                 `dynamodbav:"material_estimation,omitempty"`
	BillOfTheSummary      *float64                 `dynamodbav:"bill_of_the_summary,omitempty"`
	Quotation             string                   `dynamodbav:"quotation,omitempty"`
	QuotationConfirmation *bool                    `dynamodbav:"quotation_confirmation,omitempty"`
	AssignedTechnicians   []assignedTechnicianItem `dynamodbav:"assigned_technicians,omitempty"`
	MaterialProcurement   string                   `dynamodbav:"material_procurement,omitempty"`
	JobExecution          string                   `dynamodbav:"job_execution,omitempty"`
	WorkVerified          *bool                    `dynamodbav:"work_verified,omitempty"`
	ClientFeedback        string                   `dynamodbav:"client_feedback,omitempty"`
	OrderCompleted        *bool                    `dynamodbav:"order_completed,omitempty"`
	IsCompleted           bool                     `dynamodbav:"is_completed"`
	CompletedAt           string                   `dynamodbav:"completed_at,omitempty"`
}

type processItem struct {
	Key          string            `dynamodbav:"key"`
	Name         map[string]string `dynamodbav:"name"`
	Description  map[string]string `dynamodbav:"description,omitempty"`
	Rank         int               `dynamodbav:"order"`
	Status       string            `dynamodbav:"status"`
	StartedAt    string            `dynamodbav:"started_at,omitempty"`
	CompletedAt  string            `dynamodbav:"completed_at,omitempty"`
	SubProcesses []subProcessItem  `dynamodbav:"sub_processes"`
}

type materialItemItem struct {
	ItemName  string `dynamodbav:"item_name"`
	Qty       string `dynamodbav:"qty"`
	UnitPrice string `dynamodbav:"unit_price"`
}

// Money is stored as decimal strings so no precision is lost in DynamoDB.
type bomItem struct {
	ServiceType       string             `dynamodbav:"service_type"`
	MaterialItems     []materialItemItem `dynamodbav:"material_items"`
	MaterialCost      string             `dynamodbav:"material_cost"`
	ServiceCharge     string             `dynamodbav:"service_charge"`
	AdditionalCharges string             `dynamodbav:"additional_charges"`
	Subtotal          string             `dynamodbav:"subtotal"`
	TaxPercentage     string             `dynamodbav:"tax_percentage"`
	TaxAmount         string             `dynamodbav:"tax_amount"`
	TotalPayable      string             `dynamodbav:"total_payable"`
	GeneratedAt       string             `dynamodbav:"generated_at"`
	BOMStatus         string             `dynamodbav:"bom_status"`
	BOMApprovedBy     string             `dynamodbav:"bom_approved_by,omitempty"`
	BOMApprovedAt     string             `dynamodbav:"bom_approved_at,omitempty"`
	RejectionReason   string             `dynamodbav:"rejection_reason,omitempty"`
}

type orderItem struct {
	OrderID               string        `dynamodbav:"order_id"`
	ServiceID             string        `dynamodbav:"service_id,omitempty"`
	ServiceType           string        `dynamodbav:"service_type"`
	OrderType             string        `dynamodbav:"order_type,omitempty"`
	Scope                 string        `dynamodbav:"service_scope"`
	Category              string        `dynamodbav:"category"`
	ServiceName           string        `dynamodbav:"service_name"`
	ServiceRequiredDate   string        `dynamodbav:"service_required_date"`
	IssueDescription      string        `dynamodbav:"issue_description,omitempty"`
	PictureOfTheIssue     string        `dynamodbav:"picture_of_the_issue,omitempty"`
	VoiceRecordOfTheIssue string        `dynamodbav:"voice_record_of_the_issue,omitempty"`
	IssueLocation         string        `dynamodbav:"issue_location"`
	ServicePrice          *float64      `dynamodbav:"service_price,omitempty"`
	Discount              *float64      `dynamodbav:"discount,omitempty"`
	Tax                   *float64      `dynamodbav:"tax,omitempty"`
	ExpectedBudget        *float64      `dynamodbav:"expected_budget,omitempty"`
	MaterialRequired      bool          `dynamodbav:"material_required"`
	OrderStatus           string        `dynamodbav:"order_status"`
	CustomerID            string        `dynamodbav:"customer_id"`
	Review                *int          `dynamodbav:"review,omitempty"`
	Processes             []processItem `dynamodbav:"processes"`
	BillOfMaterial        *bomItem      `dynamodbav:"bill_of_material,omitempty"`
	Version               int64         `dynamodbav:"version"`
	CreatedAt             string        `dynamodbav:"created_at"`
	UpdatedAt             string        `dynamodbav:"updated_at"`
	DeletedAt             string        `dynamodbav:"deleted_at,omitempty"`
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		OrderID:               o.OrderID,
		ServiceID:             o.ServiceID,
		ServiceType:           string(o.ServiceType),
		OrderType:             string(o.OrderType),
		Scope:                 string(o.Scope),
		Category:              o.Category,
		ServiceName:           o.ServiceName,
		ServiceRequiredDate:   formatTime(o.ServiceRequiredDate),
		IssueDescription:      o.IssueDescription,
		PictureOfTheIssue:     o.PictureOfTheIssue,
		VoiceRecordOfTheIssue: o.VoiceRecordOfTheIssue,
		IssueLocation:         o.IssueLocation,
		ServicePrice:          o.ServicePrice,
		Discount:              o.Discount,
		Tax:                   o.Tax,
		ExpectedBudget:        o.ExpectedBudget,
		MaterialRequired:      o.MaterialRequired,
		OrderStatus:           string(o.OrderStatus),
		CustomerID:            o.CustomerID,
		Review:                o.Review,
		Processes:             make([]processItem, 0, len(o.Processes)),
		Version:               o.Version,
		CreatedAt:             formatTime(o.CreatedAt),
		UpdatedAt:             formatTime(o.UpdatedAt),
	}
	for _, p := range o.Processes {
		it.Processes = append(it.Processes, toProcessItem(p))
	}
	if o.BillOfMaterial != nil {
		b := toBOMItem(*o.BillOfMaterial)
		it.BillOfMaterial = &b
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		OrderID:               it.OrderID,
		ServiceID:             it.ServiceID,
		ServiceType:           entities.ServiceType(it.ServiceType),
		OrderType:             entities.OrderType(it.OrderType),
		Scope:                 entities.ServiceScope(it.Scope),
		Category:              it.Category,
		ServiceName:           it.ServiceName,
		ServiceRequiredDate:   parseTime(it.ServiceRequiredDate),
		IssueDescription:      it.IssueDescription,
		PictureOfTheIssue:     it.PictureOfTheIssue,
		VoiceRecordOfTheIssue: it.VoiceRecordOfTheIssue,
		IssueLocation:         it.IssueLocation,
		ServicePrice:          it.ServicePrice,
		Discount:              it.Discount,
		Tax:                   it.Tax,
		ExpectedBudget:        it.ExpectedBudget,
		MaterialRequired:      it.MaterialRequired,
		OrderStatus:           entities.OrderStatus(it.OrderStatus),
		CustomerID:            it.CustomerID,
		Review:                it.Review,
		Processes:             make([]entities.Process, 0, len(it.Processes)),
		Version:               it.Version,
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
	for _, p := range it.Processes {
		o.Processes = append(o.Processes, fromProcessItem(p))
	}
	if it.BillOfMaterial != nil {
		b := fromBOMItem(*it.BillOfMaterial)
		o.BillOfMaterial = &b
	}
	return o
}

func toProcessItem(p entities.Process) processItem {
	it := processItem{
		Key:          p.Key,
		Name:         p.Name,
		Description:  p.Description,
		Rank:         p.Rank,
		Status:       string(p.Status),
		StartedAt:    formatTimePtr(p.StartedAt),
		CompletedAt:  formatTimePtr(p.CompletedAt),
		SubProcesses: make([]subProcessItem, 0, len(p.SubProcesses)),
	}
	for _, sp := range p.SubProcesses {
		it.SubProcesses = append(it.SubProcesses, toSubProcessItem(sp))
	}
	return it
}

func fromProcessItem(it processItem) entities.Process {
	p := entities.Process{
		Key:          it.Key,
		Name:         it.Name,
		Description:  it.Description,
		Rank:         it.Rank,
		Status:       entities.ProcessStatus(it.Status),
		StartedAt:    parseTimePtr(it.StartedAt),
		CompletedAt:  parseTimePtr(it.CompletedAt),
		SubProcesses: make([]entities.SubProcess, 0, len(it.SubProcesses)),
	}
	for _, sp := range it.SubProcesses {
		p.SubProcesses = append(p.SubProcesses, fromSubProcessItem(sp))
	}
	return p
}

func toSubProcessItem(s entities.SubProcess) subProcessItem {
	it := subProcessItem{
		Key:                   s.Key,
		Name:                  s.Name,
		Description:           s.Description,
		ScheduledDate:         s.ScheduledDate,
		ScheduledTime:         s.ScheduledTime,
		OTP:                   s.OTP,
		IsVerified:            s.IsVerified,
		PhotoOfTheIssue:       s.PhotoOfTheIssue,
		TechnicianReport:      s.TechnicianReport,
		MaterialEstimation:    s.MaterialEstimation,
		BillOfTheSummary:      s.BillOfTheSummary,
		Quotation:             s.Quotation,
		QuotationConfirmation: s.QuotationConfirmation,
		MaterialProcurement:   s.MaterialProcurement,
		JobExecution:          s.JobExecution,
		WorkVerified:          s.WorkVerified,
		ClientFeedback:        s.ClientFeedback,
		OrderCompleted:        s.OrderCompleted,
		IsCompleted:           s.IsCompleted,
		CompletedAt:           formatTimePtr(s.CompletedAt),
	}
	for _, t := range s.AssignedTechnicians {
		it.AssignedTechnicians = append(it.AssignedTechnicians, assignedTechnicianItem{
			ID:         t.ID,
			Name:       t.Name,
			Type:       t.Type,
			AssignedAt: formatTime(t.AssignedAt),
		})
	}
	return it
}

func fromSubProcessItem(it subProcessItem) entities.SubProcess {
	s := entities.SubProcess{
		Key:                   it.Key,
		Name:                  it.Name,
		Description:           it.Description,
		ScheduledDate:         it.ScheduledDate,
		ScheduledTime:         it.ScheduledTime,
		OTP:                   it.OTP,
		IsVerified:            it.IsVerified,
		PhotoOfTheIssue:       it.PhotoOfTheIssue,
		TechnicianReport:      it.TechnicianReport,
		MaterialEstimation:    it.MaterialEstimation,
		BillOfTheSummary:      it.BillOfTheSummary,
		Quotation:             it.Quotation,
		QuotationConfirmation: it.QuotationConfirmation,
		MaterialProcurement:   it.MaterialProcurement,
		JobExecution:          it.JobExecution,
		WorkVerified:          it.WorkVerified,
		ClientFeedback:        it.ClientFeedback,
		OrderCompleted:        it.OrderCompleted,
		IsCompleted:           it.IsCompleted,
		CompletedAt:           parseTimePtr(it.CompletedAt),
	}
	for _, t := range it.AssignedTechnicians {
		s.AssignedTechnicians = append(s.AssignedTechnicians, entities.AssignedTechnician{
			ID:         t.ID,
			Name:       t.Name,
			Type:       t.Type,
			AssignedAt: parseTime(t.AssignedAt),
		})
	}
	return s
}

func toBOMItem(b entities.BOM) bomItem {
	it := bomItem{
		ServiceType:       string(b.ServiceType),
		MaterialItems:     make([]materialItemItem, 0, len(b.MaterialItems)),
		MaterialCost:      decimalToString(b.MaterialCost),
		ServiceCharge:     decimalToString(b.ServiceCharge),
		AdditionalCharges: decimalToString(b.AdditionalCharges),
		Subtotal:          decimalToString(b.Subtotal),
		TaxPercentage:     decimalToString(b.TaxPercentage),
		TaxAmount:         decimalToString(b.TaxAmount),
		TotalPayable:      decimalToString(b.TotalPayable),
		GeneratedAt:       formatTime(b.GeneratedAt),
		BOMStatus:         string(b.BOMStatus),
		BOMApprovedBy:     b.BOMApprovedBy,
		BOMApprovedAt:     formatTimePtr(b.BOMApprovedAt),
		RejectionReason:   b.RejectionReason,
	}
	for _, m := range b.MaterialItems {
		it.MaterialItems = append(it.MaterialItems, materialItemItem{
			ItemName:  m.ItemName,
			Qty:       decimalToString(m.Qty),
			UnitPrice: decimalToString(m.UnitPrice),
		})
	}
	return it
}

func fromBOMItem(it bomItem) entities.BOM {
	b := entities.BOM{
		ServiceType:       entities.BOMServiceType(it.ServiceType),
		MaterialItems:     make([]entities.MaterialItem, 0, len(it.MaterialItems)),
		MaterialCost:      stringToDecimal(it.MaterialCost),
		ServiceCharge:     stringToDecimal(it.ServiceCharge),
		AdditionalCharges: stringToDecimal(it.AdditionalCharges),
		Subtotal:          stringToDecimal(it.Subtotal),
		TaxPercentage:     stringToDecimal(it.TaxPercentage),
		TaxAmount:         stringToDecimal(it.TaxAmount),
		TotalPayable:      stringToDecimal(it.TotalPayable),
		GeneratedAt:       parseTime(it.GeneratedAt),
		BOMStatus:         entities.BOMStatus(it.BOMStatus),
		BOMApprovedBy:     it.BOMApprovedBy,
		BOMApprovedAt:     parseTimePtr(it.BOMApprovedAt),
		RejectionReason:   it.RejectionReason,
	}
	for _, m := range it.MaterialItems {
		b.MaterialItems = append(b.MaterialItems, entities.MaterialItem{
			ItemName:  m.ItemName,
			Qty:       stringToDecimal(m.Qty),
			UnitPrice: stringToDecimal(m.UnitPrice),
		})
	}
	return b
}
