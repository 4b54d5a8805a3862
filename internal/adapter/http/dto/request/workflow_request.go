package request

import (
	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase"
)

// ProcessStepRequest names the process (and optionally sub-process) to
// upsert. The remaining fields are a partial update of the sub-process.
type ProcessStepRequest struct {
	ProcessName    string `json:"process_name" binding:"required"`
	SubProcessName string `json:"sub_process_name"`
	entities.SubProcessPatch
}

func (r ProcessStepRequest) ToInput() usecase.ProcessStepInput {
	return usecase.ProcessStepInput{
		ProcessName:    r.ProcessName,
		SubProcessName: r.SubProcessName,
		Patch:          r.SubProcessPatch,
	}
}

type AssignTechniciansRequest struct {
	TechnicianIDs []string `json:"technician_ids" binding:"required"`
}

type ScheduleVisitRequest struct {
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
}

type VerifyOTPRequest struct {
	OTP string `json:"otp"`
}

type InitialObservationRequest struct {
	TechnicianReport string `json:"technician_report"`
}
