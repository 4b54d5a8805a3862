package handlers

import (
	"net/http"

	"service_inventory/internal/adapter/http/dto/request"
	"service_inventory/internal/adapter/http/dto/response"
	"service_inventory/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler drives the process tree of an order.
type WorkflowHandler struct {
	workflow   usecase.IWorkflowUseCase
	assignment usecase.IAssignmentUseCase
}

func NewWorkflowHandler(workflow usecase.IWorkflowUseCase, assignment usecase.IAssignmentUseCase) *WorkflowHandler {
	return &WorkflowHandler{workflow: workflow, assignment: assignment}
}

// UpsertProcess godoc
// @Summary      Create or update a process step
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string                      true  "Order ID"
// @Param        step      body  request.ProcessStepRequest  true  "Step"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/processes [put]
func (h *WorkflowHandler) UpsertProcess(c *gin.Context) {
	var req request.ProcessStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	o, err := h.workflow.UpsertProcessStep(c.Request.Context(), c.Param("order_id"), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Process updated", response.FromOrder(o))
}

// AssignTechnicians godoc
// @Summary      Assign technicians to an order
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string                            true  "Order ID"
// @Param        body      body  request.AssignTechniciansRequest  true  "Technicians"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/assign-technicians [put]
func (h *WorkflowHandler) AssignTechnicians(c *gin.Context) {
	var req request.AssignTechniciansRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	o, err := h.assignment.AssignTechnicians(c.Request.Context(), c.Param("order_id"), req.TechnicianIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Technicians assigned", response.FromOrder(o))
}

// ScheduleVisit godoc
// @Summary      Schedule the site visit
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string                        true  "Order ID"
// @Param        body      body  request.ScheduleVisitRequest  true  "Schedule"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/schedule-visit [post]
func (h *WorkflowHandler) ScheduleVisit(c *gin.Context) {
	var req request.ScheduleVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	o, err := h.workflow.ScheduleVisit(c.Request.Context(), c.Param("order_id"), req.ScheduledDate, req.ScheduledTime)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Visit scheduled", response.FromOrder(o))
}

// GenerateArrivalOTP godoc
// @Summary      Issue the arrival OTP to the customer
// @Tags         workflow
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/arrival-otp [post]
func (h *WorkflowHandler) GenerateArrivalOTP(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	o, err := h.workflow.GenerateArrivalOTP(c.Request.Context(), p, c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Arrival OTP sent to the customer", response.FromOrder(o))
}

// GetArrivalOTP godoc
// @Summary      Read the pending arrival OTP
// @Tags         workflow
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/arrival-otp [get]
func (h *WorkflowHandler) GetArrivalOTP(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	otp, err := h.workflow.GetArrivalOTP(c.Request.Context(), p, c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Arrival OTP fetched", response.ArrivalOTPResponse{OrderID: c.Param("order_id"), OTP: otp})
}

// VerifyArrivalOTP godoc
// @Summary      Confirm technician arrival
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string                    true  "Order ID"
// @Param        body      body  request.VerifyOTPRequest  true  "OTP"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/arrival-otp/verify [post]
func (h *WorkflowHandler) VerifyArrivalOTP(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req request.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	o, err := h.workflow.VerifyArrivalOTP(c.Request.Context(), p, c.Param("order_id"), req.OTP)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Arrival verified", response.FromOrder(o))
}

// RecordInitialObservation godoc
// @Summary      Record the technician's initial observation
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string                             true  "Order ID"
// @Param        body      body  request.InitialObservationRequest  true  "Report"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/initial-observation [post]
func (h *WorkflowHandler) RecordInitialObservation(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req request.InitialObservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	o, err := h.workflow.RecordInitialObservation(c.Request.Context(), p, c.Param("order_id"), req.TechnicianReport)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Initial observation recorded", response.FromOrder(o))
}

// MarkTechnicianReportReceived godoc
// @Summary      Acknowledge the technician report
// @Tags         workflow
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.Envelope
// @Router       /orders/{order_id}/technician-report [post]
func (h *WorkflowHandler) MarkTechnicianReportReceived(c *gin.Context) {
	o, err := h.workflow.MarkTechnicianReportReceived(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Technician report received", response.FromOrder(o))
}
