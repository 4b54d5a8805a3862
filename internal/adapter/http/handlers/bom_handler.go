package handlers

import (
	"fmt"
	"net/http"

	"service_inventory/internal/adapter/http/dto/request"
	"service_inventory/internal/adapter/http/dto/response"
	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BOMHandler serves the bill of materials of an order.
type BOMHandler struct {
	usecase usecase.IBOMUseCase
}

func NewBOMHandler(uc usecase.IBOMUseCase) *BOMHandler {
	return &BOMHandler{usecase: uc}
}

// GenerateBOM godoc
// @Summary      Generate the bill of materials
// @Tags         bom
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string              true  "Order ID"
// @Param        bom       body  request.BOMRequest  true  "BOM"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/bom [post]
func (h *BOMHandler) GenerateBOM(c *gin.Context) {
	var req request.BOMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	o, err := h.usecase.GenerateBOM(c.Request.Context(), c.Param("order_id"), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "BOM generated", response.FromOrder(o))
}

// GetBOM godoc
// @Summary      Get the bill of materials
// @Tags         bom
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/bom [get]
func (h *BOMHandler) GetBOM(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	bom, err := h.usecase.GetBOM(c.Request.Context(), p, c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "BOM fetched", response.FromBOM(&bom))
}

// EditBOM godoc
// @Summary      Replace the bill of materials
// @Tags         bom
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string              true  "Order ID"
// @Param        bom       body  request.BOMRequest  true  "BOM"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/bom [put]
func (h *BOMHandler) EditBOM(c *gin.Context) {
	var req request.BOMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	o, err := h.usecase.EditBOM(c.Request.Context(), c.Param("order_id"), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "BOM updated", response.FromOrder(o))
}

// DeleteBOM godoc
// @Summary      Delete the bill of materials
// @Tags         bom
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/bom [delete]
func (h *BOMHandler) DeleteBOM(c *gin.Context) {
	o, err := h.usecase.DeleteBOM(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "BOM deleted", response.FromOrder(o))
}

// UpdateBOMStatus godoc
// @Summary      Approve or reject the bill of materials
// @Tags         bom
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string                    true  "Order ID"
// @Param        status    body  request.BOMStatusRequest  true  "Status"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/bom/status [patch]
func (h *BOMHandler) UpdateBOMStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req request.BOMStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	o, err := h.usecase.UpdateBOMStatus(c.Request.Context(), p, c.Param("order_id"), entities.BOMStatus(req.BOMStatus), req.RejectionReason)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "BOM status updated", response.FromOrder(o))
}

// ExportBOM godoc
// @Summary      Download the bill of materials as a spreadsheet
// @Tags         bom
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     Bearer
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/bom/export [get]
func (h *BOMHandler) ExportBOM(c *gin.Context) {
	data, filename, err := h.usecase.ExportBOM(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
