package handlers

import (
	"net/http"

	"service_inventory/internal/adapter/http/dto/request"
	"service_inventory/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TemplateHandler serves the process template catalog.
type TemplateHandler struct {
	usecase usecase.IProcessTemplateUseCase
}

func NewTemplateHandler(uc usecase.IProcessTemplateUseCase) *TemplateHandler {
	return &TemplateHandler{usecase: uc}
}

// ListTemplates godoc
// @Summary      List process templates in a language
// @Tags         templates
// @Produce      json
// @Security     Bearer
// @Param        lang  query  string  false  "en or ta"
// @Success      200  {object}  response.Envelope
// @Router       /process-templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	ts, err := h.usecase.ListTemplates(c.Request.Context(), c.Query("lang"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Templates fetched", ts)
}

// GetTemplate godoc
// @Summary      Get a process template with every label
// @Tags         templates
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Template ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Router       /process-templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	t, err := h.usecase.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Template fetched", t)
}

// CreateTemplate godoc
// @Summary      Create a process template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        template  body  request.TemplateRequest  true  "Template"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /process-templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req request.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.usecase.CreateTemplate(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Template created", t)
}

// UpdateTemplate godoc
// @Summary      Update a process template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id        path  string                   true  "Template ID"
// @Param        template  body  request.TemplateRequest  true  "Template"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /process-templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	var req request.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.usecase.UpdateTemplate(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Template updated", t)
}

// DeleteTemplate godoc
// @Summary      Delete a process template
// @Tags         templates
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Template ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Router       /process-templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	if err := h.usecase.DeleteTemplate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Template deleted", nil)
}
