package handlers

import (
	"errors"
	"io"
	"net/http"

	"service_inventory/internal/adapter/http/dto/request"
	"service_inventory/internal/adapter/http/dto/response"
	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	formFilePicture = "picture_of_the_issue"
	formFileVoice   = "voice_record_of_the_issue"
)

// OrderHandler serves the order lifecycle outside the process tree.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Book a service
// @Tags         orders
// @Accept       json,mpfd
// @Produce      json
// @Security     Bearer
// @Param        order  body  request.CreateOrderRequest  true  "Order"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		respondBindError(c, err)
		return
	}

	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		if in.Picture, err = formUpload(c, formFilePicture); err != nil {
			respondBindError(c, err)
			return
		}
		defer closeUpload(in.Picture)
		if in.Voice, err = formUpload(c, formFileVoice); err != nil {
			respondBindError(c, err)
			return
		}
		defer closeUpload(in.Voice)
	}

	o, err := h.usecase.CreateOrder(c.Request.Context(), p, in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Order created", response.FromOrder(o))
}

// formUpload returns nil when the field is absent.
func formUpload(c *gin.Context, field string) (*usecase.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	return &usecase.Upload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
		Size:        fh.Size,
	}, nil
}

func closeUpload(u *usecase.Upload) {
	if u == nil {
		return
	}
	if cl, ok := u.Body.(io.Closer); ok {
		_ = cl.Close()
	}
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	o, err := h.usecase.GetOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if p.Role == entities.RoleCustomer && !p.Admin() && o.CustomerID != p.UserID {
		respondError(c, usecase.ErrOrderNotOwned)
		return
	}
	respondOK(c, http.StatusOK, "Order fetched", response.FromOrder(o))
}

// ListOrders godoc
// @Summary      List every order
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.Envelope
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Orders fetched", response.FromOrders(orders))
}

// ListCustomerOrders godoc
// @Summary      List the orders of a customer
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Param        customer_id  path  string  true  "Customer ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /customers/{customer_id}/orders [get]
func (h *OrderHandler) ListCustomerOrders(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orders, err := h.usecase.ListOrdersByCustomer(c.Request.Context(), p, c.Param("customer_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Orders fetched", response.FromOrders(orders))
}

// ArchiveOrder godoc
// @Summary      Move an order to the archive
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_id} [delete]
func (h *OrderHandler) ArchiveOrder(c *gin.Context) {
	archived, err := h.usecase.ArchiveOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Order archived", response.FromArchivedOrders([]entities.ArchivedOrder{archived})[0])
}

// ListArchivedOrders godoc
// @Summary      List the archived orders of a customer
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Param        customer_id  path  string  true  "Customer ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Router       /customers/{customer_id}/archived-orders [get]
func (h *OrderHandler) ListArchivedOrders(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orders, err := h.usecase.ListArchivedOrders(c.Request.Context(), p, c.Param("customer_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Archived orders fetched", response.FromArchivedOrders(orders))
}

// RateOrder godoc
// @Summary      Rate a completed order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string                    true  "Order ID"
// @Param        rating    body  request.RateOrderRequest  true  "Rating"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/rating [put]
func (h *OrderHandler) RateOrder(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req request.RateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	o, err := h.usecase.RateOrder(c.Request.Context(), p, c.Param("order_id"), req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Order rated", response.FromOrder(o))
}

// CompleteOrder godoc
// @Summary      Mark an order as completed
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.Envelope
// @Router       /orders/{order_id}/complete [post]
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	o, err := h.usecase.CompleteOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Order completed", response.FromOrder(o))
}

// CancelOrder godoc
// @Summary      Cancel a confirmed order
// @Tags         orders
// @Produce      json
// @Security     Bearer
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	o, err := h.usecase.CancelOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Order cancelled", response.FromOrder(o))
}
