package request

import (
	"errors"
	"strings"
	"time"

	"service_inventory/internal/usecase"
)

var ErrInvalidServiceDate = errors.New("service_required_date must be YYYY-MM-DD or RFC3339")

// CreateOrderRequest is accepted as JSON or as multipart/form-data. Files are
// read separately from the multipart form.
type CreateOrderRequest struct {
	ServiceType         string `json:"service_type" form:"service_type" binding:"required"`
	OrderType           string `json:"order_type" form:"order_type"`
	ServiceScope        string `json:"service_scope" form:"service_scope" binding:"required"`
	Category            string `json:"category" form:"category"`
	ServiceName         string `json:"service_name" form:"service_name"`
	ServiceRequiredDate string `json:"service_required_date" form:"service_required_date" binding:"required"`
	IssueDescription    string `json:"issue_description" form:"issue_description"`
	IssueLocation       string `json:"issue_location" form:"issue_location"`

	ServicePrice     *float64 `json:"service_price" form:"service_price"`
	Discount         *float64 `json:"discount" form:"discount"`
	Tax              *float64 `json:"tax" form:"tax"`
	ExpectedBudget   *float64 `json:"expected_budget" form:"expected_budget"`
	MaterialRequired bool     `json:"material_required" form:"material_required"`
}

func (r CreateOrderRequest) ToInput() (usecase.CreateOrderInput, error) {
	date, err := parseServiceDate(r.ServiceRequiredDate)
	if err != nil {
		return usecase.CreateOrderInput{}, err
	}
	return usecase.CreateOrderInput{
		ServiceType:         r.ServiceType,
		OrderType:           r.OrderType,
		Scope:               r.ServiceScope,
		Category:            r.Category,
		ServiceName:         r.ServiceName,
		ServiceRequiredDate: date,
		IssueDescription:    r.IssueDescription,
		IssueLocation:       r.IssueLocation,
		ServicePrice:        r.ServicePrice,
		Discount:            r.Discount,
		Tax:                 r.Tax,
		ExpectedBudget:      r.ExpectedBudget,
		MaterialRequired:    r.MaterialRequired,
	}, nil
}

func parseServiceDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidServiceDate
}

type RateOrderRequest struct {
	Rating int `json:"rating" binding:"required"`
}
