package response

import (
	"time"

	"service_inventory/internal/domain/entities"
)

// OrderResponse is the order with its BOM rendered by BOMResponse. Arrival
// codes are never part of it; the customer reads them from ArrivalOTPResponse.
type OrderResponse struct {
	entities.Order
	BillOfMaterial *BOMResponse `json:"bill_of_material"`
}

func FromOrder(o entities.Order) OrderResponse {
	o.Processes = withoutOTP(o.Processes)
	return OrderResponse{Order: o, BillOfMaterial: FromBOM(o.BillOfMaterial)}
}

// withoutOTP copies the process tree with the arrival codes cleared.
func withoutOTP(ps []entities.Process) []entities.Process {
	if ps == nil {
		return nil
	}
	out := make([]entities.Process, len(ps))
	for i, p := range ps {
		subs := make([]entities.SubProcess, len(p.SubProcesses))
		copy(subs, p.SubProcesses)
		for j := range subs {
			subs[j].OTP = ""
		}
		p.SubProcesses = subs
		out[i] = p
	}
	return out
}

func FromOrders(os []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(os))
	for _, o := range os {
		out = append(out, FromOrder(o))
	}
	return out
}

type ArchivedOrderResponse struct {
	OrderResponse
	DeletedAt time.Time `json:"deleted_at"`
}

func FromArchivedOrders(os []entities.ArchivedOrder) []ArchivedOrderResponse {
	out := make([]ArchivedOrderResponse, 0, len(os))
	for _, o := range os {
		out = append(out, ArchivedOrderResponse{OrderResponse: FromOrder(o.Order), DeletedAt: o.DeletedAt})
	}
	return out
}

// ArrivalOTPResponse carries the code the customer reads out to the
// technician on arrival.
type ArrivalOTPResponse struct {
	OrderID string `json:"order_id"`
	OTP     string `json:"otp"`
}
