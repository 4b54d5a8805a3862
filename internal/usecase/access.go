package usecase

import (
	"slices"

	"service_inventory/internal/domain/entities"
)

// checkOrderOwner lets customers act on their own orders only. Staff pass.
func checkOrderOwner(principal entities.Principal, o *entities.Order) error {
	if principal.Role == entities.RoleCustomer && !principal.Admin() && o.CustomerID != principal.UserID {
		return ErrOrderNotOwned
	}
	return nil
}

// checkAssignedTechnician lets admins and the technicians allocated to the
// order through.
func checkAssignedTechnician(principal entities.Principal, o *entities.Order) error {
	if principal.Admin() {
		return nil
	}
	if principal.Role == entities.RoleTechnician && slices.Contains(o.AssignedTechnicianIDs(), principal.UserID) {
		return nil
	}
	return ErrNotAssigned
}

// managedSteps are completed only by their named operations, which enforce
// the ordering rules of the workflow.
var managedSteps = map[string]bool{
	entities.SubArrivalConfirmation:  true,
	entities.SubInitialObservation:   true,
	entities.SubMaterialEstimation:   true,
	entities.SubBOMPreparation:       true,
	entities.SubApprovalConfirmation: true,
}
