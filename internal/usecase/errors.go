package usecase

import "service_inventory/pkg"

var (
	ErrInvalidOrderID     = pkg.NewKindError(pkg.ErrInvalidArgument, "invalid order id")
	ErrOrderNotFound      = pkg.NewKindError(pkg.ErrNotFound, "order not found")
	ErrNoOrdersFound      = pkg.NewKindError(pkg.ErrNotFound, "no orders found for this customer")
	ErrNoArchivedOrders   = pkg.NewKindError(pkg.ErrNotFound, "no archived orders found for this customer")
	ErrInvalidServiceType = pkg.NewKindError(pkg.ErrInvalidArgument, "service type must be general, fixed or custom")
	ErrInvalidOrderType   = pkg.NewKindError(pkg.ErrInvalidArgument, "invalid order type")
	ErrInvalidScope       = pkg.NewKindError(pkg.ErrInvalidArgument, "service scope must be Home or Industry")
	ErrMissingField       = pkg.NewKindError(pkg.ErrInvalidArgument, "missing required field")
	ErrServiceUnavailable = pkg.NewKindError(pkg.ErrInvalidArgument, "service is not available")
	ErrOrderIDExhausted   = pkg.NewKindError(pkg.ErrConflict, "could not allocate a unique order id")
	ErrUploadFailed       = pkg.NewKindError(pkg.ErrDependencyUnavailable, "file upload failed")
	ErrInvalidRating      = pkg.NewKindError(pkg.ErrInvalidArgument, "rating must be between 1 and 5")
	ErrOrderNotOwned      = pkg.NewKindError(pkg.ErrForbidden, "order does not belong to the caller")
	ErrOrderNotCompleted  = pkg.NewKindError(pkg.ErrPreconditionFailed, "only completed orders can be rated")
	ErrAlreadyRated       = pkg.NewKindError(pkg.ErrConflict, "order has already been rated")
	ErrOrderNotConfirmed  = pkg.NewKindError(pkg.ErrPreconditionFailed, "order is not in Confirmed status")

	ErrProcessNameRequired = pkg.NewKindError(pkg.ErrInvalidArgument, "process name is required")
	ErrScheduleRequired    = pkg.NewKindError(pkg.ErrInvalidArgument, "scheduled date and time are required")
	ErrOTPRequired         = pkg.NewKindError(pkg.ErrInvalidArgument, "otp is required")
	ErrOTPNotGenerated     = pkg.NewKindError(pkg.ErrPreconditionFailed, "arrival otp has not been generated")
	ErrOTPMismatch         = pkg.NewKindError(pkg.ErrInvalidArgument, "invalid otp")
	ErrArrivalNotVerified  = pkg.NewKindError(pkg.ErrPreconditionFailed, "technician arrival has not been verified")
	ErrReportRequired      = pkg.NewKindError(pkg.ErrInvalidArgument, "technician report is required")
	ErrNotAssigned         = pkg.NewKindError(pkg.ErrForbidden, "technician is not assigned to this order")
	ErrManagedStep         = pkg.NewKindError(pkg.ErrForbidden, "this step is updated by its own workflow operation")

	ErrObservationIncomplete = pkg.NewKindError(pkg.ErrPreconditionFailed, "initial observation is not completed")
	ErrBOMNotFound           = pkg.NewKindError(pkg.ErrNotFound, "bill of materials not found")
	ErrBOMLocked             = pkg.NewKindError(pkg.ErrForbidden, "bill of materials was approved by the client and can no longer be changed")
	ErrInvalidBOMStatus      = pkg.NewKindError(pkg.ErrInvalidArgument, "bom status must be Approved or Rejected")
	ErrNoFixedPrice          = pkg.NewKindError(pkg.ErrPreconditionFailed, "order has no fixed service price")
	ErrBOMAlreadyDecided     = pkg.NewKindError(pkg.ErrConflict, "bill of materials was already approved or rejected")

	ErrNoTechnicians         = pkg.NewKindError(pkg.ErrInvalidArgument, "at least one technician id is required")
	ErrTechnicianBusy        = pkg.NewKindError(pkg.ErrConflict, "technician is busy")
	ErrTechnicianUnavailable = pkg.NewKindError(pkg.ErrDependencyUnavailable, "technician service unavailable")

	ErrTemplateNotFound  = pkg.NewKindError(pkg.ErrNotFound, "process template not found")
	ErrTemplateKeyExists = pkg.NewKindError(pkg.ErrConflict, "a process template with this key already exists")
	ErrInvalidTemplate   = pkg.NewKindError(pkg.ErrInvalidArgument, "process template key and english name are required")

	ErrBillingPaymentNotFound         = pkg.NewKindError(pkg.ErrNotFound, "billing payment not found")
	ErrInvalidMPPayload               = pkg.NewKindError(pkg.ErrInvalidArgument, "invalid mercado pago payload")
	ErrBOMNotApproved                 = pkg.NewKindError(pkg.ErrPreconditionFailed, "bill of materials is not approved")
	ErrPaymentGatewayBadRequest       = pkg.NewKindError(pkg.ErrInvalidArgument, "payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = pkg.NewKindError(pkg.ErrDependencyUnavailable, "payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = pkg.NewKindError(pkg.ErrInvalidArgument, "payment gateway customer not found")
	ErrPaymentGatewayUnavailable      = pkg.NewKindError(pkg.ErrDependencyUnavailable, "payment gateway unavailable")
)
