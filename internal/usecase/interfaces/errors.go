package interfaces

import "service_inventory/pkg"

// Errors adapters return for conditions the use cases branch on.
var (
	ErrVersionConflict    = pkg.NewKindError(pkg.ErrConflict, "order was modified concurrently, reload and retry")
	ErrAlreadyExists      = pkg.NewKindError(pkg.ErrConflict, "item already exists")
	ErrTechnicianNotFound = pkg.NewKindError(pkg.ErrNotFound, "technician not found")
	ErrLockNotAcquired    = pkg.NewKindError(pkg.ErrConflict, "order is being modified by another request")
	ErrLockUnavailable    = pkg.NewKindError(pkg.ErrDependencyUnavailable, "order lock store is unavailable")
)
