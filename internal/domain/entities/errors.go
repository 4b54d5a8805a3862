package entities

import "service_inventory/pkg"

var (
	ErrInvalidBOMServiceType      = pkg.NewKindError(pkg.ErrInvalidArgument, "invalid BOM service type (general|custom)")
	ErrInvalidBOMAmount           = pkg.NewKindError(pkg.ErrInvalidArgument, "BOM amounts must not be negative")
	ErrInvalidTaxPercentage       = pkg.NewKindError(pkg.ErrInvalidArgument, "tax percentage must not be negative")
	ErrInvalidMaterialProcurement = pkg.NewKindError(pkg.ErrInvalidArgument, "material procurement must be 'not yet' or 'completed'")
	ErrInvalidJobExecution        = pkg.NewKindError(pkg.ErrInvalidArgument, "job execution must be 'not yet started', 'processing' or 'completed'")
)
