package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrServiceNotFound = errors.New("service not found")

	// Availability errors
	ErrAvailabilityRange = errors.New("available count out of range")
	ErrNoCapacity        = errors.New("no remaining capacity")

	// Promo code errors. Validation rejections carry their reason through
	// booking.PromoRejectedError rather than a sentinel.
	ErrPromoCodeNotFound  = errors.New("promo code not found")
	ErrDuplicatePromoCode = errors.New("promo code already exists")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingCanceled = errors.New("booking already canceled")

	// Auth errors
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrPermissionDenied     = errors.New("permission denied")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
