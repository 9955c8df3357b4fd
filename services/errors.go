package services

import "errors"

// Error taxonomy untuk core service; controller memetakan ke kode HTTP
var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrMealNotFound       = errors.New("meal not found in the global list")
	ErrMealUnavailable    = errors.New("meal not available")
	ErrForbidden          = errors.New("not authorized for this action")
	ErrInvalidTransition  = errors.New("invalid or unauthorized status update")
	ErrValidation         = errors.New("validation failed")
)
