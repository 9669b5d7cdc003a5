package material

import "errors"

var (
	ErrMaterialNotFound    = errors.New("material not found")
	ErrMaterialNameExists  = errors.New("material name already exists")
	ErrInvalidMovementType = errors.New("invalid stock movement type")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInsufficientStock   = errors.New("insufficient stock for outward movement")
)
