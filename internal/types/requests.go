package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// NavigateRequest asks the wizard to move to a step.
type NavigateRequest struct {
	// The pointer distinguishes step 0 from an absent field; the validator
	// dereferences pointers, so presence is checked by hand.
	Step *int `json:"step" validate:"omitempty,gte=0"`
}

// TourStatusRequest records an onboarding tour's outcome.
type TourStatusRequest struct {
	Tour   string `json:"tour" validate:"required"`
	Status string `json:"status" validate:"required,oneof=done skipped"`
}

// RemoveEntryRequest asks a list section to drop one entry.
type RemoveEntryRequest struct {
	Index *int `json:"index" validate:"omitempty,gte=0"`
}

// Validate validates the NavigateRequest using the validator.
func (r *NavigateRequest) Validate() error {
	if r.Step == nil {
		return fmt.Errorf("'step' is required")
	}
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TourStatusRequest using the validator.
func (r *TourStatusRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RemoveEntryRequest using the validator.
func (r *RemoveEntryRequest) Validate() error {
	if r.Index == nil {
		return fmt.Errorf("'index' is required")
	}
	validate := validator.New()
	return validate.Struct(r)
}
