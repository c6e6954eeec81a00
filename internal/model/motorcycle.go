package model

import (
	"fmt"
	"math"
	"strings"
)

// Motorcycle is the persisted shape. ID belongs to the storage layer and is
// never used to address a record from outside.
type Motorcycle struct {
	ID             int64
	VIN            string
	MotorcycleType string
	OdometerValue  float64
	OdometerUnit   string
	IsElectric     bool
	NumberOfSeats  int
}

type CreateMotorcycleParams struct {
	VIN            string
	MotorcycleType string
	OdometerValue  float64
	OdometerUnit   string
	IsElectric     bool
	NumberOfSeats  int
}

// ReplaceMotorcycleParams carries a full update. Every field is written.
type ReplaceMotorcycleParams struct {
	VIN            string
	MotorcycleType string
	OdometerValue  float64
	OdometerUnit   string
	IsElectric     bool
	NumberOfSeats  int
}

// PatchMotorcycleParams carries a partial update. A nil field keeps the
// stored value.
type PatchMotorcycleParams struct {
	VIN            string
	MotorcycleType *string
	OdometerValue  *float64
	OdometerUnit   *string
	IsElectric     *bool
	NumberOfSeats  *int
}

func (p PatchMotorcycleParams) IsEmpty() bool {
	return p.MotorcycleType == nil &&
		p.OdometerValue == nil &&
		p.OdometerUnit == nil &&
		p.IsElectric == nil &&
		p.NumberOfSeats == nil
}

func (p CreateMotorcycleParams) Validate() error {
	return validateFields(p.VIN, &p.OdometerValue, &p.OdometerUnit, &p.NumberOfSeats)
}

func (p ReplaceMotorcycleParams) Validate() error {
	return validateFields(p.VIN, &p.OdometerValue, &p.OdometerUnit, &p.NumberOfSeats)
}

func (p PatchMotorcycleParams) Validate() error {
	return validateFields(p.VIN, p.OdometerValue, p.OdometerUnit, p.NumberOfSeats)
}

func (p CreateMotorcycleParams) ToMotorcycle() *Motorcycle {
	return &Motorcycle{
		VIN:            p.VIN,
		MotorcycleType: p.MotorcycleType,
		OdometerValue:  p.OdometerValue,
		OdometerUnit:   p.OdometerUnit,
		IsElectric:     p.IsElectric,
		NumberOfSeats:  p.NumberOfSeats,
	}
}

func (p ReplaceMotorcycleParams) ToMotorcycle() *Motorcycle {
	return &Motorcycle{
		VIN:            p.VIN,
		MotorcycleType: p.MotorcycleType,
		OdometerValue:  p.OdometerValue,
		OdometerUnit:   p.OdometerUnit,
		IsElectric:     p.IsElectric,
		NumberOfSeats:  p.NumberOfSeats,
	}
}

// validateFields checks the structural rules shared by every input shape.
// nil pointers are fields that were not supplied.
func validateFields(vin string, odometerValue *float64, odometerUnit *string, seats *int) error {
	if strings.TrimSpace(vin) == "" {
		return fmt.Errorf("%w: vin must be non-empty", ErrValidation)
	}
	if odometerValue != nil && *odometerValue < 0 {
		return fmt.Errorf("%w: odometer_value must be non-negative", ErrValidation)
	}
	if odometerUnit != nil && strings.TrimSpace(*odometerUnit) == "" {
		return fmt.Errorf("%w: odometer_unit must be non-empty", ErrValidation)
	}
	if seats != nil && *seats < 0 {
		return fmt.Errorf("%w: number_of_seats must be non-negative", ErrValidation)
	}
	// the column is a 32-bit INTEGER
	if seats != nil && *seats > math.MaxInt32 {
		return fmt.Errorf("%w: number_of_seats must be <= %d", ErrValidation, math.MaxInt32)
	}
	return nil
}
