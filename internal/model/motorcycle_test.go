package model

import (
	"math"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMotorcycleParamsValidate(t *testing.T) {
	t.Parallel()

	valid := CreateMotorcycleParams{
		VIN:            "VIN123",
		MotorcycleType: "cruiser",
		OdometerValue:  1000,
		OdometerUnit:   "km",
		NumberOfSeats:  2,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(p *CreateMotorcycleParams)
		wantMsg string
	}{
		{name: "blank vin", mutate: func(p *CreateMotorcycleParams) { p.VIN = "  " }, wantMsg: "vin must be non-empty"},
		{name: "negative odometer", mutate: func(p *CreateMotorcycleParams) { p.OdometerValue = -1 }, wantMsg: "odometer_value"},
		{name: "empty unit", mutate: func(p *CreateMotorcycleParams) { p.OdometerUnit = "" }, wantMsg: "odometer_unit"},
		{name: "negative seats", mutate: func(p *CreateMotorcycleParams) { p.NumberOfSeats = -2 }, wantMsg: "number_of_seats"},
		{name: "seats over int4", mutate: func(p *CreateMotorcycleParams) { p.NumberOfSeats = math.MaxInt32 + 1 }, wantMsg: "number_of_seats must be <="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := valid
			tt.mutate(&p)

			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

func TestPatchMotorcycleParams(t *testing.T) {
	t.Parallel()

	p := PatchMotorcycleParams{VIN: "VIN123"}
	assert.True(t, p.IsEmpty())
	require.NoError(t, p.Validate())

	p.NumberOfSeats = lo.ToPtr(1)
	assert.False(t, p.IsEmpty())
	require.NoError(t, p.Validate())

	p.NumberOfSeats = lo.ToPtr(3_000_000_000)
	assert.ErrorIs(t, p.Validate(), ErrValidation)

	p.NumberOfSeats = lo.ToPtr(math.MaxInt32)
	require.NoError(t, p.Validate())

	p.OdometerValue = lo.ToPtr(-5.0)
	assert.ErrorIs(t, p.Validate(), ErrValidation)
}

func TestToMotorcycleLeavesIDUnset(t *testing.T) {
	t.Parallel()

	m := ReplaceMotorcycleParams{VIN: "VIN123", OdometerUnit: "mi", IsElectric: true}.ToMotorcycle()
	assert.Zero(t, m.ID)
	assert.Equal(t, "VIN123", m.VIN)
	assert.True(t, m.IsElectric)
}
