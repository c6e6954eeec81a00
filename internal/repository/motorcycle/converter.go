package repository

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/you-humble/motorcycle-registry/internal/model"
)

func EntityToModel(e *MotorcycleEntity) *model.Motorcycle {
	if e == nil {
		return nil
	}

	out := &model.Motorcycle{
		ID:            e.ID,
		VIN:           e.VIN,
		OdometerValue: e.OdometerValue,
		OdometerUnit:  e.OdometerUnit,
		IsElectric:    e.IsElectric,
		NumberOfSeats: e.NumberOfSeats,
	}
	if e.MotorcycleType != nil {
		out.MotorcycleType = *e.MotorcycleType
	}

	return out
}

// replaceSet lists every mutable column. vin and id are never part of it.
func replaceSet(m *model.Motorcycle) sq.Eq {
	return sq.Eq{
		colMotorcycleType: m.MotorcycleType,
		colOdometerValue:  m.OdometerValue,
		colOdometerUnit:   m.OdometerUnit,
		colIsElectric:     m.IsElectric,
		colNumberOfSeats:  m.NumberOfSeats,
	}
}

func patchSet(p model.PatchMotorcycleParams) sq.Eq {
	set := sq.Eq{}

	if p.MotorcycleType != nil {
		set[colMotorcycleType] = *p.MotorcycleType
	}
	if p.OdometerValue != nil {
		set[colOdometerValue] = *p.OdometerValue
	}
	if p.OdometerUnit != nil {
		set[colOdometerUnit] = *p.OdometerUnit
	}
	if p.IsElectric != nil {
		set[colIsElectric] = *p.IsElectric
	}
	if p.NumberOfSeats != nil {
		set[colNumberOfSeats] = *p.NumberOfSeats
	}

	return set
}
