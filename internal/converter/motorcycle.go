package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/motorcycle-registry/internal/model"
	motorcyclev1 "github.com/you-humble/motorcycle-registry/pkg/api/motorcycle/v1"
)

func CreateMotorcycleRequestToParams(req *motorcyclev1.CreateMotorcycleRequest) model.CreateMotorcycleParams {
	return model.CreateMotorcycleParams{
		VIN:            lo.FromPtr(req.VIN),
		MotorcycleType: lo.FromPtr(req.MotorcycleType),
		OdometerValue:  lo.FromPtr(req.OdometerValue),
		OdometerUnit:   lo.FromPtr(req.OdometerUnit),
		IsElectric:     lo.FromPtr(req.IsElectric),
		NumberOfSeats:  lo.FromPtr(req.NumberOfSeats),
	}
}

func ReplaceMotorcycleRequestToParams(req *motorcyclev1.ReplaceMotorcycleRequest) model.ReplaceMotorcycleParams {
	return model.ReplaceMotorcycleParams{
		VIN:            lo.FromPtr(req.VIN),
		MotorcycleType: lo.FromPtr(req.MotorcycleType),
		OdometerValue:  lo.FromPtr(req.OdometerValue),
		OdometerUnit:   lo.FromPtr(req.OdometerUnit),
		IsElectric:     lo.FromPtr(req.IsElectric),
		NumberOfSeats:  lo.FromPtr(req.NumberOfSeats),
	}
}

// PatchMotorcycleRequestToParams keeps nil for every field the client left
// out, so the update merges instead of clearing.
func PatchMotorcycleRequestToParams(req *motorcyclev1.PatchMotorcycleRequest) model.PatchMotorcycleParams {
	return model.PatchMotorcycleParams{
		VIN:            lo.FromPtr(req.VIN),
		MotorcycleType: req.MotorcycleType,
		OdometerValue:  req.OdometerValue,
		OdometerUnit:   req.OdometerUnit,
		IsElectric:     req.IsElectric,
		NumberOfSeats:  req.NumberOfSeats,
	}
}

func MotorcycleToAPI(m *model.Motorcycle) *motorcyclev1.Motorcycle {
	if m == nil {
		return nil
	}

	return &motorcyclev1.Motorcycle{
		ID:             m.ID,
		VIN:            m.VIN,
		MotorcycleType: m.MotorcycleType,
		OdometerValue:  m.OdometerValue,
		OdometerUnit:   m.OdometerUnit,
		IsElectric:     m.IsElectric,
		NumberOfSeats:  m.NumberOfSeats,
	}
}

func MotorcyclesToAPI(list []*model.Motorcycle) []motorcyclev1.Motorcycle {
	return lo.Map(list, func(m *model.Motorcycle, _ int) motorcyclev1.Motorcycle {
		return *MotorcycleToAPI(m)
	})
}
