package service

import (
	"context"
	"fmt"
	"time"

	"github.com/you-humble/motorcycle-registry/internal/model"
	"github.com/you-humble/motorcycle-registry/platform/logger"
)

type MotorcycleRepository interface {
	List(ctx context.Context) ([]*model.Motorcycle, error)
	MotorcycleByVIN(ctx context.Context, vin string) (*model.Motorcycle, error)
	Create(ctx context.Context, m *model.Motorcycle) (*model.Motorcycle, error)
	Replace(ctx context.Context, m *model.Motorcycle) (*model.Motorcycle, error)
	Patch(ctx context.Context, p model.PatchMotorcycleParams) (*model.Motorcycle, error)
	DeleteByVIN(ctx context.Context, vin string) error
}

type service struct {
	repo           MotorcycleRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewMotorcycleService(
	repository MotorcycleRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) List(ctx context.Context) ([]*model.Motorcycle, error) {
	const op string = "motorcycle.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	list, err := svc.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list motorcycles", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

func (svc *service) MotorcycleByVIN(ctx context.Context, vin string) (*model.Motorcycle, error) {
	const op string = "motorcycle.service.MotorcycleByVIN"
	log := logger.With(logger.String("vin", vin))

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	m, err := svc.repo.MotorcycleByVIN(ctx, vin)
	if err != nil {
		log.Error(ctx, "repository motorcycle by vin", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

func (svc *service) Create(ctx context.Context, params model.CreateMotorcycleParams) (*model.Motorcycle, error) {
	const op string = "motorcycle.service.Create"
	log := logger.With(logger.String("vin", params.VIN))

	if err := params.Validate(); err != nil {
		log.Warn(ctx, "wrong params", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	m, err := svc.repo.Create(ctx, params.ToMotorcycle())
	if err != nil {
		log.Error(ctx, "repository create motorcycle", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "motorcycle created", logger.Int64("id", m.ID))
	return m, nil
}

// Replace performs a full update. The VIN in params must equal pathVIN;
// the check runs before storage is touched.
func (svc *service) Replace(
	ctx context.Context,
	pathVIN string,
	params model.ReplaceMotorcycleParams,
) (*model.Motorcycle, error) {
	const op string = "motorcycle.service.Replace"
	log := logger.With(
		logger.String("path_vin", pathVIN),
		logger.String("payload_vin", params.VIN),
	)

	if params.VIN != pathVIN {
		log.Warn(ctx, "vin mismatch")
		return nil, fmt.Errorf("%s: %w", op, model.ErrVINMismatch)
	}
	if err := params.Validate(); err != nil {
		log.Warn(ctx, "wrong params", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	m, err := svc.repo.Replace(ctx, params.ToMotorcycle())
	if err != nil {
		log.Error(ctx, "repository replace motorcycle", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

// Patch merges the supplied fields into the stored record. Omitted fields
// keep their current values.
func (svc *service) Patch(
	ctx context.Context,
	pathVIN string,
	params model.PatchMotorcycleParams,
) (*model.Motorcycle, error) {
	const op string = "motorcycle.service.Patch"
	log := logger.With(
		logger.String("path_vin", pathVIN),
		logger.String("payload_vin", params.VIN),
	)

	if params.VIN != pathVIN {
		log.Warn(ctx, "vin mismatch")
		return nil, fmt.Errorf("%s: %w", op, model.ErrVINMismatch)
	}
	if err := params.Validate(); err != nil {
		log.Warn(ctx, "wrong params", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	timeout := svc.writeDBTimeout
	if params.IsEmpty() {
		timeout = svc.readDBTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	m, err := svc.repo.Patch(ctx, params)
	if err != nil {
		log.Error(ctx, "repository patch motorcycle", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

func (svc *service) DeleteByVIN(ctx context.Context, vin string) error {
	const op string = "motorcycle.service.DeleteByVIN"
	log := logger.With(logger.String("vin", vin))

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.DeleteByVIN(ctx, vin); err != nil {
		log.Error(ctx, "repository delete motorcycle", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "motorcycle deleted")
	return nil
}
