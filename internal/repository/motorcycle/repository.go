package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"

	"github.com/you-humble/motorcycle-registry/internal/model"
	"github.com/you-humble/motorcycle-registry/platform/db/pgerr"
)

const (
	tableMotorcycle = "vehicle.motorcycle"

	colID             = "id"
	colVIN            = "vin"
	colMotorcycleType = "motorcycle_type"
	colOdometerValue  = "odometer_value"
	colOdometerUnit   = "odometer_unit"
	colIsElectric     = "is_electric"
	colNumberOfSeats  = "number_of_seats"
)

var allColumns = []string{
	colID,
	colVIN,
	colMotorcycleType,
	colOdometerValue,
	colOdometerUnit,
	colIsElectric,
	colNumberOfSeats,
}

var returningAll = "RETURNING " + strings.Join(allColumns, ", ")

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewMotorcycleRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) List(ctx context.Context) ([]*model.Motorcycle, error) {
	const op = "repository.List"

	sqlStr, args, err := r.sb.
		Select(allColumns...).
		From(tableMotorcycle).
		OrderBy(colVIN + " DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	ents, err := pgx.CollectRows(rows, pgx.RowToStructByName[MotorcycleEntity])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return lo.Map(ents, func(e MotorcycleEntity, _ int) *model.Motorcycle {
		return EntityToModel(&e)
	}), nil
}

func (r *repository) MotorcycleByVIN(ctx context.Context, vin string) (*model.Motorcycle, error) {
	const op = "repository.MotorcycleByVIN"

	// LIMIT 2 is enough to tell "one" from "more than one".
	sqlStr, args, err := r.sb.
		Select(allColumns...).
		From(tableMotorcycle).
		Where(sq.Eq{colVIN: vin}).
		Limit(2).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	ents, err := pgx.CollectRows(rows, pgx.RowToStructByName[MotorcycleEntity])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	switch len(ents) {
	case 0:
		return nil, model.ErrMotorcycleNotFound
	case 1:
		return EntityToModel(&ents[0]), nil
	default:
		return nil, fmt.Errorf("%s: %w: vin %q", op, model.ErrAmbiguousResult, vin)
	}
}

func (r *repository) Create(ctx context.Context, m *model.Motorcycle) (*model.Motorcycle, error) {
	const op = "repository.Create"

	sqlStr, args, err := r.sb.
		Insert(tableMotorcycle).
		Columns(colVIN, colMotorcycleType, colOdometerValue, colOdometerUnit, colIsElectric, colNumberOfSeats).
		Values(m.VIN, m.MotorcycleType, m.OdometerValue, m.OdometerUnit, m.IsElectric, m.NumberOfSeats).
		Suffix(returningAll).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.queryOne(ctx, op, sqlStr, args)
}

// Replace overwrites every mutable column of the row identified by m.VIN in
// one statement. m.ID is ignored; the stored id is returned.
func (r *repository) Replace(ctx context.Context, m *model.Motorcycle) (*model.Motorcycle, error) {
	const op = "repository.Replace"

	sqlStr, args, err := r.sb.
		Update(tableMotorcycle).
		SetMap(replaceSet(m)).
		Where(sq.Eq{colVIN: m.VIN}).
		Suffix(returningAll).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.queryOne(ctx, op, sqlStr, args)
}

// Patch writes only the supplied columns; the rest keep their stored values.
func (r *repository) Patch(ctx context.Context, p model.PatchMotorcycleParams) (*model.Motorcycle, error) {
	const op = "repository.Patch"

	set := patchSet(p)
	if len(set) == 0 {
		return r.MotorcycleByVIN(ctx, p.VIN)
	}

	sqlStr, args, err := r.sb.
		Update(tableMotorcycle).
		SetMap(set).
		Where(sq.Eq{colVIN: p.VIN}).
		Suffix(returningAll).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.queryOne(ctx, op, sqlStr, args)
}

func (r *repository) DeleteByVIN(ctx context.Context, vin string) error {
	const op = "repository.DeleteByVIN"

	sqlStr, args, err := r.sb.
		Delete(tableMotorcycle).
		Where(sq.Eq{colVIN: vin}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	if ct.RowsAffected() == 0 {
		return model.ErrMotorcycleNotFound
	}

	return nil
}

func (r *repository) queryOne(ctx context.Context, op, sqlStr string, args []any) (*model.Motorcycle, error) {
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	ent, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[MotorcycleEntity])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return EntityToModel(&ent), nil
}

func mapError(err error) error {
	switch pgerr.Classify(err) {
	case pgerr.NoRows:
		return model.ErrMotorcycleNotFound
	case pgerr.TooManyRows:
		return model.ErrAmbiguousResult
	case pgerr.UniqueViolation:
		return fmt.Errorf("%w: vin already exists", model.ErrMotorcycleConflict)
	case pgerr.CheckViolation, pgerr.NotNullViolation:
		return fmt.Errorf("%w: constraint %s", model.ErrValidation, pgerr.Constraint(err))
	case pgerr.Unavailable:
		return fmt.Errorf("%w: %w", model.ErrStorageUnavailable, err)
	default:
		return err
	}
}
