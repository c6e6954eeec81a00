package http

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/motorcycle-registry/internal/model"
	service "github.com/you-humble/motorcycle-registry/internal/service/motorcycle"
	motorcyclev1 "github.com/you-humble/motorcycle-registry/pkg/api/motorcycle/v1"
)

// memRepository keeps records in a map keyed by vin.
type memRepository struct {
	mu     sync.Mutex
	nextID int64
	byVIN  map[string]model.Motorcycle
}

func newMemRepository() *memRepository {
	return &memRepository{byVIN: make(map[string]model.Motorcycle)}
}

func (r *memRepository) List(context.Context) ([]*model.Motorcycle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*model.Motorcycle, 0, len(r.byVIN))
	for _, m := range r.byVIN {
		out = append(out, &m)
	}
	slices.SortFunc(out, func(a, b *model.Motorcycle) int { return strings.Compare(b.VIN, a.VIN) })
	return out, nil
}

func (r *memRepository) MotorcycleByVIN(_ context.Context, vin string) (*model.Motorcycle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.byVIN[vin]
	if !ok {
		return nil, model.ErrMotorcycleNotFound
	}
	return &m, nil
}

func (r *memRepository) Create(_ context.Context, m *model.Motorcycle) (*model.Motorcycle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byVIN[m.VIN]; ok {
		return nil, model.ErrMotorcycleConflict
	}
	r.nextID++
	stored := *m
	stored.ID = r.nextID
	r.byVIN[m.VIN] = stored
	return &stored, nil
}

func (r *memRepository) Replace(_ context.Context, m *model.Motorcycle) (*model.Motorcycle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byVIN[m.VIN]
	if !ok {
		return nil, model.ErrMotorcycleNotFound
	}
	stored := *m
	stored.ID = cur.ID
	r.byVIN[m.VIN] = stored
	return &stored, nil
}

func (r *memRepository) Patch(_ context.Context, p model.PatchMotorcycleParams) (*model.Motorcycle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byVIN[p.VIN]
	if !ok {
		return nil, model.ErrMotorcycleNotFound
	}
	if p.MotorcycleType != nil {
		cur.MotorcycleType = *p.MotorcycleType
	}
	if p.OdometerValue != nil {
		cur.OdometerValue = *p.OdometerValue
	}
	if p.OdometerUnit != nil {
		cur.OdometerUnit = *p.OdometerUnit
	}
	if p.IsElectric != nil {
		cur.IsElectric = *p.IsElectric
	}
	if p.NumberOfSeats != nil {
		cur.NumberOfSeats = *p.NumberOfSeats
	}
	r.byVIN[p.VIN] = cur
	return &cur, nil
}

func (r *memRepository) DeleteByVIN(_ context.Context, vin string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byVIN[vin]; !ok {
		return model.ErrMotorcycleNotFound
	}
	delete(r.byVIN, vin)
	return nil
}

func TestMotorcycleLifecycle(t *testing.T) {
	t.Parallel()

	svc := service.NewMotorcycleService(newMemRepository(), time.Second, time.Second)
	h := newRouter(svc)

	rec := do(t, h, http.MethodPost, "/motorcycles", fullBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[motorcyclev1.Motorcycle](t, rec)
	assert.NotZero(t, created.ID)

	rec = do(t, h, http.MethodPost, "/motorcycles", fullBody)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodGet, "/motorcycles/VIN123", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeBody[motorcyclev1.Motorcycle](t, rec))

	rec = do(t, h, http.MethodPatch, "/motorcycles/VIN123", `{"vin":"VIN123","number_of_seats":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	patched := decodeBody[motorcyclev1.Motorcycle](t, rec)
	assert.Equal(t, 1, patched.NumberOfSeats)
	assert.Equal(t, created.ID, patched.ID)
	assert.Equal(t, created.MotorcycleType, patched.MotorcycleType)
	assert.Equal(t, created.OdometerValue, patched.OdometerValue)
	assert.Equal(t, created.OdometerUnit, patched.OdometerUnit)

	rec = do(t, h, http.MethodPut, "/motorcycles/OTHER", fullBody)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/motorcycles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]motorcyclev1.Motorcycle](t, rec), 1)

	rec = do(t, h, http.MethodDelete, "/motorcycles/VIN123", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/motorcycles/VIN123", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/motorcycles/VIN123", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
