package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/motorcycle-registry/internal/converter"
	"github.com/you-humble/motorcycle-registry/internal/model"
	motorcyclev1 "github.com/you-humble/motorcycle-registry/pkg/api/motorcycle/v1"
)

const vinParam = "vin"

type MotorcycleService interface {
	List(ctx context.Context) ([]*model.Motorcycle, error)
	MotorcycleByVIN(ctx context.Context, vin string) (*model.Motorcycle, error)
	Create(ctx context.Context, params model.CreateMotorcycleParams) (*model.Motorcycle, error)
	Replace(ctx context.Context, pathVIN string, params model.ReplaceMotorcycleParams) (*model.Motorcycle, error)
	Patch(ctx context.Context, pathVIN string, params model.PatchMotorcycleParams) (*model.Motorcycle, error)
	DeleteByVIN(ctx context.Context, vin string) error
}

type handler struct {
	svc     MotorcycleService
	decoder *decoder
}

func NewMotorcycleHandler(service MotorcycleService) *handler {
	return &handler{
		svc:     service,
		decoder: newDecoder(),
	}
}

// Register mounts the motorcycle routes on r.
func (h *handler) Register(r chi.Router) {
	r.Route("/motorcycles", func(r chi.Router) {
		r.Get("/", h.ListMotorcycles)
		r.Post("/", h.CreateMotorcycle)
		r.Get("/{vin}", h.GetMotorcycleByVIN)
		r.Put("/{vin}", h.ReplaceMotorcycle)
		r.Patch("/{vin}", h.PatchMotorcycle)
		r.Delete("/{vin}", h.DeleteMotorcycleByVIN)
	})
}

func (h *handler) ListMotorcycles(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.MotorcyclesToAPI(list))
}

func (h *handler) GetMotorcycleByVIN(w http.ResponseWriter, r *http.Request) {
	vin, err := vinFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	m, err := h.svc.MotorcycleByVIN(r.Context(), vin)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.MotorcycleToAPI(m))
}

func (h *handler) CreateMotorcycle(w http.ResponseWriter, r *http.Request) {
	var req motorcyclev1.CreateMotorcycleRequest
	if err := h.decoder.decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	m, err := h.svc.Create(r.Context(), converter.CreateMotorcycleRequestToParams(&req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.MotorcycleToAPI(m))
}

func (h *handler) ReplaceMotorcycle(w http.ResponseWriter, r *http.Request) {
	vin, err := vinFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req motorcyclev1.ReplaceMotorcycleRequest
	if err := h.decoder.decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	m, err := h.svc.Replace(r.Context(), vin, converter.ReplaceMotorcycleRequestToParams(&req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.MotorcycleToAPI(m))
}

func (h *handler) PatchMotorcycle(w http.ResponseWriter, r *http.Request) {
	vin, err := vinFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req motorcyclev1.PatchMotorcycleRequest
	if err := h.decoder.decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	m, err := h.svc.Patch(r.Context(), vin, converter.PatchMotorcycleRequestToParams(&req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.MotorcycleToAPI(m))
}

func (h *handler) DeleteMotorcycleByVIN(w http.ResponseWriter, r *http.Request) {
	vin, err := vinFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.svc.DeleteByVIN(r.Context(), vin); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// vinFromPath returns the decoded {vin} segment. chi matches on RawPath when
// the request carries escapes like %2F, so the value has to be unescaped here.
func vinFromPath(r *http.Request) (string, error) {
	vin := chi.URLParam(r, vinParam)
	if r.URL.RawPath == "" {
		return vin, nil
	}

	unescaped, err := url.PathUnescape(vin)
	if err != nil {
		return "", fmt.Errorf("%w: malformed vin in path", model.ErrValidation)
	}
	return unescaped, nil
}
