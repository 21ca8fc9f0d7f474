package sales

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/salespulse/salespulse/internal/platform/httpx"
)

// ServiceAPI is the service contract the handler depends on.
type ServiceAPI interface {
	CreateSale(ctx context.Context, req CreateSaleRequest) (*Sale, error)
	ListSales(ctx context.Context) ([]Sale, error)
	GetSale(ctx context.Context, id string) (*Sale, error)
}

// Handler manages sale intake and listing endpoints.
type Handler struct {
	logger  *slog.Logger
	service ServiceAPI
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service ServiceAPI) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers sale routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sales", h.listSales)
	r.Post("/sales", h.createSale)
	r.Get("/sales/{id}", h.showSale)
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListSales(r.Context())
	if err != nil {
		h.logger.Error("list sales", slog.Any("error", err))
		httpx.RespondError(w, err, "Failed to fetch sales")
		return
	}
	if list == nil {
		list = []Sale{}
	}
	httpx.OK(w, list)
}

func (h *Handler) createSale(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid sale payload")
		return
	}

	sale, err := h.service.CreateSale(r.Context(), req)
	if err != nil {
		var verr validator.ValidationErrors
		switch {
		case errors.As(err, &verr):
			httpx.Fail(w, http.StatusBadRequest, "Invalid sale payload")
		case errors.Is(err, ErrAlreadyExists):
			httpx.RespondError(w, err, "Failed to record sale")
		default:
			h.logger.Error("create sale", slog.Any("error", err))
			httpx.RespondError(w, err, "Failed to record sale")
		}
		return
	}
	httpx.Created(w, sale)
}

func (h *Handler) showSale(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sale, err := h.service.GetSale(r.Context(), id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			h.logger.Error("get sale", slog.Any("error", err))
		}
		httpx.RespondError(w, err, "Failed to fetch sale")
		return
	}
	httpx.OK(w, sale)
}
