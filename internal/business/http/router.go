package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	bizrepo "github.com/bizdir/backend/internal/business/repository"
	"github.com/bizdir/backend/internal/business/service"
	commonhttp "github.com/bizdir/backend/internal/common/http"
	"github.com/bizdir/backend/internal/common/logger"
	"github.com/bizdir/backend/internal/common/validation"
)

type Handler struct {
	biz      *service.BusinessService
	authGate func(http.Handler) http.Handler
	log      *logger.Logger
}

// NewHandler mounts the business routes. authGate wraps the mutating
// endpoints; pass nil to leave them open.
func NewHandler(
	biz *service.BusinessService,
	authGate func(http.Handler) http.Handler,
	requestTimeout time.Duration,
	log *logger.Logger,
) http.Handler {
	h := &Handler{biz: biz, authGate: authGate, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/biz", commonhttp.WithTimeout(requestTimeout)(h.handleCollection))
	mux.HandleFunc("/biz/", commonhttp.WithTimeout(requestTimeout)(h.handleItem))
	return mux
}

func (h *Handler) handleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.guarded(h.create)(w, r)
	default:
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) handleItem(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.guarded(h.update)(w, r)
	case http.MethodDelete:
		h.guarded(h.delete)(w, r)
	default:
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) guarded(next http.HandlerFunc) http.HandlerFunc {
	if h.authGate == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		h.authGate(next).ServeHTTP(w, r)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	businesses, err := h.biz.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toBusinessSummaryViews(businesses))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	business, err := h.biz.Get(r.Context(), itemID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toBusinessView(business))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var input service.BusinessInput
	if err := commonhttp.DecodeJSON(r, &input); err != nil {
		h.log.Warnf("create business failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	business, err := h.biz.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated,
		commonhttp.NewEnvelope("Business Added Successfully!", toBusinessView(business)))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var input service.BusinessInput
	if err := commonhttp.DecodeJSON(r, &input); err != nil {
		h.log.Warnf("update business failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	business, err := h.biz.Update(r.Context(), itemID(r), input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK,
		commonhttp.NewEnvelope("Business Updated Successfully!", toBusinessView(business)))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.biz.Delete(r.Context(), itemID(r)); err != nil {
		h.writeError(w, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK,
		commonhttp.NewEnvelope("Business Deleted Successfully!", nil))
}

func itemID(r *http.Request) string {
	return strings.TrimPrefix(r.URL.Path, "/biz/")
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if vErr, ok := validation.AsValidationError(err); ok {
		commonhttp.WriteError(w, http.StatusBadRequest, vErr.Error())
		return
	}

	switch {
	case errors.Is(err, validation.ErrInvalidID):
		commonhttp.WriteError(w, http.StatusNotFound, "Invalid ID")
	case errors.Is(err, bizrepo.ErrBusinessNotFound):
		commonhttp.WriteError(w, http.StatusNotFound, "Business with the ID does not exist")
	default:
		commonhttp.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
