package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"rechargetravels/internal/heroslides/service"
	httputil "rechargetravels/pkg/http"
	"rechargetravels/pkg/logger"
	"rechargetravels/pkg/model"
)

type SlideHandler struct {
	service service.SlideService
	log     *logger.Logger
}

func NewSlideHandler(service service.SlideService, log *logger.Logger) *SlideHandler {
	return &SlideHandler{
		service: service,
		log:     log,
	}
}

func (h *SlideHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	slides, err := h.service.List(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, slides); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SlideHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slide, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, slide); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SlideHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var slide model.HeroSlide
	if err := json.NewDecoder(r.Body).Decode(&slide); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &slide); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, slide); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *SlideHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var slide model.HeroSlide
	if err := json.NewDecoder(r.Body).Decode(&slide); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Update(r.Context(), ps.ByName("id"), &slide); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, slide); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SlideHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *SlideHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/hero-slides", h.List)
	router.POST("/api/v1/hero-slides", h.Create)
	router.GET("/api/v1/hero-slides/id/:id", h.GetByID)
	router.PUT("/api/v1/hero-slides/id/:id", h.Update)
	router.DELETE("/api/v1/hero-slides/id/:id", h.Delete)
}
