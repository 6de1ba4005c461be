package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"rechargetravels/internal/pilgrimage/service"
	httputil "rechargetravels/pkg/http"
	"rechargetravels/pkg/logger"
	"rechargetravels/pkg/model"
)

type PilgrimageHandler struct {
	service service.PilgrimageService
	log     *logger.Logger
}

func NewPilgrimageHandler(service service.PilgrimageService, log *logger.Logger) *PilgrimageHandler {
	return &PilgrimageHandler{
		service: service,
		log:     log,
	}
}

func (h *PilgrimageHandler) writeError(w http.ResponseWriter, op string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", op, "operation", "WriteError", "error", writeErr)
	}
}

func (h *PilgrimageHandler) writeSuccess(w http.ResponseWriter, op string, data any) {
	if err := httputil.WriteSuccess(w, data); err != nil {
		h.log.Error("failed to write success response", "handler", op, "operation", "WriteSuccess", "error", err)
	}
}

func (h *PilgrimageHandler) writeBadBody(w http.ResponseWriter, op string) {
	if err := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
		Error: "Invalid request body",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", op, "operation", "WriteJSON", "error", err)
	}
}

func (h *PilgrimageHandler) ListSites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sites, err := h.service.ListSites(r.Context())
	if err != nil {
		h.writeError(w, "ListSites", err)
		return
	}
	h.writeSuccess(w, "ListSites", sites)
}

func (h *PilgrimageHandler) CreateSite(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var site model.PilgrimageSite
	if err := json.NewDecoder(r.Body).Decode(&site); err != nil {
		h.writeBadBody(w, "CreateSite")
		return
	}
	if err := h.service.SaveSite(r.Context(), "", &site); err != nil {
		h.writeError(w, "CreateSite", err)
		return
	}
	if err := httputil.WriteCreated(w, site); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateSite", "operation", "WriteCreated", "error", err)
	}
}

func (h *PilgrimageHandler) UpdateSite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var site model.PilgrimageSite
	if err := json.NewDecoder(r.Body).Decode(&site); err != nil {
		h.writeBadBody(w, "UpdateSite")
		return
	}
	if err := h.service.SaveSite(r.Context(), ps.ByName("id"), &site); err != nil {
		h.writeError(w, "UpdateSite", err)
		return
	}
	h.writeSuccess(w, "UpdateSite", site)
}

func (h *PilgrimageHandler) DeleteSite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.DeleteSite(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "DeleteSite", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *PilgrimageHandler) ListTours(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tours, err := h.service.ListTours(r.Context())
	if err != nil {
		h.writeError(w, "ListTours", err)
		return
	}
	h.writeSuccess(w, "ListTours", tours)
}

func (h *PilgrimageHandler) CreateTour(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var tour model.PilgrimageTour
	if err := json.NewDecoder(r.Body).Decode(&tour); err != nil {
		h.writeBadBody(w, "CreateTour")
		return
	}
	if err := h.service.SaveTour(r.Context(), "", &tour); err != nil {
		h.writeError(w, "CreateTour", err)
		return
	}
	if err := httputil.WriteCreated(w, tour); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateTour", "operation", "WriteCreated", "error", err)
	}
}

func (h *PilgrimageHandler) UpdateTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var tour model.PilgrimageTour
	if err := json.NewDecoder(r.Body).Decode(&tour); err != nil {
		h.writeBadBody(w, "UpdateTour")
		return
	}
	if err := h.service.SaveTour(r.Context(), ps.ByName("id"), &tour); err != nil {
		h.writeError(w, "UpdateTour", err)
		return
	}
	h.writeSuccess(w, "UpdateTour", tour)
}

func (h *PilgrimageHandler) DeleteTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.DeleteTour(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "DeleteTour", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *PilgrimageHandler) ListFAQs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	faqs, err := h.service.ListFAQs(r.Context())
	if err != nil {
		h.writeError(w, "ListFAQs", err)
		return
	}
	h.writeSuccess(w, "ListFAQs", faqs)
}

func (h *PilgrimageHandler) CreateFAQ(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var faq model.PilgrimageFAQ
	if err := json.NewDecoder(r.Body).Decode(&faq); err != nil {
		h.writeBadBody(w, "CreateFAQ")
		return
	}
	if err := h.service.SaveFAQ(r.Context(), "", &faq); err != nil {
		h.writeError(w, "CreateFAQ", err)
		return
	}
	if err := httputil.WriteCreated(w, faq); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateFAQ", "operation", "WriteCreated", "error", err)
	}
}

func (h *PilgrimageHandler) UpdateFAQ(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var faq model.PilgrimageFAQ
	if err := json.NewDecoder(r.Body).Decode(&faq); err != nil {
		h.writeBadBody(w, "UpdateFAQ")
		return
	}
	if err := h.service.SaveFAQ(r.Context(), ps.ByName("id"), &faq); err != nil {
		h.writeError(w, "UpdateFAQ", err)
		return
	}
	h.writeSuccess(w, "UpdateFAQ", faq)
}

func (h *PilgrimageHandler) DeleteFAQ(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.DeleteFAQ(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "DeleteFAQ", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *PilgrimageHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/pilgrimage/sites", h.ListSites)
	router.POST("/api/v1/pilgrimage/sites", h.CreateSite)
	router.PUT("/api/v1/pilgrimage/sites/id/:id", h.UpdateSite)
	router.DELETE("/api/v1/pilgrimage/sites/id/:id", h.DeleteSite)

	router.GET("/api/v1/pilgrimage/tours", h.ListTours)
	router.POST("/api/v1/pilgrimage/tours", h.CreateTour)
	router.PUT("/api/v1/pilgrimage/tours/id/:id", h.UpdateTour)
	router.DELETE("/api/v1/pilgrimage/tours/id/:id", h.DeleteTour)

	router.GET("/api/v1/pilgrimage/faqs", h.ListFAQs)
	router.POST("/api/v1/pilgrimage/faqs", h.CreateFAQ)
	router.PUT("/api/v1/pilgrimage/faqs/id/:id", h.UpdateFAQ)
	router.DELETE("/api/v1/pilgrimage/faqs/id/:id", h.DeleteFAQ)
}
