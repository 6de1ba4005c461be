package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"rechargetravels/internal/bookings/filter"
	"rechargetravels/internal/bookings/service"
	apperrors "rechargetravels/pkg/errors"
	httputil "rechargetravels/pkg/http"
	"rechargetravels/pkg/logger"
	"rechargetravels/pkg/model"
)

// BookingHandler exposes the booking dashboard over HTTP. Read
// endpoints serve off the in-memory snapshot; mutations write through
// and the service reloads before returning.
type BookingHandler struct {
	service service.DashboardService
	log     *logger.Logger
}

func NewBookingHandler(service service.DashboardService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

type bulkStatusRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &booking); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

// List serves the filtered enriched bookings plus the stats computed
// over the full snapshot. Filters narrow the table, never the cards.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	f, err := filterFromQuery(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	bookings := h.service.List(f)

	if err := httputil.WriteSuccess(w, map[string]any{
		"bookings": bookings,
		"count":    len(bookings),
		"stats":    h.service.Stats(),
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.Stats()); err != nil {
		h.log.Error("failed to write success response", "handler", "Stats", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var updates model.BookingUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Update(r.Context(), id, &updates); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, map[string]string{"id": id, "message": "Booking updated"}); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *BookingHandler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req bulkStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "BulkUpdateStatus", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.BulkUpdateStatus(r.Context(), req.IDs, req.Status); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "BulkUpdateStatus", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, map[string]any{
		"message": fmt.Sprintf("Updated %d bookings", len(req.IDs)),
		"status":  req.Status,
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "BulkUpdateStatus", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) BulkDelete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req bulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "BulkDelete", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.BulkDelete(r.Context(), req.IDs); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "BulkDelete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, map[string]any{
		"message": fmt.Sprintf("Deleted %d bookings", len(req.IDs)),
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "BulkDelete", "operation", "WriteSuccess", "error", err)
	}
}

// Refresh triggers a manual snapshot reload, coalescing with any load
// already in flight.
func (h *BookingHandler) Refresh(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.service.Refresh(r.Context()); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Refresh", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, map[string]string{"message": "Bookings refreshed"}); err != nil {
		h.log.Error("failed to write success response", "handler", "Refresh", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Export(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	f, err := filterFromQuery(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Export", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	body, filename, err := h.service.ExportCSV(f)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Export", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCSV(w, filename, body); err != nil {
		h.log.Error("failed to write CSV response", "handler", "Export", "operation", "WriteCSV", "error", err)
	}
}

// filterFromQuery maps query parameters onto the dashboard filter.
// Absent or "all" values leave the dimension inactive.
func filterFromQuery(r *http.Request) (filter.Filter, error) {
	query := r.URL.Query()

	f := filter.Filter{
		Search: query.Get("search"),
		Type:   query.Get("type"),
		Status: query.Get("status"),
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return filter.Filter{}, apperrors.InvalidInput(fmt.Sprintf("invalid from date: %s", fromStr))
		}
		f.From = &from
	}
	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return filter.Filter{}, apperrors.InvalidInput(fmt.Sprintf("invalid to date: %s", toStr))
		}
		f.To = &to
	}

	return f, nil
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings", h.List)
	router.GET("/api/v1/bookings/stats", h.Stats)
	router.GET("/api/v1/bookings/export", h.Export)
	router.POST("/api/v1/bookings/refresh", h.Refresh)
	router.POST("/api/v1/bookings/bulk/status", h.BulkUpdateStatus)
	router.POST("/api/v1/bookings/bulk/delete", h.BulkDelete)
	router.GET("/api/v1/bookings/id/:id", h.GetByID)
	router.PATCH("/api/v1/bookings/id/:id", h.Update)
	router.DELETE("/api/v1/bookings/id/:id", h.Delete)
}
