package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"rechargetravels/internal/payouts/service"
	httputil "rechargetravels/pkg/http"
	"rechargetravels/pkg/logger"
)

type PayoutHandler struct {
	service service.PayoutService
	log     *logger.Logger
}

func NewPayoutHandler(service service.PayoutService, log *logger.Logger) *PayoutHandler {
	return &PayoutHandler{
		service: service,
		log:     log,
	}
}

type completeInstallmentRequest struct {
	TransactionID string `json:"transaction_id"`
}

func (h *PayoutHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	schedules, err := h.service.List(r.Context(), r.URL.Query().Get("owner_id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, schedules); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PayoutHandler) Stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats, err := h.service.Stats(r.Context(), r.URL.Query().Get("owner_id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Stats", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, stats); err != nil {
		h.log.Error("failed to write success response", "handler", "Stats", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PayoutHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	schedule, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, schedule); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PayoutHandler) CompleteInstallment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req completeInstallmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "CompleteInstallment", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.CompleteInstallment(r.Context(), ps.ByName("id"), ps.ByName("slot"), req.TransactionID); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CompleteInstallment", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, map[string]string{"message": "Installment completed"}); err != nil {
		h.log.Error("failed to write success response", "handler", "CompleteInstallment", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PayoutHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/payouts", h.List)
	router.GET("/api/v1/payouts/stats", h.Stats)
	router.GET("/api/v1/payouts/id/:id", h.GetByID)
	router.POST("/api/v1/payouts/id/:id/installments/:slot/complete", h.CompleteInstallment)
}
