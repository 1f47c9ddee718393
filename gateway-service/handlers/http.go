package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/clearroute/payment-gateway/gateway-service/application"
	"github.com/clearroute/payment-gateway/gateway-service/domain"
	"github.com/go-chi/chi/v5"
)

// errorResponse is the JSON body for error replies
type errorResponse struct {
	Message string `json:"message"`
}

// PaymentHandlers contains payment HTTP handlers
type PaymentHandlers struct {
	processPayment *application.ProcessPayment
	getPayment     *application.GetPayment
}

// NewPaymentHandlers creates new payment handlers
func NewPaymentHandlers(
	processPayment *application.ProcessPayment,
	getPayment *application.GetPayment,
) *PaymentHandlers {
	return &PaymentHandlers{
		processPayment: processPayment,
		getPayment:     getPayment,
	}
}

// ProcessPayment handles payment submission requests. A rejected payment is
// a 400 with the masked result body; authorized and declined are 200.
func (h *PaymentHandlers) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var cmd application.ProcessPaymentCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	response, err := h.processPayment.Execute(r.Context(), &cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	status := http.StatusOK
	if response.Status == string(domain.PaymentStatusRejected) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, response)
}

// GetPayment handles payment retrieval requests
func (h *PaymentHandlers) GetPayment(w http.ResponseWriter, r *http.Request) {
	query := &application.GetPaymentQuery{
		PaymentID: chi.URLParam(r, "id"),
	}

	response, err := h.getPayment.Execute(r.Context(), query)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// RegisterRoutes registers payment routes
func (h *PaymentHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/payment", h.ProcessPayment)
		r.Get("/payment/{id}", h.GetPayment)
	})
}

// writeError translates domain errors into status codes. Anything unexpected
// becomes a generic 500 so internal detail never reaches the caller.
func (h *PaymentHandlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrPaymentNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "payment not found"})
	case errors.Is(err, domain.ErrBankUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Message: "acquiring bank service is currently unavailable, please try again later",
		})
	default:
		log.Printf("unexpected error handling payment request: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
