package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/kasrt/internal/models"
)

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := s.ledger.ListPayments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}

func (s *Server) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	payment, err := s.ledger.CreatePayment(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (s *Server) handleUpdatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.ledger.UpdatePayment(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse)
}

func (s *Server) handleDeletePayment(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.DeletePayment(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse)
}
