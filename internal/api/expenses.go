package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/kasrt/internal/models"
)

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.ledger.ListExpenses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if expenses == nil {
		expenses = []*models.Expense{}
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req models.ExpenseUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	expense, err := s.ledger.CreateExpense(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req models.ExpenseUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.ledger.UpdateExpense(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.DeleteExpense(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse)
}
