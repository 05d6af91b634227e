package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/kasrt/internal/models"
)

func (s *Server) handleListResidents(w http.ResponseWriter, r *http.Request) {
	residents, err := s.ledger.ListResidents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if residents == nil {
		residents = []*models.Resident{}
	}
	writeJSON(w, http.StatusOK, residents)
}

func (s *Server) handleCreateResident(w http.ResponseWriter, r *http.Request) {
	var req models.ResidentUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	resident, err := s.ledger.CreateResident(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resident)
}

func (s *Server) handleUpdateResident(w http.ResponseWriter, r *http.Request) {
	var req models.ResidentUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.ledger.UpdateResident(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse)
}

func (s *Server) handleDeleteResident(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.DeleteResident(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse)
}
