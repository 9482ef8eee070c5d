package portfolio

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/vitrine/pkg/log"
	"github.com/pkg/errors"
)

type healthResponse struct {
	Status   string `json:"status"`
	Projects int    `json:"projects"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) serveHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, healthResponse{
		Status:   "ok",
		Projects: h.catalog.Len(),
	})
}

func (h *Handler) serveAPIProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.catalog.Projects())
}

func (h *Handler) serveAPIProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	project, exists := h.catalog.Get(id)
	if !exists {
		respondJSON(w, r, http.StatusNotFound, errorResponse{Error: "project not found"})
		return
	}

	respondJSON(w, r, http.StatusOK, project)
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.ErrorContext(r.Context(), "could not encode json response", log.Error(errors.WithStack(err)))
	}
}
