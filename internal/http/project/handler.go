package project

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jgkirkwood/claimtrack/internal/claim"
	"github.com/jgkirkwood/claimtrack/internal/project"
)

type Handler struct {
	projects *project.Service
	claims   *claim.Service
}

func NewHandler(projects *project.Service, claims *claim.Service) *Handler {
	return &Handler{projects: projects, claims: claims}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Name == "" || len(req.Name) > 200 {
		respondError(w, http.StatusBadRequest, "name must be 1-200 characters")
		return
	}

	if req.Description == "" || len(req.Description) > 1000 {
		respondError(w, http.StatusBadRequest, "description must be 1-1000 characters")
		return
	}

	p, err := h.projects.Create(r.Context(), project.CreateParams{
		Name:        req.Name,
		Description: req.Description,
		UserID:      actorID(r),
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create project")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"project": toResponse(p, nil)})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}

	responses := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, toResponse(p, nil))
	}

	respondJSON(w, http.StatusOK, map[string]any{"projects": responses})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	p, err := h.projects.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			respondError(w, http.StatusNotFound, "project not found")
			return
		}

		respondError(w, http.StatusInternalServerError, "failed to load project")

		return
	}

	claims, err := h.claims.ListByProject(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load linked claims")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"project": toResponse(p, claims)})
}

type updateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.projects.Update(r.Context(), id, project.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			respondError(w, http.StatusNotFound, "project not found")
			return
		}

		respondError(w, http.StatusInternalServerError, "failed to update project")

		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"project": toResponse(p, nil)})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.projects.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete project")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func actorID(r *http.Request) *string {
	if id := r.Header.Get("X-User-Id"); id != "" {
		return &id
	}

	return nil
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
