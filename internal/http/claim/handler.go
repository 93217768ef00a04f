package claim

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jgkirkwood/claimtrack/internal/claim"
	"github.com/jgkirkwood/claimtrack/internal/project"
)

type Handler struct {
	claims   *claim.Service
	projects *project.Service
}

func NewHandler(claims *claim.Service, projects *project.Service) *Handler {
	return &Handler{claims: claims, projects: projects}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/projects", h.linkProjects)
	r.Delete("/{id}/projects/{projectId}", h.unlinkProject)
}

type periodRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (p periodRequest) parse() (claim.Period, error) {
	start, err := time.Parse(time.DateOnly, p.StartDate)
	if err != nil {
		return claim.Period{}, errors.New("startDate must be a YYYY-MM-DD date")
	}

	end, err := time.Parse(time.DateOnly, p.EndDate)
	if err != nil {
		return claim.Period{}, errors.New("endDate must be a YYYY-MM-DD date")
	}

	if !start.Before(end) {
		return claim.Period{}, errors.New("startDate must be before endDate")
	}

	return claim.Period{Start: start, End: end}, nil
}

type createClaimRequest struct {
	CompanyName string        `json:"companyName"`
	ClaimPeriod periodRequest `json:"claimPeriod"`
	Amount      int64         `json:"amount"`
	ProjectIDs  []uuid.UUID   `json:"projectIds,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	period, err := req.ClaimPeriod.parse()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.CompanyName == "" || len(req.CompanyName) > 200 {
		respondError(w, http.StatusBadRequest, "companyName must be 1-200 characters")
		return
	}

	if req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "amount must be a positive number of pence")
		return
	}

	c, err := h.claims.Create(r.Context(), claim.CreateParams{
		CompanyName: req.CompanyName,
		Period:      period,
		Amount:      req.Amount,
		UserID:      actorID(r),
		ProjectIDs:  req.ProjectIDs,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create claim")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"claim": toResponse(c, nil)})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := claim.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		status := claim.Status(s)
		if !status.Valid() {
			respondError(w, http.StatusBadRequest, "unknown status filter")
			return
		}

		filter.Status = &status
	}

	claims, err := h.claims.List(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list claims")
		return
	}

	responses := make([]claimResponse, 0, len(claims))

	for _, c := range claims {
		projects, err := h.projects.ListByIDs(r.Context(), c.ProjectIDs)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to load linked projects")
			return
		}

		responses = append(responses, toResponse(c, projects))
	}

	respondJSON(w, http.StatusOK, map[string]any{"claims": responses})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid claim id")
		return
	}

	c, err := h.claims.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, claim.ErrNotFound) {
			respondError(w, http.StatusNotFound, "claim not found")
			return
		}

		respondError(w, http.StatusInternalServerError, "failed to load claim")

		return
	}

	projects, err := h.projects.ListByIDs(r.Context(), c.ProjectIDs)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load linked projects")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"claim": toResponse(c, projects)})
}

type updateClaimRequest struct {
	CompanyName *string        `json:"companyName,omitempty"`
	ClaimPeriod *periodRequest `json:"claimPeriod,omitempty"`
	Amount      *int64         `json:"amount,omitempty"`
	Status      *claim.Status  `json:"status,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid claim id")
		return
	}

	var req updateClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := claim.UpdateParams{
		CompanyName: req.CompanyName,
		Amount:      req.Amount,
	}

	if req.ClaimPeriod != nil {
		period, err := req.ClaimPeriod.parse()
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		params.Period = &period
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			respondError(w, http.StatusBadRequest, "unknown status")
			return
		}

		params.Status = req.Status
	}

	// Which transitions a given role may trigger is client-side workflow
	// guidance only; the endpoint accepts any status value on purpose.
	c, err := h.claims.Update(r.Context(), id, params, actorID(r))
	if err != nil {
		if errors.Is(err, claim.ErrNotFound) {
			respondError(w, http.StatusNotFound, "claim not found")
			return
		}

		respondError(w, http.StatusInternalServerError, "failed to update claim")

		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"claim": toResponse(c, nil)})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid claim id")
		return
	}

	if err := h.claims.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete claim")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type linkProjectsRequest struct {
	ProjectIDs []uuid.UUID `json:"projectIds"`
}

func (h *Handler) linkProjects(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid claim id")
		return
	}

	var req linkProjectsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.claims.LinkProjects(r.Context(), id, req.ProjectIDs); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to link projects")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unlinkProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid claim id")
		return
	}

	projectID, err := uuid.Parse(chi.URLParam(r, "projectId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.claims.UnlinkProject(r.Context(), id, projectID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to unlink project")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// actorID reads the mock identity forwarded by the client, if any.
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
