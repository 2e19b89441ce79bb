package handlers

import (
	"net/http"

	"esrs-platform/internal/esrs"
	"esrs-platform/internal/service"
)

// DisclosureHandler handles disclosure requirement requests
type DisclosureHandler struct {
	disclosureService *service.DisclosureService
}

// NewDisclosureHandler creates a new disclosure handler
func NewDisclosureHandler(disclosureService *service.DisclosureService) *DisclosureHandler {
	return &DisclosureHandler{disclosureService: disclosureService}
}

// ListRequirements lists the active requirements of a project
// @Summary List active requirements
// @Description Catalog datapoints of the project's material standards with derived completion status
// @Tags Disclosure
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param status query string false "Filter by completion status (not_started, in_progress, completed)"
// @Success 200 {array} models.RequirementWithStatus
// @Router /projects/{id}/requirements [get]
func (h *DisclosureHandler) ListRequirements(w http.ResponseWriter, r *http.Request) {
	projectID, ok := projectIDFromPath(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	statusFilter := r.URL.Query().Get("status")
	switch statusFilter {
	case "", esrs.StatusNotStarted, esrs.StatusInProgress, esrs.StatusCompleted:
	default:
		respondWithError(w, http.StatusBadRequest, "Unknown status filter")
		return
	}

	requirements, err := h.disclosureService.ActiveRequirements(r.Context(), projectID, statusFilter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list requirements")
		return
	}

	JSONResponse(w, http.StatusOK, requirements)
}

// Progress returns per-standard completion counts
// @Summary Requirement progress
// @Tags Disclosure
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {array} models.StandardProgress
// @Router /projects/{id}/progress [get]
func (h *DisclosureHandler) Progress(w http.ResponseWriter, r *http.Request) {
	projectID, ok := projectIDFromPath(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	progress, err := h.disclosureService.Progress(r.Context(), projectID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to compute progress")
		return
	}

	JSONResponse(w, http.StatusOK, progress)
}
