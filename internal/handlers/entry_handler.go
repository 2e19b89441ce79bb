package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"esrs-platform/internal/esrs"
	"esrs-platform/internal/middleware"
	"esrs-platform/internal/service"
)

// EntryRequest represents the request body for a datapoint entry
type EntryRequest struct {
	CatalogID   *uint  `json:"catalog_id,omitempty"`
	Code        string `json:"code"`
	Value       string `json:"value"`
	EvidenceURL string `json:"evidence_url"`
}

// StatusRequest represents the request body for a workflow transition
type StatusRequest struct {
	Status string `json:"status"`
}

// EntryHandler handles datapoint entry requests
type EntryHandler struct {
	entryService      *service.EntryService
	disclosureService *service.DisclosureService
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(entryService *service.EntryService, disclosureService *service.DisclosureService) *EntryHandler {
	return &EntryHandler{
		entryService:      entryService,
		disclosureService: disclosureService,
	}
}

// CreateEntry stores a collected value for a requirement
// @Summary Create entry
// @Description Submit a value for a disclosure requirement. The value is validated against the requirement's data type.
// @Tags Entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param body body EntryRequest true "Entry data"
// @Success 201 {object} models.DataPointEntry
// @Failure 400 {object} map[string]string "Invalid value"
// @Failure 404 {object} map[string]string "Requirement not found"
// @Router /projects/{id}/entries [post]
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	projectID, ok := projectIDFromPath(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.entryService.CreateEntry(r.Context(), userID, projectID, service.CreateEntryInput{
		CatalogID:   req.CatalogID,
		Code:        req.Code,
		Value:       req.Value,
		EvidenceURL: req.EvidenceURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequirementNotFound):
			respondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, esrs.ErrEmptyValue),
			errors.Is(err, esrs.ErrNotAnInteger),
			errors.Is(err, esrs.ErrNotANumber),
			errors.Is(err, esrs.ErrOutOfRange):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to create entry")
		}
		return
	}

	JSONResponse(w, http.StatusCreated, entry)
}

// ListEntries lists the entries of a project
// @Summary List entries
// @Description Entries newest first. With grouped=true the result is grouped by standard.
// @Tags Entries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param grouped query bool false "Group entries by standard"
// @Success 200 {array} models.DataPointEntry
// @Router /projects/{id}/entries [get]
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	projectID, ok := projectIDFromPath(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if r.URL.Query().Get("grouped") == "true" {
		groups, err := h.entryService.ListEntriesGrouped(r.Context(), projectID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list entries")
			return
		}
		JSONResponse(w, http.StatusOK, groups)
		return
	}

	entries, err := h.entryService.ListEntries(r.Context(), projectID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list entries")
		return
	}

	JSONResponse(w, http.StatusOK, entries)
}

// TransitionEntry moves an entry through the review workflow
// @Summary Transition entry status
// @Description Approve or reject an entry. Both states are terminal.
// @Tags Entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param entryID path int true "Entry ID"
// @Param body body StatusRequest true "Target status"
// @Success 200 {object} models.DataPointEntry
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Router /projects/{id}/entries/{entryID}/status [patch]
func (h *EntryHandler) TransitionEntry(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	projectID, ok := projectIDFromPath(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}
	entryID, ok := pathID(r, "entryID")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid entry ID")
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.entryService.Transition(r.Context(), userID, projectID, entryID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEntryNotFound):
			respondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, esrs.ErrInvalidTransition):
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to update entry")
		}
		return
	}

	JSONResponse(w, http.StatusOK, entry)
}

// Summary returns the KPI counters of a project
// @Summary Project summary
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} models.ProjectSummary
// @Router /projects/{id}/summary [get]
func (h *EntryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	projectID, ok := projectIDFromPath(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	requirements, err := h.disclosureService.ActiveRequirements(r.Context(), projectID, "")
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to compute summary")
		return
	}

	summary, err := h.entryService.Summary(r.Context(), projectID, len(requirements))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to compute summary")
		return
	}

	JSONResponse(w, http.StatusOK, summary)
}
