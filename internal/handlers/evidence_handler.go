package handlers

import (
	"net/http"

	"esrs-platform/internal/storage"
)

// EvidenceHandler handles evidence file uploads
type EvidenceHandler struct {
	store          *storage.EvidenceStore
	maxUploadBytes int64
}

// NewEvidenceHandler creates a new evidence handler
func NewEvidenceHandler(store *storage.EvidenceStore, maxUploadBytes int64) *EvidenceHandler {
	return &EvidenceHandler{
		store:          store,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload stores an evidence file and returns its public URL
// @Summary Upload evidence
// @Description Upload an evidence attachment. The returned URL is passed with a subsequent entry creation.
// @Tags Entries
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param file formData file true "Evidence file"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Missing or oversized file"
// @Router /projects/{id}/evidence [post]
func (h *EvidenceHandler) Upload(w http.ResponseWriter, r *http.Request) {
	projectID, ok := projectIDFromPath(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "File exceeds the upload limit")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	url, err := h.store.Upload(r.Context(), projectID, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to store evidence")
		return
	}

	JSONResponse(w, http.StatusCreated, map[string]string{"url": url})
}
