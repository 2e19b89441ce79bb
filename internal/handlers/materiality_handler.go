package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"esrs-platform/internal/esrs"
	"esrs-platform/internal/middleware"
	"esrs-platform/internal/service"
)

// AssessmentRequest represents the request body for a materiality
// evaluation
type AssessmentRequest struct {
	StandardCode   string  `json:"standard_code"`
	TopicName      string  `json:"topic_name"`
	ImpactScore    float64 `json:"impact_score"`
	FinancialScore float64 `json:"financial_score"`
	Rationale      string  `json:"rationale"`
}

// MaterialityHandler handles materiality assessment requests
type MaterialityHandler struct {
	materialityService *service.MaterialityService
}

// NewMaterialityHandler creates a new materiality handler
func NewMaterialityHandler(materialityService *service.MaterialityService) *MaterialityHandler {
	return &MaterialityHandler{materialityService: materialityService}
}

// ListStandards returns the assessable ESRS standards
// @Summary List ESRS standards
// @Tags Materiality
// @Produce json
// @Security BearerAuth
// @Success 200 {array} esrs.Standard
// @Router /standards [get]
func (h *MaterialityHandler) ListStandards(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, http.StatusOK, esrs.Standards)
}

// ListAssessments lists the assessments of a project
// @Summary List assessments
// @Tags Materiality
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {array} models.MaterialityAssessment
// @Router /projects/{id}/assessments [get]
func (h *MaterialityHandler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	projectID, ok := projectIDFromPath(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	assessments, err := h.materialityService.ListAssessments(r.Context(), projectID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list assessments")
		return
	}

	JSONResponse(w, http.StatusOK, assessments)
}

// CreateAssessment evaluates and stores a materiality assessment
// @Summary Assess a standard
// @Description Evaluate double materiality for a standard. Each standard can be assessed once per project.
// @Tags Materiality
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param body body AssessmentRequest true "Assessment data"
// @Success 201 {object} models.MaterialityAssessment
// @Failure 400 {object} map[string]string "Invalid scores"
// @Failure 409 {object} map[string]string "Already assessed"
// @Router /projects/{id}/assessments [post]
func (h *MaterialityHandler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	projectID, ok := projectIDFromPath(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	assessment, err := h.materialityService.Assess(r.Context(), userID, projectID, service.AssessInput{
		StandardCode:   req.StandardCode,
		TopicName:      req.TopicName,
		ImpactScore:    req.ImpactScore,
		FinancialScore: req.FinancialScore,
		Rationale:      req.Rationale,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyAssessed):
			respondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, esrs.ErrScoreOutOfRange):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	JSONResponse(w, http.StatusCreated, assessment)
}

// ListAssessedCodes lists the standard codes already assessed
// @Summary List assessed codes
// @Description Advisory list for client-side form gating. The storage constraint remains the authority.
// @Tags Materiality
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {array} string
// @Router /projects/{id}/assessments/codes [get]
func (h *MaterialityHandler) ListAssessedCodes(w http.ResponseWriter, r *http.Request) {
	projectID, ok := projectIDFromPath(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	codes, err := h.materialityService.AssessedCodes(r.Context(), projectID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list assessed codes")
		return
	}

	JSONResponse(w, http.StatusOK, codes)
}
