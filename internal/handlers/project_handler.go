package handlers

import (
	"errors"
	"net/http"

	"esrs-platform/internal/middleware"
	"esrs-platform/internal/service"
)

// ProjectHandler handles project listing for regular users
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects lists the projects visible to the caller
// @Summary List my projects
// @Description Global admins see all projects, everyone else their memberships
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ProjectWithOrg
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	projects, err := h.projectService.ListVisibleProjects(r.Context(), userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list projects")
		return
	}

	JSONResponse(w, http.StatusOK, projects)
}

// GetProject retrieves one project
// @Summary Get project
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} models.ProjectWithOrg
// @Failure 404 {object} map[string]string "Not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectIDFromPath(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load project")
		return
	}

	JSONResponse(w, http.StatusOK, project)
}
