package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"esrs-platform/internal/middleware"
	"esrs-platform/internal/service"
)

// OrganizationRequest represents the request body for creating an
// organization
type OrganizationRequest struct {
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

// ProjectRequest represents the request body for creating a project
type ProjectRequest struct {
	OrganizationID uint `json:"organization_id"`
	ReportingYear  int  `json:"reporting_year"`
}

// RoleUpdateRequest represents the request body for a global role change
type RoleUpdateRequest struct {
	Role string `json:"role"`
}

// MemberRequest represents the request body for a project membership
type MemberRequest struct {
	ProjectID uint   `json:"project_id"`
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
}

// AdminHandler handles administration requests
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// CreateOrganization creates an organization
// @Summary Create organization
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body OrganizationRequest true "Organization data"
// @Success 201 {object} models.Organization
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /admin/organizations [post]
func (h *AdminHandler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r)

	var req OrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	org, err := h.adminService.CreateOrganization(r.Context(), actorID, req.Name, req.Sector)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	JSONResponse(w, http.StatusCreated, org)
}

// ListOrganizations lists all organizations
// @Summary List organizations
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Organization
// @Router /admin/organizations [get]
func (h *AdminHandler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.adminService.ListOrganizations(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list organizations")
		return
	}

	JSONResponse(w, http.StatusOK, orgs)
}

// DeleteOrganization deletes an organization
// @Summary Delete organization
// @Description Delete an organization with all its projects and their data
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Organization ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not found"
// @Router /admin/organizations/{id} [delete]
func (h *AdminHandler) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r)

	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	if err := h.adminService.DeleteOrganization(r.Context(), actorID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Organization not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to delete organization")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateProject creates a reporting project
// @Summary Create project
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ProjectRequest true "Project data"
// @Success 201 {object} models.Project
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Project already exists for this year"
// @Router /admin/projects [post]
func (h *AdminHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r)

	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.adminService.CreateProject(r.Context(), actorID, req.OrganizationID, req.ReportingYear)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateProject):
			respondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Organization not found")
		default:
			respondWithError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	JSONResponse(w, http.StatusCreated, project)
}

// ListProjects lists all projects
// @Summary List all projects
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ProjectWithOrg
// @Router /admin/projects [get]
func (h *AdminHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.adminService.ListProjects(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list projects")
		return
	}

	JSONResponse(w, http.StatusOK, projects)
}

// DeleteProject deletes a project
// @Summary Delete project
// @Description Delete a project with its assessments and entries
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not found"
// @Router /admin/projects/{id} [delete]
func (h *AdminHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r)

	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if err := h.adminService.DeleteProject(r.Context(), actorID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListProfiles lists all user profiles
// @Summary List users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Profile
// @Router /admin/users [get]
func (h *AdminHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.adminService.ListProfiles(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	JSONResponse(w, http.StatusOK, profiles)
}

// UpdateGlobalRole changes a user's global role
// @Summary Update user role
// @Tags Admin
// @Accept json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body RoleUpdateRequest true "New role"
// @Success 204
// @Failure 400 {object} map[string]string "Unknown role"
// @Failure 404 {object} map[string]string "Not found"
// @Router /admin/users/{id}/role [put]
func (h *AdminHandler) UpdateGlobalRole(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r)

	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req RoleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.adminService.UpdateGlobalRole(r.Context(), actorID, id, req.Role); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "User not found")
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to update role")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListProjectMembers lists all project memberships
// @Summary List project members
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ProjectMemberWithDetails
// @Router /admin/members [get]
func (h *AdminHandler) ListProjectMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.adminService.ListProjectMembers(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list members")
		return
	}

	JSONResponse(w, http.StatusOK, members)
}

// AddProjectMember assigns a user to a project
// @Summary Add project member
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body MemberRequest true "Membership data"
// @Success 201 {object} models.ProjectMember
// @Failure 409 {object} map[string]string "Already a member"
// @Router /admin/members [post]
func (h *AdminHandler) AddProjectMember(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r)

	var req MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := h.adminService.AddProjectMember(r.Context(), actorID, req.ProjectID, req.UserID, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateMember):
			respondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidRole):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Project or user not found")
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to add member")
		}
		return
	}

	JSONResponse(w, http.StatusCreated, member)
}

// RemoveProjectMember removes a project membership
// @Summary Remove project member
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Membership ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not found"
// @Router /admin/members/{id} [delete]
func (h *AdminHandler) RemoveProjectMember(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserID(r)

	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid membership ID")
		return
	}

	if err := h.adminService.RemoveProjectMember(r.Context(), actorID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Membership not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to remove member")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListAuditLogs lists recent audit log entries
// @Summary List audit logs
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries to return"
// @Success 200 {array} models.AuditLog
// @Router /admin/audit-logs [get]
func (h *AdminHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.adminService.RecentAuditLogs(r.Context(), limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list audit logs")
		return
	}

	JSONResponse(w, http.StatusOK, logs)
}
