package middleware

import (
	"context"
	"net/http"
	"strconv"

	"esrs-platform/internal/models"
)

// ProfileSource resolves a user profile. Satisfied by the Redis-backed
// profile cache and, in tests, by a plain function.
type ProfileSource interface {
	GetProfile(ctx context.Context, userID uint) (*models.Profile, error)
}

// MembershipSource resolves a user's role within a project. The bool
// is false when the user is not a member.
type MembershipSource interface {
	GetProjectRole(ctx context.Context, projectID, userID uint) (string, bool, error)
}

// RBACMiddleware handles role-based access control. The project role
// of a membership overrides the global role; global admins pass every
// check.
type RBACMiddleware struct {
	profiles ProfileSource
	members  MembershipSource
}

// NewRBACMiddleware creates a new RBAC middleware
func NewRBACMiddleware(profiles ProfileSource, members MembershipSource) *RBACMiddleware {
	return &RBACMiddleware{profiles: profiles, members: members}
}

// RequireGlobalRole checks that the user's global role matches
func (m *RBACMiddleware) RequireGlobalRole(roleName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "User not authenticated")
				return
			}

			profile, err := m.profiles.GetProfile(r.Context(), userID)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Failed to resolve user role")
				return
			}

			if profile.GlobalRole != roleName {
				respondWithError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireProjectRole checks that the user's effective role within the
// project from the {id} path segment is one of the given roles. The
// effective role is the membership role when the user is a member,
// otherwise the global role only counts for admins. The resolved role
// lands in the request context for the handler.
func (m *RBACMiddleware) RequireProjectRole(roleNames ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "User not authenticated")
				return
			}

			projectID, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid project ID")
				return
			}

			role, err := m.resolveEffectiveRole(r.Context(), uint(projectID), userID)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Failed to resolve user role")
				return
			}
			if role == "" {
				respondWithError(w, http.StatusForbidden, "Not a member of this project")
				return
			}

			for _, required := range roleNames {
				if role == required {
					ctx := context.WithValue(r.Context(), EffectiveRoleKey, role)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			respondWithError(w, http.StatusForbidden, "Insufficient permissions")
		})
	}
}

// RequireProjectAccess admits any project member and any global admin,
// regardless of role.
func (m *RBACMiddleware) RequireProjectAccess(next http.Handler) http.Handler {
	return m.RequireProjectRole(models.RoleAdmin, models.RoleDataCollector, models.RoleReviewer)(next)
}

func (m *RBACMiddleware) resolveEffectiveRole(ctx context.Context, projectID, userID uint) (string, error) {
	profile, err := m.profiles.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	if profile.GlobalRole == models.RoleAdmin {
		return models.RoleAdmin, nil
	}

	role, isMember, err := m.members.GetProjectRole(ctx, projectID, userID)
	if err != nil {
		return "", err
	}
	if !isMember {
		return "", nil
	}
	if role == "" {
		role = models.RoleDataCollector
	}
	return role, nil
}
