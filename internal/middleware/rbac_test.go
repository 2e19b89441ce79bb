package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"esrs-platform/internal/models"
)

type fakeProfiles map[uint]string

func (f fakeProfiles) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	return &models.Profile{ID: userID, GlobalRole: f[userID]}, nil
}

type fakeMembers map[uint]string

func (f fakeMembers) GetProjectRole(ctx context.Context, projectID, userID uint) (string, bool, error) {
	role, ok := f[userID]
	return role, ok, nil
}

func requestForProject(userID uint) *http.Request {
	r := httptest.NewRequest("GET", "/api/v1/projects/7/entries", nil)
	r.SetPathValue("id", "7")
	ctx := context.WithValue(r.Context(), UserIDKey, userID)
	return r.WithContext(ctx)
}

func TestRequireProjectRole(t *testing.T) {
	profiles := fakeProfiles{
		1: models.RoleAdmin,
		2: models.RoleDataCollector,
		3: models.RoleDataCollector,
		4: models.RoleReviewer,
	}
	// User 2 is a member with a reviewer override; user 4 is not a
	// member at all despite the global role.
	members := fakeMembers{
		2: models.RoleReviewer,
		3: models.RoleDataCollector,
	}

	rbac := NewRBACMiddleware(profiles, members)

	tests := []struct {
		name       string
		userID     uint
		required   []string
		wantStatus int
		wantRole   string
	}{
		{"global admin passes any check", 1, []string{models.RoleReviewer}, http.StatusOK, models.RoleAdmin},
		{"project role overrides global role", 2, []string{models.RoleReviewer}, http.StatusOK, models.RoleReviewer},
		{"member without required role", 3, []string{models.RoleReviewer}, http.StatusForbidden, ""},
		{"member with matching role", 3, []string{models.RoleDataCollector}, http.StatusOK, models.RoleDataCollector},
		{"non-member is rejected", 4, []string{models.RoleReviewer}, http.StatusForbidden, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRole string
			handler := rbac.RequireProjectRole(tt.required...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotRole, _ = GetEffectiveRole(r)
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, requestForProject(tt.userID))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && gotRole != tt.wantRole {
				t.Errorf("effective role = %q, want %q", gotRole, tt.wantRole)
			}
		})
	}
}

func TestRequireProjectRoleUnauthenticated(t *testing.T) {
	rbac := NewRBACMiddleware(fakeProfiles{}, fakeMembers{})
	handler := rbac.RequireProjectAccess(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	r := httptest.NewRequest("GET", "/api/v1/projects/7/entries", nil)
	r.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
