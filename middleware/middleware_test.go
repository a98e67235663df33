package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tabu/globals"
	"tabu/models"

	"github.com/julienschmidt/httprouter"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", ""},
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"wrong scheme", "Basic abc", ""},
		{"missing scheme", "abc.def.ghi", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if got := bearerToken(r); got != tt.want {
				t.Errorf("bearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoleAllowed(t *testing.T) {
	allowed := []string{models.RoleBartender, models.RoleAdmin}

	if roleAllowed(models.RoleUser, allowed) {
		t.Error("user role should not pass a bartender/admin gate")
	}
	if !roleAllowed(models.RoleBartender, allowed) {
		t.Error("bartender role should pass")
	}
	if !roleAllowed(models.RoleAdmin, allowed) {
		t.Error("admin role should pass")
	}
	if roleAllowed(models.RoleAdmin, nil) {
		t.Error("empty allow list should reject everyone")
	}
}

func TestRequireRolesForbidsWithSpanishMessage(t *testing.T) {
	guard := (&Auth{}).RequireRoles(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Error("handler should not run")
	}, models.RoleAdmin)

	user := &models.User{Role: models.RoleUser}
	r := httptest.NewRequest(http.MethodDelete, "/api/ingredients/abc", nil)
	r = r.WithContext(context.WithValue(r.Context(), globals.UserKey, user))

	w := httptest.NewRecorder()
	guard(w, r, nil)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "Rol user no autorizado para acceder a esta ruta" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestRequireRolesPasses(t *testing.T) {
	called := false
	guard := (&Auth{}).RequireRoles(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
	}, models.RoleBartender, models.RoleAdmin)

	user := &models.User{Role: models.RoleAdmin}
	r := httptest.NewRequest(http.MethodPost, "/api/ingredients", nil)
	r = r.WithContext(context.WithValue(r.Context(), globals.UserKey, user))

	guard(httptest.NewRecorder(), r, nil)

	if !called {
		t.Error("handler should have run for an admin")
	}
}
