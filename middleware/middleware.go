package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"tabu/auth"
	"tabu/db"
	"tabu/globals"
	"tabu/models"
	"tabu/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Auth guards protected routes: it verifies the bearer credential, then
// re-reads the user from storage so role changes take effect immediately.
type Auth struct {
	tokens *auth.Tokens
	store  *db.Store
}

func NewAuth(tokens *auth.Tokens, store *db.Store) *Auth {
	return &Auth{tokens: tokens, store: store}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// Authenticate rejects requests without a valid credential and stores the
// resolved user in the request context.
func (a *Auth) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "No autorizado, token no proporcionado")
			return
		}

		userID, err := a.tokens.Verify(tokenString)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "No autorizado, token inválido")
			return
		}

		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "No autorizado, token inválido")
			return
		}

		var user models.User
		if err := a.store.Users.FindOne(r.Context(), bson.M{"_id": oid}).Decode(&user); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "No autorizado, usuario no encontrado")
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserKey, &user)
		next(w, r.WithContext(ctx), ps)
	}
}

// RequireRoles permits the request only when the authenticated user's role
// is in the allowed set. Must run after Authenticate.
func (a *Auth) RequireRoles(next httprouter.Handle, roles ...string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		user := utils.CurrentUser(r)
		if user == nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "No autorizado")
			return
		}
		if !roleAllowed(user.Role, roles) {
			utils.RespondWithError(w, http.StatusForbidden,
				fmt.Sprintf("Rol %s no autorizado para acceder a esta ruta", user.Role))
			return
		}
		next(w, r, ps)
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
