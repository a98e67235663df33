package routes

import (
	"net/http"
	"time"

	"tabu/auth"
	"tabu/cocktails"
	"tabu/config"
	"tabu/filemgr"
	"tabu/ingredients"
	"tabu/middleware"
	"tabu/models"
	"tabu/ratelim"
	"tabu/users"
	"tabu/utils"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router, cfg *config.Config) {
	router.ServeFiles("/uploads/*filepath", http.Dir(cfg.UploadDir))
}

func AddHealthRoutes(router *httprouter.Router) {
	router.GET("/health", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"status":    "OK",
			"message":   "API de Tabú Mixología funcionando",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
}

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, mw *middleware.Auth, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(h.Register))
	router.POST("/api/auth/login", rl.Limit(h.Login))
	router.POST("/api/auth/logout", mw.Authenticate(h.Logout))
	router.GET("/api/auth/me", mw.Authenticate(h.Me))
	router.PUT("/api/auth/profile", mw.Authenticate(h.UpdateProfile))
	router.PUT("/api/auth/password", mw.Authenticate(h.ChangePassword))
	router.POST("/api/auth/favorites/:cocktailId", mw.Authenticate(h.ToggleFavorite))
}

func AddCocktailRoutes(router *httprouter.Router, h *cocktails.Handler, mw *middleware.Auth) {
	router.GET("/api/cocktails", h.List)
	router.GET("/api/cocktails/:id", h.Get)
	router.GET("/api/cocktails/:id/pdf", h.ExportPDF)
	router.POST("/api/cocktails", mw.Authenticate(h.Create))
	router.PUT("/api/cocktails/:id", mw.Authenticate(h.Update))
	router.DELETE("/api/cocktails/:id", mw.Authenticate(h.Delete))
	router.POST("/api/cocktails/:id/rate", mw.Authenticate(h.Rate))
}

// httprouter rejects a static path next to a parameter at the same
// segment, so /api/ingredients/categories and /search/:term are
// dispatched from the :id routes.
func AddIngredientRoutes(router *httprouter.Router, h *ingredients.Handler, mw *middleware.Auth) {
	staff := func(next httprouter.Handle) httprouter.Handle {
		return mw.Authenticate(mw.RequireRoles(next, models.RoleBartender, models.RoleAdmin))
	}
	admin := func(next httprouter.Handle) httprouter.Handle {
		return mw.Authenticate(mw.RequireRoles(next, models.RoleAdmin))
	}

	router.GET("/api/ingredients", h.List)
	router.GET("/api/ingredients/:id", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if ps.ByName("id") == "categories" {
			h.Categories(w, r, ps)
			return
		}
		h.Get(w, r, ps)
	})
	router.GET("/api/ingredients/:id/:term", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if ps.ByName("id") == "search" {
			h.Search(w, r, ps)
			return
		}
		utils.RespondWithError(w, http.StatusNotFound, "Ruta no encontrada")
	})
	router.POST("/api/ingredients", staff(h.Create))
	router.PUT("/api/ingredients/:id", staff(h.Update))
	router.DELETE("/api/ingredients/:id", admin(h.Delete))
}

func AddUserRoutes(router *httprouter.Router, h *users.Handler, mw *middleware.Auth) {
	admin := func(next httprouter.Handle) httprouter.Handle {
		return mw.Authenticate(mw.RequireRoles(next, models.RoleAdmin))
	}

	stats := admin(h.Stats)

	router.GET("/api/users", admin(h.List))
	router.GET("/api/users/:id", h.Get)
	router.GET("/api/users/:id/:term", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		switch {
		case ps.ByName("id") == "search":
			h.Search(w, r, ps)
		case ps.ByName("id") == "stats" && ps.ByName("term") == "overview":
			stats(w, r, ps)
		default:
			utils.RespondWithError(w, http.StatusNotFound, "Ruta no encontrada")
		}
	})
	router.PUT("/api/users/:id/role", admin(h.UpdateRole))
	router.DELETE("/api/users/:id", admin(h.Delete))
}

func AddUploadRoutes(router *httprouter.Router, h *filemgr.Handler, mw *middleware.Auth) {
	router.POST("/api/uploads/:entity", mw.Authenticate(h.Upload))
}
