package users

import (
	"encoding/json"
	"net/http"
	"time"

	"tabu/config"
	"tabu/db"
	"tabu/models"
	"tabu/utils"
	"tabu/validate"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var sortableFields = []string{"createdAt", "name", "email", "role"}

type Handler struct {
	cfg   *config.Config
	store *db.Store
}

func NewHandler(cfg *config.Config, store *db.Store) *Handler {
	return &Handler{cfg: cfg, store: store}
}

// listedUser is the admin listing shape; password hashes never leave storage.
type listedUser struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	Role       string             `json:"role" bson:"role"`
	Avatar     string             `json:"avatar" bson:"avatar"`
	Experience string             `json:"experience,omitempty" bson:"experience,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

// GET /api/users (admin)
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	q := r.URL.Query()

	query := bson.M{}
	if role := q.Get("role"); role != "" {
		query["role"] = role
	}
	if search := q.Get("search"); search != "" {
		query["$or"] = []bson.M{
			{"name": bson.M{"$regex": search, "$options": "i"}},
			{"email": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	page := utils.ParsePagination(r, 20, 100)
	sort := utils.ParseSort(r, "createdAt", "desc", sortableFields)

	opts := options.Find().
		SetSort(sort).
		SetSkip(page.Skip()).
		SetLimit(page.Limit)

	cursor, err := h.store.Users.Find(ctx, query, opts)
	if err != nil {
		h.internalError(w, err)
		return
	}
	defer cursor.Close(ctx)

	users := []listedUser{}
	if err := cursor.All(ctx, &users); err != nil {
		h.internalError(w, err)
		return
	}

	total, err := h.store.Users.CountDocuments(ctx, query)
	if err != nil {
		h.internalError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"users":       users,
		"totalPages":  utils.TotalPages(total, page.Limit),
		"currentPage": page.Page,
		"total":       total,
	})
}

// GET /api/users/:id
// Public profile with the cocktails the user created and favorited; email
// and password stay private.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}

	ctx := r.Context()

	var user models.User
	if err := h.store.Users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}

	profile := models.PublicProfile{
		ID:         user.ID,
		Name:       user.Name,
		Role:       user.Role,
		Avatar:     user.Avatar,
		Bio:        user.Bio,
		Experience: user.Experience,
		CreatedAt:  user.CreatedAt,
	}

	created := h.summaries(r, bson.M{"createdBy": user.ID, "isPublic": true})
	favorites := h.summaries(r, bson.M{"_id": bson.M{"$in": user.FavoriteCocktails}, "isPublic": true})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"user":              profile,
		"createdCocktails":  created,
		"favoriteCocktails": favorites,
	})
}

func (h *Handler) summaries(r *http.Request, filter bson.M) []models.CocktailSummary {
	ctx := r.Context()

	out := []models.CocktailSummary{}
	cursor, err := h.store.Cocktails.Find(ctx, filter)
	if err != nil {
		return out
	}
	defer cursor.Close(ctx)
	_ = cursor.All(ctx, &out)
	return out
}

// PUT /api/users/:id/role (admin)
func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Datos inválidos")
		return
	}
	if err := validate.OneOf(req.Role, models.Roles, "Rol no válido"); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var user listedUser
	err = h.store.Users.FindOneAndUpdate(
		r.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": req.Role, "updatedAt": time.Now()}},
		utils.ReturnUpdated(),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		h.internalError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Rol actualizado a " + req.Role,
		"user":    user,
	})
}

// DELETE /api/users/:id (admin)
// An admin may delete themselves but never another admin.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requester := utils.CurrentUser(r)

	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}

	ctx := r.Context()

	var target models.User
	if err := h.store.Users.FindOne(ctx, bson.M{"_id": id}).Decode(&target); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}

	if target.Role == models.RoleAdmin && requester.ID != target.ID {
		utils.RespondWithError(w, http.StatusForbidden, "No puedes eliminar otros administradores")
		return
	}

	if _, err := h.store.Users.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		h.internalError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Usuario eliminado exitosamente"})
}

// GET /api/users/stats/overview (admin)
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	total, err := h.store.Users.CountDocuments(ctx, bson.M{})
	if err != nil {
		h.internalError(w, err)
		return
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$role", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := h.store.Users.Aggregate(ctx, pipeline)
	if err != nil {
		h.internalError(w, err)
		return
	}
	defer cursor.Close(ctx)

	byRole := []struct {
		Role  string `json:"role" bson:"_id"`
		Count int    `json:"count" bson:"count"`
	}{}
	if err := cursor.All(ctx, &byRole); err != nil {
		h.internalError(w, err)
		return
	}

	opts := options.Find().
		SetProjection(bson.M{"name": 1, "email": 1, "role": 1, "createdAt": 1}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(5)

	recentCursor, err := h.store.Users.Find(ctx, bson.M{}, opts)
	if err != nil {
		h.internalError(w, err)
		return
	}
	defer recentCursor.Close(ctx)

	recent := []listedUser{}
	if err := recentCursor.All(ctx, &recent); err != nil {
		h.internalError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"totalUsers":  total,
		"usersByRole": byRole,
		"recentUsers": recent,
	})
}

// GET /api/users/search/:term
// Public, with a limited projection.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	term := ps.ByName("term")

	opts := options.Find().
		SetProjection(bson.M{"name": 1, "avatar": 1, "bio": 1, "experience": 1, "role": 1}).
		SetLimit(10)

	cursor, err := h.store.Users.Find(ctx, bson.M{
		"$or": []bson.M{
			{"name": bson.M{"$regex": term, "$options": "i"}},
			{"bio": bson.M{"$regex": term, "$options": "i"}},
		},
	}, opts)
	if err != nil {
		h.internalError(w, err)
		return
	}
	defer cursor.Close(ctx)

	profiles := []models.PublicProfile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		h.internalError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, profiles)
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	utils.RespondInternalError(w, h.cfg.IsProduction(), err)
}
