package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"tabu/config"
	"tabu/db"
	"tabu/models"
	"tabu/mq"
	"tabu/rdx"
	"tabu/utils"
	"tabu/validate"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Handler wires the auth endpoints to storage, cache and token issuing.
type Handler struct {
	cfg    *config.Config
	store  *db.Store
	cache  *rdx.Cache
	tokens *Tokens
	events *mq.Emitter
}

func NewHandler(cfg *config.Config, store *db.Store, cache *rdx.Cache, tokens *Tokens, events *mq.Emitter) *Handler {
	return &Handler{cfg: cfg, store: store, cache: cache, tokens: tokens, events: events}
}

// userPayload is the user shape returned from register/login.
func userPayload(u *models.User) utils.M {
	return utils.M{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"role":       u.Role,
		"avatar":     u.Avatar,
		"bio":        u.Bio,
		"experience": u.Experience,
	}
}

// POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Datos inválidos")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()

	err := h.store.Users.FindOne(ctx, bson.M{"email": req.Email}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "El usuario ya existe con este email")
		return
	} else if err != mongo.ErrNoDocuments {
		h.internalError(w, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("register: bcrypt error: %v", err)
		h.internalError(w, err)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	now := time.Now()
	user := models.User{
		Name:              req.Name,
		Email:             req.Email,
		Password:          string(hashed),
		Role:              role,
		FavoriteCocktails: []primitive.ObjectID{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	result, err := h.store.Users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusBadRequest, "El usuario ya existe con este email")
			return
		}
		h.internalError(w, err)
		return
	}
	user.ID = result.InsertedID.(primitive.ObjectID)

	token, err := h.tokens.Issue(user.ID.Hex())
	if err != nil {
		h.internalError(w, err)
		return
	}

	if err := h.cache.StoreSession(ctx, user.ID.Hex(), token); err != nil {
		log.Printf("register: session cache failed: %v", err)
	}
	h.events.Emit(context.Background(), "user-registered", mq.Event{
		EntityType: "user", EntityID: user.ID.Hex(), Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"token":   token,
		"user":    userPayload(&user),
	})
}

// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Datos inválidos")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()

	var user models.User
	if err := h.store.Users.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex())
	if err != nil {
		h.internalError(w, err)
		return
	}

	if err := h.cache.StoreSession(ctx, user.ID.Hex(), token); err != nil {
		log.Printf("login: session cache failed: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"token":   token,
		"user":    userPayload(&user),
	})
}

// POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := utils.CurrentUser(r)

	if err := h.cache.DropSession(r.Context(), user.ID.Hex()); err != nil {
		log.Printf("logout: session drop failed: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Sesión cerrada exitosamente",
	})
}

// GET /api/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := utils.CurrentUser(r)
	ctx := r.Context()

	favorites, err := h.cocktailSummaries(ctx, bson.M{"_id": bson.M{"$in": user.FavoriteCocktails}})
	if err != nil {
		h.internalError(w, err)
		return
	}

	created, err := h.cocktailSummaries(ctx, bson.M{"createdBy": user.ID})
	if err != nil {
		h.internalError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":           true,
		"user":              user,
		"favoriteCocktails": favorites,
		"createdCocktails":  created,
	})
}

func (h *Handler) cocktailSummaries(ctx context.Context, filter bson.M) ([]models.CocktailSummary, error) {
	cursor, err := h.store.Cocktails.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := []models.CocktailSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// PUT /api/auth/profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := utils.CurrentUser(r)

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Datos inválidos")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	updates := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Bio != "" {
		updates["bio"] = req.Bio
	}
	if req.Experience != "" {
		updates["experience"] = req.Experience
	}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}

	var updated models.User
	err := h.store.Users.FindOneAndUpdate(
		r.Context(),
		bson.M{"_id": user.ID},
		bson.M{"$set": updates},
		utils.ReturnUpdated(),
	).Decode(&updated)
	if err != nil {
		h.internalError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"user":    userPayload(&updated),
	})
}

// PUT /api/auth/password
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := utils.CurrentUser(r)

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Datos inválidos")
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Proporciona la contraseña actual y la nueva")
		return
	}
	if err := validate.MinLen(req.NewPassword, 6, "La contraseña"); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Contraseña actual incorrecta")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		h.internalError(w, err)
		return
	}

	_, err = h.store.Users.UpdateOne(
		r.Context(),
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"password": string(hashed), "updatedAt": time.Now()}},
	)
	if err != nil {
		h.internalError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Contraseña actualizada exitosamente",
	})
}

// POST /api/auth/favorites/:cocktailId
// Toggles membership; the target is not checked for existence, matching the
// established behavior callers rely on.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user := utils.CurrentUser(r)

	cocktailID, err := primitive.ObjectIDFromHex(ps.ByName("cocktailId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Identificador de cóctel no válido")
		return
	}

	favorites, isFavorite := toggleFavorite(user.FavoriteCocktails, cocktailID)

	_, err = h.store.Users.UpdateOne(
		r.Context(),
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"favoriteCocktails": favorites, "updatedAt": time.Now()}},
	)
	if err != nil {
		h.internalError(w, err)
		return
	}

	message := "Removido de favoritos"
	if isFavorite {
		message = "Agregado a favoritos"
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":    true,
		"message":    message,
		"isFavorite": isFavorite,
	})
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	utils.RespondInternalError(w, h.cfg.IsProduction(), err)
}
