package cocktails

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tabu/config"
	"tabu/db"
	"tabu/models"
	"tabu/mq"
	"tabu/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var sortableFields = []string{"createdAt", "name", "averageRating", "views", "preparationTime"}

type Handler struct {
	cfg    *config.Config
	store  *db.Store
	events *mq.Emitter
}

func NewHandler(cfg *config.Config, store *db.Store, events *mq.Emitter) *Handler {
	return &Handler{cfg: cfg, store: store, events: events}
}

// canModify implements the ownership check: the creator or an admin.
func canModify(createdBy primitive.ObjectID, user *models.User) bool {
	return createdBy == user.ID || user.Role == models.RoleAdmin
}

// GET /api/cocktails
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	q := r.URL.Query()

	query := bson.M{"isPublic": true}
	if category := q.Get("category"); category != "" {
		query["category"] = category
	}
	if difficulty := q.Get("difficulty"); difficulty != "" {
		query["difficulty"] = difficulty
	}
	if search := q.Get("search"); search != "" {
		query["$text"] = bson.M{"$search": search}
	}

	page := utils.ParsePagination(r, 12, 100)
	sort := utils.ParseSort(r, "createdAt", "desc", sortableFields)

	opts := options.Find().
		SetSort(sort).
		SetSkip(page.Skip()).
		SetLimit(page.Limit)

	cursor, err := h.store.Cocktails.Find(ctx, query, opts)
	if err != nil {
		h.internalError(w, err)
		return
	}
	defer cursor.Close(ctx)

	cocktails := []models.Cocktail{}
	if err := cursor.All(ctx, &cocktails); err != nil {
		h.internalError(w, err)
		return
	}

	total, err := h.store.Cocktails.CountDocuments(ctx, query)
	if err != nil {
		h.internalError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"cocktails":   cocktails,
		"totalPages":  utils.TotalPages(total, page.Limit),
		"currentPage": page.Page,
		"total":       total,
	})
}

// GET /api/cocktails/:id
// The view counter is bumped with $inc in the same read, so concurrent
// views never lose counts.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Cóctel no encontrado")
		return
	}

	ctx := r.Context()

	var cocktail models.Cocktail
	err = h.store.Cocktails.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		utils.ReturnUpdated(),
	).Decode(&cocktail)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Cóctel no encontrado")
		return
	}

	creator, ingredients := h.expandReferences(ctx, &cocktail)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"cocktail":    cocktail,
		"creator":     creator,
		"ingredients": ingredients,
	})
}

// expandReferences resolves the creator profile and referenced ingredient
// catalog entries; lookup failures degrade to partial detail.
func (h *Handler) expandReferences(ctx context.Context, cocktail *models.Cocktail) (*models.PublicProfile, []models.Ingredient) {
	var creator models.PublicProfile
	creatorPtr := &creator
	if err := h.store.Users.FindOne(ctx, bson.M{"_id": cocktail.CreatedBy}).Decode(&creator); err != nil {
		creatorPtr = nil
	}

	ids := make([]primitive.ObjectID, 0, len(cocktail.Ingredients))
	for _, ing := range cocktail.Ingredients {
		ids = append(ids, ing.Ingredient)
	}

	ingredients := []models.Ingredient{}
	cursor, err := h.store.Ingredients.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err == nil {
		defer cursor.Close(ctx)
		_ = cursor.All(ctx, &ingredients)
	}

	return creatorPtr, ingredients
}

// POST /api/cocktails
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := utils.CurrentUser(r)

	var req CocktailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Datos inválidos")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "fácil"
	}
	servings := req.Servings
	if servings == 0 {
		servings = 1
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	now := time.Now()
	cocktail := models.Cocktail{
		Name:            req.Name,
		Description:     req.Description,
		Image:           req.Image,
		Ingredients:     req.toIngredients(),
		Instructions:    req.toInstructions(),
		Category:        req.Category,
		Difficulty:      difficulty,
		PreparationTime: req.PreparationTime,
		Servings:        servings,
		GlassType:       req.GlassType,
		Garnish:         req.Garnish,
		Tags:            req.normalizedTags(),
		Ratings:         []models.Rating{},
		CreatedBy:       user.ID,
		IsPublic:        isPublic,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	result, err := h.store.Cocktails.InsertOne(r.Context(), cocktail)
	if err != nil {
		h.internalError(w, err)
		return
	}
	cocktail.ID = result.InsertedID.(primitive.ObjectID)

	h.events.Emit(context.Background(), "cocktail-created", mq.Event{
		EntityType: "cocktail", EntityID: cocktail.ID.Hex(), Method: "POST", ActorID: user.ID.Hex(),
	})

	utils.RespondWithJSON(w, http.StatusCreated, cocktail)
}

// PUT /api/cocktails/:id
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user := utils.CurrentUser(r)

	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Cóctel no encontrado")
		return
	}

	ctx := r.Context()

	var cocktail models.Cocktail
	if err := h.store.Cocktails.FindOne(ctx, bson.M{"_id": id}).Decode(&cocktail); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Cóctel no encontrado")
		return
	}

	if !canModify(cocktail.CreatedBy, user) {
		utils.RespondWithError(w, http.StatusForbidden, "No tienes permisos para editar este cóctel")
		return
	}

	var req CocktailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Datos inválidos")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	updates := bson.M{
		"name":            req.Name,
		"description":     req.Description,
		"image":           req.Image,
		"ingredients":     req.toIngredients(),
		"instructions":    req.toInstructions(),
		"category":        req.Category,
		"preparationTime": req.PreparationTime,
		"glassType":       req.GlassType,
		"garnish":         req.Garnish,
		"tags":            req.normalizedTags(),
		"updatedAt":       time.Now(),
	}
	if req.Difficulty != "" {
		updates["difficulty"] = req.Difficulty
	}
	if req.Servings > 0 {
		updates["servings"] = req.Servings
	}
	if req.IsPublic != nil {
		updates["isPublic"] = *req.IsPublic
	}

	var updated models.Cocktail
	err = h.store.Cocktails.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
		utils.ReturnUpdated(),
	).Decode(&updated)
	if err != nil {
		h.internalError(w, err)
		return
	}

	h.events.Emit(context.Background(), "cocktail-updated", mq.Event{
		EntityType: "cocktail", EntityID: id.Hex(), Method: "PUT", ActorID: user.ID.Hex(),
	})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/cocktails/:id
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user := utils.CurrentUser(r)

	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Cóctel no encontrado")
		return
	}

	ctx := r.Context()

	var cocktail models.Cocktail
	if err := h.store.Cocktails.FindOne(ctx, bson.M{"_id": id}).Decode(&cocktail); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Cóctel no encontrado")
		return
	}

	if !canModify(cocktail.CreatedBy, user) {
		utils.RespondWithError(w, http.StatusForbidden, "No tienes permisos para eliminar este cóctel")
		return
	}

	if _, err := h.store.Cocktails.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		h.internalError(w, err)
		return
	}

	h.events.Emit(context.Background(), "cocktail-deleted", mq.Event{
		EntityType: "cocktail", EntityID: id.Hex(), Method: "DELETE", ActorID: user.ID.Hex(),
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Cóctel eliminado exitosamente"})
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	utils.RespondInternalError(w, h.cfg.IsProduction(), err)
}
