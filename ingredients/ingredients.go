package ingredients

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"tabu/config"
	"tabu/db"
	"tabu/models"
	"tabu/mq"
	"tabu/rdx"
	"tabu/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var errInvalidSubstituteID = errors.New("El ID del ingrediente sustituto no es válido")

var sortableFields = []string{"name", "category", "createdAt", "alcoholContent"}

const categoriesCacheKey = "ingredients:categories"

type Handler struct {
	cfg    *config.Config
	store  *db.Store
	cache  *rdx.Cache
	events *mq.Emitter
}

func NewHandler(cfg *config.Config, store *db.Store, cache *rdx.Cache, events *mq.Emitter) *Handler {
	return &Handler{cfg: cfg, store: store, cache: cache, events: events}
}

// GET /api/ingredients
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	q := r.URL.Query()

	query := bson.M{}
	if category := q.Get("category"); category != "" {
		query["category"] = category
	}
	if isCommon := q.Get("isCommon"); isCommon != "" {
		query["isCommon"] = isCommon == "true"
	}
	if search := q.Get("search"); search != "" {
		query["$text"] = bson.M{"$search": search}
	}

	page := utils.ParsePagination(r, 50, 200)
	sort := utils.ParseSort(r, "name", "asc", sortableFields)

	opts := options.Find().
		SetSort(sort).
		SetSkip(page.Skip()).
		SetLimit(page.Limit)

	cursor, err := h.store.Ingredients.Find(ctx, query, opts)
	if err != nil {
		h.internalError(w, err)
		return
	}
	defer cursor.Close(ctx)

	ingredients := []models.Ingredient{}
	if err := cursor.All(ctx, &ingredients); err != nil {
		h.internalError(w, err)
		return
	}

	total, err := h.store.Ingredients.CountDocuments(ctx, query)
	if err != nil {
		h.internalError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ingredients": ingredients,
		"totalPages":  utils.TotalPages(total, page.Limit),
		"currentPage": page.Page,
		"total":       total,
	})
}

type categoryCount struct {
	Category string `json:"category" bson:"_id"`
	Count    int    `json:"count" bson:"count"`
}

// GET /api/ingredients/categories
// Category counts are cheap to recompute but hot on the catalog screens,
// so they sit behind a short-lived redis entry invalidated on every write.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	if cached, err := h.cache.Get(ctx, categoriesCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := h.store.Ingredients.Aggregate(ctx, pipeline)
	if err != nil {
		h.internalError(w, err)
		return
	}
	defer cursor.Close(ctx)

	counts := []categoryCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		h.internalError(w, err)
		return
	}

	if data, err := json.Marshal(counts); err == nil {
		if err := h.cache.SetWithExpiry(ctx, categoriesCacheKey, string(data), 5*time.Minute); err != nil {
			log.Printf("ingredients: category cache write failed: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, counts)
}

// GET /api/ingredients/:id
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Ingrediente no encontrado")
		return
	}

	var ingredient models.Ingredient
	if err := h.store.Ingredients.FindOne(r.Context(), bson.M{"_id": id}).Decode(&ingredient); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Ingrediente no encontrado")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, ingredient)
}

// POST /api/ingredients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := utils.CurrentUser(r)

	var req IngredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Datos inválidos")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ingredient := req.toModel()
	now := time.Now()
	ingredient.CreatedAt = now
	ingredient.UpdatedAt = now

	result, err := h.store.Ingredients.InsertOne(r.Context(), ingredient)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusBadRequest, "Ya existe un ingrediente con ese nombre")
			return
		}
		h.internalError(w, err)
		return
	}
	ingredient.ID = result.InsertedID.(primitive.ObjectID)

	h.invalidateCategories(r.Context())
	h.events.Emit(context.Background(), "ingredient-created", mq.Event{
		EntityType: "ingredient", EntityID: ingredient.ID.Hex(), Method: "POST", ActorID: user.ID.Hex(),
	})

	utils.RespondWithJSON(w, http.StatusCreated, ingredient)
}

// PUT /api/ingredients/:id
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Ingrediente no encontrado")
		return
	}

	var req IngredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Datos inválidos")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var ingredient models.Ingredient
	err = h.store.Ingredients.FindOneAndUpdate(
		r.Context(),
		bson.M{"_id": id},
		bson.M{"$set": updateDoc(req.toModel())},
		utils.ReturnUpdated(),
	).Decode(&ingredient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Ingrediente no encontrado")
			return
		}
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusBadRequest, "Ya existe un ingrediente con ese nuevo nombre")
			return
		}
		h.internalError(w, err)
		return
	}

	h.invalidateCategories(r.Context())

	utils.RespondWithJSON(w, http.StatusOK, ingredient)
}

// DELETE /api/ingredients/:id
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user := utils.CurrentUser(r)

	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Ingrediente no encontrado")
		return
	}

	result, err := h.store.Ingredients.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		h.internalError(w, err)
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Ingrediente no encontrado")
		return
	}

	h.invalidateCategories(r.Context())
	h.events.Emit(context.Background(), "ingredient-deleted", mq.Event{
		EntityType: "ingredient", EntityID: id.Hex(), Method: "DELETE", ActorID: user.ID.Hex(),
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Ingrediente eliminado exitosamente"})
}

// GET /api/ingredients/search/:term
func (h *Handler) Search(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	term := ps.ByName("term")

	opts := options.Find().
		SetProjection(bson.M{"name": 1, "category": 1, "alcoholContent": 1}).
		SetLimit(20)

	cursor, err := h.store.Ingredients.Find(ctx, bson.M{
		"name": bson.M{"$regex": term, "$options": "i"},
	}, opts)
	if err != nil {
		h.internalError(w, err)
		return
	}
	defer cursor.Close(ctx)

	ingredients := []models.Ingredient{}
	if err := cursor.All(ctx, &ingredients); err != nil {
		h.internalError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, ingredients)
}

func (h *Handler) invalidateCategories(ctx context.Context) {
	if err := h.cache.Del(ctx, categoriesCacheKey); err != nil {
		log.Printf("ingredients: category cache invalidation failed: %v", err)
	}
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	utils.RespondInternalError(w, h.cfg.IsProduction(), err)
}

// toModel applies the catalog defaults the storage schema promises.
func (r *IngredientRequest) toModel() models.Ingredient {
	flavor := r.Flavor
	if flavor == "" {
		flavor = "neutro"
	}
	priceRange := r.PriceRange
	if priceRange == "" {
		priceRange = "medio"
	}
	availability := r.Availability
	if availability == "" {
		availability = "común"
	}

	return models.Ingredient{
		Name:                strings.ToLower(strings.TrimSpace(r.Name)),
		Category:            r.Category,
		Description:         r.Description,
		AlcoholContent:      r.AlcoholContent,
		Origin:              r.Origin,
		Brand:               r.Brand,
		Image:               r.Image,
		Color:               r.Color,
		Flavor:              flavor,
		IsCommon:            r.IsCommon,
		Substitutes:         r.toSubstitutes(),
		PriceRange:          priceRange,
		Availability:        availability,
		StorageInstructions: r.StorageInstructions,
		ShelfLife:           r.ShelfLife,
	}
}

// updateDoc builds the $set document for updates, leaving _id and
// createdAt untouched.
func updateDoc(i models.Ingredient) bson.M {
	return bson.M{
		"name":                i.Name,
		"category":            i.Category,
		"description":         i.Description,
		"alcoholContent":      i.AlcoholContent,
		"origin":              i.Origin,
		"brand":               i.Brand,
		"image":               i.Image,
		"color":               i.Color,
		"flavor":              i.Flavor,
		"isCommon":            i.IsCommon,
		"substitutes":         i.Substitutes,
		"priceRange":          i.PriceRange,
		"availability":        i.Availability,
		"storageInstructions": i.StorageInstructions,
		"shelfLife":           i.ShelfLife,
		"updatedAt":           time.Now(),
	}
}
