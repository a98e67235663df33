package cocktails

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"tabu/models"
	"tabu/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// applyRating upserts a user's rating: an existing entry is overwritten in
// place so the list never holds two entries for the same user.
func applyRating(ratings []models.Rating, userID primitive.ObjectID, value int, comment string) []models.Rating {
	for i := range ratings {
		if ratings[i].User == userID {
			ratings[i].Rating = value
			ratings[i].Comment = comment
			return ratings
		}
	}
	return append(ratings, models.Rating{
		User:      userID,
		Rating:    value,
		Comment:   comment,
		CreatedAt: time.Now(),
	})
}

// recalcRatings recomputes the aggregate pair from the embedded list.
// Empty list means 0/0, never a mean of nothing.
func recalcRatings(ratings []models.Rating) (average float64, total int) {
	if len(ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	average = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	return average, len(ratings)
}

// POST /api/cocktails/:id/rate
func (h *Handler) Rate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user := utils.CurrentUser(r)

	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Cóctel no encontrado")
		return
	}

	var req RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Datos inválidos")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()

	var cocktail models.Cocktail
	if err := h.store.Cocktails.FindOne(ctx, bson.M{"_id": id}).Decode(&cocktail); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Cóctel no encontrado")
		return
	}

	ratings := applyRating(cocktail.Ratings, user.ID, req.Rating, req.Comment)
	average, total := recalcRatings(ratings)

	// List and aggregates go out in one write so they are never observed
	// out of sync.
	var updated models.Cocktail
	err = h.store.Cocktails.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"ratings":       ratings,
			"averageRating": average,
			"totalRatings":  total,
			"updatedAt":     time.Now(),
		}},
		utils.ReturnUpdated(),
	).Decode(&updated)
	if err != nil {
		h.internalError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updated)
}
