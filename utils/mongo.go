package utils

import (
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReturnUpdated configures FindOneAndUpdate to decode the post-update document.
func ReturnUpdated() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// RespondInternalError maps an unexpected failure to a 500. Outside
// production the body carries the underlying error for debugging.
func RespondInternalError(w http.ResponseWriter, production bool, err error) {
	log.Printf("internal error: %v", err)
	if production {
		RespondWithError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	RespondWithJSON(w, http.StatusInternalServerError, M{
		"error":  "Error interno del servidor",
		"detail": err.Error(),
	})
}
