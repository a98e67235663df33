package auth

import "go.mongodb.org/mongo-driver/bson/primitive"

// toggleFavorite flips membership of cocktailID in the favorites list and
// reports whether it is a favorite afterwards. Applying it twice restores
// the original list.
func toggleFavorite(favorites []primitive.ObjectID, cocktailID primitive.ObjectID) ([]primitive.ObjectID, bool) {
	for i, id := range favorites {
		if id == cocktailID {
			return append(favorites[:i:i], favorites[i+1:]...), false
		}
	}
	return append(favorites, cocktailID), true
}
