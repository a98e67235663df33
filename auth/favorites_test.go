package auth

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToggleFavoriteAddsWhenAbsent(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	favorites, added := toggleFavorite([]primitive.ObjectID{a}, b)
	if !added {
		t.Error("expected added = true")
	}
	if len(favorites) != 2 || favorites[1] != b {
		t.Errorf("favorites = %v", favorites)
	}
}

func TestToggleFavoriteRemovesWhenPresent(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	favorites, added := toggleFavorite([]primitive.ObjectID{a, b, c}, b)
	if added {
		t.Error("expected added = false")
	}
	if len(favorites) != 2 || favorites[0] != a || favorites[1] != c {
		t.Errorf("favorites = %v", favorites)
	}
}

// Toggling twice must restore the original membership.
func TestToggleFavoriteRoundTrip(t *testing.T) {
	a := primitive.NewObjectID()
	target := primitive.NewObjectID()

	once, added := toggleFavorite([]primitive.ObjectID{a}, target)
	if !added {
		t.Fatal("first toggle should add")
	}
	twice, added := toggleFavorite(once, target)
	if added {
		t.Fatal("second toggle should remove")
	}
	if len(twice) != 1 || twice[0] != a {
		t.Errorf("favorites after round trip = %v, want [%v]", twice, a)
	}
}

func TestToggleFavoriteEmptyList(t *testing.T) {
	target := primitive.NewObjectID()

	favorites, added := toggleFavorite(nil, target)
	if !added || len(favorites) != 1 || favorites[0] != target {
		t.Errorf("toggle on empty list = (%v, %v)", favorites, added)
	}
}
