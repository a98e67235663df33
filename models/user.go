package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser      = "user"
	RoleBartender = "bartender"
	RoleAdmin     = "admin"
)

var Roles = []string{RoleUser, RoleBartender, RoleAdmin}

var Experiences = []string{"principiante", "aficionado", "bartender", "mixólogo", "experto"}

type User struct {
	ID                primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name              string               `json:"name" bson:"name"`
	Email             string               `json:"email" bson:"email"`
	Password          string               `json:"-" bson:"password"`
	Role              string               `json:"role" bson:"role"`
	Avatar            string               `json:"avatar" bson:"avatar"`
	Bio               string               `json:"bio,omitempty" bson:"bio,omitempty"`
	Experience        string               `json:"experience,omitempty" bson:"experience,omitempty"`
	FavoriteCocktails []primitive.ObjectID `json:"favoriteCocktails" bson:"favoriteCocktails"`
	CreatedAt         time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// PublicProfile strips credentials and contact details for unauthenticated reads.
type PublicProfile struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Name       string             `json:"name" bson:"name"`
	Role       string             `json:"role" bson:"role"`
	Avatar     string             `json:"avatar" bson:"avatar"`
	Bio        string             `json:"bio,omitempty" bson:"bio,omitempty"`
	Experience string             `json:"experience,omitempty" bson:"experience,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
