package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	CocktailCategories = []string{"clásico", "tropical", "cremoso", "fuerte", "refrescante", "caliente", "sin alcohol"}
	Difficulties       = []string{"fácil", "intermedio", "difícil"}
	Units              = []string{"ml", "oz", "dash", "splash", "tsp", "tbsp", "cup", "piece", "slice"}
	GlassTypes         = []string{"highball", "lowball", "martini", "coupe", "wine", "shot", "hurricane", "mug"}
)

type CocktailIngredient struct {
	Ingredient primitive.ObjectID `json:"ingredient" bson:"ingredient"`
	Quantity   string             `json:"quantity" bson:"quantity"`
	Unit       string             `json:"unit" bson:"unit"`
}

type Instruction struct {
	Step        int    `json:"step" bson:"step"`
	Description string `json:"description" bson:"description"`
}

type Rating struct {
	User      primitive.ObjectID `json:"user" bson:"user"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type Cocktail struct {
	ID              primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name            string               `json:"name" bson:"name"`
	Description     string               `json:"description" bson:"description"`
	Image           string               `json:"image" bson:"image"`
	Ingredients     []CocktailIngredient `json:"ingredients" bson:"ingredients"`
	Instructions    []Instruction        `json:"instructions" bson:"instructions"`
	Category        string               `json:"category" bson:"category"`
	Difficulty      string               `json:"difficulty" bson:"difficulty"`
	PreparationTime int                  `json:"preparationTime" bson:"preparationTime"` // minutes
	Servings        int                  `json:"servings" bson:"servings"`
	GlassType       string               `json:"glassType" bson:"glassType"`
	Garnish         string               `json:"garnish,omitempty" bson:"garnish,omitempty"`
	Tags            []string             `json:"tags" bson:"tags"`
	Ratings         []Rating             `json:"ratings" bson:"ratings"`
	AverageRating   float64              `json:"averageRating" bson:"averageRating"`
	TotalRatings    int                  `json:"totalRatings" bson:"totalRatings"`
	CreatedBy       primitive.ObjectID   `json:"createdBy" bson:"createdBy"`
	IsPublic        bool                 `json:"isPublic" bson:"isPublic"`
	Views           int                  `json:"views" bson:"views"`
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// CocktailSummary is the shape embedded in profile and favorites listings.
type CocktailSummary struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	Name          string             `json:"name" bson:"name"`
	Image         string             `json:"image" bson:"image"`
	Category      string             `json:"category" bson:"category"`
	AverageRating float64            `json:"averageRating" bson:"averageRating"`
	Views         int                `json:"views" bson:"views"`
}
