package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	IngredientCategories = []string{
		"licor", "aguardiente", "whisky", "vodka", "ron", "gin", "tequila", "brandy",
		"licor-crema", "vino", "cerveza", "jugo", "refresco", "jarabe", "bitter",
		"fruta", "hierba", "especia", "garnish", "hielo", "otro",
	}
	Flavors        = []string{"dulce", "amargo", "ácido", "salado", "umami", "neutro"}
	PriceRanges    = []string{"económico", "medio", "premium", "luxury"}
	Availabilities = []string{"muy común", "común", "poco común", "raro"}
)

type Substitute struct {
	Ingredient primitive.ObjectID `json:"ingredient" bson:"ingredient"`
	Ratio      string             `json:"ratio" bson:"ratio"`
}

type Ingredient struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                string             `json:"name" bson:"name"`
	Category            string             `json:"category" bson:"category"`
	Description         string             `json:"description,omitempty" bson:"description,omitempty"`
	AlcoholContent      float64            `json:"alcoholContent" bson:"alcoholContent"` // percentage
	Origin              string             `json:"origin,omitempty" bson:"origin,omitempty"`
	Brand               string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Image               string             `json:"image" bson:"image"`
	Color               string             `json:"color,omitempty" bson:"color,omitempty"`
	Flavor              string             `json:"flavor" bson:"flavor"`
	IsCommon            bool               `json:"isCommon" bson:"isCommon"`
	Substitutes         []Substitute       `json:"substitutes" bson:"substitutes"`
	PriceRange          string             `json:"priceRange" bson:"priceRange"`
	Availability        string             `json:"availability" bson:"availability"`
	StorageInstructions string             `json:"storageInstructions,omitempty" bson:"storageInstructions,omitempty"`
	ShelfLife           string             `json:"shelfLife,omitempty" bson:"shelfLife,omitempty"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt" bson:"updatedAt"`
}
