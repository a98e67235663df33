package ingredients

import (
	"tabu/models"
	"tabu/validate"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type substituteEntry struct {
	Ingredient string `json:"ingredient"`
	Ratio      string `json:"ratio"`
}

// IngredientRequest is the allow-listed payload for create and update.
type IngredientRequest struct {
	Name                string            `json:"name"`
	Category            string            `json:"category"`
	Description         string            `json:"description"`
	AlcoholContent      float64           `json:"alcoholContent"`
	Origin              string            `json:"origin"`
	Brand               string            `json:"brand"`
	Image               string            `json:"image"`
	Color               string            `json:"color"`
	Flavor              string            `json:"flavor"`
	IsCommon            bool              `json:"isCommon"`
	Substitutes         []substituteEntry `json:"substitutes"`
	PriceRange          string            `json:"priceRange"`
	Availability        string            `json:"availability"`
	StorageInstructions string            `json:"storageInstructions"`
	ShelfLife           string            `json:"shelfLife"`
}

func (r *IngredientRequest) Validate() error {
	if err := validate.First(
		validate.Required(r.Name, "El nombre del ingrediente"),
		validate.MinLen(r.Name, 2, "El nombre"),
		validate.MaxLen(r.Name, 100, "El nombre"),
		validate.RequiredF(r.Category, "La categoría"),
		validate.OneOf(r.Category, models.IngredientCategories, "Categoría no válida"),
		validate.MaxLen(r.Description, 500, "La descripción"),
		validate.Range(r.AlcoholContent, 0, 100, "El contenido de alcohol debe estar entre 0 y 100"),
		validate.MaxLen(r.Origin, 100, "El origen"),
		validate.MaxLen(r.Brand, 100, "La marca"),
		validate.MaxLen(r.Color, 50, "El color"),
		validate.MaxLen(r.StorageInstructions, 200, "Las instrucciones de almacenamiento"),
		validate.MaxLen(r.ShelfLife, 100, "La vida útil"),
	); err != nil {
		return err
	}

	if r.Flavor != "" {
		if err := validate.OneOf(r.Flavor, models.Flavors, "Sabor no válido"); err != nil {
			return err
		}
	}
	if r.PriceRange != "" {
		if err := validate.OneOf(r.PriceRange, models.PriceRanges, "Rango de precio no válido"); err != nil {
			return err
		}
	}
	if r.Availability != "" {
		if err := validate.OneOf(r.Availability, models.Availabilities, "Disponibilidad no válida"); err != nil {
			return err
		}
	}

	for _, sub := range r.Substitutes {
		if _, err := primitive.ObjectIDFromHex(sub.Ingredient); err != nil {
			return errInvalidSubstituteID
		}
	}
	return nil
}

func (r *IngredientRequest) toSubstitutes() []models.Substitute {
	out := make([]models.Substitute, 0, len(r.Substitutes))
	for _, sub := range r.Substitutes {
		id, _ := primitive.ObjectIDFromHex(sub.Ingredient)
		ratio := sub.Ratio
		if ratio == "" {
			ratio = "1:1"
		}
		out = append(out, models.Substitute{Ingredient: id, Ratio: ratio})
	}
	return out
}
