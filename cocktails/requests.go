package cocktails

import (
	"strings"

	"tabu/models"
	"tabu/validate"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ingredientEntry struct {
	Ingredient string `json:"ingredient"`
	Quantity   string `json:"quantity"`
	Unit       string `json:"unit"`
}

type instructionEntry struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
}

// CocktailRequest is the allow-listed payload for create and update.
type CocktailRequest struct {
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Image           string             `json:"image"`
	Ingredients     []ingredientEntry  `json:"ingredients"`
	Instructions    []instructionEntry `json:"instructions"`
	Category        string             `json:"category"`
	Difficulty      string             `json:"difficulty"`
	PreparationTime int                `json:"preparationTime"`
	Servings        int                `json:"servings"`
	GlassType       string             `json:"glassType"`
	Garnish         string             `json:"garnish"`
	Tags            []string           `json:"tags"`
	IsPublic        *bool              `json:"isPublic"`
}

func (r *CocktailRequest) Validate() error {
	if err := validate.First(
		validate.Required(r.Name, "El nombre del cóctel"),
		validate.MinLen(r.Name, 2, "El nombre"),
		validate.MaxLen(r.Name, 100, "El nombre"),
		validate.RequiredF(r.Description, "La descripción"),
		validate.MaxLen(r.Description, 1000, "La descripción"),
	); err != nil {
		return err
	}

	if len(r.Ingredients) == 0 {
		return errIngredientsRequired
	}
	for _, ing := range r.Ingredients {
		if err := validate.First(
			validate.Required(ing.Ingredient, "El ID del ingrediente"),
			validate.RequiredF(ing.Quantity, "La cantidad"),
			validate.RequiredF(ing.Unit, "La unidad"),
			validate.OneOf(ing.Unit, models.Units, "Unidad no válida"),
		); err != nil {
			return err
		}
		if _, err := primitive.ObjectIDFromHex(ing.Ingredient); err != nil {
			return errInvalidIngredientID
		}
	}

	if len(r.Instructions) == 0 {
		return errInstructionsRequired
	}
	for _, ins := range r.Instructions {
		if err := validate.First(
			validate.Positive(ins.Step, "El número de paso debe ser positivo"),
			validate.RequiredF(ins.Description, "La descripción del paso"),
		); err != nil {
			return err
		}
	}

	if err := validate.First(
		validate.RequiredF(r.Category, "La categoría"),
		validate.OneOf(r.Category, models.CocktailCategories, "Categoría no válida"),
		validate.Positive(r.PreparationTime, "El tiempo de preparación debe ser positivo"),
		validate.MaxLen(r.Garnish, 200, "La descripción del garnish"),
	); err != nil {
		return err
	}
	if r.Difficulty != "" {
		if err := validate.OneOf(r.Difficulty, models.Difficulties, "Dificultad no válida"); err != nil {
			return err
		}
	}
	if r.Servings < 0 {
		return errInvalidServings
	}
	if err := validate.Required(r.GlassType, "El tipo de vaso"); err != nil {
		return err
	}
	return validate.OneOf(r.GlassType, models.GlassTypes, "Tipo de vaso no válido")
}

// toIngredients converts the validated entries; Validate guarantees the
// hex ids parse.
func (r *CocktailRequest) toIngredients() []models.CocktailIngredient {
	out := make([]models.CocktailIngredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		id, _ := primitive.ObjectIDFromHex(ing.Ingredient)
		out = append(out, models.CocktailIngredient{
			Ingredient: id,
			Quantity:   ing.Quantity,
			Unit:       ing.Unit,
		})
	}
	return out
}

func (r *CocktailRequest) toInstructions() []models.Instruction {
	out := make([]models.Instruction, 0, len(r.Instructions))
	for _, ins := range r.Instructions {
		out = append(out, models.Instruction{Step: ins.Step, Description: ins.Description})
	}
	return out
}

func (r *CocktailRequest) normalizedTags() []string {
	tags := make([]string, 0, len(r.Tags))
	for _, tag := range r.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

type RateRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r *RateRequest) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return errInvalidRating
	}
	return validate.MaxLen(r.Comment, 500, "El comentario")
}
