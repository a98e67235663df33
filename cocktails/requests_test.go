package cocktails

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validCocktailRequest() CocktailRequest {
	return CocktailRequest{
		Name:        "Margarita",
		Description: "Clásico mexicano con tequila y limón",
		Ingredients: []ingredientEntry{
			{Ingredient: primitive.NewObjectID().Hex(), Quantity: "50", Unit: "ml"},
		},
		Instructions: []instructionEntry{
			{Step: 1, Description: "Agitar con hielo y servir"},
		},
		Category:        "clásico",
		Difficulty:      "fácil",
		PreparationTime: 5,
		Servings:        1,
		GlassType:       "coupe",
	}
}

func TestCocktailRequestValid(t *testing.T) {
	req := validCocktailRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestCocktailRequestFirstErrorWins(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CocktailRequest)
		want   string
	}{
		{"missing name", func(r *CocktailRequest) { r.Name = "" }, "El nombre del cóctel es requerido"},
		{"short name", func(r *CocktailRequest) { r.Name = "M" }, "El nombre debe tener al menos 2 caracteres"},
		{"missing description", func(r *CocktailRequest) { r.Description = "" }, "La descripción es requerida"},
		{"no ingredients", func(r *CocktailRequest) { r.Ingredients = nil }, "Debe haber al menos un ingrediente"},
		{"bad unit", func(r *CocktailRequest) { r.Ingredients[0].Unit = "litros" }, "Unidad no válida"},
		{"bad ingredient id", func(r *CocktailRequest) { r.Ingredients[0].Ingredient = "not-hex" }, "El ID del ingrediente no es válido"},
		{"no instructions", func(r *CocktailRequest) { r.Instructions = nil }, "Debe haber al menos una instrucción"},
		{"zero step", func(r *CocktailRequest) { r.Instructions[0].Step = 0 }, "El número de paso debe ser positivo"},
		{"bad category", func(r *CocktailRequest) { r.Category = "picante" }, "Categoría no válida"},
		{"bad difficulty", func(r *CocktailRequest) { r.Difficulty = "imposible" }, "Dificultad no válida"},
		{"zero prep time", func(r *CocktailRequest) { r.PreparationTime = 0 }, "El tiempo de preparación debe ser positivo"},
		{"bad glass", func(r *CocktailRequest) { r.GlassType = "bota" }, "Tipo de vaso no válido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCocktailRequest()
			tt.mutate(&req)
			err := req.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if err.Error() != tt.want {
				t.Errorf("Validate() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestRateRequestValidate(t *testing.T) {
	for _, rating := range []int{1, 3, 5} {
		req := RateRequest{Rating: rating}
		if err := req.Validate(); err != nil {
			t.Errorf("Validate(rating=%d) = %v, want nil", rating, err)
		}
	}
	for _, rating := range []int{0, -1, 6} {
		req := RateRequest{Rating: rating}
		err := req.Validate()
		if err == nil || err.Error() != "La calificación debe ser un número entre 1 y 5" {
			t.Errorf("Validate(rating=%d) = %v, want range error", rating, err)
		}
	}
}

func TestNormalizedTags(t *testing.T) {
	req := CocktailRequest{Tags: []string{" Tequila ", "VERANO", "", "  "}}
	got := req.normalizedTags()
	want := []string{"tequila", "verano"}
	if len(got) != len(want) {
		t.Fatalf("normalizedTags() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tag[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
