package ingredients

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validIngredientRequest() IngredientRequest {
	return IngredientRequest{
		Name:           "Tequila Blanco",
		Category:       "tequila",
		AlcoholContent: 40,
	}
}

func TestIngredientRequestValid(t *testing.T) {
	req := validIngredientRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestIngredientRequestFirstErrorWins(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*IngredientRequest)
		want   string
	}{
		{"missing name", func(r *IngredientRequest) { r.Name = "" }, "El nombre del ingrediente es requerido"},
		{"short name", func(r *IngredientRequest) { r.Name = "T" }, "El nombre debe tener al menos 2 caracteres"},
		{"missing category", func(r *IngredientRequest) { r.Category = "" }, "La categoría es requerida"},
		{"bad category", func(r *IngredientRequest) { r.Category = "licuado" }, "Categoría no válida"},
		{"alcohol above 100", func(r *IngredientRequest) { r.AlcoholContent = 140 }, "El contenido de alcohol debe estar entre 0 y 100"},
		{"negative alcohol", func(r *IngredientRequest) { r.AlcoholContent = -1 }, "El contenido de alcohol debe estar entre 0 y 100"},
		{"bad flavor", func(r *IngredientRequest) { r.Flavor = "explosivo" }, "Sabor no válido"},
		{"bad price range", func(r *IngredientRequest) { r.PriceRange = "regalado" }, "Rango de precio no válido"},
		{"bad availability", func(r *IngredientRequest) { r.Availability = "agotado" }, "Disponibilidad no válida"},
		{"bad substitute id", func(r *IngredientRequest) {
			r.Substitutes = []substituteEntry{{Ingredient: "not-hex"}}
		}, "El ID del ingrediente sustituto no es válido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validIngredientRequest()
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

func TestToModelDefaults(t *testing.T) {
	req := IngredientRequest{Name: "  Menta Fresca ", Category: "hierba"}
	model := req.toModel()

	if model.Name != "menta fresca" {
		t.Errorf("name = %q, want lowercased trimmed", model.Name)
	}
	if model.Flavor != "neutro" || model.PriceRange != "medio" || model.Availability != "común" {
		t.Errorf("defaults not applied: flavor=%q priceRange=%q availability=%q",
			model.Flavor, model.PriceRange, model.Availability)
	}
}

func TestToSubstitutesDefaultRatio(t *testing.T) {
	id := primitive.NewObjectID()
	req := IngredientRequest{
		Substitutes: []substituteEntry{
			{Ingredient: id.Hex()},
			{Ingredient: primitive.NewObjectID().Hex(), Ratio: "2:1"},
		},
	}

	subs := req.toSubstitutes()
	if len(subs) != 2 {
		t.Fatalf("got %d substitutes", len(subs))
	}
	if subs[0].Ingredient != id || subs[0].Ratio != "1:1" {
		t.Errorf("default ratio not applied: %+v", subs[0])
	}
	if subs[1].Ratio != "2:1" {
		t.Errorf("explicit ratio lost: %+v", subs[1])
	}
}
