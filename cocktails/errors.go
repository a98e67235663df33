package cocktails

import "errors"

var (
	errIngredientsRequired  = errors.New("Debe haber al menos un ingrediente")
	errInstructionsRequired = errors.New("Debe haber al menos una instrucción")
	errInvalidIngredientID  = errors.New("El ID del ingrediente no es válido")
	errInvalidServings      = errors.New("Debe servir al menos 1 porción")
	errInvalidRating        = errors.New("La calificación debe ser un número entre 1 y 5")
)
