// Package validate holds the declarative field rules shared by every
// request contract. Each helper returns the first broken rule as an error
// with a user-facing message; callers chain them and stop at the first
// failure.
package validate

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required fails when a trimmed string is empty.
func Required(value, label string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s es requerido", label)
	}
	return nil
}

// RequiredF is Required for feminine nouns ("la cantidad es requerida").
func RequiredF(value, label string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s es requerida", label)
	}
	return nil
}

func MinLen(value string, n int, label string) error {
	if len([]rune(value)) < n {
		return fmt.Errorf("%s debe tener al menos %d caracteres", label, n)
	}
	return nil
}

func MaxLen(value string, n int, label string) error {
	if len([]rune(value)) > n {
		return fmt.Errorf("%s no puede tener más de %d caracteres", label, n)
	}
	return nil
}

func Email(value string) error {
	if !emailRe.MatchString(value) {
		return fmt.Errorf("Debe ser un email válido")
	}
	return nil
}

// OneOf checks enum membership. The message matches the original API
// ("Unidad no válida", "Categoría no válida").
func OneOf(value string, allowed []string, message string) error {
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("%s", message)
	}
	return nil
}

// Positive rejects zero and negative integers.
func Positive(value int, message string) error {
	if value <= 0 {
		return fmt.Errorf("%s", message)
	}
	return nil
}

// Range checks an inclusive numeric window.
func Range(value, min, max float64, message string) error {
	if value < min || value > max {
		return fmt.Errorf("%s", message)
	}
	return nil
}

// First returns the first non-nil error of the chain, or nil.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
