package validate

import (
	"errors"
	"testing"
)

func TestRequired(t *testing.T) {
	if err := Required("Margarita", "El nombre"); err != nil {
		t.Errorf("Required() = %v, want nil", err)
	}
	if err := Required("   ", "El nombre"); err == nil || err.Error() != "El nombre es requerido" {
		t.Errorf("Required() = %v", err)
	}
	if err := RequiredF("", "La contraseña"); err == nil || err.Error() != "La contraseña es requerida" {
		t.Errorf("RequiredF() = %v", err)
	}
}

// Length rules count runes; accented Spanish text must not be penalized
// for its byte length.
func TestLenRulesCountRunes(t *testing.T) {
	if err := MaxLen("cóctel", 6, "El nombre"); err != nil {
		t.Errorf("MaxLen() = %v, want nil for 6 runes", err)
	}
	if err := MinLen("ñu", 2, "El nombre"); err != nil {
		t.Errorf("MinLen() = %v, want nil for 2 runes", err)
	}
	if err := MinLen("a", 2, "El nombre"); err == nil || err.Error() != "El nombre debe tener al menos 2 caracteres" {
		t.Errorf("MinLen() = %v", err)
	}
	if err := MaxLen("abcd", 3, "El tag"); err == nil || err.Error() != "El tag no puede tener más de 3 caracteres" {
		t.Errorf("MaxLen() = %v", err)
	}
}

func TestEmail(t *testing.T) {
	for _, ok := range []string{"ana@tabu.mx", "a.b+c@dominio.com"} {
		if err := Email(ok); err != nil {
			t.Errorf("Email(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "sin-arroba", "dos@@a.com", "falta@dominio"} {
		if err := Email(bad); err == nil {
			t.Errorf("Email(%q) = nil, want error", bad)
		}
	}
}

func TestOneOf(t *testing.T) {
	units := []string{"ml", "oz", "dash"}
	if err := OneOf("ml", units, "Unidad no válida"); err != nil {
		t.Errorf("OneOf() = %v, want nil", err)
	}
	if err := OneOf("litros", units, "Unidad no válida"); err == nil || err.Error() != "Unidad no válida" {
		t.Errorf("OneOf() = %v", err)
	}
}

func TestRange(t *testing.T) {
	msg := "El contenido de alcohol debe estar entre 0 y 100"
	for _, v := range []float64{0, 40, 100} {
		if err := Range(v, 0, 100, msg); err != nil {
			t.Errorf("Range(%v) = %v, want nil", v, err)
		}
	}
	for _, v := range []float64{-0.1, 100.1} {
		if err := Range(v, 0, 100, msg); err == nil {
			t.Errorf("Range(%v) = nil, want error", v)
		}
	}
}

func TestFirstStopsAtFirstError(t *testing.T) {
	first := errors.New("primero")
	second := errors.New("segundo")

	if err := First(nil, first, second); err != first {
		t.Errorf("First() = %v, want first error", err)
	}
	if err := First(nil, nil); err != nil {
		t.Errorf("First() = %v, want nil", err)
	}
}
