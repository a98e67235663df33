package auth

import "testing"

func TestRegisterRequestFirstErrorWins(t *testing.T) {
	tests := []struct {
		name string
		req  RegisterRequest
		want string
	}{
		{
			"missing name reported before missing email",
			RegisterRequest{},
			"El nombre es requerido",
		},
		{
			"short name",
			RegisterRequest{Name: "A", Email: "a@b.co", Password: "secreto"},
			"El nombre debe tener al menos 2 caracteres",
		},
		{
			"missing email",
			RegisterRequest{Name: "Ana", Password: "secreto"},
			"El email es requerido",
		},
		{
			"bad email",
			RegisterRequest{Name: "Ana", Email: "no-es-email", Password: "secreto"},
			"Debe ser un email válido",
		},
		{
			"missing password",
			RegisterRequest{Name: "Ana", Email: "ana@tabu.mx"},
			"La contraseña es requerida",
		},
		{
			"short password",
			RegisterRequest{Name: "Ana", Email: "ana@tabu.mx", Password: "12345"},
			"La contraseña debe tener al menos 6 caracteres",
		},
		{
			"bad role",
			RegisterRequest{Name: "Ana", Email: "ana@tabu.mx", Password: "secreto", Role: "jefe"},
			"Rol no válido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if err.Error() != tt.want {
				t.Errorf("Validate() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestRegisterRequestValid(t *testing.T) {
	for _, role := range []string{"", "user", "bartender", "admin"} {
		req := RegisterRequest{Name: "Ana", Email: "ana@tabu.mx", Password: "secreto", Role: role}
		if err := req.Validate(); err != nil {
			t.Errorf("Validate(role=%q) = %v, want nil", role, err)
		}
	}
}

// Emails must reach storage in one canonical form: the unique index is
// case-sensitive, so "A@x.com" and "a@x.com" would otherwise become two
// accounts and a capitalized registration could never log in lowercase.
func TestValidateNormalizesEmail(t *testing.T) {
	reg := RegisterRequest{Name: "Ana", Email: "  Ana@Tabu.MX ", Password: "secreto"}
	if err := reg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if reg.Email != "ana@tabu.mx" {
		t.Errorf("register email = %q, want lowercased trimmed", reg.Email)
	}

	login := LoginRequest{Email: "ANA@TABU.MX", Password: "secreto"}
	if err := login.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if login.Email != "ana@tabu.mx" {
		t.Errorf("login email = %q, want lowercased", login.Email)
	}
}

func TestLoginRequestValidate(t *testing.T) {
	valid := LoginRequest{Email: "ana@tabu.mx", Password: "secreto"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	missing := LoginRequest{Email: "ana@tabu.mx"}
	if err := missing.Validate(); err == nil || err.Error() != "La contraseña es requerida" {
		t.Errorf("Validate() = %v, want password error", err)
	}
}

func TestUpdateProfileRequestValidate(t *testing.T) {
	empty := UpdateProfileRequest{}
	if err := empty.Validate(); err != nil {
		t.Errorf("empty update should pass, got %v", err)
	}

	badExp := UpdateProfileRequest{Experience: "maestro"}
	if err := badExp.Validate(); err == nil || err.Error() != "Nivel de experiencia no válido" {
		t.Errorf("Validate() = %v, want experience error", err)
	}

	good := UpdateProfileRequest{Name: "Ana", Bio: "Mixóloga", Experience: "bartender"}
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
