package auth

import (
	"strings"

	"tabu/models"
	"tabu/validate"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate also lowercases and trims the email so the unique index and
// the login lookup always see one canonical form.
func (r *RegisterRequest) Validate() error {
	r.Email = normalizeEmail(r.Email)
	if err := validate.First(
		validate.Required(r.Name, "El nombre"),
		validate.MinLen(r.Name, 2, "El nombre"),
		validate.MaxLen(r.Name, 50, "El nombre"),
		validate.Required(r.Email, "El email"),
		validate.Email(r.Email),
		validate.RequiredF(r.Password, "La contraseña"),
		validate.MinLen(r.Password, 6, "La contraseña"),
	); err != nil {
		return err
	}
	if r.Role != "" {
		return validate.OneOf(r.Role, models.Roles, "Rol no válido")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Email = normalizeEmail(r.Email)
	return validate.First(
		validate.Required(r.Email, "El email"),
		validate.Email(r.Email),
		validate.RequiredF(r.Password, "La contraseña"),
	)
}

// UpdateProfileRequest is the allow-list for PUT /api/auth/profile; any
// other field in the body is ignored.
type UpdateProfileRequest struct {
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	Experience string `json:"experience"`
	Avatar     string `json:"avatar"`
}

func (r *UpdateProfileRequest) Validate() error {
	if r.Name != "" {
		if err := validate.First(
			validate.MinLen(r.Name, 2, "El nombre"),
			validate.MaxLen(r.Name, 50, "El nombre"),
		); err != nil {
			return err
		}
	}
	if r.Bio != "" {
		if err := validate.MaxLen(r.Bio, 500, "La biografía"); err != nil {
			return err
		}
	}
	if r.Experience != "" {
		return validate.OneOf(r.Experience, models.Experiences, "Nivel de experiencia no válido")
	}
	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
