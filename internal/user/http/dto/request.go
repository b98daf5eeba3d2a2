// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/techfood/usuarios/internal/validation"
)

// UserRequest contains the parameters for creating or updating a user.
type UserRequest struct {
	Name           string `json:"nome"`
	Email          string `json:"email"`
	Login          string `json:"login"`
	Password       string `json:"senha"`
	CPF            string `json:"cpf"`
	Kind           string `json:"tipoUsuario"`
	AddressStreet  string `json:"enderecoRua"`
	AddressNumber  string `json:"enderecoNumero"`
	AddressCity    string `json:"enderecoCidade"`
	AddressZipCode string `json:"enderecoCep"`
}

// Validate checks if the user request is valid.
func (r *UserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(3, 100),
		),
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
			validation.Length(1, 100),
		),
		validation.Field(&r.Login,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(3, 50),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(6, 255),
		),
		validation.Field(&r.CPF,
			validation.Required,
			customValidation.ExactDigits{Length: 11},
		),
		validation.Field(&r.Kind,
			validation.Required,
			validation.In("CLIENTE", "DONO_RESTAURANTE").Error("deve ser CLIENTE ou DONO_RESTAURANTE"),
		),
		validation.Field(&r.AddressStreet,
			validation.Length(0, 200),
		),
		validation.Field(&r.AddressNumber,
			validation.Length(0, 10),
		),
		validation.Field(&r.AddressCity,
			validation.Length(0, 100),
		),
		validation.Field(&r.AddressZipCode,
			customValidation.ExactDigits{Length: 8},
		),
	)
}

// ChangePasswordRequest contains the parameters for replacing a user's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"senhaAtual"`
	NewPassword     string `json:"novaSenha"`
}

// Validate checks if the change password request is valid.
func (r *ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CurrentPassword,
			validation.Required,
		),
		validation.Field(&r.NewPassword,
			validation.Required,
			validation.Length(6, 255),
		),
	)
}

// LoginRequest contains the credentials for validating a login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"senha"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Login,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Password,
			validation.Required,
		),
	)
}
