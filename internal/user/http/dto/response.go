// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	userDomain "github.com/techfood/usuarios/internal/user/domain"
)

// UserResponse represents a user in API responses (excludes the password hash).
type UserResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"nome"`
	Email          string    `json:"email"`
	Login          string    `json:"login"`
	CPF            string    `json:"cpf"`
	Kind           string    `json:"tipoUsuario"`
	AddressStreet  string    `json:"enderecoRua"`
	AddressNumber  string    `json:"enderecoNumero"`
	AddressCity    string    `json:"enderecoCidade"`
	AddressZipCode string    `json:"enderecoCep"`
	CreatedAt      time.Time `json:"dataCriacao"`
	UpdatedAt      time.Time `json:"dataAtualizacao"`
}

// MapUserToResponse converts a domain user to an API response.
func MapUserToResponse(user *userDomain.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Login:          user.Login,
		CPF:            user.CPF,
		Kind:           string(user.Kind),
		AddressStreet:  user.AddressStreet,
		AddressNumber:  user.AddressNumber,
		AddressCity:    user.AddressCity,
		AddressZipCode: user.AddressZipCode,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

// MapUsersToResponse converts a list of domain users to API responses.
func MapUsersToResponse(users []*userDomain.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, MapUserToResponse(user))
	}
	return responses
}
