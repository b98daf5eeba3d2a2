package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validUserRequest() UserRequest {
	return UserRequest{
		Name:           "João Silva",
		Email:          "joao@email.com",
		Login:          "joao.silva",
		Password:       "senha123",
		CPF:            "12345678901",
		Kind:           "CLIENTE",
		AddressStreet:  "Rua das Flores",
		AddressNumber:  "123",
		AddressCity:    "São Paulo",
		AddressZipCode: "01234567",
	}
}

func TestUserRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := validUserRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("valid request without address", func(t *testing.T) {
		req := validUserRequest()
		req.AddressStreet = ""
		req.AddressNumber = ""
		req.AddressCity = ""
		req.AddressZipCode = ""
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name   string
		mutate func(r *UserRequest)
	}{
		{"missing name", func(r *UserRequest) { r.Name = "" }},
		{"blank name", func(r *UserRequest) { r.Name = "   " }},
		{"short name", func(r *UserRequest) { r.Name = "Jo" }},
		{"missing email", func(r *UserRequest) { r.Email = "" }},
		{"malformed email", func(r *UserRequest) { r.Email = "joao-at-email.com" }},
		{"short login", func(r *UserRequest) { r.Login = "jo" }},
		{"short password", func(r *UserRequest) { r.Password = "12345" }},
		{"cpf with letters", func(r *UserRequest) { r.CPF = "1234567890a" }},
		{"cpf too short", func(r *UserRequest) { r.CPF = "123456789" }},
		{"unknown kind", func(r *UserRequest) { r.Kind = "GERENTE" }},
		{"missing kind", func(r *UserRequest) { r.Kind = "" }},
		{"zip code too long", func(r *UserRequest) { r.AddressZipCode = "012345678" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUserRequest()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestChangePasswordRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := ChangePasswordRequest{CurrentPassword: "senha123", NewPassword: "novasenha"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing current password", func(t *testing.T) {
		req := ChangePasswordRequest{NewPassword: "novasenha"}
		assert.Error(t, req.Validate())
	})

	t.Run("short new password", func(t *testing.T) {
		req := ChangePasswordRequest{CurrentPassword: "senha123", NewPassword: "abc"}
		assert.Error(t, req.Validate())
	})
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := LoginRequest{Login: "joao.silva", Password: "senha123"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing login", func(t *testing.T) {
		req := LoginRequest{Password: "senha123"}
		assert.Error(t, req.Validate())
	})

	t.Run("missing password", func(t *testing.T) {
		req := LoginRequest{Login: "joao.silva"}
		assert.Error(t, req.Validate())
	})
}
