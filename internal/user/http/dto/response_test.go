package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userDomain "github.com/techfood/usuarios/internal/user/domain"
)

func TestMapUserToResponse(t *testing.T) {
	now := time.Now().UTC()
	user := &userDomain.User{
		ID:        1,
		Name:      "João Silva",
		Email:     "joao@email.com",
		Login:     "joao.silva",
		Password:  "$argon2id$v=19$m=65536,t=2,p=1$c2FsdA$aGFzaA",
		CPF:       "12345678901",
		Kind:      userDomain.KindCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	}

	response := MapUserToResponse(user)

	assert.Equal(t, int64(1), response.ID)
	assert.Equal(t, "CLIENTE", response.Kind)
	assert.Equal(t, now, response.CreatedAt)

	// The serialized form must never carry the password hash
	payload, err := json.Marshal(response)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "senha")
	assert.NotContains(t, string(payload), "argon2id")
	assert.Contains(t, string(payload), `"tipoUsuario":"CLIENTE"`)
	assert.Contains(t, string(payload), `"dataCriacao"`)
}

func TestMapUsersToResponse(t *testing.T) {
	users := []*userDomain.User{
		{ID: 1, Kind: userDomain.KindCustomer},
		{ID: 2, Kind: userDomain.KindRestaurantOwner},
	}

	responses := MapUsersToResponse(users)

	require.Len(t, responses, 2)
	assert.Equal(t, "DONO_RESTAURANTE", responses[1].Kind)

	// Empty input serializes as [] rather than null
	payload, err := json.Marshal(MapUsersToResponse(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(payload))
}
