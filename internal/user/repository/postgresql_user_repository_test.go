package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/techfood/usuarios/internal/errors"
	"github.com/techfood/usuarios/internal/user/domain"
)

func newMockRepository(t *testing.T) (*PostgreSQLUserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgreSQLUserRepository(db), mock
}

func userRows(users ...*domain.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id_usuario", "nm_usuario", "ds_email", "ds_login", "ds_senha", "nr_cpf",
		"tp_usuario", "ds_endereco_rua", "nr_endereco_numero", "ds_endereco_cidade",
		"nr_endereco_cep", "dt_criacao", "dt_atualizacao",
	})
	for _, u := range users {
		rows.AddRow(
			u.ID, u.Name, u.Email, u.Login, u.Password, u.CPF, string(u.Kind),
			u.AddressStreet, u.AddressNumber, u.AddressCity, u.AddressZipCode,
			u.CreatedAt, u.UpdatedAt,
		)
	}
	return rows
}

func sampleUser() *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:             1,
		Name:           "João Silva",
		Email:          "joao@email.com",
		Login:          "joao.silva",
		Password:       "$argon2id$hash",
		CPF:            "12345678901",
		Kind:           domain.KindCustomer,
		AddressStreet:  "Rua das Flores",
		AddressNumber:  "123",
		AddressCity:    "São Paulo",
		AddressZipCode: "01234567",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestPostgreSQLUserRepository_Save_Insert(t *testing.T) {
	repo, mock := newMockRepository(t)

	user := sampleUser()
	user.ID = 0

	mock.ExpectQuery(`INSERT INTO tb_usuarios`).
		WithArgs(
			user.Name, user.Email, user.Login, user.Password, user.CPF,
			string(user.Kind), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id_usuario"}).AddRow(int64(42)))

	err := repo.Save(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, int64(42), user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_Save_Insert_DuplicateEmail(t *testing.T) {
	repo, mock := newMockRepository(t)

	user := sampleUser()
	user.ID = 0

	mock.ExpectQuery(`INSERT INTO tb_usuarios`).
		WillReturnError(apperrors.New(
			`pq: duplicate key value violates unique constraint "un_usuarios_email"`,
		))

	err := repo.Save(context.Background(), user)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.True(t, apperrors.Is(err, apperrors.ErrBusinessRule))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_Save_Update(t *testing.T) {
	repo, mock := newMockRepository(t)

	user := sampleUser()
	createdAt := user.CreatedAt

	mock.ExpectExec(`UPDATE tb_usuarios SET`).
		WithArgs(
			user.Name, user.Email, user.Login, user.Password, user.CPF,
			string(user.Kind), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), user.ID,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, createdAt, user.CreatedAt, "update must not touch creation timestamp")
	assert.True(t, user.UpdatedAt.After(createdAt) || user.UpdatedAt.Equal(createdAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_Save_Update_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	user := sampleUser()
	user.ID = 999

	mock.ExpectExec(`UPDATE tb_usuarios SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), user)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepository(t)
	user := sampleUser()

	mock.ExpectQuery(`SELECT (.+) FROM tb_usuarios WHERE id_usuario`).
		WithArgs(user.ID).
		WillReturnRows(userRows(user))

	got, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.Kind, got.Kind)
	assert.Equal(t, user.AddressCity, got.AddressCity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM tb_usuarios WHERE id_usuario`).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_GetByLogin(t *testing.T) {
	repo, mock := newMockRepository(t)
	user := sampleUser()

	mock.ExpectQuery(`SELECT (.+) FROM tb_usuarios WHERE ds_login`).
		WithArgs(user.Login).
		WillReturnRows(userRows(user))

	got, err := repo.GetByLogin(context.Background(), user.Login)
	require.NoError(t, err)
	assert.Equal(t, user.Login, got.Login)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_SearchByName(t *testing.T) {
	repo, mock := newMockRepository(t)
	user := sampleUser()

	mock.ExpectQuery(`SELECT (.+) FROM tb_usuarios\s+WHERE LOWER\(nm_usuario\) LIKE LOWER`).
		WithArgs("%silva%").
		WillReturnRows(userRows(user))

	users, err := repo.SearchByName(context.Background(), "silva")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "João Silva", users[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_GetAll_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM tb_usuarios ORDER BY id_usuario`).
		WillReturnRows(userRows())

	users, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_GetByKind(t *testing.T) {
	repo, mock := newMockRepository(t)
	user := sampleUser()

	mock.ExpectQuery(`SELECT (.+) FROM tb_usuarios WHERE tp_usuario`).
		WithArgs("CLIENTE").
		WillReturnRows(userRows(user))

	users, err := repo.GetByKind(context.Background(), domain.KindCustomer)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, domain.KindCustomer, users[0].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_ExistsByEmail(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tb_usuarios WHERE ds_email`).
		WithArgs("joao@email.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "joao@email.com")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_ExistsByCPF_Absent(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tb_usuarios WHERE nr_cpf`).
		WithArgs("12345678901").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.ExistsByCPF(context.Background(), "12345678901")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_Delete(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`DELETE FROM tb_usuarios WHERE id_usuario`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`DELETE FROM tb_usuarios WHERE id_usuario`).
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "postgres email constraint",
			err:      apperrors.New(`pq: duplicate key value violates unique constraint "un_usuarios_email"`),
			expected: domain.ErrEmailTaken,
		},
		{
			name:     "mysql login constraint",
			err:      apperrors.New(`Error 1062: Duplicate entry 'joao.silva' for key 'un_usuarios_login'`),
			expected: domain.ErrLoginTaken,
		},
		{
			name:     "postgres cpf constraint",
			err:      apperrors.New(`pq: duplicate key value violates unique constraint "un_usuarios_cpf"`),
			expected: domain.ErrCPFTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapUniqueViolation(tt.err), tt.expected)
		})
	}

	t.Run("unrelated error passes through", func(t *testing.T) {
		assert.Nil(t, mapUniqueViolation(apperrors.New("connection refused")))
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, mapUniqueViolation(nil))
	})
}
