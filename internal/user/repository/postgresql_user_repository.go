// Package repository provides data persistence implementations for user entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/techfood/usuarios/internal/database"
	"github.com/techfood/usuarios/internal/user/domain"

	apperrors "github.com/techfood/usuarios/internal/errors"
)

const userColumns = `id_usuario, nm_usuario, ds_email, ds_login, ds_senha, nr_cpf, tp_usuario,
	ds_endereco_rua, nr_endereco_numero, ds_endereco_cidade, nr_endereco_cep,
	dt_criacao, dt_atualizacao`

// PostgreSQLUserRepository handles user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{
		db: db,
	}
}

// Save inserts the user when it has no identifier yet, otherwise updates the
// existing row. Timestamps are populated on the entity after the write.
func (r *PostgreSQLUserRepository) Save(ctx context.Context, user *domain.User) error {
	if user.ID == 0 {
		return r.insert(ctx, user)
	}
	return r.update(ctx, user)
}

func (r *PostgreSQLUserRepository) insert(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO tb_usuarios (nm_usuario, ds_email, ds_login, ds_senha, nr_cpf,
			tp_usuario, ds_endereco_rua, nr_endereco_numero, ds_endereco_cidade,
			nr_endereco_cep, dt_criacao, dt_atualizacao)
		  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		  RETURNING id_usuario`

	now := time.Now().UTC()

	err := querier.QueryRowContext(ctx, query,
		user.Name,
		user.Email,
		user.Login,
		user.Password,
		user.CPF,
		string(user.Kind),
		nullString(user.AddressStreet),
		nullString(user.AddressNumber),
		nullString(user.AddressCity),
		nullString(user.AddressZipCode),
		now,
		now,
	).Scan(&user.ID)
	if err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			return dupErr
		}
		return apperrors.Wrap(err, "failed to insert user")
	}

	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

func (r *PostgreSQLUserRepository) update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE tb_usuarios SET
			nm_usuario = $1, ds_email = $2, ds_login = $3, ds_senha = $4, nr_cpf = $5,
			tp_usuario = $6, ds_endereco_rua = $7, nr_endereco_numero = $8,
			ds_endereco_cidade = $9, nr_endereco_cep = $10, dt_atualizacao = $11
		  WHERE id_usuario = $12`

	now := time.Now().UTC()

	result, err := querier.ExecContext(ctx, query,
		user.Name,
		user.Email,
		user.Login,
		user.Password,
		user.CPF,
		string(user.Kind),
		nullString(user.AddressStreet),
		nullString(user.AddressNumber),
		nullString(user.AddressCity),
		nullString(user.AddressZipCode),
		now,
		user.ID,
	)
	if err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			return dupErr
		}
		return apperrors.Wrap(err, "failed to update user")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	user.UpdatedAt = now
	return nil
}

// GetByID retrieves a user by ID.
func (r *PostgreSQLUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_usuarios WHERE id_usuario = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmail retrieves a user by email.
func (r *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_usuarios WHERE ds_email = $1`
	return r.getOne(ctx, query, email)
}

// GetByLogin retrieves a user by login.
func (r *PostgreSQLUserRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_usuarios WHERE ds_login = $1`
	return r.getOne(ctx, query, login)
}

// GetByCPF retrieves a user by CPF.
func (r *PostgreSQLUserRepository) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_usuarios WHERE nr_cpf = $1`
	return r.getOne(ctx, query, cpf)
}

// GetAll retrieves all users ordered by identifier.
func (r *PostgreSQLUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_usuarios ORDER BY id_usuario`
	return r.getMany(ctx, query)
}

// SearchByName retrieves users whose name contains the fragment, case-insensitive.
func (r *PostgreSQLUserRepository) SearchByName(ctx context.Context, fragment string) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_usuarios
		  WHERE LOWER(nm_usuario) LIKE LOWER($1) ORDER BY id_usuario`
	return r.getMany(ctx, query, "%"+fragment+"%")
}

// GetByKind retrieves all users of the given kind.
func (r *PostgreSQLUserRepository) GetByKind(ctx context.Context, kind domain.UserKind) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_usuarios WHERE tp_usuario = $1 ORDER BY id_usuario`
	return r.getMany(ctx, query, string(kind))
}

// ExistsByEmail reports whether a user with the email exists.
func (r *PostgreSQLUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT COUNT(*) FROM tb_usuarios WHERE ds_email = $1`, email)
}

// ExistsByLogin reports whether a user with the login exists.
func (r *PostgreSQLUserRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	return r.exists(ctx, `SELECT COUNT(*) FROM tb_usuarios WHERE ds_login = $1`, login)
}

// ExistsByCPF reports whether a user with the CPF exists.
func (r *PostgreSQLUserRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	return r.exists(ctx, `SELECT COUNT(*) FROM tb_usuarios WHERE nr_cpf = $1`, cpf)
}

// ExistsByID reports whether a user with the identifier exists.
func (r *PostgreSQLUserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT COUNT(*) FROM tb_usuarios WHERE id_usuario = $1`, id)
}

// Delete removes a user row by identifier.
func (r *PostgreSQLUserRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM tb_usuarios WHERE id_usuario = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *PostgreSQLUserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	user, err := scanUser(querier.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}

	return user, nil
}

func (r *PostgreSQLUserRepository) getMany(ctx context.Context, query string, args ...any) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}

	return users, nil
}

func (r *PostgreSQLUserRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	var count int
	if err := querier.QueryRowContext(ctx, query, arg).Scan(&count); err != nil {
		return false, apperrors.Wrap(err, "failed to check user existence")
	}

	return count > 0, nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*domain.User, error) {
	var user domain.User
	var kind string
	var street, number, city, zipCode sql.NullString

	err := s.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Login,
		&user.Password,
		&user.CPF,
		&kind,
		&street,
		&number,
		&city,
		&zipCode,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Kind = domain.UserKind(kind)
	user.AddressStreet = street.String
	user.AddressNumber = number.String
	user.AddressCity = city.String
	user.AddressZipCode = zipCode.String

	return &user, nil
}

// nullString converts an empty string to a SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// mapUniqueViolation translates a unique-constraint violation into the matching
// duplicate domain error. Returns nil when err is not a unique violation.
//
// PostgreSQL reports `duplicate key value violates unique constraint "<name>"`;
// MySQL reports `Error 1062: Duplicate entry '<value>' for key '<name>'`. Both
// carry the constraint name, so a single mapper serves both drivers.
func mapUniqueViolation(err error) error {
	if err == nil {
		return nil
	}

	errMsg := strings.ToLower(err.Error())
	if !strings.Contains(errMsg, "duplicate key") &&
		!strings.Contains(errMsg, "unique constraint") &&
		!strings.Contains(errMsg, "duplicate entry") &&
		!strings.Contains(errMsg, "1062") {
		return nil
	}

	switch {
	case strings.Contains(errMsg, "un_usuarios_email"):
		return domain.ErrEmailTaken
	case strings.Contains(errMsg, "un_usuarios_login"):
		return domain.ErrLoginTaken
	case strings.Contains(errMsg, "un_usuarios_cpf"):
		return domain.ErrCPFTaken
	default:
		return apperrors.Wrap(apperrors.ErrBusinessRule, "registro duplicado")
	}
}
