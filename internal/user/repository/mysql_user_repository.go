package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/techfood/usuarios/internal/database"
	"github.com/techfood/usuarios/internal/user/domain"

	apperrors "github.com/techfood/usuarios/internal/errors"
)

// MySQLUserRepository handles user persistence for MySQL.
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// Save inserts the user when it has no identifier yet, otherwise updates the
// existing row. Timestamps are populated on the entity after the write.
func (r *MySQLUserRepository) Save(ctx context.Context, user *domain.User) error {
	if user.ID == 0 {
		return r.insert(ctx, user)
	}
	return r.update(ctx, user)
}

func (r *MySQLUserRepository) insert(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO tb_usuarios (nm_usuario, ds_email, ds_login, ds_senha, nr_cpf,
			tp_usuario, ds_endereco_rua, nr_endereco_numero, ds_endereco_cidade,
			nr_endereco_cep, dt_criacao, dt_atualizacao)
		  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

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
		now,
	)
	if err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			return dupErr
		}
		return apperrors.Wrap(err, "failed to insert user")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read generated user id")
	}

	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

func (r *MySQLUserRepository) update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE tb_usuarios SET
			nm_usuario = ?, ds_email = ?, ds_login = ?, ds_senha = ?, nr_cpf = ?,
			tp_usuario = ?, ds_endereco_rua = ?, nr_endereco_numero = ?,
			ds_endereco_cidade = ?, nr_endereco_cep = ?, dt_atualizacao = ?
		  WHERE id_usuario = ?`

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
func (r *MySQLUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_usuarios WHERE id_usuario = ?`
	return r.getOne(ctx, query, id)
}

// GetByEmail retrieves a user by email.
func (r *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_usuarios WHERE ds_email = ?`
	return r.getOne(ctx, query, email)
}

// GetByLogin retrieves a user by login.
func (r *MySQLUserRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_usuarios WHERE ds_login = ?`
	return r.getOne(ctx, query, login)
}

// GetByCPF retrieves a user by CPF.
func (r *MySQLUserRepository) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_usuarios WHERE nr_cpf = ?`
	return r.getOne(ctx, query, cpf)
}

// GetAll retrieves all users ordered by identifier.
func (r *MySQLUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_usuarios ORDER BY id_usuario`
	return r.getMany(ctx, query)
}

// SearchByName retrieves users whose name contains the fragment, case-insensitive.
func (r *MySQLUserRepository) SearchByName(ctx context.Context, fragment string) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_usuarios
		  WHERE LOWER(nm_usuario) LIKE LOWER(?) ORDER BY id_usuario`
	return r.getMany(ctx, query, "%"+fragment+"%")
}

// GetByKind retrieves all users of the given kind.
func (r *MySQLUserRepository) GetByKind(ctx context.Context, kind domain.UserKind) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_usuarios WHERE tp_usuario = ? ORDER BY id_usuario`
	return r.getMany(ctx, query, string(kind))
}

// ExistsByEmail reports whether a user with the email exists.
func (r *MySQLUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT COUNT(*) FROM tb_usuarios WHERE ds_email = ?`, email)
}

// ExistsByLogin reports whether a user with the login exists.
func (r *MySQLUserRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	return r.exists(ctx, `SELECT COUNT(*) FROM tb_usuarios WHERE ds_login = ?`, login)
}

// ExistsByCPF reports whether a user with the CPF exists.
func (r *MySQLUserRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	return r.exists(ctx, `SELECT COUNT(*) FROM tb_usuarios WHERE nr_cpf = ?`, cpf)
}

// ExistsByID reports whether a user with the identifier exists.
func (r *MySQLUserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT COUNT(*) FROM tb_usuarios WHERE id_usuario = ?`, id)
}

// Delete removes a user row by identifier.
func (r *MySQLUserRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM tb_usuarios WHERE id_usuario = ?`, id)
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

func (r *MySQLUserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
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

func (r *MySQLUserRepository) getMany(ctx context.Context, query string, args ...any) ([]*domain.User, error) {
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

func (r *MySQLUserRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	var count int
	if err := querier.QueryRowContext(ctx, query, arg).Scan(&count); err != nil {
		return false, apperrors.Wrap(err, "failed to check user existence")
	}

	return count > 0, nil
}
