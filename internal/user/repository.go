package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/templat/internal/platform/db"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

var (
	ErrNotFound    = errors.New("user repository: user not found")
	ErrDuplicate   = errors.New("user repository: email already registered")
	ErrQueryFailed = errors.New("user repository: query failed")
)

// Repository is the persistence contract for users.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (User, error)
	List(ctx context.Context) ([]User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Find(ctx context.Context, userID string) (*User, error)
}

// SQLRepository stores users in postgres. Queries join the transaction in ctx if there is one.
type SQLRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(conn *sql.DB) *SQLRepository {
	return &SQLRepository{db: conn}
}

const QueryUserCreate = `
INSERT INTO users (id, email, password_hash, role)
VALUES ($1, $2, $3, $4)
RETURNING id, email, role, created_at, updated_at
`

func (r *SQLRepository) Create(ctx context.Context, params CreateParams) (User, error) {
	role := params.Role
	if role == "" {
		role = DefaultRole
	}

	id, err := uuid.NewV7()
	if err != nil {
		return User{}, fmt.Errorf("generate user id: %w", err)
	}

	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, QueryUserCreate, id.String(), params.Email, params.PasswordHash, role)

	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return User{}, fmt.Errorf("%w: %s", ErrDuplicate, params.Email)
		}
		return User{}, fmt.Errorf("%w: create user with email %s: %w", ErrQueryFailed, params.Email, err)
	}
	u.PasswordHash = params.PasswordHash

	return u, nil
}

const QueryUserFindByEmail = `
SELECT id, email, password_hash, role, metadata, created_at, updated_at FROM users
WHERE email = $1
LIMIT 1
`

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := db.ExecutorFromContext(ctx, r.db).QueryRowContext(ctx, QueryUserFindByEmail, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("find user with email %s: %w", email, err)
	}
	return u, nil
}

const QueryUserFind = `
SELECT id, email, password_hash, role, metadata, created_at, updated_at FROM users
WHERE id = $1
`

func (r *SQLRepository) Find(ctx context.Context, userID string) (*User, error) {
	if err := uuid.Validate(userID); err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", ErrNotFound, userID)
	}

	row := db.ExecutorFromContext(ctx, r.db).QueryRowContext(ctx, QueryUserFind, userID)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("find user with id %s: %w", userID, err)
	}
	return u, nil
}

const QueryUserList = `
SELECT id, email, role, metadata, created_at, updated_at FROM users
ORDER BY created_at, id
`

func (r *SQLRepository) List(ctx context.Context) ([]User, error) {
	rows, err := db.ExecutorFromContext(ctx, r.db).QueryContext(ctx, QueryUserList)
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %w", ErrQueryFailed, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Role, &u.Metadata, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("user repository: scan row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user repository: iterate over user rows: %w", err)
	}

	return users, nil
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Metadata, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	return &u, nil
}
