package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/bizdir/backend/internal/common/db"
	"github.com/bizdir/backend/internal/user/domain"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

const uniqueViolationCode = "23505"

type Repository interface {
	Create(ctx context.Context, user domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id domain.ID) error
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Create(ctx context.Context, user domain.User) error {
	start := time.Now()
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO users (id, first_name, last_name, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		string(user.ID),
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		db.MeasureQueryDuration("create user", start)
		return ErrEmailAlreadyExists
	}
	return db.HandleExecError(err, "create user", start)
}

func (r *PgRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT id, first_name, last_name, email, password_hash, created_at
		 FROM users WHERE lower(email) = lower($1)`,
		email,
	)

	var user domain.User
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err := db.HandleQueryError(err, ErrUserNotFound, "find user by email", start); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *PgRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	start := time.Now()
	rows, err := r.pool.Query(
		ctx,
		`SELECT id, first_name, last_name, email, password_hash, created_at
		 FROM users ORDER BY last_name ASC`,
	)
	if err != nil {
		return nil, db.HandleExecError(err, "list users", start)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, db.HandleExecError(err, "scan user", start)
		}
		users = append(users, u)
	}

	if rows.Err() != nil {
		return nil, db.HandleExecError(rows.Err(), "list users", start)
	}

	db.MeasureQueryDuration("list users", start)
	return users, nil
}

func (r *PgRepository) Delete(ctx context.Context, id domain.ID) error {
	start := time.Now()
	tag, err := r.pool.Exec(
		ctx,
		`DELETE FROM users WHERE id = $1`,
		string(id),
	)
	if err := db.HandleExecError(err, "delete user", start); err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
