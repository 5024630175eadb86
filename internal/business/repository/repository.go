package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/bizdir/backend/internal/business/domain"
	"github.com/bizdir/backend/internal/common/db"
)

var ErrBusinessNotFound = errors.New("business not found")

type Repository interface {
	Create(ctx context.Context, business domain.Business) error
	FindByID(ctx context.Context, id domain.ID) (domain.Business, error)
	FindAll(ctx context.Context) ([]domain.Summary, error)
	Update(ctx context.Context, business domain.Business) (domain.Business, error)
	Delete(ctx context.Context, id domain.ID) error
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Create(ctx context.Context, business domain.Business) error {
	start := time.Now()
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO businesses (id, name, address, phone, added_on) VALUES ($1, $2, $3, $4, $5)`,
		string(business.ID),
		business.Name,
		business.Address,
		business.Phone,
		business.AddedOn,
	)
	return db.HandleExecError(err, "create business", start)
}

func (r *PgRepository) FindByID(ctx context.Context, id domain.ID) (domain.Business, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT id, name, address, phone, added_on FROM businesses WHERE id = $1`,
		string(id),
	)

	var business domain.Business
	err := row.Scan(&business.ID, &business.Name, &business.Address, &business.Phone, &business.AddedOn)
	if err := db.HandleQueryError(err, ErrBusinessNotFound, "find business by id", start); err != nil {
		return domain.Business{}, err
	}
	return business, nil
}

func (r *PgRepository) FindAll(ctx context.Context) ([]domain.Summary, error) {
	start := time.Now()
	rows, err := r.pool.Query(
		ctx,
		`SELECT id, name, address, phone FROM businesses ORDER BY name ASC`,
	)
	if err != nil {
		return nil, db.HandleExecError(err, "list businesses", start)
	}
	defer rows.Close()

	var businesses []domain.Summary
	for rows.Next() {
		var b domain.Summary
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.Phone); err != nil {
			return nil, db.HandleExecError(err, "scan business", start)
		}
		businesses = append(businesses, b)
	}

	if rows.Err() != nil {
		return nil, db.HandleExecError(rows.Err(), "list businesses", start)
	}

	db.MeasureQueryDuration("list businesses", start)
	return businesses, nil
}

// Update replaces all mutable fields, addedOn included.
func (r *PgRepository) Update(ctx context.Context, business domain.Business) (domain.Business, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`UPDATE businesses
		 SET name = $2, address = $3, phone = $4, added_on = $5
		 WHERE id = $1
		 RETURNING id, name, address, phone, added_on`,
		string(business.ID),
		business.Name,
		business.Address,
		business.Phone,
		business.AddedOn,
	)

	var updated domain.Business
	err := row.Scan(&updated.ID, &updated.Name, &updated.Address, &updated.Phone, &updated.AddedOn)
	if err := db.HandleQueryError(err, ErrBusinessNotFound, "update business", start); err != nil {
		return domain.Business{}, err
	}
	return updated, nil
}

func (r *PgRepository) Delete(ctx context.Context, id domain.ID) error {
	start := time.Now()
	tag, err := r.pool.Exec(
		ctx,
		`DELETE FROM businesses WHERE id = $1`,
		string(id),
	)
	if err := db.HandleExecError(err, "delete business", start); err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBusinessNotFound
	}
	return nil
}
