package customerrepo

import (
	"context"
	"database/sql"

	"github.com/Mohit-0987/Bike-Rental-System/model"
)

type Repo interface {
	Create(ctx context.Context, c *model.Customer) error
	ByEmail(ctx context.Context, email string) (*model.Customer, error)
	ByID(ctx context.Context, id int64) (*model.Customer, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO customers(name, email, phone)
		VALUES ($1,$2,$3)
		RETURNING id, created_at`,
		c.Name, c.Email, c.Phone,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.Customer, error) {
	c := &model.Customer{}
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, email, phone, created_at
        FROM customers
        WHERE lower(email) = lower($1)`,
		email,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Customer, error) {
	c := &model.Customer{}
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, email, phone, created_at
        FROM customers
        WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}
