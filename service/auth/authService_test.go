// service/auth/auth_service_test.go
package authsvc

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/Mohit-0987/Bike-Rental-System/model"
	customerrepo "github.com/Mohit-0987/Bike-Rental-System/repository/customer"
)

type mockRepo struct {
	byEmailFn func(ctx context.Context, email string) (*model.Customer, error)
	byIDFn    func(ctx context.Context, id int64) (*model.Customer, error)
	createFn  func(ctx context.Context, c *model.Customer) error
}

var _ customerrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.Customer, error) {
	if m.byEmailFn == nil {
		return nil, sql.ErrNoRows
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) ByID(ctx context.Context, id int64) (*model.Customer, error) {
	if m.byIDFn == nil {
		return nil, sql.ErrNoRows
	}
	return m.byIDFn(ctx, id)
}

func (m *mockRepo) Create(ctx context.Context, c *model.Customer) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, c)
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, c *model.Customer) error {
			c.ID = 42
			return nil
		},
	}
	svc := New(m, "test-secret")

	req := model.RegisterReq{
		Name:  "Mohit Sharma",
		Email: "USER@Example.COM",
		Phone: "555-0101",
	}

	c, tok, err := svc.Register(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(42), c.ID)
	require.Equal(t, "user@example.com", c.Email)
	require.Equal(t, "Mohit Sharma", c.Name)
}

func TestRegister_BadInput(t *testing.T) {
	ctx := context.Background()

	created := false
	m := &mockRepo{
		createFn: func(ctx context.Context, c *model.Customer) error {
			created = true
			return nil
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		Name:  " ",
		Email: "x@example.com",
		Phone: "555-0101",
	})
	require.ErrorIs(t, err, ErrBadInput)
	require.False(t, created, "repo must not be touched on bad input")
}

func TestRegister_EmailTaken(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, c *model.Customer) error {
			return &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "customers_email_key",
			}
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		Name:  "Dup",
		Email: "taken@example.com",
		Phone: "555-0102",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_CreateError(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, c *model.Customer) error {
			return errors.New("db down")
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Register(ctx, model.RegisterReq{
		Name:  "Ok",
		Email: "ok@example.com",
		Phone: "555-0103",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmailTaken)
	require.NotErrorIs(t, err, ErrBadInput)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.Customer, error) {
			require.Equal(t, "user@example.com", email)
			return &model.Customer{ID: 7, Name: "Mohit", Email: email}, nil
		},
	}
	svc := New(m, "test-secret")

	c, tok, err := svc.Login(ctx, model.LoginReq{Email: "User@Example.com"})
	require.NoError(t, err)
	require.NotNil(t, c)
	require.NotEmpty(t, tok)
	require.Equal(t, int64(7), c.ID)
}

func TestLogin_BadInput(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{}, "test-secret")

	_, _, err := svc.Login(ctx, model.LoginReq{Email: " "})
	require.ErrorIs(t, err, ErrBadInput)
}

func TestLogin_CustomerNotFound(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.Customer, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Login(ctx, model.LoginReq{Email: "missing@example.com"})
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestMapDuplicateErr(t *testing.T) {
	require.ErrorIs(t, mapDuplicateErr(&pgconn.PgError{
		Code:    pgerrcode.UniqueViolation,
		Message: `duplicate key value violates unique constraint "customers_email_key"`,
	}), ErrEmailTaken)
	require.NoError(t, mapDuplicateErr(errors.New("plain")))
}
