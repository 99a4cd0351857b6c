package authsvc

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Mohit-0987/Bike-Rental-System/model"
	customerrepo "github.com/Mohit-0987/Bike-Rental-System/repository/customer"
	jwtutil "github.com/Mohit-0987/Bike-Rental-System/util/jwt"
)

var (
	ErrEmailTaken       = errors.New("email already registered")
	ErrBadInput         = errors.New("bad input")
	ErrCustomerNotFound = errors.New("customer not found")
)

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.Customer, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.Customer, string, error)
}

type service struct {
	cr     customerrepo.Repo
	secret string
}

func New(cr customerrepo.Repo, secret string) Service { return &service{cr: cr, secret: secret} }

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.Customer, string, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)
	if name == "" || email == "" || phone == "" {
		return nil, "", ErrBadInput
	}

	c := &model.Customer{
		Name:  name,
		Email: email,
		Phone: phone,
	}

	if err := s.cr.Create(ctx, c); err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, "", derr
		}
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, c.ID, "customer", 24)
	if err != nil {
		return nil, "", err
	}
	return c, token, nil
}

func mapDuplicateErr(err error) error {

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		cn := strings.ToLower(pgErr.ConstraintName)
		msg := strings.ToLower(pgErr.Message)

		if strings.Contains(cn, "customers_email") || strings.Contains(msg, "email") {
			return ErrEmailTaken
		}
		return ErrBadInput
	}

	return nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.Customer, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, "", ErrBadInput
	}

	c, err := s.cr.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrCustomerNotFound
		}
		return nil, "", err
	}
	token, err := jwtutil.Issue(s.secret, c.ID, "customer", 24)
	if err != nil {
		return nil, "", err
	}
	return c, token, nil
}
