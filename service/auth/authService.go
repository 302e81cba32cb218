package authsvc

import (
	"context"
	"errors"
	"strings"

	"zoobackend/model"
	userrepo "zoobackend/repository/user"
	"zoobackend/util/hash"
	"zoobackend/util/ident"
)

type ErrCode string

const (
	ErrBadInput     ErrCode = "BAD_INPUT"
	ErrEmailTaken   ErrCode = "EMAIL_TAKEN"
	ErrInvalidCreds ErrCode = "INVALID_CREDS"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Repo = userrepo.Repo

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.PublicUser, error)
	Login(ctx context.Context, req model.LoginReq) (*model.PublicUser, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.PublicUser, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Password) == "" {
		return nil, makeErr(ErrBadInput)
	}

	existing, err := s.r.ByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, makeErr(ErrEmailTaken)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := model.User{
		ID:       ident.TimeID(),
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     "user",
	}
	if err := s.r.Insert(ctx, u); err != nil {
		return nil, err
	}

	pub := u.Public()
	return &pub, nil
}

// Login deliberately collapses "unknown email" and "wrong password" into
// the same error so callers cannot probe which emails are registered.
func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.PublicUser, error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		return nil, makeErr(ErrBadInput)
	}

	u, err := s.r.ByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, makeErr(ErrInvalidCreds)
	}
	if !hash.Check(u.Password, req.Password) {
		return nil, makeErr(ErrInvalidCreds)
	}

	pub := u.Public()
	return &pub, nil
}
