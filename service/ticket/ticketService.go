package ticketsvc

import (
	"context"
	"errors"

	"zoobackend/model"
	ticketrepo "zoobackend/repository/ticket"
	"zoobackend/util/ident"
)

type ErrCode string

const (
	ErrNotFound ErrCode = "NOT_FOUND"
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

// CreateReq carries a new ticket tier. Admin UIs supply stable slugs like
// "basic" or "vip" as the id; without one the clock-derived id is used.
type CreateReq struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	PriceIndian    float64  `json:"priceIndian" validate:"gte=0"`
	PriceForeigner float64  `json:"priceForeigner" validate:"gte=0"`
	Features       []string `json:"features"`
}

type Patch struct {
	Name           *string   `json:"name"`
	Description    *string   `json:"description"`
	PriceIndian    *float64  `json:"priceIndian" validate:"omitempty,gte=0"`
	PriceForeigner *float64  `json:"priceForeigner" validate:"omitempty,gte=0"`
	Features       *[]string `json:"features"`
}

type Repo = ticketrepo.Repo

type Service interface {
	List(ctx context.Context) ([]model.TicketType, error)
	Get(ctx context.Context, id string) (*model.TicketType, error)
	Create(ctx context.Context, req CreateReq) (*model.TicketType, error)
	Update(ctx context.Context, id string, p Patch) (*model.TicketType, error)
	Delete(ctx context.Context, id string) (*model.TicketType, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.TicketType, error) {
	tickets, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	if tickets == nil {
		tickets = []model.TicketType{}
	}
	return tickets, nil
}

func (s *service) Get(ctx context.Context, id string) (*model.TicketType, error) {
	t, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ticketrepo.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (s *service) Create(ctx context.Context, req CreateReq) (*model.TicketType, error) {
	t := model.TicketType{
		ID:             req.ID,
		Name:           req.Name,
		Description:    req.Description,
		PriceIndian:    req.PriceIndian,
		PriceForeigner: req.PriceForeigner,
		Features:       req.Features,
	}
	if t.ID == "" {
		t.ID = ident.TimeID()
	}
	if err := s.r.Insert(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *service) Update(ctx context.Context, id string, p Patch) (*model.TicketType, error) {
	t, err := s.r.Update(ctx, id, func(t *model.TicketType) {
		if p.Name != nil {
			t.Name = *p.Name
		}
		if p.Description != nil {
			t.Description = *p.Description
		}
		if p.PriceIndian != nil {
			t.PriceIndian = *p.PriceIndian
		}
		if p.PriceForeigner != nil {
			t.PriceForeigner = *p.PriceForeigner
		}
		if p.Features != nil {
			t.Features = *p.Features
		}
	})
	if err != nil {
		if errors.Is(err, ticketrepo.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id string) (*model.TicketType, error) {
	t, err := s.r.Remove(ctx, id)
	if err != nil {
		if errors.Is(err, ticketrepo.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}
