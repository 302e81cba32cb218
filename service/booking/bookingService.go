package bookingsvc

import (
	"context"
	"errors"

	"zoobackend/model"
	bookingrepo "zoobackend/repository/booking"
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

// CreateReq carries the caller-composed booking. TotalAmount is accepted
// verbatim; the price quote happens before creation, not here. ID and
// CreatedAt are synthesized unless the caller supplies them.
type CreateReq struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	UserName    string  `json:"userName"`
	UserEmail   string  `json:"userEmail"`
	TicketType  string  `json:"ticketType"`
	Nationality string  `json:"nationality" validate:"omitempty,oneof=Indian Foreigner"`
	VisitDate   string  `json:"visitDate"`
	Adults      int     `json:"adults" validate:"gte=0"`
	Children    int     `json:"children" validate:"gte=0"`
	TotalAmount float64 `json:"totalAmount" validate:"gte=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=Pending Confirmed Cancelled"`
	CreatedAt   string  `json:"createdAt"`
}

// Patch covers the mutable booking fields. Status moves Pending →
// Confirmed or → Cancelled on admin action; the service does not block
// transitions out of terminal states, it only rejects values outside the
// enum.
type Patch struct {
	UserName    *string  `json:"userName"`
	UserEmail   *string  `json:"userEmail"`
	TicketType  *string  `json:"ticketType"`
	Nationality *string  `json:"nationality" validate:"omitempty,oneof=Indian Foreigner"`
	VisitDate   *string  `json:"visitDate"`
	Adults      *int     `json:"adults" validate:"omitempty,gte=0"`
	Children    *int     `json:"children" validate:"omitempty,gte=0"`
	TotalAmount *float64 `json:"totalAmount" validate:"omitempty,gte=0"`
	Status      *string  `json:"status" validate:"omitempty,oneof=Pending Confirmed Cancelled"`
}

type Repo = bookingrepo.Repo

type Service interface {
	List(ctx context.Context) ([]model.Booking, error)
	Get(ctx context.Context, id string) (*model.Booking, error)
	Create(ctx context.Context, req CreateReq) (*model.Booking, error)
	Update(ctx context.Context, id string, p Patch) (*model.Booking, error)
	Delete(ctx context.Context, id string) (*model.Booking, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return bookings, nil
}

func (s *service) Get(ctx context.Context, id string) (*model.Booking, error) {
	b, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, bookingrepo.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Create(ctx context.Context, req CreateReq) (*model.Booking, error) {
	b := model.Booking{
		ID:          req.ID,
		UserID:      req.UserID,
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
		TicketType:  req.TicketType,
		Nationality: model.Nationality(req.Nationality),
		VisitDate:   req.VisitDate,
		Adults:      req.Adults,
		Children:    req.Children,
		TotalAmount: req.TotalAmount,
		Status:      model.BookingStatus(req.Status),
		CreatedAt:   req.CreatedAt,
	}
	if b.ID == "" {
		b.ID = ident.BookingID()
	}
	if b.CreatedAt == "" {
		b.CreatedAt = ident.Today()
	}
	if err := s.r.Insert(ctx, b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *service) Update(ctx context.Context, id string, p Patch) (*model.Booking, error) {
	b, err := s.r.Update(ctx, id, func(b *model.Booking) {
		if p.UserName != nil {
			b.UserName = *p.UserName
		}
		if p.UserEmail != nil {
			b.UserEmail = *p.UserEmail
		}
		if p.TicketType != nil {
			b.TicketType = *p.TicketType
		}
		if p.Nationality != nil {
			b.Nationality = model.Nationality(*p.Nationality)
		}
		if p.VisitDate != nil {
			b.VisitDate = *p.VisitDate
		}
		if p.Adults != nil {
			b.Adults = *p.Adults
		}
		if p.Children != nil {
			b.Children = *p.Children
		}
		if p.TotalAmount != nil {
			b.TotalAmount = *p.TotalAmount
		}
		if p.Status != nil {
			b.Status = model.BookingStatus(*p.Status)
		}
	})
	if err != nil {
		if errors.Is(err, bookingrepo.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) (*model.Booking, error) {
	b, err := s.r.Remove(ctx, id)
	if err != nil {
		if errors.Is(err, bookingrepo.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}
