package bookingrepo

import (
	"context"
	"errors"

	"zoobackend/model"
	"zoobackend/repository/jsonstore"
)

var ErrNotFound = errors.New("booking not found")

type Repo interface {
	List(ctx context.Context) ([]model.Booking, error)
	Get(ctx context.Context, id string) (*model.Booking, error)
	Insert(ctx context.Context, b model.Booking) error
	Update(ctx context.Context, id string, apply func(*model.Booking)) (*model.Booking, error)
	Remove(ctx context.Context, id string) (*model.Booking, error)
}

type repo struct{ store *jsonstore.Store[model.Booking] }

func New(store *jsonstore.Store[model.Booking]) Repo { return &repo{store: store} }

func (r *repo) List(ctx context.Context) ([]model.Booking, error) {
	return r.store.Load()
}

func (r *repo) Get(ctx context.Context, id string) (*model.Booking, error) {
	bookings, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *repo) Insert(ctx context.Context, b model.Booking) error {
	return r.store.Mutate(func(bookings []model.Booking) ([]model.Booking, error) {
		return append(bookings, b), nil
	})
}

func (r *repo) Update(ctx context.Context, id string, apply func(*model.Booking)) (*model.Booking, error) {
	var updated model.Booking
	err := r.store.Mutate(func(bookings []model.Booking) ([]model.Booking, error) {
		for i := range bookings {
			if bookings[i].ID == id {
				apply(&bookings[i])
				updated = bookings[i]
				return bookings, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *repo) Remove(ctx context.Context, id string) (*model.Booking, error) {
	var removed model.Booking
	err := r.store.Mutate(func(bookings []model.Booking) ([]model.Booking, error) {
		for i := range bookings {
			if bookings[i].ID == id {
				removed = bookings[i]
				return append(bookings[:i], bookings[i+1:]...), nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}
