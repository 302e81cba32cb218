package ticketrepo

import (
	"context"
	"errors"

	"zoobackend/model"
	"zoobackend/repository/jsonstore"
)

var ErrNotFound = errors.New("ticket type not found")

type Repo interface {
	List(ctx context.Context) ([]model.TicketType, error)
	Get(ctx context.Context, id string) (*model.TicketType, error)
	Insert(ctx context.Context, t model.TicketType) error
	Update(ctx context.Context, id string, apply func(*model.TicketType)) (*model.TicketType, error)
	Remove(ctx context.Context, id string) (*model.TicketType, error)
}

type repo struct{ store *jsonstore.Store[model.TicketType] }

func New(store *jsonstore.Store[model.TicketType]) Repo { return &repo{store: store} }

func (r *repo) List(ctx context.Context) ([]model.TicketType, error) {
	return r.store.Load()
}

func (r *repo) Get(ctx context.Context, id string) (*model.TicketType, error) {
	tickets, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		if tickets[i].ID == id {
			return &tickets[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *repo) Insert(ctx context.Context, t model.TicketType) error {
	return r.store.Mutate(func(tickets []model.TicketType) ([]model.TicketType, error) {
		return append(tickets, t), nil
	})
}

func (r *repo) Update(ctx context.Context, id string, apply func(*model.TicketType)) (*model.TicketType, error) {
	var updated model.TicketType
	err := r.store.Mutate(func(tickets []model.TicketType) ([]model.TicketType, error) {
		for i := range tickets {
			if tickets[i].ID == id {
				apply(&tickets[i])
				updated = tickets[i]
				return tickets, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *repo) Remove(ctx context.Context, id string) (*model.TicketType, error) {
	var removed model.TicketType
	err := r.store.Mutate(func(tickets []model.TicketType) ([]model.TicketType, error) {
		for i := range tickets {
			if tickets[i].ID == id {
				removed = tickets[i]
				return append(tickets[:i], tickets[i+1:]...), nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}
