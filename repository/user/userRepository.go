package userrepo

import (
	"context"

	"zoobackend/model"
	"zoobackend/repository/jsonstore"
)

type Repo interface {
	List(ctx context.Context) ([]model.User, error)
	// ByEmail returns (nil, nil) when no account matches. The scan is a
	// case-sensitive exact match on the stored email.
	ByEmail(ctx context.Context, email string) (*model.User, error)
	Insert(ctx context.Context, u model.User) error
}

type repo struct{ store *jsonstore.Store[model.User] }

// New expects a lazily-initialized store: the users file is created on
// first write rather than shipped as seed data.
func New(store *jsonstore.Store[model.User]) Repo { return &repo{store: store} }

func (r *repo) List(ctx context.Context) ([]model.User, error) {
	return r.store.Load()
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *repo) Insert(ctx context.Context, u model.User) error {
	return r.store.Mutate(func(users []model.User) ([]model.User, error) {
		return append(users, u), nil
	})
}
