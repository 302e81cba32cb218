package animalrepo

import (
	"context"
	"errors"

	"zoobackend/model"
	"zoobackend/repository/jsonstore"
)

var ErrNotFound = errors.New("animal not found")

type Repo interface {
	List(ctx context.Context) ([]model.Animal, error)
	Get(ctx context.Context, id string) (*model.Animal, error)
	Insert(ctx context.Context, a model.Animal) error
	Update(ctx context.Context, id string, apply func(*model.Animal)) (*model.Animal, error)
	Remove(ctx context.Context, id string) (*model.Animal, error)
}

type repo struct{ store *jsonstore.Store[model.Animal] }

func New(store *jsonstore.Store[model.Animal]) Repo { return &repo{store: store} }

func (r *repo) List(ctx context.Context) ([]model.Animal, error) {
	return r.store.Load()
}

func (r *repo) Get(ctx context.Context, id string) (*model.Animal, error) {
	animals, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range animals {
		if animals[i].ID == id {
			return &animals[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *repo) Insert(ctx context.Context, a model.Animal) error {
	return r.store.Mutate(func(animals []model.Animal) ([]model.Animal, error) {
		return append(animals, a), nil
	})
}

func (r *repo) Update(ctx context.Context, id string, apply func(*model.Animal)) (*model.Animal, error) {
	var updated model.Animal
	err := r.store.Mutate(func(animals []model.Animal) ([]model.Animal, error) {
		for i := range animals {
			if animals[i].ID == id {
				apply(&animals[i])
				updated = animals[i]
				return animals, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *repo) Remove(ctx context.Context, id string) (*model.Animal, error) {
	var removed model.Animal
	err := r.store.Mutate(func(animals []model.Animal) ([]model.Animal, error) {
		for i := range animals {
			if animals[i].ID == id {
				removed = animals[i]
				return append(animals[:i], animals[i+1:]...), nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}
