package animalsvc

import (
	"context"
	"errors"

	"zoobackend/model"
	animalrepo "zoobackend/repository/animal"
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

// CreateReq carries the caller-supplied fields for a new animal. ID is
// normally synthesized from the clock but a caller-supplied one wins.
type CreateReq struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Species            string  `json:"species"`
	Category           string  `json:"category"`
	Age                int     `json:"age" validate:"gte=0"`
	Gender             string  `json:"gender" validate:"omitempty,oneof=Male Female"`
	Habitat            string  `json:"habitat"`
	Diet               string  `json:"diet"`
	Description        string  `json:"description"`
	Image              string  `json:"image"`
	ConservationStatus string  `json:"conservationStatus" validate:"omitempty,oneof='Least Concern' 'Near Threatened' 'Vulnerable' 'Endangered' 'Critically Endangered'"`
	FunFact            string  `json:"funFact"`
}

// Patch lists the fields an update may change; absent fields are left
// untouched on the stored record.
type Patch struct {
	Name               *string `json:"name"`
	Species            *string `json:"species"`
	Category           *string `json:"category"`
	Age                *int    `json:"age" validate:"omitempty,gte=0"`
	Gender             *string `json:"gender" validate:"omitempty,oneof=Male Female"`
	Habitat            *string `json:"habitat"`
	Diet               *string `json:"diet"`
	Description        *string `json:"description"`
	Image              *string `json:"image"`
	ConservationStatus *string `json:"conservationStatus" validate:"omitempty,oneof='Least Concern' 'Near Threatened' 'Vulnerable' 'Endangered' 'Critically Endangered'"`
	FunFact            *string `json:"funFact"`
}

type Repo = animalrepo.Repo

type Service interface {
	List(ctx context.Context) ([]model.Animal, error)
	Get(ctx context.Context, id string) (*model.Animal, error)
	Create(ctx context.Context, req CreateReq) (*model.Animal, error)
	Update(ctx context.Context, id string, p Patch) (*model.Animal, error)
	Delete(ctx context.Context, id string) (*model.Animal, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Animal, error) {
	animals, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	if animals == nil {
		animals = []model.Animal{}
	}
	return animals, nil
}

func (s *service) Get(ctx context.Context, id string) (*model.Animal, error) {
	a, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, animalrepo.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (s *service) Create(ctx context.Context, req CreateReq) (*model.Animal, error) {
	a := model.Animal{
		ID:                 req.ID,
		Name:               req.Name,
		Species:            req.Species,
		Category:           req.Category,
		Age:                req.Age,
		Gender:             model.Gender(req.Gender),
		Habitat:            req.Habitat,
		Diet:               req.Diet,
		Description:        req.Description,
		Image:              req.Image,
		ConservationStatus: model.ConservationStatus(req.ConservationStatus),
		FunFact:            req.FunFact,
	}
	if a.ID == "" {
		a.ID = ident.TimeID()
	}
	if err := s.r.Insert(ctx, a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *service) Update(ctx context.Context, id string, p Patch) (*model.Animal, error) {
	a, err := s.r.Update(ctx, id, func(a *model.Animal) {
		if p.Name != nil {
			a.Name = *p.Name
		}
		if p.Species != nil {
			a.Species = *p.Species
		}
		if p.Category != nil {
			a.Category = *p.Category
		}
		if p.Age != nil {
			a.Age = *p.Age
		}
		if p.Gender != nil {
			a.Gender = model.Gender(*p.Gender)
		}
		if p.Habitat != nil {
			a.Habitat = *p.Habitat
		}
		if p.Diet != nil {
			a.Diet = *p.Diet
		}
		if p.Description != nil {
			a.Description = *p.Description
		}
		if p.Image != nil {
			a.Image = *p.Image
		}
		if p.ConservationStatus != nil {
			a.ConservationStatus = model.ConservationStatus(*p.ConservationStatus)
		}
		if p.FunFact != nil {
			a.FunFact = *p.FunFact
		}
	})
	if err != nil {
		if errors.Is(err, animalrepo.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, id string) (*model.Animal, error) {
	a, err := s.r.Remove(ctx, id)
	if err != nil {
		if errors.Is(err, animalrepo.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}
