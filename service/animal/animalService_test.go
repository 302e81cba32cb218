// service/animal/animal_service_test.go
package animalsvc_test

import (
	"context"
	"testing"

	"zoobackend/model"
	animalrepo "zoobackend/repository/animal"
	animalsvc "zoobackend/service/animal"
)

// fakeRepo is a slice-backed stand-in for the JSON store.
type fakeRepo struct {
	animals []model.Animal
}

func (f *fakeRepo) List(ctx context.Context) ([]model.Animal, error) {
	return f.animals, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (*model.Animal, error) {
	for i := range f.animals {
		if f.animals[i].ID == id {
			return &f.animals[i], nil
		}
	}
	return nil, animalrepo.ErrNotFound
}

func (f *fakeRepo) Insert(ctx context.Context, a model.Animal) error {
	f.animals = append(f.animals, a)
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, apply func(*model.Animal)) (*model.Animal, error) {
	for i := range f.animals {
		if f.animals[i].ID == id {
			apply(&f.animals[i])
			return &f.animals[i], nil
		}
	}
	return nil, animalrepo.ErrNotFound
}

func (f *fakeRepo) Remove(ctx context.Context, id string) (*model.Animal, error) {
	for i := range f.animals {
		if f.animals[i].ID == id {
			removed := f.animals[i]
			f.animals = append(f.animals[:i], f.animals[i+1:]...)
			return &removed, nil
		}
	}
	return nil, animalrepo.ErrNotFound
}

func strptr(s string) *string { return &s }

func TestCreate_SynthesizesID(t *testing.T) {
	f := &fakeRepo{}
	s := animalsvc.New(f)

	a, err := s.Create(context.Background(), animalsvc.CreateReq{Name: "Raja", Species: "Bengal Tiger"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == "" {
		t.Fatal("expected synthesized id")
	}

	got, err := s.Get(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("get after create: %v", err)
	}
	if *got != *a {
		t.Fatalf("get returned %+v, want %+v", got, a)
	}
}

func TestCreate_CallerIDWins(t *testing.T) {
	f := &fakeRepo{}
	s := animalsvc.New(f)

	a, err := s.Create(context.Background(), animalsvc.CreateReq{ID: "raja-1", Name: "Raja"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID != "raja-1" {
		t.Fatalf("got id %q, want caller-supplied raja-1", a.ID)
	}
}

func TestUpdate_PatchLeavesOtherFieldsAlone(t *testing.T) {
	f := &fakeRepo{animals: []model.Animal{{
		ID: "1", Name: "Raja", Species: "Bengal Tiger", Age: 8,
		Gender: model.GenderMale, FunFact: "Leaps 30 feet",
	}}}
	s := animalsvc.New(f)

	age := 9
	a, err := s.Update(context.Background(), "1", animalsvc.Patch{Age: &age, Habitat: strptr("Zone A")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if a.Age != 9 || a.Habitat != "Zone A" {
		t.Fatalf("patched fields not applied: %+v", a)
	}
	if a.Name != "Raja" || a.Species != "Bengal Tiger" || a.FunFact != "Leaps 30 feet" {
		t.Fatalf("untouched fields changed: %+v", a)
	}
}

func TestUpdate_NotFoundDoesNotMutate(t *testing.T) {
	f := &fakeRepo{animals: []model.Animal{{ID: "1", Name: "Raja"}}}
	s := animalsvc.New(f)

	_, err := s.Update(context.Background(), "missing", animalsvc.Patch{Name: strptr("x")})
	if animalsvc.Code(err) != animalsvc.ErrNotFound {
		t.Fatalf("got %v, want NOT_FOUND", err)
	}
	if len(f.animals) != 1 || f.animals[0].Name != "Raja" {
		t.Fatalf("store mutated on failed update: %+v", f.animals)
	}
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	f := &fakeRepo{animals: []model.Animal{{ID: "1"}, {ID: "2"}, {ID: "3"}}}
	s := animalsvc.New(f)

	removed, err := s.Delete(context.Background(), "2")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.ID != "2" {
		t.Fatalf("removed %q, want 2", removed.ID)
	}
	rest, _ := s.List(context.Background())
	if len(rest) != 2 {
		t.Fatalf("got %d records, want 2", len(rest))
	}
	if _, err := s.Get(context.Background(), "2"); animalsvc.Code(err) != animalsvc.ErrNotFound {
		t.Fatal("deleted record still retrievable")
	}
}

func TestGetDelete_NotFound(t *testing.T) {
	s := animalsvc.New(&fakeRepo{})

	if _, err := s.Get(context.Background(), "nope"); animalsvc.Code(err) != animalsvc.ErrNotFound {
		t.Fatalf("get: got %v, want NOT_FOUND", err)
	}
	if _, err := s.Delete(context.Background(), "nope"); animalsvc.Code(err) != animalsvc.ErrNotFound {
		t.Fatalf("delete: got %v, want NOT_FOUND", err)
	}
}
