// service/auth/auth_service_test.go
package authsvc

import (
	"context"
	"errors"
	"testing"

	"zoobackend/model"
	userrepo "zoobackend/repository/user"
	"zoobackend/util/hash"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	listFn    func(ctx context.Context) ([]model.User, error)
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	insertFn  func(ctx context.Context, u model.User) error
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) List(ctx context.Context) ([]model.User, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, nil
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) Insert(ctx context.Context, u model.User) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, u)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	var stored model.User
	m := &mockRepo{
		insertFn: func(ctx context.Context, u model.User) error {
			stored = u
			return nil
		},
	}
	svc := New(m)

	u, err := svc.Register(ctx, model.RegisterReq{
		Name:     "Rahul Sharma",
		Email:    "rahul@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "rahul@example.com", u.Email)
	require.Equal(t, "user", u.Role)

	// stored hash verifies the plaintext but is not the plaintext
	require.NotEqual(t, "supersecret", stored.Password)
	require.True(t, hash.Check(stored.Password, "supersecret"))
}

func TestRegister_BadInput(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{})

	for _, req := range []model.RegisterReq{
		{Name: "", Email: "a@b.c", Password: "x"},
		{Name: "a", Email: " ", Password: "x"},
		{Name: "a", Email: "a@b.c", Password: ""},
	} {
		_, err := svc.Register(ctx, req)
		require.Error(t, err)
		require.Equal(t, ErrBadInput, Code(err))
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	ctx := context.Background()
	inserted := false
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "9", Email: email}, nil
		},
		insertFn: func(ctx context.Context, u model.User) error {
			inserted = true
			return nil
		},
	}
	svc := New(m)

	_, err := svc.Register(ctx, model.RegisterReq{
		Name:     "Taken",
		Email:    "taken@example.com",
		Password: "123456",
	})
	require.Error(t, err)
	require.Equal(t, ErrEmailTaken, Code(err))
	require.False(t, inserted, "conflict must leave the store unchanged")
}

func TestRegister_InsertError(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		insertFn: func(ctx context.Context, u model.User) error {
			return errors.New("disk full")
		},
	}
	svc := New(m)

	_, err := svc.Register(ctx, model.RegisterReq{
		Name:     "ok",
		Email:    "ok@example.com",
		Password: "123456",
	})
	require.Error(t, err)
	require.Equal(t, ErrCode(""), Code(err))
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	pw := "supersecret"
	hashed := mustHash(t, pw)

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				ID:       "7",
				Name:     "Rahul Sharma",
				Email:    "rahul@example.com",
				Password: hashed,
				Role:     "user",
			}, nil
		},
	}
	svc := New(m)

	u, err := svc.Login(ctx, model.LoginReq{Email: "rahul@example.com", Password: pw})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "7", u.ID)
}

func TestLogin_BadInput(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{})

	_, err := svc.Login(ctx, model.LoginReq{Email: " ", Password: ""})
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestLogin_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	ctx := context.Background()
	hashed := mustHash(t, "correct-password")

	unknown := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return nil, nil
		},
	}
	_, errUnknown := New(unknown).Login(ctx, model.LoginReq{
		Email: "missing@example.com", Password: "whatever",
	})

	wrongPw := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "101", Email: email, Password: hashed, Role: "user"}, nil
		},
	}
	_, errWrong := New(wrongPw).Login(ctx, model.LoginReq{
		Email: "rahul@example.com", Password: "wrong-password",
	})

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	require.Equal(t, ErrInvalidCreds, Code(errUnknown))
	require.Equal(t, ErrInvalidCreds, Code(errWrong))
	require.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestCodeExtractor(t *testing.T) {
	require.Equal(t, ErrEmailTaken, Code(makeErr(ErrEmailTaken)))
	require.Equal(t, ErrCode(""), Code(errors.New("plain")))
}
