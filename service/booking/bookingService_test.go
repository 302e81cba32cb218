package bookingsvc

import (
	"context"
	"regexp"
	"testing"
	"time"

	"zoobackend/model"
	bookingrepo "zoobackend/repository/booking"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	bookings []model.Booking
}

var _ bookingrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) List(ctx context.Context) ([]model.Booking, error) { return m.bookings, nil }

func (m *mockRepo) Get(ctx context.Context, id string) (*model.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			return &m.bookings[i], nil
		}
	}
	return nil, bookingrepo.ErrNotFound
}

func (m *mockRepo) Insert(ctx context.Context, b model.Booking) error {
	m.bookings = append(m.bookings, b)
	return nil
}

func (m *mockRepo) Update(ctx context.Context, id string, apply func(*model.Booking)) (*model.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			apply(&m.bookings[i])
			return &m.bookings[i], nil
		}
	}
	return nil, bookingrepo.ErrNotFound
}

func (m *mockRepo) Remove(ctx context.Context, id string) (*model.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			removed := m.bookings[i]
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return &removed, nil
		}
	}
	return nil, bookingrepo.ErrNotFound
}

func TestCreate_IDAndCreatedAtSynthesized(t *testing.T) {
	svc := New(&mockRepo{})

	b, err := svc.Create(context.Background(), CreateReq{
		UserName:    "Rahul Sharma",
		TicketType:  "Premium Safari",
		Nationality: "Indian",
		Adults:      2,
		Children:    1,
		TotalAmount: 750,
		Status:      "Pending",
	})
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^B\d{6}$`), b.ID)
	require.Equal(t, time.Now().Format("2006-01-02"), b.CreatedAt)
	require.Equal(t, model.BookingPending, b.Status)
	require.Equal(t, 750.0, b.TotalAmount)
}

func TestCreate_CallerOverridesWin(t *testing.T) {
	svc := New(&mockRepo{})

	b, err := svc.Create(context.Background(), CreateReq{
		ID:        "B001",
		CreatedAt: "2024-01-10",
	})
	require.NoError(t, err)
	require.Equal(t, "B001", b.ID)
	require.Equal(t, "2024-01-10", b.CreatedAt)
}

func TestCreate_OmittedStatusStaysAbsent(t *testing.T) {
	svc := New(&mockRepo{})

	b, err := svc.Create(context.Background(), CreateReq{UserName: "x"})
	require.NoError(t, err)
	require.Empty(t, b.Status)
}

func TestUpdate_StatusTransition(t *testing.T) {
	m := &mockRepo{bookings: []model.Booking{{
		ID: "B123456", UserName: "Rahul Sharma", Status: model.BookingPending,
		TotalAmount: 750, CreatedAt: "2024-01-10",
	}}}
	svc := New(m)

	status := "Confirmed"
	b, err := svc.Update(context.Background(), "B123456", Patch{Status: &status})
	require.NoError(t, err)
	require.Equal(t, model.BookingConfirmed, b.Status)
	// untouched fields survive the patch
	require.Equal(t, "Rahul Sharma", b.UserName)
	require.Equal(t, 750.0, b.TotalAmount)
	require.Equal(t, "2024-01-10", b.CreatedAt)
}

func TestUpdate_CancelAfterConfirmIsNotBlocked(t *testing.T) {
	m := &mockRepo{bookings: []model.Booking{{ID: "B1", Status: model.BookingConfirmed}}}
	svc := New(m)

	status := "Cancelled"
	b, err := svc.Update(context.Background(), "B1", Patch{Status: &status})
	require.NoError(t, err)
	require.Equal(t, model.BookingCancelled, b.Status)
}

func TestNotFound(t *testing.T) {
	svc := New(&mockRepo{})

	_, err := svc.Get(context.Background(), "B000000")
	require.Equal(t, ErrNotFound, Code(err))

	status := "Confirmed"
	_, err = svc.Update(context.Background(), "B000000", Patch{Status: &status})
	require.Equal(t, ErrNotFound, Code(err))

	_, err = svc.Delete(context.Background(), "B000000")
	require.Equal(t, ErrNotFound, Code(err))
}

func TestDelete_ReturnsRemoved(t *testing.T) {
	m := &mockRepo{bookings: []model.Booking{{ID: "B1"}, {ID: "B2"}}}
	svc := New(m)

	b, err := svc.Delete(context.Background(), "B1")
	require.NoError(t, err)
	require.Equal(t, "B1", b.ID)
	require.Len(t, m.bookings, 1)
}
