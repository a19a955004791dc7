package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
	bathhouseRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/bathhouse"
	clientRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/client"
)

// Стабы репозиториев

type stubBookingRepo struct {
	activeCount int
	countErr    error
	createErr   error
	created     *domain.Booking
}

func (s *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	b.ID = 42
	b.CreatedAt = time.Now().UTC()
	s.created = b
	return b, nil
}

func (s *stubBookingRepo) CountActiveByClient(_ context.Context, _ int64) (int, error) {
	return s.activeCount, s.countErr
}

type stubClientRepo struct {
	err error
}

func (s *stubClientRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Client{ID: id, Name: "Иван"}, nil
}

type stubBathhouseRepo struct {
	err      error
	inactive bool
}

func (s *stubBathhouseRepo) GetByID(_ context.Context, id int64) (*domain.Bathhouse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Bathhouse{ID: id, Name: "Баня №1", IsActive: !s.inactive}, nil
}

type stubConfigs struct{}

func (stubConfigs) GetInt(_ context.Context, _ string, def int) int { return def }

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(booking *stubBookingRepo, client *stubClientRepo, bathhouse *stubBathhouseRepo, now time.Time) *UseCase {
	uc := NewUseCase(booking, client, bathhouse, stubConfigs{}, stubTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	now := time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC)
	bookingRepo := &stubBookingRepo{}
	uc := newTestUseCase(bookingRepo, &stubClientRepo{}, &stubBathhouseRepo{}, now)

	comment := "парная на двоих"
	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:    1,
		BathhouseID: 2,
		StartUTC:    now.Add(2 * time.Hour),
		EndUTC:      now.Add(4 * time.Hour),
		Comment:     &comment,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "парная на двоих", resp.Comment)
	require.NotNil(t, bookingRepo.created)
	assert.Equal(t, domain.StatusPending, bookingRepo.created.Status)
}

func TestExecute_RejectsInvalidInterval(t *testing.T) {
	now := time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&stubBookingRepo{}, &stubClientRepo{}, &stubBathhouseRepo{}, now)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"start equals end", now.Add(time.Hour), now.Add(time.Hour)},
		{"start after end", now.Add(3 * time.Hour), now.Add(2 * time.Hour)},
		{"start in the past", now.Add(-time.Hour), now.Add(time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				ClientID:    1,
				BathhouseID: 2,
				StartUTC:    tt.start,
				EndUTC:      tt.end,
			})
			assert.ErrorIs(t, err, ErrInvalidInterval)
		})
	}
}

func TestExecute_ClientNotFound(t *testing.T) {
	now := time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&stubBookingRepo{}, &stubClientRepo{err: clientRepo.ErrClientNotFound}, &stubBathhouseRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:    99,
		BathhouseID: 2,
		StartUTC:    now.Add(2 * time.Hour),
		EndUTC:      now.Add(4 * time.Hour),
	})

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_BathhouseNotFoundOrInactive(t *testing.T) {
	now := time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC)

	t.Run("not found", func(t *testing.T) {
		uc := newTestUseCase(&stubBookingRepo{}, &stubClientRepo{}, &stubBathhouseRepo{err: bathhouseRepo.ErrBathhouseNotFound}, now)
		_, err := uc.Execute(context.Background(), &Request{
			ClientID: 1, BathhouseID: 99,
			StartUTC: now.Add(2 * time.Hour), EndUTC: now.Add(4 * time.Hour),
		})
		assert.ErrorIs(t, err, ErrBathhouseNotFound)
	})

	t.Run("inactive", func(t *testing.T) {
		uc := newTestUseCase(&stubBookingRepo{}, &stubClientRepo{}, &stubBathhouseRepo{inactive: true}, now)
		_, err := uc.Execute(context.Background(), &Request{
			ClientID: 1, BathhouseID: 2,
			StartUTC: now.Add(2 * time.Hour), EndUTC: now.Add(4 * time.Hour),
		})
		assert.ErrorIs(t, err, ErrBathhouseNotFound)
	})
}

func TestExecute_LimitExceeded(t *testing.T) {
	now := time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC)
	bookingRepo := &stubBookingRepo{activeCount: domain.DefaultMaxActiveBookings}
	uc := newTestUseCase(bookingRepo, &stubClientRepo{}, &stubBathhouseRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:    1,
		BathhouseID: 2,
		StartUTC:    now.Add(2 * time.Hour),
		EndUTC:      now.Add(4 * time.Hour),
	})

	assert.ErrorIs(t, err, ErrLimitExceeded)
	assert.Nil(t, bookingRepo.created)
}
