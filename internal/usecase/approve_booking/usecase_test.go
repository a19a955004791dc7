package approve_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
	bookingRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/booking"
)

type stubBookingRepo struct {
	booking       *domain.Booking
	getErr        error
	overlapping   []*domain.Booking
	listErr       error
	updateErr     error
	updatedStatus *domain.BookingStatus
}

func (s *stubBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	b := *s.booking
	return &b, nil
}

func (s *stubBookingRepo) ListApprovedOverlapping(_ context.Context, _ int64, _, _ time.Time, _ int64) ([]*domain.Booking, error) {
	return s.overlapping, s.listErr
}

func (s *stubBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updatedStatus = &status
	return nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubNotifier struct {
	approved []*domain.Booking
	err      error
}

func (s *stubNotifier) NotifyClientApproved(_ context.Context, b *domain.Booking) error {
	if s.err != nil {
		return s.err
	}
	s.approved = append(s.approved, b)
	return nil
}

type stubMetrics struct {
	transitions [][2]string
}

func (s *stubMetrics) ObserveBookingTransition(from, to string) {
	s.transitions = append(s.transitions, [2]string{from, to})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:            7,
		ClientID:      1,
		BathhouseID:   2,
		StartDatetime: time.Date(2025, 10, 15, 5, 0, 0, 0, time.UTC),
		EndDatetime:   time.Date(2025, 10, 15, 7, 0, 0, 0, time.UTC),
		Status:        domain.StatusPaymentReported,
	}
}

func TestExecute_ApprovesWhenNoOverlap(t *testing.T) {
	repo := &stubBookingRepo{booking: pendingBooking()}
	notifier := &stubNotifier{}
	metrics := &stubMetrics{}
	uc := NewUseCase(repo, stubTxManager{}, notifier, metrics, nopLogger{})

	err := uc.Execute(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusApproved, *repo.updatedStatus)
	require.Len(t, notifier.approved, 1)
	assert.Equal(t, domain.StatusApproved, notifier.approved[0].Status)
	require.Len(t, metrics.transitions, 1)
	assert.Equal(t, [2]string{"payment_reported", "approved"}, metrics.transitions[0])
}

func TestExecute_OverlapConflictLeavesStatusUnchanged(t *testing.T) {
	repo := &stubBookingRepo{
		booking:     pendingBooking(),
		overlapping: []*domain.Booking{{ID: 8, Status: domain.StatusApproved}},
	}
	notifier := &stubNotifier{}
	uc := NewUseCase(repo, stubTxManager{}, notifier, &stubMetrics{}, nopLogger{})

	err := uc.Execute(context.Background(), 7)

	assert.ErrorIs(t, err, ErrOverlapConflict)
	assert.Nil(t, repo.updatedStatus)
	assert.Empty(t, notifier.approved)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &stubBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := NewUseCase(repo, stubTxManager{}, &stubNotifier{}, &stubMetrics{}, nopLogger{})

	err := uc.Execute(context.Background(), 404)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_NotificationFailureDoesNotFailApproval(t *testing.T) {
	repo := &stubBookingRepo{booking: pendingBooking()}
	notifier := &stubNotifier{err: errors.New("queue down")}
	uc := NewUseCase(repo, stubTxManager{}, notifier, &stubMetrics{}, nopLogger{})

	err := uc.Execute(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusApproved, *repo.updatedStatus)
}
