package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
	"github.com/mkorchagin/bathhouse-booking/pkg/ptr"
)

type stubNotificationRepo struct {
	enqueued []*domain.Notification
	err      error
}

func (s *stubNotificationRepo) Enqueue(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	if s.err != nil {
		return nil, s.err
	}
	n.ID = int64(len(s.enqueued) + 1)
	s.enqueued = append(s.enqueued, n)
	return n, nil
}

type stubClientRepo struct {
	client *domain.Client
}

func (s *stubClientRepo) GetByID(_ context.Context, _ int64) (*domain.Client, error) {
	return s.client, nil
}

type stubBathhouseRepo struct{}

func (stubBathhouseRepo) GetByID(_ context.Context, id int64) (*domain.Bathhouse, error) {
	return &domain.Bathhouse{ID: id, Name: "Баня №1", IsActive: true}, nil
}

type stubConfigs struct {
	adminID  string
	disabled bool
}

func (s stubConfigs) GetString(_ context.Context, key string, def string) string {
	if key == domain.ConfigKeyTelegramAdminID {
		return s.adminID
	}
	return def
}

func (s stubConfigs) GetBool(_ context.Context, key string, def bool) bool {
	if key == domain.ConfigKeyNotificationsEnabled {
		return !s.disabled
	}
	return def
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	// 05:00 UTC = 12:00 Asia/Jakarta
	return &domain.Booking{
		ID:               12,
		ClientID:         1,
		BathhouseID:      2,
		StartDatetime:    time.Date(2025, 10, 15, 5, 0, 0, 0, time.UTC),
		EndDatetime:      time.Date(2025, 10, 15, 7, 0, 0, 0, time.UTC),
		Status:           domain.StatusPaymentReported,
		PrepaymentAmount: ptr.Ptr(int64(1500)),
	}
}

func newTestService(t *testing.T, repo *stubNotificationRepo, client *domain.Client, configs stubConfigs) *Service {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return NewService(repo, &stubClientRepo{client: client}, stubBathhouseRepo{}, configs, loc, nopLogger{})
}

func TestNotifyAdminPaymentReported(t *testing.T) {
	repo := &stubNotificationRepo{}
	client := &domain.Client{ID: 1, Name: "Иван", Phone: ptr.Ptr("+62811111111")}
	svc := newTestService(t, repo, client, stubConfigs{adminID: "admin-chat"})

	err := svc.NotifyAdminPaymentReported(context.Background(), testBooking())

	require.NoError(t, err)
	require.Len(t, repo.enqueued, 1)
	n := repo.enqueued[0]
	assert.Equal(t, "admin-chat", n.TelegramID)
	require.NotNil(t, n.BookingID)
	assert.Equal(t, int64(12), *n.BookingID)
	assert.Contains(t, n.Message, "💰 НОВАЯ ОПЛАТА!")
	assert.Contains(t, n.Message, "Бронирование #12")
	assert.Contains(t, n.Message, "Клиент: Иван")
	assert.Contains(t, n.Message, "Телефон: +62811111111")
	assert.Contains(t, n.Message, "Баня: Баня №1")
	assert.Contains(t, n.Message, "15.10.2025 12:00 - 14:00")
	assert.Contains(t, n.Message, "Сумма: 1500 руб.")
}

func TestNotifyAdminPaymentReported_NoPhoneNoAmount(t *testing.T) {
	repo := &stubNotificationRepo{}
	client := &domain.Client{ID: 1, Name: "Иван"}
	svc := newTestService(t, repo, client, stubConfigs{adminID: "admin-chat"})

	booking := testBooking()
	booking.PrepaymentAmount = nil

	err := svc.NotifyAdminPaymentReported(context.Background(), booking)

	require.NoError(t, err)
	require.Len(t, repo.enqueued, 1)
	assert.Contains(t, repo.enqueued[0].Message, "Телефон: не указан")
	assert.Contains(t, repo.enqueued[0].Message, "Сумма: не указана руб.")
}

func TestNotifyAdminPaymentReported_NoAdminConfigured(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := newTestService(t, repo, &domain.Client{ID: 1}, stubConfigs{adminID: ""})

	err := svc.NotifyAdminPaymentReported(context.Background(), testBooking())

	require.NoError(t, err)
	assert.Empty(t, repo.enqueued)
}

func TestNotifyClientApproved(t *testing.T) {
	repo := &stubNotificationRepo{}
	client := &domain.Client{ID: 1, Name: "Иван", TelegramID: ptr.Ptr("chat-1")}
	svc := newTestService(t, repo, client, stubConfigs{adminID: "admin-chat"})

	err := svc.NotifyClientApproved(context.Background(), testBooking())

	require.NoError(t, err)
	require.Len(t, repo.enqueued, 1)
	n := repo.enqueued[0]
	assert.Equal(t, "chat-1", n.TelegramID)
	assert.Contains(t, n.Message, "✅ Ваше бронирование #12 подтверждено!")
	assert.Contains(t, n.Message, "Ждем вас в указанное время!")
}

func TestNotifyClientApproved_ClientWithoutTelegramSkipped(t *testing.T) {
	repo := &stubNotificationRepo{}
	client := &domain.Client{ID: 1, Name: "Иван"}
	svc := newTestService(t, repo, client, stubConfigs{adminID: "admin-chat"})

	err := svc.NotifyClientApproved(context.Background(), testBooking())

	require.NoError(t, err)
	assert.Empty(t, repo.enqueued)
}

func TestNotifyClientRejected(t *testing.T) {
	client := &domain.Client{ID: 1, Name: "Иван", TelegramID: ptr.Ptr("chat-1")}

	t.Run("with reason", func(t *testing.T) {
		repo := &stubNotificationRepo{}
		svc := newTestService(t, repo, client, stubConfigs{adminID: "admin-chat"})

		err := svc.NotifyClientRejected(context.Background(), testBooking(), "оплата не подтверждена")

		require.NoError(t, err)
		require.Len(t, repo.enqueued, 1)
		assert.Contains(t, repo.enqueued[0].Message, "❌ Ваше бронирование #12 отклонено.")
		assert.Contains(t, repo.enqueued[0].Message, "Причина: оплата не подтверждена")
	})

	t.Run("without reason", func(t *testing.T) {
		repo := &stubNotificationRepo{}
		svc := newTestService(t, repo, client, stubConfigs{adminID: "admin-chat"})

		err := svc.NotifyClientRejected(context.Background(), testBooking(), "")

		require.NoError(t, err)
		require.Len(t, repo.enqueued, 1)
		assert.Contains(t, repo.enqueued[0].Message, "Причина: Не указана")
	})
}

func TestNotifyClientCancelled(t *testing.T) {
	repo := &stubNotificationRepo{}
	client := &domain.Client{ID: 1, Name: "Иван", TelegramID: ptr.Ptr("chat-1")}
	svc := newTestService(t, repo, client, stubConfigs{adminID: "admin-chat"})

	err := svc.NotifyClientCancelled(context.Background(), testBooking())

	require.NoError(t, err)
	require.Len(t, repo.enqueued, 1)
	assert.Contains(t, repo.enqueued[0].Message, "🗑️ Ваше бронирование #12 отменено.")
}

func TestNotificationsDisabled(t *testing.T) {
	repo := &stubNotificationRepo{}
	client := &domain.Client{ID: 1, Name: "Иван", TelegramID: ptr.Ptr("chat-1")}
	svc := newTestService(t, repo, client, stubConfigs{adminID: "admin-chat", disabled: true})

	require.NoError(t, svc.NotifyAdminPaymentReported(context.Background(), testBooking()))
	require.NoError(t, svc.NotifyClientApproved(context.Background(), testBooking()))
	require.NoError(t, svc.NotifyClientRejected(context.Background(), testBooking(), "причина"))
	require.NoError(t, svc.NotifyClientCancelled(context.Background(), testBooking()))

	assert.Empty(t, repo.enqueued)
}
