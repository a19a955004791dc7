package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

// Service формирует тексты уведомлений и кладет их в outbox-очередь.
// Вызывается сервисным слоем после фиксации перехода статуса;
// доставкой занимается отдельный диспетчер. Ошибки постановки в
// очередь возвращаются вызывающему, который их логирует и глотает:
// состояние бронирования первично, уведомления best-effort.
type Service struct {
	notificationRepo NotificationRepository
	clientRepo       ClientRepository
	bathhouseRepo    BathhouseRepository
	configs          ConfigProvider
	location         *time.Location
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	notificationRepo NotificationRepository,
	clientRepo ClientRepository,
	bathhouseRepo BathhouseRepository,
	configs ConfigProvider,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		clientRepo:       clientRepo,
		bathhouseRepo:    bathhouseRepo,
		configs:          configs,
		location:         location,
		logger:           logger,
	}
}

// NotifyAdminPaymentReported уведомляет администратора о заявленной оплате
func (s *Service) NotifyAdminPaymentReported(ctx context.Context, booking *domain.Booking) error {
	if !s.enabled(ctx) {
		return nil
	}

	adminID := s.configs.GetString(ctx, domain.ConfigKeyTelegramAdminID, "")
	if adminID == "" {
		s.logger.Warn("notifications: %s is not set, admin notification skipped", domain.ConfigKeyTelegramAdminID)
		return nil
	}

	client, bathhouse, err := s.loadDetails(ctx, booking)
	if err != nil {
		return err
	}

	message := fmt.Sprintf(
		"💰 НОВАЯ ОПЛАТА!\n"+
			"Бронирование #%d\n"+
			"Клиент: %s\n"+
			"Телефон: %s\n"+
			"Баня: %s\n"+
			"Дата и время: %s\n"+
			"Сумма: %s руб.",
		booking.ID,
		client.Name,
		stringOr(client.Phone, "не указан"),
		bathhouse.Name,
		s.formatPeriod(booking),
		int64Or(booking.PrepaymentAmount, "не указана"),
	)

	return s.enqueue(ctx, adminID, message, booking.ID)
}

// NotifyClientApproved уведомляет клиента о подтверждении бронирования
func (s *Service) NotifyClientApproved(ctx context.Context, booking *domain.Booking) error {
	if !s.enabled(ctx) {
		return nil
	}

	client, bathhouse, err := s.loadDetails(ctx, booking)
	if err != nil {
		return err
	}
	if client.TelegramID == nil || *client.TelegramID == "" {
		s.logger.Warn("notifications: client id=%d has no telegram_id, approval notification skipped", client.ID)
		return nil
	}

	message := fmt.Sprintf(
		"✅ Ваше бронирование #%d подтверждено!\n"+
			"Баня: %s\n"+
			"Дата и время: %s\n"+
			"Статус: Подтверждено\n\n"+
			"Ждем вас в указанное время!",
		booking.ID, bathhouse.Name, s.formatPeriod(booking),
	)

	return s.enqueue(ctx, *client.TelegramID, message, booking.ID)
}

// NotifyClientRejected уведомляет клиента об отклонении бронирования
func (s *Service) NotifyClientRejected(ctx context.Context, booking *domain.Booking, reason string) error {
	if !s.enabled(ctx) {
		return nil
	}

	client, bathhouse, err := s.loadDetails(ctx, booking)
	if err != nil {
		return err
	}
	if client.TelegramID == nil || *client.TelegramID == "" {
		s.logger.Warn("notifications: client id=%d has no telegram_id, rejection notification skipped", client.ID)
		return nil
	}

	if reason == "" {
		reason = "Не указана"
	}

	message := fmt.Sprintf(
		"❌ Ваше бронирование #%d отклонено.\n"+
			"Баня: %s\n"+
			"Дата и время: %s\n"+
			"Причина: %s",
		booking.ID, bathhouse.Name, s.formatPeriod(booking), reason,
	)

	return s.enqueue(ctx, *client.TelegramID, message, booking.ID)
}

// NotifyClientCancelled уведомляет клиента об отмене бронирования
func (s *Service) NotifyClientCancelled(ctx context.Context, booking *domain.Booking) error {
	if !s.enabled(ctx) {
		return nil
	}

	client, bathhouse, err := s.loadDetails(ctx, booking)
	if err != nil {
		return err
	}
	if client.TelegramID == nil || *client.TelegramID == "" {
		s.logger.Warn("notifications: client id=%d has no telegram_id, cancellation notification skipped", client.ID)
		return nil
	}

	message := fmt.Sprintf(
		"🗑️ Ваше бронирование #%d отменено.\n"+
			"Баня: %s\n"+
			"Дата и время: %s",
		booking.ID, bathhouse.Name, s.formatPeriod(booking),
	)

	return s.enqueue(ctx, *client.TelegramID, message, booking.ID)
}

func (s *Service) enabled(ctx context.Context) bool {
	if s.configs.GetBool(ctx, domain.ConfigKeyNotificationsEnabled, domain.DefaultNotificationsEnabled) {
		return true
	}
	s.logger.Info("notifications: disabled by %s", domain.ConfigKeyNotificationsEnabled)
	return false
}

func (s *Service) enqueue(ctx context.Context, telegramID, message string, bookingID int64) error {
	_, err := s.notificationRepo.Enqueue(ctx, &domain.Notification{
		TelegramID: telegramID,
		Message:    message,
		BookingID:  &bookingID,
	})
	if err != nil {
		return fmt.Errorf("notifications: failed to enqueue for booking id=%d: %w", bookingID, err)
	}

	s.logger.Info("notifications: queued notification for booking id=%d", bookingID)
	return nil
}

func (s *Service) loadDetails(ctx context.Context, booking *domain.Booking) (*domain.Client, *domain.Bathhouse, error) {
	client, err := s.clientRepo.GetByID(ctx, booking.ClientID)
	if err != nil {
		return nil, nil, fmt.Errorf("notifications: failed to get client id=%d: %w", booking.ClientID, err)
	}

	bathhouse, err := s.bathhouseRepo.GetByID(ctx, booking.BathhouseID)
	if err != nil {
		return nil, nil, fmt.Errorf("notifications: failed to get bathhouse id=%d: %w", booking.BathhouseID, err)
	}

	return client, bathhouse, nil
}

// formatPeriod форматирует интервал бронирования в локальном времени:
// "02.01.2006 15:04 - 16:04"
func (s *Service) formatPeriod(booking *domain.Booking) string {
	start := booking.StartDatetime.In(s.location)
	end := booking.EndDatetime.In(s.location)
	return fmt.Sprintf("%s - %s", start.Format(domain.DateTimeFormat), end.Format(domain.TimeFormat))
}

func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func int64Or(v *int64, fallback string) string {
	if v == nil {
		return fallback
	}
	return fmt.Sprintf("%d", *v)
}
