package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
	bookingRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/booking"
	"github.com/mkorchagin/bathhouse-booking/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований.
// Владеет переходами статусов, кроме подтверждения: approved
// назначается только use case подтверждения, где проверяется
// инвариант отсутствия пересечений.
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	notifier    Notifier
	metrics     MetricsObserver
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics MetricsObserver,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		notifier:    notifier,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю бронирований клиента.
// Опционально фильтрует по статусу.
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%d, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientBookings: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: fetched %d booking(s) for client=%d", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// ReportPayment фиксирует заявление клиента об оплате: бронирование
// переводится в payment_reported из любого текущего статуса, повторное
// нажатие "Я оплатил" не ошибка. Администратор получает уведомление
// для проверки платежа.
func (s *Service) ReportPayment(ctx context.Context, bookingID int64) error {
	s.logger.Info("ReportPayment: booking id=%d", bookingID)

	updated, err := s.transition(ctx, bookingID, domain.StatusPaymentReported, "",
		func(*domain.Booking) bool { return true })
	if err != nil {
		return err
	}

	if err := s.notifier.NotifyAdminPaymentReported(ctx, updated); err != nil {
		s.logger.Error("ReportPayment: failed to enqueue admin notification for booking id=%d: %v", bookingID, err)
	}

	return nil
}

// Reject отклоняет бронирование администратором:
// pending/payment_reported -> rejected. Причина дописывается
// в комментарий бронирования и отправляется клиенту.
func (s *Service) Reject(ctx context.Context, req *models.RejectBookingRequest) error {
	s.logger.Info("Reject: booking id=%d, reason=%q", req.BookingID, req.Reason)

	updated, err := s.transition(ctx, req.BookingID, domain.StatusRejected, req.Reason,
		func(b *domain.Booking) bool {
			return b.Status == domain.StatusPending || b.Status == domain.StatusPaymentReported
		})
	if err != nil {
		return err
	}

	if err := s.notifier.NotifyClientRejected(ctx, updated, req.Reason); err != nil {
		s.logger.Error("Reject: failed to enqueue rejection notification for booking id=%d: %v", req.BookingID, err)
	}

	return nil
}

// Cancel отменяет бронирование клиентом:
// pending/payment_reported -> cancelled. Подтвержденное бронирование
// клиент отменить не может.
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	s.logger.Info("Cancel: booking id=%d", bookingID)

	updated, err := s.transition(ctx, bookingID, domain.StatusCancelled, "",
		func(b *domain.Booking) bool { return b.CanBeCancelled() })
	if err != nil {
		if errors.Is(err, ErrInvalidTransition) {
			return ErrCannotCancel
		}
		return err
	}

	if err := s.notifier.NotifyClientCancelled(ctx, updated); err != nil {
		s.logger.Error("Cancel: failed to enqueue cancellation notification for booking id=%d: %v", bookingID, err)
	}

	return nil
}

// transition атомарно переводит бронирование в статус target.
// Читает бронирование под блокировкой строки, проверяет допустимость
// перехода предикатом allowed и записывает новый статус. Непустая
// reason дописывается в комментарий строкой "Отклонено: <reason>".
func (s *Service) transition(
	ctx context.Context,
	bookingID int64,
	target domain.BookingStatus,
	reason string,
	allowed func(*domain.Booking) bool,
) (*domain.Booking, error) {
	var updated *domain.Booking
	var oldStatus domain.BookingStatus

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("transition: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("transition: failed to get booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !allowed(booking) {
			s.logger.Warn("transition: booking id=%d cannot go %s -> %s", bookingID, booking.Status, target)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, target)
		}

		oldStatus = booking.Status

		if reason != "" {
			comment := appendRejectionReason(booking.Comment, reason)
			if err := s.bookingRepo.UpdateStatusAndComment(txCtx, bookingID, target, comment); err != nil {
				s.logger.Error("transition: failed to update booking id=%d: %v", bookingID, err)
				return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
			}
			booking.Comment = comment
		} else {
			if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, target); err != nil {
				s.logger.Error("transition: failed to update booking id=%d: %v", bookingID, err)
				return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
			}
		}

		booking.Status = target
		updated = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("transition: booking id=%d moved %s -> %s", bookingID, oldStatus, target)
	s.metrics.ObserveBookingTransition(string(oldStatus), string(target))
	return updated, nil
}

// appendRejectionReason дописывает причину отклонения к комментарию
// бронирования, сохраняя прежний текст
func appendRejectionReason(comment, reason string) string {
	line := "Отклонено: " + reason
	if strings.TrimSpace(comment) == "" {
		return line
	}
	return comment + "\n" + line
}
