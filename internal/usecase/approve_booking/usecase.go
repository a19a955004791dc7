package approve_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
	bookingRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/booking"
)

// UseCase use case подтверждения бронирования администратором.
// Единственная операция, которой разрешено переводить бронирование
// в approved, и единственная точка, где проверяется инвариант
// отсутствия пересечений: два approved-бронирования одной бани
// не могут пересекаться по времени.
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	notifier    Notifier
	metrics     MetricsObserver
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics MetricsObserver,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		notifier:    notifier,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute подтверждает бронирование.
// Проверка пересечений и запись статуса выполняются в сериализуемой
// транзакции с блокировкой строк (FOR UPDATE в репозитории): два
// конкурентных подтверждения конфликтующих бронирований не могут
// пройти проверку одновременно.
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) error {
	uc.logger.Info("ApproveBooking: approving booking id=%d", bookingID)

	var approved *domain.Booking
	var oldStatus domain.BookingStatus

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ApproveBooking: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ApproveBooking: failed to get booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		overlapping, err := uc.bookingRepo.ListApprovedOverlapping(
			txCtx,
			booking.BathhouseID,
			booking.StartDatetime,
			booking.EndDatetime,
			booking.ID,
		)
		if err != nil {
			uc.logger.Error("ApproveBooking: failed to check overlaps for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to check overlapping bookings: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("ApproveBooking: booking id=%d overlaps %d approved booking(s) on bathhouse id=%d, status left %s",
				bookingID, len(overlapping), booking.BathhouseID, booking.Status)
			return ErrOverlapConflict
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusApproved); err != nil {
			uc.logger.Error("ApproveBooking: failed to update status for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		oldStatus = booking.Status
		booking.Status = domain.StatusApproved
		approved = booking
		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("ApproveBooking: booking id=%d approved (%s -> %s)", bookingID, oldStatus, domain.StatusApproved)
	uc.metrics.ObserveBookingTransition(string(oldStatus), string(domain.StatusApproved))

	// Уведомление best-effort: переход уже зафиксирован,
	// ошибка отправки его не откатывает
	if err := uc.notifier.NotifyClientApproved(ctx, approved); err != nil {
		uc.logger.Error("ApproveBooking: failed to enqueue approval notification for booking id=%d: %v", bookingID, err)
	}

	return nil
}
