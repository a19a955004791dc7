package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
	bathhouseRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/bathhouse"
)

// UseCase use case для получения доступных слотов бронирования.
// Чтение без синхронизации: клиент может увидеть слот свободным и не
// успеть его занять — гонка штатная и всплывает как конфликт
// пересечения на последующем подтверждении.
type UseCase struct {
	bookingRepo   BookingRepository
	bathhouseRepo BathhouseRepository
	configs       ConfigProvider
	location      *time.Location
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	bathhouseRepo BathhouseRepository,
	configs ConfigProvider,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		bathhouseRepo: bathhouseRepo,
		configs:       configs,
		location:      location,
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: bathhouse=%d, date=%s",
		req.BathhouseID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.bathhouseRepo.GetByID(ctx, req.BathhouseID); err != nil {
		if errors.Is(err, bathhouseRepo.ErrBathhouseNotFound) {
			uc.logger.Warn("GetAvailableSlots: bathhouse id=%d not found", req.BathhouseID)
			return nil, ErrBathhouseNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get bathhouse id=%d: %v", req.BathhouseID, err)
		return nil, fmt.Errorf("%w: failed to get bathhouse: %v", ErrInternal, err)
	}

	openHour := uc.configs.GetInt(ctx, domain.ConfigKeyOpenHour, domain.DefaultOpenHour)
	closeHour := uc.configs.GetInt(ctx, domain.ConfigKeyCloseHour, domain.DefaultCloseHour)
	stepMinutes := uc.configs.GetInt(ctx, domain.ConfigKeySlotStepMinutes, domain.DefaultSlotStepMinutes)
	minBookingMinutes := uc.configs.GetInt(ctx, domain.ConfigKeyMinBookingMinutes, domain.DefaultMinBookingMinutes)

	open, close := workingWindow(req.Date, openHour, closeHour, uc.location)

	// Запрос к хранилищу идет по UTC-инстантам рабочего окна
	approved, err := uc.bookingRepo.ListApprovedOverlapping(ctx, req.BathhouseID, open.UTC(), close.UTC(), 0)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get approved bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get approved bookings: %v", ErrInternal, err)
	}

	slots := generateSlots(open, close, stepMinutes, minBookingMinutes, approved)

	uc.logger.Info("GetAvailableSlots: %d slots available for bathhouse=%d, date=%s",
		len(slots), req.BathhouseID, req.Date.Format(domain.DateFormat))

	return &Response{
		BathhouseID: req.BathhouseID,
		Date:        req.Date,
		Slots:       slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BathhouseID <= 0 {
		return fmt.Errorf("%w: bathhouseID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
