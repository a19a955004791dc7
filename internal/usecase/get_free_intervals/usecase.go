package get_free_intervals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
	bathhouseRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/bathhouse"
)

// UseCase use case для сводки свободного времени бани на дату.
// В отличие от дискретных слотов выбора, возвращает непрерывные
// промежутки между approved-бронированиями — для экрана расписания,
// независимо от шага слотов.
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

// Execute выполняет use case получения свободных интервалов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeIntervals: bathhouse=%d, date=%s",
		req.BathhouseID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFreeIntervals: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.bathhouseRepo.GetByID(ctx, req.BathhouseID); err != nil {
		if errors.Is(err, bathhouseRepo.ErrBathhouseNotFound) {
			uc.logger.Warn("GetFreeIntervals: bathhouse id=%d not found", req.BathhouseID)
			return nil, ErrBathhouseNotFound
		}
		uc.logger.Error("GetFreeIntervals: failed to get bathhouse id=%d: %v", req.BathhouseID, err)
		return nil, fmt.Errorf("%w: failed to get bathhouse: %v", ErrInternal, err)
	}

	openHour := uc.configs.GetInt(ctx, domain.ConfigKeyOpenHour, domain.DefaultOpenHour)
	closeHour := uc.configs.GetInt(ctx, domain.ConfigKeyCloseHour, domain.DefaultCloseHour)

	open, close := workingWindow(req.Date, openHour, closeHour, uc.location)

	approved, err := uc.bookingRepo.ListApprovedOverlapping(ctx, req.BathhouseID, open.UTC(), close.UTC(), 0)
	if err != nil {
		uc.logger.Error("GetFreeIntervals: failed to get approved bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get approved bookings: %v", ErrInternal, err)
	}

	intervals := sweepFreeIntervals(open, close, approved, uc.location)

	summary := domain.FormatIntervals(
		domain.MergeAdjacentIntervals(intervals, req.MergeGapMinutes),
	)

	uc.logger.Info("GetFreeIntervals: %d free interval(s) for bathhouse=%d, date=%s",
		len(intervals), req.BathhouseID, req.Date.Format(domain.DateFormat))

	return &Response{
		BathhouseID: req.BathhouseID,
		Date:        req.Date,
		Intervals:   intervals,
		Summary:     summary,
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

	if req.MergeGapMinutes < 0 {
		return fmt.Errorf("%w: mergeGapMinutes must not be negative", ErrInvalidInput)
	}

	return nil
}
