package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
	bathhouseRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/bathhouse"
	clientRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/client"
)

// UseCase use case для создания заявки на бронирование.
// Новая заявка всегда создается в статусе pending и не проверяется
// на пересечения: ресурс блокируют только approved-бронирования,
// поэтому несколько клиентов могут претендовать на один и тот же слот
// до решения администратора.
type UseCase struct {
	bookingRepo   BookingRepository
	clientRepo    ClientRepository
	bathhouseRepo BathhouseRepository
	configs       ConfigProvider
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	bathhouseRepo BathhouseRepository,
	configs ConfigProvider,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		clientRepo:    clientRepo,
		bathhouseRepo: bathhouseRepo,
		configs:       configs,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка лимита и вставка выполняются в сериализуемой транзакции,
// чтобы конкурентные заявки одного клиента не обошли лимит.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, bathhouse=%d, start=%s, end=%s",
		req.ClientID, req.BathhouseID,
		req.StartUTC.Format(domain.DateTimeFormat), req.EndUTC.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных и интервала
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем клиента
	if _, err := uc.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateBooking: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateBooking: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Проверяем баню: для новых бронирований доступны только активные
	bathhouse, err := uc.bathhouseRepo.GetByID(ctx, req.BathhouseID)
	if err != nil {
		if errors.Is(err, bathhouseRepo.ErrBathhouseNotFound) {
			uc.logger.Warn("CreateBooking: bathhouse id=%d not found", req.BathhouseID)
			return nil, ErrBathhouseNotFound
		}
		uc.logger.Error("CreateBooking: failed to get bathhouse id=%d: %v", req.BathhouseID, err)
		return nil, fmt.Errorf("%w: failed to get bathhouse: %v", ErrInternal, err)
	}
	if !bathhouse.IsActive {
		uc.logger.Warn("CreateBooking: bathhouse id=%d is not active", req.BathhouseID)
		return nil, ErrBathhouseNotFound
	}

	// 4. Читаем лимит активных бронирований
	maxActive := uc.configs.GetInt(ctx, domain.ConfigKeyMaxActiveBookings, domain.DefaultMaxActiveBookings)

	var result *domain.Booking

	// 5. Проверка лимита и вставка атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		activeCount, err := uc.bookingRepo.CountActiveByClient(txCtx, req.ClientID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count active bookings for client id=%d: %v", req.ClientID, err)
			return fmt.Errorf("%w: failed to count active bookings: %v", ErrInternal, err)
		}

		if activeCount >= maxActive {
			uc.logger.Warn("CreateBooking: client id=%d reached active bookings limit (%d/%d)",
				req.ClientID, activeCount, maxActive)
			return ErrLimitExceeded
		}

		booking := &domain.Booking{
			ClientID:      req.ClientID,
			BathhouseID:   req.BathhouseID,
			StartDatetime: req.StartUTC.UTC(),
			EndDatetime:   req.EndUTC.UTC(),
			Status:        domain.StatusPending,
			Comment:       commentOrEmpty(req.Comment),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (status=%s)", result.ID, result.Status)

	return &Response{
		ID:          result.ID,
		ClientID:    result.ClientID,
		BathhouseID: result.BathhouseID,
		StartUTC:    result.StartDatetime,
		EndUTC:      result.EndDatetime,
		Status:      string(result.Status),
		Comment:     result.Comment,
		CreatedAt:   result.CreatedAt,
	}, nil
}

func commentOrEmpty(comment *string) string {
	if comment == nil {
		return ""
	}
	return *comment
}
