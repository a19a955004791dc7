package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
	clientRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/client"
)

// Service сервис учета клиентов
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return client, nil
}

// GetOrCreateByTelegramID находит клиента по telegram_id или создает
// нового. Вызывается фронтендом при первом обращении пользователя.
func (s *Service) GetOrCreateByTelegramID(ctx context.Context, telegramID, name string) (*domain.Client, error) {
	if strings.TrimSpace(telegramID) == "" {
		return nil, fmt.Errorf("%w: telegramID is required", ErrInvalidInput)
	}

	client, err := s.clientRepo.GetByTelegramID(ctx, telegramID)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		s.logger.Error("GetOrCreateByTelegramID: repository error for telegram_id=%s: %v", telegramID, err)
		return nil, fmt.Errorf("%w: GetOrCreateByTelegramID - repository error: %v", ErrInternal, err)
	}

	if strings.TrimSpace(name) == "" {
		name = "Клиент"
	}

	created, err := s.clientRepo.Create(ctx, &domain.Client{
		Name:       name,
		TelegramID: &telegramID,
	})
	if err != nil {
		s.logger.Error("GetOrCreateByTelegramID: failed to create client for telegram_id=%s: %v", telegramID, err)
		return nil, fmt.Errorf("%w: GetOrCreateByTelegramID - create failed: %v", ErrInternal, err)
	}

	s.logger.Info("GetOrCreateByTelegramID: created client id=%d for telegram_id=%s", created.ID, telegramID)
	return created, nil
}

// UpdatePhone сохраняет телефон клиента
func (s *Service) UpdatePhone(ctx context.Context, id int64, phone string) error {
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if err := s.clientRepo.UpdatePhone(ctx, id, phone); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("UpdatePhone: client id=%d not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("UpdatePhone: repository error for client id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdatePhone - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePhone: client id=%d phone updated", id)
	return nil
}
