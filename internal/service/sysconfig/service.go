package sysconfig

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
	sysconfigRepo "github.com/mkorchagin/bathhouse-booking/internal/infra/storage/sysconfig"
)

// Service провайдер бизнес-конфигурации поверх таблицы system_config.
// Отсутствующий ключ не ошибка: возвращается дефолт с warning в логе,
// система должна работать до какой-либо настройки администратором.
type Service struct {
	repo   ConfigRepository
	logger Logger
}

// NewService создает новый экземпляр провайдера конфигурации
func NewService(repo ConfigRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetString получает строковое значение конфигурации
func (s *Service) GetString(ctx context.Context, key string, def string) string {
	value, err := s.repo.GetValue(ctx, key)
	if err != nil {
		s.logFallback(key, err)
		return def
	}
	return value
}

// GetInt получает целочисленное значение конфигурации
func (s *Service) GetInt(ctx context.Context, key string, def int) int {
	value, err := s.repo.GetValue(ctx, key)
	if err != nil {
		s.logFallback(key, err)
		return def
	}

	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		s.logger.Error("sysconfig: failed to cast %s value %q to int: %v", key, value, err)
		return def
	}
	return n
}

// GetBool получает булево значение конфигурации.
// Истинными считаются true/1/yes/y/on (без учета регистра).
func (s *Service) GetBool(ctx context.Context, key string, def bool) bool {
	value, err := s.repo.GetValue(ctx, key)
	if err != nil {
		s.logFallback(key, err)
		return def
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// GetValue возвращает сырое значение ключа конфигурации.
// В отличие от типизированных геттеров отсутствие ключа здесь ошибка:
// метод обслуживает HTTP-чтение конфигурации фронтендами.
func (s *Service) GetValue(ctx context.Context, key string) (string, error) {
	value, err := s.repo.GetValue(ctx, key)
	if err != nil {
		if errors.Is(err, sysconfigRepo.ErrConfigNotFound) {
			s.logger.Warn("sysconfig: key %s not found", key)
			return "", ErrConfigNotFound
		}
		s.logger.Error("sysconfig: failed to read key %s: %v", key, err)
		return "", fmt.Errorf("%w: GetValue - repository error: %v", ErrInternal, err)
	}
	return value, nil
}

// SetValue обновляет значение существующего ключа конфигурации.
// Новые ключи не создаются: набор ключей фиксирован EnsureDefaults.
func (s *Service) SetValue(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidInput)
	}
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: value is required", ErrInvalidInput)
	}

	if err := s.repo.SetValue(ctx, key, value); err != nil {
		if errors.Is(err, sysconfigRepo.ErrConfigNotFound) {
			s.logger.Warn("sysconfig: cannot set unknown key %s", key)
			return ErrConfigNotFound
		}
		s.logger.Error("sysconfig: failed to set key %s: %v", key, err)
		return fmt.Errorf("%w: SetValue - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("sysconfig: key %s updated", key)
	return nil
}

func (s *Service) logFallback(key string, err error) {
	if errors.Is(err, sysconfigRepo.ErrConfigNotFound) {
		s.logger.Warn("sysconfig: key %s not found, using default", key)
		return
	}
	s.logger.Error("sysconfig: failed to read key %s, using default: %v", key, err)
}

// defaultEntry дефолтная запись системной конфигурации
type defaultEntry struct {
	key         string
	value       string
	description string
}

var defaultEntries = []defaultEntry{
	{domain.ConfigKeyPaymentInstruction, domain.DefaultPaymentInstruction, "Инструкция по оплате для клиентов"},
	{domain.ConfigKeyOpenHour, strconv.Itoa(domain.DefaultOpenHour), "Час открытия (0-23)"},
	{domain.ConfigKeyCloseHour, strconv.Itoa(domain.DefaultCloseHour), "Час закрытия (0-23)"},
	{domain.ConfigKeySlotStepMinutes, strconv.Itoa(domain.DefaultSlotStepMinutes), "Шаг между слотами в минутах"},
	{domain.ConfigKeyMinBookingMinutes, strconv.Itoa(domain.DefaultMinBookingMinutes), "Минимальная продолжительность бронирования в минутах"},
	{domain.ConfigKeyMaxActiveBookings, strconv.Itoa(domain.DefaultMaxActiveBookings), "Максимальное количество активных бронирований на одного клиента"},
	{domain.ConfigKeySessionTimeoutMinutes, strconv.Itoa(domain.DefaultSessionTimeoutMinutes), "Таймаут сессии бронирования в минутах"},
	{domain.ConfigKeyNotificationsEnabled, "true", "Включены ли уведомления в Telegram"},
}

// EnsureDefaults создает отсутствующие ключи конфигурации с дефолтными
// значениями. Существующие значения не перезаписываются, обновляются
// только описания.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	for _, entry := range defaultEntries {
		err := s.repo.Upsert(ctx, sysconfigRepo.Entry{
			Key:         entry.key,
			Value:       entry.value,
			Description: entry.description,
		})
		if err != nil {
			s.logger.Error("sysconfig: failed to initialize key %s: %v", entry.key, err)
			return err
		}
	}

	s.logger.Info("sysconfig: default configuration ensured (%d keys)", len(defaultEntries))
	return nil
}
