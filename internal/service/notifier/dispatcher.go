package notifier

import (
	"context"
	"time"
)

// Dispatcher фоновый диспетчер outbox-очереди уведомлений.
// По тикеру вычитывает пачку pending-записей и отправляет их через
// шлюз бота. Успех помечается MarkSent, ошибка — MarkFailed с
// инкрементом попыток; запись, исчерпавшая попытки, переводится
// репозиторием в failed и из выборки выпадает.
type Dispatcher struct {
	repo         NotificationRepository
	sender       MessageSender
	metrics      MetricsCollector
	logger       Logger
	pollInterval time.Duration
	batchSize    int
	maxAttempts  int
}

// NewDispatcher создает новый экземпляр диспетчера уведомлений
func NewDispatcher(
	repo NotificationRepository,
	sender MessageSender,
	metrics MetricsCollector,
	logger Logger,
	pollInterval time.Duration,
	batchSize int,
	maxAttempts int,
) *Dispatcher {
	return &Dispatcher{
		repo:         repo,
		sender:       sender,
		metrics:      metrics,
		logger:       logger,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		maxAttempts:  maxAttempts,
	}
}

// Run запускает цикл доставки; блокируется до отмены контекста
func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info("notifier: started, poll interval %s, batch size %d", d.pollInterval, d.batchSize)

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("notifier: stopped")
			return
		case <-ticker.C:
			d.DispatchPending(ctx)
		}
	}
}

// DispatchPending обрабатывает одну пачку pending-уведомлений.
// Возвращает количество успешно отправленных.
func (d *Dispatcher) DispatchPending(ctx context.Context) int {
	pending, err := d.repo.ListPending(ctx, d.batchSize, d.maxAttempts)
	if err != nil {
		d.logger.Error("notifier: failed to list pending notifications: %v", err)
		return 0
	}

	if len(pending) == 0 {
		return 0
	}

	d.logger.Info("notifier: dispatching %d pending notification(s)", len(pending))

	sent := 0
	for _, n := range pending {
		if ctx.Err() != nil {
			return sent
		}

		if err := d.sender.SendMessage(ctx, n.TelegramID, n.Message); err != nil {
			d.logger.Warn("notifier: failed to send notification id=%d (attempt %d): %v",
				n.ID, n.Attempts+1, err)
			d.metrics.ObserveNotification("failed")

			if err := d.repo.MarkFailed(ctx, n.ID, d.maxAttempts); err != nil {
				d.logger.Error("notifier: failed to mark notification id=%d as failed: %v", n.ID, err)
			}
			continue
		}

		if err := d.repo.MarkSent(ctx, n.ID); err != nil {
			// Сообщение ушло, но статус не зафиксирован: при следующем
			// проходе возможна повторная доставка. Допустимо для
			// информационных уведомлений.
			d.logger.Error("notifier: failed to mark notification id=%d as sent: %v", n.ID, err)
		}

		d.metrics.ObserveNotification("sent")
		sent++
	}

	d.logger.Info("notifier: dispatched %d/%d notification(s)", sent, len(pending))
	return sent
}
