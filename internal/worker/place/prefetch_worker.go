package place

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourist-guide/internal/domain"
	"github.com/tourist-guide/internal/domain/repository"
	"github.com/tourist-guide/internal/usecase"
	"github.com/tourist-guide/internal/usecase/dto"
	"github.com/tourist-guide/internal/worker"
)

// PrefetchWorker прогревает кеш lookup-ответов: читает задачи из Redis
// Stream и выполняет lookup для каждого языка из задачи. Сам lookup
// складывает ответы в кеш, поэтому переключение языка на клиенте
// попадает в кеш.
type PrefetchWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	lookupUC   *usecase.LookupUseCase
	maxRetries int
}

// NewPrefetchWorker создает новый PrefetchWorker.
// lookupUC должен быть собран без streamRepo, иначе прогрев породит
// новые prefetch-задачи.
func NewPrefetchWorker(
	streamRepo repository.StreamRepository,
	lookupUC *usecase.LookupUseCase,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *PrefetchWorker {
	return &PrefetchWorker{
		BaseWorker: worker.NewBaseWorker("lookup-prefetch", consumerGroup, logger),
		streamRepo: streamRepo,
		lookupUC:   lookupUC,
		maxRetries: maxRetries,
	}
}

// Start запускает воркер
func (w *PrefetchWorker) Start(ctx context.Context) error {
	consumer := fmt.Sprintf("%s-%s", w.Name(), uuid.NewString()[:8])

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamLookupPrefetch, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("create consumer group: %w", err)
	}

	msgChan, err := w.streamRepo.ConsumeStream(ctx, domain.StreamLookupPrefetch, w.ConsumerGroup(), consumer)
	if err != nil {
		return fmt.Errorf("consume stream: %w", err)
	}

	w.Logger().Info("Prefetch worker started",
		zap.String("consumer", consumer),
		zap.String("group", w.ConsumerGroup()))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.StopChan():
			return nil
		case msg, ok := <-msgChan:
			if !ok {
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

// handleMessage обрабатывает одну prefetch-задачу.
// Сообщение подтверждается в любом случае, чтобы битые задачи не
// крутились в стриме вечно.
func (w *PrefetchWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	defer func() {
		if err := w.streamRepo.AckMessage(ctx, domain.StreamLookupPrefetch, w.ConsumerGroup(), msg.ID); err != nil {
			w.Logger().Error("Failed to ack message", zap.String("message_id", msg.ID), zap.Error(err))
		}
	}()

	var task domain.PrefetchTask
	if err := json.Unmarshal([]byte(msg.Data), &task); err != nil {
		w.Logger().Warn("Failed to unmarshal prefetch task",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return
	}
	if !task.HasCoordinates() {
		w.Logger().Warn("Prefetch task has invalid coordinates",
			zap.String("task_id", task.TaskID.String()))
		return
	}

	w.Logger().Debug("Processing prefetch task",
		zap.String("task_id", task.TaskID.String()),
		zap.Float64("lat", task.Lat),
		zap.Float64("lng", task.Lng),
		zap.Strings("langs", task.Langs))

	warmed := 0
	for _, lang := range task.Langs {
		req := dto.LookupRequest{
			Lat:    task.Lat,
			Lng:    task.Lng,
			Radius: task.RadiusMeters,
			Limit:  task.Limit,
			Lang:   lang,
		}

		if err := w.warmLang(ctx, req); err != nil {
			w.Logger().Warn("Prefetch lookup failed",
				zap.String("task_id", task.TaskID.String()),
				zap.String("lang", lang),
				zap.Error(err))
			continue
		}
		warmed++
	}

	w.Logger().Info("Prefetch task completed",
		zap.String("task_id", task.TaskID.String()),
		zap.Int("langs_warmed", warmed),
		zap.Int("langs_total", len(task.Langs)))
}

// warmLang выполняет lookup для одного языка с ретраями; сам lookup
// кладёт результат в кеш
func (w *PrefetchWorker) warmLang(ctx context.Context, req dto.LookupRequest) error {
	var lastErr error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		if _, err := w.lookupUC.Lookup(ctx, req); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
