package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"gamestats-api/internal/model"
)

// MatchRecorder applies a finished match to player statistics.
type MatchRecorder interface {
	RecordMatch(ctx context.Context, result model.MatchResult) error
}

var errMalformedResult = errors.New("malformed match result")

type MatchResultWorker struct {
	conn      *amqp.Connection
	recorder  MatchRecorder
	queueName string
	logger    *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewMatchResultWorker(conn *amqp.Connection, recorder MatchRecorder, queueName string, logger *slog.Logger) *MatchResultWorker {
	return &MatchResultWorker{
		conn:      conn,
		recorder:  recorder,
		queueName: queueName,
		logger:    logger,
	}
}

// Start consumes the queue declared by the rabbitmq platform package. Deliveries
// are processed one at a time.
func (w *MatchResultWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	ch, err := w.conn.Channel()
	if err != nil {
		return fmt.Errorf("open worker channel failed: %w", err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		_ = ch.Close()
		return fmt.Errorf("set worker prefetch failed: %w", err)
	}

	deliveries, err := ch.Consume(w.queueName, "", false, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()
		w.consume(workerCtx, deliveries)
	}()

	w.logger.Info("match result worker started", "queue", w.queueName)
	return nil
}

// consume runs until ctx is done or the delivery channel closes. Rejected
// results are dropped rather than requeued.
func (w *MatchResultWorker) consume(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				w.logger.Warn("match result deliveries closed", "queue", w.queueName)
				return
			}
			w.settle(ctx, d)
		}
	}
}

func (w *MatchResultWorker) settle(ctx context.Context, d amqp.Delivery) {
	if err := w.handle(ctx, d.Body); err != nil {
		w.logger.Error("match result rejected",
			"queue", w.queueName,
			"delivery_tag", d.DeliveryTag,
			"error", err,
		)
		if err := d.Nack(false, false); err != nil {
			w.logger.Warn("nack match result failed", "error", err)
		}
		return
	}
	if err := d.Ack(false); err != nil {
		w.logger.Warn("ack match result failed", "error", err)
	}
}

func (w *MatchResultWorker) handle(ctx context.Context, body []byte) error {
	var result model.MatchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("%w: %v", errMalformedResult, err)
	}
	return w.recorder.RecordMatch(ctx, result)
}

func (w *MatchResultWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
