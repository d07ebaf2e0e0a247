package notify

import (
	"context"
	"sync"
	"time"

	"heavenstay/internal/data/entity"
	"heavenstay/pkg/utils"

	"go.uber.org/zap"
)

const deliveryTimeout = 5 * time.Second

// Sink is one delivery target of a notification.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, n *entity.Notification) error
}

// Dispatcher fans notifications out to its sinks on a small worker pool.
// Notify never blocks: when the queue is full the notification is dropped
// and logged.
type Dispatcher struct {
	queue   chan *entity.Notification
	sinks   []Sink
	workers int
	log     *zap.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(config utils.NotifyConfig, log *zap.Logger, sinks ...Sink) *Dispatcher {
	queueSize := config.QueueSize
	if queueSize <= 0 {
		queueSize = 256
	}
	workers := config.Workers
	if workers <= 0 {
		workers = 1
	}

	return &Dispatcher{
		queue:   make(chan *entity.Notification, queueSize),
		sinks:   sinks,
		workers: workers,
		log:     log.With(zap.String("component", "notify")),
	}
}

// Start launches the workers. Call once.
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
	d.log.Info("Notification dispatcher started", zap.Int("workers", d.workers), zap.Int("sinks", len(d.sinks)))
}

func (d *Dispatcher) Notify(_ context.Context, n *entity.Notification) {
	if n == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("Notification dropped, dispatcher closed", zap.String("user_id", n.UserID.String()))
		return
	}

	select {
	case d.queue <- n:
	default:
		d.log.Warn("Notification dropped, queue full",
			zap.String("user_id", n.UserID.String()),
			zap.String("type", string(n.Type)),
		)
	}
}

// Close stops accepting notifications and drains the queue, or gives up when ctx ends.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for n := range d.queue {
		d.deliver(n)
	}
}

func (d *Dispatcher) deliver(n *entity.Notification) {
	for _, sink := range d.sinks {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		err := sink.Deliver(ctx, n)
		cancel()

		if err != nil {
			d.log.Error("Notification delivery failed",
				zap.Error(err),
				zap.String("sink", sink.Name()),
				zap.String("user_id", n.UserID.String()),
				zap.String("type", string(n.Type)),
			)
		}
	}
}
