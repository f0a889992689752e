package notify

import (
	"context"
	"log/slog"
	"sync"
)

// DefaultBuffer is the pipeline buffer capacity when none is configured.
const DefaultBuffer = 1024

// Pipeline is a bounded FIFO queue of Events with exactly one background
// consumer. Enqueue is fire-and-forget: it never blocks the caller and a
// full buffer drops the event rather than applying backpressure to the
// transfer path. With a single consumer, delivery order matches enqueue
// order.
type Pipeline struct {
	events   chan Event
	notifier Notifier
	logger   *slog.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewPipeline creates a pipeline with the given buffer capacity and starts
// its consumer. A non-positive buffer falls back to DefaultBuffer.
func NewPipeline(notifier Notifier, buffer int, logger *slog.Logger) *Pipeline {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	p := &Pipeline{
		events:   make(chan Event, buffer),
		notifier: notifier,
		logger:   logger.With("component", "notify"),
		done:     make(chan struct{}),
	}
	go p.consume()
	return p
}

// Enqueue queues an event for delivery without blocking. When the buffer is
// full the event is dropped: the loss is logged and counted, and the
// transfer that produced it is unaffected.
func (p *Pipeline) Enqueue(e Event) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.logger.Warn("notification discarded, pipeline closed",
			"account_id", e.AccountID, "message", e.Message)
		droppedTotal.Inc()
		return
	}
	select {
	case p.events <- e:
		queueDepth.Inc()
	default:
		p.logger.Warn("notification dropped, buffer full",
			"account_id", e.AccountID, "message", e.Message)
		droppedTotal.Inc()
	}
}

// Close stops intake, drains the remaining events, and waits for the
// consumer to finish.
func (p *Pipeline) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		<-p.done
		return
	}
	p.closed = true
	p.mu.Unlock()

	close(p.events)
	<-p.done
}

// consume perpetually dequeues and delivers events. A delivery failure or
// panic for one event is logged and the consumer moves on; one bad event
// never stalls the queue.
func (p *Pipeline) consume() {
	defer close(p.done)
	for e := range p.events {
		queueDepth.Dec()
		p.deliver(e)
	}
}

func (p *Pipeline) deliver(e Event) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("panic recovered in notifier",
				"account_id", e.AccountID, "panic", r)
			failedTotal.Inc()
		}
	}()
	if err := p.notifier.Notify(context.Background(), e.AccountID, e.Message); err != nil {
		p.logger.Error("failed to deliver notification",
			"account_id", e.AccountID, "message", e.Message, "error", err)
		failedTotal.Inc()
		return
	}
	deliveredTotal.Inc()
}
