package service

import (
	"context"
	"fmt"
	"time"

	"printer-agent/internal/core/cache"
	"printer-agent/internal/core/logger"
	"printer-agent/internal/features/jobs/ports"
	labeldomain "printer-agent/internal/features/labels/domain"
	printdomain "printer-agent/internal/features/printing/domain"

	"go.uber.org/zap"
)

// OrderProcessor renders and dispatches one order. Implemented by the
// printing service.
type OrderProcessor interface {
	Process(ctx context.Context, order labeldomain.Order) (*labeldomain.Artifact, printdomain.Outcome, error)
}

// Poller drives the poll cycle: fetch pending orders, process them strictly
// one at a time, acknowledge each back to the API. A transient poll or ack
// failure is logged and retried naturally on the next tick; there is no
// in-cycle retry or backoff.
type Poller struct {
	provider   ports.JobProvider
	processor  OrderProcessor
	guard      cache.Cache // nil disables the printed-order guard
	guardTTL   time.Duration
	interval   time.Duration
	orderDelay time.Duration
	logger     *zap.Logger
}

// NewPoller creates a Poller. guard may be nil when no Redis is configured;
// the agent then relies on acknowledgments alone, like the original client.
func NewPoller(provider ports.JobProvider, processor OrderProcessor, guard cache.Cache, guardTTL, interval, orderDelay time.Duration) *Poller {
	return &Poller{
		provider:   provider,
		processor:  processor,
		guard:      guard,
		guardTTL:   guardTTL,
		interval:   interval,
		orderDelay: orderDelay,
		logger:     logger.Named("poller"),
	}
}

// Run polls until the context is cancelled. The first cycle fires
// immediately so a restart picks up waiting orders without the full
// interval delay.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info("Poller started",
		zap.Duration("interval", p.interval),
		zap.Duration("order_delay", p.orderDelay),
		zap.Bool("printed_guard", p.guard != nil),
	)

	p.cycle(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Poller stopped")
			return
		case <-ticker.C:
			p.cycle(ctx)
		}
	}
}

// cycle runs one poll: fetch, then process sequentially. The inter-order
// delay throttles API acknowledgments and runs after dispatch has actually
// completed, since external print processes are awaited.
func (p *Poller) cycle(ctx context.Context) {
	orders, err := p.provider.PendingJobs(ctx)
	if err != nil {
		p.logger.Warn("Poll failed, retrying next tick", zap.Error(err))
		return
	}

	if len(orders) == 0 {
		return
	}

	p.logger.Info("Pending orders found", zap.Int("count", len(orders)))

	for i, order := range orders {
		if ctx.Err() != nil {
			return
		}

		p.handle(ctx, order)

		if i < len(orders)-1 {
			p.pause(ctx)
		}
	}
}

// handle processes a single order, consulting the printed-order guard so a
// re-served order (lost acknowledgment) does not print twice.
func (p *Poller) handle(ctx context.Context, order labeldomain.Order) {
	if p.alreadyPrinted(ctx, order.ID) {
		p.logger.Info("Order already dispatched, retrying acknowledgment only",
			zap.Int("order_id", order.ID),
		)
		p.acknowledge(ctx, order.ID)
		return
	}

	p.logger.Info("Processing order",
		zap.Int("order_id", order.ID),
		zap.String("name", order.Name),
	)

	artifact, outcome, err := p.processor.Process(ctx, order)
	if err != nil {
		p.logger.Error("Order processing failed", zap.Int("order_id", order.ID), zap.Error(err))
		return
	}

	p.markPrinted(ctx, order.ID, artifact.Filename)
	p.acknowledge(ctx, order.ID)

	p.logger.Info("Order completed",
		zap.Int("order_id", order.ID),
		zap.String("strategy", string(outcome.Strategy)),
	)
}

// acknowledge reports completion to the API. Failure is logged only: the
// guard (when enabled) prevents a duplicate print when the order is
// re-served on the next cycle.
func (p *Poller) acknowledge(ctx context.Context, orderID int) {
	if err := p.provider.MarkPrinted(ctx, orderID); err != nil {
		p.logger.Warn("Acknowledgment failed", zap.Int("order_id", orderID), zap.Error(err))
	}
}

func (p *Poller) guardKey(orderID int) string {
	return fmt.Sprintf("printed:%d", orderID)
}

func (p *Poller) alreadyPrinted(ctx context.Context, orderID int) bool {
	if p.guard == nil {
		return false
	}
	if _, err := p.guard.Get(ctx, p.guardKey(orderID)); err != nil {
		return false
	}
	return true
}

func (p *Poller) markPrinted(ctx context.Context, orderID int, filename string) {
	if p.guard == nil {
		return
	}
	if err := p.guard.Set(ctx, p.guardKey(orderID), []byte(filename), p.guardTTL); err != nil {
		p.logger.Warn("Printed guard update failed", zap.Int("order_id", orderID), zap.Error(err))
	}
}

// pause waits the inter-order delay or bails out on cancellation.
func (p *Poller) pause(ctx context.Context) {
	if p.orderDelay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(p.orderDelay):
	}
}
