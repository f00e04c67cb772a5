package service

import (
	"context"
	"fmt"

	"printer-agent/internal/core/logger"
	labeldomain "printer-agent/internal/features/labels/domain"
	labelports "printer-agent/internal/features/labels/ports"
	"printer-agent/internal/features/printing/domain"
	"printer-agent/internal/features/printing/ports"

	"go.uber.org/zap"
)

// PrintService orchestrates one order through the full pipeline:
// render the artifact, then dispatch it down the strategy chain.
type PrintService struct {
	renderer   labelports.LabelRenderer
	dispatcher ports.Dispatcher
	logger     *zap.Logger
}

// NewPrintService creates a PrintService.
func NewPrintService(renderer labelports.LabelRenderer, dispatcher ports.Dispatcher) *PrintService {
	return &PrintService{
		renderer:   renderer,
		dispatcher: dispatcher,
		logger:     logger.Named("print"),
	}
}

// Process renders and dispatches a single order. A render failure is a real
// error; dispatch only degrades, so the returned outcome always describes
// what happened to the label.
func (s *PrintService) Process(ctx context.Context, order labeldomain.Order) (*labeldomain.Artifact, domain.Outcome, error) {
	artifact, err := s.renderer.Render(order)
	if err != nil {
		return nil, domain.Outcome{}, fmt.Errorf("rendering order %d: %w", order.ID, err)
	}

	outcome, err := s.dispatcher.Dispatch(ctx, artifact)
	if err != nil {
		return artifact, outcome, fmt.Errorf("dispatching order %d: %w", order.ID, err)
	}

	s.logger.Info("Order processed",
		zap.Int("order_id", order.ID),
		zap.String("strategy", string(outcome.Strategy)),
		zap.Bool("auto_printed", outcome.AutoPrinted),
		zap.String("artifact", artifact.Filename),
	)

	return artifact, outcome, nil
}
