package service

import (
	"context"
	"errors"
	"testing"

	labeldomain "printer-agent/internal/features/labels/domain"
	"printer-agent/internal/features/printing/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	artifact *labeldomain.Artifact
	err      error
	calls    int
}

func (f *fakeRenderer) Render(order labeldomain.Order) (*labeldomain.Artifact, error) {
	f.calls++
	return f.artifact, f.err
}

type fakeDispatcher struct {
	outcome    domain.Outcome
	err        error
	dispatched []*labeldomain.Artifact
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, artifact *labeldomain.Artifact) (domain.Outcome, error) {
	f.dispatched = append(f.dispatched, artifact)
	return f.outcome, f.err
}

// TestProcess_Success verifies render then dispatch ordering and outcome passthrough.
func TestProcess_Success(t *testing.T) {
	artifact := &labeldomain.Artifact{OrderID: 5, Filename: "order-5-1.html", Path: "/tmp/order-5-1.html"}
	renderer := &fakeRenderer{artifact: artifact}
	dispatcher := &fakeDispatcher{outcome: domain.Outcome{Strategy: domain.StrategyAutoPrint, AutoPrinted: true}}

	svc := NewPrintService(renderer, dispatcher)
	got, outcome, err := svc.Process(context.Background(), labeldomain.Order{ID: 5})

	require.NoError(t, err)
	assert.Equal(t, artifact, got)
	assert.True(t, outcome.AutoPrinted)
	require.Len(t, dispatcher.dispatched, 1)
	assert.Equal(t, artifact, dispatcher.dispatched[0])
}

// TestProcess_RenderError verifies dispatch never runs when rendering fails.
func TestProcess_RenderError(t *testing.T) {
	renderer := &fakeRenderer{err: errors.New("template broken")}
	dispatcher := &fakeDispatcher{}

	svc := NewPrintService(renderer, dispatcher)
	artifact, _, err := svc.Process(context.Background(), labeldomain.Order{ID: 5})

	require.Error(t, err)
	assert.Nil(t, artifact)
	assert.Empty(t, dispatcher.dispatched)
}

// TestProcess_DispatchError verifies the artifact survives a cancelled dispatch.
func TestProcess_DispatchError(t *testing.T) {
	artifact := &labeldomain.Artifact{OrderID: 5, Path: "/tmp/x.html"}
	renderer := &fakeRenderer{artifact: artifact}
	dispatcher := &fakeDispatcher{err: context.Canceled}

	svc := NewPrintService(renderer, dispatcher)
	got, _, err := svc.Process(context.Background(), labeldomain.Order{ID: 5})

	require.Error(t, err)
	assert.Equal(t, artifact, got)
}
