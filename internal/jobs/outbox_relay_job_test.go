package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"parcel/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRelayer struct{ mock.Mock }

func (m *mockRelayer) Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func newTestJob(t *testing.T, relayer outboxRelayer, logs *bytes.Buffer, published *int) *OutboxRelayJob {
	t.Helper()
	cmd, err := commands.NewRelayOutboxCommand(50)
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewOutboxRelayJob(relayer, cmd, "", logger, func(n int) { *published += n })
}

func TestOutboxRelayJob_RunOnce(t *testing.T) {
	ctx := t.Context()
	relayer := new(mockRelayer)
	relayer.On("Handle", ctx, mock.Anything).Return(3, nil).Once()
	var logs bytes.Buffer
	var published int
	job := newTestJob(t, relayer, &logs, &published)

	job.RunOnce(ctx)

	assert.Equal(t, 3, published)
	assert.Contains(t, logs.String(), "Outbox messages published")
	assert.NotContains(t, logs.String(), "level=ERROR")
	relayer.AssertExpectations(t)
}

func TestOutboxRelayJob_RunOnce_LogsFailure(t *testing.T) {
	ctx := t.Context()
	relayer := new(mockRelayer)
	relayer.On("Handle", ctx, mock.Anything).Return(1, errors.New("broker down")).Once()
	var logs bytes.Buffer
	var published int
	job := newTestJob(t, relayer, &logs, &published)

	job.RunOnce(ctx)

	assert.Equal(t, 1, published)
	assert.Contains(t, logs.String(), "Outbox relay failed")
	assert.Contains(t, logs.String(), "broker down")
}

func TestOutboxRelayJob_RunOnce_SkipsOverlappingRun(t *testing.T) {
	relayer := new(mockRelayer)
	var logs bytes.Buffer
	var published int
	job := newTestJob(t, relayer, &logs, &published)

	job.running.Lock()
	job.RunOnce(t.Context())
	job.running.Unlock()

	relayer.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestJobManager_StartAndStop(t *testing.T) {
	relayer := new(mockRelayer)
	relayer.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Maybe()
	var logs bytes.Buffer
	var published int
	manager := NewJobManager(newTestJob(t, relayer, &logs, &published))

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, logs.String(), "Outbox relay job started")
	assert.Contains(t, logs.String(), "Outbox relay job stopped")
}

func TestOutboxRelayJob_Start_InvalidSchedule(t *testing.T) {
	cmd, err := commands.NewRelayOutboxCommand(50)
	require.NoError(t, err)
	job := NewOutboxRelayJob(new(mockRelayer), cmd, "not a schedule", slog.New(slog.DiscardHandler), nil)

	require.Error(t, NewJobManager(job).StartAll())
}
