package jobs

import (
	"context"
	"log/slog"
	"sync"

	"parcel/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxRelaySchedule runs the relay every five seconds.
const DefaultOutboxRelaySchedule = "*/5 * * * * *"

// outboxRelayer is implemented by *commands.RelayOutboxCommandHandler.
type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob periodically publishes pending booking events. A run that
// overlaps the previous one is skipped.
type OutboxRelayJob struct {
	handler   outboxRelayer
	cmd       commands.RelayOutboxCommand
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
	running   sync.Mutex
	published func(int)
}

// NewOutboxRelayJob builds the job. onPublished, when not nil, receives the
// number of messages each run published.
func NewOutboxRelayJob(
	handler outboxRelayer,
	cmd commands.RelayOutboxCommand,
	schedule string,
	logger *slog.Logger,
	onPublished func(int),
) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxRelaySchedule
	}
	return &OutboxRelayJob{
		handler:   handler,
		cmd:       cmd,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
		published: onPublished,
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// RunOnce relays one batch. Failures are logged; the remaining messages stay
// in the outbox for the next run.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	if !j.running.TryLock() {
		return
	}
	defer j.running.Unlock()

	count, err := j.handler.Handle(ctx, j.cmd)
	if count > 0 {
		if j.published != nil {
			j.published(count)
		}
		j.logger.DebugContext(ctx, "Outbox messages published", "count", count)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err, "published", count)
	}
}

// Stop stops the scheduler and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
