// Package jobs provides scheduled background tasks for the parcel service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled).
//
// # Available Jobs
//
// OutboxRelayJob publishes booking events written to the outbox by committed
// transactions. It runs on OUTBOX_RELAY_SCHEDULE, every five seconds by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(outboxRelayJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Relay failures are logged and retried on the next run. Booking commands
// never wait for the broker.
package jobs
