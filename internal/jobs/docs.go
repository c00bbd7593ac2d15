// Package jobs provides scheduled background tasks for the order panel.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - delivers committed order events (created, status
// changed, deleted) from the outbox to the event broker and the operators'
// live feed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(relayHandler, jobs.RelayConfig{Schedule: "@every 2s", BatchSize: 50}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay runs every 2 seconds unless OUTBOX_RELAY_SCHEDULE says otherwise.
// Schedules use the six-field cron format (with seconds) or descriptors.
//
// # Error Handling
//
// A failed run is logged and the undelivered events stay pending for the
// next run. Jobs never sit on the request path.
package jobs
