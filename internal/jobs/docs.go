// Package jobs provides scheduled background tasks for the order tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// PendingOrderExpiryJob cancels orders that stayed pending for longer than the
// configured TTL (PENDING_ORDER_TTL). It goes through the regular status
// transition path, so an order confirmed in the meantime is left alone. With a
// zero TTL the job is not registered at all.
//
// # Usage
//
//	jobManager := jobs.NewJobManager()
//	jobManager.Add("pending order expiry", jobs.NewPendingOrderExpiryJob(
//		expireHandler, ttl, schedule, serverMetrics.OrdersExpired, logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with seconds. The default,
// DefaultExpirySchedule, runs at the start of every minute.
//
// # Error Handling
//
//   - StoreBusy errors are logged as warnings; the next tick retries
//   - Other errors are logged as errors and the sweep stops early
//   - Failed job starts will stop any already running jobs
package jobs
