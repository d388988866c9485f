// Package jobs provides scheduled background tasks for the warehouse service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StatusSummaryJob - counts containers per status and publishes the counts
// as prometheus gauges (warehouse_containers, warehouse_containers_total)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(summaryHandler, recorder, cfg.SummarySchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (with seconds). The default is
// every 30 seconds; SUMMARY_SCHEDULE overrides it.
//
// # Error Handling
//
// A failed refresh is logged and leaves the previous gauge values in place.
// An invalid schedule fails StartAll.
package jobs
