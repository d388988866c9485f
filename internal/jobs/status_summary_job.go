package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/container"

	"github.com/robfig/cron/v3"
)

// DefaultSummarySchedule refreshes the gauges every 30 seconds.
const DefaultSummarySchedule = "*/30 * * * * *"

type StatusSummaryQueryHandler interface {
	Handle(ctx context.Context, query queries.GetStatusSummaryQuery) (queries.StatusSummary, error)
}

// ContainerGauges receives the refreshed counts. *metrics.Recorder implements it.
type ContainerGauges interface {
	SetContainers(total, withoutStatus int, byStatus map[string]int)
}

// StatusSummaryJob periodically counts containers per status and publishes
// the counts as gauges.
type StatusSummaryJob struct {
	handler  StatusSummaryQueryHandler
	gauges   ContainerGauges
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusSummaryJob creates the job. schedule is a cron expression with a
// seconds field; an empty schedule means DefaultSummarySchedule.
func NewStatusSummaryJob(
	handler StatusSummaryQueryHandler,
	gauges ContainerGauges,
	schedule string,
	logger *slog.Logger,
) *StatusSummaryJob {
	if schedule == "" {
		schedule = DefaultSummarySchedule
	}

	return &StatusSummaryJob{
		handler:  handler,
		gauges:   gauges,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "status_summary_job"),
	}
}

// Start schedules the job and runs it once right away so the gauges are
// populated before the first tick.
func (j *StatusSummaryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.Run(context.Background())
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status summary job started", "schedule", j.schedule)
	return nil
}

// Run refreshes the gauges once. Failures are logged and the previous
// values are kept.
func (j *StatusSummaryJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, queries.NewGetStatusSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Status summary job failed", "error", err)
		return
	}

	// Every lifecycle status gets a series, zero included.
	byStatus := make(map[string]int, len(summary.ByStatus))
	for _, status := range container.Statuses() {
		byStatus[status.String()] = 0
	}
	for name, count := range summary.ByStatus {
		byStatus[name] = count
	}

	j.gauges.SetContainers(summary.Total, summary.Unknown, byStatus)
	j.logger.DebugContext(ctx, "Container gauges refreshed", "total", summary.Total, "without_status", summary.Unknown)
}

// Stop stops the status summary job and waits for a running refresh.
func (j *StatusSummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Status summary job stopped")
}
