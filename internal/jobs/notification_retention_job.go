package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationRetentionJob deletes read notifications once they are older than the
// retention. Unread notifications are kept whatever their age.
type NotificationRetentionJob struct {
	handler   commands.PurgeReadNotificationsCommandHandler
	schedule  string
	retention time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationRetentionJob creates the job. schedule is a standard cron expression.
func NewNotificationRetentionJob(
	handler commands.PurgeReadNotificationsCommandHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *NotificationRetentionJob {
	return &NotificationRetentionJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		now:       time.Now,
		cron:      cron.New(),
		logger:    logger.With("component", "notification_retention_job"),
	}
}

func (j *NotificationRetentionJob) Name() string {
	return "notification retention job"
}

// Start schedules the purge.
func (j *NotificationRetentionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification retention job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retention job started",
		"schedule", j.schedule,
		"retention", j.retention.String(),
	)
	return nil
}

// RunOnce purges now and returns the number of deleted notifications.
func (j *NotificationRetentionJob) RunOnce(ctx context.Context) (int64, error) {
	cmd, err := commands.NewPurgeReadNotificationsCommand(j.now().Add(-j.retention))
	if err != nil {
		return 0, err
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		j.logger.InfoContext(ctx, "Purged read notifications", "deleted", deleted)
	}
	return deleted, nil
}

// Stop stops the job, waiting for a running purge to finish.
func (j *NotificationRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification retention job stopped")
}
