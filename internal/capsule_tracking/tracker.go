package capsuletracking

import (
	"context"
	"time"

	db "github.com/deartime/deartime-BE/internal/db/sqlc"
	"github.com/go-co-op/gocron/v2"
)

const (
	// checkCrontab fires on every minute boundary. Minute granularity is the
	// contract: a capsule becoming due between ticks is picked up on the next
	// one.
	checkCrontab = "* * * * *"

	// maxConcurrentDeliveries bounds the per-tick fan-out. The claim update is
	// the only synchronization point, so any degree of concurrency is safe.
	maxConcurrentDeliveries = 8

	claimTimeout   = 5 * time.Second
	deliverTimeout = 10 * time.Second
)

// CapsuleStore is the slice of the db store the tracker needs. Satisfied by
// db.Store; kept narrow so the dispatch logic is testable without Postgres.
type CapsuleStore interface {
	ListDueCapsules(ctx context.Context, openAt time.Time) ([]db.TimeCapsule, error)
	MarkCapsuleNotified(ctx context.Context, id int64) (int64, error)
	GetTimeCapsuleByID(ctx context.Context, id int64) (db.TimeCapsule, error)
	GetUserByID(ctx context.Context, id int64) (db.User, error)
}

// OpenedNotifier delivers the capsule-opened notification for one claimed
// capsule. Satisfied by *notification.Notifier.
type OpenedNotifier interface {
	NotifyCapsuleOpened(ctx context.Context, recipientID, capsuleID int64, senderNickname, capsuleTitle string) error
}

// Alerter carries high-severity operational alerts (claim committed but
// delivery failed). May be nil.
type Alerter interface {
	Send(message string) error
}

// CapsuleTracker periodically scans for capsules whose open time has arrived
// and delivers exactly one opened notification per capsule. Multiple tracker
// instances may run against the same database: the conditional update in
// MarkCapsuleNotified decides the single winner, so no leader election is
// needed and overlapping ticks are harmless.
type CapsuleTracker struct {
	store     CapsuleStore
	notifier  OpenedNotifier
	alerter   Alerter
	scheduler gocron.Scheduler
}

// NewCapsuleTracker creates a tracker for due time capsules.
func NewCapsuleTracker(store CapsuleStore, notifier OpenedNotifier, alerter Alerter) (*CapsuleTracker, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &CapsuleTracker{
		store:     store,
		notifier:  notifier,
		alerter:   alerter,
		scheduler: scheduler,
	}, nil
}

// Start registers the minute job and starts the scheduler. The job returns
// promptly on gocron's goroutine; slow batches are bounded by the worker pool,
// and a tick still running when the next one fires is left to finish.
func (t *CapsuleTracker) Start() error {
	_, err := t.scheduler.NewJob(
		gocron.CronJob(checkCrontab, false),
		gocron.NewTask(
			func() {
				t.checkDueCapsules()
			},
		),
	)
	if err != nil {
		return err
	}

	t.scheduler.Start()
	return nil
}

// Stop shuts down the scheduler, waiting for running jobs to finish.
func (t *CapsuleTracker) Stop() error {
	return t.scheduler.Shutdown()
}
