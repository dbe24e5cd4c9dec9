package capsuletracking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// checkDueCapsules runs one dispatch tick: list every capsule that is due and
// unclaimed, then process each candidate in its own unit of work. A failure on
// one capsule never rolls back or blocks another; only a failure of the
// listing query itself aborts the tick, and that mutates nothing, so the next
// tick retries from scratch.
func (t *CapsuleTracker) checkDueCapsules() {
	ctx := context.Background()
	now := time.Now()

	capsules, err := t.store.ListDueCapsules(ctx, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to list due capsules")
		return
	}

	if len(capsules) == 0 {
		return
	}

	log.Info().
		Int("count", len(capsules)).
		Time("tick_time", now).
		Msg("Found capsules ready to open")

	sem := make(chan struct{}, maxConcurrentDeliveries)
	var wg sync.WaitGroup
	for _, capsule := range capsules {
		wg.Add(1)
		sem <- struct{}{}
		go func(capsuleID int64) {
			defer wg.Done()
			defer func() { <-sem }()
			t.processDueCapsule(ctx, capsuleID)
		}(capsule.ID)
	}
	wg.Wait()
}

// processDueCapsule claims one capsule and, on winning the claim, delivers the
// opened notification. The claim is a single conditional update: it both tests
// and sets is_notified in one statement, so concurrent trackers (or an
// overlapping previous tick) cannot double-deliver. A claim that fails for an
// infrastructure reason leaves the capsule unclaimed and it is retried on the
// next tick; a claim that loses the race is silently skipped.
func (t *CapsuleTracker) processDueCapsule(ctx context.Context, capsuleID int64) {
	claimCtx, cancel := context.WithTimeout(ctx, claimTimeout)
	defer cancel()

	rowsAffected, err := t.store.MarkCapsuleNotified(claimCtx, capsuleID)
	if err != nil {
		log.Error().Err(err).
			Int64("capsule_id", capsuleID).
			Msg("capsule claim failed, will retry next tick")
		return
	}
	if rowsAffected == 0 {
		log.Trace().
			Int64("capsule_id", capsuleID).
			Msg("capsule already claimed by another worker")
		return
	}

	// The claim is durable from here on. Delivery failures are surfaced but
	// never revert it: un-claiming would reopen the race the claim closes, and
	// the receiver still sees the capsule as openable on the read path.
	deliverCtx, cancel := context.WithTimeout(ctx, deliverTimeout)
	defer cancel()

	capsule, err := t.store.GetTimeCapsuleByID(deliverCtx, capsuleID)
	if err != nil {
		t.reportLostDelivery(capsuleID, fmt.Errorf("failed to reload claimed capsule: %w", err))
		return
	}

	sender, err := t.store.GetUserByID(deliverCtx, capsule.SenderID)
	if err != nil {
		t.reportLostDelivery(capsuleID, fmt.Errorf("failed to load capsule sender: %w", err))
		return
	}

	err = t.notifier.NotifyCapsuleOpened(deliverCtx, capsule.ReceiverID, capsule.ID, sender.Nickname, capsule.Title)
	if err != nil {
		t.reportLostDelivery(capsuleID, err)
		return
	}

	log.Info().
		Int64("capsule_id", capsule.ID).
		Int64("receiver_id", capsule.ReceiverID).
		Msg("capsule open notification delivered")
}

// reportLostDelivery records the one tolerated inconsistency: the capsule is
// marked notified but no notification exists. Not retried by design.
func (t *CapsuleTracker) reportLostDelivery(capsuleID int64, err error) {
	log.Error().Err(err).
		Int64("capsule_id", capsuleID).
		Msg("capsule claimed but notification delivery failed; not retrying")

	if t.alerter == nil {
		return
	}

	message := fmt.Sprintf("Capsule %d claimed but opened-notification delivery failed: %v", capsuleID, err)
	if alertErr := t.alerter.Send(message); alertErr != nil {
		log.Error().Err(alertErr).Msg("failed to send ops alert")
	}
}
