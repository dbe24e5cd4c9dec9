package notification

import (
	"context"
	"time"

	db "github.com/deartime/deartime-BE/internal/db/sqlc"
	"github.com/deartime/deartime-BE/internal/event"
	"github.com/rs/zerolog/log"
)

const pushTimeout = 3 * time.Second

// RecordStore is the durable side of the notification sink.
type RecordStore interface {
	CreateNotification(ctx context.Context, arg db.CreateNotificationParams) (db.Notification, error)
}

// Notifier turns one domain event into a durable notification row plus a
// best-effort live push. The row write is the authoritative side effect; the
// push is a mirror of it and may fail without affecting the caller.
type Notifier struct {
	store  RecordStore
	events event.EventSender
}

func NewNotifier(store RecordStore, events event.EventSender) *Notifier {
	return &Notifier{
		store:  store,
		events: events,
	}
}

// Notify persists the notification and then attempts the live push, strictly
// in that order. It returns an error only when the durable write fails.
func (n *Notifier) Notify(
	ctx context.Context,
	recipientID int64,
	notificationType db.NotificationType,
	senderNickname string,
	contentTitle *string,
	targetID *int64,
) (db.Notification, error) {
	arg := db.CreateNotificationParams{
		UserID:         recipientID,
		Type:           notificationType,
		Content:        BuildContent(notificationType, senderNickname),
		ContentTitle:   contentTitle,
		SenderNickname: &senderNickname,
		TargetID:       targetID,
	}

	saved, err := n.store.CreateNotification(ctx, arg)
	if err != nil {
		return db.Notification{}, err
	}

	n.push(saved)

	return saved, nil
}

// NotifyLetterReceived notifies the receiver of a new letter.
func (n *Notifier) NotifyLetterReceived(ctx context.Context, recipientID, letterID int64, senderNickname, letterTitle string) error {
	_, err := n.Notify(ctx, recipientID, db.NotificationTypeLetterReceived, senderNickname, &letterTitle, &letterID)
	return err
}

// NotifyCapsuleReceived notifies the receiver of a new capsule. The capsule
// title stays hidden until the capsule becomes due.
func (n *Notifier) NotifyCapsuleReceived(ctx context.Context, recipientID, capsuleID int64, senderNickname string) error {
	_, err := n.Notify(ctx, recipientID, db.NotificationTypeCapsuleReceived, senderNickname, nil, &capsuleID)
	return err
}

// NotifyCapsuleOpened notifies the receiver that a capsule has become
// openable. Called by the open scheduler after a successful claim.
func (n *Notifier) NotifyCapsuleOpened(ctx context.Context, recipientID, capsuleID int64, senderNickname, capsuleTitle string) error {
	_, err := n.Notify(ctx, recipientID, db.NotificationTypeCapsuleOpened, senderNickname, &capsuleTitle, &capsuleID)
	return err
}

// NotifyFriendRequest notifies a user of an incoming friend request.
func (n *Notifier) NotifyFriendRequest(ctx context.Context, recipientID, requesterID int64, requesterNickname string) error {
	_, err := n.Notify(ctx, recipientID, db.NotificationTypeFriendRequest, requesterNickname, nil, &requesterID)
	return err
}

// NotifyFriendAccept notifies the original requester that the request was
// accepted.
func (n *Notifier) NotifyFriendAccept(ctx context.Context, recipientID, accepterID int64, accepterNickname string) error {
	_, err := n.Notify(ctx, recipientID, db.NotificationTypeFriendAccept, accepterNickname, nil, &accepterID)
	return err
}

// push hands the saved notification to the live-push channel. Failures are
// logged and swallowed: the durable record already exists, and the client
// rehydrates from the REST surface on its next read.
func (n *Notifier) push(saved db.Notification) {
	done := make(chan error, 1)
	go func() {
		done <- n.events.Broadcast(event.Event{
			Topic: event.UserTopic(saved.UserID),
			Type:  event.EventTypeNotification,
			Data:  saved,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Warn().Err(err).
				Int64("notification_id", saved.ID).
				Int64("recipient_id", saved.UserID).
				Msg("live push failed, durable notification kept")
		}
	case <-time.After(pushTimeout):
		log.Warn().
			Int64("notification_id", saved.ID).
			Int64("recipient_id", saved.UserID).
			Msg("live push timed out, durable notification kept")
	}
}
