package db

import (
	"context"
	"errors"
	"time"
)

var ErrCapsuleNotYetOpen = errors.New("capsule open time has not arrived yet")

type OpenCapsuleTxParams struct {
	CapsuleID int64
	UserID    int64
}

type OpenCapsuleTxResult struct {
	Capsule      TimeCapsule `json:"capsule"`
	AlreadyOpen  bool        `json:"already_open"`
}

// OpenCapsuleTx marks a capsule as opened by its receiver and marks the related
// capsule notifications as read in the same transaction. The "is this capsule
// due" check is recomputed from open_at against the current time, never from
// is_notified, so a failed scheduler delivery can not block the receiver.
func (store *SQLStore) OpenCapsuleTx(ctx context.Context, arg OpenCapsuleTxParams) (OpenCapsuleTxResult, error) {
	var result OpenCapsuleTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		capsule, err := q.GetTimeCapsuleByID(ctx, arg.CapsuleID)
		if err != nil {
			return err
		}

		if time.Now().Before(capsule.OpenAt) {
			return ErrCapsuleNotYetOpen
		}

		rowsAffected, err := q.MarkCapsuleOpened(ctx, capsule.ID)
		if err != nil {
			return err
		}
		result.AlreadyOpen = rowsAffected == 0

		err = q.MarkCapsuleNotificationsRead(ctx, MarkCapsuleNotificationsReadParams{
			UserID:   arg.UserID,
			TargetID: &capsule.ID,
		})
		if err != nil {
			return err
		}

		result.Capsule, err = q.GetTimeCapsuleByID(ctx, capsule.ID)
		return err
	})

	return result, err
}
