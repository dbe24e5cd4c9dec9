package worker

import (
	"context"
	"encoding/json"
	"fmt"

	db "github.com/deartime/deartime-BE/internal/db/sqlc"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// PayloadSendNotification contain all data of the task that we want to store in Redis.
type PayloadSendNotification struct {
	RecipientID    int64               `json:"recipient_id"`
	Type           db.NotificationType `json:"type"`
	SenderNickname string              `json:"sender_nickname"`
	ContentTitle   *string             `json:"content_title"`
	TargetID       *int64              `json:"target_id"`
}

func (distributor *RedisTaskDistributor) DistributeTaskSendNotification(
	ctx context.Context,
	payload *PayloadSendNotification,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskSendNotification, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskSendNotification(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadSendNotification
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	_, err := processor.notifier.Notify(
		ctx,
		payload.RecipientID,
		payload.Type,
		payload.SenderNickname,
		payload.ContentTitle,
		payload.TargetID,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to send notification")
		return err
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Int64("recipient_id", payload.RecipientID).Msg("task processed")

	return nil
}
