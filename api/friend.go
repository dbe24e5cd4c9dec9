package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	db "github.com/deartime/deartime-BE/internal/db/sqlc"
	"github.com/deartime/deartime-BE/internal/worker"
)

type createFriendRequestRequest struct {
	FriendID int64 `json:"friend_id" binding:"required"`
}

// @Summary		Send a friend request
// @Tags			friends
// @Security		accessToken
// @Accept			json
// @Produce		json
// @Router			/v1/friends/requests [post]
func (server *Server) createFriendRequest(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	req := new(createFriendRequestRequest)
	if err = ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if req.FriendID == userID {
		ctx.JSON(http.StatusBadRequest, errorResponse(ErrSelfFriendRequest))
		return
	}

	if _, err = server.dbStore.GetUserByID(ctx, req.FriendID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("user %d not found", req.FriendID)))
			return
		}

		log.Err(err).Msg("failed to get user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	// A request in either direction blocks a new one.
	_, err = server.dbStore.GetFriendship(ctx, db.GetFriendshipParams{
		UserID:   userID,
		FriendID: req.FriendID,
	})
	if err == nil {
		ctx.JSON(http.StatusConflict, errorResponse(ErrFriendRequestExists))
		return
	}
	if !errors.Is(err, db.ErrRecordNotFound) {
		log.Err(err).Msg("failed to check friendship")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	friendRequest, err := server.dbStore.CreateFriendRequest(ctx, db.CreateFriendRequestParams{
		UserID:   userID,
		FriendID: req.FriendID,
	})
	if err != nil {
		errCode, constraintName := db.ErrorDescription(err)
		if errCode == db.UniqueViolationCode && constraintName == db.UniqueFriendshipConstraint {
			ctx.JSON(http.StatusConflict, errorResponse(ErrFriendRequestExists))
			return
		}

		log.Err(err).Msg("failed to create friend request")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	server.dispatchNotification(ctx, &worker.PayloadSendNotification{
		RecipientID:    req.FriendID,
		Type:           db.NotificationTypeFriendRequest,
		SenderNickname: server.callerNickname(ctx, userID),
		TargetID:       &userID,
	})

	ctx.JSON(http.StatusOK, friendRequest)
}

func (server *Server) listPendingFriendRequests(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	requests, err := server.dbStore.ListPendingFriendRequests(ctx, userID)
	if err != nil {
		log.Err(err).Msg("failed to list pending friend requests")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

// acceptFriendRequest accepts a pending request addressed to the caller.
func (server *Server) acceptFriendRequest(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	requestID, err := pathID(ctx, "requestID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	friendRequest, err := server.dbStore.GetFriendRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("friend request %d not found", requestID)))
			return
		}

		log.Err(err).Msg("failed to get friend request")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	if friendRequest.FriendID != userID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("friend request is not addressed to you")))
		return
	}

	if friendRequest.Status != db.FriendStatusPending {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("friend request is not pending")))
		return
	}

	accepted, err := server.dbStore.AcceptFriendRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			// Lost a race with another accept.
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("friend request is not pending")))
			return
		}

		log.Err(err).Msg("failed to accept friend request")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	server.dispatchNotification(ctx, &worker.PayloadSendNotification{
		RecipientID:    friendRequest.UserID,
		Type:           db.NotificationTypeFriendAccept,
		SenderNickname: server.callerNickname(ctx, userID),
		TargetID:       &userID,
	})

	ctx.JSON(http.StatusOK, accepted)
}

func (server *Server) listFriends(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	friends, err := server.dbStore.ListFriends(ctx, userID)
	if err != nil {
		log.Err(err).Msg("failed to list friends")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, friends)
}

// callerNickname loads the caller's nickname for notification templates.
func (server *Server) callerNickname(ctx *gin.Context, userID int64) string {
	user, err := server.dbStore.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to load caller nickname")
		return ""
	}
	return user.Nickname
}

// dispatchNotification enqueues the notification task. The action that
// triggered the notification has already committed, so enqueue failures are
// logged and not surfaced to the client.
func (server *Server) dispatchNotification(ctx context.Context, payload *worker.PayloadSendNotification) {
	opts := []asynq.Option{
		asynq.MaxRetry(10),
		asynq.Queue(worker.QueueDefault),
	}

	if err := server.taskDistributor.DistributeTaskSendNotification(ctx, payload, opts...); err != nil {
		log.Err(err).Int64("recipient_id", payload.RecipientID).Msg("failed to enqueue notification task")
	}
}
