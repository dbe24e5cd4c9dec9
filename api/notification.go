package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	db "github.com/deartime/deartime-BE/internal/db/sqlc"
)

func (server *Server) listNotifications(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	limit, offset := pageParams(ctx)
	notifications, err := server.dbStore.ListNotifications(ctx, db.ListNotificationsParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		log.Err(err).Msg("failed to list notifications")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

func (server *Server) countUnreadNotifications(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	count, err := server.dbStore.CountUnreadNotifications(ctx, userID)
	if err != nil {
		log.Err(err).Msg("failed to count unread notifications")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (server *Server) markNotificationRead(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	notificationID, err := pathID(ctx, "notificationID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	notification, err := server.dbStore.GetNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("notification %d not found", notificationID)))
			return
		}

		log.Err(err).Msg("failed to get notification")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	if notification.UserID != userID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("notification does not belong to you")))
		return
	}

	notification, err = server.dbStore.MarkNotificationRead(ctx, notificationID)
	if err != nil {
		log.Err(err).Msg("failed to mark notification read")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, notification)
}

func (server *Server) deleteUserNotifications(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	if err = server.dbStore.DeleteUserNotifications(ctx, userID); err != nil {
		log.Err(err).Msg("failed to delete notifications")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "notifications deleted"})
}
