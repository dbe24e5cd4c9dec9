package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"

	db "github.com/deartime/deartime-BE/internal/db/sqlc"
	"github.com/deartime/deartime-BE/internal/worker"
)

type sendLetterRequest struct {
	ReceiverID int64                 `form:"receiver_id" binding:"required"`
	Title      string                `form:"title" binding:"required"`
	Content    string                `form:"content" binding:"required"`
	Image      *multipart.FileHeader `form:"image"`
}

// @Summary		Send a letter to a friend
// @Tags			letters
// @Security		accessToken
// @Accept			multipart/form-data
// @Produce		json
// @Router			/v1/letters [post]
func (server *Server) sendLetter(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	req := new(sendLetterRequest)
	if err = ctx.ShouldBindWith(req, binding.FormMultipart); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err = server.requireFriendship(ctx, userID, req.ReceiverID); err != nil {
		ctx.JSON(http.StatusForbidden, errorResponse(err))
		return
	}

	var imageURL *string
	if req.Image != nil {
		uploadedFileURLs, err := server.uploadFileToCloudinary("letter", strconv.FormatInt(userID, 10), FolderLetters, req.Image)
		if err != nil {
			log.Err(err).Msg("failed to upload letter image")
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		imageURL = &uploadedFileURLs[0]
	}

	letter, err := server.dbStore.CreateLetter(ctx, db.CreateLetterParams{
		SenderID:   userID,
		ReceiverID: req.ReceiverID,
		Title:      req.Title,
		Content:    req.Content,
		ImageURL:   imageURL,
	})
	if err != nil {
		log.Err(err).Msg("failed to create letter")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	server.dispatchNotification(ctx, &worker.PayloadSendNotification{
		RecipientID:    req.ReceiverID,
		Type:           db.NotificationTypeLetterReceived,
		SenderNickname: server.callerNickname(ctx, userID),
		ContentTitle:   &letter.Title,
		TargetID:       &letter.ID,
	})

	ctx.JSON(http.StatusOK, letter)
}

func (server *Server) listReceivedLetters(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	limit, offset := pageParams(ctx)
	letters, err := server.dbStore.ListReceivedLetters(ctx, db.ListReceivedLettersParams{
		ReceiverID: userID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		log.Err(err).Msg("failed to list received letters")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, letters)
}

func (server *Server) listSentLetters(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	limit, offset := pageParams(ctx)
	letters, err := server.dbStore.ListSentLetters(ctx, db.ListSentLettersParams{
		SenderID: userID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		log.Err(err).Msg("failed to list sent letters")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, letters)
}

func (server *Server) listBookmarkedLetters(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	limit, offset := pageParams(ctx)
	letters, err := server.dbStore.ListBookmarkedLetters(ctx, db.ListBookmarkedLettersParams{
		ReceiverID: userID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		log.Err(err).Msg("failed to list bookmarked letters")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, letters)
}

// listConversationLetters returns letters exchanged between the caller and one
// friend, newest first.
func (server *Server) listConversationLetters(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	friendID, err := pathID(ctx, "friendID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	limit, offset := pageParams(ctx)
	letters, err := server.dbStore.ListConversationLetters(ctx, db.ListConversationLettersParams{
		UserID:   userID,
		TargetID: friendID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		log.Err(err).Msg("failed to list conversation letters")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, letters)
}

// getLetter returns one letter. Reading it as the receiver marks it read.
func (server *Server) getLetter(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	letterID, err := pathID(ctx, "letterID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	letter, err := server.dbStore.GetLetterByID(ctx, letterID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("letter %d not found", letterID)))
			return
		}

		log.Err(err).Msg("failed to get letter")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	if letter.SenderID != userID && letter.ReceiverID != userID {
		ctx.JSON(http.StatusForbidden, errorResponse(ErrNotLetterRecipient))
		return
	}

	if letter.ReceiverID == userID && !letter.IsRead {
		if err = server.dbStore.MarkLetterRead(ctx, letter.ID); err != nil {
			log.Err(err).Msg("failed to mark letter read")
		} else {
			letter.IsRead = true
		}
	}

	ctx.JSON(http.StatusOK, letter)
}

func (server *Server) toggleLetterBookmark(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	letterID, err := pathID(ctx, "letterID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	letter, err := server.dbStore.GetLetterByID(ctx, letterID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("letter %d not found", letterID)))
			return
		}

		log.Err(err).Msg("failed to get letter")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	if letter.ReceiverID != userID {
		ctx.JSON(http.StatusForbidden, errorResponse(ErrNotLetterRecipient))
		return
	}

	letter, err = server.dbStore.ToggleLetterBookmark(ctx, letterID)
	if err != nil {
		log.Err(err).Msg("failed to toggle bookmark")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, letter)
}

func (server *Server) deleteLetter(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	letterID, err := pathID(ctx, "letterID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	letter, err := server.dbStore.GetLetterByID(ctx, letterID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("letter %d not found", letterID)))
			return
		}

		log.Err(err).Msg("failed to get letter")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	if letter.ReceiverID != userID {
		ctx.JSON(http.StatusForbidden, errorResponse(ErrNotLetterRecipient))
		return
	}

	if err = server.dbStore.DeleteLetter(ctx, letterID); err != nil {
		log.Err(err).Msg("failed to delete letter")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "letter deleted"})
}

// requireFriendship verifies an accepted friendship between two users.
func (server *Server) requireFriendship(ctx *gin.Context, userID, otherID int64) error {
	friendship, err := server.dbStore.GetFriendship(ctx, db.GetFriendshipParams{
		UserID:   userID,
		FriendID: otherID,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return ErrNotFriends
		}
		log.Err(err).Msg("failed to check friendship")
		return ErrInternalServer
	}

	if friendship.Status != db.FriendStatusAccepted {
		return ErrNotFriends
	}

	return nil
}
