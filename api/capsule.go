package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"

	db "github.com/deartime/deartime-BE/internal/db/sqlc"
	"github.com/deartime/deartime-BE/internal/util"
	"github.com/deartime/deartime-BE/internal/worker"
)

type createTimeCapsuleRequest struct {
	ReceiverID int64                 `form:"receiver_id" binding:"required"`
	Title      string                `form:"title" binding:"required"`
	Content    string                `form:"content" binding:"required"`
	Theme      *string               `form:"theme"`
	OpenAt     time.Time             `form:"open_at" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	Image      *multipart.FileHeader `form:"image"`
}

// @Summary		Create a time capsule
// @Description	Creates a capsule whose content stays sealed until open_at
// @Tags			capsules
// @Security		accessToken
// @Accept			multipart/form-data
// @Produce		json
// @Router			/v1/capsules [post]
func (server *Server) createTimeCapsule(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	req := new(createTimeCapsuleRequest)
	if err = ctx.ShouldBindWith(req, binding.FormMultipart); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if !req.OpenAt.After(time.Now()) {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("open_at must be in the future")))
		return
	}

	// A capsule to oneself needs no friendship.
	if req.ReceiverID != userID {
		if err = server.requireFriendship(ctx, userID, req.ReceiverID); err != nil {
			ctx.JSON(http.StatusForbidden, errorResponse(err))
			return
		}
	}

	code := util.GenerateCapsuleCode()

	var imageURL *string
	if req.Image != nil {
		uploadedFileURLs, err := server.uploadFileToCloudinary("capsule", code, FolderCapsules, req.Image)
		if err != nil {
			log.Err(err).Msg("failed to upload capsule image")
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		imageURL = &uploadedFileURLs[0]
	}

	capsule, err := server.dbStore.CreateTimeCapsule(ctx, db.CreateTimeCapsuleParams{
		Code:       code,
		SenderID:   userID,
		ReceiverID: req.ReceiverID,
		Title:      req.Title,
		Content:    req.Content,
		Theme:      req.Theme,
		ImageURL:   imageURL,
		OpenAt:     req.OpenAt,
	})
	if err != nil {
		log.Err(err).Msg("failed to create time capsule")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	if capsule.ReceiverID != userID {
		server.dispatchNotification(ctx, &worker.PayloadSendNotification{
			RecipientID:    capsule.ReceiverID,
			Type:           db.NotificationTypeCapsuleReceived,
			SenderNickname: server.callerNickname(ctx, userID),
			TargetID:       &capsule.ID,
		})
	}

	ctx.JSON(http.StatusOK, sealCapsule(capsule, userID))
}

// listTimeCapsules lists the caller's capsules filtered by the "type" query
// parameter: ALL, SENT, RECEIVED or OPENED.
func (server *Server) listTimeCapsules(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	limit, offset := pageParams(ctx)

	var capsules []db.TimeCapsule
	switch filter := ctx.DefaultQuery("type", "ALL"); filter {
	case "ALL":
		capsules, err = server.dbStore.ListTimeCapsules(ctx, db.ListTimeCapsulesParams{
			UserID: userID,
			Limit:  limit,
			Offset: offset,
		})
	case "SENT":
		capsules, err = server.dbStore.ListSentTimeCapsules(ctx, db.ListSentTimeCapsulesParams{
			SenderID: userID,
			Limit:    limit,
			Offset:   offset,
		})
	case "RECEIVED":
		capsules, err = server.dbStore.ListReceivedTimeCapsules(ctx, db.ListReceivedTimeCapsulesParams{
			ReceiverID: userID,
			Limit:      limit,
			Offset:     offset,
		})
	case "OPENED":
		capsules, err = server.dbStore.ListOpenedTimeCapsules(ctx, db.ListOpenedTimeCapsulesParams{
			UserID: userID,
			Limit:  limit,
			Offset: offset,
		})
	default:
		ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("unknown capsule filter %q", filter)))
		return
	}
	if err != nil {
		log.Err(err).Msg("failed to list time capsules")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	sealed := make([]db.TimeCapsule, 0, len(capsules))
	for _, capsule := range capsules {
		sealed = append(sealed, sealCapsule(capsule, userID))
	}

	ctx.JSON(http.StatusOK, sealed)
}

func (server *Server) getTimeCapsule(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	capsuleID, err := pathID(ctx, "capsuleID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	capsule, err := server.dbStore.GetTimeCapsuleByID(ctx, capsuleID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("capsule %d not found", capsuleID)))
			return
		}

		log.Err(err).Msg("failed to get time capsule")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	if capsule.SenderID != userID && capsule.ReceiverID != userID {
		ctx.JSON(http.StatusForbidden, errorResponse(ErrNotCapsuleReceiver))
		return
	}

	ctx.JSON(http.StatusOK, sealCapsule(capsule, userID))
}

// openTimeCapsule marks a due capsule as opened by its receiver. The open
// check runs against open_at directly, so a capsule the scheduler has not
// processed yet (or whose notification was lost) can still be opened the
// moment it is due.
func (server *Server) openTimeCapsule(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	capsuleID, err := pathID(ctx, "capsuleID")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	capsule, err := server.dbStore.GetTimeCapsuleByID(ctx, capsuleID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("capsule %d not found", capsuleID)))
			return
		}

		log.Err(err).Msg("failed to get time capsule")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	if capsule.ReceiverID != userID {
		ctx.JSON(http.StatusForbidden, errorResponse(ErrNotCapsuleReceiver))
		return
	}

	result, err := server.dbStore.OpenCapsuleTx(ctx, db.OpenCapsuleTxParams{
		CapsuleID: capsuleID,
		UserID:    userID,
	})
	if err != nil {
		if errors.Is(err, db.ErrCapsuleNotYetOpen) {
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to open time capsule")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// sealCapsule blanks the content of a capsule the viewer may not read yet. The
// sender can always reread what they wrote; the receiver sees the content only
// once open_at has passed.
func sealCapsule(capsule db.TimeCapsule, viewerID int64) db.TimeCapsule {
	if capsule.SenderID == viewerID {
		return capsule
	}
	if time.Now().Before(capsule.OpenAt) {
		capsule.Content = ""
		capsule.ImageURL = nil
	}
	return capsule
}
