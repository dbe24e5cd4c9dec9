package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	db "github.com/deartime/deartime-BE/internal/db/sqlc"
	"github.com/deartime/deartime-BE/internal/mailer"
	"github.com/deartime/deartime-BE/internal/validator"
)

type generateEmailOTPRequest struct {
	Email string `json:"email" binding:"required"`
}

type generateEmailOTPResponse struct {
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (server *Server) generateEmailOTP(ctx *gin.Context) {
	req := new(generateEmailOTPRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := validator.ValidateEmail(req.Email); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, failedValidationError([]*FieldViolation{fieldViolation("email", err)}))
		return
	}

	_, createdAt, expiresAt, err := server.mailService.SendOTP(mailer.EmailHeader{
		Subject: "DearTime email verification code",
		To:      []string{req.Email},
	})
	if err != nil {
		log.Err(err).Msg("failed to send email OTP")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, generateEmailOTPResponse{
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	})
}

type verifyEmailOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

func (server *Server) verifyEmailOTP(ctx *gin.Context) {
	req := new(verifyEmailOTPRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	ok, err := server.mailService.VerifyOTP(ctx, req.Email, req.OTP)
	if err != nil || !ok {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errors.New("invalid or expired OTP")))
		return
	}

	// Mark the account verified when one already exists for this address.
	// During signup the OTP flow runs before the account row is created.
	user, err := server.dbStore.GetUserByEmail(context.Background(), req.Email)
	if err == nil {
		if err = server.dbStore.SetUserEmailVerified(context.Background(), user.ID); err != nil {
			log.Err(err).Msg("failed to mark email verified")
			ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
			return
		}
	} else if !errors.Is(err, db.ErrRecordNotFound) {
		log.Err(err).Msg("failed to find user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"verified": true})
}
