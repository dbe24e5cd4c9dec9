package api

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/idtoken"

	db "github.com/deartime/deartime-BE/internal/db/sqlc"
	"github.com/deartime/deartime-BE/internal/util"
	"github.com/deartime/deartime-BE/internal/validator"
)

type createUserRequest struct {
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	Nickname  string     `json:"nickname"`
	BirthDate *time.Time `json:"birth_date"`
}

type createUserResponse struct {
	User db.User `json:"user"`
}

func validateCreateUserRequest(req *createUserRequest) (violations []*FieldViolation) {
	if err := validator.ValidateEmail(req.Email); err != nil {
		violations = append(violations, fieldViolation("email", err))
	}

	if err := validator.ValidatePassword(req.Password); err != nil {
		violations = append(violations, fieldViolation("password", err))
	}

	if err := validator.ValidateNickname(req.Nickname); err != nil {
		violations = append(violations, fieldViolation("nickname", err))
	}

	return violations
}

func (server *Server) createUser(ctx *gin.Context) {
	req := new(createUserRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	violations := validateCreateUserRequest(req)
	if violations != nil {
		ctx.JSON(http.StatusUnprocessableEntity, failedValidationError(violations))
		return
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(fmt.Errorf("failed to hash password: %w", err)))
		return
	}

	arg := db.CreateUserParams{
		Email:          req.Email,
		HashedPassword: &hashedPassword,
		Nickname:       req.Nickname,
		BirthDate:      req.BirthDate,
		EmailVerified:  false,
	}

	user, err := server.dbStore.CreateUser(context.Background(), arg)
	if err != nil {
		errCode, constraintName := db.ErrorDescription(err)
		switch {
		case errCode == db.UniqueViolationCode && constraintName == db.UniqueEmailConstraint:
			err = fmt.Errorf("email %s already exists", req.Email)
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		case errCode == db.UniqueViolationCode && constraintName == db.UniqueNicknameConstraint:
			err = fmt.Errorf("nickname %s already exists", req.Nickname)
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to create user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, createUserResponse{User: user})
}

type loginUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginUserResponse struct {
	User                 db.User   `json:"user"`
	AccessToken          string    `json:"access_token"`
	AccessTokenExpiresAt time.Time `json:"access_token_expires_at"`
}

func (server *Server) loginUser(ctx *gin.Context) {
	req := new(loginUserRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	user, err := server.dbStore.GetUserByEmail(context.Background(), req.Email)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = errors.New("email not found")
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to find user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	if user.HashedPassword == nil {
		err = errors.New("account uses social login")
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	err = util.CheckPassword(req.Password, *user.HashedPassword)
	if err != nil {
		err = errors.New("incorrect password")
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	accessToken, accessPayload, err := server.tokenMaker.CreateToken(user.ID, server.config.AccessTokenDuration)
	if err != nil {
		log.Err(err).Msg("failed to create access token")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	resp := loginUserResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessPayload.ExpiresAt.Time,
		User:                 user,
	}
	ctx.JSON(http.StatusOK, resp)
}

type loginUserWithGoogleRequest struct {
	IDToken     string `json:"id_token"`
	AccessToken string `json:"access_token"`
}

// googleUserInfo mirrors the subset of the OpenID userinfo response we need.
type googleUserInfo struct {
	Sub           string `json:"sub"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Picture       string `json:"picture"`
}

func (server *Server) loginUserWithGoogle(ctx *gin.Context) {
	req := new(loginUserWithGoogleRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Err(err).Msg("failed to bind json")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var info googleUserInfo
	switch {
	case req.IDToken != "":
		payload, err := server.googleIDTokenValidator.Validate(ctx, req.IDToken, server.config.GoogleClientID)
		if err != nil {
			log.Err(err).Msg("failed to validate google id token")
			ctx.JSON(http.StatusUnauthorized, errorResponse(err))
			return
		}
		info = userInfoFromIDToken(payload)
	case req.AccessToken != "":
		// Mobile clients send an OAuth access token instead of an ID token.
		userInfo, err := server.fetchGoogleUserInfo(ctx, req.AccessToken)
		if err != nil {
			log.Err(err).Msg("failed to fetch google userinfo")
			ctx.JSON(http.StatusUnauthorized, errorResponse(err))
			return
		}
		info = userInfo
	default:
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("either id_token or access_token is required")))
		return
	}

	user, err := server.getOrCreateGoogleUser(ctx, info)
	if err != nil {
		log.Err(err).Msg("failed to get or create google user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	accessToken, accessPayload, err := server.tokenMaker.CreateToken(user.ID, server.config.AccessTokenDuration)
	if err != nil {
		log.Err(err).Msg("failed to create access token")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	resp := loginUserResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessPayload.ExpiresAt.Time,
		User:                 *user,
	}
	ctx.JSON(http.StatusOK, resp)
}

func userInfoFromIDToken(payload *idtoken.Payload) googleUserInfo {
	info := googleUserInfo{Sub: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		info.Name = name
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		info.EmailVerified = verified
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		info.Picture = picture
	}
	return info
}

func (server *Server) fetchGoogleUserInfo(ctx context.Context, accessToken string) (googleUserInfo, error) {
	var info googleUserInfo

	resp, err := server.restyClient.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&info).
		Get("https://www.googleapis.com/oauth2/v3/userinfo")
	if err != nil {
		return info, fmt.Errorf("failed to call userinfo endpoint: %w", err)
	}
	if resp.IsError() {
		return info, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode())
	}

	return info, nil
}

func (server *Server) getOrCreateGoogleUser(ctx *gin.Context, info googleUserInfo) (*db.User, error) {
	user, err := server.dbStore.GetUserByProviderID(ctx, &info.Sub)
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, db.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to query user by provider: %w", err)
	}

	// An existing email/password account with the same address is linked by
	// email instead of creating a duplicate.
	user, err = server.dbStore.GetUserByEmail(ctx, info.Email)
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, db.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}

	nickname := info.Name
	if validator.ValidateNickname(nickname) != nil {
		nickname = util.GenerateRandomNickname()
	}

	newUser, err := server.dbStore.CreateUser(ctx, db.CreateUserParams{
		ProviderID:      &info.Sub,
		Email:           info.Email,
		Nickname:        nickname,
		ProfileImageURL: &info.Picture,
		EmailVerified:   info.EmailVerified,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &newUser, nil
}

func (server *Server) getUser(ctx *gin.Context) {
	userID, err := pathID(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	user, err := server.dbStore.GetUserByID(context.Background(), userID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = fmt.Errorf("user %d not found", userID)
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to get user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

type updateUserRequest struct {
	Nickname  *string    `json:"nickname"`
	Bio       *string    `json:"bio"`
	BirthDate *time.Time `json:"birth_date"`
}

func (server *Server) updateUser(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	req := new(updateUserRequest)

	if err = ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if req.Nickname != nil {
		if err = validator.ValidateNickname(*req.Nickname); err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, failedValidationError([]*FieldViolation{fieldViolation("nickname", err)}))
			return
		}
	}

	arg := db.UpdateUserParams{
		ID:        userID,
		Nickname:  req.Nickname,
		Bio:       req.Bio,
		BirthDate: req.BirthDate,
	}

	user, err := server.dbStore.UpdateUser(context.Background(), arg)
	if err != nil {
		errCode, constraintName := db.ErrorDescription(err)
		if errCode == db.UniqueViolationCode && constraintName == db.UniqueNicknameConstraint {
			err = fmt.Errorf("nickname %s already exists", *req.Nickname)
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}

		log.Err(err).Msg("failed to update user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, createUserResponse{User: user})
}

type updateAvatarRequest struct {
	Avatar *multipart.FileHeader `form:"avatar" binding:"required"`
}

type updateAvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}

func (server *Server) updateAvatar(ctx *gin.Context) {
	userID, err := authenticatedUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	req := new(updateAvatarRequest)

	if err = ctx.ShouldBindWith(req, binding.FormMultipart); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	uploadedFileURLs, err := server.uploadFileToCloudinary("user", fmt.Sprintf("%d", userID), FolderAvatars, req.Avatar)
	if err != nil {
		log.Err(err).Msg("failed to upload avatar")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	_, err = server.dbStore.UpdateUserAvatar(context.Background(), db.UpdateUserAvatarParams{
		ID:              userID,
		ProfileImageURL: &uploadedFileURLs[0],
	})
	if err != nil {
		log.Err(err).Msg("failed to update avatar")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, updateAvatarResponse{AvatarURL: uploadedFileURLs[0]})
}
