package api

import (
	"context"
	"fmt"

	"github.com/deartime/deartime-BE/internal/event"
	"github.com/deartime/deartime-BE/internal/mailer"
	"github.com/deartime/deartime-BE/internal/storage"
	"github.com/deartime/deartime-BE/internal/token"
	"github.com/deartime/deartime-BE/internal/util"
	"github.com/deartime/deartime-BE/internal/worker"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"google.golang.org/api/idtoken"
	"resty.dev/v3"

	db "github.com/deartime/deartime-BE/internal/db/sqlc"
)

type Server struct {
	router                 *gin.Engine
	dbStore                db.Store
	fileStore              storage.FileStore
	tokenMaker             token.Maker
	config                 *util.Config
	googleIDTokenValidator *idtoken.Validator
	mailService            *mailer.GmailSender
	taskDistributor        worker.TaskDistributor
	restyClient            *resty.Client
	eventSender            event.EventSender
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store db.Store, taskDistributor worker.TaskDistributor, config *util.Config, mailer *mailer.GmailSender, eventSender event.EventSender) (*Server, error) {
	// Create a new JWT token maker
	tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token maker: %w", err)
	}
	log.Info().Msg("Token maker created successfully ✅")

	// Create a new Google ID token validator
	googleIDTokenValidator, err := idtoken.NewValidator(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create google id token validator: %w", err)
	}

	// Create a new Cloudinary instance
	fileStore := storage.NewCloudinaryStore(config.CloudinaryURL)
	log.Info().Msg("Cloudinary store created successfully ✅")

	restyClient := resty.New()
	log.Info().Msg("Resty client created successfully ✅")

	server := &Server{
		dbStore:                store,
		tokenMaker:             tokenMaker,
		config:                 config,
		googleIDTokenValidator: googleIDTokenValidator,
		fileStore:              fileStore,
		mailService:            mailer,
		taskDistributor:        taskDistributor,
		restyClient:            restyClient,
		eventSender:            eventSender,
	}

	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	gin.ForceConsoleColor()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(func(c *gin.Context) {
		c.Header("Cross-Origin-Opener-Policy", "same-origin same-origin-allow-popups")
		c.Header("Cross-Origin-Embedder-Policy", "unsafe-none")
		c.Next()
	})

	v1 := router.Group("/v1")

	v1.POST("/tokens/verify", server.verifyAccessToken)

	v1.POST("/auth/login", server.loginUser)
	v1.POST("/auth/google-login", server.loginUserWithGoogle)

	userGroup := v1.Group("/users")
	{
		userGroup.POST("", server.createUser)
		userGroup.GET(":id", server.getUser)

		userGroup.Use(authMiddleware(server.tokenMaker))
		userGroup.PATCH("me", server.updateUser)
		userGroup.PATCH("me/avatar", server.updateAvatar)
	}

	otpGroup := v1.Group("/otp")
	{
		otpGroup.POST("/email/generate", server.generateEmailOTP)
		otpGroup.POST("/email/verify", server.verifyEmailOTP)
	}

	friendGroup := v1.Group("/friends", authMiddleware(server.tokenMaker))
	{
		friendGroup.GET("", server.listFriends)
		friendGroup.POST("/requests", server.createFriendRequest)
		friendGroup.GET("/requests", server.listPendingFriendRequests)
		friendGroup.PATCH("/requests/:requestID/accept", server.acceptFriendRequest)
	}

	letterGroup := v1.Group("/letters", authMiddleware(server.tokenMaker))
	{
		letterGroup.POST("", server.sendLetter)
		letterGroup.GET("/received", server.listReceivedLetters)
		letterGroup.GET("/sent", server.listSentLetters)
		letterGroup.GET("/bookmarked", server.listBookmarkedLetters)
		letterGroup.GET("/conversation/:friendID", server.listConversationLetters)
		letterGroup.GET(":letterID", server.getLetter)
		letterGroup.PATCH(":letterID/bookmark", server.toggleLetterBookmark)
		letterGroup.DELETE(":letterID", server.deleteLetter)
	}

	capsuleGroup := v1.Group("/capsules", authMiddleware(server.tokenMaker))
	{
		capsuleGroup.POST("", server.createTimeCapsule)
		capsuleGroup.GET("", server.listTimeCapsules)
		capsuleGroup.GET(":capsuleID", server.getTimeCapsule)
		capsuleGroup.PATCH(":capsuleID/open", server.openTimeCapsule)
	}

	notificationGroup := v1.Group("/notifications", authMiddleware(server.tokenMaker))
	{
		notificationGroup.GET("", server.listNotifications)
		notificationGroup.GET("/unread-count", server.countUnreadNotifications)
		notificationGroup.GET("/stream", server.streamNotifications) // SSE endpoint
		notificationGroup.PATCH(":notificationID/read", server.markNotificationRead)
		notificationGroup.DELETE("", server.deleteUserNotifications)
	}

	albumGroup := v1.Group("/albums", authMiddleware(server.tokenMaker))
	{
		albumGroup.POST("", server.createAlbum)
		albumGroup.GET("", server.listAlbums)
		albumGroup.GET("/by-slug/:slug/photos", server.listAlbumPhotos)
		albumGroup.POST("/by-slug/:slug/photos", server.addAlbumPhotos)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}
