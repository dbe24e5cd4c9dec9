package main

import (
	"context"
	"os"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/deartime/deartime-BE/api"
	"github.com/deartime/deartime-BE/internal/alert"
	capsuletracking "github.com/deartime/deartime-BE/internal/capsule_tracking"
	db "github.com/deartime/deartime-BE/internal/db/sqlc"
	"github.com/deartime/deartime-BE/internal/event"
	"github.com/deartime/deartime-BE/internal/mailer"
	"github.com/deartime/deartime-BE/internal/notification"
	"github.com/deartime/deartime-BE/internal/util"
	"github.com/deartime/deartime-BE/internal/worker"

	"github.com/rs/zerolog/log"

	_ "github.com/deartime/deartime-BE/docs"
)

//	@title			DearTime API
//	@version		1.0.0
//	@description	API documentation for the DearTime letters and time capsules application

//	@host		localhost:8080
//	@BasePath	/v1
//	@schemes	http https

//	@securityDefinitions.apikey	accessToken
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}

	log.Info().Msg("configurations loaded successfully ✅")

	// Create connection pool
	connPool, err := pgxpool.New(context.Background(), config.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to validate db connection string 😣")
	}

	pingErr := connPool.Ping(context.Background())
	if pingErr != nil {
		log.Fatal().Err(pingErr).Msg("failed to connect to db 😣")
	}
	log.Info().Msg("connected to db ✅")

	store := db.NewStore(connPool)

	redisDb := redis.NewClient(&redis.Options{
		Addr:     config.RedisServerAddress,
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	mailService, err := mailer.NewGmailSender(config.GmailSMTPUsername, config.GmailSMTPPassword, config, redisDb)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create mailer service 😣")
	}

	// Live-push bus for SSE clients
	eventSender := event.NewSSEServer()
	go eventSender.Run()

	notifier := notification.NewNotifier(store, eventSender)

	redisOpt := asynq.RedisClientOpt{Addr: config.RedisServerAddress}
	taskDistributor := worker.NewTaskDistributor(redisOpt)
	go runTaskProcessor(redisOpt, notifier)

	var alerter capsuletracking.Alerter
	if config.DiscordBotToken != "" && config.DiscordChannelID != "" {
		discordAlerter, err := alert.NewDiscordAlerter(config)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create discord alerter 😣")
		}
		alerter = discordAlerter
	}

	capsuleTracker, err := capsuletracking.NewCapsuleTracker(store, notifier, alerter)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create capsule tracker 😣")
	}
	if err = capsuleTracker.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start capsule tracker 😣")
	}
	log.Info().Msg("capsule tracker started ✅")

	runHTTPServer(config, store, taskDistributor, mailService, eventSender)
}

func runTaskProcessor(redisOpt asynq.RedisClientOpt, notifier *notification.Notifier) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, notifier)

	log.Info().Msg("task processor started ✅")
	if err := taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor 😣")
	}
}

func runHTTPServer(config util.Config, store db.Store, taskDistributor worker.TaskDistributor, mailer *mailer.GmailSender, eventSender event.EventSender) {
	server, err := api.NewServer(store, taskDistributor, &config, mailer, eventSender)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	err = server.Start(config.HTTPServerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}
