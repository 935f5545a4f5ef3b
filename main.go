package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidtube/infrastructure/cache"
	"vidtube/infrastructure/clients/mediahost"
	"vidtube/infrastructure/configuration"
	"vidtube/infrastructure/logger"
	"vidtube/infrastructure/persistence"
	httpHandler "vidtube/interfaces/http"
	"vidtube/server"
	"vidtube/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	mongoClient, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to MongoDB")
		os.Exit(1)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB ping failed")
		os.Exit(1)
	}
	logger.GetLogger().Info("MongoDB connected successfully")

	db := mongoClient.Database(configuration.C.Database.Mongo.Name)
	if err := persistence.EnsureIndexes(ctx, db); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to ensure indexes")
		os.Exit(1)
	}

	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing without stats cache")
		redisClient = nil
	} else {
		logger.GetLogger().Info("Redis client initialized successfully")
	}
	statsCache := cache.NewStatsCache(redisClient, time.Duration(configuration.C.RedisClient.StatsTTL)*time.Second)

	mediaStorage, err := mediahost.NewClient(&mediahost.Config{
		BaseURL:   configuration.C.MediaHost.BaseURL,
		APIKey:    configuration.C.MediaHost.APIKey,
		APISecret: configuration.C.MediaHost.APISecret,
		Folder:    configuration.C.MediaHost.Folder,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Media host not configured")
		os.Exit(1)
	}

	userRepository := persistence.NewUserRepository(db)
	videoRepository := persistence.NewVideoRepository(db)
	commentRepository := persistence.NewCommentRepository(db)
	likeRepository := persistence.NewLikeRepository(db)
	subscriptionRepository := persistence.NewSubscriptionRepository(db)
	playlistRepository := persistence.NewPlaylistRepository(db)
	tweetRepository := persistence.NewTweetRepository(db)
	dashboardRepository := persistence.NewDashboardRepository(db)

	userUsecase := usecase.NewUserUsecase(userRepository, mediaStorage, configuration.C.Auth)
	videoUsecase := usecase.NewVideoUsecase(videoRepository, commentRepository, likeRepository, userRepository, mediaStorage)
	commentUsecase := usecase.NewCommentUsecase(commentRepository, videoRepository, likeRepository)
	likeUsecase := usecase.NewLikeUsecase(likeRepository, videoRepository, commentRepository, tweetRepository)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepository, userRepository)
	playlistUsecase := usecase.NewPlaylistUsecase(playlistRepository, videoRepository)
	tweetUsecase := usecase.NewTweetUsecase(tweetRepository, userRepository, likeRepository)
	dashboardUsecase := usecase.NewDashboardUsecase(dashboardRepository, videoRepository, statsCache)

	router := server.InitiateRouter(server.Handlers{
		Health:       httpHandler.NewHealthHandler(),
		User:         httpHandler.NewUserHandler(userUsecase),
		Video:        httpHandler.NewVideoHandler(videoUsecase),
		Comment:      httpHandler.NewCommentHandler(commentUsecase),
		Like:         httpHandler.NewLikeHandler(likeUsecase),
		Subscription: httpHandler.NewSubscriptionHandler(subscriptionUsecase),
		Playlist:     httpHandler.NewPlaylistHandler(playlistUsecase),
		Tweet:        httpHandler.NewTweetHandler(tweetUsecase),
		Dashboard:    httpHandler.NewDashboardHandler(dashboardUsecase),
	}, configuration.C.App.CorsOrigins, configuration.C.Auth.AccessTokenSecret)

	port := configuration.C.App.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.GetLogger().WithField("error", err).Warn("MongoDB disconnect failed")
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
