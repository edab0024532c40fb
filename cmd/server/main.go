package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/trailforge/backend/api/handler"
	"github.com/trailforge/backend/internal/config"
	"github.com/trailforge/backend/internal/infrastructure/blob"
	pgInfra "github.com/trailforge/backend/internal/infrastructure/postgres"
	"github.com/trailforge/backend/internal/middleware"
	"github.com/trailforge/backend/internal/router"
	"github.com/trailforge/backend/internal/services/lifecycle"
	"github.com/trailforge/backend/pkg/httpcontext"
	"github.com/trailforge/backend/pkg/logger"
	"github.com/trailforge/backend/pkg/token"
	"github.com/trailforge/backend/repository/postgres"
	activityUC "github.com/trailforge/backend/usecase/activity"
	authUC "github.com/trailforge/backend/usecase/auth"
	postUC "github.com/trailforge/backend/usecase/post"
	profileUC "github.com/trailforge/backend/usecase/profile"
	trailUC "github.com/trailforge/backend/usecase/trail"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	trailRepo := postgres.NewTrailRepository(pool)
	achievementRepo := postgres.NewAchievementRepository(pool)
	postRepo := postgres.NewPostRepository(pool)

	tokens := token.NewManager(cfg.JWT.Secret, cfg.TokenTTL())
	blobStore := blob.NewMockStore(cfg.Upload.BasePath)

	authUseCase := authUC.New(userRepo, tokens, zapLogger)
	activityUseCase := activityUC.New(activityRepo, zapLogger)
	trailUseCase := trailUC.New(trailRepo, zapLogger)
	profileUseCase := profileUC.New(userRepo, activityRepo, achievementRepo, zapLogger)
	postUseCase := postUC.New(postRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:     apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Activity: apiHandler.NewActivityHandler(activityUseCase, ctxAdapter, zapLogger),
		Trail:    apiHandler.NewTrailHandler(trailUseCase, ctxAdapter, zapLogger),
		Profile:  apiHandler.NewProfileHandler(profileUseCase, ctxAdapter, zapLogger),
		Post:     apiHandler.NewPostHandler(postUseCase, ctxAdapter, zapLogger),
		Upload:   apiHandler.NewUploadHandler(blobStore, ctxAdapter, zapLogger),
	}

	recoverMW := middleware.Recover(zapLogger)
	authMW := middleware.Auth(tokens, zapLogger)

	public := router.Pipeline{recoverMW}
	protected := router.Pipeline{recoverMW, authMW}

	r := router.New(handlers, public, protected)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
