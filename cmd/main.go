package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/dtroode/trackbox-server/internal/api/http/context"
	"github.com/dtroode/trackbox-server/internal/api/http/router"
	httpServer "github.com/dtroode/trackbox-server/internal/api/http/server"
	"github.com/dtroode/trackbox-server/internal/config"
	"github.com/dtroode/trackbox-server/internal/logger"
	"github.com/dtroode/trackbox-server/internal/model"
	"github.com/dtroode/trackbox-server/internal/repository/memory"
	"github.com/dtroode/trackbox-server/internal/server"
	"github.com/dtroode/trackbox-server/internal/service"
	"github.com/dtroode/trackbox-server/internal/storage/fs"
	storage "github.com/dtroode/trackbox-server/internal/storage/minio"
	"github.com/dtroode/trackbox-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	catalogRepo, err := memory.NewCatalogRepository(memory.DefaultTracks())
	if err != nil {
		logger.Fatal("failed to seed catalog", "error", err)
	}
	userRepo := memory.NewUserRepository()
	favoriteRepo := memory.NewFavoriteRepository()

	audioSource, err := newAudioSource(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize audio source", "error", err)
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	tokenService := service.NewTokenService(tokenManager, logger)

	authService := service.NewAuth(userRepo, favoriteRepo, tokenService, logger, cfg.Bcrypt.Cost)
	catalogService := service.NewCatalog(catalogRepo, logger)
	favoritesService := service.NewFavorites(favoriteRepo, catalogRepo, logger)
	audioService := service.NewAudio(catalogService, audioSource, logger)
	ctxMgr := httpctx.NewManager()

	r := router.New(authService, catalogService, favoritesService, audioService, tokenService, ctxMgr, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))
	sl := server.NewSecurityLayer(cfg.HTTP)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newAudioSource(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.AudioSource, error) {
	if cfg.Audio.Backend != config.AudioBackendMinio {
		source, err := fs.NewSource(cfg.Audio.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare audio directory: %w", err)
		}
		logger.Info("serving audio from directory", "dir", source.Dir())
		return source, nil
	}

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	client, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, cfg.Storage.Prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage client: %w", err)
	}
	logger.Info("serving audio from bucket", "endpoint", cfg.Storage.Endpoint, "bucket", cfg.Storage.Bucket)
	return client, nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
