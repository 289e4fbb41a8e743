package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/agrosense/croprec-server/internal/api/http/context"
	"github.com/agrosense/croprec-server/internal/api/http/router"
	httpServer "github.com/agrosense/croprec-server/internal/api/http/server"
	"github.com/agrosense/croprec-server/internal/classifier"
	"github.com/agrosense/croprec-server/internal/config"
	"github.com/agrosense/croprec-server/internal/logger"
	"github.com/agrosense/croprec-server/internal/model"
	"github.com/agrosense/croprec-server/internal/repository/postgres"
	"github.com/agrosense/croprec-server/internal/server"
	"github.com/agrosense/croprec-server/internal/service"
	storage "github.com/agrosense/croprec-server/internal/storage/minio"
	"github.com/agrosense/croprec-server/internal/token"
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

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	predictionRepo := postgres.NewPredictionRepository(db)

	cropModel, err := loadModel(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to load classifier model", "error", err)
	}

	sessionManager := token.NewJWT(cfg.Session.Secret, cfg.Session.TTL)
	ctxMgr := httpctx.NewManager()

	authService := service.NewAuth(userRepo, logger)
	predictionService := service.NewPrediction(predictionRepo, cropModel, logger)
	reviewService := service.NewReview(predictionRepo, cfg.Admin.Email, logger)

	r := router.New(authService, predictionService, reviewService, sessionManager, ctxMgr, cfg.Session.CookieName, cfg.Session.TTL, logger)
	e, err := r.Register()
	if err != nil {
		logger.Fatal("failed to register routes", "error", err)
	}

	srv := httpServer.NewHTTPServer(e, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func loadModel(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.Classifier, error) {
	minioClient, err := minio.New(cfg.Model.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Model.AccessKey, cfg.Model.SecretKey, ""),
		Secure: cfg.Model.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Model.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage client: %w", err)
	}

	artifact, err := storageClient.Download(ctx, cfg.Model.ObjectName)
	if err != nil {
		return nil, fmt.Errorf("failed to download model artifact: %w", err)
	}
	defer artifact.Close()

	cropModel, err := classifier.Load(artifact)
	if err != nil {
		return nil, err
	}

	logger.Info("classifier model loaded",
		"bucket", cfg.Model.Bucket,
		"object", cfg.Model.ObjectName)

	return cropModel, nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
