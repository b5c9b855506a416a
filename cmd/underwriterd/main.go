package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/propscope/underwriter/gen/proto/underwriter/v1"
	"github.com/propscope/underwriter/internal/billing"
	"github.com/propscope/underwriter/internal/classify"
	"github.com/propscope/underwriter/internal/common"
	"github.com/propscope/underwriter/internal/extract"
	"github.com/propscope/underwriter/internal/notify"
	"github.com/propscope/underwriter/internal/pipeline"
	"github.com/propscope/underwriter/internal/report"
	repo "github.com/propscope/underwriter/internal/repository"
	svc "github.com/propscope/underwriter/internal/server"
	"github.com/propscope/underwriter/internal/storage"
	"github.com/propscope/underwriter/internal/tablex"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewJobRepository(entc, logger)
	filesRepo := repo.NewJobFileRepository(entc, logger)
	artifactsRepo := repo.NewArtifactRepository(entc, logger)
	profilesRepo := repo.NewProfileRepository(entc, logger)

	blobs, err := storage.NewFSStore(cfg.Storage.RootDir, logger)
	if err != nil {
		logger.Error("failed to open blob store", "root", cfg.Storage.RootDir, "error", err)
		os.Exit(1)
	}

	caps := extract.DetectCapabilities(cfg.Services)
	var analyzer tablex.Analyzer
	if caps.OCRTables {
		analyzer = tablex.NewHTTPAnalyzer(cfg.Services.TableOCRBaseURL, cfg.Services.TableOCRAPIKey, cfg.Services.HTTPTimeout, logger)
	} else {
		logger.Warn("table extraction collaborator not configured, scanned documents will not be parsed")
	}

	var reports report.Generator
	if cfg.Services.ReportBaseURL != "" {
		reports = report.NewHTTPGenerator(cfg.Services.ReportBaseURL, cfg.Services.ReportAPIKey, cfg.Services.HTTPTimeout, logger)
	} else {
		logger.Warn("report collaborator not configured, using stub generator")
		reports = report.NewStubGenerator(logger)
	}

	var notifier notify.Notifier
	if cfg.Services.NotifyBaseURL != "" {
		notifier = notify.NewHTTPNotifier(cfg.Services.NotifyBaseURL, cfg.Services.NotifyAPIKey, cfg.Services.NotifyFrom, cfg.Services.HTTPTimeout, logger)
	} else {
		logger.Warn("notification collaborator not configured, logging notifications only")
		notifier = notify.NewLogNotifier(logger)
	}

	ledger := billing.NewLedger(profilesRepo, artifactsRepo, jobsRepo, logger)

	driver := pipeline.NewDriver(cfg.Driver, pipeline.Deps{
		Jobs:       jobsRepo,
		Files:      filesRepo,
		Artifacts:  artifactsRepo,
		Profiles:   profilesRepo,
		Blobs:      blobs,
		Classifier: classify.NewRuleClassifier(logger),
		Caps:       caps,
		Analyzer:   analyzer,
		Ledger:     ledger,
		Reports:    reports,
		Notifier:   notifier,
		Logger:     logger,
	})

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.RequestIDInterceptor(logger)))

	jobsService := svc.NewJobsService(jobsRepo, filesRepo, artifactsRepo, profilesRepo, blobs, driver, logger)
	v1.RegisterJobsServiceServer(grpcServer, jobsService)
	profilesService := svc.NewProfilesService(profilesRepo, logger)
	v1.RegisterProfilesServiceServer(grpcServer, profilesService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	// driver loop: one bounded run per tick, overlapping runs are safe
	go func() {
		ticker := time.NewTicker(cfg.Driver.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := driver.RunPasses(ctx); err != nil && ctx.Err() == nil {
					logger.Error("driver run errored", "error", err)
				}
			}
		}
	}()

	logger.Info("underwriterd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}
