package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/propscope/underwriter/constants"
	"github.com/propscope/underwriter/internal/billing"
	"github.com/propscope/underwriter/internal/classify"
	"github.com/propscope/underwriter/internal/common"
	"github.com/propscope/underwriter/internal/extract"
	"github.com/propscope/underwriter/internal/notify"
	"github.com/propscope/underwriter/internal/pipeline"
	"github.com/propscope/underwriter/internal/report"
	repo "github.com/propscope/underwriter/internal/repository"
	"github.com/propscope/underwriter/internal/storage"
	"github.com/propscope/underwriter/internal/tablex"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir      = flag.String("dir", "", "directory of documents to underwrite (required)")
		email    = flag.String("email", "batch@local", "owner email for the run")
		property = flag.String("property", "", "property name")
		rtype    = flag.String("report-type", "standard", "report type")
		dsn      = flag.String("dsn", "", "sqlite DSN (defaults to in-memory)")
		credits  = flag.Int("credits", 1, "credits to grant the owner before the run")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	entc, err := repo.OpenSQLite(ctx, *dsn, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	jobsRepo := repo.NewJobRepository(entc, logger)
	filesRepo := repo.NewJobFileRepository(entc, logger)
	artifactsRepo := repo.NewArtifactRepository(entc, logger)
	profilesRepo := repo.NewProfileRepository(entc, logger)

	blobs, err := storage.NewFSStore(cfg.Storage.RootDir, logger)
	if err != nil {
		logger.Error("failed to open blob store", "root", cfg.Storage.RootDir, "error", err)
		os.Exit(1)
	}

	profile, err := profilesRepo.GetOrCreateByEmail(ctx, *email, "Local Batch")
	if err != nil {
		logger.Error("failed to get or create profile", "error", err)
		os.Exit(1)
	}
	if *credits > 0 {
		if err := profilesRepo.AddCredits(ctx, profile.ID, *credits); err != nil {
			logger.Error("failed to grant credits", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("using profile", "id", profile.ID, "email", profile.Email)

	job, err := jobsRepo.Create(ctx, profile.ID, *rtype, *property)
	if err != nil {
		logger.Error("failed to create job", "error", err)
		os.Exit(1)
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Error("failed to read document directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	attached := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(entry.Name()))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			logger.Warn("skipping unsupported file", "file", entry.Name())
			continue
		}
		data, err := os.ReadFile(filepath.Join(*dir, entry.Name()))
		if err != nil {
			logger.Error("failed to read file", "file", entry.Name(), "error", err)
			os.Exit(1)
		}
		locator := fmt.Sprintf("jobs/%s/%s", job.ID, entry.Name())
		if _, err := blobs.Put(ctx, locator, data); err != nil {
			logger.Error("failed to store file", "file", entry.Name(), "error", err)
			os.Exit(1)
		}
		if _, err := filesRepo.Create(ctx, repo.CreateFileRequest{
			JobID:            job.ID,
			OriginalFilename: entry.Name(),
			MimeType:         constants.MimeForExt(ext),
			StorageLocator:   locator,
		}); err != nil {
			logger.Error("failed to attach file", "file", entry.Name(), "error", err)
			os.Exit(1)
		}
		attached++
	}
	if attached == 0 {
		printError("Error: no supported documents found in %s\n", *dir)
		os.Exit(1)
	}
	logger.Info("documents attached", "job_id", job.ID, "count", attached)

	caps := extract.DetectCapabilities(cfg.Services)
	var analyzer tablex.Analyzer
	if caps.OCRTables {
		analyzer = tablex.NewHTTPAnalyzer(cfg.Services.TableOCRBaseURL, cfg.Services.TableOCRAPIKey, cfg.Services.HTTPTimeout, logger)
	}

	driver := pipeline.NewDriver(cfg.Driver, pipeline.Deps{
		Jobs:       jobsRepo,
		Files:      filesRepo,
		Artifacts:  artifactsRepo,
		Profiles:   profilesRepo,
		Blobs:      blobs,
		Classifier: classify.NewRuleClassifier(logger),
		Caps:       caps,
		Analyzer:   analyzer,
		Ledger:     billing.NewLedger(profilesRepo, artifactsRepo, jobsRepo, logger),
		Reports:    report.NewStubGenerator(logger),
		Notifier:   notify.NewLogNotifier(logger),
		Logger:     logger,
	})

	sum, err := driver.RunPasses(ctx)
	if err != nil {
		logger.Error("driver run failed", "error", err)
		os.Exit(1)
	}

	final, err := jobsRepo.GetByID(ctx, job.ID)
	if err != nil {
		logger.Error("failed to reload job", "error", err)
		os.Exit(1)
	}
	artifacts, err := artifactsRepo.ListByJob(ctx, job.ID)
	if err != nil {
		logger.Error("failed to list artifacts", "error", err)
		os.Exit(1)
	}

	fmt.Printf("job %s finished in status %q (%d passes, %d transitions)\n",
		final.ID, final.Status, sum.Passes, sum.Transitions)
	if final.ErrorCode != nil {
		msg := ""
		if final.ErrorMessage != nil {
			msg = *final.ErrorMessage
		}
		fmt.Printf("error: %s: %s\n", *final.ErrorCode, msg)
	}
	for _, a := range artifacts {
		fmt.Printf("  %-28s %s\n", a.Type, a.CreatedAt.Format("15:04:05.000"))
	}
}
