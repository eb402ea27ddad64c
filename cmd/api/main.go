package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/log"

	"github.com/kesavpal/RESUMEWISE/internal/bootstrap"
	"github.com/kesavpal/RESUMEWISE/internal/config"
	"github.com/kesavpal/RESUMEWISE/internal/server"
	"github.com/kesavpal/RESUMEWISE/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Info("✅ Config loaded successfully")

	// Initialize record store
	repo, err := bootstrap.OpenRepository(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize resume store: %v", err)
	}

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	analyzer, err := bootstrap.NewAnalyzer(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional résumé index
	var worker services.Worker
	indexer, err := bootstrap.OpenIndexer(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize resume index: %v", err)
	}
	if indexer != nil {
		worker = services.NewWorker(indexer, cfg.Worker.Concurrency)
		worker.Start(ctx)
	} else {
		log.Info("Resume index disabled (QDRANT_URL not set)")
	}

	resumeService := services.NewResumeService(services.ResumeServiceDeps{
		Repo:              repo,
		Storage:           storageService,
		Extractor:         services.NewTextExtractor(),
		Analyzer:          analyzer,
		Worker:            worker,
		AnalysisUpload:    cfg.Storage.AnalysisUpload,
		ExtractOnly:       cfg.Storage.ExtractOnly,
		DeleteRemovesFile: cfg.Records.DeleteRemovesFile,
	})
	log.Info("✅ Services initialized successfully")

	app := server.NewApp(server.Deps{
		Config:        cfg,
		ResumeService: resumeService,
		Analyzer:      analyzer,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("🛑 Shutting down server...")
		if worker != nil {
			worker.Stop()
		}
		cancel()
		if err := app.Shutdown(); err != nil {
			log.Errorf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("🚀 Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
