package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/kesavpal/RESUMEWISE/internal/config"
	"github.com/kesavpal/RESUMEWISE/internal/handlers"
	"github.com/kesavpal/RESUMEWISE/internal/middleware"
	"github.com/kesavpal/RESUMEWISE/internal/services"
)

type Deps struct {
	Config        *config.Config
	ResumeService services.ResumeService
	Analyzer      services.AnalyzerService
	// DisableAccessLog silences the request logger, used by tests.
	DisableAccessLog bool
}

// bodyLimitSlack leaves room for multipart framing above the largest file so
// oversize files reach the upload profile check and get a 413 from it.
const bodyLimitSlack = 2 * 1024 * 1024

func NewApp(deps Deps) *fiber.App {
	cfg := deps.Config

	app := fiber.New(fiber.Config{
		AppName:      "RESUMEWISE API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 30*time.Second,
		BodyLimit:    int(cfg.MaxUploadBytes()) + bodyLimitSlack,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if !deps.DisableAccessLog {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	resumeHandler := handlers.NewResumeHandler(deps.ResumeService)
	extractHandler := handlers.NewExtractHandler(deps.ResumeService)
	analyzeHandler := handlers.NewAnalyzeHandler(deps.Analyzer)
	feedbackHandler := handlers.NewFeedbackHandler()

	app.Get("/health", handlers.HandleHealth)

	api := app.Group("/api", middleware.RateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window))

	api.Post("/extract-text", extractHandler.HandleExtract)
	api.Post("/analyze-resume", analyzeHandler.HandleAnalyze)
	api.Post("/feedback/parse", feedbackHandler.HandleParse)

	resumes := api.Group("/resumes")
	resumes.Post("/upload", resumeHandler.HandleUpload)
	resumes.Get("/", resumeHandler.HandleList)
	resumes.Get("/:id", resumeHandler.HandleGet)
	resumes.Delete("/:id", resumeHandler.HandleDelete)

	return app
}
