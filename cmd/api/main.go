package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"forwardai/skill-gap-analyzer/internal/config"
	"forwardai/skill-gap-analyzer/internal/handlers"
	"forwardai/skill-gap-analyzer/internal/repositories"
	"forwardai/skill-gap-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize storage for resume uploads
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	resumeParser := services.NewResumeParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI. Missing key is not fatal: the gateway degrades
	// to fallback roadmaps.
	var geminiService services.GeminiService
	if cfg.Gemini.APIKey != "" {
		geminiService, err = services.NewGeminiService(cfg.Gemini.APIKey)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("🔑 GEMINI_API_KEY not set. Roadmaps will use the fallback plan.")
	}

	// Initialize the learning resource library (optional)
	var resourceLib services.ResourceLibraryService
	if cfg.Qdrant.URL != "" {
		resourceLib, err = services.NewResourceLibraryService(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
		)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
		}

		if err := resourceLib.InitCollection(); err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
		}
		log.Println("✅ Resource library initialized successfully")
	}

	// Initialize the skill extractor: data service when configured, mock
	// data otherwise
	var extractor services.SkillExtractorService
	if cfg.DataService.URL != "" {
		extractor = services.NewHTTPSkillExtractor(cfg.DataService.URL, cfg.DataService.Timeout)
		log.Printf("✅ Skill extractor pointed at %s\n", cfg.DataService.URL)
	} else {
		extractor = services.NewMockSkillExtractor()
		log.Println("📦 DATA_SERVICE_URL not set. Using mock market skills.")
	}

	// Wrap the extractor with a Redis cache when configured
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		extractor = services.NewCachingSkillExtractor(rdb, cfg.Redis.CacheTTL, extractor)
		log.Println("✅ Market-skill cache enabled")
	}

	roadmapService := services.NewRoadmapService(geminiService, resourceLib)
	analyzerService := services.NewAnalyzerService(extractor, roadmapService, analysisRepo)
	log.Println("✅ Analyzer service initialized")

	// Initialize Handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService)
	resumeHandler := handlers.NewResumeHandler(
		analyzerService,
		storageService,
		resumeParser,
		cfg.Storage.MaxFileSize,
	)
	historyHandler := handlers.NewHistoryHandler(analysisRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Forward AI Analysis Gateway",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":            "healthy",
			"service":           "Forward AI Analysis Gateway",
			"version":           "1.0.0",
			"gemini_configured": cfg.Gemini.APIKey != "",
		})
	})

	// Routes
	api := app.Group("/api")
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/analyze-resume", resumeHandler.HandleAnalyzeResume)
	api.Get("/analyses", historyHandler.HandleListAnalyses)
	api.Get("/analyses/:id", historyHandler.HandleGetAnalysis)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Forward AI Analysis Gateway",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/analyze",
				"POST /api/analyze-resume",
				"GET /api/analyses",
				"GET /api/analyses/:id",
				"GET /health",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
