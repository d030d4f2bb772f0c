package server

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"textintel/internal/usecase"
)

// Config holds the HTTP server settings.
type Config struct {
	ListenAddr  string
	DefaultTopK int
	MaxTopK     int
}

// Server is the request/response and streaming dispatcher in front of
// the text intelligence use cases. It validates input, delegates, and
// serializes results; all real work happens in the use cases.
type Server struct {
	config   Config
	engine   *usecase.Engine
	analyzer *usecase.Analyzer
	summary  *usecase.Summary
	logger   *zap.Logger
	app      *fiber.App
}

// NewServer creates the dispatcher and registers all routes.
func NewServer(config Config, engine *usecase.Engine, analyzer *usecase.Analyzer, summary *usecase.Summary, logger *zap.Logger) *Server {
	if config.DefaultTopK <= 0 {
		config.DefaultTopK = 3
	}
	if config.MaxTopK <= 0 {
		config.MaxTopK = usecase.DefaultMaxTopK
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	s := &Server{
		config:   config,
		engine:   engine,
		analyzer: analyzer,
		summary:  summary,
		logger:   logger,
		app:      app,
	}

	app.Get("/health", s.handleHealth)
	app.Post("/analyze", s.handleAnalyze)
	app.Post("/summarize", s.handleSummarize)
	app.Post("/semantic-search", s.handleSemanticSearch)
	app.Post("/corpus/add", s.handleCorpusAdd)
	app.Get("/corpus/size", s.handleCorpusSize)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/analyze", websocket.New(s.handleAnalyzeStream))

	return s
}

// Run starts the server on the configured address and blocks.
func (s *Server) Run() error {
	s.logger.Info("starting text intelligence server",
		zap.String("listen", s.config.ListenAddr),
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
