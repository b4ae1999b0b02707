package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/slateos/slate/backend/internal/api/http"
	"github.com/slateos/slate/backend/internal/api/middleware"
	"github.com/slateos/slate/backend/internal/api/ws"
	"github.com/slateos/slate/backend/internal/domain/display"
	"github.com/slateos/slate/backend/internal/domain/service"
	"github.com/slateos/slate/backend/internal/domain/window"
	"github.com/slateos/slate/backend/internal/infrastructure/config"
	"github.com/slateos/slate/backend/internal/infrastructure/logging"
	"github.com/slateos/slate/backend/internal/infrastructure/monitoring"
	"github.com/slateos/slate/backend/internal/infrastructure/tracing"
	"github.com/slateos/slate/backend/internal/providers/compositor"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	windows  *window.Manager
	displays *display.Manager
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stdout"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	logger.Info("Initializing compositor backend",
		zap.String("port", cfg.Server.Port),
		zap.String("host", cfg.Server.Host),
	)

	// Metrics first, other components record into it
	metrics := monitoring.NewMetrics()

	tracer := tracing.New("compositor", logger.Logger)

	windowManager := window.NewManager().WithMetrics(metrics)

	wsHandler := ws.NewHandler(logger, metrics)
	displayManager := display.NewManager(windowManager).
		WithMetrics(metrics).
		WithNotifier(wsHandler)

	// Seed displays from the profile file when configured
	if cfg.Compositor.ProfilesPath != "" {
		profiles, err := display.LoadProfiles(cfg.Compositor.ProfilesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load display profiles: %w", err)
		}
		for _, p := range profiles {
			if p.SystemDecorLayer == 0 {
				p.SystemDecorLayer = cfg.Compositor.DefaultDecorLayer
			}
			d, err := displayManager.AddFromProfile(p)
			if err != nil {
				return nil, fmt.Errorf("failed to add display %q: %w", p.Name, err)
			}
			logger.Info("Display registered from profile",
				zap.String("display_id", d.ID),
				zap.String("name", p.Name),
			)
		}
	}

	serviceRegistry := service.NewRegistry()
	if err := serviceRegistry.Register(compositor.NewProvider(windowManager, displayManager)); err != nil {
		return nil, fmt.Errorf("failed to register compositor provider: %w", err)
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := http.NewHandlers(windowManager, displayManager, serviceRegistry, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Window management
	router.POST("/windows", handlers.AttachWindow)
	router.GET("/windows", handlers.ListWindows)
	router.GET("/windows/:id", handlers.GetWindow)
	router.GET("/windows/:id/frame", handlers.GetWindowFrame)
	router.PUT("/windows/:id", handlers.ConfigureWindow)
	router.PUT("/windows/:id/measure", handlers.MeasureWindow)
	router.PUT("/windows/:id/layer", handlers.SetWindowLayer)
	router.PUT("/windows/:id/resizing", handlers.SetWindowResizing)
	router.DELETE("/windows/:id", handlers.DetachWindow)

	// Display management
	router.POST("/displays", handlers.CreateDisplay)
	router.GET("/displays", handlers.ListDisplays)
	router.GET("/displays/:id", handlers.GetDisplay)
	router.DELETE("/displays/:id", handlers.RemoveDisplay)
	router.POST("/displays/:id/windows/:window_id", handlers.AttachWindowToDisplay)
	router.DELETE("/displays/:id/windows/:window_id", handlers.DetachWindowFromDisplay)
	router.POST("/displays/:id/layout", handlers.RunLayoutPass)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	// Metrics endpoints
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/metrics/json", handlers.MetricsJSON)

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		windows:  windowManager,
		displays: displayManager,
		registry: serviceRegistry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	s.logger.Sync()
	return nil
}
