package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-data-generator/config"
	"hotel-data-generator/services"
	"hotel-data-generator/storage"
	"hotel-data-generator/utils"
)

// Server wires the HTTP API over the generation engine and the
// in-memory dataset store.
type Server struct {
	cfg        *config.Config
	logger     *utils.Logger
	store      *storage.DatasetStore
	summarizer *services.SummaryService
	archiver   storage.Archiver

	// exporter is nil when Postgres export is not configured.
	exporter storage.BookingWriter

	// dirWriter is nil unless OUTPUT_DIR is set.
	dirWriter storage.TableWriter
}

// New assembles a Server. exporter and dirWriter may be nil.
func New(cfg *config.Config, logger *utils.Logger, store *storage.DatasetStore, exporter storage.BookingWriter, dirWriter storage.TableWriter) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		summarizer: services.NewSummaryService(logger),
		archiver:   storage.ZIPArchiver{},
		exporter:   exporter,
		dirWriter:  dirWriter,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Wide-open CORS; this is a local demo tool.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")
	{
		api.GET("/config/defaults", s.handleDefaults)
		api.POST("/generate", s.handleGenerate)
		api.GET("/datasets/:id/summary", s.handleSummary)
		api.GET("/datasets/:id/zip", s.handleZIP)
		api.GET("/datasets/:id/tables/:name", s.handleTableCSV)
		api.POST("/datasets/:id/export/postgres", s.handleExportPostgres)
	}

	// Configuration form
	router.StaticFile("/", "./web/index.html")
	router.StaticFile("/index.html", "./web/index.html")

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
