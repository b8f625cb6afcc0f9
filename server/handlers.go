package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-data-generator/generator"
	"hotel-data-generator/models"
	"hotel-data-generator/storage"
)

// previewLimit caps how many bookings are echoed back in the generate
// response; full tables go through the CSV/ZIP endpoints.
const previewLimit = 100

// GenerateResponse is the payload returned by POST /api/generate.
type GenerateResponse struct {
	DatasetID string            `json:"dataset_id"`
	Warnings  []string          `json:"warnings,omitempty"`
	Summary   *models.Summary   `json:"summary"`
	RowCounts map[string]int    `json:"row_counts"`
	Preview   []*models.Booking `json:"preview"`
}

// handleDefaults returns the stock configuration so the form can
// pre-populate itself.
func (s *Server) handleDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, models.DefaultConfig())
}

// handleGenerate runs one generation pass. Window-order problems come
// back as warnings alongside the data; only impossible input is
// rejected.
func (s *Server) handleGenerate(c *gin.Context) {
	var cfg models.GenerationConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg.ApplyDefaults()

	warnings, err := cfg.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "warnings": warnings})
		return
	}
	for _, w := range warnings {
		s.logger.Warn("[generate] %s", w)
	}

	ds := generator.New(cfg, s.logger).Generate()
	id := s.store.Put(ds)

	if s.dirWriter != nil {
		if err := s.dirWriter.WriteTables(ds.Tables()); err != nil {
			s.logger.Error("[generate] CSV dump failed: %v", err)
		}
	}

	summary := s.summarizer.Generate(ds)
	s.summarizer.Print(summary)
	s.logger.Info("[generate] Dataset %s: %d bookings (%d confirmed), revenue %.0f",
		id, summary.TotalBookings, summary.Confirmed, summary.TotalRevenue)

	preview := ds.Bookings
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}

	c.JSON(http.StatusOK, GenerateResponse{
		DatasetID: id,
		Warnings:  warnings,
		Summary:   summary,
		RowCounts: map[string]int{
			models.TableBookings:  len(ds.Bookings),
			models.TableInventory: len(ds.Inventory),
			models.TableRates:     len(ds.Rates),
			models.TableMarket:    len(ds.Market),
		},
		Preview: preview,
	})
}

// handleSummary recomputes the summary for a stored dataset.
func (s *Server) handleSummary(c *gin.Context) {
	ds, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dataset not found"})
		return
	}

	c.JSON(http.StatusOK, s.summarizer.Generate(ds))
}

// handleTableCSV streams one table as a CSV download. The name param is
// the filename stem, e.g. "Bookings" or "Market_Data".
func (s *Server) handleTableCSV(c *gin.Context) {
	ds, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dataset not found"})
		return
	}

	table, ok := ds.TableByName(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown table"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+table.Filename()+`"`)
	if err := storage.WriteTable(c.Writer, table); err != nil {
		s.logger.Error("[download] CSV stream failed: %v", err)
	}
}

// handleZIP streams all four tables as one ZIP archive.
func (s *Server) handleZIP(c *gin.Context) {
	ds, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dataset not found"})
		return
	}

	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", `attachment; filename="`+models.ZIPFilename+`"`)
	if err := s.archiver.Archive(c.Writer, ds.Tables()); err != nil {
		s.logger.Error("[download] ZIP stream failed: %v", err)
	}
}

// handleExportPostgres pushes a dataset's bookings into PostgreSQL.
func (s *Server) handleExportPostgres(c *gin.Context) {
	if s.exporter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Postgres export is not configured"})
		return
	}

	ds, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dataset not found"})
		return
	}

	if err := s.exporter.Write(ds.Bookings); err != nil {
		s.logger.Error("[export] Postgres write failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"exported": len(ds.Bookings),
	})
}
