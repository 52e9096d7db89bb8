// Package server exposes the summarizer over HTTP. The API mirrors
// what the web frontend expects: single-text summarization, dataset
// batch runs, and dataset uploads.
package server

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mlfeng/sumrank/internal/config"
	"github.com/mlfeng/sumrank/internal/dataset"
)

// Summarizer produces an extractive summary of text.
type Summarizer interface {
	Summarize(text string, n int) string
}

// Server wires the summarization engine into a fiber app.
type Server struct {
	app    *fiber.App
	cfg    *config.Config
	engine Summarizer
}

// New builds the HTTP server around cfg and engine.
func New(cfg *config.Config, engine Summarizer) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "sumrank",
		BodyLimit:             cfg.Server.BodyLimit,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New())

	s := &Server{app: app, cfg: cfg, engine: engine}

	api := app.Group("/api")
	api.Get("/ping", s.handlePing)
	api.Post("/summarize", s.handleSummarize)
	api.Get("/summarize-dataset", s.handleSummarizeDataset)
	api.Post("/upload-dataset", s.handleUploadDataset)
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	if info, err := os.Stat(cfg.Server.StaticDir); err == nil && info.IsDir() {
		app.Static("/", cfg.Server.StaticDir)
	}

	return s
}

// App returns the underlying fiber app, used by tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on the configured address.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

type summarizeRequest struct {
	Text      string `json:"text" form:"text"`
	Sentences int    `json:"sentences" form:"sentences"`
}

func (s *Server) handleSummarize(c *fiber.Ctx) error {
	var req summarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text is required"})
	}
	n := req.Sentences
	if n <= 0 {
		n = s.cfg.Summarizer.Sentences
	}
	return c.JSON(fiber.Map{"summary": s.engine.Summarize(req.Text, n)})
}

func (s *Server) handleSummarizeDataset(c *fiber.Ctx) error {
	n := c.QueryInt("n", s.cfg.Summarizer.Sentences)

	path, err := s.defaultDataset()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no dataset available"})
	}

	results, err := s.runBatch(path, n)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"source":  filepath.Base(path),
		"count":   len(results),
		"results": results,
	})
}

func (s *Server) handleUploadDataset(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	name := filepath.Base(file.Filename)
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".csv", ".xlsx", ".xls", ".txt":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("unsupported file type %s", ext)})
	}

	if err := os.MkdirAll(s.cfg.Server.UploadDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "cannot store upload"})
	}
	dest := filepath.Join(s.cfg.Server.UploadDir, name)
	if err := c.SaveFile(file, dest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "cannot store upload"})
	}

	n := c.QueryInt("n", s.cfg.Summarizer.Sentences)

	// Plain text uploads get one summary; tabular uploads run as a batch.
	if ext == ".txt" {
		data, err := os.ReadFile(dest)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "cannot read upload"})
		}
		return c.JSON(fiber.Map{
			"file":    name,
			"summary": s.engine.Summarize(string(data), n),
		})
	}

	results, err := s.runBatch(dest, n)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"file":    name,
		"count":   len(results),
		"results": results,
	})
}

// defaultDataset resolves the dataset for an unparameterized batch run:
// the configured task file when it exists, otherwise the newest upload.
func (s *Server) defaultDataset() (string, error) {
	task := s.cfg.Dataset.TaskFile
	if task != "" {
		if _, err := os.Stat(task); err == nil {
			return task, nil
		}
	}
	return dataset.NewestDataset(s.cfg.Server.UploadDir)
}

func (s *Server) runBatch(path string, n int) ([]dataset.RowResult, error) {
	rows, err := dataset.ReadRows(path, s.cfg.Dataset.TextColumn)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	runner := dataset.NewRunner(s.engine, nil)
	return runner.SummarizeRows(rows, n), nil
}
