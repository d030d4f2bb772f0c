package server

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"textintel/internal/domain"
)

type textRequest struct {
	Text string `json:"text"`
}

type searchRequest struct {
	Query string `json:"query"`
	// Pointer distinguishes an omitted top_k (default applies) from an
	// explicit 0 (rejected).
	TopK *int `json:"top_k"`
}

type searchResponse struct {
	Results []string `json:"results"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

type corpusAddRequest struct {
	Texts []string `json:"texts"`
}

type corpusResponse struct {
	Size    int    `json:"size"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	var req textRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := s.analyzer.Analyze(c.Context(), req.Text)
	if err != nil {
		return s.fail(c, "analyze", err)
	}
	return c.JSON(result)
}

func (s *Server) handleSummarize(c *fiber.Ctx) error {
	var req textRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	summary, err := s.summary.Summarize(c.Context(), req.Text)
	if err != nil {
		return s.fail(c, "summarize", err)
	}
	return c.JSON(summaryResponse{Summary: summary})
}

func (s *Server) handleSemanticSearch(c *fiber.Ctx) error {
	var req searchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	topK := s.config.DefaultTopK
	if req.TopK != nil {
		topK = *req.TopK
	}
	if topK < 1 || topK > s.config.MaxTopK {
		return badRequest(c, fmt.Sprintf("top_k must be between 1 and %d", s.config.MaxTopK))
	}

	results, err := s.engine.Search(c.Context(), req.Query, topK)
	if err != nil {
		return s.fail(c, "semantic-search", err)
	}
	return c.JSON(searchResponse{Results: results})
}

func (s *Server) handleCorpusAdd(c *fiber.Ctx) error {
	var req corpusAddRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	size, err := s.engine.Add(c.Context(), req.Texts)
	if err != nil {
		return s.fail(c, "corpus-add", err)
	}
	return c.JSON(corpusResponse{
		Size:    size,
		Message: fmt.Sprintf("Added %d texts to corpus", len(req.Texts)),
	})
}

func (s *Server) handleCorpusSize(c *fiber.Ctx) error {
	size := s.engine.CorpusSize()
	return c.JSON(corpusResponse{
		Size:    size,
		Message: fmt.Sprintf("Corpus contains %d texts", size),
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: msg})
}

// fail maps domain errors to HTTP statuses: caller mistakes are 400,
// embedding collaborator failures 502, everything else 500.
func (s *Server) fail(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrEmbedding):
		s.logger.Warn("embedding collaborator failed",
			zap.String("op", op),
			zap.Error(err),
		)
		return c.Status(fiber.StatusBadGateway).JSON(errorResponse{Error: err.Error()})
	default:
		s.logger.Error("request failed",
			zap.String("op", op),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: err.Error()})
	}
}
