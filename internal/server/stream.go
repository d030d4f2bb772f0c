package server

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"

	"textintel/internal/domain"
)

type streamMessage struct {
	Type      string           `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	Sentiment domain.Sentiment `json:"sentiment,omitempty"`
	Keywords  []string         `json:"keywords,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// handleAnalyzeStream drives the real-time analysis loop: one text frame
// in, one analysis or error message out. Each frame is an independent
// unit of work; no state is shared across iterations beyond the corpus.
func (s *Server) handleAnalyzeStream(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		text := string(data)
		if strings.TrimSpace(text) == "" {
			continue
		}

		result, err := s.analyzer.Analyze(context.Background(), text)
		var msg streamMessage
		if err != nil {
			msg = streamMessage{
				Type:      "error",
				Timestamp: time.Now(),
				Error:     err.Error(),
			}
		} else {
			msg = streamMessage{
				Type:      "analysis",
				Timestamp: time.Now(),
				Sentiment: result.Sentiment,
				Keywords:  result.Keywords,
			}
		}

		if err := conn.WriteJSON(msg); err != nil {
			s.logger.Debug("stream write failed, closing", zap.Error(err))
			return
		}
	}
}
