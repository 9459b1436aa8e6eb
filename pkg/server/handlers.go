package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/reportdemo/pkg/report"
)

func (s *Server) handleReport(format report.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := s.renderBytes(r.Context(), format)
		if err != nil {
			s.logger.Error("render failed", "format", format, "error", err)
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(body)
	}
}

// handleStream upgrades to a WebSocket and sends each report element as
// one JSON text frame in render order, then closes normally.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	rec := &report.Recorder{}
	if err := s.render(r.Context(), "ws", rec); err != nil {
		s.logger.Error("render failed", "format", "ws", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for _, el := range rec.Elements {
		if err := conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout)); err != nil {
			s.logger.Debug("websocket deadline failed", "error", err)
			return
		}
		if err := conn.WriteJSON(el); err != nil {
			s.logger.Debug("websocket write failed", "error", err)
			return
		}
	}

	err = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
	if err != nil {
		s.logger.Debug("websocket close failed", "error", err)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}
