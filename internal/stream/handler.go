package stream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/otto-handler/mockstream/internal/model"
	"github.com/otto-handler/mockstream/internal/response"
)

// Handler owns the mock log-streaming endpoints. One instance is shared
// by all connections; per-stream state lives on the handler's stack.
type Handler struct {
	ServerName string
	Catalog    []model.LogEvent
	Log        zerolog.Logger

	// active counts streams currently being written, reported by Health.
	active atomic.Int64
}

// NewHandler returns a Handler replaying the given catalog.
func NewHandler(serverName string, catalog []model.LogEvent, log zerolog.Logger) *Handler {
	return &Handler{ServerName: serverName, Catalog: catalog, Log: log}
}

// ActiveStreams returns the number of streams currently in flight.
func (h *Handler) ActiveStreams() int64 {
	return h.active.Load()
}

// Health handles GET /api/v1/log-streaming/health.
func (h *Handler) Health(c echo.Context) error {
	return response.Healthy(c, h.active.Load(), h.ServerName)
}

// MockStream handles GET /api/v1/log-streaming/test/mock-stream/:taskId.
// It emits the first count catalog entries as paced `log` frames, then a
// single `complete` frame, then ends the response. A failed write or a
// cancelled request context abandons the rest of the stream; neither is
// a server error.
func (h *Handler) MockStream(c echo.Context) error {
	req, err := ParseStreamRequest(c.QueryParams(), len(h.Catalog))
	if err != nil {
		return response.BadRequest(c, err.Error(), h.ServerName)
	}

	log := h.Log.With().
		Str("stream_id", uuid.NewString()).
		Str("task_id", c.Param("taskId")).
		Logger()

	h.active.Add(1)
	defer h.active.Add(-1)

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	ctx := c.Request().Context()
	interval := time.Duration(req.IntervalMS) * time.Millisecond

	for i := 0; i < req.Count; i++ {
		if err := writeFrame(res, "log", h.Catalog[i], frameID(i)); err != nil {
			log.Info().Err(err).Int("frames_sent", i).Msg("stream abandoned, write failed")
			return nil
		}
		// No pacing delay after the final log frame.
		if i < req.Count-1 {
			timer := time.NewTimer(interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				log.Info().Int("frames_sent", i+1).Msg("stream abandoned, client disconnected")
				return nil
			case <-timer.C:
			}
		}
	}

	done := model.CompletionPayload{
		Message:   "Mock log stream completed",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		TotalLogs: req.Count,
	}
	id := fmt.Sprintf("%d-complete", time.Now().UnixMilli())
	if err := writeFrame(res, "complete", done, id); err != nil {
		log.Info().Err(err).Msg("stream abandoned before completion frame")
		return nil
	}

	log.Debug().Int("total_logs", req.Count).Msg("stream completed")
	return nil
}

// frameID returns an id unique within one stream: the index breaks ties
// between frames written in the same millisecond.
func frameID(i int) string {
	return fmt.Sprintf("%d-%d", time.Now().UnixMilli(), i)
}

// writeFrame writes one event/data/id frame and flushes it, so the
// frame reaches the client before the next pacing delay.
func writeFrame(res *echo.Response, event string, payload any, id string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\nid: %s\n\n", event, data, id); err != nil {
		return err
	}
	res.Flush()
	return nil
}
