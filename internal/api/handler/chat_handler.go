package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/asglabs/mission-control/internal/api/metrics"
	"github.com/asglabs/mission-control/internal/core/domain"
	"github.com/asglabs/mission-control/internal/core/ports"
)

const (
	// sessionHeader selects the conversation history bucket. Absent, every
	// caller shares the default session.
	sessionHeader  = "X-Session-ID"
	defaultSession = "default"
)

// ChatHandler exposes the streaming relay and the persisted conversation
// window.
type ChatHandler struct {
	service ports.ChatService
	logger  zerolog.Logger
}

func NewChatHandler(service ports.ChatService, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{service: service, logger: logger}
}

// --- Request / Response types ---

type chatMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type chatRequest struct {
	Messages []chatMessageRequest `json:"messages" validate:"required,min=1,dive"`
}

type chatHistoryResponse struct {
	Messages []domain.ConversationMessage `json:"messages"`
}

// Stream handles POST /v1/chat. The response is a server-sent event stream:
// one `data: {"text":"..."}` event per fragment, closed by `data: [DONE]`.
// Failures before the first byte surface as a synchronous JSON error; a
// failure mid-stream terminates the stream without the sentinel.
//
// @Summary      Stream one conversational turn
// @Tags         chat
// @Accept       json
// @Produce      text/event-stream
// @Param        X-Session-ID  header  string       false  "Conversation session id"
// @Param        body          body    chatRequest  true   "Conversation messages, oldest first"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /v1/chat [post]
func (h *ChatHandler) Stream(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	messages := make([]domain.ConversationMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, domain.ConversationMessage{
			Role:    domain.MessageRole(m.Role),
			Content: m.Content,
		})
	}

	res := c.Response()
	started := false
	start := time.Now()

	emit := func(fragment string) error {
		if !started {
			writeStreamHeaders(res)
			started = true
		}
		payload, err := json.Marshal(map[string]string{"text": fragment})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
			return err
		}
		res.Flush()
		metrics.StreamFragmentsTotal.Inc()
		return nil
	}

	result, err := h.service.StreamTurn(c.Request().Context(), sessionID(c), messages, emit)

	kind := "upstream"
	if result.Intercepted {
		kind = "command"
	}
	metrics.StreamsStartedTotal.WithLabelValues(kind).Inc()
	metrics.StreamDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if !started {
			metrics.StreamErrorsTotal.WithLabelValues("before_first_byte").Inc()
			return err
		}
		// Bytes are already on the wire. Ending without the sentinel tells
		// the consumer the stream died; a late status code would be a lie.
		metrics.StreamErrorsTotal.WithLabelValues("mid_stream").Inc()
		h.logger.Error().Err(err).Str("session_id", sessionID(c)).Msg("stream failed mid-flight")
		return nil
	}

	if result.Intercepted {
		metrics.EntriesAppendedTotal.WithLabelValues("command").Inc()
	}

	// An empty upstream reply still ends with a clean sentinel.
	if !started {
		writeStreamHeaders(res)
	}
	fmt.Fprint(res, "data: [DONE]\n\n")
	res.Flush()
	return nil
}

// History handles GET /v1/chat/history.
//
// @Summary      Fetch the persisted conversation window
// @Tags         chat
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Conversation session id"
// @Success      200           {object}  chatHistoryResponse
// @Router       /v1/chat/history [get]
func (h *ChatHandler) History(c echo.Context) error {
	messages, err := h.service.History(c.Request().Context(), sessionID(c))
	if err != nil {
		return err
	}
	if messages == nil {
		messages = []domain.ConversationMessage{}
	}
	return c.JSON(http.StatusOK, chatHistoryResponse{Messages: messages})
}

// ClearHistory handles DELETE /v1/chat/history.
//
// @Summary      Drop the persisted conversation window
// @Tags         chat
// @Param        X-Session-ID  header  string  false  "Conversation session id"
// @Success      204
// @Router       /v1/chat/history [delete]
func (h *ChatHandler) ClearHistory(c echo.Context) error {
	if err := h.service.ClearHistory(c.Request().Context(), sessionID(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func writeStreamHeaders(res *echo.Response) {
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
}

func sessionID(c echo.Context) string {
	if id := c.Request().Header.Get(sessionHeader); id != "" {
		return id
	}
	return defaultSession
}
