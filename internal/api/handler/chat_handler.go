package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/justicebuddy/backend/internal/core/domain"
	"github.com/justicebuddy/backend/internal/core/ports"
)

// ChatHandler handles the public assistant endpoint. Unlike the admin and
// blog routes it maps every failure locally, because its clients expect the
// {"error": ...} envelope.
type ChatHandler struct {
	service ports.ChatService
	logger  zerolog.Logger
}

func NewChatHandler(service ports.ChatService, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{service: service, logger: logger}
}

// Ask handles POST /chat.
//
// @Summary      Ask the legal assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Question and optional answer language"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  chatErrorResponse
// @Failure      500   {object}  chatErrorResponse
// @Failure      502   {object}  chatErrorResponse
// @Router       /chat [post]
func (h *ChatHandler) Ask(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, chatErrorResponse{Error: "Message is required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, chatErrorResponse{Error: "Message is required"})
	}

	reply, err := h.service.Ask(c.Request().Context(), ports.ChatInput{
		Message:  req.Message,
		Language: req.Language,
	})
	if err != nil {
		return h.renderError(c, err)
	}

	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}

func (h *ChatHandler) renderError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyMessage):
		return c.JSON(http.StatusBadRequest, chatErrorResponse{Error: "Message is required"})
	case errors.Is(err, domain.ErrAPIKeyMissing):
		return c.JSON(http.StatusInternalServerError, chatErrorResponse{Error: "Google Gemini API key not configured"})
	case errors.Is(err, domain.ErrUpstreamInvalid):
		return c.JSON(http.StatusBadGateway, chatErrorResponse{Error: "Gemini returned invalid data. Check API key or endpoint URL."})
	case errors.Is(err, domain.ErrUpstream):
		return c.JSON(http.StatusBadGateway, chatErrorResponse{Error: upstreamMessage(err)})
	default:
		h.logger.Error().Err(err).Msg("chat request failed")
		return c.JSON(http.StatusInternalServerError, chatErrorResponse{Error: "Internal server error while contacting Gemini."})
	}
}

// upstreamMessage unwraps the provider-supplied message from a wrapped
// domain.ErrUpstream, falling back to a generic one.
func upstreamMessage(err error) string {
	if rest, ok := strings.CutPrefix(err.Error(), domain.ErrUpstream.Error()+": "); ok && rest != "" {
		return rest
	}
	return "Gemini API returned an error."
}
