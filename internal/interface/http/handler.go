package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pragatiwave/sehat-bandhu/internal/domain/chat"
	"github.com/pragatiwave/sehat-bandhu/internal/domain/faq"
	apperrors "github.com/pragatiwave/sehat-bandhu/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	chatSvc chat.Service
	faqSvc  faq.Service
	logger  *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(chatSvc chat.Service, faqSvc faq.Service, logger *slog.Logger) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		faqSvc:  faqSvc,
		logger:  logger.With("component", "http.handler"),
	}
}

// chatResponse is the wire shape of a resolved chat turn. Audio is emitted as
// base64 by encoding/json and omitted entirely when synthesis produced none.
type chatResponse struct {
	Response string `json:"response"`
	Audio    []byte `json:"audio,omitempty"`
}

// Chat runs the full query-resolution pipeline for one message.
func (h *Handler) Chat(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.chatSvc.Respond(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "chat_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		Response: resp.Text,
		Audio:    resp.Audio,
	})
}

// Trending returns the most frequently asked questions.
func (h *Handler) Trending(c *gin.Context) {
	items, err := h.faqSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "faq_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"trending": items})
}

// Health reports process liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
