package handlers

import (
	"log/slog"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// addFlash queues a message for the next list screen.
func addFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		slog.WarnContext(c.Request.Context(), "failed to save flash message", "error", err)
	}
}

// popFlashes returns and clears pending messages.
func popFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	flashes := session.Flashes()
	messages := make([]string, 0, len(flashes))
	if len(flashes) == 0 {
		return messages
	}

	for _, f := range flashes {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	if err := session.Save(); err != nil {
		slog.WarnContext(c.Request.Context(), "failed to clear flash messages", "error", err)
	}
	return messages
}
