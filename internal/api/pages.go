package api

import (
	"net/http" // HTTP status codes

	"expense_splitter/internal/session" // Session manager

	"github.com/gin-gonic/gin" // Gin web framework
)

// requestFlashes drains flash messages for pages that do not require a
// login; anonymous sessions carry flashes for logged-out flows.
func requestFlashes(c *gin.Context, sessions *session.Manager) []string {
	s, err := sessions.Current(c)
	if err != nil {
		return nil
	}
	return sessions.PopFlashes(c, s)
}

// IndexHandler renders the public landing page
func IndexHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Flashes": requestFlashes(c, sessions),
		})
	}
}
