package middleware

import (
	"net/http" // HTTP status codes

	"expense_splitter/internal/session" // Session manager

	"github.com/gin-gonic/gin" // Gin web framework
)

// SessionAuth resolves the request's session and requires a logged-in
// user. Unauthenticated requests are redirected to the login page.
func SessionAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := sessions.Current(c)
		if err != nil || !s.Authenticated() {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Set("userID", s.UserID)  // Store userID in context
		c.Set("session", s)        // Store session record for flash handling
		c.Next()                   // Proceed to the next handler
	}
}
