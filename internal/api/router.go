package api

import (
	"expense_splitter/internal/middleware" // Session auth middleware
	"expense_splitter/internal/session"    // Session manager

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// NewRouter builds the application router. Dependencies are passed in
// explicitly so tests can wire their own database and session store.
func NewRouter(db *gorm.DB, sessions *session.Manager, templatesGlob string) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(templatesGlob)

	// Public pages
	r.GET("/", IndexHandler(sessions))
	r.GET("/login", ShowLoginHandler(sessions))
	r.POST("/login", LoginHandler(db, sessions))
	r.GET("/logout", LogoutHandler(sessions))
	r.GET("/register", ShowRegisterHandler(sessions))
	r.POST("/register", RegisterHandler(db, sessions))

	// Pages behind the session wall
	authed := r.Group("/")
	authed.Use(middleware.SessionAuth(sessions))
	authed.GET("/dashboard", DashboardHandler(db, sessions))
	authed.POST("/dashboard", CreateSplitHandler(db, sessions))
	authed.POST("/delete_transaction/:id", DeleteTransactionHandler(db, sessions))

	return r
}
