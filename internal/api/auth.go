package api

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"expense_splitter/internal/domain"  // Importing domain models
	"expense_splitter/internal/session" // Session manager

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// ShowLoginHandler renders the login form
func ShowLoginHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Flashes": requestFlashes(c, sessions),
		})
	}
}

// LoginHandler authenticates a user by email and password and starts a
// session on success. The failure message is the same for an unknown
// email and a wrong password.
func LoginHandler(db *gorm.DB, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(strings.ToLower(c.PostForm("email")))
		password := c.PostForm("password")

		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			sessions.Flash(c, "Invalid email or password.")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
			sessions.Flash(c, "Invalid email or password.")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		s, err := sessions.Start(c, user.ID) // Establish the logged-in session
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Error("Failed to start session")
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{
				"Flashes": []string{"Something went wrong, please try again."},
			})
			return
		}
		s.Flashes = append(s.Flashes, "Logged in successfully.")
		if err := sessions.Save(c, s); err != nil {
			logrus.WithField("error", err.Error()).Warn("Failed to save login flash")
		}
		c.Redirect(http.StatusSeeOther, "/dashboard")
	}
}

// ShowRegisterHandler renders the registration form
func ShowRegisterHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Flashes": requestFlashes(c, sessions),
		})
	}
}

// RegisterHandler creates a user account and logs the new user in
// immediately. A duplicate email is caught and surfaced as a message
// instead of a server error.
func RegisterHandler(db *gorm.DB, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.PostForm("name"))
		email := strings.TrimSpace(strings.ToLower(c.PostForm("email")))
		password := c.PostForm("password")

		if name == "" || email == "" || password == "" {
			sessions.Flash(c, "All fields are required.")
			c.Redirect(http.StatusSeeOther, "/register")
			return
		}
		// Hash the password; only the hash is stored
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to hash password")
			c.HTML(http.StatusInternalServerError, "register.html", gin.H{
				"Flashes": []string{"Something went wrong, please try again."},
			})
			return
		}
		user := domain.User{Name: name, Email: email, Password: string(hash), IsActive: true}
		if err := db.Create(&user).Error; err != nil {
			// The unique constraint on email is the only expected failure here
			sessions.Flash(c, "Email already registered.")
			c.Redirect(http.StatusSeeOther, "/register")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"email":   user.Email,
		}).Info("User registered")

		s, err := sessions.Start(c, user.ID) // Log the new user in right away
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Error("Failed to start session")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		s.Flashes = append(s.Flashes, "Registered and logged in successfully.")
		if err := sessions.Save(c, s); err != nil {
			logrus.WithField("error", err.Error()).Warn("Failed to save register flash")
		}
		c.Redirect(http.StatusSeeOther, "/dashboard")
	}
}

// LogoutHandler destroys the session and returns to the landing page
func LogoutHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions.Clear(c)
		sessions.Flash(c, "Logged out successfully.")
		c.Redirect(http.StatusSeeOther, "/")
	}
}
