package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"expense_splitter/internal/domain"  // Importing domain models
	"expense_splitter/internal/session" // Session manager
	"expense_splitter/internal/split"   // Share computation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// currentSession returns the session record stored by the auth middleware
func currentSession(c *gin.Context) *session.Session {
	s, _ := c.MustGet("session").(*session.Session)
	return s
}

// DashboardHandler renders the dashboard: the current user's
// transactions (as payer or payee) plus the full user directory used to
// resolve display names and offer payee choices.
func DashboardHandler(db *gorm.DB, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint)

		var users []domain.User
		if err := db.Find(&users).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to fetch users")
			c.String(http.StatusInternalServerError, "Something went wrong, please try again.")
			return
		}
		// Index users by id for name resolution in the template
		usersByID := make(map[uint]domain.User, len(users))
		for _, u := range users {
			usersByID[u.ID] = u
		}

		var transactions []domain.Transaction
		if err := db.Where("payer_id = ? OR payee_id = ?", userID, userID).Find(&transactions).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Failed to fetch transactions")
			c.String(http.StatusInternalServerError, "Something went wrong, please try again.")
			return
		}

		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"CurrentUser":  usersByID[userID],
			"Users":        usersByID,
			"Transactions": transactions,
			"Flashes":      sessions.PopFlashes(c, currentSession(c)),
		})
	}
}

// CreateSplitHandler splits one entered amount evenly across the
// selected payees and records one transaction row per payee. All rows
// are written atomically so a failure never leaves a partial split.
func CreateSplitHandler(db *gorm.DB, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint)

		amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
		if err != nil {
			sessions.Flash(c, "Invalid amount.")
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}
		description := c.PostForm("description")
		if description == "" {
			description = "Enjoy!"
		}

		payeeParams := c.PostFormArray("payee")
		if len(payeeParams) == 0 {
			sessions.Flash(c, "No users selected.")
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}
		payeeIDs := make([]uint, 0, len(payeeParams))
		for _, p := range payeeParams {
			id, err := strconv.ParseUint(p, 10, 64)
			if err != nil {
				sessions.Flash(c, "Invalid payee selection.")
				c.Redirect(http.StatusSeeOther, "/dashboard")
				return
			}
			payeeIDs = append(payeeIDs, uint(id))
		}
		// Every selected payee must be an existing user
		var payees []domain.User
		if err := db.Where("id IN ?", payeeIDs).Find(&payees).Error; err != nil || len(payees) != len(payeeIDs) {
			sessions.Flash(c, "Invalid payee selection.")
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}

		shares, err := split.Shares(amount, len(payees))
		if err != nil {
			if errors.Is(err, split.ErrInvalidAmount) {
				sessions.Flash(c, "Invalid amount.")
			} else {
				sessions.Flash(c, "No users selected.")
			}
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}

		// One row per payee, all committed together
		err = db.Transaction(func(tx *gorm.DB) error {
			for i, payee := range payees {
				t := domain.Transaction{
					Amount:      shares[i],
					Description: description,
					PayerID:     userID,
					PayeeID:     payee.ID,
				}
				if err := tx.Create(&t).Error; err != nil {
					return err // Return error to rollback
				}
			}
			return nil // Commit transaction
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"payer_id": userID,
				"amount":   amount,
				"payees":   len(payees),
				"error":    err.Error(),
			}).Error("Split failed")
			sessions.Flash(c, "Could not add transaction.")
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}

		logrus.WithFields(logrus.Fields{
			"payer_id": userID,
			"amount":   amount,
			"payees":   len(payees),
		}).Info("Split recorded")
		sessions.Flash(c, "Transaction added successfully.")
		c.Redirect(http.StatusSeeOther, "/dashboard")
	}
}
