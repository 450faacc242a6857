package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"expense_splitter/internal/domain"  // Importing domain models
	"expense_splitter/internal/session" // Session manager

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// DeleteTransactionHandler deletes a transaction by id. Only the payer
// who created the split may delete its rows; an unknown id is a silent
// no-op.
func DeleteTransactionHandler(db *gorm.DB, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uint)

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}
		var transaction domain.Transaction
		if err := db.First(&transaction, uint(id)).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logrus.WithFields(logrus.Fields{
					"transaction_id": id,
					"error":          err.Error(),
				}).Error("Failed to fetch transaction")
			}
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}
		// Ownership check: only the payer may delete
		if transaction.PayerID != userID {
			sessions.Flash(c, "You can only delete transactions you created.")
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}
		if err := db.Delete(&transaction).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"transaction_id": transaction.ID,
				"user_id":        userID,
				"error":          err.Error(),
			}).Error("Failed to delete transaction")
			sessions.Flash(c, "Could not delete transaction.")
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}
		logrus.WithFields(logrus.Fields{
			"transaction_id": transaction.ID,
			"user_id":        userID,
		}).Info("Transaction deleted")
		sessions.Flash(c, "Transaction deleted successfully.")
		c.Redirect(http.StatusSeeOther, "/dashboard")
	}
}
