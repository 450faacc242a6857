package domain

import "time"

// Transaction Model. A split across N payees is stored as N rows,
// each with exactly one payer and one payee.
type Transaction struct {
	ID          uint      `gorm:"primaryKey"`                // Primary key
	Amount      float64   `gorm:"not null"`                  // Share owed by the payee
	Description string    `gorm:"not null;default:'Enjoy!'"` // Free-form label
	Date        time.Time `gorm:"not null;autoCreateTime"`   // Creation time
	PayerID     uint      `gorm:"not null"`                  // Foreign key to User who paid
	PayeeID     uint      `gorm:"not null"`                  // Foreign key to User who owes
	Payer       User      `gorm:"foreignKey:PayerID"`        // Payer relation
	Payee       User      `gorm:"foreignKey:PayeeID"`        // Payee relation
}
