// Package split computes how one entered amount is divided evenly
// across the selected payees.
package split

import (
	"errors"
	"math"
)

// ErrNoPayees is returned when a split has nobody to split across.
var ErrNoPayees = errors.New("split: no payees selected")

// ErrInvalidAmount is returned for non-finite or negative amounts.
var ErrInvalidAmount = errors.New("split: amount must be a positive number")

// Shares divides amount evenly across n payees with cent precision.
// The amount is first rounded to whole cents; every payee gets the even
// share rounded down, and the remainder cents go to the first payee, so
// the returned shares always sum to exactly the rounded amount.
func Shares(amount float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrNoPayees
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, ErrInvalidAmount
	}

	totalCents := int64(math.Round(amount * 100))
	base := totalCents / int64(n)
	remainder := totalCents % int64(n)

	shares := make([]float64, n)
	for i := range shares {
		shares[i] = float64(base) / 100
	}
	// First payee absorbs the cents that do not divide evenly.
	shares[0] = float64(base+remainder) / 100
	return shares, nil
}
