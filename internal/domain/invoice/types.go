package invoice

import (
	"errors"
	"math"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

var ErrInvalidStatus = errors.New("invalid invoice status")

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// AmountToCents converts a validated dollar amount to minor currency units.
// Rounding, not truncation: 49.99 must store as 4999 despite IEEE-754
// (49.99*100 == 4998.999...).
func AmountToCents(amount float64) int32 {
	return int32(math.Round(amount * 100))
}
