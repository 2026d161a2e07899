//go:build unit

package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"pending", "paid"} {
		s, err := NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, s.String())
	}

	for _, invalid := range []string{"", "Pending", "PAID", "overdue"} {
		_, err := NewStatus(invalid)
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", invalid)
	}
}

func TestAmountToCents(t *testing.T) {
	tests := []struct {
		amount float64
		want   int32
	}{
		{49.99, 4999}, // 49.99*100 is 4998.999... in IEEE-754
		{0.01, 1},
		{100, 10000},
		{19.99, 1999},
		{0.1 + 0.2, 30},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AmountToCents(tt.amount), "amount %v", tt.amount)
	}
}
