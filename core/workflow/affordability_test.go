package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPay(t *testing.T) {
	tests := []struct {
		name     string
		balance  float64
		limit    float64
		required float64
		want     PaymentCheck
	}{
		{
			name:    "covered by balance alone",
			balance: 1000, limit: 500, required: 800,
			want: PaymentCheck{
				Possible:              true,
				AvailableBalance:      1500,
				RemainingAfterPayment: 700,
				UsesOverdraft:         false,
				OverdraftAmount:       0,
			},
		},
		{
			name:    "covered with overdraft",
			balance: 1000, limit: 500, required: 1200,
			want: PaymentCheck{
				Possible:              true,
				AvailableBalance:      1500,
				RemainingAfterPayment: 300,
				UsesOverdraft:         true,
				OverdraftAmount:       200,
			},
		},
		{
			name:    "not possible without overdraft limit",
			balance: 1000, limit: 0, required: 1200,
			want: PaymentCheck{
				Possible:              false,
				AvailableBalance:      1000,
				RemainingAfterPayment: -200,
				UsesOverdraft:         true,
				OverdraftAmount:       200,
			},
		},
		{
			name:    "exact available balance",
			balance: 1000, limit: 500, required: 1500,
			want: PaymentCheck{
				Possible:              true,
				AvailableBalance:      1500,
				RemainingAfterPayment: 0,
				UsesOverdraft:         true,
				OverdraftAmount:       500,
			},
		},
		{
			name:    "zero required amount",
			balance: 1000, limit: 500, required: 0,
			want: PaymentCheck{
				Possible:              true,
				AvailableBalance:      1500,
				RemainingAfterPayment: 1500,
				UsesOverdraft:         false,
				OverdraftAmount:       0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPay(tt.balance, tt.limit, tt.required))
		})
	}
}
