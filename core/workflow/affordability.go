package workflow

// PaymentCheck is the outcome of an affordability check.
type PaymentCheck struct {
	Possible              bool    `json:"possible"`
	AvailableBalance      float64 `json:"available_balance"`
	RemainingAfterPayment float64 `json:"remaining_after_payment"`
	UsesOverdraft         bool    `json:"uses_overdraft"`
	OverdraftAmount       float64 `json:"overdraft_amount"`
}

// CanPay checks whether an account can cover a required amount, counting the
// overdraft limit as available funds. UsesOverdraft is true whenever the
// amount exceeds the plain balance, even when the payment is not possible at
// all. Pure function; inputs are assumed non-negative and are not validated.
func CanPay(balance, overdraftLimit, requiredAmount float64) PaymentCheck {
	available := balance + overdraftLimit
	overdraft := requiredAmount - balance
	if overdraft < 0 {
		overdraft = 0
	}
	return PaymentCheck{
		Possible:              available >= requiredAmount,
		AvailableBalance:      available,
		RemainingAfterPayment: available - requiredAmount,
		UsesOverdraft:         requiredAmount > balance,
		OverdraftAmount:       overdraft,
	}
}
