package store

// DashboardStats summarizes the whole store for the landing page.
type DashboardStats struct {
	TotalCustomers         int     `json:"total_customers"`
	ActiveCustomers        int     `json:"active_customers"`
	TotalCases             int     `json:"total_cases"`
	ActiveCases            int     `json:"active_cases"`
	TotalTransactions      int     `json:"total_transactions"`
	CompletedTransactions  int     `json:"completed_transactions"`
	AverageBalance         float64 `json:"avg_balance"`
	TotalGarnishmentAmount float64 `json:"total_garnishment_amount"`
}

// Stats recomputes dashboard statistics from all three stores.
func (s *Store) Stats() (DashboardStats, error) {
	var stats DashboardStats

	customers, err := s.Customers()
	if err != nil {
		return stats, err
	}
	cases, err := s.Cases()
	if err != nil {
		return stats, err
	}
	transactions, err := s.Transactions()
	if err != nil {
		return stats, err
	}

	stats.TotalCustomers = len(customers)
	var balanceSum float64
	for _, c := range customers {
		balanceSum += c.Balance
		if c.Status == "Active" {
			stats.ActiveCustomers++
		}
	}
	if len(customers) > 0 {
		stats.AverageBalance = balanceSum / float64(len(customers))
	}

	stats.TotalCases = len(cases)
	for _, c := range cases {
		stats.TotalGarnishmentAmount += c.GarnishmentAmount
		if c.Status == "Active" {
			stats.ActiveCases++
		}
	}

	stats.TotalTransactions = len(transactions)
	for _, t := range transactions {
		if t.Status == "Completed" {
			stats.CompletedTransactions++
		}
	}

	return stats, nil
}
