package model

// WalletStats holds the top-level aggregate across all cards.
type WalletStats struct {
	TotalUsage     int64
	TotalLimit     int64
	UtilizationPct float64 // 0-100, rounded to two decimals, 0 when TotalLimit is 0
}

// CategoryStats holds total spend for a single transaction category.
type CategoryStats struct {
	Category Category
	Amount   int64
	Count    int
}

// CardSeries holds one card's usage-vs-limit pair for chart rendering.
type CardSeries struct {
	Label string
	Usage int64
	Limit int64
}
