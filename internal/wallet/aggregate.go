package wallet

import (
	"math"
	"sort"

	"cardwise/internal/model"
)

// Aggregate sums usage and limit across the wallet and derives the overall
// utilization percentage. An empty wallet or zero total limit reports 0%.
func Aggregate(cards []model.Card) model.WalletStats {
	var stats model.WalletStats
	for _, c := range cards {
		stats.TotalUsage += c.CurrentUsage
		stats.TotalLimit += c.CreditLimit
	}
	stats.UtilizationPct = UtilizationPct(stats.TotalUsage, stats.TotalLimit)
	return stats
}

// UtilizationPct returns usage/limit as a percentage rounded to two decimals,
// or 0 when limit is not positive.
func UtilizationPct(usage, limit int64) float64 {
	if limit <= 0 {
		return 0
	}
	return math.Round(float64(usage)/float64(limit)*100*100) / 100
}

// AggregateCategories computes per-category spend totals, sorted by amount
// descending. Categories with no transactions are omitted.
func AggregateCategories(transactions []model.Transaction) []model.CategoryStats {
	byCat := make(map[model.Category]*model.CategoryStats)
	for _, tx := range transactions {
		cs, ok := byCat[tx.Category]
		if !ok {
			cs = &model.CategoryStats{Category: tx.Category}
			byCat[tx.Category] = cs
		}
		cs.Amount += tx.Amount
		cs.Count++
	}

	stats := make([]model.CategoryStats, 0, len(byCat))
	for _, cs := range byCat {
		stats = append(stats, *cs)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Amount != stats[j].Amount {
			return stats[i].Amount > stats[j].Amount
		}
		return stats[i].Category < stats[j].Category
	})
	return stats
}

// UsageSeries builds per-card usage-vs-limit pairs for chart rendering,
// labeled by the first word of the bank name as in the reports view.
func UsageSeries(cards []model.Card) []model.CardSeries {
	series := make([]model.CardSeries, 0, len(cards))
	for _, c := range cards {
		label := c.BankName
		for i := 0; i < len(label); i++ {
			if label[i] == ' ' {
				label = label[:i]
				break
			}
		}
		series = append(series, model.CardSeries{Label: label, Usage: c.CurrentUsage, Limit: c.CreditLimit})
	}
	return series
}

// RecentFirst returns a copy of the ledger sorted newest first. Insertion
// order is preserved for equal timestamps.
func RecentFirst(transactions []model.Transaction) []model.Transaction {
	sorted := append([]model.Transaction(nil), transactions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}
