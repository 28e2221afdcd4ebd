package wallet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cardwise/internal/model"
)

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil)
	assert.Equal(t, model.WalletStats{}, stats)

	stats = Aggregate([]model.Card{})
	assert.Zero(t, stats.TotalUsage)
	assert.Zero(t, stats.TotalLimit)
	assert.Zero(t, stats.UtilizationPct)
}

func TestAggregate_SumsExactly(t *testing.T) {
	cards := []model.Card{
		{CurrentUsage: 22000, CreditLimit: 80000},
		{CurrentUsage: 61000, CreditLimit: 150000},
		{CurrentUsage: 45000, CreditLimit: 200000},
	}

	stats := Aggregate(cards)
	assert.Equal(t, int64(128000), stats.TotalUsage)
	assert.Equal(t, int64(430000), stats.TotalLimit)
	// 128000/430000 = 29.7674...% -> 29.77
	assert.InDelta(t, 29.77, stats.UtilizationPct, 1e-9)
}

func TestAggregate_ZeroLimitGuard(t *testing.T) {
	// A wallet whose limits sum to zero reports 0% rather than failing.
	stats := Aggregate([]model.Card{{CurrentUsage: 500, CreditLimit: 0}})
	assert.Equal(t, int64(500), stats.TotalUsage)
	assert.Zero(t, stats.UtilizationPct)
}

func TestAggregate_OverLimit(t *testing.T) {
	stats := Aggregate([]model.Card{{CurrentUsage: 1500, CreditLimit: 1000}})
	assert.InDelta(t, 150.0, stats.UtilizationPct, 1e-9)
}

func TestUtilizationPct_Rounding(t *testing.T) {
	assert.InDelta(t, 33.33, UtilizationPct(1, 3), 1e-9)
	assert.InDelta(t, 66.67, UtilizationPct(2, 3), 1e-9)
	assert.Zero(t, UtilizationPct(0, 0))
	assert.Zero(t, UtilizationPct(100, 0))
}

func TestAggregateCategories(t *testing.T) {
	txs := []model.Transaction{
		{Amount: 1500, Category: model.CategoryDining},
		{Amount: 3000, Category: model.CategoryGroceries},
		{Amount: 500, Category: model.CategoryDining},
	}

	stats := AggregateCategories(txs)
	assert.Len(t, stats, 2)
	assert.Equal(t, model.CategoryGroceries, stats[0].Category)
	assert.Equal(t, int64(3000), stats[0].Amount)
	assert.Equal(t, model.CategoryDining, stats[1].Category)
	assert.Equal(t, int64(2000), stats[1].Amount)
	assert.Equal(t, 2, stats[1].Count)
}

func TestUsageSeries_LabelIsFirstWord(t *testing.T) {
	series := UsageSeries([]model.Card{
		{BankName: "Apex Financial", CurrentUsage: 22000, CreditLimit: 80000},
		{BankName: "Nexus", CurrentUsage: 45000, CreditLimit: 200000},
	})

	assert.Equal(t, "Apex", series[0].Label)
	assert.Equal(t, "Nexus", series[1].Label)
	assert.Equal(t, int64(80000), series[0].Limit)
}

func TestRecentFirst(t *testing.T) {
	base := time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		{ID: "old", Date: base},
		{ID: "new", Date: base.Add(48 * time.Hour)},
		{ID: "mid", Date: base.Add(24 * time.Hour)},
	}

	sorted := RecentFirst(txs)
	assert.Equal(t, "new", sorted[0].ID)
	assert.Equal(t, "mid", sorted[1].ID)
	assert.Equal(t, "old", sorted[2].ID)

	// Input order untouched.
	assert.Equal(t, "old", txs[0].ID)
}
