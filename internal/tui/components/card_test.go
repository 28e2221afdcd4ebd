package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"cardwise/internal/model"
	"cardwise/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	tests := []struct {
		total, n int
		want     []int
	}{
		{90, 3, []int{30, 30, 30}},
		{91, 3, []int{31, 30, 30}},
		{92, 3, []int{31, 31, 30}},
		{10, 1, []int{10}},
	}
	for _, tt := range tests {
		got := LayoutRow(tt.total, tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
		}
		sum := 0
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
			}
			sum += got[i]
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}

	if got := LayoutRow(50, 0); got != nil {
		t.Errorf("LayoutRow(50, 0) = %v, want nil", got)
	}
}

func TestCreditCardShowsMaskedNumber(t *testing.T) {
	theme.SetActive("cardwise-dark")

	card := model.Card{
		BankName:       "Apex Financial",
		CardName:       "Obsidian Tier",
		LastFourDigits: "4412",
		CreditLimit:    80000,
		CurrentUsage:   22000,
		StatementDate:  20,
		DueDate:        10,
	}

	out := CreditCard(card, "₹", false, false, 40)
	if !strings.Contains(out, "**** **** **** 4412") {
		t.Error("rendered card missing masked number")
	}
	if !strings.Contains(out, "Apex Financial") {
		t.Error("rendered card missing bank name")
	}
	if strings.Contains(out, "BEST CHOICE") {
		t.Error("badge rendered without best flag")
	}

	out = CreditCard(card, "₹", false, true, 40)
	if !strings.Contains(out, "BEST CHOICE") {
		t.Error("best card missing badge")
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("cardwise-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	if got := len(strings.Split(joined, "\n")); got != tallLines {
		t.Errorf("joined height = %d, want %d", got, tallLines)
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestLabeledGaugeShowsPercent(t *testing.T) {
	theme.SetActive("cardwise-dark")

	out := LabeledGauge("Apex Obsidian", 22000, 80000, 16, 20)
	if !strings.Contains(out, "Apex Obsidian") {
		t.Error("gauge missing label")
	}
	if !strings.Contains(out, "27.5%") {
		t.Errorf("gauge missing percent readout: %q", out)
	}

	out = LabeledGauge("Empty", 0, 0, 8, 20)
	if !strings.Contains(out, "0.0%") {
		t.Errorf("zero-limit gauge = %q, want 0.0%%", out)
	}
}

func TestUsageChartListsEveryCard(t *testing.T) {
	theme.SetActive("cardwise-dark")

	series := []model.CardSeries{
		{Label: "Apex", Usage: 22000, Limit: 80000},
		{Label: "Nexus", Usage: 45000, Limit: 200000},
	}

	out := UsageChart(series, "₹", 60)
	for _, label := range []string{"Apex", "Nexus"} {
		if !strings.Contains(out, label) {
			t.Errorf("chart missing label %q", label)
		}
	}
	if !strings.Contains(out, "22,000") {
		t.Error("chart missing usage amount")
	}
}
