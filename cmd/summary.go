package cmd

import (
	"fmt"

	"cardwise/internal/billing"
	"cardwise/internal/cli"
	"cardwise/internal/wallet"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Wallet overview with usage totals and the best card for today",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := st.LoadSnapshot()
	if err != nil {
		return err
	}

	if len(snap.Cards) == 0 {
		fmt.Println("\n  No cards yet.")
		fmt.Println("  Run `cardwise cards add` or `cardwise seed` to get started.")
		return nil
	}

	purchase, err := anchorDate()
	if err != nil {
		return err
	}

	currency := cfg.General.Currency
	stats := wallet.Aggregate(snap.Cards)
	overflow := overflowPolicy(cfg)
	recs := billing.Recommend(snap.Cards, purchase, overflow)
	best := billing.SelectBest(snap.Cards, purchase, overflow)

	fmt.Println()
	fmt.Println(cli.RenderTitle("CARDWISE  Wallet Summary"))
	fmt.Println()

	table := cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Cards", cli.FormatNumber(int64(len(snap.Cards)))},
			{"Transactions", cli.FormatNumber(int64(len(snap.Transactions)))},
			{"Total Usage", cli.FormatMoney(currency, stats.TotalUsage)},
			{"Total Limit", cli.FormatMoney(currency, stats.TotalLimit)},
			{"Utilization", cli.FormatPercent(stats.UtilizationPct)},
		},
	}
	fmt.Print(cli.RenderTable(table))

	var rows [][]string
	for _, r := range recs {
		rows = append(rows, []string{
			r.Card.BankName + " " + r.Card.CardName,
			cli.FormatMoney(currency, r.Card.CurrentUsage),
			cli.FormatMoney(currency, r.Card.CreditLimit),
			cli.RenderUtilizationBar(r.Card.CurrentUsage, r.Card.CreditLimit, 10),
			cli.FormatDate(r.PaymentDueDate),
			cli.FormatDays(r.DaysUntilDue),
		})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Cards",
		Headers: []string{"Card", "Usage", "Limit", "Util", "Pay By", "Float"},
		Rows:    rows,
	}))

	if cats := wallet.AggregateCategories(snap.Transactions); len(cats) > 0 {
		var peak int64
		for _, c := range cats {
			if c.Amount > peak {
				peak = c.Amount
			}
		}
		fmt.Println()
		fmt.Println("  " + cli.RenderMuted("Spend by Category"))
		for _, c := range cats {
			fmt.Printf("  %-14s %-18s %s\n", c.Category,
				cli.RenderHorizontalBar(c.Amount, peak, 18),
				cli.FormatMoney(currency, c.Amount))
		}
	}

	if best != nil {
		fmt.Println()
		fmt.Println("  " + cli.RenderBest(fmt.Sprintf("%s %s gives %s of interest-free float (pay by %s)",
			best.Card.BankName, best.Card.CardName,
			cli.FormatDays(best.DaysUntilDue), cli.FormatDate(best.PaymentDueDate))))
	}

	return nil
}
