package cmd

import (
	"fmt"

	"cardwise/internal/billing"
	"cardwise/internal/cli"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank cards by interest-free float for a purchase date",
	Long:  "Project each card's next statement and payment due date for a purchase, and pick the card with the most days until payment is due.",
	RunE:  runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
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
		fmt.Println("\n  No cards to recommend from. Add one with `cardwise cards add`.")
		return nil
	}

	purchase, err := anchorDate()
	if err != nil {
		return err
	}

	overflow := overflowPolicy(cfg)
	recs := billing.Recommend(snap.Cards, purchase, overflow)
	best := billing.SelectBest(snap.Cards, purchase, overflow)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BEST CARD  Purchase on %s", cli.FormatDate(purchase))))
	fmt.Println()

	var rows [][]string
	for _, r := range recs {
		name := r.Card.BankName + " " + r.Card.CardName
		if best != nil && r.Card.ID == best.Card.ID {
			name = "★ " + name
		}
		rows = append(rows, []string{
			name,
			cli.OrdinalDay(r.Card.StatementDate),
			cli.OrdinalDay(r.Card.DueDate),
			cli.FormatDate(r.PaymentDueDate),
			cli.FormatDays(r.DaysUntilDue),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Card", "Stmt Day", "Due Day", "Pay By", "Float"},
		Rows:    rows,
	}))

	if best != nil {
		fmt.Println()
		fmt.Println("  " + cli.RenderBest(fmt.Sprintf("Use %s %s and pay by %s",
			best.Card.BankName, best.Card.CardName, cli.FormatDate(best.PaymentDueDate))))
		fmt.Println("  " + cli.RenderMuted("The statement closes after the purchase, so the charge rides the next cycle."))
	}

	return nil
}
