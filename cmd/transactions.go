package cmd

import (
	"fmt"

	"cardwise/internal/cli"
	"cardwise/internal/wallet"

	"github.com/spf13/cobra"
)

var flagTxLimit int

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx"},
	Short:   "List logged transactions, newest first",
	RunE:    runTransactions,
}

func init() {
	transactionsCmd.Flags().IntVar(&flagTxLimit, "limit", 20, "Maximum entries to show (0 for all)")
	rootCmd.AddCommand(transactionsCmd)
}

func runTransactions(_ *cobra.Command, _ []string) error {
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

	if len(snap.Transactions) == 0 {
		fmt.Println("\n  No transactions logged yet. Use `cardwise log` to add one.")
		return nil
	}

	recent := wallet.RecentFirst(snap.Transactions)
	if flagTxLimit > 0 && len(recent) > flagTxLimit {
		recent = recent[:flagTxLimit]
	}

	currency := cfg.General.Currency
	var rows [][]string
	for _, tx := range recent {
		// Entries for deleted cards stay in the ledger and show N/A.
		cardName := "N/A"
		if c, ok := snap.CardByID(tx.CardID); ok {
			cardName = c.BankName + " " + c.CardName
		}
		rows = append(rows, []string{
			tx.Date.Format("2006-01-02"),
			cardName,
			string(tx.Category),
			cli.FormatMoney(currency, tx.Amount),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Card", "Category", "Amount"},
		Rows:    rows,
	}))
	return nil
}
