package cmd

import (
	"fmt"
	"strings"
	"time"

	"cardwise/internal/cli"
	"cardwise/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagTxCard     string
	flagTxAmount   int64
	flagTxCategory string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a transaction against a card",
	Long:  "Record a spend on a card. The amount is added to the card's current usage and a ledger entry is written, both or neither.",
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVar(&flagTxCard, "card", "", "Card ID (required)")
	logCmd.Flags().Int64Var(&flagTxAmount, "amount", 0, "Amount spent (required)")
	logCmd.Flags().StringVar(&flagTxCategory, "category", string(model.CategoryOther),
		"Category: "+strings.Join(categoryNames(), ", "))
	_ = logCmd.MarkFlagRequired("card")
	_ = logCmd.MarkFlagRequired("amount")

	rootCmd.AddCommand(logCmd)
}

func categoryNames() []string {
	names := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		names[i] = string(c)
	}
	return names
}

func runLog(_ *cobra.Command, _ []string) error {
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

	_, tx, err := snap.Apply(flagTxCard, flagTxAmount, model.Category(flagTxCategory), time.Now())
	if err != nil {
		return err
	}

	if err := st.ApplyTransaction(tx); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Logged %s %s on card %s\n",
			cli.FormatMoney(cfg.General.Currency, tx.Amount), tx.Category, tx.CardID)
	}
	return nil
}
