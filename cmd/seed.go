package cmd

import (
	"fmt"
	"time"

	"cardwise/internal/model"
	"cardwise/internal/wallet"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var flagSeedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a demo wallet",
	Long:  "Replace the wallet with three demo cards and a small ledger, useful for trying the dashboard.",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVarP(&flagSeedForce, "force", "f", false, "Overwrite an existing wallet")
	rootCmd.AddCommand(seedCmd)
}

func demoSnapshot(now time.Time) wallet.Snapshot {
	cards := []model.Card{
		{
			ID: uuid.NewString(), BankName: "Apex Financial", CardName: "Obsidian Tier",
			LastFourDigits: "4242", CreditLimit: 80000, CurrentUsage: 22000,
			StatementDate: 20, DueDate: 10, Color: "#3f8af2",
		},
		{
			ID: uuid.NewString(), BankName: "Meridian Trust", CardName: "Solaris",
			LastFourDigits: "8931", CreditLimit: 150000, CurrentUsage: 61000,
			StatementDate: 5, DueDate: 25, Color: "#a78bfa",
		},
		{
			ID: uuid.NewString(), BankName: "Nexus Bank", CardName: "Quantum",
			LastFourDigits: "1121", CreditLimit: 200000, CurrentUsage: 45000,
			StatementDate: 15, DueDate: 5, Color: "#34d399",
		},
	}

	txs := []model.Transaction{
		{ID: uuid.NewString(), CardID: cards[0].ID, Amount: 3200, Category: model.CategoryGroceries, Date: now.AddDate(0, 0, -6)},
		{ID: uuid.NewString(), CardID: cards[1].ID, Amount: 12500, Category: model.CategoryTravel, Date: now.AddDate(0, 0, -4)},
		{ID: uuid.NewString(), CardID: cards[0].ID, Amount: 1800, Category: model.CategoryDining, Date: now.AddDate(0, 0, -2)},
		{ID: uuid.NewString(), CardID: cards[2].ID, Amount: 5400, Category: model.CategoryShopping, Date: now.AddDate(0, 0, -1)},
	}

	return wallet.Snapshot{Cards: cards, Transactions: txs}
}

func runSeed(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	count, err := st.CardCount()
	if err != nil {
		return err
	}
	if count > 0 && !flagSeedForce {
		return fmt.Errorf("wallet already has %d cards, pass --force to overwrite", count)
	}

	if err := st.ReplaceSnapshot(demoSnapshot(time.Now())); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Println("  Seeded demo wallet with 3 cards and 4 transactions.")
		fmt.Println("  Try `cardwise recommend` or `cardwise tui`.")
	}
	return nil
}
