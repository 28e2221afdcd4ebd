package cmd

import (
	"fmt"

	"cardwise/internal/cli"
	"cardwise/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagBankName    string
	flagCardName    string
	flagLastFour    string
	flagCreditLimit int64
	flagStmtDay     int
	flagDueDay      int
	flagColor       string
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Manage wallet cards",
	RunE:  runCardsList,
}

var cardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cards",
	RunE:  runCardsList,
}

var cardsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a card to the wallet",
	RunE:  runCardsAdd,
}

var cardsRemoveCmd = &cobra.Command{
	Use:   "remove <card-id>",
	Short: "Remove a card (its transactions are kept)",
	Args:  cobra.ExactArgs(1),
	RunE:  runCardsRemove,
}

func init() {
	cardsAddCmd.Flags().StringVar(&flagBankName, "bank", "", "Bank name (required)")
	cardsAddCmd.Flags().StringVar(&flagCardName, "name", "", "Card name (required)")
	cardsAddCmd.Flags().StringVar(&flagLastFour, "last-four", "", "Last 4 digits of the card number")
	cardsAddCmd.Flags().Int64Var(&flagCreditLimit, "limit", 0, "Credit limit (required)")
	cardsAddCmd.Flags().IntVar(&flagStmtDay, "statement-day", 0, "Statement generation day 1-31 (required)")
	cardsAddCmd.Flags().IntVar(&flagDueDay, "due-day", 0, "Payment due day 1-31 (required)")
	cardsAddCmd.Flags().StringVar(&flagColor, "color", "", "Display color tag (hex)")
	_ = cardsAddCmd.MarkFlagRequired("bank")
	_ = cardsAddCmd.MarkFlagRequired("name")
	_ = cardsAddCmd.MarkFlagRequired("limit")
	_ = cardsAddCmd.MarkFlagRequired("statement-day")
	_ = cardsAddCmd.MarkFlagRequired("due-day")

	cardsCmd.AddCommand(cardsListCmd)
	cardsCmd.AddCommand(cardsAddCmd)
	cardsCmd.AddCommand(cardsRemoveCmd)
	rootCmd.AddCommand(cardsCmd)
}

func runCardsList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	cards, err := st.ListCards()
	if err != nil {
		return err
	}

	if len(cards) == 0 {
		fmt.Println("\n  No cards yet. Add one with `cardwise cards add`.")
		return nil
	}

	currency := cfg.General.Currency
	var rows [][]string
	for _, c := range cards {
		rows = append(rows, []string{
			c.ID,
			c.BankName + " " + c.CardName,
			cli.MaskCardNumber(c.LastFourDigits),
			cli.FormatMoney(currency, c.CurrentUsage),
			cli.FormatMoney(currency, c.CreditLimit),
			cli.OrdinalDay(c.StatementDate),
			cli.OrdinalDay(c.DueDate),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Card", "Number", "Usage", "Limit", "Stmt", "Due"},
		Rows:    rows,
	}))
	return nil
}

func runCardsAdd(_ *cobra.Command, _ []string) error {
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

	card := model.Card{
		BankName:       flagBankName,
		CardName:       flagCardName,
		LastFourDigits: flagLastFour,
		CreditLimit:    flagCreditLimit,
		StatementDate:  flagStmtDay,
		DueDate:        flagDueDay,
		Color:          flagColor,
	}

	next, err := snap.AddCard(card)
	if err != nil {
		return err
	}

	added := next.Cards[len(next.Cards)-1]
	if err := st.SaveCard(added); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Added %s %s (id %s)\n", added.BankName, added.CardName, added.ID)
	}
	return nil
}

func runCardsRemove(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteCard(args[0]); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Removed card %s. Its transactions remain in the ledger as N/A.\n", args[0])
	}
	return nil
}
