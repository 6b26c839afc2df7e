package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Apply ledger transactions",
	}

	txCmd.AddCommand(newSimpleTxCmd("income", "Give a player money from the bank"))
	txCmd.AddCommand(newSimpleTxCmd("expense", "Take money from a player to the bank"))

	transferCmd := &cobra.Command{
		Use:   "transfer <from-player-id> <to-player-id> <amount>",
		Short: "Transfer money between players",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[2])
			if err != nil {
				out.PrintError(err)
				return err
			}

			body := map[string]any{
				"type":           "transfer",
				"amount":         amount,
				"playerId":       args[0],
				"targetPlayerId": args[1],
			}

			var session Session
			if err := client.Post("/api/v1/transactions", body, &session); err != nil {
				out.PrintError(err)
				return err
			}

			if out.JSONMode() {
				out.PrintJSON(session)
				return nil
			}

			printLatest(session)
			return nil
		},
	}
	txCmd.AddCommand(transferCmd)

	return txCmd
}

func newSimpleTxCmd(kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <player-id> <amount>", kind),
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				out.PrintError(err)
				return err
			}

			body := map[string]any{
				"type":     kind,
				"amount":   amount,
				"playerId": args[0],
			}

			var session Session
			if err := client.Post("/api/v1/transactions", body, &session); err != nil {
				out.PrintError(err)
				return err
			}

			if out.JSONMode() {
				out.PrintJSON(session)
				return nil
			}

			printLatest(session)
			return nil
		},
	}
}

func parseAmount(raw string) (int64, error) {
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount must be an integer: %q", raw)
	}
	return amount, nil
}

// printLatest reports the newest transaction, or notes that nothing changed
// (operations on eliminated players are quietly skipped by the server).
func printLatest(session Session) {
	if len(session.Transactions) == 0 {
		out.PrintMessage("No transactions recorded")
		return
	}
	out.PrintMessage(session.Transactions[0].Description)
}
