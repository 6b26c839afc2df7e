package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or reset the game session",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the full session: roster and transaction log",
		RunE: func(cmd *cobra.Command, args []string) error {
			var session Session
			if err := client.Get("/api/v1/session", &session); err != nil {
				out.PrintError(err)
				return err
			}

			if out.JSONMode() {
				out.PrintJSON(session)
				return nil
			}

			printSession(session)
			return nil
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Start a new game, discarding the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var session Session
			if err := client.Delete("/api/v1/session", &session); err != nil {
				out.PrintError(err)
				return err
			}

			if out.JSONMode() {
				out.PrintJSON(session)
				return nil
			}

			out.PrintMessage(fmt.Sprintf("New game started (id %s)", session.GameID))
			return nil
		},
	}

	sessionCmd.AddCommand(showCmd)
	sessionCmd.AddCommand(resetCmd)
	return sessionCmd
}

func printSession(session Session) {
	fmt.Printf("Game %s\n\n", session.GameID)

	fmt.Println("Players:")
	if len(session.Players) == 0 {
		fmt.Println("  (none)")
	}
	for _, p := range session.Players {
		status := "active"
		if !p.IsActive {
			status = "eliminated"
		}
		fmt.Printf("  %-20s %10d  (%s)  [%s]\n", p.Name, p.Balance, p.FormattedBalance, status)
	}

	fmt.Println("\nTransactions (newest first):")
	if len(session.Transactions) == 0 {
		fmt.Println("  (none)")
	}
	for _, tx := range session.Transactions {
		fmt.Printf("  %s  %-12s %8d  %s\n",
			tx.Timestamp.Format("15:04:05"), tx.Type, tx.Amount, tx.Description)
	}
}
