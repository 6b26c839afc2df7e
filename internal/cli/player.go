package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	playerCmd := &cobra.Command{
		Use:   "player",
		Short: "Manage players",
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a player with the starting balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var session Session
			body := map[string]string{"name": args[0]}
			if err := client.Post("/api/v1/players", body, &session); err != nil {
				out.PrintError(err)
				return err
			}

			if out.JSONMode() {
				out.PrintJSON(session)
				return nil
			}

			added := session.Players[len(session.Players)-1]
			out.PrintMessage(fmt.Sprintf("Added %s (id %s) with balance %s",
				added.Name, added.ID, added.FormattedBalance))
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var players []Player
			if err := client.Get("/api/v1/players", &players); err != nil {
				out.PrintError(err)
				return err
			}

			if out.JSONMode() {
				out.PrintJSON(players)
				return nil
			}

			if len(players) == 0 {
				out.PrintMessage("No players yet")
				return nil
			}
			for _, p := range players {
				status := "active"
				if !p.IsActive {
					status = "eliminated"
				}
				fmt.Printf("%-12s %-20s %10d  [%s]\n", p.ID, p.Name, p.Balance, status)
			}
			return nil
		},
	}

	playerCmd.AddCommand(addCmd)
	playerCmd.AddCommand(listCmd)
	return playerCmd
}
