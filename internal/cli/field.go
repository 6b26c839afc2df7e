package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFieldCmd() *cobra.Command {
	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "Board mini-game fields",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the board fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			var fields []Field
			if err := client.Get("/api/v1/fields", &fields); err != nil {
				out.PrintError(err)
				return err
			}

			if out.JSONMode() {
				out.PrintJSON(fields)
				return nil
			}

			for _, f := range fields {
				sign := "+"
				if f.Effect == "expense" {
					sign = "-"
				}
				fmt.Printf("%2d  %-12s %s%s  %s\n", f.ID, f.Name, sign, f.FormattedAmount, f.Description)
			}
			return nil
		},
	}

	triggerCmd := &cobra.Command{
		Use:   "trigger <field-id>",
		Short: "Trigger a field against a random active player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				perr := fmt.Errorf("field id must be an integer: %q", args[0])
				out.PrintError(perr)
				return perr
			}

			var outcome Outcome
			if err := client.Post(fmt.Sprintf("/api/v1/fields/%d/trigger", id), nil, &outcome); err != nil {
				out.PrintError(err)
				return err
			}

			if out.JSONMode() {
				out.PrintJSON(outcome)
				return nil
			}

			out.PrintMessage(fmt.Sprintf("%s landed on %s: %+d", outcome.Player, outcome.Field.Name, outcome.Amount))
			return nil
		},
	}

	fieldCmd.AddCommand(listCmd)
	fieldCmd.AddCommand(triggerCmd)
	return fieldCmd
}
