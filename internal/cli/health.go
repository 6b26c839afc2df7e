package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			var status map[string]string
			if err := client.Get("/api/v1/health", &status); err != nil {
				out.PrintError(err)
				return err
			}

			if out.JSONMode() {
				out.PrintJSON(status)
				return nil
			}

			out.PrintMessage("Server is " + status["status"])
			return nil
		},
	}
}
