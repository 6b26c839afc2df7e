package cli

import (
	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <passcode>",
		Short: "Exchange the banker passcode for a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var auth Auth
			body := map[string]string{"passcode": args[0]}
			if err := client.Post("/api/v1/auth/login", body, &auth); err != nil {
				out.PrintError(err)
				return err
			}

			if err := cfg.SaveToken(auth.Token); err != nil {
				out.PrintError(err)
				return err
			}
			client.SetToken(auth.Token)

			if out.JSONMode() {
				out.PrintJSON(auth)
				return nil
			}

			out.PrintMessage("Logged in; token saved to " + cfg.TokenFile)
			return nil
		},
	}
}
