package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flightdesk-cli",
	Short: "Flightdesk developer CLI",
	Long: `flightdesk-cli helps develop and debug the My Page service.

Available commands:
  token     Mint a signed access token for a user id
  mypage    Load a user's My Page from the backend and print the HTML fragment
  version   Print the CLI version

Use "flightdesk-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
