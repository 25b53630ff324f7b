package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nfrund/flightdesk/internal/identity"
)

var (
	tokenUser   string
	tokenSecret string
	tokenTTL    time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a signed access token for a user id",
	Long: `Creates an HS256 access token carrying the given user id in its "userid" claim.
The secret defaults to JWT_SECRET. Useful for exercising My Page without the real token issuer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenUser == "" {
			return errors.New("user id is required: --user=<id>")
		}
		secret := tokenSecret
		if secret == "" {
			secret = os.Getenv("JWT_SECRET")
		}
		if secret == "" {
			return errors.New("a signing secret is required: --secret or JWT_SECRET")
		}

		token, err := identity.Issue(secret, tokenUser, tokenTTL)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVarP(&tokenUser, "user", "u", "", "The user id to put in the token")
	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "HMAC signing secret (defaults to JWT_SECRET)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "How long the token stays valid")
}
