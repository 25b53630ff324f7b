package cmd

import (
	"errors"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/nfrund/flightdesk/internal/app"
	"github.com/nfrund/flightdesk/internal/config"
	"github.com/nfrund/flightdesk/internal/i18n"
	"github.com/nfrund/flightdesk/internal/middleware"
	"github.com/nfrund/flightdesk/internal/modules/mypage"
	"github.com/nfrund/flightdesk/internal/modules/mypage/view"
	"github.com/nfrund/flightdesk/internal/rendering"
)

var (
	mypageToken string
	mypageLang  string
)

var mypageCmd = &cobra.Command{
	Use:   "mypage",
	Short: "Load a user's My Page from the backend and print the HTML fragment",
	Long: `Resolves the user id from --token, runs the same retrieval sequence as the web page
against API_BASE_URL and writes the rendered fragment to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if mypageToken == "" {
			return errors.New("an access token is required: --token=<jwt>")
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		injector, err := app.NewContainer(cfg, app.NewModules())
		if err != nil {
			return err
		}

		resolver, err := do.Invoke[middleware.IdentityResolver](injector)
		if err != nil {
			return err
		}
		userID, err := resolver.Resolve(mypageToken)
		if err != nil {
			return fmt.Errorf("resolve user id: %w", err)
		}
		loader, err := do.Invoke[*mypage.Loader](injector)
		if err != nil {
			return err
		}

		renderer, err := do.Invoke[rendering.Renderer](injector)
		if err != nil {
			return err
		}

		state := loader.Load(cmd.Context(), mypageToken, userID)
		links := view.Links{Content: "/mypage/content", EditProfile: "/mypage/edit"}
		html, err := renderer.RenderComponent(cmd.Context(), mypage.Fragment(i18n.For(mypageLang), state, links))
		if err != nil {
			return fmt.Errorf("render fragment: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(html))
		fmt.Fprintf(cmd.ErrOrStderr(), "phase: %s\n", state.Phase)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mypageCmd)
	mypageCmd.Flags().StringVarP(&mypageToken, "token", "t", "", "Access token carrying the userid claim")
	mypageCmd.Flags().StringVar(&mypageLang, "lang", "ko", "Label language (ko or en)")
}
