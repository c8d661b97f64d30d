package commands

import (
	"os"

	"github.com/spf13/cobra"

	"kurv/internal/app"
)

var (
	home       string
	passphrase string
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "kurv",
		Short: "Curve25519 key agreement and Ed25519 signatures",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			appCtx = app.New(home)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.kurv)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect keys")

	root.AddCommand(
		initCmd(),
		fingerprintCmd(),
		pubkeyCmd(),
		signCmd(),
		verifyCmd(),
		exchangeCmd(),
		backendCmd(),
	)
	return root.Execute()
}
