package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kurv/internal/identity"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate identity keys and store them securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id, err := identity.New()
			if err != nil {
				return err
			}
			if err := appCtx.Keys.Save(passphrase, id); err != nil {
				return err
			}
			fmt.Printf("Identity created.\nFingerprint: %s\n", identity.Fingerprint(id.EdPub[:]))
			return nil
		},
	}
}
