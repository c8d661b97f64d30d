package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kurv/internal/identity"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print identity fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := appCtx.Keys.Load(passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", identity.Fingerprint(id.EdPub[:]))
			return nil
		},
	}
}
