package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print public keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := appCtx.Keys.Load(passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("x25519:  %s\n", hex.EncodeToString(id.XPub[:]))
			fmt.Printf("ed25519: %s\n", hex.EncodeToString(id.EdPub[:]))
			return nil
		},
	}
}
