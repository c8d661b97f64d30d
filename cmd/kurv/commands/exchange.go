package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"kurv/x25519"
)

func exchangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange <peer-pubkey>",
		Short: "Compute the shared secret with a peer's hex X25519 key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			peer, err := unhex32(args[0])
			if err != nil {
				return fmt.Errorf("bad peer key: %w", err)
			}
			id, err := appCtx.Keys.Load(passphrase)
			if err != nil {
				return err
			}
			secret, ok := x25519.Shared(id.XPriv, peer)
			if !ok {
				return fmt.Errorf("peer public value is a small-order point; refusing the degenerate secret")
			}
			fmt.Println(hex.EncodeToString(secret[:]))
			return nil
		},
	}
}
