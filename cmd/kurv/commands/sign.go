package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kurv/ed25519"
)

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <file>",
		Short: "Sign a file with the identity key (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := appCtx.Keys.Load(passphrase)
			if err != nil {
				return err
			}
			msg, err := readMessage(args[0])
			if err != nil {
				return err
			}
			sig := ed25519.Sign(id.EdPriv, msg)
			fmt.Println(b64(sig[:]))
			return nil
		},
	}
}
