package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kurv/ed25519"
)

func verifyCmd() *cobra.Command {
	var signer string

	cmd := &cobra.Command{
		Use:   "verify <file> <signature>",
		Short: "Verify a base64 signature over a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(args[0])
			if err != nil {
				return err
			}
			rawSig, err := unb64(args[1])
			if err != nil {
				return err
			}
			if len(rawSig) != ed25519.SignatureSize {
				return fmt.Errorf("signature must be %d bytes, got %d", ed25519.SignatureSize, len(rawSig))
			}
			var sig [ed25519.SignatureSize]byte
			copy(sig[:], rawSig)

			var pub [ed25519.PublicKeySize]byte
			if signer != "" {
				if pub, err = unhex32(signer); err != nil {
					return fmt.Errorf("bad signer key: %w", err)
				}
			} else {
				id, err := appCtx.Keys.Load(passphrase)
				if err != nil {
					return err
				}
				pub = id.EdPub
			}

			if !ed25519.Verify(pub, msg, sig) {
				return fmt.Errorf("signature invalid")
			}
			fmt.Println("signature OK")
			return nil
		},
	}

	cmd.Flags().StringVar(&signer, "signer", "", "hex ed25519 public key (default: own identity)")
	return cmd
}
