package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kurv/internal/curve"
)

func backendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backend",
		Short: "Report the Curve25519 backend selected for this host",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("backend:     %s\n", curve.Active().Name())
			fmt.Printf("accelerated: %v\n", curve.Accelerated())
			return nil
		},
	}
}
