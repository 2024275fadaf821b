package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/confcritic/internal/profile"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List built-in scoring profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := profile.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				p, err := profile.LoadBuiltin(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", name, p.Description)
			}
			return nil
		},
	}
}
