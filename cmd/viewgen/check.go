package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate declarations against the model types without generating",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := buildPlan()
		if err != nil {
			if p != nil {
				for _, d := range p.Diagnostics.Errors {
					fmt.Fprintln(cmd.ErrOrStderr(), d.String())
				}
			}

			return fmt.Errorf("check failed")
		}

		for _, d := range p.Diagnostics.Warnings {
			fmt.Fprintln(cmd.ErrOrStderr(), d.String())
		}

		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d view(s) resolved\n", len(p.Views))

		return nil
	},
}
