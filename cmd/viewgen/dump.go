package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the resolved view plan for debugging",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := buildPlan()
		if err != nil {
			return err
		}

		d := spew.NewDefaultConfig()
		d.MaxDepth = 6
		d.Fdump(cmd.OutOrStdout(), p.Views)

		return nil
	},
}
