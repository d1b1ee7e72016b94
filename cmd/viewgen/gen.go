package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"viewgen/internal/gen"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate view adapter files into the output directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, p, err := buildPlan()
		if err != nil {
			return err
		}

		genCfg, err := cfg.GeneratorConfig()
		if err != nil {
			return err
		}

		files, err := gen.NewGenerator(genCfg).Generate(p)
		if err != nil {
			return err
		}

		if err := gen.WriteFiles(files, genCfg.OutputDir); err != nil {
			return err
		}

		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f.Filename)
		}

		return nil
	},
}
