// Package main provides the viewgen CLI.
//
// viewgen turns view declaration files into Go serialization adapters:
//   - Parses declaration files describing views over model structs
//   - Analyzes model packages (go/types) to resolve source paths
//   - Generates the view struct plus its ownership and container
//     adapter variants, each serializing straight from the model
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "viewgen <command>",
	Short: "Generate serialization view adapters from declaration files",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c",
		"viewgen.yaml", "path to the project config file")

	rootCmd.AddCommand(genCmd, checkCmd, dumpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
