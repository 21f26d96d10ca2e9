package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dexmap",
	Short: "Extract the Pokemon id → forms map from TypeScript sources",
	Long: `Dexmap parses the POKEMON_NAME_BY_ID map literal embedded in a
TypeScript source file and renders it as JSON, without running or fully
parsing the TypeScript itself.

It also ships a companion scanner that lists the external modules a tree
of TypeScript files imports.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
