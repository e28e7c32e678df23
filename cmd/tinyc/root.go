package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tinyc",
	Short: "Compile TINY programs to three-address code",
	Long: `tinyc compiles programs written in TINY, a small imperative
teaching language, to a three-address instruction listing. It can also
dump the token stream or the resolved symbol table for debugging a
program.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var rootFlags = struct {
	configPath *string
}{}

func init() {
	rootFlags.configPath = rootCmd.PersistentFlags().String("config", "", "path to a .tinyc.yaml config file (default: ./.tinyc.yaml)")
}

// Execute runs the command tree and reports cobra-level errors to
// stderr the way the compile subcommands report diagnostics.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
