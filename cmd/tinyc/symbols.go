package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tiny-lang/tinyc/compiler"
)

func init() {
	cmd := &cobra.Command{
		Use:     "symbols <file>",
		Short:   "Print the symbol table resolved for a source file",
		Example: "  tinyc symbols sample.tny",
		Args:    cobra.ExactArgs(1),
		RunE:    runSymbols,
	}
	rootCmd.AddCommand(cmd)
}

func runSymbols(cmd *cobra.Command, args []string) error {
	path := resolveSourcePath(args[0])
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	res := compiler.Compile(f, nil, compiler.Options{})

	for _, d := range res.Diagnostics.Diagnostics() {
		fmt.Fprintln(os.Stderr, d.Error())
	}

	fmt.Printf("%-16s %-10s %-10s %s\n", "name", "type", "location", "lines")
	for _, e := range res.Table.Entries() {
		fmt.Printf("%-16s %-10s %-10d %v\n", e.Name, e.Type, e.Location, e.Lines)
	}

	if res.Diagnostics.HasErrors() {
		return fmt.Errorf("compilation of %s failed", path)
	}
	return nil
}
