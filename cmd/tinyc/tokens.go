package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tiny-lang/tinyc/lexer"
	"github.com/tiny-lang/tinyc/token"
)

func init() {
	cmd := &cobra.Command{
		Use:     "tokens <file>",
		Short:   "Print the token stream a source file scans to",
		Example: "  tinyc tokens sample.tny",
		Args:    cobra.ExactArgs(1),
		RunE:    runTokens,
	}
	rootCmd.AddCommand(cmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := resolveSourcePath(args[0])
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	lx := lexer.New(f)
	for {
		tok, err := lx.Next()
		if err != nil {
			return err
		}
		fmt.Printf("%4d  %-10s %q\n", tok.Line, tok.Kind, tok.Lexeme)
		if tok.Kind == token.ENDFILE {
			return nil
		}
	}
}
