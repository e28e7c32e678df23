package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tiny-lang/tinyc/compiler"
	"github.com/tiny-lang/tinyc/config"
	"github.com/tiny-lang/tinyc/listing"
)

var compileFlags = struct {
	output       *string
	format       *string
	echoSource   *bool
	traceScanner *bool
	traceParse   *bool
	traceAnalyze *bool
	traceCode    *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile <file>",
		Short:   "Compile a TINY source file into a three-address listing",
		Example: "  tinyc compile sample.tny -o sample.tm",
		Args:    cobra.ExactArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	compileFlags.format = cmd.Flags().StringP("format", "f", "", "listing format: text, json, or tree (default text)")
	compileFlags.echoSource = cmd.Flags().Bool("echo-source", false, "echo the source file to stderr before compiling")
	compileFlags.traceScanner = cmd.Flags().Bool("trace-scanner", false, "log every token the scanner produces")
	compileFlags.traceParse = cmd.Flags().Bool("trace-parse", false, "log parser decisions")
	compileFlags.traceAnalyze = cmd.Flags().Bool("trace-analyze", false, "log symbol resolution and type checking")
	compileFlags.traceCode = cmd.Flags().Bool("trace-codegen", false, "log the temporary allocated for each operator expression")
	rootCmd.AddCommand(cmd)
}

// resolveSourcePath appends the language's .tny extension when the
// given path has none, matching the original driver's behaviour of
// treating a bare program name as shorthand for "<name>.tny".
func resolveSourcePath(path string) string {
	if filepath.Ext(path) != "" {
		return path
	}
	return path + ".tny"
}

func runCompile(cmd *cobra.Command, args []string) error {
	path := resolveSourcePath(args[0])

	fileCfg, err := config.Load(configFilePath())
	if err != nil {
		return fmt.Errorf("cannot read config file: %w", err)
	}

	output := config.MergeString(*compileFlags.output, cmd.Flags().Changed("output"), fileCfg.Output, "")
	format := config.MergeString(*compileFlags.format, cmd.Flags().Changed("format"), fileCfg.Format, "text")
	echoSource := config.MergeBool(*compileFlags.echoSource, cmd.Flags().Changed("echo-source"), fileCfg.EchoSource)
	traceScanner := config.MergeBool(*compileFlags.traceScanner, cmd.Flags().Changed("trace-scanner"), fileCfg.TraceScanner)
	traceParse := config.MergeBool(*compileFlags.traceParse, cmd.Flags().Changed("trace-parse"), fileCfg.TraceParse)
	traceAnalyze := config.MergeBool(*compileFlags.traceAnalyze, cmd.Flags().Changed("trace-analyze"), fileCfg.TraceAnalyze)
	traceCode := config.MergeBool(*compileFlags.traceCode, cmd.Flags().Changed("trace-codegen"), fileCfg.TraceCode)

	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer src.Close()

	if echoSource {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stderr, string(data))
	}

	res := compiler.Compile(src, os.Stderr, compiler.Options{
		TraceScanner: traceScanner,
		TraceParse:   traceParse,
		TraceAnalyze: traceAnalyze,
		TraceCode:    traceCode,
	})

	for _, d := range res.Diagnostics.Diagnostics() {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	if res.Diagnostics.HasErrors() {
		return fmt.Errorf("compilation of %s failed", path)
	}

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("cannot create %s: %w", output, err)
		}
		defer f.Close()
		out = f
	}

	if format == "tree" {
		listing.WriteTree(out, res.Tree)
		return nil
	}
	return listing.WriteInstructions(out, res.Buffer, listing.Format(format))
}

func configFilePath() string {
	if *rootFlags.configPath != "" {
		return *rootFlags.configPath
	}
	return config.DefaultFile
}
