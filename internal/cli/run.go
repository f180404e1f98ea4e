package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"paslite/internal/interp"
	"paslite/internal/lexer"
	"paslite/internal/parser"
)

var dumpAST bool

var RunCmd = &cobra.Command{
	Use:   "run <source.pas>",
	Short: "Interpret a Pascal source file and print the final variables",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	RunCmd.Flags().BoolVar(&dumpAST, "ast", false, "dump the parsed tree before interpreting")
}

func runRun(cmd *cobra.Command, args []string) error {
	fileData, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read file '%s': %w", args[0], err)
	}

	p := parser.NewParser(lexer.NewLexer(fileData))
	program, err := p.Parse()
	if err != nil {
		return err
	}

	if dumpAST {
		litter.Dump(program)
	}

	interpreter := interp.NewInterpreter(verboseSymbols)
	if err := interpreter.Interpret(program); err != nil {
		return err
	}

	names := make([]string, 0, len(interpreter.GlobalScope))
	for name := range interpreter.GlobalScope {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Variables:")
	for _, name := range names {
		fmt.Printf("  %s = %s\n", name, interpreter.GlobalScope[name])
	}

	return nil
}
