package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"paslite/internal/interp"
	"paslite/internal/lexer"
	"paslite/internal/notation"
	"paslite/internal/parser"
)

var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate arithmetic expressions interactively",
	Args:  cobra.NoArgs,
	RunE:  replRun,
}

var (
	resultLabel = color.New(color.FgGreen, color.Bold).SprintFunc()
	errorLabel  = color.New(color.FgRed).SprintFunc()
	boldText    = color.New(color.Bold).SprintFunc()
)

func replRun(cmd *cobra.Command, args []string) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("calc > ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		if err := evalLine(line); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", errorLabel("Error"), err)
		}
	}
}

func evalLine(line string) error {
	p := parser.NewParser(lexer.NewLexer([]byte(line)))
	expression, err := p.ParseExpression()
	if err != nil {
		return err
	}

	result, err := interp.NewInterpreter(verboseSymbols).EvalExpression(expression)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", resultLabel("Result"), boldText(result.String()))
	fmt.Printf("AST: %s\n", litter.Sdump(expression))
	fmt.Printf("RPN: %s\n", notation.RPN(expression))
	fmt.Printf("Lisp: %s\n", notation.SExpr(expression))
	fmt.Println()

	return nil
}
