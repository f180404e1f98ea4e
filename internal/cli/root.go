package cli

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var verboseSymbols bool

var rootCmd = &cobra.Command{
	Use:   "paslite",
	Short: "paslite — a tree-walking interpreter for a Pascal subset",
	Long: `Paslite interprets a small subset of Pascal: arithmetic on
INTEGER and REAL, VAR declarations, assignments and BEGIN...END blocks
inside a single PROGRAM.

Commands:
  run   Interpret a Pascal source file and print the final variables
  repl  Evaluate arithmetic expressions interactively (the default)
`,
	RunE: replRun,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(1, nil)
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseSymbols, "verbose", "v", false,
		"trace symbol table defines and lookups")

	rootCmd.AddCommand(RunCmd, ReplCmd)
}
