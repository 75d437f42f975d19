// Package main implements the kwset CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"kwset/internal/kwset"
	"kwset/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "kwset [--expr] <rust|solidity|intersection|difference>",
	Short: "Keyword set calculator for Rust and Solidity",
	Long: `kwset computes membership relationships between the Rust reserved words
and the Solidity reserved words, for deciding which identifiers need raw
escaping in generated source.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
	// main prints errors itself: stderr must carry exactly
	// "Unknown argument: <value>" and nothing else.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errMissingOperation signals an invocation without a positional argument.
// The historical contract for that case is exit code 1 with no output at
// all, so main swallows the message.
var errMissingOperation = errors.New("missing operation")

func init() {
	rootCmd.Flags().Bool("expr", false, "print the set as a source expression instead of one word per line")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
}

// main wires the subcommands into the root, executes it, and maps errors to
// the process exit code.
func main() {
	// Версия для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errMissingOperation) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errMissingOperation
	}

	expr, err := cmd.Flags().GetBool("expr")
	if err != nil {
		return fmt.Errorf("failed to get expr flag: %w", err)
	}

	// Лишние позиционные аргументы игнорируются, решает первый.
	return emitSet(cmd.OutOrStdout(), args[0], expr)
}

// emitSet renders the operation named by arg to w.
func emitSet(w io.Writer, arg string, expr bool) error {
	op, err := kwset.ParseOp(arg)
	if err != nil {
		return err
	}
	format := kwset.Lines
	if expr {
		format = kwset.Expr
	}
	return kwset.Render(w, kwset.Compute(op), format)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
