package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kwset/internal/tablefmt"
)

var tableCmd = &cobra.Command{
	Use:   "table [flags]",
	Short: "Dump the Solidity master token table",
	Long: `Table prints every entry of the token table the solidity word list is
derived from: index, kind, spelling, operator precedence and keyword tag.`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func init() {
	tableCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tableCmd.Flags().Bool("keywords", false, "only keyword entries (the solidity list view)")
}

func runTable(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	keywordsOnly, err := cmd.Flags().GetBool("keywords")
	if err != nil {
		return fmt.Errorf("failed to get keywords flag: %w", err)
	}

	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	color.NoColor = !useColor

	opts := tablefmt.Options{KeywordsOnly: keywordsOnly}
	switch format {
	case "pretty":
		return tablefmt.FormatTablePretty(os.Stdout, opts)
	case "json":
		return tablefmt.FormatTableJSON(os.Stdout, opts)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
