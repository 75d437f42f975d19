// Package tablefmt renders the token table for inspection, either as
// aligned text or as JSON.
package tablefmt

import (
	"encoding/json"
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/fatih/color"

	"kwset/internal/token"
)

// RowOutput is one token table row in the JSON dump.
type RowOutput struct {
	Index      int    `json:"index"`
	Kind       string `json:"kind"`
	Text       string `json:"text,omitempty"`
	Precedence int    `json:"precedence,omitempty"`
	Keyword    bool   `json:"keyword,omitempty"`
}

// Options narrows what the formatters emit.
type Options struct {
	// KeywordsOnly drops every row that is not a reserved word.
	KeywordsOnly bool
}

var keywordTag = color.New(color.FgGreen)

// FormatTablePretty writes the table one row per line. Colorization
// follows the global color.NoColor switch.
func FormatTablePretty(w io.Writer, opts Options) error {
	for i := range token.Count() {
		kind := kindAt(i)
		if opts.KeywordsOnly && !kind.IsKeyword() {
			continue
		}

		fmt.Fprintf(w, "%3d: %-18s", i, kind.String())

		if kind.HasText() {
			fmt.Fprintf(w, " %q", kind.Text())
		}
		if p := kind.Precedence(); p > 0 {
			fmt.Fprintf(w, " prec=%d", p)
		}
		if kind.IsKeyword() {
			fmt.Fprintf(w, " %s", keywordTag.Sprint("keyword"))
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatTableJSON writes the table as an indented JSON array.
func FormatTableJSON(w io.Writer, opts Options) error {
	var output []RowOutput

	for i := range token.Count() {
		kind := kindAt(i)
		if opts.KeywordsOnly && !kind.IsKeyword() {
			continue
		}
		output = append(output, RowOutput{
			Index:      i,
			Kind:       kind.String(),
			Text:       kind.Text(),
			Precedence: kind.Precedence(),
			Keyword:    kind.IsKeyword(),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func kindAt(i int) token.Kind {
	raw, err := safecast.Conv[uint8](i)
	if err != nil {
		panic(fmt.Errorf("table index overflow: %w", err))
	}
	return token.Kind(raw)
}
