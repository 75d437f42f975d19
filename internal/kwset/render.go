package kwset

import (
	"fmt"
	"io"
)

// Format selects how a word list is printed.
type Format uint8

const (
	// Lines prints one word per line, each terminated by a newline.
	Lines Format = iota
	// Expr prints the whole list as a source-level array expression,
	// e.g. ["as","break",] with a trailing comma and no final newline.
	// Generated files embed this output verbatim, so the shape must stay
	// byte-stable: an empty list renders as [].
	Expr
)

func (f Format) String() string {
	switch f {
	case Lines:
		return "lines"
	case Expr:
		return "expr"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Render writes words to w in the given format.
func Render(w io.Writer, words []string, f Format) error {
	switch f {
	case Lines:
		for _, word := range words {
			if _, err := fmt.Fprintln(w, word); err != nil {
				return err
			}
		}
		return nil
	case Expr:
		if _, err := io.WriteString(w, "["); err != nil {
			return err
		}
		for _, word := range words {
			if _, err := fmt.Fprintf(w, "%q,", word); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "]")
		return err
	}
	panic(fmt.Errorf("invalid format %v", f))
}
