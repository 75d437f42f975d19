package token

import (
	"fmt"

	"fortio.org/safecast"
)

// keywords maps each reserved word to its Kind. It is derived from entries
// in init so the spellings can never drift from the table.
var keywords map[string]Kind

// keywordCount is the number of keyword rows in entries.
var keywordCount int

func init() {
	keywords = make(map[string]Kind, 128)
	for i, e := range entries {
		if !e.keyword {
			continue
		}
		raw, err := safecast.Conv[uint8](i)
		if err != nil {
			panic(fmt.Errorf("kind overflow at %q: %w", e.text, err))
		}
		if prev, dup := keywords[e.text]; dup {
			panic(fmt.Errorf("duplicate keyword %q: %v and %v", e.text, prev, Kind(raw)))
		}
		keywords[e.text] = Kind(raw)
		keywordCount++
	}
}

// LookupKeyword reports whether ident is a reserved word, and if so returns
// its Kind. The lookup is case-sensitive: "True" is an ordinary identifier.
func LookupKeyword(ident string) (Kind, bool) {
	kind, ok := keywords[ident]
	return kind, ok
}
