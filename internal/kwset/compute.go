package kwset

import (
	"fmt"

	"fortio.org/sets"

	"kwset/internal/rust"
	"kwset/internal/token"
)

// Rust returns the Rust reserved words in reference order.
func Rust() []string { return rust.Keywords() }

// Solidity returns the Solidity reserved words in table order.
func Solidity() []string { return token.Keywords() }

// Intersection returns the Rust reserved words that Solidity also reserves,
// minus the non-escapable ones, in Rust reference order.
func Intersection() []string { return filterRust(true) }

// Difference returns the Rust reserved words that Solidity does not
// reserve, minus the non-escapable ones, in Rust reference order.
func Difference() []string { return filterRust(false) }

// Compute returns the word list for op.
func Compute(op Op) []string {
	switch op {
	case OpRust:
		return Rust()
	case OpSolidity:
		return Solidity()
	case OpIntersection:
		return Intersection()
	case OpDifference:
		return Difference()
	}
	panic(fmt.Errorf("invalid op %v", op))
}

func filterRust(common bool) []string {
	return filter(rust.Keywords(), rust.IsNonEscapable, sets.FromSlice(token.Keywords()), common)
}

// filter walks words in order and keeps those whose membership in against
// equals common. Excluded words are dropped before the membership test, so
// they appear in neither the common nor the non-common result.
func filter(words []string, exclude func(string) bool, against sets.Set[string], common bool) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if exclude(w) {
			continue
		}
		if against.Has(w) == common {
			out = append(out, w)
		}
	}
	return out
}
