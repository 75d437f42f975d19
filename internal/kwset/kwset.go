// Package kwset computes membership relationships between the Rust and
// Solidity reserved-word lists.
//
// Intersection and Difference walk the Rust list in reference order and
// drop the non-escapable words (crate, self, Self, super) before any
// membership test, so their output is a stable subsequence of the Rust
// list and never needs sorting.
package kwset

import "fmt"

// Op selects which word set an invocation computes.
type Op uint8

const (
	// OpRust is the full Rust reserved-word list, non-escapable words
	// included.
	OpRust Op = iota
	// OpSolidity is the full Solidity reserved-word list.
	OpSolidity
	// OpIntersection is the set of Rust words that Solidity also reserves.
	OpIntersection
	// OpDifference is the set of Rust words that Solidity does not reserve.
	OpDifference
)

func (o Op) String() string {
	switch o {
	case OpRust:
		return "rust"
	case OpSolidity:
		return "solidity"
	case OpIntersection:
		return "intersection"
	case OpDifference:
		return "difference"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// ParseOp maps a command-line argument to its Op. Matching is exact and
// case-sensitive: "Rust" is not an operation.
func ParseOp(arg string) (Op, error) {
	switch arg {
	case "rust":
		return OpRust, nil
	case "solidity":
		return OpSolidity, nil
	case "intersection":
		return OpIntersection, nil
	case "difference":
		return OpDifference, nil
	}
	return 0, &UnknownOperationError{Arg: arg}
}

// UnknownOperationError is returned by ParseOp for an argument that names
// no operation.
type UnknownOperationError struct {
	Arg string
}

func (e *UnknownOperationError) Error() string {
	return "Unknown argument: " + e.Arg
}
