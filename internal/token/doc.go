// Package token carries the Solidity token table: every token kind, its
// source spelling, its operator precedence and whether it is a reserved word.
// Invariants:
//   - entries is indexed by Kind; kind.go and table.go list rows in the same
//     order, which is Solc's declaration order.
//   - Keywords() preserves that order, so downstream set output stays stable
//     across runs without sorting.
//   - The keyword tag marks reserved words only. "leave" (Yul) and the sized
//     type families (intM, bytesM, ...) have spellings but are not reserved.
//   - LParen..AssemblyAssign stay contiguous; IsPunctOrOp relies on it.
//   - Lookups are case-sensitive, matching the scanner.
package token
