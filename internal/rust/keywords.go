// Package rust carries the Rust reserved-word list and the subset of it
// that raw-identifier escaping cannot rescue.
package rust

import "fortio.org/sets"

// keywords lists every Rust reserved word in the order of the language
// reference: https://doc.rust-lang.org/reference/keywords.html
var keywords = []string{
	// strict
	"as",
	"break",
	"const",
	"continue",
	"crate",
	"else",
	"enum",
	"extern",
	"false",
	"fn",
	"for",
	"if",
	"impl",
	"in",
	"let",
	"loop",
	"match",
	"mod",
	"move",
	"mut",
	"pub",
	"ref",
	"return",
	"self",
	"Self",
	"static",
	"struct",
	"super",
	"trait",
	"true",
	"type",
	"unsafe",
	"use",
	"where",
	"while",
	// strict, >=2018
	"async",
	"await",
	"dyn",
	// reserved
	"abstract",
	"become",
	"box",
	"do",
	"final",
	"macro",
	"override",
	"priv",
	"typeof",
	"unsized",
	"virtual",
	"yield",
	// reserved, >=2018
	"try",
}

// keywordSet mirrors keywords for membership checks.
var keywordSet = sets.FromSlice(keywords)

// nonEscapable are the reserved words rustc rejects even as raw identifiers:
// r#crate, r#self, r#Self and r#super do not parse. Case matters, "Self" and
// "self" are distinct words.
var nonEscapable = sets.New("crate", "self", "Self", "super")

// Keywords returns the reserved words in reference order. The returned slice
// is a fresh copy on every call.
func Keywords() []string {
	return append([]string(nil), keywords...)
}

// IsKeyword reports whether word is reserved in Rust.
func IsKeyword(word string) bool {
	return keywordSet.Has(word)
}

// IsNonEscapable reports whether word cannot be turned into a raw identifier.
func IsNonEscapable(word string) bool {
	return nonEscapable.Has(word)
}

// NonEscapable returns the non-escapable words in sorted order.
func NonEscapable() []string {
	return sets.Sort(nonEscapable)
}
