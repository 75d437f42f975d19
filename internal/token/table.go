package token

import "fmt"

// entry is one row of the token table: the stringer name of the Kind, the
// source spelling (empty for tokens without a fixed spelling), the binary
// operator precedence (0 for non-operators) and the keyword tag.
type entry struct {
	name    string
	text    string
	prec    int
	keyword bool
}

// entries mirrors Solc's token list row for row. The array is indexed by
// Kind, so every Kind declared in kind.go must have exactly one row here.
var entries = [...]entry{
	EOS: {"EOS", "EOS", 0, false},

	LParen:      {"LParen", "(", 0, false},
	RParen:      {"RParen", ")", 0, false},
	LBrack:      {"LBrack", "[", 0, false},
	RBrack:      {"RBrack", "]", 0, false},
	LBrace:      {"LBrace", "{", 0, false},
	RBrace:      {"RBrace", "}", 0, false},
	Colon:       {"Colon", ":", 0, false},
	Semicolon:   {"Semicolon", ";", 0, false},
	Period:      {"Period", ".", 0, false},
	Conditional: {"Conditional", "?", 3, false},
	DoubleArrow: {"DoubleArrow", "=>", 0, false},
	RightArrow:  {"RightArrow", "->", 0, false},

	Assign:       {"Assign", "=", 2, false},
	AssignBitOr:  {"AssignBitOr", "|=", 2, false},
	AssignBitXor: {"AssignBitXor", "^=", 2, false},
	AssignBitAnd: {"AssignBitAnd", "&=", 2, false},
	AssignShl:    {"AssignShl", "<<=", 2, false},
	AssignSar:    {"AssignSar", ">>=", 2, false},
	AssignShr:    {"AssignShr", ">>>=", 2, false},
	AssignAdd:    {"AssignAdd", "+=", 2, false},
	AssignSub:    {"AssignSub", "-=", 2, false},
	AssignMul:    {"AssignMul", "*=", 2, false},
	AssignDiv:    {"AssignDiv", "/=", 2, false},
	AssignMod:    {"AssignMod", "%=", 2, false},

	Comma:  {"Comma", ",", 1, false},
	Or:     {"Or", "||", 4, false},
	And:    {"And", "&&", 5, false},
	BitOr:  {"BitOr", "|", 8, false},
	BitXor: {"BitXor", "^", 9, false},
	BitAnd: {"BitAnd", "&", 10, false},
	Shl:    {"Shl", "<<", 11, false},
	Sar:    {"Sar", ">>", 11, false},
	Shr:    {"Shr", ">>>", 11, false},
	Add:    {"Add", "+", 12, false},
	Sub:    {"Sub", "-", 12, false},
	Mul:    {"Mul", "*", 13, false},
	Div:    {"Div", "/", 13, false},
	Mod:    {"Mod", "%", 13, false},
	Exp:    {"Exp", "**", 14, false},

	Equal:              {"Equal", "==", 6, false},
	NotEqual:           {"NotEqual", "!=", 6, false},
	LessThan:           {"LessThan", "<", 7, false},
	GreaterThan:        {"GreaterThan", ">", 7, false},
	LessThanOrEqual:    {"LessThanOrEqual", "<=", 7, false},
	GreaterThanOrEqual: {"GreaterThanOrEqual", ">=", 7, false},

	Not:    {"Not", "!", 0, false},
	BitNot: {"BitNot", "~", 0, false},
	Inc:    {"Inc", "++", 0, false},
	Dec:    {"Dec", "--", 0, false},

	KwDelete:       {"KwDelete", "delete", 0, true},
	AssemblyAssign: {"AssemblyAssign", ":=", 2, false},

	KwAbstract:    {"KwAbstract", "abstract", 0, true},
	KwAnonymous:   {"KwAnonymous", "anonymous", 0, true},
	KwAs:          {"KwAs", "as", 0, true},
	KwAssembly:    {"KwAssembly", "assembly", 0, true},
	KwBreak:       {"KwBreak", "break", 0, true},
	KwCatch:       {"KwCatch", "catch", 0, true},
	KwConstant:    {"KwConstant", "constant", 0, true},
	KwConstructor: {"KwConstructor", "constructor", 0, true},
	KwContinue:    {"KwContinue", "continue", 0, true},
	KwContract:    {"KwContract", "contract", 0, true},
	KwDo:          {"KwDo", "do", 0, true},
	KwElse:        {"KwElse", "else", 0, true},
	KwEnum:        {"KwEnum", "enum", 0, true},
	KwEmit:        {"KwEmit", "emit", 0, true},
	KwEvent:       {"KwEvent", "event", 0, true},
	KwExternal:    {"KwExternal", "external", 0, true},
	KwFallback:    {"KwFallback", "fallback", 0, true},
	KwFor:         {"KwFor", "for", 0, true},
	KwFunction:    {"KwFunction", "function", 0, true},
	KwHex:         {"KwHex", "hex", 0, true},
	KwIf:          {"KwIf", "if", 0, true},
	KwIndexed:     {"KwIndexed", "indexed", 0, true},
	KwInterface:   {"KwInterface", "interface", 0, true},
	KwInternal:    {"KwInternal", "internal", 0, true},
	KwImmutable:   {"KwImmutable", "immutable", 0, true},
	KwImport:      {"KwImport", "import", 0, true},
	KwIs:          {"KwIs", "is", 0, true},
	KwLibrary:     {"KwLibrary", "library", 0, true},
	KwMapping:     {"KwMapping", "mapping", 0, true},
	KwMemory:      {"KwMemory", "memory", 0, true},
	KwModifier:    {"KwModifier", "modifier", 0, true},
	KwNew:         {"KwNew", "new", 0, true},
	KwOverride:    {"KwOverride", "override", 0, true},
	KwPayable:     {"KwPayable", "payable", 0, true},
	KwPublic:      {"KwPublic", "public", 0, true},
	KwPragma:      {"KwPragma", "pragma", 0, true},
	KwPrivate:     {"KwPrivate", "private", 0, true},
	KwPure:        {"KwPure", "pure", 0, true},
	KwReceive:     {"KwReceive", "receive", 0, true},
	KwReturn:      {"KwReturn", "return", 0, true},
	KwReturns:     {"KwReturns", "returns", 0, true},
	KwStorage:     {"KwStorage", "storage", 0, true},
	KwCalldata:    {"KwCalldata", "calldata", 0, true},
	KwStruct:      {"KwStruct", "struct", 0, true},
	KwThrow:       {"KwThrow", "throw", 0, true},
	KwTry:         {"KwTry", "try", 0, true},
	KwType:        {"KwType", "type", 0, true},
	KwUnchecked:   {"KwUnchecked", "unchecked", 0, true},
	KwUnicode:     {"KwUnicode", "unicode", 0, true},
	KwUsing:       {"KwUsing", "using", 0, true},
	KwView:        {"KwView", "view", 0, true},
	KwVirtual:     {"KwVirtual", "virtual", 0, true},
	KwWhile:       {"KwWhile", "while", 0, true},

	KwWei:     {"KwWei", "wei", 0, true},
	KwGwei:    {"KwGwei", "gwei", 0, true},
	KwEther:   {"KwEther", "ether", 0, true},
	KwSeconds: {"KwSeconds", "seconds", 0, true},
	KwMinutes: {"KwMinutes", "minutes", 0, true},
	KwHours:   {"KwHours", "hours", 0, true},
	KwDays:    {"KwDays", "days", 0, true},
	KwWeeks:   {"KwWeeks", "weeks", 0, true},
	KwYears:   {"KwYears", "years", 0, true},

	KwInt:     {"KwInt", "int", 0, true},
	KwUint:    {"KwUint", "uint", 0, true},
	KwBytes:   {"KwBytes", "bytes", 0, true},
	KwString:  {"KwString", "string", 0, true},
	KwAddress: {"KwAddress", "address", 0, true},
	KwBool:    {"KwBool", "bool", 0, true},
	KwFixed:   {"KwFixed", "fixed", 0, true},
	KwUfixed:  {"KwUfixed", "ufixed", 0, true},

	IntM:      {"IntM", "intM", 0, false},
	UintM:     {"UintM", "uintM", 0, false},
	BytesM:    {"BytesM", "bytesM", 0, false},
	FixedMxN:  {"FixedMxN", "fixedMxN", 0, false},
	UfixedMxN: {"UfixedMxN", "ufixedMxN", 0, false},

	TypesEnd: {"TypesEnd", "", 0, false},

	TrueLit:          {"TrueLit", "true", 0, true},
	FalseLit:         {"FalseLit", "false", 0, true},
	Number:           {"Number", "", 0, false},
	StringLit:        {"StringLit", "", 0, false},
	UnicodeStringLit: {"UnicodeStringLit", "", 0, false},
	HexStringLit:     {"HexStringLit", "", 0, false},
	CommentLit:       {"CommentLit", "", 0, false},

	Ident: {"Ident", "", 0, false},

	KwAfter:       {"KwAfter", "after", 0, true},
	KwAlias:       {"KwAlias", "alias", 0, true},
	KwApply:       {"KwApply", "apply", 0, true},
	KwAuto:        {"KwAuto", "auto", 0, true},
	KwByte:        {"KwByte", "byte", 0, true},
	KwCase:        {"KwCase", "case", 0, true},
	KwCopyof:      {"KwCopyof", "copyof", 0, true},
	KwDefault:     {"KwDefault", "default", 0, true},
	KwDefine:      {"KwDefine", "define", 0, true},
	KwFinal:       {"KwFinal", "final", 0, true},
	KwImplements:  {"KwImplements", "implements", 0, true},
	KwIn:          {"KwIn", "in", 0, true},
	KwInline:      {"KwInline", "inline", 0, true},
	KwLet:         {"KwLet", "let", 0, true},
	KwMacro:       {"KwMacro", "macro", 0, true},
	KwMatch:       {"KwMatch", "match", 0, true},
	KwMutable:     {"KwMutable", "mutable", 0, true},
	NullLit:       {"NullLit", "null", 0, true},
	KwOf:          {"KwOf", "of", 0, true},
	KwPartial:     {"KwPartial", "partial", 0, true},
	KwPromise:     {"KwPromise", "promise", 0, true},
	KwReference:   {"KwReference", "reference", 0, true},
	KwRelocatable: {"KwRelocatable", "relocatable", 0, true},
	KwSealed:      {"KwSealed", "sealed", 0, true},
	KwSizeof:      {"KwSizeof", "sizeof", 0, true},
	KwStatic:      {"KwStatic", "static", 0, true},
	KwSupports:    {"KwSupports", "supports", 0, true},
	KwSwitch:      {"KwSwitch", "switch", 0, true},
	KwTypedef:     {"KwTypedef", "typedef", 0, true},
	KwTypeof:      {"KwTypeof", "typeof", 0, true},
	KwVar:         {"KwVar", "var", 0, true},

	Leave: {"Leave", "leave", 0, false},

	NonExperimentalEnd: {"NonExperimentalEnd", "", 0, false},
	ExperimentalEnd:    {"ExperimentalEnd", "", 0, false},

	Illegal: {"Illegal", "ILLEGAL", 0, false},

	Whitespace: {"Whitespace", "", 0, false},
}

// Count reports the number of kinds in the table.
func Count() int { return len(entries) }

func (k Kind) valid() bool { return int(k) < len(entries) }

// String returns the declared name of the kind, e.g. "KwAbstract".
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return entries[k].name
}

// Text returns the fixed source spelling of the kind, or "" for kinds
// without one (literals, Ident, section markers).
func (k Kind) Text() string {
	if !k.valid() {
		return ""
	}
	return entries[k].text
}

// HasText reports whether the kind has a fixed source spelling.
func (k Kind) HasText() bool { return k.valid() && entries[k].text != "" }

// IsKeyword reports whether the kind is a reserved word: a name an
// identifier is not allowed to take. Yul builtins such as "leave" and the
// sized type families (intM, bytesM, ...) carry text but are not reserved.
func (k Kind) IsKeyword() bool { return k.valid() && entries[k].keyword }

// IsPunctOrOp reports whether the kind is a punctuator or operator.
// The range check relies on kind.go keeping LParen..AssemblyAssign
// contiguous; KwDelete sits inside that range and is excluded by its
// keyword tag.
func (k Kind) IsPunctOrOp() bool {
	return k >= LParen && k <= AssemblyAssign && !entries[k].keyword
}

// IsLiteral reports whether the kind is a literal token.
func (k Kind) IsLiteral() bool { return k >= TrueLit && k <= CommentLit }

// Precedence returns the binary operator precedence of the kind, or 0 for
// kinds that are not binary operators.
func (k Kind) Precedence() int {
	if !k.valid() {
		return 0
	}
	return entries[k].prec
}

// Keywords returns the reserved words of the table in declaration order.
// The returned slice is a fresh copy on every call.
func Keywords() []string {
	out := make([]string, 0, keywordCount)
	for _, e := range entries {
		if e.keyword {
			out = append(out, e.text)
		}
	}
	return out
}
