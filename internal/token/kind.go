package token

// Kind identifies one entry of the Solidity token table.
//
// The numbering follows Solc's master token list, so ordinal comparisons
// against the section markers (TypesEnd, NonExperimentalEnd, ExperimentalEnd)
// partition the table the same way Solc's TokenTraits do:
// https://github.com/ethereum/solidity/blob/develop/liblangutil/Token.h
type Kind uint8

const (
	// End of source indicator.
	EOS Kind = iota

	// Punctuators (ECMA-262, section 7.7).
	LParen      // (
	RParen      // )
	LBrack      // [
	RBrack      // ]
	LBrace      // {
	RBrace      // }
	Colon       // :
	Semicolon   // ;
	Period      // .
	Conditional // ?
	DoubleArrow // =>
	RightArrow  // ->

	// Assignment operators, in order of AssignmentOp.
	Assign       // =
	AssignBitOr  // |=
	AssignBitXor // ^=
	AssignBitAnd // &=
	AssignShl    // <<=
	AssignSar    // >>=
	AssignShr    // >>>=
	AssignAdd    // +=
	AssignSub    // -=
	AssignMul    // *=
	AssignDiv    // /=
	AssignMod    // %=

	// Binary operators, sorted by precedence.
	Comma  // ,
	Or     // ||
	And    // &&
	BitOr  // |
	BitXor // ^
	BitAnd // &
	Shl    // <<
	Sar    // >>
	Shr    // >>>
	Add    // +
	Sub    // -
	Mul    // *
	Div    // /
	Mod    // %
	Exp    // **

	// Comparison operators, sorted by precedence.
	Equal              // ==
	NotEqual           // !=
	LessThan           // <
	GreaterThan        // >
	LessThanOrEqual    // <=
	GreaterThanOrEqual // >=

	// Unary operators.
	Not    // !
	BitNot // ~
	Inc    // ++
	Dec    // --

	KwDelete       // delete
	AssemblyAssign // :=

	// Keywords.
	KwAbstract    // abstract
	KwAnonymous   // anonymous
	KwAs          // as
	KwAssembly    // assembly
	KwBreak       // break
	KwCatch       // catch
	KwConstant    // constant
	KwConstructor // constructor
	KwContinue    // continue
	KwContract    // contract
	KwDo          // do
	KwElse        // else
	KwEnum        // enum
	KwEmit        // emit
	KwEvent       // event
	KwExternal    // external
	KwFallback    // fallback
	KwFor         // for
	KwFunction    // function
	KwHex         // hex
	KwIf          // if
	KwIndexed     // indexed
	KwInterface   // interface
	KwInternal    // internal
	KwImmutable   // immutable
	KwImport      // import
	KwIs          // is
	KwLibrary     // library
	KwMapping     // mapping
	KwMemory      // memory
	KwModifier    // modifier
	KwNew         // new
	KwOverride    // override
	KwPayable     // payable
	KwPublic      // public
	KwPragma      // pragma
	KwPrivate     // private
	KwPure        // pure
	KwReceive     // receive
	KwReturn      // return
	KwReturns     // returns
	KwStorage     // storage
	KwCalldata    // calldata
	KwStruct      // struct
	KwThrow       // throw
	KwTry         // try
	KwType        // type
	KwUnchecked   // unchecked
	KwUnicode     // unicode
	KwUsing       // using
	KwView        // view
	KwVirtual     // virtual
	KwWhile       // while

	// Ether subdenominations.
	KwWei     // wei
	KwGwei    // gwei
	KwEther   // ether
	KwSeconds // seconds
	KwMinutes // minutes
	KwHours   // hours
	KwDays    // days
	KwWeeks   // weeks
	KwYears   // years

	// Type keywords.
	KwInt     // int
	KwUint    // uint
	KwBytes   // bytes
	KwString  // string
	KwAddress // address
	KwBool    // bool
	KwFixed   // fixed
	KwUfixed  // ufixed

	// Sized type name families; the scanner resolves M and N itself.
	IntM      // intM
	UintM     // uintM
	BytesM    // bytesM
	FixedMxN  // fixedMxN
	UfixedMxN // ufixedMxN

	// TypesEnd marks the end of the type keyword section.
	TypesEnd

	// Literals.
	TrueLit          // true
	FalseLit         // false
	Number           // number
	StringLit        // string literal
	UnicodeStringLit // unicode string literal
	HexStringLit     // hex string literal
	CommentLit       // comment

	// Ident is any identifier that is not a reserved word.
	Ident

	// Keywords reserved for future use.
	KwAfter       // after
	KwAlias       // alias
	KwApply       // apply
	KwAuto        // auto
	KwByte        // byte
	KwCase        // case
	KwCopyof      // copyof
	KwDefault     // default
	KwDefine      // define
	KwFinal       // final
	KwImplements  // implements
	KwIn          // in
	KwInline      // inline
	KwLet         // let
	KwMacro       // macro
	KwMatch       // match
	KwMutable     // mutable
	NullLit       // null
	KwOf          // of
	KwPartial     // partial
	KwPromise     // promise
	KwReference   // reference
	KwRelocatable // relocatable
	KwSealed      // sealed
	KwSizeof      // sizeof
	KwStatic      // static
	KwSupports    // supports
	KwSwitch      // switch
	KwTypedef     // typedef
	KwTypeof      // typeof
	KwVar         // var

	// Leave is a Yul builtin; reserved only inside assembly blocks.
	Leave // leave

	// NonExperimentalEnd marks the end of the stable token section.
	NonExperimentalEnd
	// ExperimentalEnd marks the end of the experimental token section.
	ExperimentalEnd

	// Illegal is any token the scanner cannot classify.
	Illegal

	// Whitespace is scanned but never surfaces in the token stream.
	Whitespace
)
