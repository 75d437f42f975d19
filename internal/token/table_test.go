package token

import (
	"testing"
)

func TestTableHasNoGaps(t *testing.T) {
	if Count() != 172 {
		t.Fatalf("Count() = %d, want 172", Count())
	}
	if int(Whitespace) != Count()-1 {
		t.Fatalf("Whitespace = %d, want last index %d", Whitespace, Count()-1)
	}
	for i, e := range entries {
		if e.name == "" {
			t.Errorf("entries[%d] has no name: kind declared but row missing", i)
		}
	}
}

func TestKeywordRowsHaveText(t *testing.T) {
	for i, e := range entries {
		if e.keyword && e.text == "" {
			t.Errorf("%v is tagged keyword but has no spelling", Kind(i))
		}
	}
}

func TestSpellingsUnique(t *testing.T) {
	seen := make(map[string]Kind, len(entries))
	for i, e := range entries {
		if e.text == "" {
			continue
		}
		if prev, dup := seen[e.text]; dup {
			t.Errorf("spelling %q is shared by %v and %v", e.text, prev, Kind(i))
		}
		seen[e.text] = Kind(i)
	}
}

func TestKeywords_OrderAndCount(t *testing.T) {
	words := Keywords()
	if len(words) != 104 {
		t.Fatalf("len(Keywords()) = %d, want 104", len(words))
	}
	if words[0] != "delete" {
		t.Errorf("Keywords()[0] = %q, want %q", words[0], "delete")
	}
	if words[1] != "abstract" {
		t.Errorf("Keywords()[1] = %q, want %q", words[1], "abstract")
	}
	if last := words[len(words)-1]; last != "var" {
		t.Errorf("Keywords() last = %q, want %q", last, "var")
	}
}

func TestKeywords_ReturnsFreshCopy(t *testing.T) {
	a := Keywords()
	a[0] = "mutated"
	b := Keywords()
	if b[0] != "delete" {
		t.Fatalf("Keywords() shares backing storage: got %q after mutation", b[0])
	}
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		kind      Kind
		punctOrOp bool
		keyword   bool
		literal   bool
	}{
		{LParen, true, false, false},
		{AssemblyAssign, true, false, false},
		{Comma, true, false, false},
		{Exp, true, false, false},
		{KwDelete, false, true, false},
		{KwAbstract, false, true, false},
		{TrueLit, false, true, true},
		{Number, false, false, true},
		{CommentLit, false, false, true},
		{Ident, false, false, false},
		{Leave, false, false, false},
		{Illegal, false, false, false},
	}
	for _, c := range cases {
		if got := c.kind.IsPunctOrOp(); got != c.punctOrOp {
			t.Errorf("%v.IsPunctOrOp() = %v, want %v", c.kind, got, c.punctOrOp)
		}
		if got := c.kind.IsKeyword(); got != c.keyword {
			t.Errorf("%v.IsKeyword() = %v, want %v", c.kind, got, c.keyword)
		}
		if got := c.kind.IsLiteral(); got != c.literal {
			t.Errorf("%v.IsLiteral() = %v, want %v", c.kind, got, c.literal)
		}
	}
}

func TestPrecedence(t *testing.T) {
	cases := map[Kind]int{
		Comma:       1,
		Assign:      2,
		Conditional: 3,
		Or:          4,
		And:         5,
		Equal:       6,
		LessThan:    7,
		BitOr:       8,
		Shl:         11,
		Mul:         13,
		Exp:         14,
		LParen:      0,
		KwDelete:    0,
	}
	for kind, want := range cases {
		if got := kind.Precedence(); got != want {
			t.Errorf("%v.Precedence() = %d, want %d", kind, got, want)
		}
	}
}

func TestString(t *testing.T) {
	if got := EOS.String(); got != "EOS" {
		t.Errorf("EOS.String() = %q", got)
	}
	if got := KwAbstract.String(); got != "KwAbstract" {
		t.Errorf("KwAbstract.String() = %q", got)
	}
	if got := Kind(255).String(); got != "Kind(255)" {
		t.Errorf("Kind(255).String() = %q", got)
	}
}
