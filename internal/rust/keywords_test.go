package rust

import "testing"

func TestKeywords_Count(t *testing.T) {
	// 35 strict + 3 strict 2018 + 12 reserved + 1 reserved 2018.
	if got := len(Keywords()); got != 51 {
		t.Fatalf("len(Keywords()) = %d, want 51", got)
	}
}

func TestKeywords_Order(t *testing.T) {
	words := Keywords()
	if words[0] != "as" {
		t.Errorf("Keywords()[0] = %q, want %q", words[0], "as")
	}
	if last := words[len(words)-1]; last != "try" {
		t.Errorf("Keywords() last = %q, want %q", last, "try")
	}
	// async opens the 2018 section, right after the strict section.
	if words[35] != "async" {
		t.Errorf("Keywords()[35] = %q, want %q", words[35], "async")
	}
}

func TestKeywords_ReturnsFreshCopy(t *testing.T) {
	a := Keywords()
	a[0] = "mutated"
	if b := Keywords(); b[0] != "as" {
		t.Fatalf("Keywords() shares backing storage: got %q after mutation", b[0])
	}
}

func TestIsKeyword(t *testing.T) {
	for _, w := range []string{"fn", "crate", "Self", "dyn", "try", "yield"} {
		if !IsKeyword(w) {
			t.Errorf("IsKeyword(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"", "Fn", "SELF", "function", "contract", "r#fn"} {
		if IsKeyword(w) {
			t.Errorf("IsKeyword(%q) = true, want false", w)
		}
	}
}

func TestIsNonEscapable(t *testing.T) {
	for _, w := range []string{"crate", "self", "Self", "super"} {
		if !IsNonEscapable(w) {
			t.Errorf("IsNonEscapable(%q) = false, want true", w)
		}
		if !IsKeyword(w) {
			t.Errorf("non-escapable %q must also be a keyword", w)
		}
	}
	// "static" is reserved but escapes fine as r#static.
	if IsNonEscapable("static") {
		t.Error(`IsNonEscapable("static") = true, want false`)
	}
	if IsNonEscapable("SELF") {
		t.Error(`IsNonEscapable("SELF") = true, want false`)
	}
}

func TestNonEscapable_Sorted(t *testing.T) {
	got := NonEscapable()
	want := []string{"Self", "crate", "self", "super"}
	if len(got) != len(want) {
		t.Fatalf("NonEscapable() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NonEscapable()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
