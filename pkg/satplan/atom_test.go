package satplan

import "testing"

func TestIsVariableToken(t *testing.T) {
	t.Run("lowercase-initial is a variable", func(t *testing.T) {
		if !IsVariableToken("x") {
			t.Error("expected x to be a variable token")
		}
		if !IsVariableToken("block1") {
			t.Error("expected block1 to be a variable token")
		}
	})

	t.Run("uppercase-initial is a constant", func(t *testing.T) {
		if IsVariableToken("A") {
			t.Error("expected A to not be a variable token")
		}
		if IsVariableToken("Block1") {
			t.Error("expected Block1 to not be a variable token")
		}
	})

	t.Run("empty token is not a variable", func(t *testing.T) {
		if IsVariableToken("") {
			t.Error("expected empty token to not be a variable")
		}
	})
}

func TestParseLiteral(t *testing.T) {
	cases := []struct {
		name    string
		tok     string
		want    Literal
		wantNeg bool
		ok      bool
	}{
		{"positive with args", "at(a,b)", Literal{Name: "at", Args: []string{"a", "b"}}, false, true},
		{"negated", "-clear(b)", Literal{Negated: true, Name: "clear", Args: []string{"b"}}, true, true},
		{"nullary", "handempty()", Literal{Name: "handempty"}, false, true},
		{"malformed missing paren", "at(a,b", Literal{}, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := parseLiteral(c.tok)
			if ok != c.ok {
				t.Fatalf("parseLiteral(%q) ok = %v, want %v", c.tok, ok, c.ok)
			}
			if !ok {
				return
			}
			if got.Negated != c.want.Negated || got.Name != c.want.Name || got.String() != c.want.String() {
				t.Errorf("parseLiteral(%q) = %+v, want %+v", c.tok, got, c.want)
			}
		})
	}
}

func TestLiteralCanonicalAtom(t *testing.T) {
	l := Literal{Name: "at", Args: []string{"a", "b"}}
	if got := l.CanonicalAtom(); got != "at a b" {
		t.Errorf("CanonicalAtom() = %q, want %q", got, "at a b")
	}
	if got := l.Negate().String(); got != "-at a b" {
		t.Errorf("Negate().String() = %q, want %q", got, "-at a b")
	}
}

func TestTokenizeLiterals(t *testing.T) {
	toks := tokenizeLiterals("at(a,b) -clear(b)  handempty()")
	want := []string{"at(a,b)", "-clear(b)", "handempty()"}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, toks[i], want[i])
		}
	}
}

func TestVariablesOf(t *testing.T) {
	l := Literal{Name: "on", Args: []string{"x", "A", "x", "y"}}
	vars := variablesOf(l)
	want := []string{"x", "y"}
	if len(vars) != len(want) {
		t.Fatalf("got %v, want %v", vars, want)
	}
	for i := range want {
		if vars[i] != want[i] {
			t.Errorf("variablesOf()[%d] = %q, want %q", i, vars[i], want[i])
		}
	}
}
