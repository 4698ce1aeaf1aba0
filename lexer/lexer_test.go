package lexer

import (
	"testing"

	"flut/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func assertKinds(t *testing.T, src string, want []token.Kind) {
	t.Helper()
	got := kinds(New(src).Scan())
	if len(got) != len(want) {
		t.Fatalf("Scan(%q) produced %d tokens %v, want %d %v", src, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Scan(%q)[%d] = %s, want %s", src, i, got[i], want[i])
		}
	}
}

func TestLeadingNewline(t *testing.T) {
	tokens := New("").Scan()
	if len(tokens) != 1 || tokens[0].Kind != token.NEWLINE || tokens[0].Line != 1 {
		t.Fatalf("empty input should yield a single synthetic NEWLINE{Line:1}, got %v", tokens)
	}
}

func TestOperators(t *testing.T) {
	assertKinds(t, "== != <= >= < > = + - * / !", []token.Kind{
		token.NEWLINE,
		token.EQ, token.SPACE,
		token.NEQ, token.SPACE,
		token.LTE, token.SPACE,
		token.GTE, token.SPACE,
		token.LT, token.SPACE,
		token.GT, token.SPACE,
		token.ASSIGN, token.SPACE,
		token.PLUS, token.SPACE,
		token.MINUS, token.SPACE,
		token.STAR, token.SPACE,
		token.SLASH, token.SPACE,
		token.BANG,
	})
}

func TestKeywords(t *testing.T) {
	assertKinds(t, "als waar onwaar functie teruggave foo", []token.Kind{
		token.NEWLINE,
		token.ALS, token.SPACE,
		token.WAAR, token.SPACE,
		token.ONWAAR, token.SPACE,
		token.FUNCTIE, token.SPACE,
		token.TERUGGAVE, token.SPACE,
		token.NAME,
	})
}

func TestNameAllowsDashAndUnderscore(t *testing.T) {
	tokens := New("foo-bar_baz").Scan()
	if tokens[1].Kind != token.NAME || tokens[1].Text != "foo-bar_baz" {
		t.Fatalf("got %v", tokens)
	}
}

func TestStringLiteral(t *testing.T) {
	tokens := New(`"hoi"`).Scan()
	if tokens[1].Kind != token.STRING || tokens[1].Text != "hoi" {
		t.Fatalf("got %v", tokens)
	}
}

func TestUnterminatedStringConsumesToEnd(t *testing.T) {
	tokens := New(`"hoi`).Scan()
	if tokens[1].Kind != token.STRING || tokens[1].Text != "hoi" {
		t.Fatalf("got %v", tokens)
	}
}

func TestDecimalNumber(t *testing.T) {
	tokens := New("1234").Scan()
	if tokens[1].Kind != token.NUMBER || tokens[1].Number != 1234 {
		t.Fatalf("got %v", tokens)
	}
}

func TestNewlineTracksLine(t *testing.T) {
	tokens := New("x\ny").Scan()
	var lines []int32
	for _, tok := range tokens {
		if tok.Kind == token.NEWLINE {
			lines = append(lines, tok.Line)
		}
	}
	if len(lines) != 2 || lines[0] != 1 || lines[1] != 2 {
		t.Fatalf("expected NEWLINE lines [1 2], got %v", lines)
	}
}

func TestUnknownByte(t *testing.T) {
	tokens := New("@").Scan()
	if tokens[1].Kind != token.UNKNOWN {
		t.Fatalf("got %v", tokens)
	}
}

func TestTriviaTransparency(t *testing.T) {
	// Stripping SPACE/NEWLINE from the token stream should not change the
	// non-trivia token sequence, matching the §8 "trivia transparency"
	// property.
	withTrivia := New("x = 1 + 2;\n").Scan()
	withoutTrivia := New("x=1+2;").Scan()

	strip := func(toks []token.Token) []token.Kind {
		var out []token.Kind
		for _, tok := range toks {
			if tok.Kind == token.SPACE || tok.Kind == token.NEWLINE {
				continue
			}
			out = append(out, tok.Kind)
		}
		return out
	}

	a, b := strip(withTrivia), strip(withoutTrivia)
	if len(a) != len(b) {
		t.Fatalf("trivia-stripped streams differ in length: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("trivia-stripped streams differ at %d: %v vs %v", i, a, b)
		}
	}
}
