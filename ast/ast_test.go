package ast

import (
	"bytes"
	"strings"
	"testing"

	"flut/token"
)

func TestOperatorsMapping(t *testing.T) {
	cases := map[token.Kind]Operator{
		token.PLUS:  ADD,
		token.MINUS: SUBTRACT,
		token.STAR:  MULTIPLY,
		token.SLASH: DIVIDE,
		token.EQ:    EQ,
		token.NEQ:   NEQ,
		token.LT:    LT,
		token.LTE:   LTE,
		token.GT:    GT,
		token.GTE:   GTE,
	}
	for tok, want := range cases {
		got, ok := Operators[tok]
		if !ok || got != want {
			t.Errorf("Operators[%s] = %v, want %v", tok, got, want)
		}
	}
}

func TestLeftAssociativeChainShape(t *testing.T) {
	// a - b - c should be built as ((a - b) - c): root.Left.Left == a,
	// root.Left.Right == b, root.Right == c.
	a := NewIdentifier("a", 1)
	b := NewIdentifier("b", 1)
	c := NewIdentifier("c", 1)

	inner := NewOperator(SUBTRACT, 1)
	inner.Left = a
	inner.Right = b

	root := NewOperator(SUBTRACT, 1)
	root.Left = inner
	root.Right = c

	if root.Left.Left != a || root.Left.Right != b || root.Right != c {
		t.Fatalf("left-associative shape violated: %+v", root)
	}
}

func TestAppendBuildsBody(t *testing.T) {
	body := NewBody()
	body.Append(NewIdentifier("x", 1))
	body.Append(NewIdentifier("y", 2))

	if len(body.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(body.Statements))
	}
	if body.Statements[0].Name != "x" || body.Statements[1].Name != "y" {
		t.Fatalf("statements out of order: %+v", body.Statements)
	}
}

func TestDumpProducesJSON(t *testing.T) {
	body := NewBody()
	assign := &Node{Kind: ASSIGNMENT, Left: NewIdentifier("x", 1), Right: NewNumber(7, 1)}
	body.Append(assign)

	var buf bytes.Buffer
	if err := Dump(&buf, body); err != nil {
		t.Fatalf("Dump returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"kind": "BODY"`, `"kind": "ASSIGNMENT"`, `"name": "x"`, `"number": 7`} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump output missing %q, got:\n%s", want, out)
		}
	}
}

func TestDumpNilRoot(t *testing.T) {
	var buf bytes.Buffer
	if err := Dump(&buf, nil); err != nil {
		t.Fatalf("Dump(nil) returned error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "null" {
		t.Errorf("Dump(nil) = %q, want \"null\"", buf.String())
	}
}
