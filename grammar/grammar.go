// Package grammar declares flut's production ladder: expression
// precedence climbing down to primary literals, assignment, and the
// single `als` conditional form, each as a rule list handed to the
// rules package's generic driver.
//
// CONDITIONAL and the statement/program loops fall outside what the
// generic attachment policy can express (it only ever rotates a
// produced node into Left/Right; it has no notion of an ordered
// statement sequence, or of a third "test" slot), so those two layers
// are written as plain recursive-descent Go, same as the original
// source's own parse() entry point.
package grammar

import (
	"flut/ast"
	"flut/rules"
	"flut/token"
)

// run calls rules.Parse and enforces "no token consumed on failure" at
// the production boundary, per the rollback policy chosen for flut's
// rule-engine parity.
func run(list []rules.Rule, tokens []token.Token, idx *int) *ast.Node {
	start := *idx
	node := rules.Parse(list, tokens, idx)
	if node == nil {
		*idx = start
	}
	return node
}

// primary matches a literal, or a parenthesized expression. The
// original source left the parenthesized case as an unimplemented TODO
// (parse_primary's LEX_SYM_HAAK_OPEN case falls straight through to
// `default: return NULL`); flut finishes it, since the AST already
// carries a GROUPING kind for exactly this.
func primary(tokens []token.Token, idx *int) *ast.Node {
	list := []rules.Rule{
		rules.Terminal(token.NUMBER, rules.Primary, ast.LITERAL),
		rules.OrRule(),
		rules.Terminal(token.STRING, rules.Primary, ast.LITERAL),
		rules.OrRule(),
		rules.Terminal(token.WAAR, rules.Primary, ast.LITERAL),
		rules.OrRule(),
		rules.Terminal(token.ONWAAR, rules.Primary, ast.LITERAL),
		rules.OrRule(),
		rules.GroupRule(
			rules.Primary,
			rules.Terminal(token.LPAREN, rules.Primary, ast.GROUPING),
			rules.NonTerminal(Expression, rules.Secondary),
			rules.TerminalNoNode(token.RPAREN, rules.None),
		),
	}
	return run(list, tokens, idx)
}

func unary(tokens []token.Token, idx *int) *ast.Node {
	list := []rules.Rule{
		rules.GroupRule(
			rules.Primary,
			rules.GroupRule(
				rules.Primary,
				rules.Terminal(token.BANG, rules.Primary, ast.INVERT),
				rules.OrRule(),
				rules.Terminal(token.MINUS, rules.Primary, ast.NEGATE),
			),
			rules.NonTerminal(unary, rules.Secondary),
		),
		rules.OrRule(),
		rules.NonTerminal(primary, rules.Primary),
	}
	return run(list, tokens, idx)
}

// binaryLadder builds the rule list shared by factor/term/comparison/
// equality: one operand production, then a ZERO_OR_MORE group of
// (operator operand) pairs where the operator is chosen by Or
// alternation. left-associativity falls out of the attachment policy
// in rules.Parse, not from anything here.
func binaryLadder(operand rules.Func, operators ...rules.Rule) []rules.Rule {
	opChoice := rules.GroupRule(rules.Primary, operators...)
	return []rules.Rule{
		rules.NonTerminal(operand, rules.Secondary),
		rules.GroupRule(
			rules.Primary,
			opChoice,
			rules.NonTerminal(operand, rules.Secondary),
		).Repeated(rules.ZeroOrMore),
	}
}

func factor(tokens []token.Token, idx *int) *ast.Node {
	list := binaryLadder(unary,
		rules.Terminal(token.SLASH, rules.Primary, ast.OPERATOR),
		rules.OrRule(),
		rules.Terminal(token.STAR, rules.Primary, ast.OPERATOR),
	)
	return run(list, tokens, idx)
}

func term(tokens []token.Token, idx *int) *ast.Node {
	list := binaryLadder(factor,
		rules.Terminal(token.MINUS, rules.Primary, ast.OPERATOR),
		rules.OrRule(),
		rules.Terminal(token.PLUS, rules.Primary, ast.OPERATOR),
	)
	return run(list, tokens, idx)
}

func comparison(tokens []token.Token, idx *int) *ast.Node {
	list := binaryLadder(term,
		rules.Terminal(token.GT, rules.Primary, ast.OPERATOR),
		rules.OrRule(),
		rules.Terminal(token.GTE, rules.Primary, ast.OPERATOR),
		rules.OrRule(),
		rules.Terminal(token.LT, rules.Primary, ast.OPERATOR),
		rules.OrRule(),
		rules.Terminal(token.LTE, rules.Primary, ast.OPERATOR),
	)
	return run(list, tokens, idx)
}

func equality(tokens []token.Token, idx *int) *ast.Node {
	list := binaryLadder(comparison,
		rules.Terminal(token.NEQ, rules.Primary, ast.OPERATOR),
		rules.OrRule(),
		rules.Terminal(token.EQ, rules.Primary, ast.OPERATOR),
	)
	return run(list, tokens, idx)
}

// Expression is the entry point of the precedence ladder.
func Expression(tokens []token.Token, idx *int) *ast.Node {
	list := []rules.Rule{rules.NonTerminal(equality, rules.Primary)}
	return run(list, tokens, idx)
}

func assignment(tokens []token.Token, idx *int) *ast.Node {
	list := []rules.Rule{
		rules.Terminal(token.NAME, rules.Secondary, ast.IDENTIFIER),
		rules.Terminal(token.ASSIGN, rules.Primary, ast.ASSIGNMENT),
		rules.NonTerminal(Expression, rules.Secondary),
	}
	return run(list, tokens, idx)
}

func skipTrivia(tokens []token.Token, idx *int) {
	for *idx < len(tokens) {
		switch tokens[*idx].Kind {
		case token.SPACE, token.NEWLINE:
			*idx++
		default:
			return
		}
	}
}

func peek(tokens []token.Token, idx int) token.Token {
	if idx >= len(tokens) {
		return token.Token{Kind: token.EOF}
	}
	return tokens[idx]
}

// body parses statements until it hits the given closing token kind
// (RBRACE for an `als` body, EOF for the top-level program), without
// consuming the closer.
func body(tokens []token.Token, idx *int, closer token.Kind) *ast.Node {
	b := ast.NewBody()
	for {
		skipTrivia(tokens, idx)
		if peek(tokens, *idx).Kind == closer {
			return b
		}
		stmt := Statement(tokens, idx)
		if stmt == nil {
			return b
		}
		b.Append(stmt)
	}
}

// ifStmt parses `als <expr> { <body> }`. CONDITIONAL's Left (the
// else-body) is always nil: this grammar has no else clause.
func ifStmt(tokens []token.Token, idx *int) *ast.Node {
	start := *idx
	skipTrivia(tokens, idx)
	if peek(tokens, *idx).Kind != token.ALS {
		*idx = start
		return nil
	}
	*idx++

	cond := Expression(tokens, idx)
	if cond == nil {
		*idx = start
		return nil
	}

	skipTrivia(tokens, idx)
	if peek(tokens, *idx).Kind != token.LBRACE {
		*idx = start
		return nil
	}
	*idx++

	thenBody := body(tokens, idx, token.RBRACE)

	skipTrivia(tokens, idx)
	if peek(tokens, *idx).Kind != token.RBRACE {
		*idx = start
		return nil
	}
	*idx++

	return &ast.Node{Kind: ast.CONDITIONAL, Expression: cond, Right: thenBody}
}

// Statement tries `if` then `assignment`, matching §4.3's top-level
// loop. A nil from both means "no statement here".
func Statement(tokens []token.Token, idx *int) *ast.Node {
	if node := ifStmt(tokens, idx); node != nil {
		return node
	}
	return assignment(tokens, idx)
}

// Program parses every statement in tokens into a single root BODY.
func Program(tokens []token.Token) *ast.Node {
	idx := 0
	return body(tokens, &idx, token.EOF)
}
