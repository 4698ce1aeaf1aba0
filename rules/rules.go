// Package rules implements the generic rule engine that drives flut's
// parser: a declarative list of rules is walked by a single function,
// Parse, which builds an AST fragment out of whatever rules match.
//
// This is a sum type rather than the heap-allocated structs with raw
// function pointers and mutable group slices of the original
// implementation: a Rule is one of Terminal, NonTerminal, Group or Or,
// and productions are plain []Rule values that each production
// function builds when it is called.
package rules

import (
	"flut/ast"
	"flut/token"
)

// Priority controls how a produced node attaches to the rule list's
// current parent, per the attachment policy below.
type Priority int

const (
	// None discards whatever node the rule produced.
	None Priority = iota
	// Primary rotates the produced node above the current parent.
	Primary
	// Secondary attaches the produced node as a child of the current parent.
	Secondary
)

// Repeat controls whether a rule (almost always a Group) is retried
// after a successful match.
type Repeat int

const (
	RepeatNone Repeat = iota
	ZeroOrMore
	OneOrMore
)

type kind int

const (
	terminalKind kind = iota
	nonTerminalKind
	groupKind
	orKind
)

// Func is the signature every grammar production function must have:
// consume tokens starting at *idx, returning the node produced or nil
// on failure. A failing Func must leave *idx exactly where it found it;
// Parse itself does not restore *idx, so the grammar package's run
// wrapper snapshots and restores it for each production entry point.
type Func func(tokens []token.Token, idx *int) *ast.Node

// Rule is one production step: a terminal token match, a call into
// another production, a nested group, or an Or separator.
type Rule struct {
	kind kind

	// Terminal
	symbol   token.Kind
	nodeKind ast.Kind
	hasNode  bool

	// NonTerminal
	fn Func

	// Group
	children []Rule

	repeat   Repeat
	priority Priority
}

// Terminal matches a single token of the given symbol and converts it
// into an AST node of nodeKind.
func Terminal(symbol token.Kind, priority Priority, nodeKind ast.Kind) Rule {
	return Rule{kind: terminalKind, symbol: symbol, nodeKind: nodeKind, hasNode: true, priority: priority}
}

// TerminalNoNode matches a single token of the given symbol but
// produces no AST node (the token is consumed and discarded).
func TerminalNoNode(symbol token.Kind, priority Priority) Rule {
	return Rule{kind: terminalKind, symbol: symbol, hasNode: false, priority: priority}
}

// NonTerminal invokes another production function.
func NonTerminal(fn Func, priority Priority) Rule {
	return Rule{kind: nonTerminalKind, fn: fn, priority: priority}
}

// Repeated returns a copy of a Group rule with its repeat flag set.
func (r Rule) Repeated(repeat Repeat) Rule {
	r.repeat = repeat
	return r
}

// GroupRule recurses the driver into a nested rule list.
func GroupRule(priority Priority, children ...Rule) Rule {
	return Rule{kind: groupKind, children: children, priority: priority}
}

// OrRule is a pure separator: it never matches anything itself, but
// tells the driver that the rule before it and the rule after it are
// alternatives.
func OrRule() Rule {
	return Rule{kind: orKind}
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

// tokenToNode converts a matched terminal token into the AST node shape
// its rule declared, mirroring the original lexer_symbol_to_node.
func tokenToNode(nodeKind ast.Kind, tok token.Token) *ast.Node {
	switch nodeKind {
	case ast.IDENTIFIER:
		return ast.NewIdentifier(tok.Text, tok.Line)
	case ast.OPERATOR:
		op, ok := ast.Operators[tok.Kind]
		if !ok {
			return &ast.Node{Kind: ast.OPERATOR, Line: tok.Line}
		}
		return ast.NewOperator(op, tok.Line)
	case ast.LITERAL:
		switch tok.Kind {
		case token.STRING:
			return ast.NewString(tok.Text, tok.Line)
		case token.WAAR:
			return ast.NewBoolean(true, tok.Line)
		case token.ONWAAR:
			return ast.NewBoolean(false, tok.Line)
		default:
			return ast.NewNumber(tok.Number, tok.Line)
		}
	default:
		return &ast.Node{Kind: nodeKind, Line: tok.Line}
	}
}

// attach applies the priority attachment policy from §4.2 step 4. It
// returns the (possibly new) parent.
func attach(parent *ast.Node, produced *ast.Node, priority Priority) *ast.Node {
	if produced == nil {
		return parent
	}
	switch {
	case priority == None:
		return parent
	case parent == nil:
		return produced
	case priority == Primary && produced.Right == nil:
		produced.Right = parent
		return produced
	case priority == Primary && produced.Left == nil:
		produced.Left = parent
		return produced
	case priority == Secondary && parent.Right == nil:
		parent.Right = produced
		return parent
	case parent.Left == nil:
		parent.Left = parent.Right
		parent.Right = produced
		return parent
	default:
		// Attachment failed silently: both child slots are already
		// occupied and this rule can't rotate above the parent.
		return parent
	}
}

// Parse walks rules against tokens starting at *idx, mutating *idx as it
// consumes tokens, and returns the AST fragment it built or nil on
// failure. This is the generic driver: productions are just Rule lists
// that call back into Parse, directly or via a Group.
func Parse(list []Rule, tokens []token.Token, idx *int) *ast.Node {
	var parent *ast.Node

	i := 0
	matchesAtI := 0
	for i < len(list) {
		skipTrivia(tokens, idx)

		if peek(tokens, *idx).Kind == token.SEMICOLON {
			*idx++
			return parent
		}

		rule := list[i]
		if rule.kind == orKind {
			// Only reached when the alternative before this separator
			// matched: the remaining alternatives are not tried.
			return parent
		}
		matched, produced := matchRule(rule, tokens, idx)

		if !matched {
			if i+1 < len(list) && list[i+1].kind == orKind {
				i += 2
				matchesAtI = 0
				continue
			}
			if rule.repeat == ZeroOrMore {
				i++
				matchesAtI = 0
				continue
			}
			if rule.repeat == OneOrMore && matchesAtI > 0 {
				i++
				matchesAtI = 0
				continue
			}
			return nil
		}

		parent = attach(parent, produced, rule.priority)
		matchesAtI++

		if rule.repeat == ZeroOrMore || rule.repeat == OneOrMore {
			continue
		}
		i++
		matchesAtI = 0
	}

	return parent
}

// matchRule attempts a single rule once.
func matchRule(rule Rule, tokens []token.Token, idx *int) (matched bool, produced *ast.Node) {
	switch rule.kind {
	case terminalKind:
		if peek(tokens, *idx).Kind != rule.symbol {
			return false, nil
		}
		tok := tokens[*idx]
		*idx++
		if !rule.hasNode {
			return true, nil
		}
		return true, tokenToNode(rule.nodeKind, tok)
	case nonTerminalKind:
		node := rule.fn(tokens, idx)
		if node == nil {
			return false, nil
		}
		return true, node
	case groupKind:
		node := Parse(rule.children, tokens, idx)
		if node == nil {
			return false, nil
		}
		return true, node
	default:
		return false, nil
	}
}
