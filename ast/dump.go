package ast

import (
	"encoding/json"
	"io"
)

// jsonNode is the shape Dump serializes a Node into. Unset fields are
// omitted so the dump stays readable for small programs.
type jsonNode struct {
	Kind       string      `json:"kind"`
	Name       string      `json:"name,omitempty"`
	Op         string      `json:"op,omitempty"`
	LitKind    string      `json:"litKind,omitempty"`
	Number     *int64      `json:"number,omitempty"`
	Text       string      `json:"text,omitempty"`
	Bool       *bool       `json:"bool,omitempty"`
	Left       *jsonNode   `json:"left,omitempty"`
	Right      *jsonNode   `json:"right,omitempty"`
	Expression *jsonNode   `json:"expression,omitempty"`
	Statements []*jsonNode `json:"statements,omitempty"`
}

func toJSONNode(n *Node) *jsonNode {
	if n == nil {
		return nil
	}
	out := &jsonNode{
		Kind:       n.Kind.String(),
		Left:       toJSONNode(n.Left),
		Right:      toJSONNode(n.Right),
		Expression: toJSONNode(n.Expression),
	}
	switch n.Kind {
	case IDENTIFIER:
		out.Name = n.Name
	case OPERATOR:
		out.Op = n.Op.String()
	case LITERAL:
		out.LitKind = n.LitKind.String()
		switch n.LitKind {
		case NUMBER:
			v := n.Number
			out.Number = &v
		case STRING:
			out.Text = n.Text
		case BOOLEAN:
			v := n.Bool
			out.Bool = &v
		}
	case BODY:
		for _, stmt := range n.Statements {
			out.Statements = append(out.Statements, toJSONNode(stmt))
		}
	}
	return out
}

// Dump writes an indented JSON rendering of the tree rooted at n to w,
// mirroring the teacher's JSON AST dump.
func Dump(w io.Writer, root *Node) error {
	data, err := json.MarshalIndent(toJSONNode(root), "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
