// Package ast defines syntax tree of EBNF grammars, ordering and canonical forms of trees,
// operations on rule lists, and printers.
//
// A tree is built from exactly eight node types: Integer, String, Ident, Unary, Binary, Seq,
// Special, and Empty. Every child is exclusively owned by its parent, Clone and SortedClone
// produce deep copies. Nodes must not be modified after construction except via Seq.Append.
//
// Grammar root is a Seq of RulesSeq kind containing rule nodes, i.e. Binary nodes of RuleOp kind
// with Ident on the left and Seq of ExprSeq kind on the right. Alternatives of ExprSeq
// are Seq nodes of TermsSeq kind.
package ast

import (
	"fmt"
	"strings"
)

// NodeKind identifies concrete node type. Kinds are declared in sorting order.
type NodeKind int

const (
	IntegerNode NodeKind = iota
	StringNode
	BinaryNode
	IdentNode
	UnaryNode
	SeqNode
	SpecialNode
	EmptyNode
)

var nodeKindNames = [...]string{"integer", "string", "binary", "ident", "unary", "seq", "special", "empty"}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
	return nodeKindNames[k]
}

// UnaryOp is a sub-tag of Unary node. Ops are declared in byte order of their names.
type UnaryOp int

const (
	StarOp     UnaryOp = iota // "*", zero or more repetitions (BNF only)
	PlusOp                    // "+", one or more repetitions (BNF only)
	QuestionOp                // "?", optional (BNF only)
	GroupOp                   // "( ... )"
	OptionalOp                // "[ ... ]"
	RepeatedOp                // "{ ... }"
)

var unaryOpNames = [...]string{"*", "+", "?", "group", "optional", "repeated"}

func (op UnaryOp) String() string {
	if op < 0 || int(op) >= len(unaryOpNames) {
		return fmt.Sprintf("UnaryOp(%d)", int(op))
	}
	return unaryOpNames[op]
}

// IsPostfix reports whether op is one of BNF postfix operators.
func (op UnaryOp) IsPostfix() bool {
	return op <= QuestionOp
}

// BinaryOp is a sub-tag of Binary node. Ops are declared in byte order of their names.
type BinaryOp int

const (
	TimesOp  BinaryOp = iota // "*", integer repetition
	ExceptOp                 // "-", exception
	RuleOp                   // rule definition
)

var binaryOpNames = [...]string{"*", "-", "rule"}

func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binaryOpNames) {
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
	return binaryOpNames[op]
}

// SeqTag is a sub-tag of Seq node. Tags are declared in byte order of their names.
type SeqTag int

const (
	ExprSeq  SeqTag = iota // alternatives
	RulesSeq               // rule list
	TermsSeq               // concatenation
)

var seqTagNames = [...]string{"expr", "rules", "terms"}

func (tag SeqTag) String() string {
	if tag < 0 || int(tag) >= len(seqTagNames) {
		return fmt.Sprintf("SeqTag(%d)", int(tag))
	}
	return seqTagNames[tag]
}

// Node is a syntax tree node. The set of implementations is closed.
type Node interface {
	Kind() NodeKind
	node()
}

type Integer struct {
	Value int
}

type String struct {
	// Text contains unquoted string, may be empty.
	Text string
}

type Ident struct {
	// Name contains normalized name: words are separated with NameSeparator.
	Name string
}

type Special struct {
	// Text contains raw text between question marks.
	Text string
}

type Empty struct{}

type Unary struct {
	Op UnaryOp
	// X may be nil.
	X Node

	canonical bool
}

type Binary struct {
	Op   BinaryOp
	X, Y Node

	canonical bool
}

type Seq struct {
	Tag   SeqTag
	items []Node

	canonical bool
}

func (*Integer) Kind() NodeKind { return IntegerNode }
func (*String) Kind() NodeKind  { return StringNode }
func (*Ident) Kind() NodeKind   { return IdentNode }
func (*Special) Kind() NodeKind { return SpecialNode }
func (*Empty) Kind() NodeKind   { return EmptyNode }
func (*Unary) Kind() NodeKind   { return UnaryNode }
func (*Binary) Kind() NodeKind  { return BinaryNode }
func (*Seq) Kind() NodeKind     { return SeqNode }

func (*Integer) node() {}
func (*String) node()  {}
func (*Ident) node()   {}
func (*Special) node() {}
func (*Empty) node()   {}
func (*Unary) node()   {}
func (*Binary) node()  {}
func (*Seq) node()     {}

// NameSeparator replaces every hyphen and space in identifier names.
const NameSeparator = "_"

// NormalizeName converts every hyphen and space in name to NameSeparator.
func NormalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return '_'
		}
		return r
	}, name)
}

func NewInteger(value int) *Integer {
	return &Integer{value}
}

func NewString(text string) *String {
	return &String{text}
}

// NewIdent creates identifier with normalized name.
func NewIdent(name string) *Ident {
	return &Ident{NormalizeName(name)}
}

func NewSpecial(text string) *Special {
	return &Special{text}
}

func NewEmpty() *Empty {
	return &Empty{}
}

func NewUnary(op UnaryOp, x Node) *Unary {
	return &Unary{Op: op, X: x}
}

func NewBinary(op BinaryOp, x, y Node) *Binary {
	return &Binary{Op: op, X: x, Y: y}
}

// NewRule creates rule node. body must be a Seq of ExprSeq kind.
func NewRule(name *Ident, body *Seq) *Binary {
	if name == nil || body == nil || body.Tag != ExprSeq {
		panic("ast: rule requires identifier and expr sequence")
	}
	return &Binary{Op: RuleOp, X: name, Y: body}
}

func NewSeq(tag SeqTag, items ...Node) *Seq {
	s := &Seq{Tag: tag}
	if len(items) > 0 {
		s.items = append(make([]Node, 0, len(items)), items...)
	}
	return s
}

func NewExpr(alternatives ...Node) *Seq {
	return NewSeq(ExprSeq, alternatives...)
}

func NewTerms(terms ...Node) *Seq {
	return NewSeq(TermsSeq, terms...)
}

func NewRules(rules ...*Binary) *Seq {
	s := NewSeq(RulesSeq)
	for _, r := range rules {
		s.Append(r)
	}
	return s
}

// Items returns children of s. The slice must not be modified.
func (s *Seq) Items() []Node {
	return s.items
}

func (s *Seq) Len() int {
	return len(s.items)
}

func (s *Seq) At(i int) Node {
	return s.items[i]
}

// Append adds children to the end of s. A canonical tree containing s becomes non-canonical.
func (s *Seq) Append(items ...Node) {
	s.items = append(s.items, items...)
	s.canonical = false
}

// IsRule reports whether b is a rule definition.
func (b *Binary) IsRule() bool {
	return b.Op == RuleOp
}

// asSeq returns n as Seq of specified kind or nil.
func asSeq(n Node, tag SeqTag) *Seq {
	s, ok := n.(*Seq)
	if !ok || s.Tag != tag {
		return nil
	}
	return s
}

// AsExpr returns n if it is a Seq of ExprSeq kind, nil otherwise.
func AsExpr(n Node) *Seq {
	return asSeq(n, ExprSeq)
}

// AsTerms returns n if it is a Seq of TermsSeq kind, nil otherwise.
func AsTerms(n Node) *Seq {
	return asSeq(n, TermsSeq)
}

// AsRules returns n if it is a Seq of RulesSeq kind, nil otherwise.
func AsRules(n Node) *Seq {
	return asSeq(n, RulesSeq)
}

// AsGroup returns n if it is a Unary of GroupOp kind, nil otherwise.
func AsGroup(n Node) *Unary {
	u, ok := n.(*Unary)
	if !ok || u.Op != GroupOp {
		return nil
	}
	return u
}

// IsEmpty reports whether n matches nothing but the empty string.
// Empty node, empty string, and expr or terms sequence consisting of empty nodes are empty.
// Rules sequence is never empty.
func IsEmpty(n Node) bool {
	switch n := n.(type) {
	case *Empty:
		return true
	case *String:
		return n.Text == ""
	case *Seq:
		if n.Tag == RulesSeq {
			return false
		}
		for _, item := range n.items {
			if !IsEmpty(item) {
				return false
			}
		}
		return true
	}
	return false
}
