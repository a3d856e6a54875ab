package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format selects tree printer.
type Format int

const (
	DebugFormat Format = iota
	BNFFormat
	EBNFFormat
)

var formatNames = [...]string{"debug", "bnf", "ebnf"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat converts format name ("debug", "bnf", or "ebnf") to Format.
func ParseFormat(name string) (Format, error) {
	for i, fn := range formatNames {
		if strings.EqualFold(name, fn) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown format %q", name)
}

// Fprint writes n to w in specified format.
func Fprint(w io.Writer, n Node, f Format) error {
	var text string
	switch f {
	case DebugFormat:
		text = Debug(n)
	case BNFFormat:
		text = BNF(n)
	case EBNFFormat:
		text = EBNF(n)
	default:
		return fmt.Errorf("unknown format %d", int(f))
	}
	_, e := io.WriteString(w, text)
	return e
}

// Debug returns bracketed representation of tree, e.g. "[SEQ terms: [IDENT: a], [EMPTY]]".
func Debug(n Node) string {
	sb := &strings.Builder{}
	writeDebug(sb, n)
	return sb.String()
}

func writeDebug(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil:
	case *Integer:
		sb.WriteString("[INTEGER: " + strconv.Itoa(n.Value) + "]")
	case *String:
		sb.WriteString("[STRING: " + n.Text + "]")
	case *Ident:
		sb.WriteString("[IDENT: " + n.Name + "]")
	case *Special:
		sb.WriteString("[SPECIAL: " + n.Text + "]")
	case *Empty:
		sb.WriteString("[EMPTY]")
	case *Unary:
		sb.WriteString("[UNARY " + n.Op.String() + ": ")
		writeDebug(sb, n.X)
		sb.WriteString("]")
	case *Binary:
		sb.WriteString("[BINARY " + n.Op.String() + ": ")
		writeDebug(sb, n.X)
		sb.WriteString(", ")
		writeDebug(sb, n.Y)
		sb.WriteString("]")
	case *Seq:
		sb.WriteString("[SEQ " + n.Tag.String() + ": ")
		for i, item := range n.items {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeDebug(sb, item)
		}
		sb.WriteString("]")
	}
}

func quote(s string) string {
	if strings.Contains(s, `"`) {
		return "'" + s + "'"
	}
	return `"` + s + `"`
}

// BNFName converts identifier name to BNF form, words are separated with hyphens.
func BNFName(name string) string {
	return strings.NewReplacer("_", "-", " ", "-").Replace(name)
}

// EBNFName converts identifier name to EBNF form, words are separated with spaces.
func EBNFName(name string) string {
	return strings.NewReplacer("_", " ", "-", " ").Replace(name)
}

// BNF returns tree in BNF display form: "<rule-name> ::= <a> "b" | c+\n".
// Integer repetitions are expanded, empty sequences are printed as "".
func BNF(n Node) string {
	sb := &strings.Builder{}
	writeBNF(sb, n)
	return sb.String()
}

func writeBNF(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil:
	case *Integer:
		sb.WriteString(strconv.Itoa(n.Value))
	case *String:
		sb.WriteString(quote(n.Text))
	case *Ident:
		sb.WriteString("<" + BNFName(n.Name) + ">")
	case *Special:
		sb.WriteString("..." + n.Text + "...")
	case *Empty:
		sb.WriteString(`""`)

	case *Unary:
		switch n.Op {
		case OptionalOp:
			sb.WriteString("[")
			writeBNF(sb, n.X)
			sb.WriteString("]")
		case RepeatedOp:
			sb.WriteString("{")
			writeBNF(sb, n.X)
			sb.WriteString("}")
		case GroupOp:
			sb.WriteString("(")
			writeBNF(sb, n.X)
			sb.WriteString(")")
		default:
			writeBNF(sb, n.X)
			sb.WriteString(n.Op.String())
		}

	case *Binary:
		switch n.Op {
		case RuleOp:
			writeBNF(sb, n.X)
			sb.WriteString(" ::= ")
			writeBNF(sb, n.Y)
			sb.WriteString("\n")
		case ExceptOp:
			writeBNF(sb, n.X)
			sb.WriteString(" - ")
			writeBNF(sb, n.Y)
		case TimesOp:
			cnt := 0
			if i, ok := n.X.(*Integer); ok {
				cnt = i.Value
			}
			if cnt <= 0 {
				sb.WriteString(`""`)
				return
			}
			for i := 0; i < cnt; i++ {
				if i > 0 {
					sb.WriteString(" ")
				}
				writeBNF(sb, n.Y)
			}
		}

	case *Seq:
		sep := ""
		switch n.Tag {
		case ExprSeq:
			sep = " | "
		case TermsSeq:
			sep = " "
		}
		if n.Tag != RulesSeq && IsEmpty(n) {
			sb.WriteString(`""`)
			return
		}
		for i, item := range n.items {
			if i > 0 {
				sb.WriteString(sep)
			}
			writeBNF(sb, item)
		}
	}
}

// EBNF returns tree in ISO EBNF form: "rule name = a, "b" | [c];\n".
// BNF postfix operators are rewritten with brackets: X? as [X], X* as {X}, X+ as (X), {X}.
// Empty nodes and empty strings print nothing.
func EBNF(n Node) string {
	sb := &strings.Builder{}
	writeEBNF(sb, n)
	return sb.String()
}

func writeEBNF(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil, *Empty:
	case *Integer:
		sb.WriteString(strconv.Itoa(n.Value))
	case *String:
		if n.Text != "" {
			sb.WriteString(quote(n.Text))
		}
	case *Ident:
		sb.WriteString(EBNFName(n.Name))
	case *Special:
		sb.WriteString("?" + n.Text + "?")

	case *Unary:
		switch n.Op {
		case OptionalOp, QuestionOp:
			sb.WriteString("[")
			writeEBNF(sb, n.X)
			sb.WriteString("]")
		case RepeatedOp, StarOp:
			sb.WriteString("{")
			writeEBNF(sb, n.X)
			sb.WriteString("}")
		case GroupOp:
			sb.WriteString("(")
			writeEBNF(sb, n.X)
			sb.WriteString(")")
		case PlusOp:
			sb.WriteString("(")
			writeEBNF(sb, n.X)
			sb.WriteString("), {")
			writeEBNF(sb, n.X)
			sb.WriteString("}")
		}

	case *Binary:
		switch n.Op {
		case RuleOp:
			writeEBNF(sb, n.X)
			sb.WriteString(" = ")
			writeEBNF(sb, n.Y)
			sb.WriteString(";\n")
		case ExceptOp:
			writeEBNF(sb, n.X)
			sb.WriteString(" - ")
			writeEBNF(sb, n.Y)
		case TimesOp:
			writeEBNF(sb, n.X)
			sb.WriteString(" * ")
			writeEBNF(sb, n.Y)
		}

	case *Seq:
		sep := ""
		switch n.Tag {
		case ExprSeq:
			sep = " | "
		case TermsSeq:
			sep = ", "
		}
		if n.Tag != RulesSeq && IsEmpty(n) {
			return
		}
		for i, item := range n.items {
			if i > 0 {
				sb.WriteString(sep)
			}
			writeEBNF(sb, item)
		}
	}
}
