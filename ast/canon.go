package ast

import (
	"slices"
)

// Clone returns deep copy of n. The copy is not marked canonical even if n is.
func Clone(n Node) Node {
	switch n := n.(type) {
	case nil:
		return nil
	case *Integer:
		return &Integer{n.Value}
	case *String:
		return &String{n.Text}
	case *Ident:
		return &Ident{n.Name}
	case *Special:
		return &Special{n.Text}
	case *Empty:
		return &Empty{}
	case *Unary:
		return &Unary{Op: n.Op, X: Clone(n.X)}
	case *Binary:
		return &Binary{Op: n.Op, X: Clone(n.X), Y: Clone(n.Y)}
	case *Seq:
		s := &Seq{Tag: n.Tag}
		if len(n.items) > 0 {
			s.items = make([]Node, len(n.items))
			for i, item := range n.items {
				s.items[i] = Clone(item)
			}
		}
		return s
	}
	panic("ast: unknown node type")
}

// SortedClone returns canonical deep copy of n:
//   - empty strings are replaced with Empty nodes;
//   - empty items of concatenations are dropped;
//   - a group containing a single concatenation is spliced into enclosing concatenation;
//   - a group that is the only term of an alternative is spliced into enclosing alternatives;
//   - alternatives are sorted and duplicates are removed;
//   - rule lists keep their order.
//
// SortedClone is idempotent: SortedClone(SortedClone(n)) is equal to SortedClone(n).
func SortedClone(n Node) Node {
	switch n := n.(type) {
	case nil:
		return nil
	case *String:
		if n.Text == "" {
			return &Empty{}
		}
		return &String{n.Text}
	case *Unary:
		return &Unary{Op: n.Op, X: SortedClone(n.X), canonical: true}
	case *Binary:
		return &Binary{Op: n.Op, X: SortedClone(n.X), Y: SortedClone(n.Y), canonical: true}
	case *Seq:
		switch n.Tag {
		case TermsSeq:
			return sortedTerms(n)
		case ExprSeq:
			return sortedExpr(n)
		default:
			s := &Seq{Tag: n.Tag, canonical: true}
			for _, item := range n.items {
				s.items = append(s.items, SortedClone(item))
			}
			return s
		}
	}
	return Clone(n)
}

// groupedTerms returns the only concatenation inside a group or nil.
func groupedTerms(n Node) *Seq {
	g := AsGroup(n)
	if g == nil {
		return nil
	}
	expr := AsExpr(g.X)
	if expr == nil || len(expr.items) != 1 {
		return nil
	}
	return AsTerms(expr.items[0])
}

func sortedTerms(n *Seq) *Seq {
	s := &Seq{Tag: TermsSeq, canonical: true}
	for _, item := range n.items {
		item = SortedClone(item)
		if IsEmpty(item) {
			continue
		}

		if terms := groupedTerms(item); terms != nil {
			s.items = append(s.items, terms.items...)
			continue
		}

		s.items = append(s.items, item)
	}
	return s
}

func sortedExpr(n *Seq) *Seq {
	s := &Seq{Tag: ExprSeq, canonical: true}
	for _, item := range n.items {
		item = SortedClone(item)
		if terms := AsTerms(item); terms != nil && len(terms.items) == 1 {
			if g := AsGroup(terms.items[0]); g != nil {
				if expr := AsExpr(g.X); expr != nil {
					s.items = append(s.items, expr.items...)
					continue
				}
			}
		}

		s.items = append(s.items, item)
	}

	slices.SortStableFunc(s.items, CompareSorted)
	s.items = slices.CompactFunc(s.items, EqualSorted)
	return s
}

// canonical returns n itself if it is known to be canonical or its canonical copy.
func canonical(n Node) Node {
	if isSorted(n) {
		return n
	}
	return SortedClone(n)
}

// isSorted reports whether every composite node of n was built by SortedClone
// and no sequence was appended to since.
// Append resets the mark of the sequence only, so the whole tree is checked.
func isSorted(n Node) bool {
	switch n := n.(type) {
	case *Integer, *Ident, *Special, *Empty, nil:
		return true
	case *String:
		return n.Text != ""
	case *Unary:
		return n.canonical && isSorted(n.X)
	case *Binary:
		return n.canonical && isSorted(n.X) && isSorted(n.Y)
	case *Seq:
		if !n.canonical {
			return false
		}
		for _, item := range n.items {
			if !isSorted(item) {
				return false
			}
		}
		return true
	}
	return false
}

// IsCanonical reports whether n is known to be in canonical form.
func IsCanonical(n Node) bool {
	return canonical(n) == n
}
