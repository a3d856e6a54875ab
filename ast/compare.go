package ast

import (
	"cmp"
	"slices"
)

// Compare returns -1, 0, or +1 depending on whether a sorts before, equal to, or after b.
// Both trees are compared in canonical form, so alternatives order, duplicate alternatives,
// and redundant grouping do not matter.
//
// Nodes of different types are ordered by NodeKind, Empty sorts after everything else.
// Nodes of the same type are ordered by sub-tag first and then by contents;
// sequences are compared element-wise, a proper prefix sorts first.
func Compare(a, b Node) int {
	return CompareSorted(canonical(a), canonical(b))
}

// CompareSorted is like Compare but assumes both trees are already canonical
// (e.g. produced by SortedClone).
func CompareSorted(a, b Node) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}

	switch a := a.(type) {
	case *Integer:
		return cmp.Compare(a.Value, b.(*Integer).Value)

	case *String:
		return cmp.Compare(a.Text, b.(*String).Text)

	case *Ident:
		return cmp.Compare(a.Name, b.(*Ident).Name)

	case *Special:
		return cmp.Compare(a.Text, b.(*Special).Text)

	case *Empty:
		return 0

	case *Binary:
		bb := b.(*Binary)
		if c := cmp.Compare(a.Op, bb.Op); c != 0 {
			return c
		}
		if c := CompareSorted(a.X, bb.X); c != 0 {
			return c
		}
		return CompareSorted(a.Y, bb.Y)

	case *Unary:
		bu := b.(*Unary)
		if c := cmp.Compare(a.Op, bu.Op); c != 0 {
			return c
		}
		return CompareSorted(a.X, bu.X)

	case *Seq:
		bs := b.(*Seq)
		if c := cmp.Compare(a.Tag, bs.Tag); c != 0 {
			return c
		}
		return slices.CompareFunc(a.items, bs.items, CompareSorted)
	}

	panic("ast: unknown node type")
}

// Equal reports whether a and b have the same canonical form.
func Equal(a, b Node) bool {
	return Compare(a, b) == 0
}

// EqualSorted is like Equal but assumes both trees are already canonical.
func EqualSorted(a, b Node) bool {
	return CompareSorted(a, b) == 0
}

// Less reports whether canonical form of a sorts before canonical form of b.
// For any a and b exactly one of Less(a, b), Equal(a, b), Less(b, a) holds.
func Less(a, b Node) bool {
	return Compare(a, b) < 0
}

// LessSorted is like Less but assumes both trees are already canonical.
func LessSorted(a, b Node) bool {
	return CompareSorted(a, b) < 0
}
