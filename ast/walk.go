package ast

// Children returns direct children of n, nil for leaf nodes.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Unary:
		if n.X != nil {
			return []Node{n.X}
		}
	case *Binary:
		var res []Node
		for _, c := range [...]Node{n.X, n.Y} {
			if c != nil {
				res = append(res, c)
			}
		}
		return res
	case *Seq:
		return n.items
	}
	return nil
}

// NodeVisitor is called for each visited node.
// walkChildren is ignored for leaves, walkSiblings set to false stops visiting the rest of parent's children.
type NodeVisitor func(n Node) (walkChildren, walkSiblings bool)

type WalkMode int

const (
	WalkLtr WalkMode = 0
	WalkRtl WalkMode = 1
)

// Walk visits n and its descendants depth first.
func Walk(n Node, mode WalkMode, visitor NodeVisitor) {
	if n != nil {
		visitNode(n, visitor, (mode&WalkRtl) != 0)
	}
}

func visitNode(n Node, v NodeVisitor, rtl bool) (visitSiblings bool) {
	vc, vs := v(n)
	if !vc {
		return vs
	}

	cs := Children(n)
	if rtl {
		for i := len(cs) - 1; i >= 0 && vc; i-- {
			vc = visitNode(cs[i], v, true)
		}
	} else {
		for i := 0; i < len(cs) && vc; i++ {
			vc = visitNode(cs[i], v, false)
		}
	}
	return vs
}

// Inspect visits n and its descendants in pre-order, children of a node are skipped if f returns false.
func Inspect(n Node, f func(Node) bool) {
	Walk(n, WalkLtr, func(n Node) (bool, bool) {
		return f(n), true
	})
}

// Count returns total number of nodes in tree.
func Count(n Node) int {
	cnt := 0
	Inspect(n, func(Node) bool {
		cnt++
		return true
	})
	return cnt
}

type NodeFilter func(n Node) bool

// IsA returns filter accepting nodes of any of specified kinds.
func IsA(kinds ...NodeKind) NodeFilter {
	return func(n Node) bool {
		k := n.Kind()
		for _, kind := range kinds {
			if k == kind {
				return true
			}
		}
		return false
	}
}

// Select returns all nodes of tree accepted by filter in pre-order.
func Select(n Node, filter NodeFilter) []Node {
	var res []Node
	Inspect(n, func(n Node) bool {
		if filter(n) {
			res = append(res, n)
		}
		return true
	})
	return res
}
