package ast

// Arena counts live nodes of trees built with it.
// Builders call Alloc for every new node and Release for subtrees they drop,
// so that Live returns to zero once every tree is released. A nil Arena counts nothing.
type Arena struct {
	live int
}

func NewArena() *Arena {
	return &Arena{}
}

// Alloc counts a single new node (not its children) and returns it.
func (a *Arena) Alloc(n Node) Node {
	if a != nil && n != nil {
		a.live++
	}
	return n
}

// Track counts every node of tree n and returns it.
func (a *Arena) Track(n Node) Node {
	if a != nil {
		a.live += Count(n)
	}
	return n
}

// Release uncounts every node of tree n.
func (a *Arena) Release(n Node) {
	if a != nil {
		a.live -= Count(n)
	}
}

// Live returns number of counted nodes.
func (a *Arena) Live() int {
	if a == nil {
		return 0
	}
	return a.live
}

// Clone returns tracked deep copy of n.
func (a *Arena) Clone(n Node) Node {
	return a.Track(Clone(n))
}

// SortedClone returns tracked canonical copy of n.
func (a *Arena) SortedClone(n Node) Node {
	return a.Track(SortedClone(n))
}
