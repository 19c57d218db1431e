/*
Package avl is a tree module implementing an intrusive AVL tree.

The node is the first field of an element, so node and element references
coincide. Every node stores its balance factor, height(right) − height(left),
which is always one of -1, 0 or 1 between operations. Inserting a key already
present is ignored, as is deleting a key not present.
*/
package avl

import (
	"unsafe"

	"github.com/npillmayer/treeharness/abi"
)

// MagicString identifies this package as a tree module.
var MagicString = abi.Magic

type node struct {
	left, right *node
	balance     int
}

type element struct {
	node node
	key  uint64
}

type root struct {
	top   *node
	count uint64
}

func keyOf(n *node) uint64 {
	return (*element)(unsafe.Pointer(n)).key
}

// GetRootSize returns the byte size of a root record.
func GetRootSize() uintptr { return unsafe.Sizeof(root{}) }

// GetNodeSize returns the byte size of an element record.
func GetNodeSize() uintptr { return unsafe.Sizeof(element{}) }

// GetRootNodeOffset returns the offset of the topmost node reference in the root.
func GetRootNodeOffset() uintptr { return unsafe.Offsetof(root{}.top) }

// GetLeftOffset returns the offset of the left child reference in a node.
func GetLeftOffset() uintptr { return unsafe.Offsetof(node{}.left) }

// GetRightOffset returns the offset of the right child reference in a node.
func GetRightOffset() uintptr { return unsafe.Offsetof(node{}.right) }

// GetNodeOffsetInElement returns the offset of the node in an element.
func GetNodeOffsetInElement() uintptr { return unsafe.Offsetof(element{}.node) }

// GetKeyOffsetInElement returns the offset of the key in an element.
func GetKeyOffsetInElement() uintptr { return unsafe.Offsetof(element{}.key) }

// GetBalance returns the stored balance factor of a node.
func GetBalance(n unsafe.Pointer) int {
	return (*node)(n).balance
}

// Init resets a root record to the empty tree.
func Init(r unsafe.Pointer) {
	*(*root)(r) = root{}
}

// Insert links element e into the tree.
func Insert(r, e unsafe.Pointer) {
	t := (*root)(r)
	n := &(*element)(e).node
	if _, linked := insert(&t.top, n, keyOf(n)); linked {
		t.count++
	}
}

// Delete unlinks the element holding key, if any.
func Delete(r unsafe.Pointer, key uint64) {
	t := (*root)(r)
	var removed bool
	remove(&t.top, key, &removed)
	if removed {
		t.count--
	}
}

// Symbols returns the module's exported symbols for registration as a
// built-in.
func Symbols() abi.Symbols {
	return abi.Symbols{
		abi.MagicSymbol:   &MagicString,
		abi.SymRootSize:   GetRootSize,
		abi.SymNodeSize:   GetNodeSize,
		abi.SymRootNode:   GetRootNodeOffset,
		abi.SymLeft:       GetLeftOffset,
		abi.SymRight:      GetRightOffset,
		abi.SymNodeInElem: GetNodeOffsetInElement,
		abi.SymKeyInElem:  GetKeyOffsetInElement,
		abi.SymBalance:    GetBalance,
		abi.SymInit:       Init,
		abi.SymInsert:     Insert,
		abi.SymDelete:     Delete,
	}
}

// --- Balancing -------------------------------------------------------------

// insert links n below *link. It reports whether the subtree grew in height
// and whether n has been linked at all.
func insert(link **node, n *node, key uint64) (grew, linked bool) {
	p := *link
	if p == nil {
		n.left, n.right, n.balance = nil, nil, 0
		*link = n
		return true, true
	}
	switch k := keyOf(p); {
	case key < k:
		if grew, linked = insert(&p.left, n, key); !grew {
			return false, linked
		}
		p.balance--
	case key > k:
		if grew, linked = insert(&p.right, n, key); !grew {
			return false, linked
		}
		p.balance++
	default:
		return false, false
	}
	switch p.balance {
	case 0:
		return false, true
	case -1, 1:
		return true, true
	}
	*link, _ = rebalance(p)
	return false, true
}

// remove unlinks the node holding key from the subtree below *link and
// reports whether the subtree shrank in height.
func remove(link **node, key uint64, removed *bool) (shrunk bool) {
	p := *link
	if p == nil {
		return false
	}
	switch k := keyOf(p); {
	case key < k:
		if !remove(&p.left, key, removed) {
			return false
		}
		p.balance++
	case key > k:
		if !remove(&p.right, key, removed) {
			return false
		}
		p.balance--
	default:
		*removed = true
		if p.left == nil {
			*link = p.right
			return true
		}
		if p.right == nil {
			*link = p.left
			return true
		}
		// the in-order successor takes over p's position
		var s *node
		shorter := removeMin(&p.right, &s)
		s.left, s.right, s.balance = p.left, p.right, p.balance
		*link = s
		p = s
		if !shorter {
			return false
		}
		p.balance--
	}
	return settle(link, p)
}

// removeMin unlinks the leftmost node below *link and stores it in min.
func removeMin(link **node, min **node) (shrunk bool) {
	p := *link
	if p.left == nil {
		*min = p
		*link = p.right
		return true
	}
	if !removeMin(&p.left, min) {
		return false
	}
	p.balance++
	return settle(link, p)
}

// settle is called after one of p's subtrees shrank and p's balance has been
// adjusted. It reports whether the subtree at *link shrank as a whole.
func settle(link **node, p *node) bool {
	switch p.balance {
	case 0:
		return true
	case -1, 1:
		return false
	}
	var shorter bool
	*link, shorter = rebalance(p)
	return shorter
}

// rebalance restores the AVL property for a node with balance ±2. It
// returns the new subtree top and whether the subtree lost one level of
// height compared to before the rotation.
func rebalance(p *node) (*node, bool) {
	if p.balance > 0 {
		r := p.right
		if r.balance >= 0 {
			top := rotateLeft(p)
			if r.balance == 0 {
				p.balance, r.balance = 1, -1
				return top, false
			}
			p.balance, r.balance = 0, 0
			return top, true
		}
		rl := r.left
		p.right = rotateRight(r)
		top := rotateLeft(p)
		p.balance, r.balance = 0, 0
		switch rl.balance {
		case 1:
			p.balance = -1
		case -1:
			r.balance = 1
		}
		rl.balance = 0
		return top, true
	}
	l := p.left
	if l.balance <= 0 {
		top := rotateRight(p)
		if l.balance == 0 {
			p.balance, l.balance = -1, 1
			return top, false
		}
		p.balance, l.balance = 0, 0
		return top, true
	}
	lr := l.right
	p.left = rotateLeft(l)
	top := rotateRight(p)
	p.balance, l.balance = 0, 0
	switch lr.balance {
	case -1:
		p.balance = 1
	case 1:
		l.balance = -1
	}
	lr.balance = 0
	return top, true
}

func rotateLeft(p *node) *node {
	r := p.right
	p.right = r.left
	r.left = p
	return r
}

func rotateRight(p *node) *node {
	l := p.left
	p.left = l.right
	l.right = p
	return l
}
