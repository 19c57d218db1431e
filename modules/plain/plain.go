// Package plain is a tree module implementing an unbalanced binary search
// tree. Its balance is the height difference of a node's subtrees, computed
// on demand and not bounded.
package plain

import (
	"unsafe"

	"github.com/npillmayer/treeharness/abi"
)

// MagicString identifies this package as a tree module.
var MagicString = abi.Magic

type node struct {
	left  *node
	right *node
}

// element carries the insertion sequence number as a payload between key
// and node.
type element struct {
	key  uint64
	seq  uint64
	node node
}

type root struct {
	inserts uint64
	first   *node
}

var nodeOffset = unsafe.Offsetof(element{}.node)

func elementOf(n *node) *element {
	return (*element)(unsafe.Add(unsafe.Pointer(n), -int(nodeOffset)))
}

func GetRootSize() uintptr            { return unsafe.Sizeof(root{}) }
func GetNodeSize() uintptr            { return unsafe.Sizeof(element{}) }
func GetRootNodeOffset() uintptr      { return unsafe.Offsetof(root{}.first) }
func GetLeftOffset() uintptr          { return unsafe.Offsetof(node{}.left) }
func GetRightOffset() uintptr         { return unsafe.Offsetof(node{}.right) }
func GetNodeOffsetInElement() uintptr { return nodeOffset }
func GetKeyOffsetInElement() uintptr  { return unsafe.Offsetof(element{}.key) }

// GetBalance returns height(right) − height(left).
func GetBalance(n unsafe.Pointer) int {
	cur := (*node)(n)
	return height(cur.right) - height(cur.left)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Init resets a root record to the empty tree.
func Init(r unsafe.Pointer) {
	*(*root)(r) = root{}
}

// Insert links element e as a leaf, unless its key is already present.
func Insert(r, e unsafe.Pointer) {
	t := (*root)(r)
	elem := (*element)(e)
	link := &t.first
	for *link != nil {
		k := elementOf(*link).key
		switch {
		case elem.key < k:
			link = &(*link).left
		case elem.key > k:
			link = &(*link).right
		default:
			return
		}
	}
	t.inserts++
	elem.seq = t.inserts
	elem.node = node{}
	*link = &elem.node
}

// Delete unlinks the element holding key, if present. A node with two
// children is replaced by its in-order successor.
func Delete(r unsafe.Pointer, key uint64) {
	link := &(*root)(r).first
	for *link != nil {
		k := elementOf(*link).key
		if key < k {
			link = &(*link).left
		} else if key > k {
			link = &(*link).right
		} else {
			break
		}
	}
	cur := *link
	if cur == nil {
		return
	}
	switch {
	case cur.left == nil:
		*link = cur.right
	case cur.right == nil:
		*link = cur.left
	default:
		s := &cur.right
		for (*s).left != nil {
			s = &(*s).left
		}
		succ := *s
		*s = succ.right
		succ.left, succ.right = cur.left, cur.right
		*link = succ
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
