// Package sbt is a tree module implementing an intrusive size-balanced tree.
//
// Every node tracks the size of its subtree. Insertion keeps the tree
// balanced through rotations driven by subtree sizes; removal does not
// rebalance, so the height after a series of removals is bounded by the
// tree size before them. The next insertion restores the bound.
//
// Keys precede nodes within an element, which makes the node offset
// non-zero.
package sbt

import (
	"unsafe"

	"github.com/npillmayer/treeharness/abi"
)

// MagicString identifies this package as a tree module.
var MagicString = abi.Magic

type node struct {
	l, r *node
	sz   uint64
}

type element struct {
	key  uint64
	node node
}

type root struct {
	top *node
}

var nodeOffset = unsafe.Offsetof(element{}.node)

func keyOf(n *node) uint64 {
	return (*element)(unsafe.Add(unsafe.Pointer(n), -int(nodeOffset))).key
}

func size(n *node) uint64 {
	if n == nil {
		return 0
	}
	return n.sz
}

func GetRootSize() uintptr            { return unsafe.Sizeof(root{}) }
func GetNodeSize() uintptr            { return unsafe.Sizeof(element{}) }
func GetRootNodeOffset() uintptr      { return unsafe.Offsetof(root{}.top) }
func GetLeftOffset() uintptr          { return unsafe.Offsetof(node{}.l) }
func GetRightOffset() uintptr         { return unsafe.Offsetof(node{}.r) }
func GetNodeOffsetInElement() uintptr { return nodeOffset }
func GetKeyOffsetInElement() uintptr  { return unsafe.Offsetof(element{}.key) }

// GetBalance reports the difference in subtree sizes, right minus left,
// clamped to [-2, 2].
func GetBalance(n unsafe.Pointer) int {
	cur := (*node)(n)
	d := int64(size(cur.r)) - int64(size(cur.l))
	switch {
	case d > 2:
		return 2
	case d < -2:
		return -2
	}
	return int(d)
}

// Init resets a root record to the empty tree.
func Init(r unsafe.Pointer) {
	(*root)(r).top = nil
}

// Insert links element e into the tree, unless its key is already present.
func Insert(r, e unsafe.Pointer) {
	n := (*node)(unsafe.Add(e, nodeOffset))
	insert(&(*root)(r).top, n, keyOf(n))
}

// Delete unlinks the element holding key, if present.
func Delete(r unsafe.Pointer, key uint64) {
	remove(&(*root)(r).top, key)
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

// rotateLeft performs a left rotation on the subtree at *p.
func rotateLeft(p **node) {
	cur := *p
	rc := cur.r
	cur.r = rc.l
	rc.l = cur
	rc.sz = cur.sz
	cur.sz = size(cur.l) + size(cur.r) + 1
	*p = rc
}

// rotateRight performs a right rotation on the subtree at *p.
func rotateRight(p **node) {
	cur := *p
	lc := cur.l
	cur.l = lc.r
	lc.r = cur
	lc.sz = cur.sz
	cur.sz = size(cur.l) + size(cur.r) + 1
	*p = lc
}

// maintain restores the size-balance property of the subtree at *p.
// rightBigger tells which side may have outgrown the other.
func maintain(p **node, rightBigger bool) {
	cur := *p
	if cur == nil {
		return
	}
	if rc, lc := cur.r, cur.l; rightBigger {
		if rc == nil {
			return
		}
		if size(rc.r) > size(lc) {
			rotateLeft(p)
		} else if size(rc.l) > size(lc) {
			rotateRight(&cur.r)
			rotateLeft(p)
		} else {
			return
		}
	} else {
		if lc == nil {
			return
		}
		if size(lc.l) > size(rc) {
			rotateRight(p)
		} else if size(lc.r) > size(rc) {
			rotateLeft(&cur.l)
			rotateRight(p)
		} else {
			return
		}
	}
	top := *p
	maintain(&top.l, false)
	maintain(&top.r, true)
	maintain(p, false)
	maintain(p, true)
}

func insert(p **node, n *node, key uint64) bool {
	cur := *p
	if cur == nil {
		n.l, n.r, n.sz = nil, nil, 1
		*p = n
		return true
	}
	var inserted bool
	k := keyOf(cur)
	switch {
	case key < k:
		inserted = insert(&cur.l, n, key)
	case key > k:
		inserted = insert(&cur.r, n, key)
	default:
		return false
	}
	if inserted {
		cur.sz++
		maintain(p, key > k)
	}
	return inserted
}

func remove(p **node, key uint64) bool {
	cur := *p
	if cur == nil {
		return false
	}
	k := keyOf(cur)
	switch {
	case key < k:
		if !remove(&cur.l, key) {
			return false
		}
	case key > k:
		if !remove(&cur.r, key) {
			return false
		}
	default:
		switch {
		case cur.l == nil:
			*p = cur.r
		case cur.r == nil:
			*p = cur.l
		default:
			// unlink the in-order successor and move it into cur's position
			t := &cur.r
			for (*t).l != nil {
				(*t).sz--
				t = &(*t).l
			}
			s := *t
			*t = s.r
			s.l, s.r, s.sz = cur.l, cur.r, cur.sz-1
			*p = s
		}
		return true
	}
	cur.sz--
	return true
}
