// Command avl wraps the AVL tree module as a Go plugin:
//
//	go build -buildmode=plugin -o avl.so ./plugins/avl
//
// The resulting shared object is picked up by treebench when placed in its
// working directory, and may be named on the command line of difftrees and
// printtree.
package main

import (
	"unsafe"

	"github.com/npillmayer/treeharness/modules/avl"
)

var MagicString = avl.MagicString

func GetRootSize() uintptr            { return avl.GetRootSize() }
func GetNodeSize() uintptr            { return avl.GetNodeSize() }
func GetRootNodeOffset() uintptr      { return avl.GetRootNodeOffset() }
func GetLeftOffset() uintptr          { return avl.GetLeftOffset() }
func GetRightOffset() uintptr         { return avl.GetRightOffset() }
func GetNodeOffsetInElement() uintptr { return avl.GetNodeOffsetInElement() }
func GetKeyOffsetInElement() uintptr  { return avl.GetKeyOffsetInElement() }
func GetBalance(n unsafe.Pointer) int { return avl.GetBalance(n) }
func Init(root unsafe.Pointer)        { avl.Init(root) }
func Insert(root, e unsafe.Pointer)   { avl.Insert(root, e) }
func Delete(root unsafe.Pointer, key uint64) {
	avl.Delete(root, key)
}

func main() {}
