// Command plain wraps the unbalanced binary search tree module as a Go plugin:
//
//	go build -buildmode=plugin -o plain.so ./plugins/plain
//
// The resulting shared object is picked up by treebench when placed in its
// working directory, and may be named on the command line of difftrees and
// printtree.
package main

import (
	"unsafe"

	"github.com/npillmayer/treeharness/modules/plain"
)

var MagicString = plain.MagicString

func GetRootSize() uintptr            { return plain.GetRootSize() }
func GetNodeSize() uintptr            { return plain.GetNodeSize() }
func GetRootNodeOffset() uintptr      { return plain.GetRootNodeOffset() }
func GetLeftOffset() uintptr          { return plain.GetLeftOffset() }
func GetRightOffset() uintptr         { return plain.GetRightOffset() }
func GetNodeOffsetInElement() uintptr { return plain.GetNodeOffsetInElement() }
func GetKeyOffsetInElement() uintptr  { return plain.GetKeyOffsetInElement() }
func GetBalance(n unsafe.Pointer) int { return plain.GetBalance(n) }
func Init(root unsafe.Pointer)        { plain.Init(root) }
func Insert(root, e unsafe.Pointer)   { plain.Insert(root, e) }
func Delete(root unsafe.Pointer, key uint64) {
	plain.Delete(root, key)
}

func main() {}
