// Command sbt wraps the size-balanced tree module as a Go plugin:
//
//	go build -buildmode=plugin -o sbt.so ./plugins/sbt
//
// The resulting shared object is picked up by treebench when placed in its
// working directory, and may be named on the command line of difftrees and
// printtree.
package main

import (
	"unsafe"

	"github.com/npillmayer/treeharness/modules/sbt"
)

var MagicString = sbt.MagicString

func GetRootSize() uintptr            { return sbt.GetRootSize() }
func GetNodeSize() uintptr            { return sbt.GetNodeSize() }
func GetRootNodeOffset() uintptr      { return sbt.GetRootNodeOffset() }
func GetLeftOffset() uintptr          { return sbt.GetLeftOffset() }
func GetRightOffset() uintptr         { return sbt.GetRightOffset() }
func GetNodeOffsetInElement() uintptr { return sbt.GetNodeOffsetInElement() }
func GetKeyOffsetInElement() uintptr  { return sbt.GetKeyOffsetInElement() }
func GetBalance(n unsafe.Pointer) int { return sbt.GetBalance(n) }
func Init(root unsafe.Pointer)        { sbt.Init(root) }
func Insert(root, e unsafe.Pointer)   { sbt.Insert(root, e) }
func Delete(root unsafe.Pointer, key uint64) {
	sbt.Delete(root, key)
}

func main() {}
