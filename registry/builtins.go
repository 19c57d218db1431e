package registry

import (
	"sort"

	"github.com/npillmayer/treeharness/abi"
	"github.com/npillmayer/treeharness/modules/avl"
	"github.com/npillmayer/treeharness/modules/plain"
	"github.com/npillmayer/treeharness/modules/sbt"
)

// Builtins returns the symbol tables of the modules compiled into the
// harness, keyed by module name.
func Builtins() map[string]abi.Symbols {
	return map[string]abi.Symbols{
		"avl":   avl.Symbols(),
		"sbt":   sbt.Symbols(),
		"plain": plain.Symbols(),
	}
}

// BuiltinNames returns the names of the built-in modules in ascending order.
func BuiltinNames() []string {
	b := Builtins()
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadBuiltins registers the built-in modules given by name, or all of them
// if names is empty.
func LoadBuiltins(reg *Registry, names ...string) error {
	if len(names) == 0 {
		names = BuiltinNames()
	}
	for _, name := range names {
		if _, err := reg.Open(name); err != nil {
			return err
		}
	}
	return nil
}
