package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"plugin"
	"strings"

	"github.com/google/btree"
	"github.com/npillmayer/treeharness"
	"github.com/npillmayer/treeharness/abi"
)

// PluginExt is the file extension of loadable tree modules.
const PluginExt = ".so"

// Registry is an ordered collection of loaded tree modules.
type Registry struct {
	modules *btree.BTreeG[*Module]
	closed  bool
}

func byName(a, b *Module) bool {
	return a.name < b.name
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		modules: btree.NewG(8, byName),
	}
}

// Load resolves a module from a symbol table and registers it under name.
// The module is rejected if its marker is wrong, if any capability is
// missing or if its layout is inconsistent.
func (reg *Registry) Load(name string, syms abi.SymbolTable) (*Module, error) {
	if reg.closed {
		return nil, fmt.Errorf("%w: registry", treeharness.ErrModuleClosed)
	}
	if _, ok := reg.modules.Get(&Module{name: name}); ok {
		return nil, fmt.Errorf("%w: %s", treeharness.ErrDuplicateModule, name)
	}
	table, err := abi.Resolve(syms)
	if err != nil {
		tracer().Errorf("registry: module %s rejected: %v", name, err)
		return nil, fmt.Errorf("module %s: %w", name, err)
	}
	desc, err := table.Descriptor()
	if err != nil {
		tracer().Errorf("registry: module %s rejected: %v", name, err)
		return nil, fmt.Errorf("module %s: %w", name, err)
	}
	m := &Module{name: name, ops: table, desc: desc}
	reg.modules.ReplaceOrInsert(m)
	tracer().Infof("registry: module %s accepted", name)
	tracer().Debugf("registry: %s layout %+v", name, *desc)
	return m, nil
}

// LoadPlugin opens a shared object built with -buildmode=plugin and
// registers it under its file name.
func (reg *Registry) LoadPlugin(path string) (*Module, error) {
	if reg.closed {
		return nil, fmt.Errorf("%w: registry", treeharness.ErrModuleClosed)
	}
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", treeharness.ErrNotTreeModule, path, err)
	}
	return reg.Load(filepath.Base(path), p)
}

// LoadDir tries every plugin file in dir. Hidden files are skipped. Files
// which fail to load do not stop the scan; their errors are joined into the
// returned error.
func (reg *Registry) LoadDir(dir string) ([]*Module, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var loaded []*Module
	var errs []error
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != PluginExt {
			continue
		}
		m, err := reg.LoadPlugin(filepath.Join(dir, name))
		if err != nil {
			tracer().Errorf("registry: skipping %s: %v", name, err)
			errs = append(errs, err)
			continue
		}
		loaded = append(loaded, m)
	}
	tracer().Debugf("registry: %d of %d candidates in %s loaded", len(loaded), len(loaded)+len(errs), dir)
	return loaded, errors.Join(errs...)
}

// Open registers a module named on a command line. Arguments ending in
// PluginExt or containing a path separator are loaded as plugins, anything
// else is looked up among the built-ins.
func (reg *Registry) Open(arg string) (*Module, error) {
	if filepath.Ext(arg) == PluginExt || strings.ContainsRune(arg, filepath.Separator) {
		return reg.LoadPlugin(arg)
	}
	syms, ok := Builtins()[arg]
	if !ok {
		return nil, fmt.Errorf("%w: %s", treeharness.ErrUnknownModule, arg)
	}
	return reg.Load(arg, syms)
}

// Get returns the module registered under name.
func (reg *Registry) Get(name string) (*Module, error) {
	if reg.closed {
		return nil, fmt.Errorf("%w: registry", treeharness.ErrModuleClosed)
	}
	m, ok := reg.modules.Get(&Module{name: name})
	if !ok {
		return nil, fmt.Errorf("%w: %s", treeharness.ErrUnknownModule, name)
	}
	return m, nil
}

// Names returns the names of all registered modules in ascending order.
func (reg *Registry) Names() []string {
	names := make([]string, 0, reg.modules.Len())
	reg.Each(func(m *Module) bool {
		names = append(names, m.name)
		return true
	})
	return names
}

// Each calls fn for every module in name order until fn returns false.
func (reg *Registry) Each(fn func(*Module) bool) {
	reg.modules.Ascend(fn)
}

// Len returns the number of registered modules.
func (reg *Registry) Len() int {
	return reg.modules.Len()
}

// Close releases all modules. Trees created from them must not be used
// afterwards.
func (reg *Registry) Close() {
	if reg.closed {
		return
	}
	reg.Each(func(m *Module) bool {
		m.closed = true
		return true
	})
	reg.modules.Clear(false)
	reg.closed = true
	tracer().Debugf("registry: closed")
}
