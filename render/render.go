package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/npillmayer/treeharness"
)

// Config holds the grid parameters of a Printer.
type Config struct {
	Rows          int // grid height; bounds the printable depth
	Columns       int // grid width including the line break
	KeyWidth      int // digits per key, zero padded
	BalanceWidth  int // characters reserved for the balance glyph; 0 hides it
	Gap           int // blanks between two slots
	StackCapacity int // traversal stack capacity
}

// Defaults of a Printer's configuration.
const (
	DefaultRows          = 8
	DefaultColumns       = 80
	DefaultKeyWidth      = 2
	DefaultBalanceWidth  = 2
	DefaultStackCapacity = 64
)

// DefaultConfig returns the classic 8×80 grid with two-digit keys and
// two-character balance glyphs.
func DefaultConfig() Config {
	return Config{
		Rows:          DefaultRows,
		Columns:       DefaultColumns,
		KeyWidth:      DefaultKeyWidth,
		BalanceWidth:  DefaultBalanceWidth,
		StackCapacity: DefaultStackCapacity,
	}
}

// normalized fills in defaults for unset grid dimensions. BalanceWidth and
// Gap are taken as given, as zero is meaningful for both.
func (cfg Config) normalized() Config {
	if cfg.Rows == 0 {
		cfg.Rows = DefaultRows
	}
	if cfg.Columns == 0 {
		cfg.Columns = DefaultColumns
	}
	if cfg.KeyWidth == 0 {
		cfg.KeyWidth = DefaultKeyWidth
	}
	if cfg.StackCapacity == 0 {
		cfg.StackCapacity = DefaultStackCapacity
	}
	return cfg
}

func (cfg Config) validate() error {
	switch {
	case cfg.Rows < 1:
		return fmt.Errorf("%w: rows must be positive, is %d", treeharness.ErrInvalidConfig, cfg.Rows)
	case cfg.Columns < 2:
		return fmt.Errorf("%w: need at least 2 columns, have %d", treeharness.ErrInvalidConfig, cfg.Columns)
	case cfg.KeyWidth < 1:
		return fmt.Errorf("%w: key width must be positive, is %d", treeharness.ErrInvalidConfig, cfg.KeyWidth)
	case cfg.BalanceWidth < 0 || cfg.Gap < 0:
		return fmt.Errorf("%w: negative balance width or gap", treeharness.ErrInvalidConfig)
	case cfg.StackCapacity < 1:
		return fmt.Errorf("%w: stack capacity must be positive, is %d", treeharness.ErrInvalidConfig, cfg.StackCapacity)
	}
	return nil
}

// BalanceGlyph returns the two-character symbol for a balance factor.
// Factors outside [-2, 2] are shown as "..".
func BalanceGlyph(balance int) string {
	switch balance {
	case 0:
		return "  "
	case 1:
		return "+ "
	case -1:
		return "- "
	case 2:
		return "++"
	case -2:
		return "--"
	}
	return ".."
}

// Printer renders trees onto a character grid. A Printer may be reused for
// any number of trees, but not concurrently.
type Printer struct {
	cfg   Config
	grid  []byte
	stack *treeharness.Stack[treeharness.Node]
}

// New creates a printer for a grid as configured.
func New(cfg Config) (*Printer, error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	stack, err := treeharness.NewStack[treeharness.Node](cfg.StackCapacity)
	if err != nil {
		return nil, err
	}
	return &Printer{
		cfg:   cfg,
		grid:  make([]byte, cfg.Rows*cfg.Columns),
		stack: stack,
	}, nil
}

// Config returns the printer's effective configuration.
func (p *Printer) Config() Config {
	return p.cfg
}

// SlotWidth is the number of characters of a node's slot, gap excluded.
func (p *Printer) SlotWidth() int {
	return p.cfg.KeyWidth + p.cfg.BalanceWidth
}

// Render draws the tree at root. The result consists of Rows lines of
// Columns-1 characters, each terminated by a line break.
//
// Render fails with ErrEmptyTree for an empty tree and with ErrGridOverflow
// if a node would be placed below the last row or past the last column.
// Trees deeper than the stack capacity fail with ErrStackOverflow.
func (p *Printer) Render(t treeharness.Shape, root treeharness.Root) (string, error) {
	if err := p.draw(t, root); err != nil {
		tracer().Errorf("render: %v", err)
		return "", err
	}
	return string(p.grid), nil
}

// Fprint renders a tree and writes the grid to w.
func (p *Printer) Fprint(w io.Writer, t treeharness.Shape, root treeharness.Root) error {
	if err := p.draw(t, root); err != nil {
		tracer().Errorf("render: %v", err)
		return err
	}
	_, err := w.Write(p.grid)
	return err
}

func (p *Printer) draw(t treeharness.Shape, root treeharness.Root) error {
	current := t.FirstNode(root)
	if current == nil {
		return treeharness.ErrEmptyTree
	}
	cfg := p.cfg
	for i := range p.grid {
		p.grid[i] = ' '
	}
	it := inorder{acc: t, stack: p.stack}
	current, err := it.first(current)
	if err != nil {
		return err
	}
	width := p.SlotWidth()
	var slot bytes.Buffer
	for i := 0; current != nil; i++ {
		depth, offset := it.depth(), i*(width+cfg.Gap)
		if depth > cfg.Rows-1 || offset+width+1 > cfg.Columns-1 {
			return fmt.Errorf("%w: node #%d at depth %d, column %d does not fit %d×%d",
				treeharness.ErrGridOverflow, i, depth, offset, cfg.Rows, cfg.Columns)
		}
		slot.Reset()
		fmt.Fprintf(&slot, "%0*d%*s", cfg.KeyWidth, t.Key(current), cfg.BalanceWidth, BalanceGlyph(t.Balance(current)))
		copy(p.grid[depth*cfg.Columns+offset:], slot.Bytes()[:width])
		if current, err = it.next(current); err != nil {
			return err
		}
	}
	for row := 1; row <= cfg.Rows; row++ {
		p.grid[row*cfg.Columns-1] = '\n'
	}
	return nil
}
