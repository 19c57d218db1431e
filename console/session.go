package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/treeharness/registry"
	"github.com/npillmayer/treeharness/render"
)

// Usage lists the commands of an interactive session.
const Usage = `insert: i<value>
delete: d<value>
print: p
quit: q or empty
`

// Session lets a user edit and print a single tree, one command per line.
type Session struct {
	tree    *registry.Tree
	printer *render.Printer
	palette *Palette
}

// NewSession creates a tree of module m with room for capacity insertions.
func NewSession(m *registry.Module, capacity int, cfg render.Config, palette *Palette) (*Session, error) {
	printer, err := render.New(cfg)
	if err != nil {
		return nil, err
	}
	tree, err := m.NewTree(capacity)
	if err != nil {
		return nil, err
	}
	if palette == nil {
		palette = NewPalette(false)
	}
	return &Session{tree: tree, printer: printer, palette: palette}, nil
}

// Tree returns the session's tree.
func (s *Session) Tree() *registry.Tree {
	return s.tree
}

// Close releases the session's tree.
func (s *Session) Close() {
	s.tree.Free()
}

// Run reads commands from in until a quit command, an empty line or the end
// of input. Output goes to out. Failing commands print an error marker and
// do not end the session.
func (s *Session) Run(in io.Reader, out io.Writer) error {
	io.WriteString(out, Usage)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !s.Exec(line, out) {
			break
		}
	}
	return scanner.Err()
}

// Exec executes a single command. It returns false for commands ending the
// session.
func (s *Session) Exec(cmd string, out io.Writer) bool {
	if cmd == "" {
		return false
	}
	switch cmd[0] {
	case 'i':
		key, err := parseKey(cmd[1:])
		if err == nil {
			err = s.tree.Append(key)
		}
		if err != nil {
			tracer().Errorf("session: %s: %v", cmd, err)
			s.palette.Marker(out, false)
		}
	case 'd':
		key, err := parseKey(cmd[1:])
		if err != nil {
			tracer().Errorf("session: %s: %v", cmd, err)
			s.palette.Marker(out, false)
			break
		}
		s.tree.DeleteKey(key)
	case 'p':
		grid, err := s.printer.Render(s.tree.Module(), s.tree.Root())
		if err != nil {
			s.palette.Marker(out, false)
			break
		}
		s.palette.Grid(out, grid)
		s.palette.Marker(out, true)
	default:
		return false
	}
	return true
}

func parseKey(s string) (uint64, error) {
	key, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q", s)
	}
	return key, nil
}
