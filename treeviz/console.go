package treeviz

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ConsoleConfig holds parameters for printing trees to a console.
type ConsoleConfig struct {
	LineWidth int            // labels are cut off at this many ‘en’s
	Context   *uax11.Context // context for measuring East Asian wide characters
}

// Console prints trees to a fixed-width console, one node per line, with
// branches drawn as box-drawing characters:
//
//	5
//	├── 3
//	│   ├── 1
//	│   └── 4
//	└── 8
//
// Missing children of binary nodes are shown as "·".
type Console struct {
	colors map[Class]*color.Color
	config *ConsoleConfig
}

// NewConsole creates a console printer. colors maps node classes to display
// colors; it may contain a subset of the classes. If colors is nil, a default
// palette is used. If config is nil, it is derived from the terminal.
func NewConsole(colors map[Class]*color.Color, config *ConsoleConfig) *Console {
	c := &Console{colors: colors, config: config}
	if c.colors == nil {
		c.colors = makeDefaultPalette()
	}
	if c.config == nil {
		c.config = ConsoleConfigFromTerminal()
		c.config.Context = uax11.ContextFromEnvironment()
	}
	if c.config.Context == nil {
		c.config.Context = uax11.LatinContext
	}
	return c
}

func makeDefaultPalette() map[Class]*color.Color {
	return map[Class]*color.Color{
		Plain: color.New(color.FgBlue),
		Red:   color.New(color.FgHiRed, color.Bold),
		Black: color.New(color.FgHiWhite, color.BgBlack),
		Page:  color.New(color.FgCyan),
	}
}

// Print outputs a tree to stdout.
func (c *Console) Print(root *Node) error {
	return c.Fprint(os.Stdout, root)
}

// Fprint outputs a tree to w.
func (c *Console) Fprint(w io.Writer, root *Node) error {
	if root == nil {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	return c.printNode(w, root, "", "")
}

const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "
	missing    = "·"
)

func (c *Console) printNode(w io.Writer, n *Node, lead, indent string) error {
	if _, err := io.WriteString(w, lead); err != nil {
		return err
	}
	room := c.config.LineWidth - labelWidth(lead, c.config.Context)
	if n == nil {
		_, err := io.WriteString(w, missing+"\n")
		return err
	}
	label := clip(n.Label, room, c.config.Context)
	if col, ok := c.colors[n.Class]; ok {
		if _, err := col.Fprint(w, label); err != nil {
			return err
		}
	} else if _, err := io.WriteString(w, label); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	for i, child := range n.Children {
		branch, next := branchMid, indentMid
		if i == len(n.Children)-1 {
			branch, next = branchLast, indentLast
		}
		if err := c.printNode(w, child, indent+branch, indent+next); err != nil {
			return err
		}
	}
	return nil
}

var setupGraphemes sync.Once

// labelWidth measures s in fixed-width positions.
func labelWidth(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// clip shortens s to at most width positions, marking a cut with "…".
func clip(s string, width int, context *uax11.Context) string {
	if labelWidth(s, context) <= width {
		return s
	}
	if width < 1 {
		return "…"
	}
	r := []rune(s)
	for len(r) > 0 && labelWidth(string(r), context)+1 > width {
		r = r[:len(r)-1]
	}
	var b strings.Builder
	b.WriteString(string(r))
	b.WriteString("…")
	return b.String()
}

// --- Config for terminals --------------------------------------------------

// ConsoleConfigFromTerminal checks whether stdout is a terminal, and if so it
// reads the terminal's width and sets LineWidth accordingly.
func ConsoleConfigFromTerminal() *ConsoleConfig {
	config := &ConsoleConfig{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 72
		} else if w > 20 {
			config.LineWidth = w - 2
		} else {
			config.LineWidth = 20
		}
	} else {
		config.LineWidth = 72
	}
	T().P("viz", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
