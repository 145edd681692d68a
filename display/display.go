package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds rendering parameters.
type Config struct {
	LineWidth int            // maximum rendered width per line, in 'en's
	Context   *uax11.Context // locale context for width calculation
	Colorize  bool           // use ANSI colors for inner nodes
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly. Colors are
// switched on for interactive terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		config.Colorize = true
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

// Print renders the tree rooted at root to stdout, with a configuration
// derived from the current terminal's properties and the user environment.
func Print[T any](root arbor.Node[T]) error {
	config := ConfigFromTerminal()
	config.Context = uax11.ContextFromEnvironment()
	return Fprint(os.Stdout, root, config)
}

// Sprint renders the tree rooted at root into a string, uncolorized, with
// default width.
func Sprint[T any](root arbor.Node[T]) string {
	var sb strings.Builder
	_ = Fprint(&sb, root, nil)
	return sb.String()
}

// Fprint renders the tree rooted at root to w, one node per line, children
// indented below their parent with guide rails:
//
//	5
//	├── 2
//	│   └── 9
//	└── 7
//
// A nil config selects a default of 65 'en's line width, Latin context and
// no colors. Labels wider than the remaining line width are shortened with
// an ellipsis.
func Fprint[T any](w io.Writer, root arbor.Node[T], config *Config) error {
	if w == nil || root == nil {
		return arbor.ErrIllegalArguments
	}
	if config == nil {
		config = &Config{LineWidth: 65}
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	p := &printer{w: w, width: config.LineWidth, context: ctx}
	if config.Colorize {
		p.inner = color.New(color.FgCyan, color.Bold)
		p.leaf = color.New(color.FgWhite)
	}
	return printNode(p, root, "", "")
}

type printer struct {
	w       io.Writer
	width   int
	context *uax11.Context
	inner   *color.Color // nil means plain output
	leaf    *color.Color
}

// printNode renders one node and recurses into its children. head is the
// prefix for the node's own line, rail the prefix for the lines of its
// descendants.
func printNode[T any](p *printer, n arbor.Node[T], head, rail string) error {
	label := fmt.Sprintf("%v", n.Value())
	if err := p.render(label, n.Degree() == 0, head); err != nil {
		return err
	}
	var children []arbor.Node[T]
	for ch := range n.Children() {
		children = append(children, ch)
	}
	for i, ch := range children {
		branch, next := "├── ", "│   "
		if i == len(children)-1 {
			branch, next = "└── ", "    "
		}
		if err := printNode(p, ch, rail+branch, rail+next); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) render(label string, isLeaf bool, head string) error {
	avail := p.width - utf8.RuneCountInString(head)
	if avail < 4 {
		avail = 4
	}
	label = p.shorten(label, avail)
	c := p.inner
	if isLeaf {
		c = p.leaf
	}
	if c != nil {
		label = c.Sprint(label)
	}
	_, err := fmt.Fprintf(p.w, "%s%s\n", head, label)
	return err
}

// shorten cuts label to at most avail terminal columns, measured over
// grapheme clusters with East Asian width rules.
func (p *printer) shorten(label string, avail int) string {
	if uax11.StringWidth(grapheme.StringFromString(label), p.context) <= avail {
		return label
	}
	for len(label) > 0 {
		_, size := utf8.DecodeLastRuneInString(label)
		label = label[:len(label)-size]
		if uax11.StringWidth(grapheme.StringFromString(label+"…"), p.context) <= avail {
			break
		}
	}
	return label + "…"
}
