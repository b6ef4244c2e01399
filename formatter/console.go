package formatter

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/bintree"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds parameters for printing a tree.
type Config struct {
	LineWidth int            // maximum line length in en
	Context   *uax11.Context // context for measuring label widths
}

// Console is a type for outputting trees to a console with a fixed width font.
type Console struct {
	colors map[Side]*color.Color
}

// NewConsole creates a new console printer.
//
// colors is a map from sides to colors, used for display. It may contain just
// a subset of the sides. If colors is nil, a default palette is used.
//
func NewConsole(colors map[Side]*color.Color) *Console {
	c := &Console{colors: colors}
	if colors == nil {
		c.colors = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() map[Side]*color.Color {
	palette := map[Side]*color.Color{
		Root:      color.New(color.FgRed, color.Bold),
		LeftSide:  color.New(color.FgBlue),
		RightSide: color.New(color.FgGreen),
	}
	return palette
}

// Print outputs a tree to stdout, using a default console.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print[V any](root *bintree.Node[V], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(root, os.Stdout, config, NewConsole(nil))
}

// Output lays out a tree and writes it to w. If console is nil, a default
// console is used. If config is nil, a line width of 65 en and
// uax11.LatinContext are used.
func Output[V any](root *bintree.Node[V], w io.Writer, config *Config, console *Console) error {
	if config == nil {
		config = &Config{LineWidth: 65}
	}
	if console == nil {
		console = NewConsole(nil)
	}
	layout := LayoutOf(root, config.Context)
	return console.Render(layout, w, config.LineWidth)
}

// Render writes a layout to w. Levels are centered above each other, absent
// slots stay blank. If the layout is wider than linewidth, Render falls back to
// a compact listing of one line per level, holding the tokens of bintree.Format
// for the present nodes only.
func (c *Console) Render(layout *Layout, w io.Writer, linewidth int) error {
	if layout.Width() > linewidth {
		T().Infof("tree of width %d exceeds line width %d, using compact format",
			layout.Width(), linewidth)
		return c.renderCompact(layout, w)
	}
	for level, row := range layout.rows {
		span := layout.span(level)
		var line strings.Builder
		col := 0
		for _, cl := range row {
			start := cl.pos*span + (span-cl.width)/2
			line.WriteString(strings.Repeat(" ", start-col))
			line.WriteString(c.styled(cl.text, cl.side))
			col = start + cl.width
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) renderCompact(layout *Layout, w io.Writer) error {
	for _, row := range layout.rows {
		tokens := make([]string, len(row))
		for i, cl := range row {
			tokens[i] = c.styled(cl.token, cl.side)
		}
		if _, err := fmt.Fprintln(w, strings.Join(tokens, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) styled(s string, side Side) string {
	if col, ok := c.colors[side]; ok && col != nil {
		return col.Sprint(s)
	}
	return s
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			config.LineWidth = 65
		} else if w > 10 {
			config.LineWidth = w - 1
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 65
	}
	T().P("format", "console").Infof("setting line width to %d en", config.LineWidth)
	return config
}
