// Package prompt is the text-mode front end: it reads scripted pointer
// commands and presents the point editor as a sequence of blocking prompts on
// the same input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"axescanvas/internal/app"
	"axescanvas/internal/editor"
	"axescanvas/internal/points"
	"axescanvas/pkg/colorutil"

	"github.com/muesli/termenv"
)

// Keywords accepted at the label prompt, case-insensitively.
const (
	KeywordDelete = "DELETE"
	KeywordCancel = "CANCEL"
)

// Console implements editor.Surface over line-oriented text I/O.
type Console struct {
	state   *app.State
	palette colorutil.Palette
	in      *bufio.Scanner
	closer  io.Closer // the input, if it can be closed
	out     *termenv.Output
}

var _ editor.Surface = (*Console)(nil)

// NewConsole creates a console reading r and writing w, and installs it as
// the editor surface of state. If r is an io.Closer, Run closes it when its
// context is done.
func NewConsole(state *app.State, r io.Reader, w io.Writer) *Console {
	closer, _ := r.(io.Closer)
	c := &Console{
		state:   state,
		palette: state.Config().Palette(),
		in:      bufio.NewScanner(r),
		closer:  closer,
		out:     termenv.NewOutput(w),
	}
	state.SetSurface(c)
	return c
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) bold(s string) string {
	return c.out.String(s).Bold().String()
}

func (c *Console) faint(s string) string {
	return c.out.String(s).Faint().String()
}

// categoryName renders a category in its palette colour.
func (c *Console) categoryName(cat points.Category) string {
	hex := colorutil.Hex(c.palette.Color(cat.String()))
	return c.out.String(cat.String()).Foreground(c.out.Color(hex)).String()
}

// readLine prompts and reads one line. ok is false at end of input.
func (c *Console) readLine(prompt string) (line string, ok bool) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		c.printf("\n")
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// Present runs the editor prompts for req until the editor closes.
func (c *Console) Present(req editor.Request) {
	if req.Mode == editor.ModeEdit {
		c.printf("%s #%d at (%.0f, %.0f)\n", c.bold(req.Title()), req.Target, req.Pos.X, req.Pos.Y)
	} else {
		c.printf("%s at (%.0f, %.0f)\n", c.bold(req.Title()), req.Pos.X, req.Pos.Y)
	}
	hint := KeywordCancel + " to discard"
	if req.CanDelete() {
		hint = KeywordDelete + " to remove, " + hint
	}
	c.printf("%s\n", c.faint("  ("+hint+")"))

	fields := req.Fields
	for {
		label, ok := c.readLine(fmt.Sprintf("  Label [%s]: ", fields.Label))
		if !ok {
			c.state.CancelEditor()
			return
		}

		switch {
		case strings.EqualFold(label, KeywordCancel):
			c.state.CancelEditor()
			c.printf("  Cancelled\n")
			return

		case strings.EqualFold(label, KeywordDelete) && req.CanDelete():
			if err := c.state.DeleteEditorTarget(); err != nil {
				c.printf("  Delete failed: %v\n", err)
			} else {
				c.printf("  Deleted %q\n", fields.Label)
			}
			return

		case strings.EqualFold(label, KeywordDelete):
			c.printf("  Nothing to delete yet\n")
			continue
		}

		// Enter keeps the prefilled label. With nothing prefilled the
		// commit below rejects it.
		if label != "" {
			fields.Label = label
		}

		if strings.TrimSpace(fields.Label) != "" {
			category, ok := c.readCategory(fields.Category)
			if !ok {
				c.state.CancelEditor()
				return
			}
			fields.Category = category
		}

		err := c.state.CommitEditor(fields)
		switch {
		case errors.Is(err, editor.ErrEmptyLabel):
			c.printf("  %s\n", capitalize(err.Error()))
			continue
		case err != nil:
			c.printf("  Save failed: %v\n", err)
		default:
			c.printf("  Saved %q as %s\n", fields.Label, c.categoryName(fields.Category))
		}
		return
	}
}

// readCategory asks for a category by number or name. Enter keeps current.
func (c *Console) readCategory(current points.Category) (points.Category, bool) {
	for i, cat := range points.Categories {
		marker := " "
		if cat == current {
			marker = "*"
		}
		c.printf("   %s%d) %s\n", marker, i+1, c.categoryName(cat))
	}
	for {
		line, ok := c.readLine(fmt.Sprintf("  Category [%d]: ", categoryIndex(current)+1))
		if !ok {
			return current, false
		}
		if line == "" {
			return current, true
		}
		if n, err := strconv.Atoi(line); err == nil {
			if n >= 1 && n <= len(points.Categories) {
				return points.Categories[n-1], true
			}
		} else if cat, ok := points.ParseCategory(line); ok {
			return cat, true
		}
		c.printf("  Choose 1-%d or a category name\n", len(points.Categories))
	}
}

func categoryIndex(cat points.Category) int {
	for i, c := range points.Categories {
		if c == cat {
			return i
		}
	}
	return 0
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
