package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"axescanvas/internal/points"
	"axescanvas/pkg/geometry"
)

const usage = `Commands:
  down X Y | move X Y | up X Y   pointer events in canvas pixels
  leave                          pointer left the canvas
  filter <category> on|off       show or hide a category
  phrase [N | text]              toggle a phrase preset, or list them
  list                           show all points
  help                           this text
  quit                           exit
`

// Run reads commands until quit, end of input or ctx is done. Editor
// prompts opened by a command are answered from the same input.
//
// A read blocked on input only notices ctx when the input is an io.Closer:
// Run closes it once ctx is done. Other readers are checked between lines.
func (c *Console) Run(ctx context.Context) error {
	if c.closer != nil {
		stop := context.AfterFunc(ctx, func() { c.closer.Close() })
		defer stop()
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, ok := c.readLine("> ")
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.in.Err()
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if quit := c.exec(line); quit {
			return nil
		}
	}
}

// exec runs one command line and reports whether it asked to quit.
func (c *Console) exec(line string) bool {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "down", "move", "up":
		pos, err := parsePos(args)
		if err != nil {
			c.printf("%s: %v\n", cmd, err)
			return false
		}
		switch cmd {
		case "down":
			c.state.PointerDown(pos)
		case "move":
			c.state.PointerMove(pos)
		case "up":
			c.state.PointerUp(pos)
		}

	case "leave":
		c.state.PointerLeave()

	case "filter":
		c.filter(args)

	case "phrase":
		c.phrase(args)

	case "list", "ls":
		c.list()

	case "help", "?":
		c.printf("%s", usage)

	case "quit", "exit", "q":
		return true

	default:
		c.printf("Unknown command %q (try help)\n", cmd)
	}
	return false
}

func parsePos(args []string) (geometry.Point2D, error) {
	if len(args) != 2 {
		return geometry.Point2D{}, fmt.Errorf("expected X Y, got %d values", len(args))
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return geometry.Point2D{}, fmt.Errorf("bad X %q", args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return geometry.Point2D{}, fmt.Errorf("bad Y %q", args[1])
	}
	return geometry.NewPoint2D(x, y), nil
}

func (c *Console) filter(args []string) {
	if len(args) < 2 {
		c.printf("filter: expected <category> on|off\n")
		return
	}
	name, state := strings.Join(args[:len(args)-1], " "), strings.ToLower(args[len(args)-1])
	cat, ok := points.ParseCategory(name)
	if !ok {
		c.printf("filter: unknown category %q\n", name)
		return
	}
	var visible bool
	switch state {
	case "on", "show":
		visible = true
	case "off", "hide":
		visible = false
	default:
		c.printf("filter: expected on or off, got %q\n", state)
		return
	}
	c.state.SetFilter(cat, visible)
	c.printf("%s %s\n", c.categoryName(cat), map[bool]string{true: "shown", false: "hidden"}[visible])
}

func (c *Console) phrase(args []string) {
	presets := c.state.Config().Phrases
	if len(args) == 0 {
		active, _ := c.state.ActivePhrase()
		for i, p := range presets {
			marker := " "
			if p == active {
				marker = "*"
			}
			c.printf(" %s%2d) %s\n", marker, i+1, p)
		}
		return
	}

	text := strings.Join(args, " ")
	if n, err := strconv.Atoi(text); err == nil {
		if n < 1 || n > len(presets) {
			c.printf("phrase: choose 1-%d\n", len(presets))
			return
		}
		text = presets[n-1]
	}
	preset, ok := findPreset(presets, text)
	if !ok {
		c.printf("phrase: no preset %q\n", text)
		return
	}
	c.state.TogglePhrase(preset)
	if active, ok := c.state.ActivePhrase(); ok {
		c.printf("Phrase %q selected\n", active)
	} else {
		c.printf("Phrase cleared\n")
	}
}

func (c *Console) list() {
	all := c.state.Points()
	if len(all) == 0 {
		c.printf("No points\n")
		return
	}
	filters := c.state.Filters()
	for _, p := range all {
		line := fmt.Sprintf("#%d (%.0f, %.0f) %q %s", p.ID, p.Pos.X, p.Pos.Y, p.Label, c.categoryName(p.Category))
		if !filters.Visible(p.Category) {
			line += c.faint(" (hidden)")
		}
		c.printf("%s\n", line)
	}
}

func findPreset(presets []string, text string) (string, bool) {
	for _, p := range presets {
		if strings.EqualFold(p, text) {
			return p, true
		}
	}
	return "", false
}
