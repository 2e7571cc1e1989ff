package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// LabelSize is the label font size in canvas pixels.
const LabelSize = 13

// The face is compiled in so output is identical on every host. Runes it
// has no glyph for are drawn as boxes showing their code point in hex, so
// distinct labels never collapse into identical replacement glyphs.
var (
	faceMu    sync.Mutex // guards labelFace and glyphBuf
	labelFont *sfnt.Font
	labelFace font.Face
	glyphBuf  sfnt.Buffer
)

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("render: parse label font: %v", err))
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    LabelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(fmt.Sprintf("render: label face: %v", err))
	}
	labelFont, labelFace = f, face
}

type hAlign int

const (
	alignLeft hAlign = iota
	alignCenter
	alignRight
)

type vAlign int

const (
	// baselineTop puts the top of the glyphs at y.
	baselineTop vAlign = iota
	// baselineBottom puts the bottom of the descenders at y.
	baselineBottom
)

// textRun is either a span of runes the face covers or one rune drawn as a
// hex box.
type textRun struct {
	text    string
	missing rune
	box     bool
}

// hasGlyph reports whether the label face covers r. Caller holds faceMu.
func hasGlyph(r rune) bool {
	idx, err := labelFont.GlyphIndex(&glyphBuf, r)
	return err == nil && idx != 0
}

// splitRuns splits s at runes the face cannot draw. Caller holds faceMu.
func splitRuns(s string) []textRun {
	var runs []textRun
	var sb strings.Builder
	flush := func() {
		if sb.Len() > 0 {
			runs = append(runs, textRun{text: sb.String()})
			sb.Reset()
		}
	}
	for _, r := range s {
		if hasGlyph(r) {
			sb.WriteRune(r)
			continue
		}
		flush()
		runs = append(runs, textRun{missing: r, box: true})
	}
	flush()
	return runs
}

// measure returns the advance of runs. Caller holds faceMu.
func measure(runs []textRun) fixed.Int26_6 {
	var w fixed.Int26_6
	for _, run := range runs {
		if run.box {
			w += fixed.I(hexBoxAdvance(run.missing))
			continue
		}
		w += font.MeasureString(labelFace, run.text)
	}
	return w
}

// textWidth returns the advance width of s in pixels.
func textWidth(s string) int {
	faceMu.Lock()
	defer faceMu.Unlock()
	return measure(splitRuns(s)).Ceil()
}

// drawText draws s anchored at (x, y) with the given alignment.
func drawText(output *image.RGBA, s string, x, y int, h hAlign, v vAlign, col color.RGBA) {
	if s == "" {
		return
	}
	faceMu.Lock()
	defer faceMu.Unlock()

	runs := splitRuns(s)
	switch h {
	case alignCenter:
		x -= measure(runs).Ceil() / 2
	case alignRight:
		x -= measure(runs).Ceil()
	}

	metrics := labelFace.Metrics()
	switch v {
	case baselineTop:
		y += metrics.Ascent.Ceil()
	case baselineBottom:
		y -= metrics.Descent.Ceil()
	}

	src := image.NewUniform(col)
	dot := fixed.I(x)
	for _, run := range runs {
		if run.box {
			bx := dot.Ceil()
			drawHexBox(output, run.missing, bx, y-metrics.Ascent.Ceil(), col)
			dot = fixed.I(bx + hexBoxAdvance(run.missing))
			continue
		}
		d := &font.Drawer{
			Dst:  output,
			Src:  src,
			Face: labelFace,
			Dot:  fixed.Point26_6{X: dot, Y: fixed.I(y)},
		}
		d.DrawString(run.text)
		dot = d.Dot.X
	}
}

// Hex box geometry: a 1px outline, 1px padding, and two rows of 3x5 digits.
const (
	hexDigitW = 3
	hexDigitH = 5
	hexBoxH   = 2 + hexDigitH + 1 + hexDigitH + 2
)

// hexDigits are 3x5 bitmaps for 0-F, one byte per row, bit 2 leftmost.
var hexDigits = [16][hexDigitH]uint8{
	{7, 5, 5, 5, 7}, // 0
	{2, 6, 2, 2, 7}, // 1
	{7, 1, 7, 4, 7}, // 2
	{7, 1, 7, 1, 7}, // 3
	{5, 5, 7, 1, 1}, // 4
	{7, 4, 7, 1, 7}, // 5
	{7, 4, 7, 5, 7}, // 6
	{7, 1, 1, 1, 1}, // 7
	{7, 5, 7, 5, 7}, // 8
	{7, 5, 7, 1, 7}, // 9
	{2, 5, 7, 5, 5}, // A
	{6, 5, 6, 5, 6}, // B
	{3, 4, 4, 4, 3}, // C
	{6, 5, 5, 5, 6}, // D
	{7, 4, 6, 4, 7}, // E
	{7, 4, 6, 4, 4}, // F
}

// hexBoxDigits is the code point as 4 hex digits, or 6 outside the BMP.
func hexBoxDigits(r rune) string {
	if r <= 0xFFFF {
		return fmt.Sprintf("%04X", r)
	}
	return fmt.Sprintf("%06X", r)
}

func hexBoxWidth(r rune) int {
	cols := len(hexBoxDigits(r)) / 2
	return 2 + cols*(hexDigitW+1) - 1 + 2
}

func hexBoxAdvance(r rune) int {
	return hexBoxWidth(r) + 1
}

// drawHexBox draws r's code point in an outlined box with its top-left
// corner at (x0, y0). Digits fill the top row first.
func drawHexBox(output *image.RGBA, r rune, x0, y0 int, col color.RGBA) {
	bounds := output.Bounds()
	set := func(x, y int) {
		if (image.Point{X: x, Y: y}).In(bounds) {
			output.SetRGBA(x, y, col)
		}
	}

	w := hexBoxWidth(r)
	for x := x0; x < x0+w; x++ {
		set(x, y0)
		set(x, y0+hexBoxH-1)
	}
	for y := y0; y < y0+hexBoxH; y++ {
		set(x0, y)
		set(x0+w-1, y)
	}

	digits := hexBoxDigits(r)
	cols := len(digits) / 2
	for i := 0; i < len(digits); i++ {
		glyph := hexDigits[hexValue(digits[i])]
		gx := x0 + 2 + (i%cols)*(hexDigitW+1)
		gy := y0 + 2 + (i/cols)*(hexDigitH+1)
		for row, bits := range glyph {
			for c := 0; c < hexDigitW; c++ {
				if bits&(1<<(hexDigitW-1-c)) != 0 {
					set(gx+c, gy+row)
				}
			}
		}
	}
}

func hexValue(b byte) int {
	if b >= 'A' {
		return int(b-'A') + 10
	}
	return int(b - '0')
}
