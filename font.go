package imgui

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFontSize is the pixel size of the built-in font.
const DefaultFontSize = 13

// atlasWidth is the fixed width of the atlas texture; its height grows to
// the next power of two that fits every glyph.
const atlasWidth = 512

// ErrNoBaseFont is returned by MergeFont when no font has been added yet.
var ErrNoBaseFont = errors.New("imgui: merge font: no base font")

// FontID names a font added to a Context.
type FontID int

// FontInfo describes a font to rasterize into the atlas.
type FontInfo struct {
	data   []byte
	size   float32
	ranges [][2]rune
}

// NewFontInfo describes a TrueType or OpenType font at the given pixel
// size. Only Basic Latin and Latin-1 are rasterized unless CharRange adds
// more.
func NewFontInfo(ttf []byte, size float32) FontInfo {
	return FontInfo{data: ttf, size: size}
}

// DefaultFont describes the built-in Go Regular font.
func DefaultFont(size float32) FontInfo {
	return FontInfo{data: goregular.TTF, size: size}
}

// CharRange returns a copy of f that also rasterizes runes from..to
// (inclusive).
func (f FontInfo) CharRange(from, to rune) FontInfo {
	f.ranges = append(slices.Clip(f.ranges), [2]rune{from, to})
	return f
}

// Size returns the font size in display pixels.
func (f FontInfo) Size() float32 {
	return f.size
}

func (f FontInfo) charRanges() [][2]rune {
	if len(f.ranges) == 0 {
		return [][2]rune{{0x20, 0xFF}}
	}
	return f.ranges
}

// Glyph is the placement of one rasterized rune. Offsets are relative to
// the pen position at the top of the line, in display pixels at the font's
// own size.
type Glyph struct {
	Advance        float32
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
}

// Visible reports whether the glyph has any pixels.
func (g *Glyph) Visible() bool {
	return g.X1 > g.X0 && g.Y1 > g.Y0
}

// Font is a rasterized font inside an Atlas.
type Font struct {
	size       float32
	lineHeight float32
	ascent     float32
	glyphs     map[rune]*Glyph
	fallback   *Glyph
	atlas      *Atlas
}

// Size returns the nominal size in display pixels.
func (f *Font) Size() float32 { return f.size }

// LineHeight returns the distance between baselines at the nominal size.
func (f *Font) LineHeight() float32 { return f.lineHeight }

// Ascent returns the distance from the top of a line to its baseline.
func (f *Font) Ascent() float32 { return f.ascent }

// TextureID returns the texture holding the font's atlas.
func (f *Font) TextureID() uint32 {
	if f.atlas == nil {
		return 0
	}
	return f.atlas.textureID
}

// FindGlyph returns the glyph for r, or the fallback glyph.
func (f *Font) FindGlyph(r rune) *Glyph {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	return f.fallback
}

// CalcTextSize measures text drawn at size. A positive wrapWidth wraps
// at word boundaries like AddTextFont does.
func (f *Font) CalcTextSize(text string, size, wrapWidth float32) Vec2 {
	if text == "" {
		return Vec2{}
	}
	k := size / f.size
	var out Vec2
	for line, rest := f.nextLine(text, k, wrapWidth); ; line, rest = f.nextLine(rest, k, wrapWidth) {
		out.X = maxf(out.X, f.lineWidth(line, k))
		out.Y += f.lineHeight * k
		if rest == "" {
			break
		}
	}
	return out
}

func (f *Font) advance(r rune, k float32) float32 {
	if g := f.FindGlyph(r); g != nil {
		return g.Advance * k
	}
	return 0
}

func (f *Font) lineWidth(line string, k float32) float32 {
	var w float32
	for _, r := range line {
		w += f.advance(r, k)
	}
	return w
}

// nextLine splits off the first line of text: up to a newline or, with a
// positive width, up to the last space that keeps the line within width.
func (f *Font) nextLine(text string, k, width float32) (line, rest string) {
	var x float32
	breakAt := -1
	for i, r := range text {
		if r == '\n' {
			return text[:i], text[i+1:]
		}
		x += f.advance(r, k)
		if width > 0 && x > width && i > 0 {
			if breakAt > 0 {
				return text[:breakAt], text[breakAt+1:]
			}
			return text[:i], text[i:]
		}
		if r == ' ' {
			breakAt = i
		}
	}
	return text, ""
}

// Atlas is the single-channel texture holding every glyph of a Context.
type Atlas struct {
	Width, Height int
	// Pixels holds one coverage byte per texel, row-major from the top.
	Pixels []byte

	textureID uint32
	fonts     []*Font
}

// TextureID returns the texture the renderer uploaded the atlas to.
func (a *Atlas) TextureID() uint32 { return a.textureID }

// SetTextureID records the texture holding the atlas pixels.
func (a *Atlas) SetTextureID(id uint32) { a.textureID = id }

// Font returns the font with the given id, or nil.
func (a *Atlas) Font(id FontID) *Font {
	if id < 0 || int(id) >= len(a.fonts) {
		return nil
	}
	return a.fonts[id]
}

// Fonts returns the number of fonts in the atlas.
func (a *Atlas) Fonts() int { return len(a.fonts) }

type fontEntry struct {
	base   FontInfo
	merged []FontInfo
}

type rasterGlyph struct {
	img   *image.Alpha
	glyph *Glyph
	x, y  int
}

// buildAtlas rasterizes every entry at size*scale pixels and packs the
// glyphs into rows.
func buildAtlas(entries []fontEntry, scale float32) (*Atlas, error) {
	atlas := &Atlas{}
	var pending []*rasterGlyph
	parsed := map[*byte]*opentype.Font{}

	for i, e := range entries {
		f := &Font{size: e.base.size, glyphs: map[rune]*Glyph{}, atlas: atlas}
		for j, info := range append([]FontInfo{e.base}, e.merged...) {
			otf, err := parseFont(parsed, info.data)
			if err != nil {
				return nil, fmt.Errorf("imgui: font %d source %d: %w", i, j, err)
			}
			glyphs, err := rasterize(f, otf, info, e.base.size*scale, j == 0)
			if err != nil {
				return nil, fmt.Errorf("imgui: font %d source %d: %w", i, j, err)
			}
			pending = append(pending, glyphs...)
		}
		for _, fb := range []rune{'?', ' '} {
			if g, ok := f.glyphs[fb]; ok {
				f.fallback = g
				break
			}
		}
		atlas.fonts = append(atlas.fonts, f)
	}

	pack(atlas, pending)
	for _, p := range pending {
		if p.img == nil {
			continue
		}
		b := p.img.Bounds()
		dst := image.Rect(p.x, p.y, p.x+b.Dx(), p.y+b.Dy())
		img := &image.Alpha{Pix: atlas.Pixels, Stride: atlas.Width, Rect: image.Rect(0, 0, atlas.Width, atlas.Height)}
		draw.Draw(img, dst, p.img, b.Min, draw.Src)
		p.glyph.U0 = float32(p.x) / float32(atlas.Width)
		p.glyph.V0 = float32(p.y) / float32(atlas.Height)
		p.glyph.U1 = float32(p.x+b.Dx()) / float32(atlas.Width)
		p.glyph.V1 = float32(p.y+b.Dy()) / float32(atlas.Height)
	}
	return atlas, nil
}

func parseFont(cache map[*byte]*opentype.Font, data []byte) (*opentype.Font, error) {
	if len(data) == 0 {
		return nil, errors.New("empty font data")
	}
	if f, ok := cache[&data[0]]; ok {
		return f, nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	cache[&data[0]] = f
	return f, nil
}

// rasterize renders the runes of info missing from f. Metrics come from
// the base source only.
func rasterize(f *Font, otf *opentype.Font, info FontInfo, px float32, base bool) ([]*rasterGlyph, error) {
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	defer face.Close()

	inv := f.size / px
	m := face.Metrics()
	if base {
		f.ascent = float32(m.Ascent.Ceil()) * inv
		f.lineHeight = float32(m.Height.Ceil()) * inv
	}

	var out []*rasterGlyph
	dot := fixed.Point26_6{Y: m.Ascent}
	for _, rg := range info.charRanges() {
		for r := rg[0]; r <= rg[1]; r++ {
			if _, ok := f.glyphs[r]; ok || !utf8.ValidRune(r) {
				continue
			}
			if idx, err := otf.GlyphIndex(nil, r); err != nil || idx == 0 {
				continue
			}
			dr, mask, maskp, adv, ok := face.Glyph(dot, r)
			if !ok {
				continue
			}
			g := &Glyph{
				Advance: float32(adv) / 64 * inv,
				X0:      float32(dr.Min.X) * inv,
				Y0:      float32(dr.Min.Y) * inv,
				X1:      float32(dr.Max.X) * inv,
				Y1:      float32(dr.Max.Y) * inv,
			}
			f.glyphs[r] = g
			p := &rasterGlyph{glyph: g}
			if !dr.Empty() {
				// The face reuses its mask buffer between calls.
				p.img = image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
				draw.Draw(p.img, p.img.Bounds(), mask, maskp, draw.Src)
			}
			out = append(out, p)
		}
	}
	return out, nil
}

// pack places glyph images on shelves, tallest first, with one texel of
// padding, and allocates the atlas pixels.
func pack(atlas *Atlas, glyphs []*rasterGlyph) {
	const pad = 1
	order := slices.Clone(glyphs)
	slices.SortStableFunc(order, func(a, b *rasterGlyph) int {
		return height(b) - height(a)
	})

	x, y, shelf := pad, pad, 0
	for _, g := range order {
		if g.img == nil {
			continue
		}
		w, h := g.img.Bounds().Dx(), g.img.Bounds().Dy()
		if x+w+pad > atlasWidth {
			x, y, shelf = pad, y+shelf+pad, 0
		}
		g.x, g.y = x, y
		x += w + pad
		shelf = max(shelf, h)
	}

	texHeight := 1
	for texHeight < y+shelf+pad {
		texHeight *= 2
	}
	atlas.Width, atlas.Height = atlasWidth, texHeight
	atlas.Pixels = make([]byte, atlasWidth*texHeight)
}

func height(g *rasterGlyph) int {
	if g.img == nil {
		return 0
	}
	return g.img.Bounds().Dy()
}
