package imgui

import (
	"slices"

	"cogentcore.org/core/base/errors"
)

// Context holds all state of one GUI: display metrics, fonts, windows
// and input. It is not safe for concurrent use; drive it from the
// goroutine that renders.
type Context struct {
	displaySize      Vec2
	framebufferScale float32
	style            Style
	input            *InputState

	fonts        []fontEntry
	atlas        *Atlas
	pendingAtlas bool

	windows     map[ID]*window
	order       []*window // top-level windows, back to front
	frameWins   []*window // top-level windows begun this frame
	sorted      []*window // frameWins in draw order
	implicit    *window
	next        nextWindowData
	frameCount  uint64
	hovered     *window
	dragging    *window
	dragOffset  Vec2
	wantCapture bool

	shared     drawListShared
	callbacks  callbackRegistry
	background *DrawList
	foreground *DrawList
	drawData   DrawData
	inFrame    bool
}

// New creates a Context. The atlas is built on the first UpdateAtlas or
// DoFrame; without fonts the built-in font is used.
func New(opts ...Option) *Context {
	c := &Context{
		displaySize:      V2(800, 600),
		framebufferScale: 1,
		style:            DefaultStyle(),
		input:            &InputState{},
		windows:          make(map[ID]*window),
		pendingAtlas:     true,
	}
	c.shared.callbacks = &c.callbacks
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Input returns the input state fed by the platform adapter.
func (c *Context) Input() *InputState { return c.input }

// Style returns the current style for modification.
func (c *Context) Style() *Style { return &c.style }

// DisplaySize returns the display size in display units.
func (c *Context) DisplaySize() Vec2 { return c.displaySize }

// FramebufferScale returns framebuffer pixels per display unit.
func (c *Context) FramebufferScale() float32 { return c.framebufferScale }

// FrameCount returns the number of frames started so far.
func (c *Context) FrameCount() uint64 { return c.frameCount }

// WantCaptureMouse reports whether the last frame used the mouse, in
// which case the application should not act on it.
func (c *Context) WantCaptureMouse() bool { return c.wantCapture }

// SetSize updates the display size and the framebuffer scale. A new
// scale schedules an atlas rebuild so glyphs stay sharp.
func (c *Context) SetSize(display Vec2, scale float32) {
	if scale <= 0 {
		scale = 1
	}
	c.displaySize = display
	if scale != c.framebufferScale {
		c.framebufferScale = scale
		c.pendingAtlas = true
	}
}

// AddFont registers a font and schedules an atlas rebuild.
func (c *Context) AddFont(info FontInfo) FontID {
	c.fonts = append(c.fonts, fontEntry{base: info})
	c.pendingAtlas = true
	return FontID(len(c.fonts) - 1)
}

// MergeFont adds the glyphs of info to the most recently added font.
// Glyphs the font already has are kept.
func (c *Context) MergeFont(info FontInfo) error {
	if len(c.fonts) == 0 {
		return ErrNoBaseFont
	}
	last := &c.fonts[len(c.fonts)-1]
	last.merged = append(last.merged, info)
	c.pendingAtlas = true
	return nil
}

// UpdateAtlas rebuilds the font atlas when fonts or the scale changed
// since the last build, and reports whether it did. After a rebuild the
// renderer must upload the new pixels and call Atlas.SetTextureID.
func (c *Context) UpdateAtlas() (bool, error) {
	if !c.pendingAtlas && c.atlas != nil {
		return false, nil
	}
	if len(c.fonts) == 0 {
		c.fonts = append(c.fonts, fontEntry{base: DefaultFont(DefaultFontSize)})
	}
	atlas, err := buildAtlas(c.fonts, c.framebufferScale)
	if err != nil {
		return false, err
	}
	if c.atlas != nil {
		atlas.textureID = c.atlas.textureID
	}
	c.atlas = atlas
	c.pendingAtlas = false
	return true, nil
}

// Atlas returns the current font atlas, or nil before the first build.
func (c *Context) Atlas() *Atlas { return c.atlas }

// DoFrame runs one frame: doUI records the interface, then doRender
// receives the draw data. The draw data and every draw list are only
// valid inside doRender. Callback tokens issued by the previous frame
// stop working when the frame starts.
func (c *Context) DoFrame(doUI func(*Frame), doRender func(*DrawData)) {
	if c.inFrame {
		panic("imgui: DoFrame called from inside a frame")
	}
	c.inFrame = true
	defer func() { c.inFrame = false }()

	c.newFrame()
	if doUI != nil {
		doUI(&Frame{ctx: c})
	}
	dd := c.endFrame()
	if doRender != nil {
		doRender(dd)
	}
	c.input.EndFrame()
}

func (c *Context) newFrame() {
	if c.atlas == nil {
		errors.Log1(c.UpdateAtlas())
	}

	c.frameCount++
	c.callbacks.reset()

	releaseDrawList(c.background)
	releaseDrawList(c.foreground)
	for _, w := range c.frameWins {
		releaseDrawList(w.drawList)
		w.drawList = nil
	}
	c.frameWins = c.frameWins[:0]
	c.implicit = nil
	c.next = nextWindowData{}

	c.shared.fullClip = Rect{Max: c.displaySize}
	c.shared.font = nil
	c.shared.fontSize = 0
	if c.atlas != nil {
		if f := c.atlas.Font(0); f != nil {
			c.shared.font = f
			c.shared.fontSize = f.Size()
		}
	}
	c.background = acquireDrawList(&c.shared)
	c.foreground = acquireDrawList(&c.shared)

	c.updateMouse()
}

// updateMouse resolves hovering, focus and title bar dragging against the
// window rectangles of the previous frame.
func (c *Context) updateMouse() {
	mouse, ok := c.input.MousePos()
	c.hovered = nil
	if ok {
		for i := len(c.order) - 1; i >= 0; i-- {
			w := c.order[i]
			if w.lastActive+1 == c.frameCount && w.rect().Contains(mouse) {
				c.hovered = w
				break
			}
		}
	}

	if c.input.MouseClicked(MouseButtonLeft) && c.hovered != nil {
		c.bringToFront(c.hovered)
		w := c.hovered
		if w.flags&WindowFlagsNoMove == 0 && w.titleBarRect().Contains(mouse) {
			c.dragging = w
			c.dragOffset = mouse.Sub(w.pos)
		}
	}
	if c.dragging != nil {
		if !c.input.MouseDown(MouseButtonLeft) {
			c.dragging = nil
		} else if ok {
			c.dragging.pos = mouse.Sub(c.dragOffset)
		}
	}
	c.wantCapture = c.hovered != nil || c.dragging != nil
}

func (c *Context) bringToFront(w *window) {
	if i := slices.Index(c.order, w); i >= 0 {
		c.order = append(slices.Delete(c.order, i, i+1), w)
	}
}

func (c *Context) endFrame() *DrawData {
	if c.implicit != nil {
		c.endWindow(c.implicit)
	}

	c.sorted = append(c.sorted[:0], c.frameWins...)
	slices.SortStableFunc(c.sorted, func(a, b *window) int {
		return slices.Index(c.order, a) - slices.Index(c.order, b)
	})

	// The Lists backing array is reused across frames.
	lists := append(c.drawData.Lists[:0], c.background)
	c.drawData = DrawData{
		DisplaySize:      c.displaySize,
		FramebufferScale: V2(c.framebufferScale, c.framebufferScale),
		callbacks:        &c.callbacks,
	}
	for _, w := range c.sorted {
		lists = append(lists, w.drawList)
	}
	lists = append(lists, c.foreground)
	for _, dl := range lists {
		dl.Finalize()
	}
	c.drawData.Lists = lists
	return &c.drawData
}
