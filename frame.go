package imgui

// Frame records the interface of one frame. It is only valid inside the
// UI function passed to Context.DoFrame.
//
// Content emitted outside any window goes to an implicit "Debug" window.
type Frame struct {
	ctx *Context
	win *window
}

// Context returns the context running the frame.
func (f *Frame) Context() *Context { return f.ctx }

func (f *Frame) current() *window {
	if f.win != nil {
		return f.win
	}
	c := f.ctx
	if c.implicit == nil {
		w := c.findWindow(implicitWindowName, nil)
		pending := c.next
		c.next = nextWindowData{sizeCond: CondFirstUseEver, size: V2(400, 400)}
		c.beginWindow(w, WindowFlagsNone, nil)
		c.next = pending
		c.implicit = w
	}
	return c.implicit
}

// WithWindow begins a top-level window, runs f to fill it unless it is
// collapsed, and ends it. With a non-nil open the title bar gets a close
// button that sets *open to false; a window whose *open is false is
// skipped entirely.
//
// Windows are identified by name. Text after "##" in the name is not
// shown, so "Stats##1" and "Stats##2" are different windows with the
// same title. Calling WithWindow twice with one name in a frame appends
// to the same window.
func (f *Frame) WithWindow(name string, open *bool, flags WindowFlags, fn func(*Frame)) {
	c := f.ctx
	if open != nil && !*open {
		c.next = nextWindowData{}
		return
	}
	w := c.findWindow(name, nil)
	visible := c.beginWindow(w, flags, open)
	if visible && fn != nil {
		saved := f.win
		f.win = w
		fn(f)
		f.win = saved
	}
	c.endWindow(w)
}

// WithChild begins a scrolling region inside the current window at the
// cursor. A size component of zero fills the remaining space; a negative
// one fills it minus that amount.
func (f *Frame) WithChild(name string, size Vec2, border bool, flags WindowFlags, fn func(*Frame)) {
	c := f.ctx
	parent := f.current()
	avail := f.ContentRegionAvail()
	if size.X <= 0 {
		size.X = maxf(avail.X+size.X, 4)
	}
	if size.Y <= 0 {
		size.Y = maxf(avail.Y+size.Y, 4)
	}

	w := c.findWindow(name, parent)
	flags |= WindowFlagsNoTitleBar | WindowFlagsNoCollapse | WindowFlagsNoMove
	if border {
		flags |= childBorder
	}
	c.SetNextWindowPos(parent.cursor, CondAlways, Vec2{})
	c.SetNextWindowSize(size, CondAlways)
	c.beginWindow(w, flags, nil)
	if fn != nil {
		saved := f.win
		f.win = w
		fn(f)
		f.win = saved
	}
	c.endWindow(w)
	parent.addItem(size, c.style.ItemSpacing)
}

// WithGroup lays out the items of fn as a single item, so the group
// occupies their bounding box.
func (f *Frame) WithGroup(fn func(*Frame)) {
	w := f.current()
	start := w.cursor
	prevMax, prevIndent := w.cursorMax, w.indentX
	w.cursorMax = start
	w.indentX = start.X
	fn(f)
	size := w.cursorMax.Sub(start)
	w.cursorMax, w.indentX = prevMax, prevIndent
	w.cursor = start
	w.addItem(size, f.ctx.style.ItemSpacing)
}

// WithFont draws the text emitted by fn with the font id. Unknown ids
// keep the current font.
func (f *Frame) WithFont(id FontID, fn func(*Frame)) {
	c := f.ctx
	var font *Font
	if c.atlas != nil {
		font = c.atlas.Font(id)
	}
	if font == nil {
		fn(f)
		return
	}
	prevFont, prevSize := c.shared.font, c.shared.fontSize
	c.shared.font, c.shared.fontSize = font, font.Size()
	defer func() { c.shared.font, c.shared.fontSize = prevFont, prevSize }()
	fn(f)
}

// SetNextWindowPos positions the next window. pivot selects the point of
// the window placed at pos: (0,0) is the top-left corner, (0.5,0.5) the
// center.
func (f *Frame) SetNextWindowPos(pos Vec2, cond Cond, pivot Vec2) {
	f.ctx.SetNextWindowPos(pos, cond, pivot)
}

// SetNextWindowPos is Frame.SetNextWindowPos on the context.
func (c *Context) SetNextWindowPos(pos Vec2, cond Cond, pivot Vec2) {
	c.next.posCond = orAlways(cond)
	c.next.pos = pos
	c.next.pivot = pivot
}

// SetNextWindowSize sizes the next window. A zero component auto-fits
// that axis to the content.
func (f *Frame) SetNextWindowSize(size Vec2, cond Cond) {
	f.ctx.SetNextWindowSize(size, cond)
}

// SetNextWindowSize is Frame.SetNextWindowSize on the context.
func (c *Context) SetNextWindowSize(size Vec2, cond Cond) {
	c.next.sizeCond = orAlways(cond)
	c.next.size = size
}

// SetNextWindowContentSize sets the size of the next window's content,
// used for auto-fit and scrolling limits instead of the measured one.
func (f *Frame) SetNextWindowContentSize(size Vec2) {
	f.ctx.next.hasContentSize = true
	f.ctx.next.contentSize = size
}

// SetNextWindowCollapsed collapses or expands the next window.
func (f *Frame) SetNextWindowCollapsed(collapsed bool, cond Cond) {
	f.ctx.next.collCond = orAlways(cond)
	f.ctx.next.collapsed = collapsed
}

// SetNextWindowFocus brings the next window to the front.
func (f *Frame) SetNextWindowFocus() {
	f.ctx.next.focus = true
}

// SetNextWindowScroll sets the scroll offset of the next window.
func (f *Frame) SetNextWindowScroll(scroll Vec2) {
	f.ctx.next.hasScroll = true
	f.ctx.next.scroll = scroll
}

// SetNextWindowBgAlpha overrides the alpha of the next window's
// background.
func (f *Frame) SetNextWindowBgAlpha(alpha float32) {
	f.ctx.next.hasBgAlpha = true
	f.ctx.next.bgAlpha = alpha
}

// SetNextWindowSizeConstraints clamps the next window's size per axis.
// A negative min or max leaves that axis unconstrained.
func (f *Frame) SetNextWindowSizeConstraints(min, max Vec2) {
	f.SetNextWindowSizeConstraintsCallback(min, max, nil)
}

// SetNextWindowSizeConstraintsCallback is SetNextWindowSizeConstraints
// with a callback that can adjust the clamped size.
func (f *Frame) SetNextWindowSizeConstraintsCallback(min, max Vec2, cb func(*SizeCallbackData)) {
	n := &f.ctx.next
	n.hasConstraints = true
	n.minSize, n.maxSize = min, max
	n.constraintCb = cb
}

func orAlways(cond Cond) Cond {
	if cond == 0 {
		return CondAlways
	}
	return cond
}

// TextUnformatted draws text at the cursor without any formatting.
func (f *Frame) TextUnformatted(text string) {
	w := f.current()
	c := f.ctx
	font := c.shared.font
	if font == nil {
		return
	}
	size := font.CalcTextSize(text, c.shared.fontSize, 0)
	if text == "" {
		size.Y = c.shared.fontSize * font.LineHeight() / font.Size()
	}
	w.drawList.AddTextFont(font, c.shared.fontSize, w.cursor, c.style.TextColor, text, 0, nil)
	w.addItem(size, c.style.ItemSpacing)
}

// Dummy reserves space at the cursor, typically for custom drawing
// through WindowDrawList.
func (f *Frame) Dummy(size Vec2) {
	f.current().addItem(size, f.ctx.style.ItemSpacing)
}

// CursorScreenPos returns the screen position of the next item.
func (f *Frame) CursorScreenPos() Vec2 {
	return f.current().cursor
}

// ContentRegionAvail returns the space left between the cursor and the
// bottom-right of the current window's content area.
func (f *Frame) ContentRegionAvail() Vec2 {
	w := f.current()
	inner := w.innerRect()
	end := inner.Max.Sub(f.ctx.style.WindowPadding)
	return V2(maxf(end.X-w.cursor.X, 0), maxf(end.Y-w.cursor.Y, 0))
}

// WindowPos returns the top-left corner of the current window.
func (f *Frame) WindowPos() Vec2 { return f.current().pos }

// WindowSize returns the size of the current window.
func (f *Frame) WindowSize() Vec2 { return f.current().size }

// WindowDrawList returns the draw list of the current window.
func (f *Frame) WindowDrawList() *DrawList { return f.current().drawList }

// ForegroundDrawList returns the list drawn over every window.
func (f *Frame) ForegroundDrawList() *DrawList { return f.ctx.foreground }

// BackgroundDrawList returns the list drawn under every window.
func (f *Frame) BackgroundDrawList() *DrawList { return f.ctx.background }

// Font returns the font used for text at this point of the frame.
func (f *Frame) Font() *Font { return f.ctx.shared.font }

// FontSize returns the current text size in display units.
func (f *Frame) FontSize() float32 { return f.ctx.shared.fontSize }
