package imgui

import "strings"

// Cond selects when a SetNextWindow* value is applied.
type Cond int

const (
	// CondAlways applies the value every frame. The zero Cond means the same.
	CondAlways Cond = 1 << iota
	// CondOnce applies the value the first time it is set for a window.
	// Applying a value under any other condition except CondAlways also
	// uses it up, so CondOnce after a CondFirstUseEver placement does
	// nothing.
	CondOnce
	// CondFirstUseEver applies the value only when the window is created.
	CondFirstUseEver
	// CondAppearing applies the value whenever the window appears after
	// being hidden for at least one frame.
	CondAppearing
)

// WindowFlags adjust the behavior of a window.
type WindowFlags int

const (
	WindowFlagsNoTitleBar WindowFlags = 1 << iota
	WindowFlagsNoBackground
	WindowFlagsNoMove
	WindowFlagsNoCollapse
	WindowFlagsAlwaysAutoResize

	WindowFlagsNone WindowFlags = 0
)

const implicitWindowName = "Debug##Default"

// SizeCallbackData is passed to a size constraint callback.
type SizeCallbackData struct {
	pos, current, desired Vec2
}

// Pos returns the window position.
func (d *SizeCallbackData) Pos() Vec2 { return d.pos }

// CurrentSize returns the size of the window before this frame.
func (d *SizeCallbackData) CurrentSize() Vec2 { return d.current }

// DesiredSize returns the size the window is about to get.
func (d *SizeCallbackData) DesiredSize() Vec2 { return d.desired }

// SetDesiredSize overrides the size the window gets.
func (d *SizeCallbackData) SetDesiredSize(size Vec2) { d.desired = size }

type nextWindowData struct {
	posCond   Cond
	pos       Vec2
	pivot     Vec2
	sizeCond  Cond
	size      Vec2
	collCond  Cond
	collapsed bool

	hasContentSize bool
	contentSize    Vec2
	hasBgAlpha     bool
	bgAlpha        float32
	hasScroll      bool
	scroll         Vec2
	focus          bool

	hasConstraints bool
	minSize        Vec2
	maxSize        Vec2
	constraintCb   func(*SizeCallbackData)
}

type window struct {
	id     ID
	name   string
	flags  WindowFlags
	parent *window

	pos       Vec2
	size      Vec2
	autoFit   [2]bool
	collapsed bool
	scroll    Vec2

	// contentSize is what the previous frame measured; explicitContent
	// overrides it when set with SetNextWindowContentSize.
	contentSize     Vec2
	explicitContent Vec2

	created    uint64
	lastActive uint64
	appearing  bool
	isNew      bool
	// Conditions still allowed per setting; only CondOnce is consumed.
	posCond  Cond
	sizeCond Cond
	collCond Cond

	drawList    *DrawList
	titleHeight float32
	cursorStart Vec2
	cursor      Vec2
	cursorMax   Vec2
	indentX     float32
}

func newWindow(id ID, name string, parent *window) *window {
	allowed := CondOnce | CondFirstUseEver | CondAppearing
	return &window{
		id:       id,
		name:     name,
		parent:   parent,
		pos:      V2(60, 60),
		autoFit:  [2]bool{true, true},
		posCond:  allowed,
		sizeCond: allowed,
		collCond: allowed,
	}
}

// title returns the visible part of the name: everything before "##".
func (w *window) title() string {
	if i := strings.Index(w.name, "##"); i >= 0 {
		return w.name[:i]
	}
	return w.name
}

// rect returns the area the window covers on screen.
func (w *window) rect() Rect {
	size := w.size
	if w.collapsed {
		size.Y = w.titleHeight
	}
	return RectFromSize(w.pos, size)
}

func (w *window) titleBarRect() Rect {
	return RectFromSize(w.pos, V2(w.size.X, w.titleHeight))
}

func (w *window) innerRect() Rect {
	return Rect{Min: w.pos.Add(V2(0, w.titleHeight)), Max: w.pos.Add(w.size)}
}

// allow reports whether a value set with cond may be applied now, and
// consumes the one-shot conditions.
func (w *window) allow(mask *Cond, cond Cond) bool {
	if cond == 0 {
		cond = CondAlways
	}
	if cond&CondAlways != 0 {
		return true
	}
	ok := cond&CondOnce != 0 && *mask&CondOnce != 0
	if cond&CondFirstUseEver != 0 && w.isNew {
		ok = true
	}
	if cond&CondAppearing != 0 && w.appearing {
		ok = true
	}
	if ok {
		*mask &^= CondOnce
	}
	return ok
}

// addItem reserves size at the cursor and moves the cursor to the next
// line.
func (w *window) addItem(size Vec2, spacing Vec2) {
	end := w.cursor.Add(size)
	w.cursorMax.X = maxf(w.cursorMax.X, end.X)
	w.cursorMax.Y = maxf(w.cursorMax.Y, end.Y)
	w.cursor = V2(w.indentX, end.Y+spacing.Y)
}

func (w *window) effectiveContent() Vec2 {
	c := w.contentSize
	if w.explicitContent.X > 0 {
		c.X = w.explicitContent.X
	}
	if w.explicitContent.Y > 0 {
		c.Y = w.explicitContent.Y
	}
	return c
}

// findWindow returns the window with the given name under parent,
// creating it on first use.
func (c *Context) findWindow(name string, parent *window) *window {
	var pid ID
	if parent != nil {
		pid = parent.id
	}
	id := hashID(pid, name)
	w, ok := c.windows[id]
	if !ok {
		w = newWindow(id, name, parent)
		w.created = c.frameCount
		c.windows[id] = w
		if parent == nil {
			c.order = append(c.order, w)
		}
	}
	return w
}

// beginWindow lays out the window for this frame, draws its decorations
// and leaves its draw list clipped to the content area. It reports false
// when the window is collapsed.
func (c *Context) beginWindow(w *window, flags WindowFlags, open *bool) bool {
	if w.lastActive == c.frameCount {
		// Appending to a window already begun this frame.
		c.next = nextWindowData{}
		w.drawList.PushClipRect(w.innerRect().Min, w.innerRect().Max, true)
		return !w.collapsed
	}

	nd := c.next
	c.next = nextWindowData{}

	w.flags = flags
	w.isNew = w.created == c.frameCount
	w.appearing = w.isNew || w.lastActive+1 != c.frameCount
	w.lastActive = c.frameCount
	style := &c.style
	font := c.shared.font

	if w.parent == nil {
		w.drawList = acquireDrawList(&c.shared)
		c.frameWins = append(c.frameWins, w)
		if nd.focus {
			c.bringToFront(w)
		}
	} else {
		w.drawList = w.parent.drawList
	}

	w.titleHeight = 0
	if flags&WindowFlagsNoTitleBar == 0 && font != nil {
		w.titleHeight = c.shared.fontSize*font.LineHeight()/font.Size() + 2*style.FramePadding.Y
	}

	if nd.collCond != 0 && flags&WindowFlagsNoCollapse == 0 && w.allow(&w.collCond, nd.collCond) {
		w.collapsed = nd.collapsed
	}
	if flags&WindowFlagsNoCollapse != 0 {
		w.collapsed = false
	}
	if nd.hasContentSize {
		w.explicitContent = nd.contentSize
	}
	if nd.hasScroll {
		w.scroll = nd.scroll
	}

	// Size.
	prevSize := w.size
	if nd.sizeCond != 0 && w.allow(&w.sizeCond, nd.sizeCond) {
		w.autoFit = [2]bool{nd.size.X <= 0, nd.size.Y <= 0}
		if nd.size.X > 0 {
			w.size.X = nd.size.X
		}
		if nd.size.Y > 0 {
			w.size.Y = nd.size.Y
		}
	}
	fit := w.effectiveContent().Add(style.WindowPadding.Mul(2)).Add(V2(0, w.titleHeight))
	if flags&WindowFlagsAlwaysAutoResize != 0 || w.autoFit[0] {
		w.size.X = fit.X
	}
	if flags&WindowFlagsAlwaysAutoResize != 0 || w.autoFit[1] {
		w.size.Y = fit.Y
	}
	if w.parent == nil {
		w.size.X = maxf(w.size.X, style.WindowMinSize.X)
		w.size.Y = maxf(w.size.Y, style.WindowMinSize.Y)
	}
	if nd.hasConstraints {
		w.size = constrainSize(w.pos, prevSize, w.size, nd)
	}

	// Position, applied once the size is known so the pivot can use it.
	if nd.posCond != 0 && w.allow(&w.posCond, nd.posCond) {
		w.pos = nd.pos.Sub(V2(nd.pivot.X*w.size.X, nd.pivot.Y*w.size.Y))
	}

	// Scrolling.
	inner := w.innerRect()
	if c.hovered == w && !w.collapsed && font != nil {
		w.scroll.Y -= c.input.MouseWheel().Y * 5 * c.shared.fontSize
		w.scroll.X -= c.input.MouseWheel().X * 5 * c.shared.fontSize
	}
	content := w.effectiveContent()
	maxScroll := content.Add(style.WindowPadding.Mul(2)).Sub(inner.Size())
	w.scroll.X = clampf(w.scroll.X, 0, maxf(maxScroll.X, 0))
	w.scroll.Y = clampf(w.scroll.Y, 0, maxf(maxScroll.Y, 0))

	c.drawDecorations(w, nd, open)

	w.cursorStart = inner.Min.Add(style.WindowPadding).Sub(w.scroll)
	w.cursor = w.cursorStart
	w.cursorMax = w.cursorStart
	w.indentX = w.cursorStart.X

	w.drawList.PushClipRect(inner.Min, inner.Max, true)
	return !w.collapsed
}

func constrainSize(pos, current, size Vec2, nd nextWindowData) Vec2 {
	if nd.minSize.X >= 0 && nd.maxSize.X >= 0 {
		size.X = clampf(size.X, nd.minSize.X, nd.maxSize.X)
	}
	if nd.minSize.Y >= 0 && nd.maxSize.Y >= 0 {
		size.Y = clampf(size.Y, nd.minSize.Y, nd.maxSize.Y)
	}
	if nd.constraintCb != nil {
		data := SizeCallbackData{pos: pos, current: current, desired: size}
		nd.constraintCb(&data)
		size = data.desired
	}
	return size
}

func (c *Context) drawDecorations(w *window, nd nextWindowData, open *bool) {
	style := &c.style
	dl := w.drawList
	r := w.rect()
	mouse, hasMouse := c.input.MousePos()
	clicked := hasMouse && c.hovered == w && c.input.MouseClicked(MouseButtonLeft)

	if w.flags&WindowFlagsNoTitleBar == 0 && w.parent == nil {
		th := w.titleHeight
		fs := c.shared.fontSize

		if w.flags&WindowFlagsNoCollapse == 0 {
			btn := RectFromSize(w.pos, V2(th, th))
			if clicked && btn.Contains(mouse) {
				w.collapsed = !w.collapsed
				r = w.rect()
			}
		}
		if open != nil {
			btn := RectFromSize(V2(w.pos.X+w.size.X-th, w.pos.Y), V2(th, th))
			if clicked && btn.Contains(mouse) {
				*open = false
			}
		}

		bg := nd.bgAlpha
		if !nd.hasBgAlpha {
			bg = 1
		}
		if !w.collapsed && w.flags&WindowFlagsNoBackground == 0 {
			dl.AddRectFilled(V2(r.Min.X, r.Min.Y+th), r.Max, WithAlpha(style.WindowBgColor, bg), style.WindowRounding)
		}

		title := style.TitleBgColor
		switch {
		case w.collapsed:
			title = style.TitleBgCollapsed
		case len(c.order) > 0 && c.order[len(c.order)-1] == w:
			title = style.TitleBgActive
		}
		dl.AddRectFilled(w.pos, V2(r.Max.X, w.pos.Y+th), title, style.WindowRounding)

		textX := w.pos.X + style.FramePadding.X
		if w.flags&WindowFlagsNoCollapse == 0 {
			// Triangle pointing right when collapsed, down when open.
			cx, cy, h := w.pos.X+th*0.5, w.pos.Y+th*0.5, fs*0.3
			if w.collapsed {
				dl.AddTriangleFilled(V2(cx-h*0.6, cy-h), V2(cx+h, cy), V2(cx-h*0.6, cy+h), style.CollapseIconColor)
			} else {
				dl.AddTriangleFilled(V2(cx-h, cy-h*0.6), V2(cx+h, cy-h*0.6), V2(cx, cy+h), style.CollapseIconColor)
			}
			textX = w.pos.X + th
		}
		if open != nil {
			cx, cy, h := w.pos.X+w.size.X-th*0.5, w.pos.Y+th*0.5, fs*0.3
			dl.AddLine(V2(cx-h, cy-h), V2(cx+h, cy+h), style.TextColor, 1)
			dl.AddLine(V2(cx+h, cy-h), V2(cx-h, cy+h), style.TextColor, 1)
		}
		if c.shared.font != nil {
			titleClip := Rect{Min: w.pos, Max: V2(r.Max.X-th, w.pos.Y+th)}
			dl.AddTextFont(c.shared.font, fs, V2(textX, w.pos.Y+style.FramePadding.Y), style.TextColor, w.title(), 0, &titleClip)
		}
	} else if w.flags&WindowFlagsNoBackground == 0 {
		col := style.WindowBgColor
		if w.parent != nil {
			col = style.ChildBgColor
		}
		if nd.hasBgAlpha {
			col = WithAlpha(col|0xFF000000, nd.bgAlpha)
		}
		dl.AddRectFilled(r.Min, r.Max, col, style.WindowRounding)
	}

	if style.BorderSize > 0 && (w.parent == nil || w.flags&childBorder != 0) {
		dl.AddRect(r.Min, r.Max, style.BorderColor, style.WindowRounding, style.BorderSize)
	}
}

// childBorder marks child windows created with a border.
const childBorder WindowFlags = 1 << 30

func (c *Context) endWindow(w *window) {
	w.drawList.PopClipRect()
	if w.lastActive == c.frameCount {
		w.contentSize = w.cursorMax.Sub(w.cursorStart)
	}
}
