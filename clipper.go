package imgui

// ListClipper is the visible row range of a list whose rows are all the
// same distance apart.
type ListClipper struct {
	StartIdx   int     // first visible row (inclusive)
	EndIdx     int     // last visible row (exclusive)
	ItemHeight float32 // distance between row tops
	TotalItems int
}

// NewListClipper returns the rows of a list of totalItems that intersect
// a view of visibleHeight scrolled scrollY past the list top. One extra
// row is kept at each end for partially visible rows.
func NewListClipper(totalItems int, itemHeight, visibleHeight, scrollY float32) ListClipper {
	c := ListClipper{ItemHeight: itemHeight, TotalItems: totalItems}
	if totalItems <= 0 || itemHeight <= 0 || visibleHeight <= 0 {
		return c
	}
	c.StartIdx = max(int(scrollY/itemHeight), 0)
	c.EndIdx = c.StartIdx + int(visibleHeight/itemHeight) + 2
	c.StartIdx = min(c.StartIdx, totalItems)
	c.EndIdx = min(c.EndIdx, totalItems)
	return c
}

// VisibleCount returns the number of rows in the range.
func (c ListClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}

// ContentHeight returns the height of the whole list.
func (c ListClipper) ContentHeight() float32 {
	return float32(c.TotalItems) * c.ItemHeight
}

// TextLineHeightWithSpacing returns the distance between two lines drawn
// with TextUnformatted at the current font.
func (f *Frame) TextLineHeightWithSpacing() float32 {
	c := f.ctx
	h := c.shared.fontSize
	if font := c.shared.font; font != nil && font.Size() > 0 {
		h = c.shared.fontSize * font.LineHeight() / font.Size()
	}
	return h + c.style.ItemSpacing.Y
}

// WithListClipper lays out count rows spaced pitch apart starting at the
// cursor, and calls fn only for the rows inside the current clip
// rectangle. fn must advance the cursor by pitch per row. Space for the
// skipped rows is still reserved, so scrolling and auto-fit see the full
// list.
func (f *Frame) WithListClipper(count int, pitch float32, fn func(f *Frame, start, end int)) {
	w := f.current()
	spacing := f.ctx.style.ItemSpacing.Y
	top := w.cursor.Y
	clip := w.drawList.ClipRect()
	lc := NewListClipper(count, pitch, clip.Max.Y-maxf(clip.Min.Y, top), clip.Min.Y-top)

	w.skipRows(lc.StartIdx, pitch, spacing)
	if lc.VisibleCount() > 0 {
		fn(f, lc.StartIdx, lc.EndIdx)
	}
	w.skipRows(count-lc.EndIdx, pitch, spacing)
}

func (w *window) skipRows(n int, pitch, spacing float32) {
	if n <= 0 {
		return
	}
	w.addItem(V2(0, float32(n)*pitch-spacing), V2(0, spacing))
}
