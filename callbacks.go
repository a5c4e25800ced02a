package imgui

// CallbackToken names a closure embedded in a draw command. The zero
// token names nothing.
//
// A token is only valid during the frame that produced it: the registry
// is cleared when the next frame starts.
type CallbackToken uint64

// callbackRegistry maps tokens to single-use closures.
type callbackRegistry struct {
	gen uint32
	fns []func()
}

// reset drops every pending closure and invalidates all issued tokens.
func (r *callbackRegistry) reset() {
	r.gen++
	clear(r.fns)
	r.fns = r.fns[:0]
}

func (r *callbackRegistry) register(fn func()) CallbackToken {
	r.fns = append(r.fns, fn)
	return CallbackToken(uint64(r.gen)<<32 | uint64(len(r.fns)))
}

// invoke runs the closure behind t and forgets it. Stale, unknown and
// already used tokens report false.
func (r *callbackRegistry) invoke(t CallbackToken) bool {
	if uint32(t>>32) != r.gen {
		return false
	}
	i := int(uint32(t)) - 1
	if i < 0 || i >= len(r.fns) || r.fns[i] == nil {
		return false
	}
	fn := r.fns[i]
	r.fns[i] = nil
	fn()
	return true
}

// pending returns how many registered closures have not run yet.
func (r *callbackRegistry) pending() int {
	n := 0
	for _, fn := range r.fns {
		if fn != nil {
			n++
		}
	}
	return n
}

// DrawData is everything a renderer needs to draw one frame. It is only
// valid inside the render function passed to Context.DoFrame.
type DrawData struct {
	DisplayPos       Vec2
	DisplaySize      Vec2
	FramebufferScale Vec2

	// Lists in painting order: background, windows back to front,
	// foreground.
	Lists []*DrawList

	callbacks *callbackRegistry
}

// Invoke runs the callback embedded in a draw command. Each token runs at
// most once; Invoke returns false for tokens that already ran or belong
// to another frame.
func (d *DrawData) Invoke(t CallbackToken) bool {
	if d.callbacks == nil || t == 0 {
		return false
	}
	return d.callbacks.invoke(t)
}

// FramebufferSize returns the display size in framebuffer pixels.
func (d *DrawData) FramebufferSize() (width, height int32) {
	return int32(d.DisplaySize.X*d.FramebufferScale.X + 0.5), int32(d.DisplaySize.Y*d.FramebufferScale.Y + 0.5)
}

// TotalVtxCount returns the number of vertices over all lists.
func (d *DrawData) TotalVtxCount() int {
	n := 0
	for _, dl := range d.Lists {
		n += len(dl.VtxBuffer)
	}
	return n
}

// TotalIdxCount returns the number of indices over all lists.
func (d *DrawData) TotalIdxCount() int {
	n := 0
	for _, dl := range d.Lists {
		n += len(dl.IdxBuffer)
	}
	return n
}
