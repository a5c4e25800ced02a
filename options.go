package imgui

// Option configures a Context.
type Option func(*Context)

// WithDisplaySize sets the initial display size in display units.
func WithDisplaySize(size Vec2) Option {
	return func(c *Context) {
		c.displaySize = size
	}
}

// WithFont adds font as a font of the context; the first font added is
// the default one.
func WithFont(font FontInfo) Option {
	return func(c *Context) {
		c.AddFont(font)
	}
}

// WithStyle replaces the default style.
func WithStyle(style Style) Option {
	return func(c *Context) {
		c.style = style
	}
}
