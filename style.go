package imgui

// Style defines the look of windows and text.
type Style struct {
	TextColor uint32

	WindowBgColor     uint32
	ChildBgColor      uint32
	BorderColor       uint32
	TitleBgColor      uint32
	TitleBgActive     uint32
	TitleBgCollapsed  uint32
	CollapseIconColor uint32

	WindowPadding  Vec2
	ItemSpacing    Vec2
	FramePadding   Vec2
	WindowRounding float32
	BorderSize     float32

	// WindowMinSize is the smallest size a window can be given.
	WindowMinSize Vec2
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	return Style{
		TextColor: ColorWhite,

		WindowBgColor:     RGBA(15, 15, 15, 240),
		ChildBgColor:      ColorTransparent,
		BorderColor:       RGBA(110, 110, 128, 128),
		TitleBgColor:      RGBA(10, 10, 10, 255),
		TitleBgActive:     RGBA(41, 74, 122, 255),
		TitleBgCollapsed:  RGBA(0, 0, 0, 130),
		CollapseIconColor: RGBA(200, 200, 200, 255),

		WindowPadding:  V2(8, 8),
		ItemSpacing:    V2(8, 4),
		FramePadding:   V2(4, 3),
		WindowRounding: 0,
		BorderSize:     1,

		WindowMinSize: V2(32, 32),
	}
}

// GTAStyle returns a San Andreas menu inspired style: black panels with
// cyan titles and yellow text.
func GTAStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(255, 200, 0, 255)
	s.WindowBgColor = RGBA(0, 0, 0, 220)
	s.BorderColor = RGBA(100, 100, 100, 255)
	s.TitleBgColor = RGBA(0, 40, 60, 255)
	s.TitleBgActive = RGBA(0, 60, 90, 255)
	s.CollapseIconColor = RGBA(255, 200, 0, 255)
	return s
}
