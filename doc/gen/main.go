// Command gen renders a set of sample frames offscreen and saves them as
// JPEG screenshots in doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/go-theft-auto/imgui"
	"github.com/go-theft-auto/imgui/backend/opengl"
	"github.com/go-theft-auto/imgui/glr"
	"github.com/go-theft-auto/imgui/internal/config"
	"github.com/go-theft-auto/imgui/renderer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	path := flag.String("config", "", "TOML settings file (defaults when empty)")
	out := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	flag.Parse()
	if err := run(*path, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot is a single frame to capture.
type screenshot struct {
	name   string               // filename without extension
	width  int                  // image width
	height int                  // image height
	setup  func(*imgui.Context) // optional, runs before the renderer is created
	draw   func(*imgui.Frame)   // frame contents
	frames int                  // frames to render before capture (0 = 2)
}

// Screenshots are never larger than the hidden window, so the resolve
// into the default framebuffer keeps every pixel.
const maxWidth, maxHeight = 800, 600

func run(path, outDir string) error {
	conf := config.Default()
	if path != "" {
		var err error
		if conf, err = config.Load(path); err != nil {
			return err
		}
	}
	logger, err := conf.Logger()
	if err != nil {
		return err
	}
	glr.SetLogger(logger)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(maxWidth, maxHeight, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	gl, err := opengl.NewContext()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if s.width > maxWidth || s.height > maxHeight {
			return fmt.Errorf("screenshot %s: %dx%d exceeds %dx%d", s.name, s.width, s.height, maxWidth, maxHeight)
		}
		if err := capture(gl, conf, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		logger.Info("saved screenshot", "name", s.name+".jpg", "width", s.width, "height", s.height)
	}
	logger.Info("done", "count", len(shots), "dir", outDir)
	return nil
}

func capture(gl glr.Context, conf config.Config, s screenshot, outDir string) error {
	w, h := int32(s.width), int32(s.height)

	// Fresh context per screenshot so window state does not leak between
	// captures.
	ctx := imgui.New(
		imgui.WithFont(imgui.DefaultFont(conf.FontSize)),
		imgui.WithStyle(conf.GUIStyle()),
		imgui.WithDisplaySize(imgui.V2(float32(s.width), float32(s.height))),
	)
	if err := ctx.MergeFont(imgui.NewFontInfo(gomono.TTF, conf.FontSize).CharRange(0x400, 0x4FF)); err != nil {
		return err
	}
	if s.setup != nil {
		s.setup(ctx)
	}

	target, err := glr.NewMultisampleTarget(gl, w, h)
	if err != nil {
		return err
	}
	defer target.Delete()

	r, err := renderer.New(gl, ctx, renderer.WithClearColor(glr.NewRgba(0.12, 0.12, 0.14, 1)))
	if err != nil {
		return err
	}
	defer r.Delete()

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}
	for range frames {
		scope := target.Begin()
		ctx.DoFrame(s.draw, r.Render)
		scope.Restore()
	}
	target.Resolve(nil)
	if err := glr.CheckGL(gl); err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, w, h, glr.RGBA, glr.UNSIGNED_BYTE, pixels)

	// OpenGL rows start at the bottom.
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func buildScreenshots() []screenshot {
	accent := imgui.RGBA(90, 200, 255, 255)
	open := true
	var mono imgui.FontID

	return []screenshot{
		{
			name: "window", width: 320, height: 200,
			draw: func(f *imgui.Frame) {
				f.SetNextWindowPos(imgui.V2(10, 10), imgui.CondAlways, imgui.Vec2{})
				f.SetNextWindowSize(imgui.V2(300, 180), imgui.CondAlways)
				f.WithWindow("Window", &open, imgui.WindowFlagsNone, func(f *imgui.Frame) {
					f.TextUnformatted("A window with a close button.")
					f.TextUnformatted("Each call starts a new line.")
					f.TextUnformatted("Привет, мир")
				})
			},
		},
		{
			name: "autofit", width: 320, height: 160,
			draw: func(f *imgui.Frame) {
				f.SetNextWindowPos(imgui.V2(10, 10), imgui.CondAlways, imgui.Vec2{})
				f.WithWindow("Auto resize", nil, imgui.WindowFlagsAlwaysAutoResize, func(f *imgui.Frame) {
					f.TextUnformatted("The window fits its content.")
					f.Dummy(imgui.V2(200, 40))
				})
			},
		},
		{
			name: "centered", width: 400, height: 240,
			draw: func(f *imgui.Frame) {
				f.SetNextWindowPos(imgui.V2(200, 120), imgui.CondAlways, imgui.V2(0.5, 0.5))
				f.SetNextWindowSize(imgui.V2(220, 100), imgui.CondAlways)
				f.SetNextWindowBgAlpha(0.6)
				f.WithWindow("Centered", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) {
					f.TextUnformatted("Pivot (0.5, 0.5)")
				})
			},
		},
		{
			name: "collapsed", width: 320, height: 80,
			draw: func(f *imgui.Frame) {
				f.SetNextWindowPos(imgui.V2(10, 10), imgui.CondAlways, imgui.Vec2{})
				f.SetNextWindowSize(imgui.V2(300, 200), imgui.CondAlways)
				f.SetNextWindowCollapsed(true, imgui.CondAlways)
				f.WithWindow("Collapsed", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) {
					f.TextUnformatted("hidden")
				})
			},
		},
		{
			name: "child", width: 360, height: 260,
			draw: func(f *imgui.Frame) {
				f.SetNextWindowPos(imgui.V2(10, 10), imgui.CondAlways, imgui.Vec2{})
				f.SetNextWindowSize(imgui.V2(340, 240), imgui.CondAlways)
				f.WithWindow("Child", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) {
					f.TextUnformatted("A bordered child region:")
					f.WithChild("list", imgui.V2(0, 150), true, imgui.WindowFlagsNone, func(f *imgui.Frame) {
						for i := range 20 {
							f.TextUnformatted(fmt.Sprintf("row %02d", i))
						}
					})
					f.TextUnformatted("After the child.")
				})
			},
		},
		{
			name: "fonts", width: 360, height: 160,
			setup: func(ctx *imgui.Context) {
				mono = ctx.AddFont(imgui.NewFontInfo(gomono.TTF, 20))
			},
			draw: func(f *imgui.Frame) {
				f.SetNextWindowPos(imgui.V2(10, 10), imgui.CondAlways, imgui.Vec2{})
				f.WithWindow("Fonts", nil, imgui.WindowFlagsAlwaysAutoResize, func(f *imgui.Frame) {
					f.TextUnformatted("Go Regular")
					f.WithFont(mono, func(f *imgui.Frame) {
						f.TextUnformatted("Go Mono 20px")
					})
				})
			},
		},
		{
			name: "drawlist", width: 420, height: 260,
			draw: func(f *imgui.Frame) {
				f.SetNextWindowPos(imgui.V2(10, 10), imgui.CondAlways, imgui.Vec2{})
				f.SetNextWindowSize(imgui.V2(400, 240), imgui.CondAlways)
				f.WithWindow("Draw list", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) {
					dl := f.WindowDrawList()
					p := f.CursorScreenPos()
					dl.AddLine(p, p.Add(imgui.V2(60, 40)), accent, 2)
					dl.AddRect(p.Add(imgui.V2(70, 0)), p.Add(imgui.V2(130, 40)), accent, 6, 1.5)
					dl.AddRectFilledMultiColor(p.Add(imgui.V2(140, 0)), p.Add(imgui.V2(200, 40)),
						imgui.ColorRed, imgui.ColorGreen, imgui.ColorBlue, imgui.ColorYellow)
					dl.AddCircleFilled(p.Add(imgui.V2(230, 20)), 20, accent, 0)
					dl.AddNgon(p.Add(imgui.V2(290, 20)), 20, accent, 6, 2)

					q := p.Add(imgui.V2(0, 70))
					dl.AddTriangleFilled(q.Add(imgui.V2(30, 0)), q.Add(imgui.V2(60, 50)), q.Add(imgui.V2(0, 50)), accent)
					dl.AddBezierCubic(q.Add(imgui.V2(80, 50)), q.Add(imgui.V2(120, -30)), q.Add(imgui.V2(180, 80)), q.Add(imgui.V2(220, 0)), accent, 2, 0)
					dl.AddText(q.Add(imgui.V2(240, 20)), imgui.ColorWhite, "AddText")
					f.Dummy(imgui.V2(360, 140))
				})
			},
		},
		{
			name: "layers", width: 320, height: 200,
			draw: func(f *imgui.Frame) {
				f.BackgroundDrawList().AddRectFilled(imgui.V2(0, 0), imgui.V2(320, 200), imgui.RGBA(40, 50, 70, 255), 0)
				f.SetNextWindowPos(imgui.V2(40, 30), imgui.CondAlways, imgui.Vec2{})
				f.SetNextWindowSize(imgui.V2(240, 140), imgui.CondAlways)
				f.WithWindow("Layers", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) {
					f.TextUnformatted("Background below, foreground above.")
				})
				f.ForegroundDrawList().AddCircle(imgui.V2(280, 40), 24, imgui.ColorYellow, 0, 3)
			},
		},
	}
}
