// Example opens a window and draws a few imgui windows with OpenGL.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Settings are read from example.toml in the working directory, or from
// the file named by -config. See internal/config for the keys.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/go-theft-auto/imgui"
	"github.com/go-theft-auto/imgui/backend/opengl"
	"github.com/go-theft-auto/imgui/glr"
	"github.com/go-theft-auto/imgui/internal/config"
	"github.com/go-theft-auto/imgui/renderer"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	path := flag.String("config", "example.toml", "TOML settings file")
	flag.Parse()
	if err := run(*path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string) error {
	conf, err := config.Load(path)
	if err != nil {
		return err
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
	if conf.Multisample {
		glfw.WindowHint(glfw.Samples, 4)
	}

	window, err := glfw.CreateWindow(conf.Window.Width, conf.Window.Height, conf.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if conf.Window.VSync {
		glfw.SwapInterval(1)
	}

	gl, err := opengl.NewContext()
	if err != nil {
		return err
	}
	logger.Info("opengl ready", "version", gl.Version())

	ctx := imgui.New(
		imgui.WithFont(imgui.DefaultFont(conf.FontSize)),
		imgui.WithStyle(conf.GUIStyle()),
	)
	// Cyrillic glyphs come from the monospace font.
	if err := ctx.MergeFont(imgui.NewFontInfo(gomono.TTF, conf.FontSize).CharRange(0x400, 0x4FF)); err != nil {
		return err
	}
	mono := ctx.AddFont(imgui.NewFontInfo(gomono.TTF, conf.FontSize))

	adapter := opengl.NewGLFWAdapter(window, ctx)
	r, err := renderer.New(gl, ctx, renderer.WithClearColor(glr.NewRgba(0.12, 0.12, 0.14, 1)))
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer r.Delete()

	demo := newDemo(mono)
	for !window.ShouldClose() {
		glfw.PollEvents()
		adapter.NewFrame()
		if changed, err := ctx.UpdateAtlas(); errors.Log(err) == nil && changed {
			errors.Log(r.UpdateAtlas(ctx.Atlas()))
		}

		ctx.DoFrame(demo.draw, r.Render)
		window.SwapBuffers()
	}
	return nil
}

type demo struct {
	mono       imgui.FontID
	start      time.Time
	last       time.Time
	frameTime  time.Duration
	showShapes bool
	callbacks  int
}

func newDemo(mono imgui.FontID) *demo {
	now := time.Now()
	return &demo{mono: mono, start: now, last: now, showShapes: true}
}

func (d *demo) draw(f *imgui.Frame) {
	now := time.Now()
	d.frameTime, d.last = now.Sub(d.last), now

	f.SetNextWindowPos(imgui.V2(20, 20), imgui.CondFirstUseEver, imgui.Vec2{})
	f.WithWindow("Stats", nil, imgui.WindowFlagsAlwaysAutoResize, func(f *imgui.Frame) {
		f.TextUnformatted(fmt.Sprintf("frame %d", f.Context().FrameCount()))
		f.TextUnformatted(fmt.Sprintf("%.2f ms", float64(d.frameTime.Microseconds())/1000))
		f.TextUnformatted(fmt.Sprintf("callbacks run: %d", d.callbacks))
		f.TextUnformatted("Привет, мир")
		f.WithFont(d.mono, func(f *imgui.Frame) {
			f.TextUnformatted("monospace 0123456789")
		})
		if !d.showShapes {
			f.TextUnformatted("(shapes closed)")
		}
	})

	if d.showShapes {
		f.SetNextWindowPos(imgui.V2(260, 20), imgui.CondFirstUseEver, imgui.Vec2{})
		f.SetNextWindowSize(imgui.V2(360, 300), imgui.CondFirstUseEver)
		f.SetNextWindowSizeConstraints(imgui.V2(200, 150), imgui.V2(800, 600))
		f.WithWindow("Shapes", &d.showShapes, imgui.WindowFlagsNone, d.drawShapes)
	}

	f.SetNextWindowPos(imgui.V2(20, 360), imgui.CondFirstUseEver, imgui.Vec2{})
	f.SetNextWindowSize(imgui.V2(300, 200), imgui.CondFirstUseEver)
	f.WithWindow("Scrolling", nil, imgui.WindowFlagsNone, func(f *imgui.Frame) {
		f.WithChild("lines", imgui.V2(0, 0), true, imgui.WindowFlagsNone, func(f *imgui.Frame) {
			f.WithListClipper(10000, f.TextLineHeightWithSpacing(), func(f *imgui.Frame, start, end int) {
				for i := start; i < end; i++ {
					f.TextUnformatted(fmt.Sprintf("line %05d", i))
				}
			})
		})
	})

	t := float32(time.Since(d.start).Seconds())
	f.ForegroundDrawList().AddCircleFilled(imgui.V2(f.Context().DisplaySize().X-30, 30), 8+4*math32.Sin(t*3), imgui.ColorYellow, 0)
}

func (d *demo) drawShapes(f *imgui.Frame) {
	dl := f.WindowDrawList()
	p := f.CursorScreenPos()
	col := imgui.RGBA(90, 200, 255, 255)

	dl.AddLine(p, p.Add(imgui.V2(60, 40)), col, 2)
	dl.AddRect(p.Add(imgui.V2(70, 0)), p.Add(imgui.V2(130, 40)), col, 6, 1.5)
	dl.AddRectFilledMultiColor(p.Add(imgui.V2(140, 0)), p.Add(imgui.V2(200, 40)),
		imgui.ColorRed, imgui.ColorGreen, imgui.ColorBlue, imgui.ColorYellow)
	dl.AddCircle(p.Add(imgui.V2(230, 20)), 20, col, 0, 1.5)
	dl.AddNgonFilled(p.Add(imgui.V2(280, 20)), 20, col, 6)

	q := p.Add(imgui.V2(0, 60))
	dl.AddTriangleFilled(q.Add(imgui.V2(30, 0)), q.Add(imgui.V2(60, 50)), q.Add(imgui.V2(0, 50)), col)
	dl.AddQuad(q.Add(imgui.V2(80, 0)), q.Add(imgui.V2(130, 10)), q.Add(imgui.V2(120, 50)), q.Add(imgui.V2(70, 40)), col, 1.5)
	dl.AddBezierCubic(q.Add(imgui.V2(140, 50)), q.Add(imgui.V2(160, -20)), q.Add(imgui.V2(200, 70)), q.Add(imgui.V2(220, 0)), col, 2, 0)
	dl.AddPolyline([]imgui.Vec2{q.Add(imgui.V2(240, 50)), q.Add(imgui.V2(260, 0)), q.Add(imgui.V2(280, 50)), q.Add(imgui.V2(300, 0))}, col, false, 2)

	dl.AddCallback(func() { d.callbacks++ })
	f.Dummy(imgui.V2(300, 120))
	f.TextUnformatted("The shapes above are drawn through the window draw list.")
}
