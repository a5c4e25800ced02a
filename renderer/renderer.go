// Package renderer draws imgui frames through glr.
//
// Draw lists are expanded into one vertex stream per frame and every draw
// command becomes one DrawArrays call over a sub-range of it, with its
// own scissor rectangle and texture. Commands carrying a callback token
// run the callback instead, in command order.
package renderer

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"

	"github.com/go-theft-auto/imgui"
	"github.com/go-theft-auto/imgui/glr"
)

type vertex struct {
	Pos   math32.Vector2 `glr:"pos"`
	UV    math32.Vector2 `glr:"uv"`
	Color [4]uint8       `glr:"color,normalized"`
}

type uniforms struct {
	Projection    math32.Matrix4 `glr:"projection"`
	FontTexture   int32          `glr:"fontTexture"`
	UseTexture    bool           `glr:"useTexture"`
	IsRGBATexture bool           `glr:"isRGBATexture"`
}

// Renderer draws imgui.DrawData with OpenGL.
type Renderer struct {
	gl             glr.Context
	vertexSource   string
	fragmentSource string
	clear          *glr.Rgba

	program *glr.Program
	vao     *glr.VertexArray
	verts   *glr.DynamicVertexArray[vertex]
	fontTex *glr.Texture
	scratch []vertex
	u       uniforms

	// Textures holding full color, as opposed to alpha-only coverage.
	rgbaTextures map[uint32]bool
}

// New compiles the shaders, builds the font atlas of ctx and uploads it.
func New(gl glr.Context, ctx *imgui.Context, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		gl:             gl,
		vertexSource:   defaultVertexShader,
		fragmentSource: defaultFragmentShader,
		rgbaTextures:   make(map[uint32]bool),
	}
	for _, opt := range opts {
		opt(r)
	}

	var err error
	r.program, err = glr.FromSource(gl, r.vertexSource, r.fragmentSource, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}
	r.vao, err = glr.GenerateVertexArray(gl)
	if err != nil {
		r.Delete()
		return nil, fmt.Errorf("failed to create vertex array: %w", err)
	}
	r.verts, err = glr.NewDynamicVertexArray[vertex](gl)
	if err != nil {
		r.Delete()
		return nil, fmt.Errorf("failed to create vertex buffer: %w", err)
	}

	if _, err := ctx.UpdateAtlas(); err != nil {
		r.Delete()
		return nil, fmt.Errorf("failed to build font atlas: %w", err)
	}
	if err := r.UpdateAtlas(ctx.Atlas()); err != nil {
		r.Delete()
		return nil, err
	}
	return r, nil
}

// FontTextureID returns the texture holding the font atlas.
func (r *Renderer) FontTextureID() uint32 {
	if r.fontTex == nil {
		return 0
	}
	return uint32(r.fontTex.ID())
}

// RegisterRGBATexture marks a texture as RGBA. Textures are alpha-only
// by default: their red channel is coverage tinted by the vertex color.
func (r *Renderer) RegisterRGBATexture(textureID uint32) {
	r.rgbaTextures[textureID] = true
}

// UnregisterRGBATexture forgets a texture registered as RGBA.
func (r *Renderer) UnregisterRGBATexture(textureID uint32) {
	delete(r.rgbaTextures, textureID)
}

// UpdateAtlas uploads the pixels of atlas and tells the atlas which
// texture holds them. Call it whenever Context.UpdateAtlas reports a
// rebuild.
func (r *Renderer) UpdateAtlas(atlas *imgui.Atlas) error {
	if atlas == nil {
		return nil
	}
	if r.fontTex == nil {
		tex, err := glr.GenerateTexture(r.gl)
		if err != nil {
			return fmt.Errorf("failed to create font texture: %w", err)
		}
		r.fontTex = tex
	}

	prev := r.getInt(glr.TEXTURE_BINDING_2D)
	defer r.gl.BindTexture(glr.TEXTURE_2D, glr.TextureID(prev))

	gl := r.gl
	gl.BindTexture(glr.TEXTURE_2D, r.fontTex.ID())
	gl.TexParameteri(glr.TEXTURE_2D, glr.TEXTURE_MIN_FILTER, glr.LINEAR)
	gl.TexParameteri(glr.TEXTURE_2D, glr.TEXTURE_MAG_FILTER, glr.LINEAR)
	gl.TexParameteri(glr.TEXTURE_2D, glr.TEXTURE_WRAP_S, glr.CLAMP_TO_EDGE)
	gl.TexParameteri(glr.TEXTURE_2D, glr.TEXTURE_WRAP_T, glr.CLAMP_TO_EDGE)
	gl.PixelStorei(glr.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(glr.TEXTURE_2D, 0, glr.R8, int32(atlas.Width), int32(atlas.Height), glr.RED, glr.UNSIGNED_BYTE, atlas.Pixels)
	if err := glr.CheckGL(gl); err != nil {
		return fmt.Errorf("failed to upload font atlas: %w", err)
	}
	atlas.SetTextureID(uint32(r.fontTex.ID()))
	return nil
}

// Render draws one frame. It has the signature DoFrame expects:
//
//	ctx.DoFrame(ui, r.Render)
//
// GL state touched while drawing is put back before Render returns.
func (r *Renderer) Render(dd *imgui.DrawData) {
	if dd == nil {
		return
	}
	fbWidth, fbHeight := dd.FramebufferSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	r.expand(dd)

	gl := r.gl
	lastProgram := r.getInt(glr.CURRENT_PROGRAM)
	lastTexture := r.getInt(glr.TEXTURE_BINDING_2D)
	lastVAO := r.getInt(glr.VERTEX_ARRAY_BINDING)
	lastBuffer := r.getInt(glr.ARRAY_BUFFER_BINDING)
	var lastScissor [4]int32
	gl.GetIntegerv(glr.SCISSOR_BOX, lastScissor[:])
	defer func() {
		gl.UseProgram(glr.ProgramID(lastProgram))
		gl.BindTexture(glr.TEXTURE_2D, glr.TextureID(lastTexture))
		gl.BindVertexArray(glr.VertexArrayID(lastVAO))
		gl.BindBuffer(glr.ARRAY_BUFFER, glr.BufferID(lastBuffer))
		gl.Scissor(lastScissor[0], lastScissor[1], lastScissor[2], lastScissor[3])
	}()

	viewport := glr.PushViewportRect(gl, 0, 0, fbWidth, fbHeight)
	defer viewport.Restore()
	blend := glr.SetCapability(gl, glr.BLEND, true)
	defer blend.Restore()
	cull := glr.SetCapability(gl, glr.CULL_FACE, false)
	defer cull.Restore()
	depth := glr.SetCapability(gl, glr.DEPTH_TEST, false)
	defer depth.Restore()
	scissor := glr.SetCapability(gl, glr.SCISSOR_TEST, true)
	defer scissor.Restore()

	if r.clear != nil {
		full := glr.SetCapability(gl, glr.SCISSOR_TEST, false)
		gl.ClearColor(r.clear.R, r.clear.G, r.clear.B, r.clear.A)
		gl.Clear(glr.COLOR_BUFFER_BIT)
		full.Restore()
	}

	r.u = uniforms{Projection: ortho(dd.DisplayPos, dd.DisplaySize)}
	r.setupState(fbWidth, fbHeight)

	scale := dd.FramebufferScale
	start := 0
	for _, dl := range dd.Lists {
		for _, cmd := range dl.CmdBuffer {
			if cmd.Callback != 0 {
				if !dd.Invoke(cmd.Callback) {
					errors.Log(fmt.Errorf("renderer: callback token %#x already used or expired", uint64(cmd.Callback)))
				}
				// The callback may have changed anything.
				r.setupState(fbWidth, fbHeight)
				continue
			}
			end := start + int(cmd.ElemCount)
			rng := r.verts.Sub(start, end)
			start = end

			minX := (cmd.ClipRect.Min.X - dd.DisplayPos.X) * scale.X
			minY := (cmd.ClipRect.Min.Y - dd.DisplayPos.Y) * scale.Y
			maxX := min((cmd.ClipRect.Max.X-dd.DisplayPos.X)*scale.X, float32(fbWidth))
			maxY := min((cmd.ClipRect.Max.Y-dd.DisplayPos.Y)*scale.Y, float32(fbHeight))
			minX, minY = max(minX, 0), max(minY, 0)
			if maxX <= minX || maxY <= minY {
				continue
			}
			gl.Scissor(int32(minX), fbHeight-int32(maxY), int32(maxX-minX), int32(maxY-minY))

			r.u.UseTexture = cmd.TextureID != 0
			r.u.IsRGBATexture = r.rgbaTextures[cmd.TextureID]
			if r.u.UseTexture {
				gl.BindTexture(glr.TEXTURE_2D, glr.TextureID(cmd.TextureID))
			}
			r.program.Draw(glr.Uniforms(&r.u), rng, glr.TRIANGLES)
		}
	}
}

// expand resolves the indices of every draw command into one vertex
// stream, in command order.
func (r *Renderer) expand(dd *imgui.DrawData) {
	r.scratch = r.scratch[:0]
	for _, dl := range dd.Lists {
		for _, cmd := range dl.CmdBuffer {
			if cmd.Callback != 0 {
				continue
			}
			idx := dl.IdxBuffer[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount]
			for _, i := range idx {
				v := dl.VtxBuffer[cmd.VertexOffset+uint32(i)]
				cr, cg, cb, ca := imgui.UnpackRGBA(v.Color)
				r.scratch = append(r.scratch, vertex{
					Pos:   math32.Vec2(v.Pos.X, v.Pos.Y),
					UV:    math32.Vec2(v.UV.X, v.UV.Y),
					Color: [4]uint8{cr, cg, cb, ca},
				})
			}
		}
	}
	r.verts.Set(r.scratch)
}

func (r *Renderer) setupState(fbWidth, fbHeight int32) {
	gl := r.gl
	gl.Enable(glr.BLEND)
	gl.BlendEquation(glr.FUNC_ADD)
	gl.BlendFuncSeparate(glr.SRC_ALPHA, glr.ONE_MINUS_SRC_ALPHA, glr.ONE, glr.ONE_MINUS_SRC_ALPHA)
	gl.Disable(glr.CULL_FACE)
	gl.Disable(glr.DEPTH_TEST)
	gl.Enable(glr.SCISSOR_TEST)
	gl.Viewport(0, 0, fbWidth, fbHeight)
	gl.ActiveTexture(glr.TEXTURE0)
	gl.BindVertexArray(r.vao.ID())
}

func (r *Renderer) getInt(pname uint32) int32 {
	var v [1]int32
	r.gl.GetIntegerv(pname, v[:])
	return v[0]
}

// ortho maps the display rectangle to clip space with Y pointing down.
func ortho(pos, size imgui.Vec2) math32.Matrix4 {
	l, r := pos.X, pos.X+size.X
	t, b := pos.Y, pos.Y+size.Y
	return math32.Matrix4{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, -1, 0,
		(r + l) / (l - r), (t + b) / (b - t), 0, 1,
	}
}

// Delete releases every GPU object owned by the renderer.
func (r *Renderer) Delete() {
	if r.fontTex != nil {
		r.fontTex.Delete()
	}
	if r.verts != nil {
		r.verts.Delete()
	}
	if r.vao != nil {
		r.vao.Delete()
	}
	if r.program != nil {
		r.program.Delete()
	}
}
