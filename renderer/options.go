package renderer

import "github.com/go-theft-auto/imgui/glr"

// Option configures a Renderer.
type Option func(*Renderer)

// WithVertexShader replaces the vertex shader. It must declare the pos,
// uv and color attributes and the projection uniform.
func WithVertexShader(source string) Option {
	return func(r *Renderer) {
		r.vertexSource = source
	}
}

// WithFragmentShader replaces the fragment shader. It may use the
// fontTexture, useTexture and isRGBATexture uniforms.
func WithFragmentShader(source string) Option {
	return func(r *Renderer) {
		r.fragmentSource = source
	}
}

// WithClearColor makes Render clear the framebuffer before drawing.
func WithClearColor(c glr.Rgba) Option {
	return func(r *Renderer) {
		r.clear = &c
	}
}
