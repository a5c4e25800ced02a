package glr

import (
	"fmt"
	"log/slog"
)

// Uniform is one entry of a program's uniform catalog.
type Uniform struct {
	name     string
	location UniformLocation
	size     int32
	typ      uint32
}

// Name returns the uniform name as reported by the driver. Arrays are
// reported with a "[0]" suffix.
func (u *Uniform) Name() string { return u.name }

// Location returns the uniform location.
func (u *Uniform) Location() UniformLocation { return u.location }

// Size returns the declared array size (1 for non-arrays).
func (u *Uniform) Size() int32 { return u.size }

// Type returns the declared GL type, e.g. FLOAT_MAT4.
func (u *Uniform) Type() uint32 { return u.typ }

// Attribute is one entry of a program's attribute catalog.
type Attribute struct {
	name     string
	location uint32
	size     int32
	typ      uint32
}

// Name returns the attribute name.
func (a *Attribute) Name() string { return a.name }

// Location returns the attribute slot index.
func (a *Attribute) Location() uint32 { return a.location }

// Size returns the declared array size.
func (a *Attribute) Size() int32 { return a.size }

// Type returns the declared GL type, e.g. FLOAT_VEC3.
func (a *Attribute) Type() uint32 { return a.typ }

// Program owns a linked program and the catalogs reflected from it.
// The catalogs never change after FromSource returns.
type Program struct {
	gl       Context
	id       ProgramID
	uniforms []Uniform
	attribs  []Attribute
}

// FromSource compiles the non-empty stages, links them and reflects the
// active uniforms and attributes. On failure the driver log goes to the
// diagnostic logger and no Program is returned.
func FromSource(gl Context, vertex, fragment, geometry string) (*Program, error) {
	// Purge stale errors so they are not blamed on this program.
	gl.GetError()

	stages := []struct {
		kind   uint32
		name   string
		source string
	}{
		{VERTEX_SHADER, "vertex", vertex},
		{FRAGMENT_SHADER, "fragment", fragment},
		{GEOMETRY_SHADER, "geometry", geometry},
	}
	var shaders []*shader
	defer func() {
		for _, sh := range shaders {
			sh.delete()
		}
	}()
	for _, st := range stages {
		if st.source == "" {
			continue
		}
		sh, err := compileShader(gl, st.kind, st.name, st.source)
		if err != nil {
			return nil, err
		}
		shaders = append(shaders, sh)
	}

	id := gl.CreateProgram()
	if id == 0 {
		return nil, fmt.Errorf("create program: %w", errorFrom(gl))
	}
	prg := &Program{gl: gl, id: id}
	for _, sh := range shaders {
		gl.AttachShader(id, sh.id)
	}
	gl.LinkProgram(id)
	if !gl.GetProgramLinkStatus(id) {
		Logger().Error("program link failed", slog.String("log", gl.GetProgramInfoLog(id)))
		err := errorFrom(gl)
		prg.Delete()
		return nil, fmt.Errorf("link program: %w", err)
	}

	nu := gl.GetActiveUniforms(id)
	prg.uniforms = make([]Uniform, 0, nu)
	for i := range nu {
		info, ok := gl.GetActiveUniform(id, uint32(i))
		if !ok {
			continue
		}
		loc, ok := gl.GetUniformLocation(id, info.Name)
		if !ok {
			continue
		}
		prg.uniforms = append(prg.uniforms, Uniform{name: info.Name, location: loc, size: info.Size, typ: info.Type})
	}

	na := gl.GetActiveAttributes(id)
	prg.attribs = make([]Attribute, 0, na)
	for i := range na {
		info, ok := gl.GetActiveAttribute(id, uint32(i))
		if !ok {
			continue
		}
		loc, ok := gl.GetAttribLocation(id, info.Name)
		if !ok {
			continue
		}
		prg.attribs = append(prg.attribs, Attribute{name: info.Name, location: loc, size: info.Size, typ: info.Type})
	}
	return prg, nil
}

func compileShader(gl Context, kind uint32, stage, source string) (*shader, error) {
	id := gl.CreateShader(kind)
	if id == 0 {
		return nil, fmt.Errorf("create %s shader: %w", stage, errorFrom(gl))
	}
	sh := &shader{gl: gl, id: id}
	gl.ShaderSource(id, source)
	gl.CompileShader(id)
	if !gl.GetShaderCompileStatus(id) {
		Logger().Error("shader compile failed",
			slog.String("stage", stage),
			slog.String("log", gl.GetShaderInfoLog(id)))
		err := errorFrom(gl)
		sh.delete()
		return nil, fmt.Errorf("compile %s shader: %w", stage, err)
	}
	return sh, nil
}

// ID returns the raw program handle.
func (p *Program) ID() ProgramID {
	return p.id
}

// Context returns the device context the program was created on.
func (p *Program) Context() Context {
	return p.gl
}

// Uniforms returns the uniform catalog. The slice must not be modified.
func (p *Program) Uniforms() []Uniform {
	return p.uniforms
}

// Attributes returns the attribute catalog. The slice must not be modified.
func (p *Program) Attributes() []Attribute {
	return p.attribs
}

// UniformByName finds an active uniform by exact name.
func (p *Program) UniformByName(name string) *Uniform {
	for i := range p.uniforms {
		if p.uniforms[i].name == name {
			return &p.uniforms[i]
		}
	}
	return nil
}

// AttribByName finds an active attribute by exact name.
func (p *Program) AttribByName(name string) *Attribute {
	for i := range p.attribs {
		if p.attribs[i].name == name {
			return &p.attribs[i]
		}
	}
	return nil
}

// Use makes the program current.
func (p *Program) Use() {
	p.gl.UseProgram(p.id)
}

// Draw uses the program, pushes every active uniform that uniforms
// provides, binds the attribute streams for the duration of one
// DrawArrays call and then checks the driver error state. Errors after
// drawing are logged, not returned: the draw has already been issued.
//
// Nothing happens when attribs has no vertices.
func (p *Program) Draw(uniforms UniformProvider, attribs AttribProviderList, primitive uint32) {
	n := attribs.Len()
	if n == 0 {
		return
	}
	p.gl.UseProgram(p.id)
	for i := range p.uniforms {
		uniforms.ApplyUniform(p.gl, &p.uniforms[i])
	}
	p.drawBound(attribs, primitive, n)
	if err := CheckGL(p.gl); err != nil {
		Logger().Error("draw failed", slog.Any("err", err))
	}
}

func (p *Program) drawBound(attribs AttribProviderList, primitive uint32, n int) {
	binding := attribs.Bind(p)
	defer binding.Release()
	p.gl.DrawArrays(primitive, 0, int32(n))
}

// Delete releases the program. Calling it again does nothing.
func (p *Program) Delete() {
	if p.id != 0 {
		p.gl.DeleteProgram(p.id)
		p.id = 0
	}
}
