package glr_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/imgui/glr"
	"github.com/go-theft-auto/imgui/glr/gltest"
)

const (
	sceneVertex = `#version 410
uniform mat4 mvp;
in vec3 pos;
void main() { gl_Position = mvp * vec4(pos, 1.0); }
`
	sceneFragment = `#version 410
uniform vec4 color;
out vec4 fragColor;
void main() { fragColor = color; }
`
)

type sceneUniforms struct {
	MVP   math32.Matrix4 `glr:"mvp"`
	Color glr.Rgba       `glr:"color"`
	Extra float32        // not declared by the shader
}

var identity4 = math32.Matrix4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

type posVertex struct {
	Pos math32.Vector3 `glr:"pos"`
}

func sceneDriver() *gltest.Driver {
	d := gltest.New()
	d.Uniforms = []glr.ActiveInfo{
		{Name: "mvp", Size: 1, Type: glr.FLOAT_MAT4},
		{Name: "color", Size: 1, Type: glr.FLOAT_VEC4},
	}
	d.Attributes = []glr.ActiveInfo{
		{Name: "pos", Size: 1, Type: glr.FLOAT_VEC3},
	}
	return d
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	glr.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { glr.SetLogger(nil) })
	return &buf
}

func TestFromSourceReflectsCatalogs(t *testing.T) {
	d := sceneDriver()
	prg, err := glr.FromSource(d, sceneVertex, sceneFragment, "")
	require.NoError(t, err)
	defer prg.Delete()

	require.Len(t, prg.Uniforms(), 2)
	assert.Equal(t, "mvp", prg.Uniforms()[0].Name())
	assert.Equal(t, glr.UniformLocation(0), prg.Uniforms()[0].Location())
	assert.Equal(t, uint32(glr.FLOAT_VEC4), prg.Uniforms()[1].Type())
	assert.Equal(t, int32(1), prg.Uniforms()[1].Size())

	require.Len(t, prg.Attributes(), 1)
	pos := prg.AttribByName("pos")
	require.NotNil(t, pos)
	assert.Equal(t, uint32(0), pos.Location())
	assert.Equal(t, uint32(glr.FLOAT_VEC3), pos.Type())
	assert.Nil(t, prg.AttribByName("normal"))
	assert.NotNil(t, prg.UniformByName("color"))

	// Stages are gone once the program is linked.
	assert.Len(t, d.Named("DeleteShader"), 2)
	assert.Len(t, d.Named("CreateShader"), 2, "empty geometry stage is not compiled")
	assert.Equal(t, map[uint32]string{uint32(prg.ID()): "program"}, d.Live)
}

func TestFromSourceSkipsUnresolvedLocations(t *testing.T) {
	d := sceneDriver()
	d.Unresolved["color"] = true
	prg, err := glr.FromSource(d, sceneVertex, sceneFragment, "")
	require.NoError(t, err)

	require.Len(t, prg.Uniforms(), 1)
	assert.Equal(t, "mvp", prg.Uniforms()[0].Name())
}

func TestFromSourceCompileFailure(t *testing.T) {
	logs := captureLog(t)
	d := sceneDriver()
	d.PushError(glr.INVALID_ENUM) // stale, must not be reported

	prg, err := glr.FromSource(d, sceneVertex, "this is not glsl", "")
	assert.Nil(t, prg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile fragment shader")
	var glErr glr.GLError
	assert.True(t, errors.As(err, &glErr))
	assert.NotEqual(t, glr.GLError(glr.INVALID_ENUM), glErr)

	assert.Empty(t, d.Named("CreateProgram"))
	assert.Empty(t, d.Live, "compiled stages are released on failure")
	assert.Contains(t, logs.String(), "shader compile failed")
	assert.Contains(t, logs.String(), "stage=fragment")
	assert.Contains(t, logs.String(), "no function with name 'main'")
}

func TestFromSourceLinkFailure(t *testing.T) {
	logs := captureLog(t)
	d := sceneDriver()
	d.LinkLog = "error: color not written"

	prg, err := glr.FromSource(d, sceneVertex, sceneFragment, "")
	assert.Nil(t, prg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "link program")
	assert.Len(t, d.Named("DeleteProgram"), 1)
	assert.Empty(t, d.Live)
	assert.Contains(t, logs.String(), "color not written")
}

func TestProgramDrawScene(t *testing.T) {
	d := sceneDriver()
	prg, err := glr.FromSource(d, sceneVertex, sceneFragment, "")
	require.NoError(t, err)

	verts, err := glr.FromData(d, []posVertex{
		{Pos: math32.Vec3(0, 0, 0)},
		{Pos: math32.Vec3(1, 0, 0)},
		{Pos: math32.Vec3(0, 1, 0)},
	})
	require.NoError(t, err)

	u := sceneUniforms{MVP: identity4, Color: glr.NewRgba(1, 0.5, 0.25, 1)}
	d.Reset()
	prg.Draw(glr.Uniforms(&u), verts, glr.TRIANGLES)

	draws := d.Named("DrawArrays")
	require.Len(t, draws, 1)
	assert.Equal(t, []any{uint32(glr.TRIANGLES), int32(0), int32(3)}, draws[0].Args)

	mvp := d.Named("UniformMatrix4fv")
	require.Len(t, mvp, 1)
	assert.Equal(t, glr.UniformLocation(0), mvp[0].Args[0])
	assert.Equal(t, u.MVP[:], mvp[0].Args[2])
	assert.Equal(t, []gltest.Call{{Name: "Uniform4f", Args: []any{glr.UniformLocation(1), float32(1), float32(0.5), float32(0.25), float32(1)}}},
		d.Named("Uniform4f"))
	assert.Empty(t, d.Named("Uniform1f"), "fields without a matching uniform are never applied")

	ptr := d.Named("VertexAttribPointer")
	require.Len(t, ptr, 1)
	assert.Equal(t, []any{uint32(0), int32(3), uint32(glr.FLOAT), false, int32(12), 0}, ptr[0].Args)

	assert.Equal(t, []string{
		"UseProgram",
		"UniformMatrix4fv",
		"Uniform4f",
		"BindBuffer",
		"BufferData",
		"EnableVertexAttribArray",
		"VertexAttribPointer",
		"DrawArrays",
		"DisableVertexAttribArray",
		"GetError",
	}, d.Names())
	assert.Empty(t, d.AttribSlots)
}

func TestProgramDrawEmptyIsNoop(t *testing.T) {
	d := sceneDriver()
	prg, err := glr.FromSource(d, sceneVertex, sceneFragment, "")
	require.NoError(t, err)
	verts, err := glr.NewDynamicVertexArray[posVertex](d)
	require.NoError(t, err)

	d.Reset()
	prg.Draw(glr.NoUniforms{}, verts, glr.TRIANGLES)
	prg.Draw(glr.NoUniforms{}, glr.NilVertexAttrib(0), glr.TRIANGLES)
	assert.Empty(t, d.Calls)
}

func TestProgramDrawLogsDriverError(t *testing.T) {
	logs := captureLog(t)
	d := sceneDriver()
	prg, err := glr.FromSource(d, sceneVertex, sceneFragment, "")
	require.NoError(t, err)

	d.PushError(glr.INVALID_OPERATION)
	assert.NotPanics(t, func() {
		prg.Draw(glr.NoUniforms{}, glr.NilVertexAttrib(3), glr.TRIANGLES)
	})
	assert.Len(t, d.Named("DrawArrays"), 1)
	assert.Contains(t, logs.String(), "draw failed")
	assert.Contains(t, logs.String(), "INVALID_OPERATION")
}

func TestProgramDeleteOnce(t *testing.T) {
	d := sceneDriver()
	prg, err := glr.FromSource(d, sceneVertex, sceneFragment, "")
	require.NoError(t, err)
	prg.Delete()
	prg.Delete()
	assert.Len(t, d.Named("DeleteProgram"), 1)
	assert.Empty(t, d.Live)
}
